package game

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/fps-cuber/physics"
	"github.com/lixenwraith/fps-cuber/status"
)

func TestFrame_SyncsMeshesToBodies(t *testing.T) {
	h := newHarness(t, testConfig())
	tgt := h.target()
	h.eng.bodies[tgt.Body].pos[1] = 7
	h.frame()
	assert.Equal(t, 7.0, h.r.transforms[tgt.Mesh].Y())
	assert.Equal(t, 1, h.r.renders)
}

func TestFrame_Metrics(t *testing.T) {
	h := newHarness(t, testConfig())
	h.target()
	h.frame()
	h.frame()

	reg := h.g.Status()
	assert.Equal(t, int64(2), reg.Ints.Get(status.KeyFrames).Load())
	assert.Equal(t, int64(1), reg.Ints.Get(status.KeyTargets).Load())
	assert.Equal(t, int64(h.eng.BodyCount()), reg.Ints.Get(status.KeyBodies).Load())
}

// Full session on the real engine with a random trigger-happy player
func TestSession_InvariantsOnRealEngine(t *testing.T) {
	cfg := testConfig()
	cfg.Spawn.CubeChance = 0.2
	cfg.Spawn.SphereChance = 0.2
	cfg.Terrain.GridSize = 6

	eng := physics.NewWorld(physics.DefaultConfig())
	r := newFakeRenderer()
	clock := NewManualTimeProvider(testNow)
	rng := rand.New(rand.NewSource(99))
	g := New(cfg, Deps{
		Engine:   eng,
		Renderer: r,
		Clock:    clock,
		Rand:     rand.New(rand.NewSource(5)),
		Logger:   zerolog.Nop(),
	})
	g.HandleInput(InputEvent{Kind: InputLock})
	g.HandleInput(InputEvent{Kind: InputFireDown})

	lastScore := 0
	for i := 0; i < 900; i++ {
		switch rng.Intn(12) {
		case 0:
			g.HandleInput(InputEvent{Kind: InputKeyDown, Key: Key(rng.Intn(5))})
		case 1:
			g.HandleInput(InputEvent{Kind: InputKeyUp, Key: Key(rng.Intn(5))})
		case 2:
			g.HandleInput(InputEvent{Kind: InputLook, DYaw: rng.Float64() - 0.5, DPitch: (rng.Float64() - 0.5) * 0.2})
		}

		alive := g.Frame()
		clock.Advance(frameDuration)

		p := g.State().Player
		require.GreaterOrEqual(t, p.Health, 0)
		require.LessOrEqual(t, p.Health, 3)
		require.GreaterOrEqual(t, p.Score, lastScore)
		require.GreaterOrEqual(t, p.ShotsFired, 0)
		lastScore = p.Score

		// Every live entity owns exactly one body and one mesh; the player body has no mesh
		live := len(g.State().Targets()) + len(g.State().Bullets()) + len(g.State().Terrain)
		require.Equal(t, live, len(r.meshes))
		require.Equal(t, live+1, eng.BodyCount())
		for _, e := range g.State().Bullets() {
			require.True(t, eng.Exists(e.Body))
		}

		if !alive {
			require.True(t, p.Dead)
			break
		}
	}
	assert.NotZero(t, g.Status().Ints.Get(status.KeyFrames).Load())
}

func TestRun_StopsOnCancelAndGameOver(t *testing.T) {
	h := newHarness(t, testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan InputEvent, 1)
	done := make(chan error, 1)
	go func() { done <- h.g.Run(ctx, events) }()
	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop on cancel")
	}

	// A dead game returns nil on its next tick
	h2 := newHarness(t, testConfig())
	h2.g.GameOver("test")
	err := h2.g.Run(context.Background(), nil)
	assert.NoError(t, err)
}
