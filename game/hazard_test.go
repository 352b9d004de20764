package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/fps-cuber/core"
)

func TestTargetContact(t *testing.T) {
	tests := []struct {
		name       string
		normal     mgl64.Vec3
		wantHealth int
		wantOof    int
	}{
		{"top face", mgl64.Vec3{0, 0.9, 0.436}, 2, 1},
		{"bottom face", mgl64.Vec3{0, -0.9, 0.436}, 2, 1},
		{"side graze", mgl64.Vec3{0.995, 0.1, 0}, 3, 0},
		{"exactly at threshold", mgl64.Vec3{0.866, 0.5, 0}, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, testConfig())
			tgt := h.target()
			h.eng.contact(h.player(), tgt.Body, tt.normal)
			require.True(t, h.frame())

			s := h.g.State()
			assert.Equal(t, tt.wantHealth, s.Player.Health)
			assert.Equal(t, tt.wantOof, h.cues.played[core.SoundOof])
			assert.False(t, s.Player.Dead)
			assert.Zero(t, h.overlay.gameOver)
		})
	}
}

func TestTargetContact_NormalSeenFromPlayer(t *testing.T) {
	h := newHarness(t, testConfig())
	tgt := h.target()
	// Reported from the target's side: the player's handler sees the flipped normal
	h.eng.contact(tgt.Body, h.player(), mgl64.Vec3{0, 1, 0})
	h.frame()
	assert.Equal(t, 2, h.g.State().Player.Health)
}

func TestThreeTopHitsEndTheGameOnce(t *testing.T) {
	h := newHarness(t, testConfig())
	s := h.g.State()
	tgt := h.target()

	for i := 0; i < 3; i++ {
		h.eng.contact(h.player(), tgt.Body, mgl64.Vec3{0, 1, 0})
		h.frame()
	}

	assert.True(t, s.Player.Dead)
	assert.Zero(t, s.Player.Health)
	assert.Equal(t, 1, h.overlay.gameOver)
	assert.Equal(t, 1, h.cues.played[core.SoundDead])
	assert.False(t, h.cues.playing, "music pauses on death")
	assert.True(t, h.g.Controls().Disabled)

	// Input is ignored and the loop stays halted
	h.g.HandleInput(InputEvent{Kind: InputLock})
	h.g.HandleInput(InputEvent{Kind: InputFireDown})
	assert.False(t, h.g.Controls().Locked)
	assert.False(t, h.g.Controls().Fire)
	steps := h.eng.steps
	assert.False(t, h.frame())
	assert.Equal(t, steps, h.eng.steps)
}

func TestGameOverIdempotentWithinFrame(t *testing.T) {
	h := newHarness(t, testConfig())
	s := h.g.State()
	s.Player.Health = 1
	tgt := h.target()

	// Lethal top hit and killing floor in the same step
	h.eng.contact(h.player(), tgt.Body, mgl64.Vec3{0, -1, 0})
	h.eng.contact(s.KillingFloor.Body, h.player(), mgl64.Vec3{0, 1, 0})
	assert.False(t, h.frame())

	assert.Equal(t, 1, h.overlay.gameOver)
	assert.Equal(t, 1, h.cues.played[core.SoundDead])
	assert.Zero(t, s.Player.Health)

	h.g.GameOver("again")
	assert.Equal(t, 1, h.overlay.gameOver)
	assert.Equal(t, 1, h.cues.played[core.SoundDead])
}

func TestKillingFloorIgnoresNormal(t *testing.T) {
	h := newHarness(t, testConfig())
	s := h.g.State()
	h.eng.contact(h.player(), s.KillingFloor.Body, mgl64.Vec3{1, 0, 0})
	assert.False(t, h.frame())
	assert.True(t, s.Player.Dead)
	assert.Zero(t, s.Player.Health)
}

func TestKillingFloorOnlyKillsPlayer(t *testing.T) {
	h := newHarness(t, testConfig())
	s := h.g.State()
	tgt := h.target()
	h.eng.contact(tgt.Body, s.KillingFloor.Body, mgl64.Vec3{0, -1, 0})
	assert.True(t, h.frame())
	assert.False(t, s.Player.Dead)
}

func TestDamageTintsBackground(t *testing.T) {
	h := newHarness(t, testConfig())
	assert.Equal(t, core.RGBWhite, h.r.tint)

	tgt := h.target()
	h.eng.contact(h.player(), tgt.Body, mgl64.Vec3{0, 1, 0})
	h.frame()
	assert.Equal(t, core.RGBWhite.Blend(core.RGBFromFloat(1.0/3, 0, 0), 0.1), h.r.tint)
	assert.Equal(t, h.r.tint, h.g.Tint())
}
