package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/fps-cuber/config"
	"github.com/lixenwraith/fps-cuber/game"
	"github.com/lixenwraith/fps-cuber/render"
	"github.com/lixenwraith/fps-cuber/status"
)

// Bot cadence in frames
const (
	botWalkPeriod = 240
	botJumpPeriod = 90
	botTurnPeriod = 60
	botMaxTurn    = 0.05
)

// bot scripts a deterministic player: always firing, wandering and hopping
type bot struct {
	rng  *rand.Rand
	turn float64
	out  []game.InputEvent
}

func newBot(seed int64) *bot {
	return &bot{rng: rand.New(rand.NewSource(seed))}
}

// inputs returns the events for a frame, the slice is reused
func (b *bot) inputs(frame int) []game.InputEvent {
	b.out = b.out[:0]
	if frame == 0 {
		b.out = append(b.out,
			game.InputEvent{Kind: game.InputLock},
			game.InputEvent{Kind: game.InputFireDown},
		)
	}

	switch frame % botWalkPeriod {
	case 0:
		b.out = append(b.out, game.InputEvent{Kind: game.InputKeyDown, Key: game.KeyForward})
	case botWalkPeriod / 2:
		b.out = append(b.out, game.InputEvent{Kind: game.InputKeyUp, Key: game.KeyForward})
	}

	switch frame % botJumpPeriod {
	case botJumpPeriod / 2:
		b.out = append(b.out, game.InputEvent{Kind: game.InputKeyDown, Key: game.KeyJump})
	case botJumpPeriod/2 + 1:
		b.out = append(b.out, game.InputEvent{Kind: game.InputKeyUp, Key: game.KeyJump})
	}

	if frame%botTurnPeriod == 0 {
		b.turn = (b.rng.Float64()*2 - 1) * botMaxTurn
	}
	b.out = append(b.out, game.InputEvent{Kind: game.InputLook, DYaw: b.turn})
	return b.out
}

// headlessResult summarizes a scripted run
type headlessResult struct {
	Frames  int
	Score   int
	Shots   int
	Health  int
	Targets int
	Meshes  int
	Dead    bool
}

// runHeadless plays a scripted session on a simulated clock without a terminal
func runHeadless(ctx context.Context, cfg config.Config, frames int, log zerolog.Logger) (headlessResult, error) {
	scene := render.NewScene()
	clock := game.NewManualTimeProvider(time.Unix(0, 0))
	g := newSession(cfg, 0, sessionDeps{
		renderer: scene,
		overlay:  scene,
		clock:    clock,
		status:   status.NewRegistry(),
		log:      log,
	})

	b := newBot(cfg.Game.Seed)
	step := cfg.FrameInterval()

	var res headlessResult
	for ; res.Frames < frames; res.Frames++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		for _, ev := range b.inputs(res.Frames) {
			g.HandleInput(ev)
		}
		if !g.Frame() {
			res.Frames++
			break
		}
		clock.Advance(step)
	}

	logStatus(log, g.Status(), "headless metrics")

	s := g.State()
	res.Score = s.Player.Score
	res.Shots = s.Player.ShotsFired
	res.Health = s.Player.Health
	res.Targets = len(s.Targets())
	res.Meshes = scene.MeshCount()
	res.Dead = g.Dead()

	log.Info().
		Int("frames", res.Frames).
		Int("score", res.Score).
		Int("shots", res.Shots).
		Int("health", res.Health).
		Int("targets", res.Targets).
		Int("meshes", res.Meshes).
		Bool("dead", res.Dead).
		Msg("headless run complete")
	return res, nil
}
