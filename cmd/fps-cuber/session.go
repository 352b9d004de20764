package main

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/fps-cuber/config"
	"github.com/lixenwraith/fps-cuber/game"
	"github.com/lixenwraith/fps-cuber/physics"
	"github.com/lixenwraith/fps-cuber/status"
)

// physicsConfig overlays the configurable knobs on the engine defaults
func physicsConfig(c config.PhysicsConfig) physics.Config {
	pc := physics.DefaultConfig()
	pc.Gravity = mgl64.Vec3{0, c.Gravity, 0}
	pc.Substeps = c.Substeps
	pc.LinearDamping = c.LinearDamping
	pc.Friction = c.Friction
	return pc
}

// resolveSeed picks a time-based seed when none is configured
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// sessionDeps are the parts shared across restarts
type sessionDeps struct {
	renderer game.Renderer
	overlay  game.Overlay
	cues     game.Cues
	clock    game.Clock
	status   *status.Registry
	log      zerolog.Logger
}

// newSession builds a fresh world; each restart gets its own engine and seed stream
func newSession(cfg config.Config, round int, d sessionDeps) *game.Game {
	seed := cfg.Game.Seed + int64(round)
	d.log.Info().Int64("seed", seed).Int("round", round).Msg("session start")
	return game.New(cfg, game.Deps{
		Engine:   physics.NewWorld(physicsConfig(cfg.Physics)),
		Renderer: d.renderer,
		Overlay:  d.overlay,
		Cues:     d.cues,
		Clock:    d.clock,
		Rand:     rand.New(rand.NewSource(seed)),
		Status:   d.status,
		Logger:   d.log,
	})
}

// logStatus writes the metric registry as one entry
func logStatus(log zerolog.Logger, reg *status.Registry, msg string) {
	fields := make(map[string]any)
	for k, v := range reg.Snapshot() {
		fields[k] = v
	}
	log.Info().Fields(fields).Msg(msg)
}
