package game

import (
	"math/rand"

	"github.com/lixenwraith/fps-cuber/physics"
	"github.com/lixenwraith/fps-cuber/vmath"
)

// Hostility pushes targets toward the player
// Always once aggro, with probability shotsFired/rampDivisor before, never while the player ascends
type Hostility struct {
	eng         physics.Engine
	rng         *rand.Rand
	force       float64
	rampDivisor float64
}

// NewHostility creates the drift rule
func NewHostility(eng physics.Engine, rng *rand.Rand, force, rampDivisor float64) *Hostility {
	return &Hostility{eng: eng, rng: rng, force: force, rampDivisor: rampDivisor}
}

// Update applies this frame's push, returns the number of targets pushed
func (h *Hostility) Update(s *WorldState) int {
	p := &s.Player
	if p.Ascending {
		return 0
	}
	if !p.Aggro && !(h.rng.Float64() < float64(p.ShotsFired)/h.rampDivisor) {
		return 0
	}

	playerPos := h.eng.Position(p.Body)
	targets := s.Targets()
	for _, t := range targets {
		pos := h.eng.Position(t.Body)
		dir := vmath.SafeNormalize(playerPos.Sub(pos))
		h.eng.ApplyForce(t.Body, dir.Mul(h.force), pos)
	}
	return len(targets)
}
