package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/fps-cuber/core"
	"github.com/lixenwraith/fps-cuber/parameter"
	"github.com/lixenwraith/fps-cuber/physics"
)

// HazardSystem damages the player on target top/bottom contacts and kills on the killing floor
type HazardSystem struct {
	eng     physics.Engine
	cues    Cues
	intents *IntentQueue

	threshold float64

	onHealthChanged func()
	onGameOver      func(reason string)
}

// NewHazardSystem creates the hazard rules
func NewHazardSystem(eng physics.Engine, cues Cues, intents *IntentQueue, onHealthChanged func(), onGameOver func(string)) *HazardSystem {
	return &HazardSystem{
		eng:             eng,
		cues:            cues,
		intents:         intents,
		threshold:       parameter.TopContactThreshold,
		onHealthChanged: onHealthChanged,
		onGameOver:      onGameOver,
	}
}

// Register installs the collision handlers once; handlers only enqueue
func (h *HazardSystem) Register(s *WorldState) {
	player := s.Player.Body
	h.eng.OnCollision(player, func(other physics.BodyHandle, normal mgl64.Vec3) {
		if e := s.Lookup(other); e != nil && e.Kind == KindTarget {
			h.intents.Push(Intent{Kind: IntentPlayerContact, Other: other, Normal: normal})
		}
	})
	if s.KillingFloor != nil {
		h.eng.OnCollision(s.KillingFloor.Body, func(other physics.BodyHandle, _ mgl64.Vec3) {
			if other == player {
				h.intents.Push(Intent{Kind: IntentKillingFloor, Other: other})
			}
		})
	}
}

// IsTopContact reports whether a contact normal hits a top or bottom face rather than a side
func (h *HazardSystem) IsTopContact(normal mgl64.Vec3) bool {
	return math.Abs(normal.Y()) > h.threshold
}

// ApplyContact resolves a player/target contact
func (h *HazardSystem) ApplyContact(s *WorldState, in Intent) {
	if s.Player.Dead || !h.IsTopContact(in.Normal) {
		return
	}
	health := s.Damage(parameter.DamagePerHit)
	h.onHealthChanged()
	h.cues.PlayCue(core.SoundOof)
	if health <= 0 {
		h.onGameOver("health depleted")
	}
}

// ApplyKillingFloor ends the game regardless of contact normal
func (h *HazardSystem) ApplyKillingFloor(s *WorldState) {
	h.onGameOver("killing floor")
}
