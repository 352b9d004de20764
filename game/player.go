package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/fps-cuber/config"
	"github.com/lixenwraith/fps-cuber/core"
	"github.com/lixenwraith/fps-cuber/parameter"
	"github.com/lixenwraith/fps-cuber/physics"
	"github.com/lixenwraith/fps-cuber/vmath"
)

// MoveInput is the latched input consumed by one controller tick
type MoveInput struct {
	Forward, Back, Left, Right bool
	JumpEdge                   bool // jump went from released to held since last tick
	Locked                     bool // pointer lock; horizontal velocity only follows input while locked
	Facing                     mgl64.Vec3
}

// PlayerController turns held keys into player body velocity
type PlayerController struct {
	eng  physics.Engine
	cues Cues

	speed        float64
	jumpSpeed    float64
	maxFall      float64
	groundHeight float64
	gravity      float64
}

// NewPlayerController creates a controller for the configured movement model
func NewPlayerController(eng physics.Engine, cues Cues, pc config.PlayerConfig, gravity float64) *PlayerController {
	return &PlayerController{
		eng:          eng,
		cues:         cues,
		speed:        pc.Speed,
		jumpSpeed:    pc.JumpSpeed,
		maxFall:      pc.MaxFallSpeed,
		groundHeight: pc.GroundHeight,
		gravity:      gravity,
	}
}

// Update runs one tick and reports whether a jump impulse was applied
func (pc *PlayerController) Update(s *WorldState, in MoveInput, dt float64) bool {
	p := &s.Player
	pos := pc.eng.Position(p.Body)
	h := pos.Y()

	jumped := false
	if in.JumpEdge && !p.Ascending && h <= pc.groundHeight {
		p.Ascending = true
		p.Airborne = false
		mass := pc.eng.Mass(p.Body)
		pc.eng.ApplyImpulse(p.Body, mgl64.Vec3{0, pc.jumpSpeed * mass, 0}, pos)
		pc.cues.PlayCue(core.SoundJump)
		jumped = true
	}

	if p.Ascending && h > pc.groundHeight {
		p.Airborne = true
	}
	// Landed: back at ground height after leaving it, no longer rising
	if !jumped && p.Airborne && h <= pc.groundHeight && pc.eng.Velocity(p.Body).Y() < parameter.LandingSpeed {
		p.Ascending = false
		p.Airborne = false
	}

	// Vertical accumulator is advisory; the engine integrates the impulse
	switch {
	case p.Ascending:
		p.VelocityY += pc.gravity * dt
		p.Height = h
	case h > pc.groundHeight:
		p.VelocityY = math.Max(p.VelocityY+pc.gravity*dt, -pc.maxFall)
		p.Height = h
	default:
		p.VelocityY = 0
		p.Height = pc.groundHeight
	}

	if in.Locked {
		v := pc.horizontal(in)
		cur := pc.eng.Velocity(p.Body)
		pc.eng.SetVelocity(p.Body, mgl64.Vec3{v.X(), cur.Y(), v.Z()})
	}
	return jumped
}

// horizontal sums the contributions of held movement keys
func (pc *PlayerController) horizontal(in MoveInput) mgl64.Vec3 {
	forward := vmath.Horizontal(in.Facing)
	side := vmath.Strafe(forward)

	var v mgl64.Vec3
	if in.Forward {
		v = v.Add(forward.Mul(pc.speed))
	}
	if in.Back {
		v = v.Sub(forward.Mul(pc.speed))
	}
	if in.Right {
		v = v.Add(side.Mul(pc.speed))
	}
	if in.Left {
		v = v.Sub(side.Mul(pc.speed))
	}
	return v
}
