package game

import (
	"github.com/lixenwraith/fps-cuber/physics"
	"github.com/lixenwraith/fps-cuber/vmath"
)

// Collision groups
const (
	GroupPlayer physics.Group = 1 << iota
	GroupBullet
	GroupTarget
	GroupGround
)

// Collision masks: the player never touches its own bullets, bullets only touch targets and ground
const (
	MaskPlayer = physics.GroupAll &^ GroupBullet
	MaskBullet = GroupTarget | GroupGround
	MaskTarget = physics.GroupAll
	MaskGround = physics.GroupAll
)

// Player is the singleton avatar state
type Player struct {
	Body physics.BodyHandle

	Health     int  // [0, maxHealth]
	Score      int  // never decreases
	ShotsFired int  // never negative
	Aggro      bool // one-way
	Dead       bool // one-way

	// Ascending is set by a jump and cleared on landing, jump release or pointer lock change
	Ascending bool
	// Airborne records that the current jump has risen above ground height
	Airborne bool
	// VelocityY is the advisory vertical accumulator, the body's own velocity is authoritative
	VelocityY float64
	// Height is the displayed eye height, pinned to ground height when standing
	Height float64

	Yaw, Pitch float64
}

// WorldState is the aggregate of all mutable simulation state
// Owned by the loop goroutine and passed to every system
type WorldState struct {
	Player Player

	maxHealth      int
	aggroThreshold int

	targets []*Entity
	bullets []*Entity
	byBody  map[physics.BodyHandle]*Entity

	Terrain      []*Entity
	KillingFloor *Entity
}

// NewWorldState creates state with a full-health player
func NewWorldState(maxHealth, aggroThreshold int) *WorldState {
	return &WorldState{
		Player: Player{
			Health:    maxHealth,
			Ascending: true, // no jump before the first release or lock change
		},
		maxHealth:      maxHealth,
		aggroThreshold: aggroThreshold,
		byBody:         make(map[physics.BodyHandle]*Entity),
	}
}

// MaxHealth returns the health clamp
func (s *WorldState) MaxHealth() int { return s.maxHealth }

// Damage lowers health by n clamped at zero and returns the new health
func (s *WorldState) Damage(n int) int {
	s.Player.Health = vmath.ClampInt(s.Player.Health-n, 0, s.maxHealth)
	return s.Player.Health
}

// Heal raises health by n clamped at max, returns whether health changed
// The dead stay dead
func (s *WorldState) Heal(n int) bool {
	if s.Player.Dead || s.Player.Health >= s.maxHealth {
		return false
	}
	s.Player.Health = vmath.ClampInt(s.Player.Health+n, 0, s.maxHealth)
	return true
}

// AddScore increments the score
func (s *WorldState) AddScore() int {
	s.Player.Score++
	return s.Player.Score
}

// RecordShot counts a bullet collision and latches aggro past the threshold
func (s *WorldState) RecordShot() {
	s.Player.ShotsFired++
	if s.Player.ShotsFired > s.aggroThreshold {
		s.Player.Aggro = true
	}
}

// ExpireShot uncounts a bullet that timed out, never below zero
func (s *WorldState) ExpireShot() {
	if s.Player.ShotsFired > 0 {
		s.Player.ShotsFired--
	}
}

// MarkDead flips the dead flag and zeroes health; true only on the first call
func (s *WorldState) MarkDead() bool {
	s.Player.Health = 0
	if s.Player.Dead {
		return false
	}
	s.Player.Dead = true
	return true
}

// AddTarget registers a live target
func (s *WorldState) AddTarget(e *Entity) {
	e.index = len(s.targets)
	s.targets = append(s.targets, e)
	s.byBody[e.Body] = e
}

// AddBullet registers a live bullet
func (s *WorldState) AddBullet(e *Entity) {
	e.index = len(s.bullets)
	s.bullets = append(s.bullets, e)
	s.byBody[e.Body] = e
}

// AddTerrain registers a static terrain entity
func (s *WorldState) AddTerrain(e *Entity) {
	s.Terrain = append(s.Terrain, e)
	s.byBody[e.Body] = e
}

// Lookup returns the live entity owning body, nil if none
func (s *WorldState) Lookup(body physics.BodyHandle) *Entity {
	if e := s.byBody[body]; e.Alive() {
		return e
	}
	return nil
}

// Targets returns live targets; the slice is invalidated by the next despawn
func (s *WorldState) Targets() []*Entity { return s.targets }

// Bullets returns live bullets; the slice is invalidated by the next despawn
func (s *WorldState) Bullets() []*Entity { return s.bullets }

// Despawn destroys body and mesh and forgets the entity
// Check-and-set on the tombstone: only the first caller acts
func (s *WorldState) Despawn(e *Entity, eng physics.Engine, r Renderer) bool {
	if !e.destroy(eng, r) {
		return false
	}
	delete(s.byBody, e.Body)
	switch e.Kind {
	case KindTarget:
		s.targets = removeEntity(s.targets, e)
	case KindBullet:
		s.bullets = removeEntity(s.bullets, e)
	}
	return true
}

// removeEntity swap-deletes e, fixing the moved entity's index
func removeEntity(list []*Entity, e *Entity) []*Entity {
	i := e.index
	if i < 0 || i >= len(list) || list[i] != e {
		return list
	}
	last := len(list) - 1
	list[i] = list[last]
	list[i].index = i
	list[last] = nil
	e.index = -1
	return list[:last]
}
