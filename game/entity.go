package game

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/fps-cuber/core"
	"github.com/lixenwraith/fps-cuber/physics"
)

// EntityKind classifies world entities
type EntityKind uint8

const (
	KindTarget EntityKind = iota
	KindBullet
	KindGround
	KindKillingFloor
)

func (k EntityKind) String() string {
	switch k {
	case KindTarget:
		return "target"
	case KindBullet:
		return "bullet"
	case KindGround:
		return "ground"
	case KindKillingFloor:
		return "killing_floor"
	default:
		return "unknown"
	}
}

// Entity pairs a physics body with its render mesh
// Both are created together by spawn and destroyed together by Despawn
type Entity struct {
	Kind      EntityKind
	Shape     physics.Shape
	Color     core.RGB
	Body      physics.BodyHandle
	Mesh      MeshHandle
	CreatedAt time.Time

	alive    bool
	resolved bool // bullet first contact consumed
	index    int  // position in the owning WorldState slice
}

// Alive reports whether the entity has not been despawned
func (e *Entity) Alive() bool {
	return e != nil && e.alive
}

// spawnEntity creates body and mesh as one unit
func spawnEntity(eng physics.Engine, r Renderer, kind EntityKind, shape physics.Shape, color core.RGB,
	mass float64, pos mgl64.Vec3, group, mask physics.Group, now time.Time) *Entity {
	body := eng.CreateBody(shape, mass, pos, group, mask)
	mesh := r.CreateMesh(shape, color)
	r.SetTransform(mesh, pos, eng.Orientation(body))
	return &Entity{
		Kind:      kind,
		Shape:     shape,
		Color:     color,
		Body:      body,
		Mesh:      mesh,
		CreatedAt: now,
		alive:     true,
		index:     -1,
	}
}

// destroy tears down body and mesh once; later calls are no-ops
func (e *Entity) destroy(eng physics.Engine, r Renderer) bool {
	if !e.Alive() {
		return false
	}
	e.alive = false
	eng.DestroyBody(e.Body)
	r.DestroyMesh(e.Mesh)
	return true
}
