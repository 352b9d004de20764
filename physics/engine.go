package physics

import (
	"github.com/akmonengine/feather/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// BodyHandle is an opaque reference to a rigid body, zero is never issued
type BodyHandle uint64

// Group is a collision filter bitmask
// A pair is tested only when each body's group is in the other's mask
type Group uint32

// GroupAll matches every group
const GroupAll Group = ^Group(0)

// ShapeKind identifies a collision shape
type ShapeKind uint8

const (
	ShapeBox ShapeKind = iota
	ShapeSphere
	ShapePlane
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeBox:
		return "box"
	case ShapeSphere:
		return "sphere"
	case ShapePlane:
		return "plane"
	default:
		return "unknown"
	}
}

// Shape describes body geometry; fields not relevant to Kind are ignored
type Shape struct {
	Kind        ShapeKind
	HalfExtents mgl64.Vec3 // Box
	Radius      float64    // Sphere
	Normal      mgl64.Vec3 // Plane, unit length
}

// Box returns an axis-aligned box shape
func Box(halfExtents mgl64.Vec3) Shape {
	return Shape{Kind: ShapeBox, HalfExtents: halfExtents}
}

// Sphere returns a sphere shape
func Sphere(radius float64) Shape {
	return Shape{Kind: ShapeSphere, Radius: radius}
}

// Plane returns an infinite plane through the body position with the given normal
func Plane(normal mgl64.Vec3) Shape {
	return Shape{Kind: ShapePlane, Normal: normal.Normalize()}
}

// actor converts the descriptor to the feather shape carried by the rigid body
// Planes pass through the body position, so the local distance is zero
func (s Shape) actor() actor.ShapeInterface {
	switch s.Kind {
	case ShapeSphere:
		return &actor.Sphere{Radius: s.Radius}
	case ShapePlane:
		return &actor.Plane{Normal: s.Normal, Distance: 0}
	default:
		return &actor.Box{HalfExtents: s.HalfExtents}
	}
}

// CollisionFunc receives the other body and the contact normal
// The normal points from the body the handler is registered on toward other
type CollisionFunc func(other BodyHandle, normal mgl64.Vec3)

// Engine is the rigid-body simulation consumed by the game core
// The engine is authoritative over transforms: callers write velocities and impulses, read positions
type Engine interface {
	// CreateBody adds a body; mass 0 makes it static
	CreateBody(shape Shape, mass float64, position mgl64.Vec3, group, mask Group) BodyHandle

	// DestroyBody removes a body, returns false if unknown
	// Destruction requested during Step takes effect when Step returns
	DestroyBody(h BodyHandle) bool

	// Step advances the simulation by dt seconds, collision handlers run synchronously inside
	Step(dt float64)

	// OnCollision registers a handler fired for every contact the body takes part in
	OnCollision(h BodyHandle, fn CollisionFunc)

	ApplyImpulse(h BodyHandle, impulse, at mgl64.Vec3)
	ApplyForce(h BodyHandle, force, at mgl64.Vec3)

	Position(h BodyHandle) mgl64.Vec3
	SetPosition(h BodyHandle, p mgl64.Vec3)
	Velocity(h BodyHandle) mgl64.Vec3
	SetVelocity(h BodyHandle, v mgl64.Vec3)
	Orientation(h BodyHandle) mgl64.Quat
	Mass(h BodyHandle) float64

	// Exists reports whether the body is live
	Exists(h BodyHandle) bool

	// BodyCount returns the number of live bodies
	BodyCount() int
}
