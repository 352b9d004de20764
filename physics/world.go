package physics

import (
	"github.com/akmonengine/feather/actor"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/fps-cuber/parameter"
)

// Config holds world-wide simulation settings
type Config struct {
	Gravity           mgl64.Vec3
	Substeps          int
	LinearDamping     float64
	Friction          float64
	Restitution       float64
	PenetrationSlop   float64
	CorrectionPercent float64
	CellSize          float64
}

// DefaultConfig returns settings from parameter defaults
func DefaultConfig() Config {
	return Config{
		Gravity:           mgl64.Vec3{0, parameter.Gravity, 0},
		Substeps:          parameter.PhysicsSubsteps,
		LinearDamping:     parameter.LinearDamping,
		Friction:          parameter.Friction,
		Restitution:       parameter.Restitution,
		PenetrationSlop:   parameter.PenetrationSlop,
		CorrectionPercent: parameter.CorrectionPercent,
		CellSize:          parameter.BroadphaseCellSize,
	}
}

// body pairs a feather rigid body with the filter and callbacks it lacks
type body struct {
	id      BodyHandle
	shape   Shape
	rb      *actor.RigidBody
	invMass float64
	force   mgl64.Vec3
	group   Group
	mask    Group

	handlers []CollisionFunc
	removed  bool
	stamp    uint64
}

func (b *body) static() bool { return b.invMass == 0 }

func (b *body) pos() mgl64.Vec3 { return b.rb.Transform.Position }

// bounds returns the axis-aligned extent, planes have none
func (b *body) bounds() (lo, hi mgl64.Vec3) {
	var h mgl64.Vec3
	switch b.shape.Kind {
	case ShapeBox:
		h = b.shape.HalfExtents
	case ShapeSphere:
		r := b.shape.Radius
		h = mgl64.Vec3{r, r, r}
	}
	return b.pos().Sub(h), b.pos().Add(h)
}

func (b *body) accepts(o *body) bool {
	return b.group&o.mask != 0 && o.group&b.mask != 0
}

// pairKey orders two handles so a pair reports once per step
type pairKey struct {
	lo, hi BodyHandle
}

// World steps feather rigid bodies with translation-only contact resolution
// Not safe for concurrent use: owned by the simulation loop goroutine
type World struct {
	cfg Config

	bodies map[BodyHandle]*body
	order  []*body // creation order keeps iteration deterministic
	nextID BodyHandle

	staticHash  *spatialHash
	staticDirty bool
	dynamicHash *spatialHash
	planes      []*body
	stamp       uint64

	stepping      bool
	pendingRemove []BodyHandle

	contacts []contact
	reported map[pairKey]int // index into reports
	reports  []contact
}

var _ Engine = (*World)(nil)

// NewWorld creates an empty world
func NewWorld(cfg Config) *World {
	if cfg.Substeps < 1 {
		cfg.Substeps = 1
	}
	if cfg.CellSize <= 0 {
		cfg.CellSize = parameter.BroadphaseCellSize
	}
	return &World{
		cfg:         cfg,
		bodies:      make(map[BodyHandle]*body),
		staticHash:  newSpatialHash(cfg.CellSize),
		dynamicHash: newSpatialHash(cfg.CellSize),
		reported:    make(map[pairKey]int),
	}
}

func (w *World) CreateBody(shape Shape, mass float64, position mgl64.Vec3, group, mask Group) BodyHandle {
	w.nextID++
	b := &body{
		id:    w.nextID,
		shape: shape,
		group: group,
		mask:  mask,
	}

	tr := actor.NewTransform()
	tr.Position = position
	as := shape.actor()
	// Planes are always static
	if mass > 0 && shape.Kind != ShapePlane {
		// feather derives mass from density; unit density yields the volume
		b.rb = actor.NewRigidBody(tr, as, actor.BodyTypeDynamic, mass/as.ComputeMass(1))
		b.invMass = 1 / b.rb.Material.GetMass()
	} else {
		b.rb = actor.NewRigidBody(tr, as, actor.BodyTypeStatic, 0)
	}
	b.rb.Material.LinearDamping = w.cfg.LinearDamping
	b.rb.Material.Restitution = w.cfg.Restitution
	b.rb.Material.StaticFriction = w.cfg.Friction
	b.rb.Material.DynamicFriction = w.cfg.Friction
	w.bodies[b.id] = b
	w.order = append(w.order, b)

	switch {
	case shape.Kind == ShapePlane:
		w.planes = append(w.planes, b)
	case b.static():
		w.staticDirty = true
	}
	return b.id
}

func (w *World) DestroyBody(h BodyHandle) bool {
	b, ok := w.bodies[h]
	if !ok || b.removed {
		return false
	}
	b.removed = true
	if w.stepping {
		w.pendingRemove = append(w.pendingRemove, h)
		return true
	}
	w.remove(b)
	return true
}

func (w *World) remove(b *body) {
	delete(w.bodies, b.id)
	w.order = removeBody(w.order, b)
	if b.shape.Kind == ShapePlane {
		w.planes = removeBody(w.planes, b)
	} else if b.static() {
		w.staticDirty = true
	}
}

func removeBody(list []*body, b *body) []*body {
	for i, o := range list {
		if o == b {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil
			return list[:len(list)-1]
		}
	}
	return list
}

func (w *World) OnCollision(h BodyHandle, fn CollisionFunc) {
	if b, ok := w.bodies[h]; ok && fn != nil {
		b.handlers = append(b.handlers, fn)
	}
}

// Step advances the world; handlers fire once per touching pair after all substeps
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	w.stepping = true

	sub := dt / float64(w.cfg.Substeps)
	for i := 0; i < w.cfg.Substeps; i++ {
		w.integrate(sub)
		w.detect()
		for j := range w.contacts {
			w.resolve(&w.contacts[j])
			w.record(w.contacts[j])
		}
	}
	for _, b := range w.order {
		b.force = mgl64.Vec3{}
	}

	w.dispatch()

	w.stepping = false
	for _, h := range w.pendingRemove {
		if b, ok := w.bodies[h]; ok {
			w.remove(b)
		}
	}
	w.pendingRemove = w.pendingRemove[:0]
}

// integrate folds accumulated forces into velocity, feather applies gravity and damping
func (w *World) integrate(h float64) {
	for _, b := range w.order {
		if b.static() || b.removed {
			continue
		}
		b.rb.Velocity = b.rb.Velocity.Add(b.force.Mul(b.invMass * h))
		b.rb.Integrate(h, w.cfg.Gravity)
	}
}

// detect fills w.contacts for the current substep
func (w *World) detect() {
	w.contacts = w.contacts[:0]

	if w.staticDirty {
		w.staticHash = newSpatialHash(w.cfg.CellSize)
		for _, b := range w.order {
			if b.static() && b.shape.Kind != ShapePlane && !b.removed {
				w.staticHash.insert(b)
			}
		}
		w.staticDirty = false
	}

	w.dynamicHash.reset()
	for _, b := range w.order {
		if !b.static() && !b.removed {
			w.dynamicHash.insert(b)
		}
	}

	for _, a := range w.order {
		if a.static() || a.removed {
			continue
		}

		w.stamp++
		w.staticHash.query(a, w.stamp, func(o *body) {
			w.test(a, o)
		})

		w.stamp++
		w.dynamicHash.query(a, w.stamp, func(o *body) {
			// Each dynamic pair once: lower id drives
			if o.id > a.id {
				w.test(a, o)
			}
		})

		for _, p := range w.planes {
			w.test(p, a)
		}
	}
}

func (w *World) test(a, b *body) {
	if a.removed || b.removed || !a.accepts(b) {
		return
	}
	n, depth, ok := collide(a, b)
	if !ok {
		return
	}
	w.contacts = append(w.contacts, contact{a: a, b: b, normal: n, depth: depth})
}

// record keeps the first contact of each pair seen during the step
func (w *World) record(c contact) {
	k := pairKey{c.a.id, c.b.id}
	if k.lo > k.hi {
		k.lo, k.hi = k.hi, k.lo
	}
	if _, seen := w.reported[k]; seen {
		return
	}
	w.reported[k] = len(w.reports)
	w.reports = append(w.reports, c)
}

func (w *World) dispatch() {
	for _, c := range w.reports {
		if !c.a.removed {
			for _, fn := range c.a.handlers {
				fn(c.b.id, c.normal)
			}
		}
		if !c.b.removed {
			for _, fn := range c.b.handlers {
				fn(c.a.id, c.normal.Mul(-1))
			}
		}
	}
	w.reports = w.reports[:0]
	clear(w.reported)
}

func (w *World) ApplyImpulse(h BodyHandle, impulse, _ mgl64.Vec3) {
	if b, ok := w.bodies[h]; ok && !b.static() {
		b.rb.Velocity = b.rb.Velocity.Add(impulse.Mul(b.invMass))
	}
}

func (w *World) ApplyForce(h BodyHandle, force, _ mgl64.Vec3) {
	if b, ok := w.bodies[h]; ok && !b.static() {
		b.force = b.force.Add(force)
	}
}

func (w *World) Position(h BodyHandle) mgl64.Vec3 {
	if b, ok := w.bodies[h]; ok {
		return b.pos()
	}
	return mgl64.Vec3{}
}

func (w *World) SetPosition(h BodyHandle, p mgl64.Vec3) {
	if b, ok := w.bodies[h]; ok {
		b.rb.Transform.Position = p
		if b.static() && b.shape.Kind != ShapePlane {
			w.staticDirty = true
		}
	}
}

func (w *World) Velocity(h BodyHandle) mgl64.Vec3 {
	if b, ok := w.bodies[h]; ok {
		return b.rb.Velocity
	}
	return mgl64.Vec3{}
}

func (w *World) SetVelocity(h BodyHandle, v mgl64.Vec3) {
	if b, ok := w.bodies[h]; ok && !b.static() {
		b.rb.Velocity = v
	}
}

func (w *World) Orientation(h BodyHandle) mgl64.Quat {
	if b, ok := w.bodies[h]; ok {
		return b.rb.Transform.Rotation
	}
	return mgl64.QuatIdent()
}

func (w *World) Mass(h BodyHandle) float64 {
	if b, ok := w.bodies[h]; ok && !b.static() {
		return b.rb.Material.GetMass()
	}
	return 0
}

func (w *World) Exists(h BodyHandle) bool {
	b, ok := w.bodies[h]
	return ok && !b.removed
}

func (w *World) BodyCount() int {
	return len(w.bodies) - len(w.pendingRemove)
}
