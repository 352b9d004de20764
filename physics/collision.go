package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// contact is a single narrowphase result
// normal points from a toward b
type contact struct {
	a, b   *body
	normal mgl64.Vec3
	depth  float64
}

// collide runs the narrowphase for a pair, normal oriented a -> b
func collide(a, b *body) (mgl64.Vec3, float64, bool) {
	switch a.shape.Kind {
	case ShapeBox:
		switch b.shape.Kind {
		case ShapeBox:
			return boxBox(a.pos(), a.shape.HalfExtents, b.pos(), b.shape.HalfExtents)
		case ShapeSphere:
			n, d, ok := sphereBox(b.pos(), b.shape.Radius, a.pos(), a.shape.HalfExtents)
			return n.Mul(-1), d, ok
		case ShapePlane:
			n, d, ok := planeBody(b, a)
			return n.Mul(-1), d, ok
		}
	case ShapeSphere:
		switch b.shape.Kind {
		case ShapeBox:
			return sphereBox(a.pos(), a.shape.Radius, b.pos(), b.shape.HalfExtents)
		case ShapeSphere:
			return sphereSphere(a.pos(), a.shape.Radius, b.pos(), b.shape.Radius)
		case ShapePlane:
			n, d, ok := planeBody(b, a)
			return n.Mul(-1), d, ok
		}
	case ShapePlane:
		if b.shape.Kind != ShapePlane {
			return planeBody(a, b)
		}
	}
	return mgl64.Vec3{}, 0, false
}

// boxBox tests two axis-aligned boxes, resolving along the axis of least overlap
func boxBox(pa, ha, pb, hb mgl64.Vec3) (mgl64.Vec3, float64, bool) {
	d := pb.Sub(pa)
	best := math.Inf(1)
	axis := -1
	for i := 0; i < 3; i++ {
		overlap := ha[i] + hb[i] - math.Abs(d[i])
		if overlap <= 0 {
			return mgl64.Vec3{}, 0, false
		}
		if overlap < best {
			best = overlap
			axis = i
		}
	}
	var n mgl64.Vec3
	if d[axis] < 0 {
		n[axis] = -1
	} else {
		n[axis] = 1
	}
	return n, best, true
}

// sphereBox tests a sphere against an axis-aligned box, normal sphere -> box
func sphereBox(c mgl64.Vec3, r float64, p, h mgl64.Vec3) (mgl64.Vec3, float64, bool) {
	var q mgl64.Vec3
	inside := true
	for i := 0; i < 3; i++ {
		lo, hi := p[i]-h[i], p[i]+h[i]
		switch {
		case c[i] < lo:
			q[i] = lo
			inside = false
		case c[i] > hi:
			q[i] = hi
			inside = false
		default:
			q[i] = c[i]
		}
	}

	if inside {
		// Center inside the box: push out through the nearest face
		best := math.Inf(1)
		axis := 0
		for i := 0; i < 3; i++ {
			dist := h[i] - math.Abs(c[i]-p[i])
			if dist < best {
				best = dist
				axis = i
			}
		}
		var n mgl64.Vec3
		if c[axis]-p[axis] < 0 {
			n[axis] = 1
		} else {
			n[axis] = -1
		}
		return n, r + best, true
	}

	dv := q.Sub(c)
	dist := dv.Len()
	if dist >= r {
		return mgl64.Vec3{}, 0, false
	}
	if dist < 1e-12 {
		return mgl64.Vec3{0, -1, 0}, r, true
	}
	return dv.Mul(1 / dist), r - dist, true
}

func sphereSphere(pa mgl64.Vec3, ra float64, pb mgl64.Vec3, rb float64) (mgl64.Vec3, float64, bool) {
	d := pb.Sub(pa)
	dist := d.Len()
	if dist >= ra+rb {
		return mgl64.Vec3{}, 0, false
	}
	if dist < 1e-12 {
		return mgl64.Vec3{0, 1, 0}, ra + rb, true
	}
	return d.Mul(1 / dist), ra + rb - dist, true
}

// planeBody tests a plane against a box or sphere, normal plane -> body
func planeBody(plane, other *body) (mgl64.Vec3, float64, bool) {
	n := plane.shape.Normal
	var extent float64
	switch other.shape.Kind {
	case ShapeSphere:
		extent = other.shape.Radius
	case ShapeBox:
		h := other.shape.HalfExtents
		extent = math.Abs(n[0])*h[0] + math.Abs(n[1])*h[1] + math.Abs(n[2])*h[2]
	default:
		return mgl64.Vec3{}, 0, false
	}
	s := other.pos().Sub(plane.pos()).Dot(n) - extent
	if s >= 0 {
		return mgl64.Vec3{}, 0, false
	}
	return n, -s, true
}

// resolve separates the pair and removes approaching normal velocity with friction
func (w *World) resolve(c *contact) {
	a, b := c.a, c.b
	invSum := a.invMass + b.invMass
	if invSum == 0 {
		return
	}
	n := c.normal

	ra, rb := a.rb, b.rb
	if corr := math.Max(c.depth-w.cfg.PenetrationSlop, 0) / invSum * w.cfg.CorrectionPercent; corr > 0 {
		ra.Transform.Position = ra.Transform.Position.Sub(n.Mul(corr * a.invMass))
		rb.Transform.Position = rb.Transform.Position.Add(n.Mul(corr * b.invMass))
	}

	rv := rb.Velocity.Sub(ra.Velocity)
	vn := rv.Dot(n)
	if vn >= 0 {
		return
	}

	e := math.Max(ra.Material.Restitution, rb.Material.Restitution)
	j := -(1 + e) * vn / invSum
	impulse := n.Mul(j)
	ra.Velocity = ra.Velocity.Sub(impulse.Mul(a.invMass))
	rb.Velocity = rb.Velocity.Add(impulse.Mul(b.invMass))

	// Coulomb friction on the tangential component
	rv = rb.Velocity.Sub(ra.Velocity)
	t := rv.Sub(n.Mul(rv.Dot(n)))
	tl := t.Len()
	if tl < 1e-9 {
		return
	}
	t = t.Mul(1 / tl)
	jt := -rv.Dot(t) / invSum
	maxF := math.Sqrt(ra.Material.DynamicFriction*rb.Material.DynamicFriction) * j
	if jt > maxF {
		jt = maxF
	} else if jt < -maxF {
		jt = -maxF
	}
	ft := t.Mul(jt)
	ra.Velocity = ra.Velocity.Sub(ft.Mul(a.invMass))
	rb.Velocity = rb.Velocity.Add(ft.Mul(b.invMass))
}
