package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// epsilon below which a vector is treated as zero length
const epsilon = 1e-9

// SafeNormalize returns the unit vector of v, or the zero vector when v has no length
// A zero result is a no-op direction: scaling it moves nothing
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < epsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// Horizontal projects v onto the XZ plane and normalizes it
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return SafeNormalize(mgl64.Vec3{v.X(), 0, v.Z()})
}

// Strafe returns the rightward perpendicular of a horizontal facing direction
func Strafe(forward mgl64.Vec3) mgl64.Vec3 {
	return SafeNormalize(mgl64.Vec3{-forward.Z(), 0, forward.X()})
}

// FacingFromAngles converts yaw/pitch (radians) to a unit facing direction
// Yaw 0 and pitch 0 look down -Z; positive yaw turns right
func FacingFromAngles(yaw, pitch float64) mgl64.Vec3 {
	cp := math.Cos(pitch)
	return SafeNormalize(mgl64.Vec3{
		math.Sin(yaw) * cp,
		math.Sin(pitch),
		-math.Cos(yaw) * cp,
	})
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// RotateY rotates v around the Y axis by angle radians
func RotateY(v mgl64.Vec3, angle float64) mgl64.Vec3 {
	return mgl64.QuatRotate(angle, mgl64.Vec3{0, 1, 0}).Rotate(v)
}
