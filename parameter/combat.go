package parameter

import "time"

// Weapon
const (
	// FireRateRPM is the weapon cadence in rounds per minute
	FireRateRPM = 600

	// FireInterval is the minimum wall time between shots (100ms at 600rpm)
	FireInterval = time.Minute / FireRateRPM

	// BulletRadius is the sphere radius of a bullet body
	BulletRadius = 0.2

	// BulletMass is the mass of a bullet body
	BulletMass = 1.0

	// BulletSpeed is the muzzle speed along the facing direction
	BulletSpeed = 111.0

	// BulletLifetime is the forced despawn delay after creation
	BulletLifetime = 5000 * time.Millisecond
)

// BulletOffset is the camera-local spawn offset of a bullet
var BulletOffset = [3]float64{0.1, -0.3, 0}

// Hazard
const (
	// TopContactThreshold is the minimum |normal.y| for a target contact to count as a top/bottom hit
	TopContactThreshold = 0.5

	// DamagePerHit is the health lost per qualifying target contact
	DamagePerHit = 1

	// HealPerHit is the health restored per target destroyed
	HealPerHit = 1
)
