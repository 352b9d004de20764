package parameter

// Player Movement
const (
	// PlayerSpeed is the horizontal speed contributed by each held movement key (units/s)
	PlayerSpeed = 4.0

	// JumpSpeed is the vertical speed granted by a jump; the impulse is JumpSpeed * mass
	JumpSpeed = 5.0

	// MaxFallSpeed caps the advisory vertical accumulator while airborne
	MaxFallSpeed = JumpSpeed

	// GroundHeight is the resting eye height used to detect standing on ground
	GroundHeight = 1.8

	// LandingSpeed is the vertical speed below which a body back at ground height has landed
	LandingSpeed = 0.01
)

// Player Body
const (
	PlayerMass       = 4.0
	PlayerHalfWidth  = 0.5
	PlayerHalfHeight = 0.9
	PlayerHalfDepth  = 0.5
	PlayerSpawnX     = 0.0
	PlayerSpawnY     = GroundHeight
	PlayerSpawnZ     = 0.0

	// LookPitchMax clamps camera pitch just short of straight up/down (radians)
	LookPitchMax = 1.4
)

// Player Vitals
const (
	// MaxHealth is the upper clamp of player health
	MaxHealth = 3

	// AggroThreshold flips the permanent aggro flag once shotsFired exceeds it
	AggroThreshold = 100
)
