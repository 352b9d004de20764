package parameter

// World Physics
const (
	Gravity = -9.81

	// PhysicsSubsteps splits each step to reduce tunneling of fast bullets
	PhysicsSubsteps = 4

	// LinearDamping is the exponential drag rate, velocity scales by exp(-k*dt)
	LinearDamping = 0.01

	// Friction is the Coulomb coefficient applied at contacts
	Friction = 0.3

	// Restitution is the bounce coefficient applied at contacts
	Restitution = 0.0

	// PenetrationSlop is the allowed overlap before positional correction
	PenetrationSlop = 0.005

	// CorrectionPercent is the fraction of penetration resolved per substep
	CorrectionPercent = 0.8

	// BroadphaseCellSize is the edge of a spatial hash cell
	BroadphaseCellSize = 2.0
)
