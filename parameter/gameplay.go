package parameter

// Target Spawning
const (
	// CubeSpawnChance is the per-tick probability of spawning a cube
	CubeSpawnChance = 0.05

	// SphereSpawnChance is the per-tick probability of spawning a sphere
	SphereSpawnChance = 0.05

	CubeSizeMin     = 0.2
	CubeSizeMax     = 2.0
	SphereRadiusMin = 0.1
	SphereRadiusMax = 1.0

	// SpawnAreaSize is the edge length of the square spawn area centered on origin
	SpawnAreaSize = 100.0

	// TargetDensity converts target volume into mass
	TargetDensity = 0.3

	// MaxTargets is the default live target cap, 0 means uncapped
	MaxTargets = 0
)

// Hostility
const (
	// HostilityForce is the magnitude of the per-frame push toward the player
	HostilityForce = 2.5

	// HostilityRampDivisor scales shotsFired into the pre-aggro push probability
	HostilityRampDivisor = 100.0
)

// Terrain
const (
	// TerrainGridSize is the tile count per side of the ground
	TerrainGridSize = 20

	// TerrainTileSize is the edge length of a ground tile
	TerrainTileSize = 1.3

	// TerrainTileChance is the probability an off-center tile exists
	TerrainTileChance = 0.94

	// FloorHeight is the y of the catch floor under the tiles
	FloorHeight = -8.0

	FloorHalfWidth  = 50.0
	FloorHalfHeight = 0.05
	FloorHalfDepth  = 50.0

	// KillingFloorHeight is the y of the lethal plane
	KillingFloorHeight = -20.0

	// KillingFloorExtent is the visual half extent of the lethal plane mesh
	KillingFloorExtent = 500.0
)

// TargetMinMass floors target mass so small targets are not flung by hostility pushes
const TargetMinMass = 0.3
