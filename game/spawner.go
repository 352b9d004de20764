package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/fps-cuber/config"
	"github.com/lixenwraith/fps-cuber/core"
	"github.com/lixenwraith/fps-cuber/parameter"
	"github.com/lixenwraith/fps-cuber/physics"
)

// ObjectSpawner drops random target cubes and spheres into the world
// Live count is unbounded unless MaxTargets is set
type ObjectSpawner struct {
	eng      physics.Engine
	renderer Renderer
	rng      *rand.Rand
	cfg      config.SpawnConfig
	log      zerolog.Logger
}

// NewObjectSpawner creates a spawner drawing from rng
func NewObjectSpawner(eng physics.Engine, r Renderer, rng *rand.Rand, cfg config.SpawnConfig, log zerolog.Logger) *ObjectSpawner {
	return &ObjectSpawner{eng: eng, renderer: r, rng: rng, cfg: cfg, log: log}
}

// Update rolls once for a cube and once for a sphere, returns the number spawned
func (sp *ObjectSpawner) Update(s *WorldState, now time.Time) int {
	n := 0
	if sp.rng.Float64() < sp.cfg.CubeChance && !sp.capped(s) {
		sp.SpawnCube(s, now)
		n++
	}
	if sp.rng.Float64() < sp.cfg.SphereChance && !sp.capped(s) {
		sp.SpawnSphere(s, now)
		n++
	}
	return n
}

func (sp *ObjectSpawner) capped(s *WorldState) bool {
	return sp.cfg.MaxTargets > 0 && len(s.Targets()) >= sp.cfg.MaxTargets
}

// SpawnCube adds a cube with edge in [CubeSizeMin, CubeSizeMax) resting on y=0
func (sp *ObjectSpawner) SpawnCube(s *WorldState, now time.Time) *Entity {
	size := sp.between(sp.cfg.CubeSizeMin, sp.cfg.CubeSizeMax)
	half := size / 2
	pos := sp.position(half)
	return sp.spawn(s, now, physics.Box(mgl64.Vec3{half, half, half}), pos, size*size*size)
}

// SpawnSphere adds a sphere with radius in [SphereRadiusMin, SphereRadiusMax) resting on y=0
func (sp *ObjectSpawner) SpawnSphere(s *WorldState, now time.Time) *Entity {
	r := sp.between(sp.cfg.SphereRadiusMin, sp.cfg.SphereRadiusMax)
	pos := sp.position(r)
	return sp.spawn(s, now, physics.Sphere(r), pos, 4.0/3.0*math.Pi*r*r*r)
}

func (sp *ObjectSpawner) spawn(s *WorldState, now time.Time, shape physics.Shape, pos mgl64.Vec3, volume float64) *Entity {
	color := core.RGBFromFloat(sp.rng.Float64(), sp.rng.Float64(), sp.rng.Float64())
	mass := math.Max(sp.cfg.Density*volume, parameter.TargetMinMass)
	e := spawnEntity(sp.eng, sp.renderer, KindTarget, shape, color, mass, pos, GroupTarget, MaskTarget, now)
	s.AddTarget(e)
	sp.log.Debug().Stringer("shape", shape.Kind).Float64("mass", mass).Int("live", len(s.Targets())).Msg("target spawned")
	return e
}

func (sp *ObjectSpawner) between(lo, hi float64) float64 {
	return lo + sp.rng.Float64()*(hi-lo)
}

// position picks a random point in the spawn square at height y
func (sp *ObjectSpawner) position(y float64) mgl64.Vec3 {
	x := (sp.rng.Float64() - 0.5) * sp.cfg.Area
	z := (sp.rng.Float64() - 0.5) * sp.cfg.Area
	return mgl64.Vec3{x, y, z}
}
