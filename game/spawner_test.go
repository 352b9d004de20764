package game

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/fps-cuber/config"
	"github.com/lixenwraith/fps-cuber/physics"
)

func newTestSpawner(mutate func(*config.SpawnConfig)) (*ObjectSpawner, *fakeEngine, *fakeRenderer) {
	cfg := config.Default().Spawn
	if mutate != nil {
		mutate(&cfg)
	}
	eng := newFakeEngine()
	r := newFakeRenderer()
	return NewObjectSpawner(eng, r, rand.New(rand.NewSource(3)), cfg, zerolog.Nop()), eng, r
}

func TestSpawner_ShapesWithinRanges(t *testing.T) {
	sp, eng, r := newTestSpawner(nil)
	s := NewWorldState(3, 100)

	for i := 0; i < 200; i++ {
		cube := sp.SpawnCube(s, testNow)
		edge := cube.Shape.HalfExtents.X() * 2
		assert.GreaterOrEqual(t, edge, 0.2)
		assert.Less(t, edge, 2.0)

		sphere := sp.SpawnSphere(s, testNow)
		assert.GreaterOrEqual(t, sphere.Shape.Radius, 0.1)
		assert.Less(t, sphere.Shape.Radius, 1.0)

		for _, e := range []*Entity{cube, sphere} {
			body := eng.bodies[e.Body]
			require.NotNil(t, body)
			assert.Equal(t, GroupTarget, body.group)
			assert.Equal(t, physics.GroupAll, body.mask)
			assert.GreaterOrEqual(t, body.mass, 0.3)
			assert.LessOrEqual(t, body.pos.X(), 50.0)
			assert.GreaterOrEqual(t, body.pos.X(), -50.0)
			assert.Contains(t, r.meshes, e.Mesh)
		}
	}
	assert.Len(t, s.Targets(), 400)
}

func TestSpawner_MassFollowsDensity(t *testing.T) {
	sp, eng, _ := newTestSpawner(func(c *config.SpawnConfig) {
		c.CubeSizeMin, c.CubeSizeMax = 2, 2
	})
	s := NewWorldState(3, 100)
	cube := sp.SpawnCube(s, testNow)
	assert.InDelta(t, 0.3*8, eng.bodies[cube.Body].mass, 1e-9)
	assert.InDelta(t, 1.0, eng.bodies[cube.Body].pos.Y(), 1e-9, "cubes rest on y=0")
}

func TestSpawner_UncappedByDefault(t *testing.T) {
	sp, _, _ := newTestSpawner(func(c *config.SpawnConfig) {
		c.CubeChance, c.SphereChance = 1, 1
	})
	s := NewWorldState(3, 100)
	for i := 0; i < 500; i++ {
		assert.Equal(t, 2, sp.Update(s, testNow))
	}
	assert.Len(t, s.Targets(), 1000)
}

func TestSpawner_Cap(t *testing.T) {
	sp, _, _ := newTestSpawner(func(c *config.SpawnConfig) {
		c.CubeChance, c.SphereChance = 1, 1
		c.MaxTargets = 5
	})
	s := NewWorldState(3, 100)
	for i := 0; i < 10; i++ {
		sp.Update(s, testNow)
	}
	assert.Len(t, s.Targets(), 5)
}

func TestSpawner_Probability(t *testing.T) {
	sp, _, _ := newTestSpawner(nil)
	s := NewWorldState(3, 100)
	for i := 0; i < 2000; i++ {
		sp.Update(s, testNow)
	}
	// 5% each for cubes and spheres over 2000 ticks: ~200
	assert.InDelta(t, 200, len(s.Targets()), 60)
}

func TestTerrain(t *testing.T) {
	eng := newFakeEngine()
	r := newFakeRenderer()
	s := NewWorldState(3, 100)
	cfg := config.Default().Terrain
	NewTerrainBuilder(eng, r, rand.New(rand.NewSource(11)), cfg).Build(s, testNow)

	var tiles, floors int
	var center bool
	for _, e := range s.Terrain {
		body := eng.bodies[e.Body]
		require.NotNil(t, body)
		assert.Zero(t, body.mass, "terrain is static")
		assert.Equal(t, GroupGround, body.group)
		switch {
		case e.Kind == KindKillingFloor:
			assert.Equal(t, physics.ShapePlane, e.Shape.Kind)
			assert.Equal(t, -20.0, body.pos.Y())
		case e.Shape.HalfExtents.X() == 50:
			floors++
			assert.Equal(t, -8.0, body.pos.Y())
		default:
			tiles++
			y := body.pos.Y()
			assert.Contains(t, []float64{-1.3, 0, 1.3}, y)
			if body.pos.X() == 0 && body.pos.Z() == 0 {
				center = true
				assert.Zero(t, y)
			}
		}
	}
	assert.True(t, center, "tile under the spawn point always exists")
	assert.Equal(t, 1, floors)
	assert.LessOrEqual(t, tiles, 21*21)
	assert.Greater(t, tiles, 21*21*8/10)
	require.NotNil(t, s.KillingFloor)
	assert.Len(t, r.meshes, len(s.Terrain))
}
