package game

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/fps-cuber/config"
	"github.com/lixenwraith/fps-cuber/core"
	"github.com/lixenwraith/fps-cuber/parameter"
	"github.com/lixenwraith/fps-cuber/physics"
)

// Terrain colors
var (
	colorGround       = core.RGBGray
	colorFloor        = core.RGB{R: 0x20, G: 0x20, B: 0x20}
	colorKillingFloor = core.RGBRed
)

// TerrainBuilder generates the static world once at startup
type TerrainBuilder struct {
	eng      physics.Engine
	renderer Renderer
	rng      *rand.Rand
	cfg      config.TerrainConfig
}

// NewTerrainBuilder creates a builder drawing from rng
func NewTerrainBuilder(eng physics.Engine, r Renderer, rng *rand.Rand, cfg config.TerrainConfig) *TerrainBuilder {
	return &TerrainBuilder{eng: eng, renderer: r, rng: rng, cfg: cfg}
}

// Build adds ground tiles, the catch floor and the killing floor to s
func (tb *TerrainBuilder) Build(s *WorldState, now time.Time) {
	tb.ground(s, now)
	tb.static(s, now, KindGround, physics.Box(mgl64.Vec3{parameter.FloorHalfWidth, parameter.FloorHalfHeight, parameter.FloorHalfDepth}),
		colorFloor, mgl64.Vec3{0, parameter.FloorHeight, 0})
	s.KillingFloor = tb.static(s, now, KindKillingFloor, physics.Plane(mgl64.Vec3{0, 1, 0}),
		colorKillingFloor, mgl64.Vec3{0, parameter.KillingFloorHeight, 0})
}

// ground lays a square grid of cube tiles at heights -1, 0 or +1 tile
// The center tile always exists at height 0 under the spawn point
func (tb *TerrainBuilder) ground(s *WorldState, now time.Time) {
	tile := tb.cfg.TileSize
	half := tile / 2
	shape := physics.Box(mgl64.Vec3{half, half, half})
	n := tb.cfg.GridSize / 2

	for i := -n; i <= n; i++ {
		for j := -n; j <= n; j++ {
			height := tile * float64(tb.rng.Intn(3)-1)
			switch {
			case i == 0 && j == 0:
				height = 0
			case tb.rng.Float64() >= tb.cfg.TileChance:
				continue
			}
			pos := mgl64.Vec3{float64(i) * tile, height, float64(j) * tile}
			tb.static(s, now, KindGround, shape, colorGround, pos)
		}
	}
}

func (tb *TerrainBuilder) static(s *WorldState, now time.Time, kind EntityKind, shape physics.Shape, color core.RGB, pos mgl64.Vec3) *Entity {
	e := spawnEntity(tb.eng, tb.renderer, kind, shape, color, 0, pos, GroupGround, MaskGround, now)
	s.AddTerrain(e)
	return e
}
