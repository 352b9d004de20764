package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/fps-cuber/config"
	"github.com/lixenwraith/fps-cuber/core"
	"github.com/lixenwraith/fps-cuber/physics"
)

// fakeEngine keeps bodies where tests put them and fires queued contacts inside Step
type fakeEngine struct {
	bodies map[physics.BodyHandle]*fakeBody
	next   physics.BodyHandle

	stepping        bool
	steps           int
	queued          []fakeContact
	destroyedInStep int
}

type fakeBody struct {
	shape    physics.Shape
	mass     float64
	pos, vel mgl64.Vec3
	group    physics.Group
	mask     physics.Group
	handlers []physics.CollisionFunc

	impulses []mgl64.Vec3
	forces   []mgl64.Vec3
}

type fakeContact struct {
	a, b   physics.BodyHandle
	normal mgl64.Vec3 // a -> b
}

var _ physics.Engine = (*fakeEngine)(nil)

func newFakeEngine() *fakeEngine {
	return &fakeEngine{bodies: make(map[physics.BodyHandle]*fakeBody)}
}

// contact queues a report for the next Step
func (f *fakeEngine) contact(a, b physics.BodyHandle, normal mgl64.Vec3) {
	f.queued = append(f.queued, fakeContact{a, b, normal})
}

func (f *fakeEngine) CreateBody(shape physics.Shape, mass float64, pos mgl64.Vec3, group, mask physics.Group) physics.BodyHandle {
	f.next++
	f.bodies[f.next] = &fakeBody{shape: shape, mass: mass, pos: pos, group: group, mask: mask}
	return f.next
}

func (f *fakeEngine) DestroyBody(h physics.BodyHandle) bool {
	if _, ok := f.bodies[h]; !ok {
		return false
	}
	if f.stepping {
		f.destroyedInStep++
	}
	delete(f.bodies, h)
	return true
}

func (f *fakeEngine) Step(float64) {
	f.steps++
	f.stepping = true
	queued := f.queued
	f.queued = nil
	for _, c := range queued {
		if a, ok := f.bodies[c.a]; ok {
			for _, fn := range a.handlers {
				fn(c.b, c.normal)
			}
		}
		if b, ok := f.bodies[c.b]; ok {
			for _, fn := range b.handlers {
				fn(c.a, c.normal.Mul(-1))
			}
		}
	}
	f.stepping = false
}

func (f *fakeEngine) OnCollision(h physics.BodyHandle, fn physics.CollisionFunc) {
	if b, ok := f.bodies[h]; ok {
		b.handlers = append(b.handlers, fn)
	}
}

func (f *fakeEngine) ApplyImpulse(h physics.BodyHandle, impulse, _ mgl64.Vec3) {
	if b, ok := f.bodies[h]; ok {
		b.impulses = append(b.impulses, impulse)
	}
}

func (f *fakeEngine) ApplyForce(h physics.BodyHandle, force, _ mgl64.Vec3) {
	if b, ok := f.bodies[h]; ok {
		b.forces = append(b.forces, force)
	}
}

func (f *fakeEngine) Position(h physics.BodyHandle) mgl64.Vec3 {
	if b, ok := f.bodies[h]; ok {
		return b.pos
	}
	return mgl64.Vec3{}
}

func (f *fakeEngine) SetPosition(h physics.BodyHandle, p mgl64.Vec3) {
	if b, ok := f.bodies[h]; ok {
		b.pos = p
	}
}

func (f *fakeEngine) Velocity(h physics.BodyHandle) mgl64.Vec3 {
	if b, ok := f.bodies[h]; ok {
		return b.vel
	}
	return mgl64.Vec3{}
}

func (f *fakeEngine) SetVelocity(h physics.BodyHandle, v mgl64.Vec3) {
	if b, ok := f.bodies[h]; ok {
		b.vel = v
	}
}

func (f *fakeEngine) Orientation(physics.BodyHandle) mgl64.Quat { return mgl64.QuatIdent() }

func (f *fakeEngine) Mass(h physics.BodyHandle) float64 {
	if b, ok := f.bodies[h]; ok {
		return b.mass
	}
	return 0
}

func (f *fakeEngine) Exists(h physics.BodyHandle) bool {
	_, ok := f.bodies[h]
	return ok
}

func (f *fakeEngine) BodyCount() int { return len(f.bodies) }

// fakeRenderer records mesh lifecycle
type fakeRenderer struct {
	next       MeshHandle
	meshes     map[MeshHandle]physics.Shape
	transforms map[MeshHandle]mgl64.Vec3
	created    int
	destroyed  int
	tint       core.RGB
	renders    int
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{
		meshes:     make(map[MeshHandle]physics.Shape),
		transforms: make(map[MeshHandle]mgl64.Vec3),
	}
}

func (r *fakeRenderer) CreateMesh(shape physics.Shape, _ core.RGB) MeshHandle {
	r.next++
	r.created++
	r.meshes[r.next] = shape
	return r.next
}

func (r *fakeRenderer) DestroyMesh(h MeshHandle) {
	if _, ok := r.meshes[h]; ok {
		r.destroyed++
		delete(r.meshes, h)
		delete(r.transforms, h)
	}
}

func (r *fakeRenderer) SetTransform(h MeshHandle, pos mgl64.Vec3, _ mgl64.Quat) {
	if _, ok := r.meshes[h]; ok {
		r.transforms[h] = pos
	}
}

func (r *fakeRenderer) SetBackgroundTint(c core.RGB) { r.tint = c }
func (r *fakeRenderer) Render(Camera)                { r.renders++ }

// fakeOverlay counts HUD calls
type fakeOverlay struct {
	health   []int
	score    int
	gameOver int
}

func (o *fakeOverlay) ShowHealth(h int) { o.health = append(o.health, h) }
func (o *fakeOverlay) ShowScore(s int)  { o.score = s }
func (o *fakeOverlay) ShowGameOver()    { o.gameOver++ }

// fakeCues counts cue plays and tracks music state
type fakeCues struct {
	played  map[core.SoundType]int
	playing bool
	starts  int
	pauses  int
}

func newFakeCues() *fakeCues {
	return &fakeCues{played: make(map[core.SoundType]int)}
}

func (c *fakeCues) PlayCue(s core.SoundType) { c.played[s]++ }
func (c *fakeCues) StartMusic()              { c.playing = true; c.starts++ }
func (c *fakeCues) PauseMusic()              { c.playing = false; c.pauses++ }

// harness bundles a game with its fakes
type harness struct {
	g       *Game
	eng     *fakeEngine
	r       *fakeRenderer
	overlay *fakeOverlay
	cues    *fakeCues
	clock   *ManualTimeProvider
}

var frameDuration = time.Second / 60

// testConfig disables random spawning and shrinks the terrain
func testConfig() config.Config {
	cfg := config.Default()
	cfg.Spawn.CubeChance = 0
	cfg.Spawn.SphereChance = 0
	cfg.Terrain.GridSize = 2
	return cfg
}

func newHarness(t *testing.T, cfg config.Config) *harness {
	t.Helper()
	h := &harness{
		eng:     newFakeEngine(),
		r:       newFakeRenderer(),
		overlay: &fakeOverlay{},
		cues:    newFakeCues(),
		clock:   NewManualTimeProvider(time.Unix(1700000000, 0)),
	}
	h.g = New(cfg, Deps{
		Engine:   h.eng,
		Renderer: h.r,
		Overlay:  h.overlay,
		Cues:     h.cues,
		Clock:    h.clock,
		Rand:     rand.New(rand.NewSource(7)),
		Logger:   zerolog.Nop(),
	})
	h.g.HandleInput(InputEvent{Kind: InputLock})
	return h
}

// frame runs one frame and advances the clock
func (h *harness) frame() bool {
	alive := h.g.Frame()
	h.clock.Advance(frameDuration)
	return alive
}

func (h *harness) player() physics.BodyHandle {
	return h.g.State().Player.Body
}

// target spawns a unit cube target next to the player
func (h *harness) target() *Entity {
	sp := h.g.spawner
	e := sp.spawn(h.g.State(), h.clock.Now(), physics.Box(mgl64.Vec3{0.5, 0.5, 0.5}), mgl64.Vec3{3, 0.5, 0}, 1)
	return e
}

func boxShape() physics.Shape {
	return physics.Box(mgl64.Vec3{0.5, 0.9, 0.5})
}
