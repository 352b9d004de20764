package render

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/fps-cuber/core"
	"github.com/lixenwraith/fps-cuber/game"
	"github.com/lixenwraith/fps-cuber/physics"
)

// Mesh is the render-side record of one world entity
type Mesh struct {
	Shape       physics.Shape
	Color       core.RGB
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// top returns the highest y of the mesh, used for overhead occlusion
func (m *Mesh) top() float64 {
	switch m.Shape.Kind {
	case physics.ShapeBox:
		return m.Position.Y() + m.Shape.HalfExtents.Y()
	case physics.ShapeSphere:
		return m.Position.Y() + m.Shape.Radius
	default:
		return m.Position.Y()
	}
}

// HUD is the overlay model: hearts, score and the game over screen
type HUD struct {
	Health   int
	Score    int
	GameOver bool
	Status   string // free text hint line
}

// Scene is a headless mesh registry and HUD model
// Implements game.Renderer and game.Overlay without drawing anything
type Scene struct {
	mu     sync.RWMutex
	meshes map[game.MeshHandle]*Mesh
	next   game.MeshHandle
	tint   core.RGB
	hud    HUD
	camera game.Camera
	frames uint64
}

var (
	_ game.Renderer = (*Scene)(nil)
	_ game.Overlay  = (*Scene)(nil)
)

// NewScene creates an empty scene with a white background
func NewScene() *Scene {
	return &Scene{
		meshes: make(map[game.MeshHandle]*Mesh),
		tint:   core.RGBWhite,
	}
}

func (s *Scene) CreateMesh(shape physics.Shape, color core.RGB) game.MeshHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.meshes[s.next] = &Mesh{Shape: shape, Color: color, Orientation: mgl64.QuatIdent()}
	return s.next
}

func (s *Scene) DestroyMesh(h game.MeshHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.meshes, h)
}

func (s *Scene) SetTransform(h game.MeshHandle, position mgl64.Vec3, orientation mgl64.Quat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.meshes[h]; ok {
		m.Position = position
		m.Orientation = orientation
	}
}

func (s *Scene) SetBackgroundTint(c core.RGB) {
	s.mu.Lock()
	s.tint = c
	s.mu.Unlock()
}

// Render records the camera; drawing renderers embed Scene and draw after this
func (s *Scene) Render(cam game.Camera) {
	s.mu.Lock()
	s.camera = cam
	s.frames++
	s.mu.Unlock()
}

func (s *Scene) ShowHealth(health int) {
	s.mu.Lock()
	s.hud.Health = health
	s.mu.Unlock()
}

func (s *Scene) ShowScore(score int) {
	s.mu.Lock()
	s.hud.Score = score
	s.mu.Unlock()
}

func (s *Scene) ShowGameOver() {
	s.mu.Lock()
	s.hud.GameOver = true
	s.mu.Unlock()
}

// SetStatus sets the HUD hint line
func (s *Scene) SetStatus(text string) {
	s.mu.Lock()
	s.hud.Status = text
	s.mu.Unlock()
}

// HUD returns a copy of the overlay model
func (s *Scene) HUD() HUD {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hud
}

// Tint returns the background tint
func (s *Scene) Tint() core.RGB {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tint
}

// Camera returns the camera of the last Render
func (s *Scene) Camera() game.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.camera
}

// Frames returns the number of Render calls
func (s *Scene) Frames() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frames
}

// MeshCount returns the number of live meshes
func (s *Scene) MeshCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.meshes)
}

// Mesh returns a copy of a live mesh
func (s *Scene) Mesh(h game.MeshHandle) (Mesh, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.meshes[h]
	if !ok {
		return Mesh{}, false
	}
	return *m, true
}

// each visits meshes under the read lock
func (s *Scene) each(fn func(m *Mesh)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.meshes {
		fn(m)
	}
}
