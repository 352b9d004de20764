package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/fps-cuber/core"
	"github.com/lixenwraith/fps-cuber/physics"
)

// MeshHandle is an opaque reference to a render mesh, zero is never issued
type MeshHandle uint64

// Camera is the viewpoint handed to the renderer each frame
type Camera struct {
	Position   mgl64.Vec3
	Yaw, Pitch float64
}

// Renderer owns meshes; the core creates, moves and destroys them
type Renderer interface {
	CreateMesh(shape physics.Shape, color core.RGB) MeshHandle
	DestroyMesh(h MeshHandle)
	SetTransform(h MeshHandle, position mgl64.Vec3, orientation mgl64.Quat)
	SetBackgroundTint(c core.RGB)
	Render(cam Camera)
}

// Overlay presents HUD state and the terminal game over screen
type Overlay interface {
	ShowHealth(health int)
	ShowScore(score int)
	ShowGameOver()
}

// Cues plays fire-and-forget sounds and the background track
type Cues interface {
	PlayCue(s core.SoundType)
	StartMusic()
	PauseMusic()
}

type nopCues struct{}

func (nopCues) PlayCue(core.SoundType) {}
func (nopCues) StartMusic()            {}
func (nopCues) PauseMusic()            {}

type nopOverlay struct{}

func (nopOverlay) ShowHealth(int) {}
func (nopOverlay) ShowScore(int)  {}
func (nopOverlay) ShowGameOver()  {}
