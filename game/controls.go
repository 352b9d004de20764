package game

import "github.com/lixenwraith/fps-cuber/vmath"

// InputKind identifies a discrete input event
type InputKind uint8

const (
	InputKeyDown InputKind = iota
	InputKeyUp
	InputFireDown
	InputFireUp
	InputLock
	InputUnlock
	InputLook
)

// Key is a movement key
type Key uint8

const (
	KeyForward Key = iota
	KeyBack
	KeyLeft
	KeyRight
	KeyJump
)

// InputEvent is a device-independent input event
type InputEvent struct {
	Kind   InputKind
	Key    Key     // InputKeyDown, InputKeyUp
	DYaw   float64 // InputLook, radians
	DPitch float64 // InputLook, radians
}

// Controls latches input events into per-frame state
type Controls struct {
	Forward, Back, Left, Right bool
	Fire                       bool
	Locked                     bool

	// Disabled after game over; every event is ignored
	Disabled bool

	jumpHeld bool
	jumpEdge bool

	Yaw, Pitch float64
	pitchMax   float64
}

// NewControls creates released controls
func NewControls(pitchMax float64) Controls {
	return Controls{pitchMax: pitchMax}
}

// setKey latches a movement key, returns true on a released-to-held jump transition
func (c *Controls) setKey(k Key, down bool) bool {
	switch k {
	case KeyForward:
		c.Forward = down
	case KeyBack:
		c.Back = down
	case KeyLeft:
		c.Left = down
	case KeyRight:
		c.Right = down
	case KeyJump:
		edge := down && !c.jumpHeld
		c.jumpHeld = down
		if edge {
			c.jumpEdge = true
		}
		return edge
	}
	return false
}

// look turns the view, pitch is clamped short of vertical
func (c *Controls) look(dYaw, dPitch float64) {
	c.Yaw += dYaw
	c.Pitch = vmath.Clamp(c.Pitch+dPitch, -c.pitchMax, c.pitchMax)
}

// takeJumpEdge returns and clears the latched jump edge
func (c *Controls) takeJumpEdge() bool {
	e := c.jumpEdge
	c.jumpEdge = false
	return e
}

// disable releases everything and ignores further input
func (c *Controls) disable() {
	*c = Controls{Disabled: true, Yaw: c.Yaw, Pitch: c.Pitch, pitchMax: c.pitchMax}
}
