package parameter

import "time"

// Input
const (
	// KeyInitialHold keeps a key down after the first press until the OS repeat starts
	KeyInitialHold = 550 * time.Millisecond

	// KeyRepeatHold keeps a key down between OS repeats
	KeyRepeatHold = 120 * time.Millisecond

	// LookStep is the yaw/pitch change per arrow key press (radians)
	LookStep = 0.08

	// MouseSensitivity is the yaw change per mouse column moved (radians)
	MouseSensitivity = 0.02
)

// Radar View
const (
	// RadarCellWidth is world units per terminal column
	RadarCellWidth = 0.5

	// RadarCellHeight is world units per terminal row (cells are ~2:1)
	RadarCellHeight = 1.0

	// HUDRows is the number of rows reserved at the top for the HUD
	HUDRows = 1

	// TintLerp is the fraction the background moves toward the damage tint per health change
	TintLerp = 0.1
)

// RadarBackgroundScale darkens the tint for the radar background so glyphs stay readable
const RadarBackgroundScale = 0.2
