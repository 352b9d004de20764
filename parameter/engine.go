package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameRate is the target frame cadence of the simulation loop
	FrameRate = 60

	// FrameUpdateInterval is the wall interval between frame requests (~60 FPS)
	FrameUpdateInterval = time.Second / FrameRate

	// PhysicsTimeStep is the fixed simulated step per frame in seconds
	// One step per frame, no accumulator: frame-rate variance becomes simulation-rate variance
	PhysicsTimeStep = 1.0 / FrameRate

	// InputEventBuffer is the capacity of the input event channel between poller and loop
	InputEventBuffer = 256

	// IntentQueueInitialCap is the initial capacity of the per-frame deferred mutation queue
	IntentQueueInitialCap = 64
)

// Logging
const (
	// LogDir is the directory for debug logs, relative to working directory
	LogDir = "logs"

	// LogFileName is the debug log file name
	LogFileName = "fps-cuber.log"

	// MaxLogSize rotates the log file once it grows past this size
	MaxLogSize = 10 * 1024 * 1024
)
