package parameter

import "time"

// Audio
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MasterVolume is the default output gain (0-1)
	MasterVolume = 0.8

	CueShootDuration = 60 * time.Millisecond
	CueHitDuration   = 120 * time.Millisecond
	CueJumpDuration  = 150 * time.Millisecond
	CueOofDuration   = 200 * time.Millisecond
	CueDeadDuration  = 900 * time.Millisecond
)
