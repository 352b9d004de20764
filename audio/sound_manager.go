package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/fps-cuber/core"
	"github.com/lixenwraith/fps-cuber/parameter"
)

// Synthesis constants
const (
	attackSeconds = 0.005

	shootAmplitude = 0.12
	hitAmplitude   = 0.25
	jumpAmplitude  = 0.2
	oofAmplitude   = 0.6
	deadAmplitude  = 0.3
	oofFrequencyHz = 120.0

	synthwaveBeatInterval    = 600 * time.Millisecond
	synthwaveKickDuration    = 100 * time.Millisecond
	synthwaveKickAmplitude   = 0.4
	synthwaveKickFrequencyHz = 60.0
	synthwaveBassAmplitude   = 0.15
	synthwaveBassFrequencyHz = 110.0
)

// SoundManager plays game cues and the background loop through the beep speaker
// Every method is a no-op until Initialize succeeds, so the game runs without an audio device
type SoundManager struct {
	mu          sync.Mutex
	sr          beep.SampleRate
	mixer       *beep.Mixer
	master      *effects.Volume
	music       *beep.Ctrl
	volume      float64
	muted       bool
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		sr:     beep.SampleRate(parameter.AudioSampleRate),
		mixer:  &beep.Mixer{},
		volume: parameter.MasterVolume,
	}
}

// Initialize opens the speaker at the given rate and volume (0-1)
func (sm *SoundManager) Initialize(rate int, volume float64) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if rate > 0 {
		sm.sr = beep.SampleRate(rate)
	}
	sm.volume = volume

	if err := speaker.Init(sm.sr, sm.sr.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	sm.master = &effects.Volume{Streamer: sm.mixer, Base: 2}
	sm.applyVolume()
	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker shutdown; clearing the mixer silences output
	sm.music = nil
	sm.initialized = false
}

// PlayCue mixes in a one-shot cue
func (sm *SoundManager) PlayCue(cue core.SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := cueStreamer(sm.sr, cue)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// StartMusic starts or resumes the background loop
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if sm.music == nil {
		sm.music = &beep.Ctrl{Streamer: NewSynthwaveGenerator(sm.sr)}
		sm.mixer.Add(sm.music)
		return
	}
	sm.music.Paused = false
}

// PauseMusic pauses the background loop, keeping its position
func (sm *SoundManager) PauseMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = true
	speaker.Unlock()
}

// ToggleMute flips master mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.initialized {
		speaker.Lock()
		sm.applyVolume()
		speaker.Unlock()
	}
	return sm.muted
}

// Muted reports the master mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// applyVolume maps linear volume to the exponent beep expects
// math.Log2(0) is -Inf, so zero volume is silent instead
func (sm *SoundManager) applyVolume() {
	if sm.master == nil {
		return
	}
	sm.master.Silent = sm.muted || sm.volume <= 0
	if sm.volume > 0 {
		sm.master.Volume = math.Log2(sm.volume)
	}
}
