package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/fps-cuber/core"
	"github.com/lixenwraith/fps-cuber/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

func wave(w WaveType, phase float64) float64 {
	switch w {
	case WaveSquare:
		if math.Sin(phase) >= 0 {
			return 1
		}
		return -1
	case WaveSaw:
		p := math.Mod(phase/(2*math.Pi), 1)
		return 2*p - 1
	default:
		return math.Sin(phase)
	}
}

// SweepGenerator plays a tone gliding from one frequency to another with an exponential decay
// Phase is accumulated so the glide stays click free
type SweepGenerator struct {
	sr        beep.SampleRate
	wave      WaveType
	from, to  float64
	amplitude float64
	decay     float64 // per second
	length    int
	pos       int
	phase     float64
}

// NewSweepGenerator creates a generator that stops after d
func NewSweepGenerator(sr beep.SampleRate, w WaveType, from, to float64, d time.Duration, amplitude, decay float64) *SweepGenerator {
	return &SweepGenerator{
		sr:        sr,
		wave:      w,
		from:      from,
		to:        to,
		amplitude: amplitude,
		decay:     decay,
		length:    sr.N(d),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.length {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.length {
			return i, true
		}
		progress := float64(g.pos) / float64(g.length)
		t := float64(g.pos) / float64(g.sr)

		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// Short attack avoids a click at onset
		attack := math.Min(t/attackSeconds, 1)
		sample := g.amplitude * attack * math.Exp(-t*g.decay) * wave(g.wave, g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Harmonics for a harsh buzz
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/attackSeconds, 1.0)
		sample *= envelope * oofAmplitude

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// SynthwaveGenerator generates an endless kick and bass loop used as background music
type SynthwaveGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	kick    int
}

// NewSynthwaveGenerator creates a synthwave beat generator
func NewSynthwaveGenerator(sr beep.SampleRate) *SynthwaveGenerator {
	return &SynthwaveGenerator{
		sr:      sr,
		samples: sr.N(synthwaveBeatInterval),
		kick:    sr.N(synthwaveKickDuration),
	}
}

func (g *SynthwaveGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := g.pos % g.samples
		t := float64(beatPos) / float64(g.sr)

		// Kick drum on every beat
		kick := 0.0
		if beatPos < g.kick {
			kickEnv := 1.0 - float64(beatPos)/float64(g.kick)
			kickFreq := synthwaveKickFrequencyHz * (1 + 2*kickEnv)
			kick = synthwaveKickAmplitude * kickEnv * math.Sin(2*math.Pi*kickFreq*t)
		}

		// Bass walks a fifth every other bar
		bassFreq := synthwaveBassFrequencyHz
		if (g.pos/(g.samples*4))%2 == 1 {
			bassFreq *= 1.5
		}
		bass := synthwaveBassAmplitude * math.Sin(2*math.Pi*bassFreq*t)

		sample := kick + bass

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SynthwaveGenerator) Err() error {
	return nil
}

// cueStreamer builds the finite streamer for a one-shot cue, nil for unknown cues
func cueStreamer(sr beep.SampleRate, cue core.SoundType) beep.Streamer {
	switch cue {
	case core.SoundShoot:
		return NewSweepGenerator(sr, WaveSquare, 880, 440, parameter.CueShootDuration, shootAmplitude, 30)
	case core.SoundHit:
		return NewSweepGenerator(sr, WaveSine, 520, 1040, parameter.CueHitDuration, hitAmplitude, 12)
	case core.SoundJump:
		return NewSweepGenerator(sr, WaveSine, 220, 440, parameter.CueJumpDuration, jumpAmplitude, 6)
	case core.SoundOof:
		return beep.Take(sr.N(parameter.CueOofDuration), NewBuzzGenerator(sr, oofFrequencyHz))
	case core.SoundDead:
		return NewSweepGenerator(sr, WaveSaw, 330, 55, parameter.CueDeadDuration, deadAmplitude, 2)
	default:
		return nil
	}
}
