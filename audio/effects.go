package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// decayFloor is the gain reached at the end of a tone
const decayFloor = 0.001

// source produces a fresh, self-terminating stream per call
type source interface {
	stream(rate beep.SampleRate) (beep.Streamer, error)
}

// toneSource synthesizes a tone on demand
type toneSource struct {
	tone Tone
}

func (s toneSource) stream(rate beep.SampleRate) (beep.Streamer, error) {
	return NewToneStreamer(s.tone, rate)
}

// NewToneStreamer builds an independent oscillator → decay → take pipeline
// The returned streamer ends after tone.Duration and holds no shared state
func NewToneStreamer(t Tone, rate beep.SampleRate) (beep.Streamer, error) {
	if t.Frequency <= 0 || t.Frequency >= float64(rate)/2 {
		return nil, fmt.Errorf("frequency %v Hz at %d Hz: %w", t.Frequency, rate, ErrInvalidTone)
	}
	if t.Duration <= 0 {
		return nil, fmt.Errorf("duration %v: %w", t.Duration, ErrInvalidTone)
	}
	if t.Volume < 0 || t.Volume > 1 {
		return nil, fmt.Errorf("volume %v: %w", t.Volume, ErrInvalidTone)
	}

	osc := NewOscillator(t.Frequency, t.Wave, rate)
	shaped := NewDecayEnvelope(osc, t.Volume, t.Duration, rate)
	return beep.Take(rate.N(t.Duration), shaped), nil
}

// oscillator generates raw audio waves
type oscillator struct {
	freq  float64
	phase float64
	wave  WaveType
	rate  beep.SampleRate
}

// NewOscillator creates an endless oscillator; callers bound its length
// Sine comes from beep's generator, the other shapes are computed here
func NewOscillator(freq float64, wave WaveType, rate beep.SampleRate) beep.Streamer {
	if wave == WaveSine {
		if s, err := generators.SineTone(rate, freq); err == nil {
			return s
		}
	}
	return &oscillator{
		freq: freq,
		wave: wave,
		rate: rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1.0 - 4.0*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decayEnvelope ramps gain exponentially from start to decayFloor over its duration
type decayEnvelope struct {
	streamer beep.Streamer
	position int
	total    int
	start    float64
	ratio    float64 // Per-sample multiplier
}

// NewDecayEnvelope applies an exponential gain ramp to s
func NewDecayEnvelope(s beep.Streamer, start float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	if total < 1 {
		total = 1
	}
	ratio := 1.0
	if start > decayFloor {
		ratio = math.Pow(decayFloor/start, 1/float64(total))
	}
	return &decayEnvelope{
		streamer: s,
		total:    total,
		start:    start,
		ratio:    ratio,
	}
}

func (e *decayEnvelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, false
		}
		gain := e.start * math.Pow(e.ratio, float64(e.position))
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *decayEnvelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
