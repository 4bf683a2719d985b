package audio

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Output receives finished streams for playback
type Output interface {
	Play(s beep.Streamer) error
	SampleRate() beep.SampleRate
	Close() error
}

// SpeakerOutput mixes streams through the system speaker
// The speaker is process-global, so only one SpeakerOutput should be open
type SpeakerOutput struct {
	rate   beep.SampleRate
	mu     sync.Mutex
	closed bool
}

// NewSpeakerOutput initializes the speaker with the configured rate and buffer
func NewSpeakerOutput(cfg *AudioConfig) (*SpeakerOutput, error) {
	c := *cfg
	c.normalize()

	rate := beep.SampleRate(c.SampleRate)
	if err := speaker.Init(rate, rate.N(c.BufferDuration)); err != nil {
		return nil, err
	}
	return &SpeakerOutput{rate: rate}, nil
}

// Play implements Output
func (o *SpeakerOutput) Play(s beep.Streamer) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return nil
	}
	speaker.Play(s)
	return nil
}

// SampleRate implements Output
func (o *SpeakerOutput) SampleRate() beep.SampleRate {
	return o.rate
}

// Close stops all sounds and releases the device
func (o *SpeakerOutput) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return nil
	}
	o.closed = true
	speaker.Clear()
	speaker.Close()
	return nil
}

// NullOutput accepts streams without playing them
// Used when no audio device is available
type NullOutput struct {
	rate     beep.SampleRate
	accepted atomic.Uint64
}

// NewNullOutput creates a silent output at rate
func NewNullOutput(rate beep.SampleRate) *NullOutput {
	return &NullOutput{rate: rate}
}

// Play implements Output
func (o *NullOutput) Play(beep.Streamer) error {
	o.accepted.Add(1)
	return nil
}

// SampleRate implements Output
func (o *NullOutput) SampleRate() beep.SampleRate {
	return o.rate
}

// Close implements Output
func (o *NullOutput) Close() error { return nil }

// Accepted returns how many streams were handed to the output
func (o *NullOutput) Accepted() uint64 {
	return o.accepted.Load()
}

// OpenOutput returns the speaker, or a silent output when muted or no device is available
// Device failure is not an error; the game runs without audio
func OpenOutput(cfg *AudioConfig, mute bool) Output {
	c := *cfg
	c.normalize()
	rate := beep.SampleRate(c.SampleRate)
	if mute {
		return NewNullOutput(rate)
	}
	out, err := NewSpeakerOutput(&c)
	if err != nil {
		log.Printf("audio: speaker unavailable, continuing without audio: %v", err)
		return NewNullOutput(rate)
	}
	return out
}
