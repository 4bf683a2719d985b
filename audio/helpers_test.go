package audio

import (
	"context"
	"errors"
	"sync"

	"github.com/gopxl/beep"
)

// recordingOutput captures streams instead of playing them
type recordingOutput struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	streams []beep.Streamer
}

func newRecordingOutput() *recordingOutput {
	return &recordingOutput{rate: beep.SampleRate(44100)}
}

func (o *recordingOutput) Play(s beep.Streamer) error {
	o.mu.Lock()
	o.streams = append(o.streams, s)
	o.mu.Unlock()
	return nil
}

func (o *recordingOutput) SampleRate() beep.SampleRate { return o.rate }

func (o *recordingOutput) Close() error { return nil }

func (o *recordingOutput) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.streams)
}

func (o *recordingOutput) all() []beep.Streamer {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]beep.Streamer, len(o.streams))
	copy(out, o.streams)
	return out
}

// drain streams s to exhaustion and returns the sample count
func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

// failingStore rejects every write
type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk unavailable")
}

func (failingStore) Put(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func (failingStore) Close() error { return nil }

// constStreamer emits a fixed sample value forever
func constStreamer(v float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i][0] = v
			samples[i][1] = v
		}
		return len(samples), true
	})
}
