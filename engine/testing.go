package engine

import (
	"sync"

	"github.com/lixenwraith/fruit-balance/core"
)

// SoundRecorder is a core.SoundPlayer that records requested effects
// Intended for tests across packages
type SoundRecorder struct {
	mu     sync.Mutex
	played []core.SoundType
}

// Play implements core.SoundPlayer
func (r *SoundRecorder) Play(st core.SoundType) {
	r.mu.Lock()
	r.played = append(r.played, st)
	r.mu.Unlock()
}

// Played returns the recorded effects in order
func (r *SoundRecorder) Played() []core.SoundType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.SoundType, len(r.played))
	copy(out, r.played)
	return out
}

// Last returns the most recent effect
func (r *SoundRecorder) Last() (core.SoundType, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.played) == 0 {
		return 0, false
	}
	return r.played[len(r.played)-1], true
}

// Reset clears the recording
func (r *SoundRecorder) Reset() {
	r.mu.Lock()
	r.played = nil
	r.mu.Unlock()
}
