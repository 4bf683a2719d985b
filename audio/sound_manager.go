package audio

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/fruit-balance/core"
	"github.com/lixenwraith/fruit-balance/storage"
)

// persistTimeout bounds the synchronous preference write
const persistTimeout = 2 * time.Second

// SoundManager owns effect playback and the persisted on/off flag
// Create one per process and pass it to whatever needs sound
type SoundManager struct {
	config  AudioConfig
	out     Output
	store   storage.Store
	sources [core.SoundTypeCount]source

	enabled atomic.Bool
	played  atomic.Uint64
	failed  atomic.Uint64

	wg sync.WaitGroup
}

var _ core.SoundPlayer = (*SoundManager)(nil)

// NewSoundManager creates a manager reading its initial flag from store
// A nil store keeps the flag in memory only
func NewSoundManager(ctx context.Context, cfg *AudioConfig, out Output, store storage.Store) *SoundManager {
	c := DefaultAudioConfig()
	if cfg != nil {
		c = cfg
	}
	config := *c
	config.normalize()

	if out == nil {
		out = NewNullOutput(beep.SampleRate(config.SampleRate))
	}

	sm := &SoundManager{
		config:  config,
		out:     out,
		store:   store,
		sources: defaultSources(&config),
	}
	sm.enabled.Store(LoadEnabled(ctx, store))
	return sm
}

// Play triggers the effect asynchronously; no-op when disabled
// Failures are logged and counted, never returned
func (sm *SoundManager) Play(st core.SoundType) {
	if !sm.enabled.Load() {
		return
	}
	if st < 0 || st >= core.SoundTypeCount || sm.sources[st] == nil {
		sm.fail(st, ErrNoSound)
		return
	}

	src := sm.sources[st]
	sm.wg.Add(1)
	go func() {
		defer sm.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				sm.fail(st, fmt.Errorf("panic: %v", r))
			}
		}()

		s, err := src.stream(sm.out.SampleRate())
		if err != nil {
			sm.fail(st, err)
			return
		}
		if sm.config.MasterVolume < 1 {
			s = newVolume(s, sm.config.MasterVolume)
		}
		if err := sm.out.Play(s); err != nil {
			sm.fail(st, err)
			return
		}
		sm.played.Add(1)
	}()
}

func (sm *SoundManager) fail(st core.SoundType, err error) {
	sm.failed.Add(1)
	log.Printf("audio: error playing sound %s: %v", st, err)
}

// SetEnabled updates the flag and persists it synchronously
// A failed write is logged; the in-memory flag stays authoritative
func (sm *SoundManager) SetEnabled(enabled bool) {
	sm.enabled.Store(enabled)
	if sm.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := SaveEnabled(ctx, sm.store, enabled); err != nil {
		log.Printf("audio: could not save sound preference: %v", err)
	}
}

// Enabled returns the current flag
func (sm *SoundManager) Enabled() bool {
	return sm.enabled.Load()
}

// Toggle flips and persists the flag, returns the new state
func (sm *SoundManager) Toggle() bool {
	next := !sm.enabled.Load()
	sm.SetEnabled(next)
	return next
}

// Stats returns played and failed counts
func (sm *SoundManager) Stats() (played, failed uint64) {
	return sm.played.Load(), sm.failed.Load()
}

// Wait blocks until every in-flight playback request has been handed off
func (sm *SoundManager) Wait() {
	sm.wg.Wait()
}

// Close waits for pending requests and releases the output
func (sm *SoundManager) Close() error {
	sm.wg.Wait()
	return sm.out.Close()
}
