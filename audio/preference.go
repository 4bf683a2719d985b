package audio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/fruit-balance/storage"
)

// PreferenceKey is the storage key of the sound on/off flag
const PreferenceKey = "sound-enabled"

// LoadEnabled reads the persisted flag
// Missing, unreadable or non-boolean values yield true
func LoadEnabled(ctx context.Context, store storage.Store) bool {
	if store == nil {
		return true
	}
	raw, err := store.Get(ctx, PreferenceKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("audio: read sound preference: %v", err)
		}
		return true
	}
	var enabled *bool
	if err := json.Unmarshal(raw, &enabled); err != nil {
		log.Printf("audio: corrupt sound preference %q: %v", raw, err)
		return true
	}
	if enabled == nil {
		log.Printf("audio: null sound preference, defaulting to enabled")
		return true
	}
	return *enabled
}

// SaveEnabled writes the flag as a JSON boolean
func SaveEnabled(ctx context.Context, store storage.Store, enabled bool) error {
	if store == nil {
		return fmt.Errorf("no preference store")
	}
	raw, err := json.Marshal(enabled)
	if err != nil {
		return fmt.Errorf("encode sound preference: %w", err)
	}
	if err := store.Put(ctx, PreferenceKey, raw); err != nil {
		return fmt.Errorf("save sound preference: %w", err)
	}
	return nil
}
