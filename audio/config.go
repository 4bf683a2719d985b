package audio

import "time"

// AudioConfig holds sound output settings
type AudioConfig struct {
	SampleRate     int           // Output sample rate in Hz
	BufferDuration time.Duration // Speaker buffer length
	MasterVolume   float64       // 0.0-1.0, scales every effect
	SoundDir       string        // Base directory of recorded effects
}

// DefaultAudioConfig returns the built-in settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		SampleRate:     44100,
		BufferDuration: 100 * time.Millisecond,
		MasterVolume:   1.0,
		SoundDir:       ".",
	}
}

// normalize clamps out-of-range values to defaults
func (c *AudioConfig) normalize() {
	def := DefaultAudioConfig()
	if c.SampleRate <= 0 {
		c.SampleRate = def.SampleRate
	}
	if c.BufferDuration <= 0 {
		c.BufferDuration = def.BufferDuration
	}
	if c.MasterVolume < 0 {
		c.MasterVolume = 0
	}
	if c.MasterVolume > 1 {
		c.MasterVolume = 1
	}
	if c.SoundDir == "" {
		c.SoundDir = def.SoundDir
	}
}
