// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/fruit-balance/audio"
)

// EnvPrefix is prepended to every variable name
const EnvPrefix = "BALANCE_"

// Config holds process settings
type Config struct {
	DataDir       string        `env:"DATA_DIR"`
	SoundDir      string        `env:"SOUND_DIR" envDefault:"."`
	CatalogPath   string        `env:"CATALOG"`
	KeymapPath    string        `env:"KEYMAP"`
	Locale        string        `env:"LOCALE"`
	Debug         bool          `env:"DEBUG" envDefault:"false"`
	Mute          bool          `env:"MUTE" envDefault:"false"`
	SampleRate    int           `env:"SAMPLE_RATE" envDefault:"44100"`
	MasterVolume  int           `env:"MASTER_VOLUME" envDefault:"100"` // 0-100
	FrameInterval time.Duration `env:"FRAME_INTERVAL" envDefault:"33ms"`
}

// Load parses BALANCE_* variables and fills derived defaults
func Load() (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Locale == "" {
		cfg.Locale = systemLocale()
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir()
	}
	if cfg.MasterVolume < 0 {
		cfg.MasterVolume = 0
	}
	if cfg.MasterVolume > 100 {
		cfg.MasterVolume = 100
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = 33 * time.Millisecond
	}
	return &cfg, nil
}

// PreferencePath is the SQLite file holding player preferences
func (c *Config) PreferencePath() string {
	return filepath.Join(c.DataDir, "preferences.db")
}

// Audio converts to the audio package settings
func (c *Config) Audio() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	if c.SampleRate > 0 {
		ac.SampleRate = c.SampleRate
	}
	ac.MasterVolume = float64(c.MasterVolume) / 100.0
	if c.SoundDir != "" {
		ac.SoundDir = c.SoundDir
	}
	return ac
}

// systemLocale reads the POSIX locale variables in priority order
func systemLocale() string {
	for _, k := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "fruit-balance")
	}
	return ".fruit-balance"
}
