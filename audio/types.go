package audio

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/lixenwraith/fruit-balance/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// Tone describes a synthesized effect
type Tone struct {
	Frequency float64       // Hz
	Duration  time.Duration // Total length including decay
	Volume    float64       // Starting gain, 0.0-1.0
	Wave      WaveType
}

// Recorded effect paths, relative to AudioConfig.SoundDir
const (
	CorrectSoundPath   = "sounds/correct.mp3"
	IncorrectSoundPath = "sounds/incorrect.mp3"
)

// Synthesized effect parameters
var (
	DragTone        = Tone{Frequency: 350, Duration: 150 * time.Millisecond, Volume: 0.3, Wave: WaveSine}
	DropTone        = Tone{Frequency: 200, Duration: 300 * time.Millisecond, Volume: 0.4, Wave: WaveSine}
	ButtonClickTone = Tone{Frequency: 800, Duration: 80 * time.Millisecond, Volume: 0.3, Wave: WaveSine}
)

// Sentinel errors
var (
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrInvalidTone       = errors.New("invalid tone parameters")
	ErrNoSound           = errors.New("no sound mapped for effect")
)

// defaultSources maps each effect kind to its backing strategy
func defaultSources(cfg *AudioConfig) [core.SoundTypeCount]source {
	var s [core.SoundTypeCount]source
	s[core.SoundDrag] = toneSource{tone: DragTone}
	s[core.SoundDrop] = toneSource{tone: DropTone}
	s[core.SoundButtonClick] = toneSource{tone: ButtonClickTone}
	s[core.SoundCorrect] = newFileSource(filepath.Join(cfg.SoundDir, CorrectSoundPath))
	s[core.SoundIncorrect] = newFileSource(filepath.Join(cfg.SoundDir, IncorrectSoundPath))
	return s
}
