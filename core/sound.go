package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundDrag        SoundType = iota // Item picked up
	SoundDrop                         // Item placed on a pan
	SoundCorrect                      // Right comparison
	SoundIncorrect                    // Wrong comparison
	SoundButtonClick                  // Control pressed
	SoundTypeCount
)

var soundTypeNames = [SoundTypeCount]string{
	SoundDrag:        "drag",
	SoundDrop:        "drop",
	SoundCorrect:     "correct",
	SoundIncorrect:   "incorrect",
	SoundButtonClick: "buttonClick",
}

// String returns the effect kind identifier
func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundTypeNames[s]
}

// SoundPlayer is the minimal audio interface used by game logic
type SoundPlayer interface {
	Play(SoundType)
}

// NopSoundPlayer discards every request
type NopSoundPlayer struct{}

// Play implements SoundPlayer
func (NopSoundPlayer) Play(SoundType) {}
