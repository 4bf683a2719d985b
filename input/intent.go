package input

import "github.com/lixenwraith/fruit-balance/engine"

// IntentType discriminates semantic actions produced by keys
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Ctrl+C
	IntentEscape      // ESC: cancel a gesture, quit when idle
	IntentToggleSound // s

	// Pointer adapter
	IntentPickItem  // 1-9: carry tray slot
	IntentDropLeft  // h, Left
	IntentDropRight // l, Right

	// Answer
	IntentAnswer // <, =, >
)

// KeyEntry describes what a key does without function pointers
type KeyEntry struct {
	Intent IntentType
	Slot   int           // Tray index for IntentPickItem
	Symbol engine.Symbol // For IntentAnswer
}
