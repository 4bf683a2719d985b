package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fruit-balance/engine"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyEscape: {Intent: IntentEscape},
			tcell.KeyLeft:   {Intent: IntentDropLeft},
			tcell.KeyRight:  {Intent: IntentDropRight},
		},

		Runes: map[rune]KeyEntry{
			'q': {Intent: IntentQuit},
			's': {Intent: IntentToggleSound},
			'h': {Intent: IntentDropLeft},
			'l': {Intent: IntentDropRight},

			'<': {Intent: IntentAnswer, Symbol: engine.SymbolLess},
			'=': {Intent: IntentAnswer, Symbol: engine.SymbolEqual},
			'>': {Intent: IntentAnswer, Symbol: engine.SymbolGreater},
			// Unshifted aliases
			',': {Intent: IntentAnswer, Symbol: engine.SymbolLess},
			'.': {Intent: IntentAnswer, Symbol: engine.SymbolGreater},
		},
	}
	for i := 0; i < MaxPickSlots; i++ {
		kt.Runes[rune('1'+i)] = KeyEntry{Intent: IntentPickItem, Slot: i}
	}
	return kt
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key event to its binding
func (kt *KeyTable) Lookup(key tcell.Key, r rune) (KeyEntry, bool) {
	var entry KeyEntry
	var ok bool
	if key == tcell.KeyRune {
		entry, ok = kt.Runes[r]
	} else {
		entry, ok = kt.SpecialKeys[key]
	}
	if !ok || entry.Intent == IntentNone {
		return KeyEntry{}, false
	}
	return entry, true
}
