package input

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/fruit-balance/engine"
)

// MaxPickSlots is the number of tray slots reachable from the keyboard
const MaxPickSlots = 9

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the keymap loader to resolve YAML action strings to bindings
var actionRegistry map[string]KeyEntry

func init() {
	actionRegistry = buildActionRegistry()
}

func buildActionRegistry() map[string]KeyEntry {
	r := map[string]KeyEntry{
		// Unbind sentinel
		"none": {},

		// System
		"quit":         {Intent: IntentQuit},
		"escape":       {Intent: IntentEscape},
		"toggle_sound": {Intent: IntentToggleSound},

		// Drops
		"drop_left":  {Intent: IntentDropLeft},
		"drop_right": {Intent: IntentDropRight},

		// Answers
		"answer_less":    {Intent: IntentAnswer, Symbol: engine.SymbolLess},
		"answer_equal":   {Intent: IntentAnswer, Symbol: engine.SymbolEqual},
		"answer_greater": {Intent: IntentAnswer, Symbol: engine.SymbolGreater},
	}

	// pick_1 .. pick_9
	for i := 0; i < MaxPickSlots; i++ {
		r[fmt.Sprintf("pick_%d", i+1)] = KeyEntry{Intent: IntentPickItem, Slot: i}
	}
	return r
}

// ActionEntry resolves a canonical action name to its KeyEntry
// Returns zero KeyEntry and false if name is unknown
func ActionEntry(name string) (KeyEntry, bool) {
	entry, ok := actionRegistry[name]
	return entry, ok
}

// ActionNames returns all registered action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
