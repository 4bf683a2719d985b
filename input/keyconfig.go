package input

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// Rune aliases for keys that are awkward as bare YAML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"colon":     ':',
	"hash":      '#',
}

// keyByName indexes tcell key names case-insensitively, e.g. "left", "esc", "ctrl-c"
var keyByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// keymapFile is the on-disk shape:
//
//	keys:
//	  a: drop_left
//	  x: none
//	special_keys:
//	  ctrl-q: quit
type keymapFile struct {
	Keys        map[string]string `yaml:"keys"`
	SpecialKeys map[string]string `yaml:"special_keys"`
}

// LoadKeyConfigFile reads a YAML keymap; an empty path yields no overrides
func LoadKeyConfigFile(path string) (*KeyTable, error) {
	if path == "" {
		return &KeyTable{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap %s: %w", path, err)
	}
	return LoadKeyConfig(data)
}

// LoadKeyConfig parses YAML keymap data into a sparse override KeyTable
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keymapFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{}
	if raw.Keys != nil {
		kt.Runes = make(map[rune]KeyEntry, len(raw.Keys))
		for keyStr, action := range raw.Keys {
			r, err := resolveRune(keyStr)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
			}
			entry, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
			}
			kt.Runes[r] = entry
		}
	}
	if raw.SpecialKeys != nil {
		kt.SpecialKeys = make(map[tcell.Key]KeyEntry, len(raw.SpecialKeys))
		for keyStr, action := range raw.SpecialKeys {
			k, ok := keyByName[strings.ToLower(keyStr)]
			if !ok || k == tcell.KeyRune {
				return nil, fmt.Errorf("[special_keys] unknown key name: %q", keyStr)
			}
			entry, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("[special_keys] key %q: %w", keyStr, err)
			}
			kt.SpecialKeys[k] = entry
		}
	}
	return kt, nil
}

// resolveRune converts a YAML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name string to a KeyEntry
func resolveAction(name string) (KeyEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	entry, ok := ActionEntry(name)
	if !ok {
		return KeyEntry{}, fmt.Errorf("unknown action: %q", name)
	}
	return entry, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if result.Runes == nil {
		result.Runes = make(map[rune]KeyEntry)
	}
	if result.SpecialKeys == nil {
		result.SpecialKeys = make(map[tcell.Key]KeyEntry)
	}
	mergeMap(result.Runes, override.Runes)
	mergeMap(result.SpecialKeys, override.SpecialKeys)
	return result
}

func mergeMap[K comparable](base, override map[K]KeyEntry) {
	for k, v := range override {
		if v.Intent == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
