package locale

import (
	"testing"
	"testing/fstest"
)

func mustBundle(t *testing.T) *Bundle {
	t.Helper()
	b, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded failed: %v", err)
	}
	return b
}

// TestLoadEmbedded verifies both built-in locales load, base first
func TestLoadEmbedded(t *testing.T) {
	b := mustBundle(t)
	locs := b.Locales()
	if len(locs) != 2 {
		t.Fatalf("Expected 2 locales, got %v", locs)
	}
	if locs[0] != BaseLocale {
		t.Errorf("Expected base locale first, got %s", locs[0])
	}
}

// TestMatch verifies requested languages resolve to loaded locales
func TestMatch(t *testing.T) {
	b := mustBundle(t)
	tests := []struct {
		in   string
		want string
	}{
		{"", "en-US"},
		{"C", "en-US"},
		{"zh", "zh-CN"},
		{"zh_CN.UTF-8", "zh-CN"},
		{"en_GB", "en-US"},
		{"de-DE", "en-US"},
		{"not a tag!", "en-US"},
	}
	for _, tt := range tests {
		if got := b.Match(tt.in); got != tt.want {
			t.Errorf("Match(%q) = %s, expected %s", tt.in, got, tt.want)
		}
	}
}

// TestPrinterFormatting verifies lookups and argument formatting
func TestPrinterFormatting(t *testing.T) {
	b := mustBundle(t)

	zh := b.Printer("zh-CN")
	if got := zh.Sprintf(KeyCorrect); got != "回答正确！🎉" {
		t.Errorf("Unexpected zh-CN correct message %q", got)
	}
	if got := zh.Sprintf(KeyScore, 3); got != "得分：3" {
		t.Errorf("Unexpected zh-CN score %q", got)
	}

	en := b.Printer("en-US")
	if got := en.Sprintf(KeyWeight, 180.0); got != "180g" {
		t.Errorf("Unexpected weight label %q", got)
	}
	if got := en.Sprintf("no.such.key"); got != "no.such.key" {
		t.Errorf("Expected unknown key to echo, got %q", got)
	}
}

// TestBaseFallback verifies missing keys fall back to the base locale
func TestBaseFallback(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US.yaml": {Data: []byte("locale: en-US\nmessages:\n  a: base-a\n  b: base-b\n")},
		"locales/fr-FR.yaml": {Data: []byte("locale: fr-FR\nmessages:\n  a: fr-a\n")},
	}
	b, err := LoadFromFS(fsys)
	if err != nil {
		t.Fatalf("LoadFromFS failed: %v", err)
	}
	fr := b.Printer("fr")
	if got := fr.Sprintf("a"); got != "fr-a" {
		t.Errorf("Expected fr-a, got %s", got)
	}
	if got := fr.Sprintf("b"); got != "base-b" {
		t.Errorf("Expected base fallback, got %s", got)
	}
}

// TestLoadRequiresBase verifies bundles without the base locale are rejected
func TestLoadRequiresBase(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/fr-FR.yaml": {Data: []byte("locale: fr-FR\nmessages:\n  a: x\n")},
	}
	if _, err := LoadFromFS(fsys); err == nil {
		t.Error("Expected error when base locale is missing")
	}
}
