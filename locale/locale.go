// Package locale resolves player-facing strings for the supported languages.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the fallback for missing keys and unsupported languages
const BaseLocale = "en-US"

// Message keys shared across packages
const (
	KeyPlaceBoth   = "feedback.place_both"
	KeyCorrect     = "feedback.correct"
	KeyRetry       = "feedback.retry"
	KeyScore       = "ui.score"
	KeyRulesTitle  = "ui.rules_title"
	KeyRule1       = "ui.rule_1"
	KeyRule2       = "ui.rule_2"
	KeyRule3       = "ui.rule_3"
	KeyDropHere    = "ui.drop_here"
	KeySoundOn     = "ui.sound_on"
	KeySoundOff    = "ui.sound_off"
	KeyWeight      = "ui.weight"
	KeyKeys        = "ui.keys"
	KeyCarrying    = "ui.carrying"
	KeySoundStatus = "cli.sound_status"
)

//go:embed locales/*.yaml
var embeddedFS embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle holds messages for every loaded locale
type Bundle struct {
	locales map[string]map[string]string
	tags    []language.Tag
	names   []string
	matcher language.Matcher
}

// LoadEmbedded loads the built-in locale files
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads locales/*.yaml from fsys
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale files: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}
	sort.Strings(paths)

	b := &Bundle{locales: make(map[string]map[string]string)}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", p, err)
		}
		var f catalogFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", p, err)
		}
		name := strings.TrimSpace(f.Locale)
		if name == "" {
			return nil, fmt.Errorf("locale %s: locale is required", p)
		}
		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("locale %s: parse tag %q: %w", p, name, err)
		}
		if _, dup := b.locales[name]; dup {
			return nil, fmt.Errorf("locale %s: %q already defined", p, name)
		}
		b.locales[name] = f.Messages
		b.names = append(b.names, name)
		b.tags = append(b.tags, tag)
	}
	if _, ok := b.locales[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined", BaseLocale)
	}

	// Base locale first so the matcher falls back to it
	for i, n := range b.names {
		if n == BaseLocale {
			b.names[0], b.names[i] = b.names[i], b.names[0]
			b.tags[0], b.tags[i] = b.tags[i], b.tags[0]
			break
		}
	}
	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

// Locales returns the loaded locale names, base locale first
func (b *Bundle) Locales() []string {
	out := make([]string, len(b.names))
	copy(out, b.names)
	return out
}

// Match resolves a requested language (e.g. "zh", "en_GB", "zh-Hans-CN") to a loaded locale
func (b *Bundle) Match(requested string) string {
	requested = strings.TrimSpace(strings.ReplaceAll(requested, "_", "-"))
	// Strip POSIX encoding suffix such as ".UTF-8"
	if i := strings.IndexByte(requested, '.'); i >= 0 {
		requested = requested[:i]
	}
	if requested == "" || requested == "C" || requested == "POSIX" {
		return BaseLocale
	}
	tag, err := language.Parse(requested)
	if err != nil {
		return BaseLocale
	}
	_, idx, conf := b.matcher.Match(tag)
	if conf == language.No {
		return BaseLocale
	}
	return b.names[idx]
}

// Printer formats messages for one locale
func (b *Bundle) Printer(locale string) *Printer {
	return &Printer{bundle: b, locale: b.Match(locale)}
}

// lookup returns a message with base-locale fallback
func (b *Bundle) lookup(locale, key string) (string, bool) {
	if msgs, ok := b.locales[locale]; ok {
		if v, ok := msgs[key]; ok {
			return v, true
		}
	}
	if v, ok := b.locales[BaseLocale][key]; ok {
		return v, true
	}
	return "", false
}

// Printer renders messages in a fixed locale
type Printer struct {
	bundle *Bundle
	locale string
}

// Locale returns the resolved locale name
func (p *Printer) Locale() string {
	return p.locale
}

// Sprintf formats the message for key; unknown keys render as the key itself
func (p *Printer) Sprintf(key string, args ...any) string {
	msg, ok := p.bundle.lookup(p.locale, key)
	if !ok {
		return key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
