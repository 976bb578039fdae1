package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Templates holds the three page templates for one locale. Templates are
// opaque text with {{TOKEN}} placeholders; there is no control flow.
type Templates struct {
	Day     string
	Match   string
	Channel string
}

// LoadTemplates reads day.html, match.html and channel.html from dir.
// A locale subdirectory (dir/<locale>/) overrides the base file when present,
// so locales can share templates and specialize only what differs. A template
// that exists in neither place is a fatal error: there is nothing to render
// into.
func LoadTemplates(dir, locale string) (*Templates, error) {
	load := func(name string) (string, error) {
		if locale != "" {
			localized := filepath.Join(dir, locale, name)
			if data, err := os.ReadFile(localized); err == nil {
				return string(data), nil
			}
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return "", fmt.Errorf("template %s not found for locale %q: %w", name, locale, err)
		}
		return string(data), nil
	}

	var t Templates
	var err error
	if t.Day, err = load("day.html"); err != nil {
		return nil, err
	}
	if t.Match, err = load("match.html"); err != nil {
		return nil, err
	}
	if t.Channel, err = load("channel.html"); err != nil {
		return nil, err
	}
	return &t, nil
}

// substitute replaces every {{KEY}} occurrence with its value. Tokens not in
// the map are left untouched; tokens in the map but absent from the template
// simply do not show up. Strictly literal replacement, no escaping, no logic.
func substitute(template string, tokens map[string]string) string {
	out := template
	for key, value := range tokens {
		out = strings.ReplaceAll(out, "{{"+key+"}}", value)
	}
	return out
}
