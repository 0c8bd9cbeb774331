// Package i18n resolves the CLI's own output labels. Prompt content is
// localized by the schema normalizers; this only covers the handful of
// strings the tool prints around it.
package i18n

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

const fallbackLang = "en"

// Translator resolves a label key to the active language's string.
type Translator interface {
	Resolve(key string) string
}

type translator struct {
	active   map[string]string
	fallback map[string]string
}

// NewTranslator loads the locale for lang, falling back to English for
// missing keys (and entirely, when no locale file exists for lang).
func NewTranslator(lang string) (Translator, error) {
	fallback, err := loadLocale(fallbackLang)
	if err != nil {
		return nil, err
	}

	lang = strings.ToLower(lang)
	active := fallback
	if lang != fallbackLang {
		if m, err := loadLocale(lang); err == nil {
			active = m
		}
	}

	return &translator{active: active, fallback: fallback}, nil
}

func loadLocale(lang string) (map[string]string, error) {
	data, err := localeFS.ReadFile("locales/" + lang + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("load locale %s: %w", lang, err)
	}
	var m map[string]string
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse locale %s: %w", lang, err)
	}
	return m, nil
}

// Resolve returns the label for key, degrading to English and finally to
// the key itself.
func (t *translator) Resolve(key string) string {
	if v := t.active[key]; v != "" {
		return v
	}
	if v := t.fallback[key]; v != "" {
		return v
	}
	return key
}
