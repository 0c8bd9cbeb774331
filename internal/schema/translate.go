package schema

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// fallbackLang is the designated fallback for missing translations.
const fallbackLang = "en"

// Translation is one language's rendering of a prompt.
type Translation struct {
	Text    string
	Purpose string
}

// translations decodes a mapping of language code -> {text, purpose} with
// lowercased language keys.
func translations(n *yaml.Node) map[string]Translation {
	entries, ok := mappingEntries(n)
	if !ok {
		return nil
	}
	m := make(map[string]Translation, len(entries))
	for _, e := range entries {
		text, _ := scalarString(child(e.value, "text"))
		purpose, _ := scalarString(child(e.value, "purpose"))
		if text == "" {
			continue
		}
		m[strings.ToLower(e.key)] = Translation{Text: text, Purpose: purpose}
	}
	return m
}

// resolveTranslation applies the uniform two-step fallback: the requested
// language first, then English. ok is false when neither exists, in which
// case the prompt is skipped entirely.
func resolveTranslation(m map[string]Translation, lang string) (tr Translation, fellBack, ok bool) {
	if tr, ok := m[lang]; ok {
		return tr, false, true
	}
	if tr, ok := m[fallbackLang]; ok {
		return tr, lang != fallbackLang, true
	}
	return Translation{}, false, false
}

// displayName resolves a category's display name: requested language, then
// English, then the raw identifier. Categories are never skipped.
func displayName(names map[string]string, lang, rawID string) string {
	if n := names[lang]; n != "" {
		return n
	}
	if n := names[fallbackLang]; n != "" {
		return n
	}
	return rawID
}
