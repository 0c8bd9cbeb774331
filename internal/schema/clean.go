package schema

import (
	"strings"

	"github.com/jotkit/jotkit/internal/catalog"
	"gopkg.in/yaml.v3"
)

// Clean handles the current document shape: a single document whose
// categories mapping is keyed by raw identifier, each category holding
// localized names and an ordered prompt list with per-language
// translations.
type Clean struct{}

func (Clean) Name() string { return "clean" }

func (Clean) Normalize(docs []*yaml.Node, lang string) (*catalog.Catalog, []Warning, error) {
	lang = strings.ToLower(lang)

	if len(docs) != 1 {
		return nil, nil, mismatch("expected a single document, got %d", len(docs))
	}
	catsNode := child(docs[0], "categories")
	if catsNode == nil {
		return nil, nil, mismatch("missing top-level categories")
	}
	entries, ok := mappingEntries(catsNode)
	if !ok {
		return nil, nil, mismatch("categories is not a mapping")
	}

	var warnings []Warning
	out := &catalog.Catalog{Language: lang}

	for _, e := range entries {
		catID := e.key
		name := displayName(stringMap(child(e.value, "names")), lang, catID)

		items, _ := sequenceItems(child(e.value, "prompts"))
		var prompts []catalog.Prompt
		for _, item := range items {
			seq, ok := scalarInt(child(item, "seq"))
			if !ok {
				warnings = append(warnings, Warning{Category: name, Message: "prompt missing sequence number, skipped"})
				continue
			}
			id := catalog.PromptID(catID, seq)

			tr, fellBack, ok := resolveTranslation(translations(child(item, "translations")), lang)
			if !ok {
				warnings = append(warnings, skippedWarning(id, name, lang))
				continue
			}
			if fellBack {
				warnings = append(warnings, fallbackWarning(id, name, lang))
			}

			prompts = append(prompts, catalog.Prompt{
				ID:       id,
				Category: name,
				Text:     tr.Text,
				Purpose:  tr.Purpose,
			})
		}

		if len(prompts) > 0 {
			out.Categories = append(out.Categories, catalog.Category{ID: catID, Name: name, Prompts: prompts})
		}
	}

	return out, warnings, nil
}
