package schema

import (
	"strings"

	"github.com/jotkit/jotkit/internal/catalog"
	"gopkg.in/yaml.v3"
)

// Nested handles the intermediate document shape: a single document with a
// flat category table and a flat prompt table, each prompt referencing its
// category by id.
type Nested struct{}

func (Nested) Name() string { return "nested" }

func (Nested) Normalize(docs []*yaml.Node, lang string) (*catalog.Catalog, []Warning, error) {
	lang = strings.ToLower(lang)

	if len(docs) != 1 {
		return nil, nil, mismatch("expected a single document, got %d", len(docs))
	}
	root := docs[0]

	catItems, ok := sequenceItems(child(root, "categories"))
	if !ok {
		return nil, nil, mismatch("missing categories table")
	}
	promptItems, ok := sequenceItems(child(root, "prompts"))
	if !ok {
		return nil, nil, mismatch("missing prompts table")
	}

	type group struct {
		name    string
		prompts []catalog.Prompt
	}

	var order []string
	groups := make(map[string]*group)
	var warnings []Warning

	for _, cn := range catItems {
		id, ok := scalarString(child(cn, "id"))
		if !ok || id == "" {
			warnings = append(warnings, Warning{Message: "category entry missing id, skipped"})
			continue
		}
		if _, dup := groups[id]; dup {
			continue
		}
		groups[id] = &group{name: displayName(stringMap(child(cn, "names")), lang, id)}
		order = append(order, id)
	}

	for _, pn := range promptItems {
		catID, _ := scalarString(child(pn, "category"))
		g := groups[catID]
		if g == nil {
			warnings = append(warnings, Warning{Category: catID, Message: "prompt references unknown category, skipped"})
			continue
		}
		seq, ok := scalarInt(child(pn, "seq"))
		if !ok {
			warnings = append(warnings, Warning{Category: g.name, Message: "prompt missing sequence number, skipped"})
			continue
		}
		id := catalog.PromptID(catID, seq)

		tr, fellBack, ok := resolveTranslation(translations(child(pn, "translations")), lang)
		if !ok {
			warnings = append(warnings, skippedWarning(id, g.name, lang))
			continue
		}
		if fellBack {
			warnings = append(warnings, fallbackWarning(id, g.name, lang))
		}

		g.prompts = append(g.prompts, catalog.Prompt{
			ID:       id,
			Category: g.name,
			Text:     tr.Text,
			Purpose:  tr.Purpose,
		})
	}

	out := &catalog.Catalog{Language: lang}
	for _, id := range order {
		g := groups[id]
		if len(g.prompts) > 0 {
			out.Categories = append(out.Categories, catalog.Category{ID: id, Name: g.name, Prompts: g.prompts})
		}
	}

	return out, warnings, nil
}
