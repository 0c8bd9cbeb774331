package schema

import (
	"strings"

	"github.com/jotkit/jotkit/internal/catalog"
	"gopkg.in/yaml.v3"
)

// Legacy handles the oldest shape: a stream of self-contained documents,
// each carrying one category in one language with no translation tables.
// Language fallback works across documents here: when the requested
// language's document for a category is absent, the English document
// stands in for it.
type Legacy struct{}

func (Legacy) Name() string { return "legacy" }

type legacyDoc struct {
	catID   string
	name    string
	lang    string
	prompts []*yaml.Node
}

func (Legacy) Normalize(docs []*yaml.Node, lang string) (*catalog.Catalog, []Warning, error) {
	lang = strings.ToLower(lang)

	if len(docs) == 0 {
		return nil, nil, mismatch("no documents")
	}

	// Every document in the stream must be self-contained; one stray shape
	// means this is not a legacy source.
	parsed := make([]legacyDoc, 0, len(docs))
	for i, d := range docs {
		catID, ok := scalarString(child(d, "category"))
		if !ok || catID == "" {
			return nil, nil, mismatch("document %d missing category", i)
		}
		prompts, ok := sequenceItems(child(d, "prompts"))
		if !ok {
			return nil, nil, mismatch("document %d missing prompts", i)
		}
		name, _ := scalarString(child(d, "name"))
		docLang, _ := scalarString(child(d, "language"))
		docLang = strings.ToLower(docLang)
		if docLang == "" {
			docLang = fallbackLang
		}
		parsed = append(parsed, legacyDoc{catID: catID, name: name, lang: docLang, prompts: prompts})
	}

	// First document per (category, language) wins; category order is
	// first appearance in the stream.
	var order []string
	requested := make(map[string]*legacyDoc)
	english := make(map[string]*legacyDoc)
	firstSeen := make(map[string]*legacyDoc)
	for i := range parsed {
		d := &parsed[i]
		if firstSeen[d.catID] == nil {
			firstSeen[d.catID] = d
			order = append(order, d.catID)
		}
		if d.lang == lang && requested[d.catID] == nil {
			requested[d.catID] = d
		}
		if d.lang == fallbackLang && english[d.catID] == nil {
			english[d.catID] = d
		}
	}

	var warnings []Warning
	out := &catalog.Catalog{Language: lang}

	for _, catID := range order {
		doc := requested[catID]
		fellBack := false
		if doc == nil {
			doc = english[catID]
			fellBack = true
		}
		if doc == nil {
			// Only other-language documents exist: every prompt is skipped.
			first := firstSeen[catID]
			name := first.name
			if name == "" {
				name = catID
			}
			for _, pn := range first.prompts {
				if seq, ok := scalarInt(child(pn, "seq")); ok {
					warnings = append(warnings, skippedWarning(catalog.PromptID(catID, seq), name, lang))
				}
			}
			continue
		}

		name := doc.name
		if name == "" {
			name = catID
		}

		var prompts []catalog.Prompt
		for _, pn := range doc.prompts {
			seq, ok := scalarInt(child(pn, "seq"))
			if !ok {
				warnings = append(warnings, Warning{Category: name, Message: "prompt missing sequence number, skipped"})
				continue
			}
			id := catalog.PromptID(catID, seq)
			text, ok := scalarString(child(pn, "text"))
			if !ok || text == "" {
				warnings = append(warnings, skippedWarning(id, name, lang))
				continue
			}
			if fellBack {
				warnings = append(warnings, fallbackWarning(id, name, lang))
			}
			purpose, _ := scalarString(child(pn, "purpose"))

			prompts = append(prompts, catalog.Prompt{
				ID:       id,
				Category: name,
				Text:     text,
				Purpose:  purpose,
			})
		}

		if len(prompts) > 0 {
			out.Categories = append(out.Categories, catalog.Category{ID: catID, Name: name, Prompts: prompts})
		}
	}

	return out, warnings, nil
}
