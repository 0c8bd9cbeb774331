package catalog

import (
	"fmt"
	"strconv"
)

// Prompt is a single journaling instruction in its canonical,
// post-normalization form.
type Prompt struct {
	ID       string // stable across schema versions and language switches
	Category string // display name in the catalog's language
	Text     string // the instruction, may embed lightweight markup
	Purpose  string // rationale shown on demand
}

// Category groups prompts under one display name. ID is the raw category
// identifier from the source document, Name the localized display name.
type Category struct {
	ID      string
	Name    string
	Prompts []Prompt
}

// Catalog is the full set of normalized prompts for one language.
// Category order is the insertion order of the source data.
type Catalog struct {
	Language   string
	Categories []Category
}

// PromptID derives the canonical prompt id from the raw category identifier
// and the prompt's local sequence number. All schema normalizers must use
// this so content migrated between schemas keeps its shared links.
func PromptID(categoryID string, seq int) string {
	return categoryID + strconv.Itoa(seq)
}

// Empty reports whether the catalog holds no prompts at all.
func (c *Catalog) Empty() bool {
	if c == nil {
		return true
	}
	for _, cat := range c.Categories {
		if len(cat.Prompts) > 0 {
			return false
		}
	}
	return true
}

// CategoryNames returns display names in catalog order.
func (c *Catalog) CategoryNames() []string {
	names := make([]string, len(c.Categories))
	for i, cat := range c.Categories {
		names[i] = cat.Name
	}
	return names
}

// Category looks a category up by display name or raw identifier. Both are
// valid match targets because historical share links used either.
func (c *Catalog) Category(name string) (*Category, bool) {
	for i := range c.Categories {
		if c.Categories[i].Name == name || c.Categories[i].ID == name {
			return &c.Categories[i], true
		}
	}
	return nil, false
}

// FindByID scans all categories for a prompt with the given id. A miss is a
// routine case (stale deep links), not an error.
func (c *Catalog) FindByID(id string) (Prompt, bool) {
	for _, cat := range c.Categories {
		for _, p := range cat.Prompts {
			if p.ID == id {
				return p, true
			}
		}
	}
	return Prompt{}, false
}

// AllPrompts flattens every category's prompts in catalog order.
func (c *Catalog) AllPrompts() []Prompt {
	var all []Prompt
	for _, cat := range c.Categories {
		all = append(all, cat.Prompts...)
	}
	return all
}

// Validate checks the catalog invariants: no duplicate ids, no empty
// categories, and every prompt carrying its group's display name.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool)
	for _, cat := range c.Categories {
		if len(cat.Prompts) == 0 {
			return fmt.Errorf("category %q has no prompts", cat.Name)
		}
		for _, p := range cat.Prompts {
			if p.Category != cat.Name {
				return fmt.Errorf("prompt %s carries category %q, expected %q", p.ID, p.Category, cat.Name)
			}
			if seen[p.ID] {
				return fmt.Errorf("duplicate prompt id %s", p.ID)
			}
			seen[p.ID] = true
		}
	}
	return nil
}
