// Package deeplink decides what a shared address should display. It
// consumes query parameters and the current catalog; it never touches the
// address itself.
package deeplink

import (
	"net/url"
	"strings"

	"github.com/jotkit/jotkit/internal/catalog"
)

// Resolution is the outcome of resolving query parameters against a
// catalog. A zero Prompt and empty Category means no match; the caller
// falls back to an unpinned random prompt. BadParams is set when an id or
// category parameter was supplied but matched nothing, so the caller can
// strip the stale parameters from the visible address.
type Resolution struct {
	Prompt    *catalog.Prompt
	Category  string
	Pinned    bool
	BadParams bool
}

// NoMatch reports whether nothing in the parameters selected content.
func (r Resolution) NoMatch() bool {
	return r.Prompt == nil && r.Category == ""
}

// Resolve applies the link precedence rules, first match wins:
//
//  1. an id parameter naming a known prompt
//  2. category + prompt parameters, where some prompt in that category's
//     text starts with the given prefix (older link format)
//  3. a category parameter naming a known category; prompt choice is left
//     to the caller
//  4. no match
//
// The category parameter matches either a raw identifier or a display
// name; historical links used both.
func Resolve(params url.Values, cat *catalog.Catalog) Resolution {
	if id := params.Get("id"); id != "" {
		if p, ok := cat.FindByID(id); ok {
			return Resolution{Prompt: &p, Category: p.Category, Pinned: true}
		}
	}

	catParam := params.Get("category")
	if catParam != "" {
		if group, ok := cat.Category(catParam); ok {
			if prefix := params.Get("prompt"); prefix != "" {
				for i := range group.Prompts {
					if strings.HasPrefix(group.Prompts[i].Text, prefix) {
						return Resolution{Prompt: &group.Prompts[i], Category: group.Name, Pinned: true}
					}
				}
			}
			return Resolution{Category: group.Name, Pinned: true}
		}
	}

	return Resolution{
		BadParams: params.Get("id") != "" || catParam != "",
	}
}

// ShareLink renders the single-id address for a prompt, the only query
// parameter this tool writes back.
func ShareLink(base string, p catalog.Prompt) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := url.Values{}
	q.Set("id", p.ID)
	u.RawQuery = q.Encode()
	return u.String()
}
