// Package schema normalizes the three historical prompt document shapes
// into the canonical catalog form. Each normalizer either produces a
// catalog or signals a schema mismatch so the loader chain can try the
// next shape.
package schema

import (
	"errors"
	"fmt"

	"github.com/jotkit/jotkit/internal/catalog"
	"gopkg.in/yaml.v3"
)

// ErrSchemaMismatch signals that a document does not carry this schema's
// required top-level fields. It tells the loader chain to try the next
// normalizer; it is never fatal on its own.
var ErrSchemaMismatch = errors.New("schema mismatch")

func mismatch(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSchemaMismatch, fmt.Sprintf(format, args...))
}

// Warning records a non-fatal degradation during normalization: a prompt
// that fell back to English, or one skipped because no usable translation
// exists.
type Warning struct {
	PromptID string
	Category string
	Message  string
}

func (w Warning) String() string {
	if w.PromptID == "" {
		return fmt.Sprintf("category %q: %s", w.Category, w.Message)
	}
	return fmt.Sprintf("prompt %s (category %q): %s", w.PromptID, w.Category, w.Message)
}

func fallbackWarning(id, category, lang string) Warning {
	return Warning{
		PromptID: id,
		Category: category,
		Message:  fmt.Sprintf("no %q translation, using English", lang),
	}
}

func skippedWarning(id, category, lang string) Warning {
	return Warning{
		PromptID: id,
		Category: category,
		Message:  fmt.Sprintf("no %q or English translation, prompt skipped", lang),
	}
}

// Normalizer converts parsed source documents into a catalog for one
// language, or reports ErrSchemaMismatch when the documents have a
// different shape.
type Normalizer interface {
	Name() string
	Normalize(docs []*yaml.Node, lang string) (*catalog.Catalog, []Warning, error)
}
