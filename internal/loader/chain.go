// Package loader tries the schema normalizers in priority order against
// their source locations and returns the first non-empty catalog. This is
// where schema-evolution fallback lives.
package loader

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jotkit/jotkit/internal/catalog"
	"github.com/jotkit/jotkit/internal/schema"
	"github.com/jotkit/jotkit/internal/source"
)

// Attempt binds a normalizer to the source location holding its shape.
type Attempt struct {
	Normalizer schema.Normalizer
	Location   string
}

// AttemptFailure records why one attempt did not produce a catalog.
type AttemptFailure struct {
	Schema   string
	Location string
	Err      error
}

// LoadError means every attempt was exhausted. The caller must treat the
// load as fatal and show a content-unavailable state, never a partial
// catalog.
type LoadError struct {
	Failures []AttemptFailure
}

func (e *LoadError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = fmt.Sprintf("%s (%s): %v", f.Schema, f.Location, f.Err)
	}
	return "all prompt sources failed: " + strings.Join(parts, "; ")
}

// Chain attempts normalizers in a fixed priority order. It holds no cache;
// every Load re-fetches and re-normalizes because the language may change
// between calls.
type Chain struct {
	fetcher  *source.Fetcher
	attempts []Attempt
}

// Config holds configuration for the chain.
type Config struct {
	Fetcher  *source.Fetcher
	Attempts []Attempt
}

// New creates a chain. Attempts are tried in the order given.
func New(cfg Config) *Chain {
	return &Chain{
		fetcher:  cfg.Fetcher,
		attempts: cfg.Attempts,
	}
}

// DefaultAttempts is the standard priority order: current shape first,
// oldest last.
func DefaultAttempts(cleanURL, nestedURL, legacyURL string) []Attempt {
	return []Attempt{
		{Normalizer: schema.Clean{}, Location: cleanURL},
		{Normalizer: schema.Nested{}, Location: nestedURL},
		{Normalizer: schema.Legacy{}, Location: legacyURL},
	}
}

// Load builds a catalog for lang. Fetch errors, parse errors, schema
// mismatches and empty results all just move the chain along; they are
// logged as warnings, not surfaced. Only full exhaustion returns an error.
func (c *Chain) Load(ctx context.Context, lang string) (*catalog.Catalog, error) {
	var failures []AttemptFailure

	fail := func(at Attempt, err error, msg string) {
		slog.Warn(msg, "schema", at.Normalizer.Name(), "location", at.Location, "error", err)
		failures = append(failures, AttemptFailure{Schema: at.Normalizer.Name(), Location: at.Location, Err: err})
	}

	for _, at := range c.attempts {
		if at.Location == "" {
			continue
		}

		data, err := c.fetcher.Fetch(ctx, at.Location)
		if err != nil {
			fail(at, err, "prompt source unavailable")
			continue
		}

		docs, err := source.Parse(at.Location, data)
		if err != nil {
			fail(at, err, "prompt source malformed")
			continue
		}

		cat, warnings, err := at.Normalizer.Normalize(docs, lang)
		if err != nil {
			fail(at, err, "prompt source did not match schema")
			continue
		}

		for _, w := range warnings {
			slog.Warn("translation degraded", "schema", at.Normalizer.Name(), "detail", w.String())
		}

		if cat.Empty() {
			fail(at, fmt.Errorf("no prompts for language %q", lang), "prompt source produced empty catalog")
			continue
		}
		if err := cat.Validate(); err != nil {
			fail(at, err, "prompt source violated catalog invariants")
			continue
		}

		slog.Debug("catalog normalized",
			"schema", at.Normalizer.Name(),
			"categories", len(cat.Categories),
			"warnings", len(warnings),
		)
		return cat, nil
	}

	return nil, &LoadError{Failures: failures}
}
