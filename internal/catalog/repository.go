package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"
)

// Loader builds a catalog for a language. Implemented by loader.Chain.
type Loader interface {
	Load(ctx context.Context, lang string) (*Catalog, error)
}

// UnknownCategoryError is returned when a caller asks for a category name
// that is not present in the current catalog.
type UnknownCategoryError struct {
	Name string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q", e.Name)
}

// Repository holds the current catalog and answers the selection and
// identity queries the UI layer needs. The catalog is replaced wholesale on
// each reload, never patched, so readers always see a fully-old or fully-new
// catalog.
type Repository struct {
	loader Loader

	current atomic.Pointer[Catalog]
	loadGen atomic.Int64

	randMu sync.Mutex
	rng    *rand.Rand
}

// Config holds configuration for the repository.
type Config struct {
	Loader Loader
	// Rand is used for prompt selection. Defaults to a time-seeded source;
	// tests inject a fixed seed.
	Rand *rand.Rand
}

// NewRepository creates a repository with an empty catalog.
func NewRepository(cfg Config) *Repository {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	r := &Repository{
		loader: cfg.Loader,
		rng:    rng,
	}
	r.current.Store(&Catalog{})
	return r
}

// Reload fetches and normalizes the catalog for lang and swaps it in
// atomically. If another Reload started after this one, its result wins and
// this one is discarded (last-requested-language-wins).
func (r *Repository) Reload(ctx context.Context, lang string) error {
	gen := r.loadGen.Add(1)

	cat, err := r.loader.Load(ctx, lang)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	if r.loadGen.Load() != gen {
		slog.Debug("discarding superseded catalog load", "language", lang)
		return nil
	}

	r.current.Store(cat)
	slog.Info("catalog loaded", "language", cat.Language, "categories", len(cat.Categories))
	return nil
}

// Catalog returns the currently committed catalog.
func (r *Repository) Catalog() *Catalog {
	return r.current.Load()
}

// ListCategories returns category display names in source insertion order.
func (r *Repository) ListCategories() []string {
	return r.Catalog().CategoryNames()
}

// PromptsIn returns the ordered prompts of the named category.
func (r *Repository) PromptsIn(name string) ([]Prompt, error) {
	cat, ok := r.Catalog().Category(name)
	if !ok {
		return nil, &UnknownCategoryError{Name: name}
	}
	return cat.Prompts, nil
}

// FindByID looks a prompt up by its canonical id.
func (r *Repository) FindByID(id string) (Prompt, bool) {
	return r.Catalog().FindByID(id)
}

// RandomFrom selects a prompt uniformly at random from prompts. When exclude
// is non-nil and prompts has more than one element, the result never shares
// exclude's text, so the same prompt is not shown twice in a row. Sampling
// draws from the candidate set minus the excluded entry rather than
// retrying, which bounds the work.
func (r *Repository) RandomFrom(prompts []Prompt, exclude *Prompt) Prompt {
	switch len(prompts) {
	case 0:
		return Prompt{}
	case 1:
		return prompts[0]
	}

	candidates := prompts
	if exclude != nil {
		filtered := make([]Prompt, 0, len(prompts))
		for _, p := range prompts {
			if p.Text != exclude.Text {
				filtered = append(filtered, p)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}

	r.randMu.Lock()
	defer r.randMu.Unlock()
	return candidates[r.rng.Intn(len(candidates))]
}

// RandomAny selects across the union of all categories with the same
// exclusion semantics as RandomFrom.
func (r *Repository) RandomAny(exclude *Prompt) Prompt {
	return r.RandomFrom(r.Catalog().AllPrompts(), exclude)
}
