package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jotkit/jotkit/internal/catalog"
	"github.com/jotkit/jotkit/internal/schema"
	"github.com/jotkit/jotkit/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cleanFixture = `
categories:
  B:
    names: {en: Biography}
    prompts:
      - seq: 1
        translations:
          en: {text: "Describe your childhood home."}
`

const legacyFixture = `
category: B
name: Biography
language: en
prompts:
  - seq: 1
    text: "Describe your childhood home."
`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newChain(clean, nested, legacy string) *Chain {
	return New(Config{
		Fetcher:  source.NewFetcher(source.FetcherConfig{Retries: 1}),
		Attempts: DefaultAttempts(clean, nested, legacy),
	})
}

func TestChain_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("first schema wins", func(t *testing.T) {
		clean := writeFixture(t, "prompts.yaml", cleanFixture)
		legacy := writeFixture(t, "legacy.yaml", legacyFixture)

		cat, err := newChain(clean, "", legacy).Load(ctx, "en")
		require.NoError(t, err)
		assert.Equal(t, []string{"Biography"}, cat.CategoryNames())
	})

	t.Run("legacy-only content still loads", func(t *testing.T) {
		// The clean and nested locations hold content in the wrong shape;
		// the chain falls through to the legacy source.
		wrong := writeFixture(t, "wrong.yaml", "something: else\n")
		legacy := writeFixture(t, "legacy.yaml", legacyFixture)

		cat, err := newChain(wrong, wrong, legacy).Load(ctx, "en")
		require.NoError(t, err)

		p, ok := cat.FindByID("B1")
		require.True(t, ok)
		assert.Equal(t, "Describe your childhood home.", p.Text)
	})

	t.Run("missing source files fall through", func(t *testing.T) {
		legacy := writeFixture(t, "legacy.yaml", legacyFixture)

		cat, err := newChain("/nonexistent/a.yaml", "/nonexistent/b.yaml", legacy).Load(ctx, "en")
		require.NoError(t, err)
		assert.False(t, cat.Empty())
	})

	t.Run("malformed source falls through", func(t *testing.T) {
		bad := writeFixture(t, "bad.yaml", "categories: [unclosed")
		legacy := writeFixture(t, "legacy.yaml", legacyFixture)

		cat, err := newChain(bad, "", legacy).Load(ctx, "en")
		require.NoError(t, err)
		assert.False(t, cat.Empty())
	})

	t.Run("all attempts exhausted", func(t *testing.T) {
		wrong := writeFixture(t, "wrong.yaml", "something: else\n")

		_, err := newChain(wrong, wrong, wrong).Load(ctx, "en")
		require.Error(t, err)

		var loadErr *LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Len(t, loadErr.Failures, 3)
		for _, f := range loadErr.Failures {
			assert.ErrorIs(t, f.Err, schema.ErrSchemaMismatch)
		}
	})

	t.Run("empty catalog counts as a failed attempt", func(t *testing.T) {
		// Valid clean shape, but nothing usable in the requested language
		// and no English fallback.
		frenchOnly := writeFixture(t, "fr.yaml", `
categories:
  F:
    prompts:
      - seq: 1
        translations:
          fr: {text: "Seulement en français."}
`)
		legacy := writeFixture(t, "legacy.yaml", legacyFixture)

		cat, err := newChain(frenchOnly, "", legacy).Load(ctx, "en")
		require.NoError(t, err)
		assert.Equal(t, []string{"B1"}, idsOf(cat))
	})

	t.Run("fetches over http", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(cleanFixture))
		}))
		defer server.Close()

		cat, err := newChain(server.URL, "", "").Load(ctx, "en")
		require.NoError(t, err)
		assert.False(t, cat.Empty())
	})

	t.Run("no caching between calls", func(t *testing.T) {
		path := writeFixture(t, "prompts.yaml", cleanFixture)
		chain := newChain(path, "", "")

		_, err := chain.Load(ctx, "en")
		require.NoError(t, err)

		// Replace the source; the next load must see the new content.
		require.NoError(t, os.WriteFile(path, []byte(`
categories:
  N:
    names: {en: New}
    prompts:
      - seq: 1
        translations:
          en: {text: "Fresh content."}
`), 0644))

		cat, err := chain.Load(ctx, "en")
		require.NoError(t, err)
		assert.Equal(t, []string{"New"}, cat.CategoryNames())
	})
}

func idsOf(c *catalog.Catalog) []string {
	var ids []string
	for _, p := range c.AllPrompts() {
		ids = append(ids, p.ID)
	}
	return ids
}
