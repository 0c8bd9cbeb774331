package schema

import (
	"sort"
	"testing"

	"github.com/jotkit/jotkit/internal/catalog"
	"github.com/jotkit/jotkit/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// The same logical content expressed in all three historical shapes.
// B2 deliberately has no German translation, so requesting "de" exercises
// the English fallback.

const cleanDoc = `
categories:
  B:
    names: {en: Biography, de: Biografie}
    prompts:
      - seq: 1
        translations:
          en: {text: "Describe your childhood home.", purpose: "Memory anchoring."}
          de: {text: "Beschreibe dein Elternhaus.", purpose: "Erinnerungsanker."}
      - seq: 2
        translations:
          en: {text: "Write about a teacher you remember.", purpose: "People who shaped you."}
  G:
    names: {en: Gratitude}
    prompts:
      - seq: 1
        translations:
          en: {text: "List three small things you enjoyed today.", purpose: "Noticing the ordinary."}
`

const nestedDoc = `
categories:
  - id: B
    names: {en: Biography, de: Biografie}
  - id: G
    names: {en: Gratitude}
prompts:
  - category: B
    seq: 1
    translations:
      en: {text: "Describe your childhood home.", purpose: "Memory anchoring."}
      de: {text: "Beschreibe dein Elternhaus.", purpose: "Erinnerungsanker."}
  - category: B
    seq: 2
    translations:
      en: {text: "Write about a teacher you remember.", purpose: "People who shaped you."}
  - category: G
    seq: 1
    translations:
      en: {text: "List three small things you enjoyed today.", purpose: "Noticing the ordinary."}
`

const legacyDocs = `
category: B
name: Biography
language: en
prompts:
  - seq: 1
    text: "Describe your childhood home."
    purpose: "Memory anchoring."
  - seq: 2
    text: "Write about a teacher you remember."
    purpose: "People who shaped you."
---
category: G
name: Gratitude
language: en
prompts:
  - seq: 1
    text: "List three small things you enjoyed today."
    purpose: "Noticing the ordinary."
`

func parseDocs(t *testing.T, blob string) []*yaml.Node {
	t.Helper()
	docs, err := source.Parse("test", []byte(blob))
	require.NoError(t, err)
	return docs
}

func catalogIDs(c *catalog.Catalog) []string {
	var ids []string
	for _, p := range c.AllPrompts() {
		ids = append(ids, p.ID)
	}
	sort.Strings(ids)
	return ids
}

func TestIDStabilityAcrossSchemas(t *testing.T) {
	cases := []struct {
		name string
		n    Normalizer
		blob string
	}{
		{"clean", Clean{}, cleanDoc},
		{"nested", Nested{}, nestedDoc},
		{"legacy", Legacy{}, legacyDocs},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cat, warnings, err := tc.n.Normalize(parseDocs(t, tc.blob), "en")
			require.NoError(t, err)
			assert.Empty(t, warnings)

			assert.Equal(t, []string{"B1", "B2", "G1"}, catalogIDs(cat))
			assert.Equal(t, []string{"Biography", "Gratitude"}, cat.CategoryNames())

			p, ok := cat.FindByID("B1")
			require.True(t, ok)
			assert.Equal(t, "Describe your childhood home.", p.Text)
			assert.Equal(t, "Memory anchoring.", p.Purpose)
			assert.Equal(t, "Biography", p.Category)
		})
	}
}

func TestClean_Normalize(t *testing.T) {
	t.Run("english fallback emits one warning per prompt", func(t *testing.T) {
		cat, warnings, err := Clean{}.Normalize(parseDocs(t, cleanDoc), "de")
		require.NoError(t, err)

		require.Len(t, warnings, 2) // B2 falls back, G1 falls back
		p, ok := cat.FindByID("B2")
		require.True(t, ok)
		assert.Equal(t, "Write about a teacher you remember.", p.Text)

		p, ok = cat.FindByID("B1")
		require.True(t, ok)
		assert.Equal(t, "Beschreibe dein Elternhaus.", p.Text)

		// Localized category names, English where German is missing.
		assert.Equal(t, []string{"Biografie", "Gratitude"}, cat.CategoryNames())
	})

	t.Run("language codes are case-insensitive", func(t *testing.T) {
		cat, _, err := Clean{}.Normalize(parseDocs(t, cleanDoc), "DE")
		require.NoError(t, err)
		p, ok := cat.FindByID("B1")
		require.True(t, ok)
		assert.Equal(t, "Beschreibe dein Elternhaus.", p.Text)
	})

	t.Run("prompt without any usable translation is skipped", func(t *testing.T) {
		blob := `
categories:
  X:
    prompts:
      - seq: 1
        translations:
          fr: {text: "Seulement en français."}
      - seq: 2
        translations:
          en: {text: "Kept."}
`
		cat, warnings, err := Clean{}.Normalize(parseDocs(t, blob), "en")
		require.NoError(t, err)

		_, ok := cat.FindByID("X1")
		assert.False(t, ok)
		_, ok = cat.FindByID("X2")
		assert.True(t, ok)

		require.Len(t, warnings, 1)
		assert.Equal(t, "X1", warnings[0].PromptID)
	})

	t.Run("category name falls back to raw identifier", func(t *testing.T) {
		blob := `
categories:
  X:
    prompts:
      - seq: 1
        translations:
          en: {text: "Something."}
`
		cat, _, err := Clean{}.Normalize(parseDocs(t, blob), "en")
		require.NoError(t, err)
		assert.Equal(t, []string{"X"}, cat.CategoryNames())
	})

	t.Run("mismatch on missing categories", func(t *testing.T) {
		_, _, err := Clean{}.Normalize(parseDocs(t, "prompts: []\n"), "en")
		assert.ErrorIs(t, err, ErrSchemaMismatch)
	})

	t.Run("mismatch on nested shape", func(t *testing.T) {
		_, _, err := Clean{}.Normalize(parseDocs(t, nestedDoc), "en")
		assert.ErrorIs(t, err, ErrSchemaMismatch)
	})

	t.Run("mismatch on legacy stream", func(t *testing.T) {
		_, _, err := Clean{}.Normalize(parseDocs(t, legacyDocs), "en")
		assert.ErrorIs(t, err, ErrSchemaMismatch)
	})
}

func TestNested_Normalize(t *testing.T) {
	t.Run("english fallback", func(t *testing.T) {
		cat, warnings, err := Nested{}.Normalize(parseDocs(t, nestedDoc), "de")
		require.NoError(t, err)

		require.Len(t, warnings, 2)
		assert.Equal(t, []string{"Biografie", "Gratitude"}, cat.CategoryNames())
	})

	t.Run("prompt referencing unknown category is skipped", func(t *testing.T) {
		blob := `
categories:
  - id: B
    names: {en: Biography}
prompts:
  - category: Z
    seq: 1
    translations:
      en: {text: "Orphaned."}
  - category: B
    seq: 1
    translations:
      en: {text: "Kept."}
`
		cat, warnings, err := Nested{}.Normalize(parseDocs(t, blob), "en")
		require.NoError(t, err)

		assert.Equal(t, []string{"B1"}, catalogIDs(cat))
		require.Len(t, warnings, 1)
	})

	t.Run("mismatch on clean shape", func(t *testing.T) {
		_, _, err := Nested{}.Normalize(parseDocs(t, cleanDoc), "en")
		assert.ErrorIs(t, err, ErrSchemaMismatch)
	})

	t.Run("mismatch on missing prompts table", func(t *testing.T) {
		_, _, err := Nested{}.Normalize(parseDocs(t, "categories: []\n"), "en")
		assert.ErrorIs(t, err, ErrSchemaMismatch)
	})
}

func TestLegacy_Normalize(t *testing.T) {
	t.Run("requested language document wins", func(t *testing.T) {
		blob := legacyDocs + `
---
category: B
name: Biografie
language: de
prompts:
  - seq: 1
    text: "Beschreibe dein Elternhaus."
    purpose: "Erinnerungsanker."
`
		cat, warnings, err := Legacy{}.Normalize(parseDocs(t, blob), "de")
		require.NoError(t, err)

		// B comes from the German document; G falls back to English with
		// one warning per prompt.
		p, ok := cat.FindByID("B1")
		require.True(t, ok)
		assert.Equal(t, "Beschreibe dein Elternhaus.", p.Text)
		assert.Equal(t, "Biografie", p.Category)

		_, ok = cat.FindByID("G1")
		assert.True(t, ok)
		require.Len(t, warnings, 1)
		assert.Equal(t, "G1", warnings[0].PromptID)
	})

	t.Run("category with only foreign documents contributes nothing", func(t *testing.T) {
		blob := `
category: F
name: Français
language: fr
prompts:
  - seq: 1
    text: "Seulement en français."
`
		cat, warnings, err := Legacy{}.Normalize(parseDocs(t, blob), "en")
		require.NoError(t, err)

		assert.True(t, cat.Empty())
		require.Len(t, warnings, 1)
		assert.Equal(t, "F1", warnings[0].PromptID)
	})

	t.Run("missing language defaults to english", func(t *testing.T) {
		blob := `
category: B
name: Biography
prompts:
  - seq: 1
    text: "Describe your childhood home."
`
		cat, warnings, err := Legacy{}.Normalize(parseDocs(t, blob), "en")
		require.NoError(t, err)
		assert.Empty(t, warnings)
		assert.Equal(t, []string{"B1"}, catalogIDs(cat))
	})

	t.Run("mismatch on clean shape", func(t *testing.T) {
		_, _, err := Legacy{}.Normalize(parseDocs(t, cleanDoc), "en")
		assert.ErrorIs(t, err, ErrSchemaMismatch)
	})

	t.Run("mismatch on empty stream", func(t *testing.T) {
		_, _, err := Legacy{}.Normalize(nil, "en")
		assert.ErrorIs(t, err, ErrSchemaMismatch)
	})
}
