package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("single yaml document", func(t *testing.T) {
		docs, err := Parse("test", []byte("categories:\n  B:\n    prompts: []\n"))
		require.NoError(t, err)
		assert.Len(t, docs, 1)
	})

	t.Run("document stream", func(t *testing.T) {
		blob := "category: B\nprompts: []\n---\ncategory: G\nprompts: []\n"
		docs, err := Parse("test", []byte(blob))
		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})

	t.Run("json is valid yaml", func(t *testing.T) {
		docs, err := Parse("test", []byte(`{"categories": {"B": {"prompts": []}}}`))
		require.NoError(t, err)
		assert.Len(t, docs, 1)
	})

	t.Run("empty blob yields no documents", func(t *testing.T) {
		docs, err := Parse("test", nil)
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("malformed text", func(t *testing.T) {
		_, err := Parse("test", []byte("categories: [unclosed"))
		require.Error(t, err)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "test", parseErr.Source)
	})
}
