package htmltomarkdown_test

import (
	"testing"

	"github.com/griffdawg123/recipebook"
	"github.com/griffdawg123/recipebook/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements recipebook.Converter at compile time.
var _ recipebook.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Lamingtons</h1><p>A classic Australian sponge cake.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Lamingtons")
		assert.Contains(t, md, "A classic Australian sponge cake.")
	})

	t.Run("converts ingredient lists", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>1 cup flour</li><li>2 eggs</li></ul>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "- 1 cup flour")
		assert.Contains(t, md, "- 2 eggs")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table><tr><th>Prep</th><th>Cook</th></tr><tr><td>20 min</td><td>25 min</td></tr></table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Prep")
		assert.Contains(t, md, "20 min")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")

		require.Error(t, err)
		assert.Equal(t, recipebook.EINVALID, recipebook.ErrorCode(err))
	})
}
