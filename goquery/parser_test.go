package goquery_test

import (
	"testing"

	"github.com/griffdawg123/recipebook"
	rbgoquery "github.com/griffdawg123/recipebook/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Parser implements recipebook.PageParser at compile time.
var _ recipebook.PageParser = (*rbgoquery.Parser)(nil)

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and body text", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Lamingtons</title></head><body>1 cup flour, 2 eggs. Prep 20 min.</body></html>`

		parser := rbgoquery.NewParser()
		page, err := parser.Parse(html, "https://example.com/lamingtons")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/lamingtons", page.URL)
		assert.Equal(t, "Lamingtons", page.Title)
		assert.Equal(t, "1 cup flour, 2 eggs. Prep 20 min.", page.Content)
		assert.Equal(t, html, page.HTML)
	})

	t.Run("decodes entities in the title", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Fish &amp; Chips</title></head><body>x</body></html>`

		parser := rbgoquery.NewParser()
		page, err := parser.Parse(html, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "Fish & Chips", page.Title)
	})

	t.Run("uses fallback title when no title element exists", func(t *testing.T) {
		t.Parallel()

		html := `<html><head></head><body>content</body></html>`

		parser := rbgoquery.NewParser()
		page, err := parser.Parse(html, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, recipebook.NoTitle, page.Title)
	})

	t.Run("includes nested body text without filtering", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div>Mix <span>gently</span></div><script>var x = 1;</script></body></html>`

		parser := rbgoquery.NewParser()
		page, err := parser.Parse(html, "https://example.com")

		require.NoError(t, err)
		assert.Contains(t, page.Content, "Mix gently")
		// Script text is not filtered out.
		assert.Contains(t, page.Content, "var x = 1;")
	})

	t.Run("falls back to raw HTML when no body tag exists", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Fragment</title></head></html>`

		parser := rbgoquery.NewParser()
		page, err := parser.Parse(html, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, html, page.Content)
		assert.Equal(t, "Fragment", page.Title)
	})

	t.Run("uses raw input as content for plain text input", func(t *testing.T) {
		t.Parallel()

		raw := "just some text, not html"

		parser := rbgoquery.NewParser()
		page, err := parser.Parse(raw, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, recipebook.NoTitle, page.Title)
		assert.Equal(t, raw, page.Content)
		assert.Equal(t, raw, page.HTML)
	})
}
