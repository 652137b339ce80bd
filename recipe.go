package recipebook

import "context"

// RecipeInfo is the structured extraction result for a recipe page.
// Ingredients entries are trimmed, non-empty strings. The optional fields
// are nil when the source value was missing, not a string, empty after
// trimming, or the literal string "null" in any case.
type RecipeInfo struct {
	Ingredients []string `json:"ingredients"`
	PrepTime    *string  `json:"prep_time,omitempty"`
	CookTime    *string  `json:"cook_time,omitempty"`
	TotalTime   *string  `json:"total_time,omitempty"`
	Servings    *string  `json:"servings,omitempty"`
}

// RecipeExtractor extracts structured recipe metadata from page text.
type RecipeExtractor interface {
	// ExtractRecipe sends the page content to an LLM and parses the reply.
	// A single malformed reply is a terminal failure; nothing is retried.
	ExtractRecipe(ctx context.Context, pageContent string) (*RecipeInfo, error)
}
