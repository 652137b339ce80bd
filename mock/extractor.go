package mock

import (
	"context"

	"github.com/griffdawg123/recipebook"
)

var _ recipebook.RecipeExtractor = (*RecipeExtractor)(nil)

// RecipeExtractor is a mock implementation of recipebook.RecipeExtractor.
type RecipeExtractor struct {
	ExtractRecipeFn func(ctx context.Context, pageContent string) (*recipebook.RecipeInfo, error)
}

func (e *RecipeExtractor) ExtractRecipe(ctx context.Context, pageContent string) (*recipebook.RecipeInfo, error) {
	return e.ExtractRecipeFn(ctx, pageContent)
}
