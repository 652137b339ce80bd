package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/griffdawg123/recipebook"
)

// Ensure LoggingExtractor implements recipebook.RecipeExtractor.
var _ recipebook.RecipeExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a RecipeExtractor with debug logging.
type LoggingExtractor struct {
	next   recipebook.RecipeExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next recipebook.RecipeExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractRecipe delegates to the wrapped extractor and logs the operation.
// Page content is never logged, only its length.
func (e *LoggingExtractor) ExtractRecipe(ctx context.Context, pageContent string) (recipe *recipebook.RecipeInfo, err error) {
	defer func(begin time.Time) {
		ingredients := 0
		if recipe != nil {
			ingredients = len(recipe.Ingredients)
		}
		e.logger.Info("recipe extraction",
			"content_length", len(pageContent),
			"ingredients", ingredients,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractRecipe(ctx, pageContent)
}
