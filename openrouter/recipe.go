package openrouter

import (
	"encoding/json"
	"strings"

	"github.com/griffdawg123/recipebook"
)

// StripCodeFence removes a markdown code fence wrapped around s, if present.
// Models sometimes fence their JSON despite instructions not to. The order
// is significant: trim, strip a leading "```json" or "```", strip a trailing
// "```", trim again. Stripping is lossless for the payload between fences.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ParseRecipeJSON parses a model reply into a RecipeInfo, stripping any
// code fence first. Field extraction is tolerant: ingredients defaults to an
// empty list, non-string entries are dropped, and optional fields become nil
// when missing, empty, or the literal "null".
func ParseRecipeJSON(content string) (*recipebook.RecipeInfo, error) {
	cleaned := StripCodeFence(content)

	var raw map[string]any
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, recipebook.Errorf(recipebook.EPARSE, "failed to parse recipe JSON: %v", err)
	}

	return &recipebook.RecipeInfo{
		Ingredients: ingredientList(raw["ingredients"]),
		PrepTime:    optionalField(raw["prep_time"]),
		CookTime:    optionalField(raw["cook_time"]),
		TotalTime:   optionalField(raw["total_time"]),
		Servings:    optionalField(raw["servings"]),
	}, nil
}

// ingredientList keeps only entries that are strings, trimmed and non-empty.
// Anything that is not an array yields an empty list.
func ingredientList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// optionalField normalizes an optional scalar. A value that is missing, not
// a string, empty after trimming, or case-insensitively "null" is absent.
func optionalField(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "null") {
		return nil
	}
	return &s
}
