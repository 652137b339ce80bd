package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/griffdawg123/recipebook"
)

// Run executes the extract command. A scrape failure aborts the run with an
// error; an extraction failure is reported alongside the scraped page title
// without failing the process, since the page itself was retrieved.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Scraping recipe from: %s\n", c.URL)

	result, err := deps.Pipeline.Run(deps.Ctx, c.URL)
	if err != nil {
		if result == nil {
			fmt.Fprintf(deps.Stderr, "Scraping error: %s\n", recipebook.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Successfully scraped: %s\n", result.Page.Title)
		fmt.Fprintf(deps.Stderr, "Extraction error: %s\n", recipebook.ErrorMessage(err))
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Successfully scraped: %s\n", result.Page.Title)

	if c.JSON {
		data, err := json.MarshalIndent(result.Recipe, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(data))
		return nil
	}

	printRecipe(deps.Stdout, result.Recipe)
	return nil
}

func printRecipe(w io.Writer, r *recipebook.RecipeInfo) {
	fmt.Fprintln(w, "\nRecipe Information:")
	if len(r.Ingredients) == 0 {
		fmt.Fprintln(w, "Ingredients: (none found)")
	} else {
		fmt.Fprintln(w, "Ingredients:")
		for _, ingredient := range r.Ingredients {
			fmt.Fprintf(w, "  - %s\n", ingredient)
		}
	}
	printField(w, "Prep time", r.PrepTime)
	printField(w, "Cook time", r.CookTime)
	printField(w, "Total time", r.TotalTime)
	printField(w, "Servings", r.Servings)
}

func printField(w io.Writer, label string, value *string) {
	if value == nil {
		return
	}
	fmt.Fprintf(w, "%s: %s\n", label, *value)
}
