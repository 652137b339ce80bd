// Package openrouter provides an implementation of recipebook.RecipeExtractor
// backed by the OpenRouter (OpenAI-compatible) chat completions API.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/griffdawg123/recipebook"
)

// Defaults for the chat completions call.
const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel   = "openai/gpt-4o"
	DefaultTimeout = 60 * time.Second
)

const systemPrompt = "You are a helpful assistant that extracts recipe information from web content. Always return valid JSON without markdown code blocks or formatting."

// Ensure Extractor implements recipebook.RecipeExtractor at compile time.
var _ recipebook.RecipeExtractor = (*Extractor)(nil)

// Extractor extracts structured recipe metadata by sending page text to a
// chat completions endpoint. The API key is supplied explicitly at
// construction; the package never reads process environment.
type Extractor struct {
	apiKey  string
	baseURL string
	model   string
	timeout time.Duration
	client  *http.Client
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithModel overrides the model identifier sent with each request.
func WithModel(model string) Option {
	return func(e *Extractor) {
		e.model = model
	}
}

// WithBaseURL overrides the API base URL. Useful for pointing the extractor
// at a test server.
func WithBaseURL(baseURL string) Option {
	return func(e *Extractor) {
		e.baseURL = baseURL
	}
}

// WithTimeout sets the total timeout for the chat completions request.
// Defaults to DefaultTimeout (60s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(e *Extractor) {
		e.timeout = d
	}
}

// NewExtractor creates a new Extractor authenticated with apiKey.
func NewExtractor(apiKey string, opts ...Option) *Extractor {
	e := &Extractor{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.client = &http.Client{
		Timeout: e.timeout,
	}

	return e
}

// Wire-level envelopes for the chat completions API.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

// ExtractRecipe sends pageContent to the chat completions endpoint and
// parses the model's reply into a RecipeInfo. A malformed reply is a
// terminal failure; nothing is retried.
func (e *Extractor) ExtractRecipe(ctx context.Context, pageContent string) (*recipebook.RecipeInfo, error) {
	reqBody := chatRequest{
		Model: e.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: BuildUserPrompt(pageContent)},
		},
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return nil, recipebook.Errorf(recipebook.EINTERNAL, "failed to encode request: %v", err)
	}

	endpoint := fmt.Sprintf("%s/chat/completions", e.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, recipebook.Errorf(recipebook.EINTERNAL, "failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, recipebook.Errorf(recipebook.ENETWORK, "network error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Best effort: an unreadable error body becomes an empty string
		// rather than failing the failure path.
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			body = nil
		}
		return nil, recipebook.Errorf(recipebook.EAPI, "HTTP %d: %s", resp.StatusCode, string(body))
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return nil, recipebook.Errorf(recipebook.EPARSE, "failed to parse JSON response: %v", err)
	}

	if len(chat.Choices) == 0 {
		return nil, recipebook.Errorf(recipebook.EINVALIDRESPONSE, "no choices returned by model")
	}

	return ParseRecipeJSON(chat.Choices[0].Message.Content)
}

// BuildUserPrompt builds the user message embedding the page content and
// requesting the fixed JSON shape.
func BuildUserPrompt(pageContent string) string {
	return fmt.Sprintf(`Please analyze this recipe content and extract the following information in a structured format:

1. Ingredients list (clean, human-readable format)
2. Preparation time
3. Cooking time
4. Total time
5. Number of servings

Return the information in this exact JSON format:
{
    "ingredients": ["ingredient 1", "ingredient 2", ...],
    "prep_time": "time or null",
    "cook_time": "time or null",
    "total_time": "time or null",
    "servings": "servings or null"
}

Recipe content:
%s`, pageContent)
}
