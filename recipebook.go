// Package recipebook extracts structured recipe metadata from web pages.
// It fetches a page, projects its visible text, and asks an LLM
// chat-completion endpoint to return ingredients and timing information
// as structured data.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, openrouter/).
package recipebook
