// Package llm abstracts chat-completion style model providers behind
// a single interface so agents and the extractor can swap backends
// through configuration.
package llm

import "context"

// Provider is the interface all model backends implement.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
	// AdaptInstructions reshapes a raw system prompt into the form a
	// specific model family responds best to.
	AdaptInstructions(rawInstructions string) string
}
