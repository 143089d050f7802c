package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider implements Provider on Google's Gemini API.
type GeminiProvider struct {
	Model  string // e.g. "gemini-2.0-flash-exp"
	APIKey string // optional; falls back to GEMINI_API_KEY
}

var _ Provider = (*GeminiProvider)(nil)

// GenerateResponse sends a generateContent request through the
// official GenAI SDK. JSON mode is enabled via the response_format
// option or heuristically when the prompts ask for JSON.
func (p *GeminiProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	apiKey := p.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not set")
	}

	model := p.Model
	if model == "" {
		model = "gemini-2.0-flash-exp"
	}
	if val, ok := options["model"].(string); ok && val != "" {
		model = val
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create GenAI client: %w", err)
	}

	// Low temperature: extraction wants determinism over flair.
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.1)),
	}

	if val, ok := options["response_format"].(map[string]interface{}); ok {
		if val["type"] == "json_object" {
			cfg.ResponseMIMEType = "application/json"
		}
	} else if strings.Contains(strings.ToLower(systemPrompt), "json") || strings.Contains(strings.ToLower(prompt), "json") {
		cfg.ResponseMIMEType = "application/json"
	}

	if systemPrompt != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		}
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	return result.Text(), nil
}

func (p *GeminiProvider) AdaptInstructions(raw string) string {
	return raw
}
