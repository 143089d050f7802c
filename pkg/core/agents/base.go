// Package agents produces the narrative layer of an analysis run:
// financial commentary, governance red-flag assessment, and the
// catalyst thesis. Every agent degrades to rule-based text when no
// model is reachable, so report generation is total.
package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// BaseAgent is a direct Gemini client for agents that always run on
// Gemini regardless of the configured provider.
type BaseAgent struct {
	client       *genai.Client
	modelName    string
	systemPrompt string
}

// NewBaseAgent dials Gemini with an explicit key.
func NewBaseAgent(ctx context.Context, apiKey, systemPrompt string) (*BaseAgent, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &BaseAgent{
		client:       client,
		modelName:    "gemini-2.0-flash-exp",
		systemPrompt: systemPrompt,
	}, nil
}

// generate runs one completion and concatenates the text parts.
func (a *BaseAgent) generate(ctx context.Context, prompt string) (string, error) {
	model := a.client.GenerativeModel(a.modelName)
	model.SetTemperature(0.7)

	fullPrompt := fmt.Sprintf("%s\n\nTask: %s", a.systemPrompt, prompt)
	resp, err := model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("model returned no content")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String(), nil
}
