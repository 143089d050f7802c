// Package agent routes prompts to the LLM provider each agent is
// configured for, with a global active provider and per-agent
// overrides.
package agent

import (
	"context"
	"fmt"

	"shareholder_catalyst/pkg/core/config"
	"shareholder_catalyst/pkg/core/llm"
)

// Manager resolves the provider for an agent type and executes
// prompts through it.
type Manager struct {
	cfg       *config.Config
	providers map[string]llm.Provider
}

// NewManager builds a Manager over the configured provider set.
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		cfg: cfg,
		providers: map[string]llm.Provider{
			"gemini":   &llm.GeminiProvider{APIKey: cfg.GeminiAPIKey},
			"deepseek": &llm.DeepSeekProvider{},
		},
	}
}

// GetProvider returns the provider for an agent type: per-agent
// override first, then the global active provider, then gemini.
func (m *Manager) GetProvider(agentType string) llm.Provider {
	if agentCfg, ok := m.cfg.Agents[agentType]; ok && agentCfg.Provider != "" {
		if p, ok := m.providers[agentCfg.Provider]; ok {
			return p
		}
	}
	if p, ok := m.providers[m.cfg.ActiveProvider]; ok {
		return p
	}
	return m.providers["gemini"]
}

// ExecutePrompt adapts the system prompt for the chosen model and
// sends the request.
func (m *Manager) ExecutePrompt(ctx context.Context, agentType string, rawPrompt string, rawSystemPrompt string, options map[string]interface{}) (string, error) {
	provider := m.GetProvider(agentType)
	adapted := provider.AdaptInstructions(rawSystemPrompt)
	return provider.GenerateResponse(ctx, rawPrompt, adapted, options)
}

// SetGlobalProvider switches the active provider at runtime.
func (m *Manager) SetGlobalProvider(name string) error {
	if _, ok := m.providers[name]; !ok {
		return fmt.Errorf("provider %s not found", name)
	}
	m.cfg.ActiveProvider = name
	fmt.Printf("[AGENT] global provider set to %s\n", name)
	return nil
}

// GetActiveProvider returns the current global provider name.
func (m *Manager) GetActiveProvider() string {
	return m.cfg.ActiveProvider
}
