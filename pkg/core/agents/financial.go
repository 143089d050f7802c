package agents

import (
	"context"
	"encoding/json"
	"fmt"

	"shareholder_catalyst/pkg/core/agent"
	"shareholder_catalyst/pkg/core/calc"
	"shareholder_catalyst/pkg/core/peers"
	"shareholder_catalyst/pkg/core/prompt"
	"shareholder_catalyst/pkg/core/utils"
	"shareholder_catalyst/pkg/models"
)

// FinancialAnalyst writes the financial performance commentary. Runs
// through the agent manager so the provider is configurable; with no
// manager or a failing model it falls back to rule-based text.
type FinancialAnalyst struct {
	mgr *agent.Manager
}

// NewFinancialAnalyst creates the analyst. mgr may be nil for
// fallback-only operation.
func NewFinancialAnalyst(mgr *agent.Manager) *FinancialAnalyst {
	prompt.EnsureBuiltins()
	return &FinancialAnalyst{mgr: mgr}
}

// Analyze produces Markdown commentary for the extracted financials.
func (a *FinancialAnalyst) Analyze(ctx context.Context, identity models.CompanyIdentity, fin *models.FinancialRecord, metrics calc.Metrics, comparison peers.Comparison) string {
	if a.mgr == nil {
		return fallbackFinancialNarrative(identity, fin, metrics, comparison)
	}

	pt, err := prompt.Get().GetPrompt(prompt.PromptIDs.AnalysisFinancial)
	if err != nil {
		return fallbackFinancialNarrative(identity, fin, metrics, comparison)
	}

	userPrompt, err := prompt.RenderUserPrompt(pt, prompt.NewContext().
		Set("CompanyName", identity.Name).
		Set("Ticker", identity.Ticker).
		Set("Financials", mustJSON(fin)).
		Set("Metrics", mustJSON(metrics)).
		Set("Peers", mustJSON(comparison)))
	if err != nil {
		return fallbackFinancialNarrative(identity, fin, metrics, comparison)
	}

	out, err := a.mgr.ExecutePrompt(ctx, "financial_analyst", userPrompt, pt.SystemPrompt, nil)
	if err != nil {
		fmt.Printf("[AGENTS] [WARNING] ticker=%s financial narrative failed: %v, using fallback\n", identity.Ticker, err)
		return fallbackFinancialNarrative(identity, fin, metrics, comparison)
	}
	return utils.CleanMarkdown(out)
}

func fallbackFinancialNarrative(identity models.CompanyIdentity, fin *models.FinancialRecord, metrics calc.Metrics, comparison peers.Comparison) string {
	trend := "flat"
	if fin.RevenuePrior1 > 0 {
		switch {
		case fin.RevenueCurrent > fin.RevenuePrior1:
			trend = "growing"
		case fin.RevenueCurrent < fin.RevenuePrior1:
			trend = "declining"
		}
	}
	return fmt.Sprintf(
		"## Financial Performance\n\n"+
			"%s (%s) reported revenue of $%.1fB with %s year-over-year trend. "+
			"Operating margin stands at %.1f%% against a peer median of %.1f%%, "+
			"with ROE of %.1f%%. Estimated upside to peer-median performance: %.1f%%.\n",
		identity.Name, identity.Ticker, fin.RevenueCurrent/1e9, trend,
		metrics.OperatingMargin, comparison.Medians.OperatingMargin,
		metrics.ROE, comparison.UpsidePct,
	)
}

func mustJSON(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
