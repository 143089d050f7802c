package agents

import (
	"context"
	"fmt"
	"strings"

	"shareholder_catalyst/pkg/core/agent"
	"shareholder_catalyst/pkg/core/prompt"
	"shareholder_catalyst/pkg/core/utils"
	"shareholder_catalyst/pkg/models"
)

// GovernanceAnalyst assesses pay and board structure. Red flag
// detection is always rule-based; only the narrative goes through the
// model.
type GovernanceAnalyst struct {
	mgr *agent.Manager
}

// NewGovernanceAnalyst creates the analyst. mgr may be nil.
func NewGovernanceAnalyst(mgr *agent.Manager) *GovernanceAnalyst {
	prompt.EnsureBuiltins()
	return &GovernanceAnalyst{mgr: mgr}
}

// RedFlags applies the rule set over extracted records. Rules only
// fire when both sides of a comparison were actually extracted, so an
// all-zero record produces no spurious flags.
func RedFlags(fin *models.FinancialRecord, gov *models.GovernanceRecord) []string {
	flags := []string{}
	if gov == nil {
		return flags
	}

	if fin != nil && gov.CEOTotalComp > 0 && fin.NetIncomeCurrent > 0 &&
		gov.CEOTotalComp > fin.NetIncomeCurrent*0.01 {
		flags = append(flags, fmt.Sprintf(
			"CEO total compensation ($%.1fM) exceeds 1%% of net income", gov.CEOTotalComp/1e6))
	}
	if fin != nil && gov.CEOTotalComp > 0 && gov.CEOTotalCompPrior1 > 0 &&
		fin.NetIncomeCurrent > 0 && fin.NetIncomePrior1 > 0 &&
		gov.CEOTotalComp > gov.CEOTotalCompPrior1 && fin.NetIncomeCurrent < fin.NetIncomePrior1 {
		flags = append(flags, "CEO pay rose while net income fell (pay-for-performance disconnect)")
	}
	if gov.SayOnPayApprovalPct > 0 && gov.SayOnPayApprovalPct < 70 {
		flags = append(flags, fmt.Sprintf(
			"Say-on-pay approval at %.1f%% signals shareholder discontent", gov.SayOnPayApprovalPct))
	}
	if gov.BoardSize > 0 && float64(gov.IndependentDirectors)/float64(gov.BoardSize) < 0.5 {
		flags = append(flags, fmt.Sprintf(
			"Board lacks majority independence (%d of %d directors)", gov.IndependentDirectors, gov.BoardSize))
	}
	if gov.AverageDirectorTenure > 12 {
		flags = append(flags, fmt.Sprintf(
			"Average director tenure of %.1f years suggests entrenchment", gov.AverageDirectorTenure))
	}
	return flags
}

// Analyze produces Markdown commentary for the governance record.
func (a *GovernanceAnalyst) Analyze(ctx context.Context, identity models.CompanyIdentity, fin *models.FinancialRecord, gov *models.GovernanceRecord) string {
	flags := RedFlags(fin, gov)
	if a.mgr == nil {
		return fallbackGovernanceNarrative(identity, gov, flags)
	}

	pt, err := prompt.Get().GetPrompt(prompt.PromptIDs.AnalysisGovernance)
	if err != nil {
		return fallbackGovernanceNarrative(identity, gov, flags)
	}

	userPrompt, err := prompt.RenderUserPrompt(pt, prompt.NewContext().
		Set("CompanyName", identity.Name).
		Set("Ticker", identity.Ticker).
		Set("Governance", mustJSON(gov)).
		Set("RedFlags", strings.Join(flags, "\n")))
	if err != nil {
		return fallbackGovernanceNarrative(identity, gov, flags)
	}

	out, err := a.mgr.ExecutePrompt(ctx, "governance_analyst", userPrompt, pt.SystemPrompt, nil)
	if err != nil {
		fmt.Printf("[AGENTS] [WARNING] ticker=%s governance narrative failed: %v, using fallback\n", identity.Ticker, err)
		return fallbackGovernanceNarrative(identity, gov, flags)
	}
	return utils.CleanMarkdown(out)
}

func fallbackGovernanceNarrative(identity models.CompanyIdentity, gov *models.GovernanceRecord, flags []string) string {
	var sb strings.Builder
	sb.WriteString("## Governance Assessment\n\n")
	sb.WriteString(fmt.Sprintf(
		"%s has a board of %d directors (%d independent), average tenure %.1f years. "+
			"CEO total compensation: $%.1fM. Say-on-pay approval: %.1f%%.\n",
		identity.Name, gov.BoardSize, gov.IndependentDirectors, gov.AverageDirectorTenure,
		gov.CEOTotalComp/1e6, gov.SayOnPayApprovalPct))

	if len(flags) > 0 {
		sb.WriteString("\n### Red Flags\n\n")
		for _, f := range flags {
			sb.WriteString("- " + f + "\n")
		}
	} else {
		sb.WriteString("\nNo governance red flags detected from the extracted data.\n")
	}
	return sb.String()
}
