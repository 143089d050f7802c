package agents

import (
	"context"
	"fmt"
	"strings"

	"shareholder_catalyst/pkg/core/prompt"
	"shareholder_catalyst/pkg/core/utils"
	"shareholder_catalyst/pkg/models"
)

// ThesisGenerator synthesizes the financial and governance work into
// the catalyst thesis. It always runs on Gemini directly through
// BaseAgent; thesis quality varies too much across providers to leave
// it to the configurable backend.
type ThesisGenerator struct {
	base *BaseAgent
}

// NewThesisGenerator dials Gemini. With an empty key the generator is
// still usable and produces rule-based theses.
func NewThesisGenerator(ctx context.Context, apiKey string) *ThesisGenerator {
	prompt.EnsureBuiltins()
	pt, err := prompt.Get().GetPrompt(prompt.PromptIDs.ThesisGenerate)
	sysPrompt := ""
	if err == nil {
		sysPrompt = pt.SystemPrompt
	}

	base, err := NewBaseAgent(ctx, apiKey, sysPrompt)
	if err != nil {
		fmt.Printf("[AGENTS] thesis generator running without model: %v\n", err)
		return &ThesisGenerator{}
	}
	return &ThesisGenerator{base: base}
}

// Generate drafts the thesis from the upstream narratives.
func (g *ThesisGenerator) Generate(ctx context.Context, identity models.CompanyIdentity, financialAnalysis, governanceAnalysis string, upsidePct float64, events *models.EventRecord) string {
	if g.base == nil {
		return fallbackThesis(identity, upsidePct, events)
	}

	pt, err := prompt.Get().GetPrompt(prompt.PromptIDs.ThesisGenerate)
	if err != nil {
		return fallbackThesis(identity, upsidePct, events)
	}

	userPrompt, err := prompt.RenderUserPrompt(pt, prompt.NewContext().
		Set("CompanyName", identity.Name).
		Set("Ticker", identity.Ticker).
		Set("FinancialAnalysis", financialAnalysis).
		Set("GovernanceAnalysis", governanceAnalysis).
		Set("Upside", fmt.Sprintf("%.1f%%", upsidePct)).
		Set("Events", strings.Join(events.RecentEvents, "\n")))
	if err != nil {
		return fallbackThesis(identity, upsidePct, events)
	}

	out, err := g.base.generate(ctx, userPrompt)
	if err != nil {
		fmt.Printf("[AGENTS] [WARNING] ticker=%s thesis generation failed: %v, using fallback\n", identity.Ticker, err)
		return fallbackThesis(identity, upsidePct, events)
	}

	cleaned := utils.CleanMarkdown(out)
	if !utils.ValidateMarkdown(cleaned) {
		return fallbackThesis(identity, upsidePct, events)
	}
	return cleaned
}

func fallbackThesis(identity models.CompanyIdentity, upsidePct float64, events *models.EventRecord) string {
	var sb strings.Builder
	sb.WriteString("## Thesis\n\n")
	switch {
	case upsidePct > 10:
		sb.WriteString(fmt.Sprintf(
			"%s trades meaningfully below its demonstrated earning power; closing the gap to "+
				"peer-median operating performance implies roughly %.0f%% upside.\n", identity.Name, upsidePct))
	case upsidePct < 0:
		sb.WriteString(fmt.Sprintf(
			"%s lags its peer group operationally; the activist case rests on margin recovery "+
				"and governance reform rather than re-rating.\n", identity.Name))
	default:
		sb.WriteString(fmt.Sprintf(
			"%s performs broadly in line with peers; catalysts are incremental.\n", identity.Name))
	}

	sb.WriteString("\n## Catalysts\n\n")
	if len(events.RecentEvents) > 0 {
		for _, e := range events.RecentEvents {
			sb.WriteString("- " + e + "\n")
		}
	} else {
		sb.WriteString("- No recent material events on file\n")
	}

	sb.WriteString("\n## Risks\n\n- Extraction coverage is partial; figures should be verified against the filings before acting.\n")
	return sb.String()
}
