package prompt

import (
	"strings"
	"testing"
)

func TestEnsureBuiltinsRegistersAll(t *testing.T) {
	EnsureBuiltins()
	r := Get()

	ids := []string{
		PromptIDs.ExtractFinancial,
		PromptIDs.ExtractGovernance,
		PromptIDs.AnalysisFinancial,
		PromptIDs.AnalysisGovernance,
		PromptIDs.ThesisGenerate,
	}
	for _, id := range ids {
		if _, err := r.GetPrompt(id); err != nil {
			t.Errorf("builtin %s not registered: %v", id, err)
		}
	}
}

func TestRenderUserPrompt(t *testing.T) {
	EnsureBuiltins()
	pt, err := Get().GetPrompt(PromptIDs.ExtractFinancial)
	if err != nil {
		t.Fatal(err)
	}

	out, err := RenderUserPrompt(pt, NewContext().
		Set("Ticker", "AAPL").
		Set("Schema", "- revenue_current (number): total revenue").
		Set("Document", "# Filing body"))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.Contains(out, "AAPL") {
		t.Error("ticker not substituted")
	}
	if !strings.Contains(out, "revenue_current") {
		t.Error("schema not substituted")
	}
	if !strings.Contains(out, "# Filing body") {
		t.Error("document not substituted")
	}
}

func TestRegistryOverride(t *testing.T) {
	EnsureBuiltins()
	r := Get()

	custom := &PromptTemplate{ID: PromptIDs.ThesisGenerate, SystemPrompt: "custom"}
	if err := r.Register(custom); err != nil {
		t.Fatal(err)
	}

	got, err := r.GetSystemPrompt(PromptIDs.ThesisGenerate)
	if err != nil {
		t.Fatal(err)
	}
	if got != "custom" {
		t.Errorf("override not applied, got %q", got)
	}
}
