package prompt

// PromptIDs names every built-in prompt so call sites do not scatter
// string literals.
var PromptIDs = struct {
	ExtractFinancial   string
	ExtractGovernance  string
	AnalysisFinancial  string
	AnalysisGovernance string
	ThesisGenerate     string
}{
	ExtractFinancial:   "extract.financial",
	ExtractGovernance:  "extract.governance",
	AnalysisFinancial:  "analysis.financial",
	AnalysisGovernance: "analysis.governance",
	ThesisGenerate:     "thesis.generate",
}

// GetAnalysisPrompt returns an analysis prompt's system prompt by
// short name ("financial", "governance").
func GetAnalysisPrompt(kind string) (string, error) {
	return Get().GetSystemPrompt("analysis." + kind)
}

// GetExtractionPrompt returns an extraction prompt's system prompt by
// short name ("financial", "governance").
func GetExtractionPrompt(kind string) (string, error) {
	return Get().GetSystemPrompt("extract." + kind)
}
