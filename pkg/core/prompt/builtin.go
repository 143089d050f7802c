package prompt

import "sync"

var builtinsOnce sync.Once

// EnsureBuiltins registers the built-in prompt set exactly once.
// JSON files loaded via LoadFromDirectory can override any of these
// by reusing the same ID.
func EnsureBuiltins() {
	builtinsOnce.Do(func() {
		r := Get()
		for _, pt := range builtinPrompts {
			r.Register(pt)
		}
	})
}

var builtinPrompts = []*PromptTemplate{
	{
		ID:       "extract.financial",
		Name:     "Financial Statement Extraction",
		Category: "extract",
		SystemPrompt: "You are a financial data extraction engine. You read SEC 10-K filings " +
			"converted to Markdown and return ONLY a JSON object with the requested fields. " +
			"Use plain numbers without currency symbols, commas, or units. If a field cannot " +
			"be found, use 0. Never invent figures.",
		UserPromptTmpl: "Extract the following fields for {{.Ticker}} from the filing below.\n\n" +
			"Fields:\n{{.Schema}}\n\nFiling:\n{{.Document}}\n\nRespond with a single JSON object.",
		Version: "1.0",
	},
	{
		ID:       "extract.governance",
		Name:     "Proxy Statement Extraction",
		Category: "extract",
		SystemPrompt: "You are a corporate governance data extraction engine. You read SEC DEF 14A " +
			"proxy statements converted to Markdown and return ONLY a JSON object with the requested " +
			"fields. Use plain numbers. For board_members return an array of objects with keys " +
			"name, independent, tenure_years. If a field cannot be found, use 0, false, or an empty array.",
		UserPromptTmpl: "Extract the following fields for {{.Ticker}} from the proxy statement below.\n\n" +
			"Fields:\n{{.Schema}}\n\nProxy statement:\n{{.Document}}\n\nRespond with a single JSON object.",
		Version: "1.0",
	},
	{
		ID:       "analysis.financial",
		Name:     "Financial Performance Analysis",
		Category: "analysis",
		SystemPrompt: "You are a buy-side equity analyst focused on shareholder value creation. " +
			"Write concise, specific analysis grounded in the figures you are given. " +
			"Flag deteriorating trends plainly. Output Markdown.",
		UserPromptTmpl: "Analyze the financial performance of {{.CompanyName}} ({{.Ticker}}).\n\n" +
			"Extracted figures:\n{{.Financials}}\n\nComputed ratios:\n{{.Metrics}}\n\n" +
			"Peer comparison:\n{{.Peers}}\n\n" +
			"Cover revenue trajectory, profitability, balance sheet strength, and where the company " +
			"lags its peer group.",
		Version: "1.0",
	},
	{
		ID:       "analysis.governance",
		Name:     "Governance Red Flag Analysis",
		Category: "analysis",
		SystemPrompt: "You are a governance analyst for an activist investor. " +
			"Assess pay-for-performance alignment, board independence, and entrenchment risk. " +
			"Be direct about red flags. Output Markdown.",
		UserPromptTmpl: "Assess the governance profile of {{.CompanyName}} ({{.Ticker}}).\n\n" +
			"Extracted governance data:\n{{.Governance}}\n\nDetected red flags:\n{{.RedFlags}}\n\n" +
			"Explain which issues an engaged shareholder should prioritize and why.",
		Version: "1.0",
	},
	{
		ID:       "thesis.generate",
		Name:     "Catalyst Thesis Generation",
		Category: "thesis",
		SystemPrompt: "You are the lead analyst at an activist fund drafting an internal investment " +
			"thesis. Synthesize the financial and governance work into a clear catalyst-driven thesis " +
			"with concrete asks. Output Markdown with sections: Thesis, Catalysts, Risks.",
		UserPromptTmpl: "Draft the catalyst thesis for {{.CompanyName}} ({{.Ticker}}).\n\n" +
			"Financial analysis:\n{{.FinancialAnalysis}}\n\nGovernance analysis:\n{{.GovernanceAnalysis}}\n\n" +
			"Peer upside estimate: {{.Upside}}\n\nRecent events:\n{{.Events}}",
		Version: "1.0",
	},
}
