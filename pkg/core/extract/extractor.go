package extract

import (
	"context"
	"fmt"
	"os"

	"shareholder_catalyst/pkg/core/config"
	"shareholder_catalyst/pkg/core/convert"
	"shareholder_catalyst/pkg/core/llm"
	"shareholder_catalyst/pkg/core/prompt"
	"shareholder_catalyst/pkg/core/utils"
	"shareholder_catalyst/pkg/models"
)

// maxDocumentChars caps how much normalized Markdown goes into one
// extraction prompt. Filings run far past any useful context window;
// the figures we want sit in the statements near the front matter.
const maxDocumentChars = 15000

// Extractor runs schema extraction over normalized filings. Every
// method returns a fully built record; failures degrade to zero-value
// defaults and are logged, never returned.
type Extractor struct {
	provider      llm.Provider
	hasCredential bool

	// normalize is swappable in tests.
	normalize func(path string) (string, error)
}

// New builds an Extractor from resolved configuration.
func New(cfg *config.Config) *Extractor {
	prompt.EnsureBuiltins()
	normalizer := convert.NewNormalizer()
	return &Extractor{
		provider:      &llm.GeminiProvider{APIKey: cfg.GeminiAPIKey},
		hasCredential: cfg.HasExtractionCredential(),
		normalize:     normalizer.Normalize,
	}
}

// HasCredential reports whether LLM extraction can run. Without a
// credential the pipeline substitutes the demo dataset.
func (e *Extractor) HasCredential() bool {
	return e.hasCredential
}

// financialResponse mirrors the extracted subset of FinancialFields.
type financialResponse struct {
	RevenueCurrent     float64 `json:"revenue_current"`
	RevenuePrior1      float64 `json:"revenue_prior_1"`
	OperatingIncome    float64 `json:"operating_income"`
	NetIncomeCurrent   float64 `json:"net_income_current"`
	TotalAssets        float64 `json:"total_assets"`
	TotalLiabilities   float64 `json:"total_liabilities"`
	ShareholdersEquity float64 `json:"shareholders_equity"`
	CashEquivalents    float64 `json:"cash_equivalents"`
	TotalDebt          float64 `json:"total_debt"`
	SharesOutstanding  float64 `json:"shares_outstanding"`
}

// governanceResponse mirrors the extracted subset of GovernanceFields.
type governanceResponse struct {
	CEOTotalComp         float64              `json:"ceo_total_comp"`
	CEOBaseSalary        float64              `json:"ceo_base_salary"`
	SayOnPayApprovalPct  float64              `json:"say_on_pay_approval_pct"`
	BoardSize            int                  `json:"board_size"`
	IndependentDirectors int                  `json:"independent_directors"`
	BoardMembers         []models.BoardMember `json:"board_members"`
}

// ExtractFinancials pulls the financial schema from the most recent
// 10-K in the set. Any failure returns the all-zero default record.
func (e *Extractor) ExtractFinancials(ctx context.Context, ticker string, filings []models.DownloadedFiling) *models.FinancialRecord {
	record := models.NewFinancialRecord()

	doc, err := e.prepareDocument(filings)
	if err != nil {
		fmt.Printf("[EXTRACT] [WARNING] ticker=%s category=10k prepare: %v, using defaults\n", ticker, err)
		return record
	}

	raw, err := e.submit(ctx, "extract.financial", FinancialFields, ticker, doc)
	if err != nil {
		fmt.Printf("[EXTRACT] [WARNING] ticker=%s category=10k model: %v, using defaults\n", ticker, err)
		return record
	}

	var resp financialResponse
	if _, err := utils.SmartParse(raw, &resp); err != nil {
		fmt.Printf("[EXTRACT] [WARNING] ticker=%s category=10k parse: %v, using defaults\n", ticker, err)
		return record
	}

	record.RevenueCurrent = resp.RevenueCurrent
	record.RevenuePrior1 = resp.RevenuePrior1
	record.OperatingIncome = resp.OperatingIncome
	record.NetIncomeCurrent = resp.NetIncomeCurrent
	record.TotalAssets = resp.TotalAssets
	record.TotalLiabilities = resp.TotalLiabilities
	record.ShareholdersEquity = resp.ShareholdersEquity
	record.CashEquivalents = resp.CashEquivalents
	record.TotalDebt = resp.TotalDebt
	record.SharesOutstanding = resp.SharesOutstanding
	// Deep prior periods are not extracted; they stay zero.
	record.RevenuePrior2 = 0
	record.NetIncomePrior1 = 0

	fmt.Printf("[EXTRACT] ticker=%s category=10k revenue_current=%.0f\n", ticker, record.RevenueCurrent)
	return record
}

// ExtractGovernance pulls compensation and board data from the most
// recent proxy statement. Average tenure is always derived from the
// board list, never trusted from the model.
func (e *Extractor) ExtractGovernance(ctx context.Context, ticker string, filings []models.DownloadedFiling) *models.GovernanceRecord {
	record := models.NewGovernanceRecord()

	doc, err := e.prepareDocument(filings)
	if err != nil {
		fmt.Printf("[EXTRACT] [WARNING] ticker=%s category=proxy prepare: %v, using defaults\n", ticker, err)
		return record
	}

	raw, err := e.submit(ctx, "extract.governance", GovernanceFields, ticker, doc)
	if err != nil {
		fmt.Printf("[EXTRACT] [WARNING] ticker=%s category=proxy model: %v, using defaults\n", ticker, err)
		return record
	}

	var resp governanceResponse
	if _, err := utils.SmartParse(raw, &resp); err != nil {
		fmt.Printf("[EXTRACT] [WARNING] ticker=%s category=proxy parse: %v, using defaults\n", ticker, err)
		return record
	}

	record.CEOTotalComp = resp.CEOTotalComp
	record.CEOBaseSalary = resp.CEOBaseSalary
	record.SayOnPayApprovalPct = resp.SayOnPayApprovalPct
	record.BoardSize = resp.BoardSize
	record.IndependentDirectors = resp.IndependentDirectors
	if resp.BoardMembers != nil {
		record.BoardMembers = resp.BoardMembers
	}
	// Prior-year and component compensation are not extracted.
	record.CEOBonus = 0
	record.CEOStockAwards = 0
	record.CEOTotalCompPrior1 = 0
	record.DeriveAverageTenure()

	fmt.Printf("[EXTRACT] ticker=%s category=proxy board_size=%d avg_tenure=%.1f\n",
		ticker, record.BoardSize, record.AverageDirectorTenure)
	return record
}

// ExtractEvents builds the 8-K event summary from filing metadata
// alone. 8-K bodies vary too much to extract structurally; the dates
// are the signal.
func (e *Extractor) ExtractEvents(ctx context.Context, ticker string, filings []models.DownloadedFiling) *models.EventRecord {
	record := models.NewEventRecord()
	for i, f := range filings {
		if i >= 3 {
			break
		}
		record.RecentEvents = append(record.RecentEvents, fmt.Sprintf("Material event on %s", f.FilingDate))
	}
	fmt.Printf("[EXTRACT] ticker=%s category=8k events=%d\n", ticker, len(record.RecentEvents))
	return record
}

// prepareDocument normalizes the newest filing in the category and
// returns its truncated Markdown.
func (e *Extractor) prepareDocument(filings []models.DownloadedFiling) (string, error) {
	if len(filings) == 0 {
		return "", fmt.Errorf("no documents in category")
	}

	mdPath, err := e.normalize(filings[0].LocalPath)
	if err != nil {
		return "", fmt.Errorf("normalize failed: %w", err)
	}

	data, err := os.ReadFile(mdPath)
	if err != nil {
		return "", fmt.Errorf("failed to read markdown: %w", err)
	}

	doc := string(data)
	if len(doc) > maxDocumentChars {
		doc = doc[:maxDocumentChars]
	}
	return doc, nil
}

// submit renders the extraction prompt and calls the provider in
// JSON mode.
func (e *Extractor) submit(ctx context.Context, promptID string, fields []Field, ticker, document string) (string, error) {
	pt, err := prompt.Get().GetPrompt(promptID)
	if err != nil {
		return "", fmt.Errorf("prompt %s: %w", promptID, err)
	}

	userPrompt, err := prompt.RenderUserPrompt(pt, prompt.NewContext().
		Set("Ticker", ticker).
		Set("Schema", DescribeFields(fields)).
		Set("Document", document))
	if err != nil {
		return "", fmt.Errorf("render %s: %w", promptID, err)
	}

	options := map[string]interface{}{
		"response_format": map[string]interface{}{"type": "json_object"},
	}
	return e.provider.GenerateResponse(ctx, userPrompt, pt.SystemPrompt, options)
}
