// Package orchestrator runs a full analysis for one company: acquire
// filings, extract records, compute ratios, rank against peers, and
// generate the narrative layer.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"shareholder_catalyst/pkg/core/agent"
	"shareholder_catalyst/pkg/core/agents"
	"shareholder_catalyst/pkg/core/calc"
	"shareholder_catalyst/pkg/core/config"
	"shareholder_catalyst/pkg/core/edgar"
	"shareholder_catalyst/pkg/core/extract"
	"shareholder_catalyst/pkg/core/market"
	"shareholder_catalyst/pkg/core/peers"
	"shareholder_catalyst/pkg/core/pipeline"
	"shareholder_catalyst/pkg/core/store"
	"shareholder_catalyst/pkg/models"
)

// AnalysisResult is the complete output of one run.
type AnalysisResult struct {
	RunID       string                `json:"run_id"`
	Ticker      string                `json:"ticker"`
	CIK         string                `json:"cik"`
	CompanyName string                `json:"company_name"`
	GeneratedAt time.Time             `json:"generated_at"`
	DemoMode    bool                  `json:"demo_mode"`
	Extract     *models.FilingExtract `json:"extract"`
	MarketData  *market.CompanyInfo   `json:"market_data"`
	Metrics     calc.Metrics          `json:"metrics"`
	Peers       peers.Comparison      `json:"peers"`
	RedFlags    []string              `json:"red_flags"`

	FinancialAnalysis  string `json:"financial_analysis"`
	GovernanceAnalysis string `json:"governance_analysis"`
	Thesis             string `json:"thesis"`
}

// Fetching is the acquisition seam, satisfied by *edgar.Fetcher.
type Fetching interface {
	FetchFilings(ticker string, formTypes []string) (models.CompanyIdentity, map[string][]models.DownloadedFiling)
}

// Processing is the extraction seam, satisfied by *pipeline.Coordinator.
type Processing interface {
	ProcessAll(ctx context.Context, ticker string, filings map[string][]models.DownloadedFiling) *models.FilingExtract
}

// Orchestrator owns the wired subsystems for repeated runs.
type Orchestrator struct {
	cfg         *config.Config
	mgr         *agent.Manager
	fetcher     Fetching
	coordinator Processing
	marketData  market.Provider
	comparator  *peers.Comparator
	financial   *agents.FinancialAnalyst
	governance  *agents.GovernanceAnalyst
	thesis      *agents.ThesisGenerator
	repo        *store.AnalysisRepo
	persist     bool
}

// New wires an Orchestrator from resolved configuration.
func New(ctx context.Context, cfg *config.Config) *Orchestrator {
	client := edgar.NewClient(cfg)
	mgr := agent.NewManager(cfg)

	persist := false
	if cfg.DatabaseURL != "" {
		if err := store.InitDB(ctx, cfg.DatabaseURL); err != nil {
			fmt.Printf("[ORCHESTRATOR] [WARNING] database unavailable, persistence disabled: %v\n", err)
		} else {
			persist = true
		}
	}

	return &Orchestrator{
		cfg:         cfg,
		mgr:         mgr,
		fetcher:     edgar.NewFetcher(client, cfg.LookbackYears),
		coordinator: pipeline.NewCoordinator(extract.New(cfg)),
		marketData:  &market.DemoProvider{},
		comparator:  peers.NewComparator(),
		financial:   agents.NewFinancialAnalyst(mgr),
		governance:  agents.NewGovernanceAnalyst(mgr),
		thesis:      agents.NewThesisGenerator(ctx, cfg.GeminiAPIKey),
		repo:        store.NewAnalysisRepo(),
		persist:     persist,
	}
}

// AgentManager exposes the LLM backend manager so the API layer can
// report and switch the active provider.
func (o *Orchestrator) AgentManager() *agent.Manager {
	return o.mgr
}

// AnalyzeCompany runs the full flow for a ticker. It never fails;
// degraded stages show up as demo data, zero records, or fallback
// narratives in the result.
func (o *Orchestrator) AnalyzeCompany(ctx context.Context, ticker string) *AnalysisResult {
	runID := uuid.New().String()
	fmt.Printf("[ORCHESTRATOR] run=%s ticker=%s starting analysis\n", runID, ticker)

	identity, filings := o.fetcher.FetchFilings(ticker, pipeline.FormTypes)
	extracted := o.coordinator.ProcessAll(ctx, identity.Ticker, filings)

	total := 0
	for _, docs := range filings {
		total += len(docs)
	}
	demoMode := total == 0 || !o.cfg.HasExtractionCredential()

	info, _ := o.marketData.Lookup(identity.Ticker)
	metrics := calc.Compute(extracted.TenK)
	comparison := o.comparator.Compare(identity.Ticker, metrics)
	redFlags := agents.RedFlags(extracted.TenK, extracted.Proxy)

	financialAnalysis := o.financial.Analyze(ctx, identity, extracted.TenK, metrics, comparison)
	governanceAnalysis := o.governance.Analyze(ctx, identity, extracted.TenK, extracted.Proxy)
	thesis := o.thesis.Generate(ctx, identity, financialAnalysis, governanceAnalysis, comparison.UpsidePct, extracted.EightK)

	result := &AnalysisResult{
		RunID:              runID,
		Ticker:             identity.Ticker,
		CIK:                identity.CIK,
		CompanyName:        identity.Name,
		GeneratedAt:        time.Now().UTC(),
		DemoMode:           demoMode,
		Extract:            extracted,
		MarketData:         info,
		Metrics:            metrics,
		Peers:              comparison,
		RedFlags:           redFlags,
		FinancialAnalysis:  financialAnalysis,
		GovernanceAnalysis: governanceAnalysis,
		Thesis:             thesis,
	}

	if o.persist {
		if err := o.repo.Save(ctx, result.Ticker, result.CIK, result); err != nil {
			fmt.Printf("[ORCHESTRATOR] [WARNING] run=%s save failed: %v\n", runID, err)
		}
	}

	fmt.Printf("[ORCHESTRATOR] run=%s ticker=%s analysis complete (demo=%v)\n", runID, identity.Ticker, demoMode)
	return result
}
