// Package pipeline fans extraction out across filing categories and
// merges the results into a single FilingExtract. The coordinator
// never fails: missing categories are force-filled with defaults and
// an empty acquisition run falls back to the demo dataset.
package pipeline

import (
	"context"
	"fmt"

	"shareholder_catalyst/pkg/core/extract"
	"shareholder_catalyst/pkg/models"
)

// Form types the pipeline processes. Keys into the filings map.
const (
	Form10K   = "10-K"
	FormProxy = "DEF 14A"
	Form8K    = "8-K"
)

// FormTypes lists the categories in acquisition order.
var FormTypes = []string{Form10K, FormProxy, Form8K}

// Extracting is the extraction seam the coordinator drives. Satisfied
// by *extract.Extractor.
type Extracting interface {
	HasCredential() bool
	ExtractFinancials(ctx context.Context, ticker string, filings []models.DownloadedFiling) *models.FinancialRecord
	ExtractGovernance(ctx context.Context, ticker string, filings []models.DownloadedFiling) *models.GovernanceRecord
	ExtractEvents(ctx context.Context, ticker string, filings []models.DownloadedFiling) *models.EventRecord
}

// Coordinator merges per-category extraction into one FilingExtract.
type Coordinator struct {
	extractor Extracting
}

// NewCoordinator wraps an extractor.
func NewCoordinator(e Extracting) *Coordinator {
	return &Coordinator{extractor: e}
}

// categoryResult is the value/err pair each worker sends back. A nil
// record with no error means the category was not scheduled.
type categoryResult struct {
	category   string
	financial  *models.FinancialRecord
	governance *models.GovernanceRecord
	events     *models.EventRecord
	err        error
}

// ProcessAll extracts every category with documents concurrently and
// merges the results. One goroutine per non-empty category; the join
// waits for all of them, a failed category never cancels the others.
// With no credential or no documents at all, the demo dataset is
// returned instead.
func (c *Coordinator) ProcessAll(ctx context.Context, ticker string, filings map[string][]models.DownloadedFiling) *models.FilingExtract {
	total := 0
	for _, docs := range filings {
		total += len(docs)
	}

	if !c.extractor.HasCredential() {
		fmt.Printf("[PIPELINE] ticker=%s no extraction credential, using demo dataset\n", ticker)
		return extract.DemoExtract(ticker)
	}
	if total == 0 {
		fmt.Printf("[PIPELINE] ticker=%s no documents acquired, using demo dataset\n", ticker)
		return extract.DemoExtract(ticker)
	}

	results := make(chan categoryResult)
	scheduled := 0

	if docs := filings[Form10K]; len(docs) > 0 {
		scheduled++
		go func() {
			res := categoryResult{category: Form10K}
			res.financial = c.extractor.ExtractFinancials(ctx, ticker, docs)
			if res.financial == nil {
				res.err = fmt.Errorf("financial extraction returned nil")
			}
			results <- res
		}()
	}
	if docs := filings[FormProxy]; len(docs) > 0 {
		scheduled++
		go func() {
			res := categoryResult{category: FormProxy}
			res.governance = c.extractor.ExtractGovernance(ctx, ticker, docs)
			if res.governance == nil {
				res.err = fmt.Errorf("governance extraction returned nil")
			}
			results <- res
		}()
	}
	if docs := filings[Form8K]; len(docs) > 0 {
		scheduled++
		go func() {
			res := categoryResult{category: Form8K}
			res.events = c.extractor.ExtractEvents(ctx, ticker, docs)
			if res.events == nil {
				res.err = fmt.Errorf("event extraction returned nil")
			}
			results <- res
		}()
	}

	merged := &models.FilingExtract{}
	for i := 0; i < scheduled; i++ {
		res := <-results
		if res.err != nil {
			fmt.Printf("[PIPELINE] [WARNING] ticker=%s category=%s: %v, defaulting\n", ticker, res.category, res.err)
			continue
		}
		switch res.category {
		case Form10K:
			merged.TenK = res.financial
		case FormProxy:
			merged.Proxy = res.governance
		case Form8K:
			merged.EightK = res.events
		}
	}

	// Force-fill: callers always see all three sub-records.
	if merged.TenK == nil {
		merged.TenK = models.NewFinancialRecord()
	}
	if merged.Proxy == nil {
		merged.Proxy = models.NewGovernanceRecord()
	}
	if merged.EightK == nil {
		merged.EightK = models.NewEventRecord()
	}

	fmt.Printf("[PIPELINE] ticker=%s merged %d categories (%d documents)\n", ticker, scheduled, total)
	return merged
}
