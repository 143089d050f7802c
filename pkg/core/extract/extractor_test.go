package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"shareholder_catalyst/pkg/core/prompt"
	"shareholder_catalyst/pkg/models"
)

// --- Mocks ---

type MockProvider struct {
	GenerateFunc func(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
}

func (m *MockProvider) GenerateResponse(ctx context.Context, p string, sys string, opts map[string]interface{}) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, p, sys, opts)
	}
	return "{}", nil
}

func (m *MockProvider) AdaptInstructions(raw string) string { return raw }

func newTestExtractor(provider *MockProvider) *Extractor {
	prompt.EnsureBuiltins()
	return &Extractor{
		provider:      provider,
		hasCredential: true,
		normalize: func(path string) (string, error) {
			return path, nil
		},
	}
}

func oneFiling(t *testing.T) []models.DownloadedFiling {
	t.Helper()
	// normalize is stubbed to identity, so LocalPath must be readable.
	path := filepath.Join(t.TempDir(), "AAPL_10-K_2023-11-03.html")
	if err := os.WriteFile(path, []byte("# Filing\nRevenue was strong."), 0o644); err != nil {
		t.Fatal(err)
	}
	return []models.DownloadedFiling{{FilingDate: "2023-11-03", LocalPath: path}}
}

// --- Tests ---

func TestExtractFinancials(t *testing.T) {
	tests := []struct {
		name        string
		response    string
		responseErr error
		wantRevenue float64
		wantAssets  float64
	}{
		{
			name:        "clean JSON",
			response:    `{"revenue_current": 383285000000, "total_assets": 352755000000}`,
			wantRevenue: 383285000000,
			wantAssets:  352755000000,
		},
		{
			name:        "malformed JSON is repaired",
			response:    "```json\n{'revenue_current': 1000,}\n```",
			wantRevenue: 1000,
		},
		{
			name:        "model error degrades to zeros",
			responseErr: fmt.Errorf("quota exceeded"),
		},
		{
			name:     "unparsable output degrades to zeros",
			response: "I could not find the figures, sorry.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			provider := &MockProvider{
				GenerateFunc: func(ctx context.Context, p, sys string, opts map[string]interface{}) (string, error) {
					return tc.response, tc.responseErr
				},
			}
			e := newTestExtractor(provider)

			rec := e.ExtractFinancials(context.Background(), "AAPL", oneFiling(t))

			if rec == nil {
				t.Fatal("record must never be nil")
			}
			if rec.RevenueCurrent != tc.wantRevenue {
				t.Errorf("RevenueCurrent = %v, want %v", rec.RevenueCurrent, tc.wantRevenue)
			}
			if rec.TotalAssets != tc.wantAssets {
				t.Errorf("TotalAssets = %v, want %v", rec.TotalAssets, tc.wantAssets)
			}
			// Fields outside the extraction schema always stay zero.
			if rec.RevenuePrior2 != 0 || rec.NetIncomePrior1 != 0 {
				t.Error("non-extracted prior fields must be zero")
			}
		})
	}
}

func TestExtractFinancials_NoDocuments(t *testing.T) {
	e := newTestExtractor(&MockProvider{})
	rec := e.ExtractFinancials(context.Background(), "AAPL", nil)
	if rec == nil {
		t.Fatal("record must never be nil")
	}
	if *rec != (models.FinancialRecord{}) {
		t.Errorf("expected all-zero record, got %+v", rec)
	}
}

func TestExtractGovernance_DerivesTenure(t *testing.T) {
	tests := []struct {
		name       string
		response   string
		wantTenure float64
		wantBoard  int
	}{
		{
			name: "average over board members",
			response: `{"board_size": 3, "board_members": [
				{"name": "A", "independent": true, "tenure_years": 10},
				{"name": "B", "independent": true, "tenure_years": 4},
				{"name": "C", "independent": false, "tenure_years": 1}
			]}`,
			wantTenure: 5,
			wantBoard:  3,
		},
		{
			name:       "empty board yields zero tenure",
			response:   `{"board_size": 0, "board_members": []}`,
			wantTenure: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			provider := &MockProvider{
				GenerateFunc: func(ctx context.Context, p, sys string, opts map[string]interface{}) (string, error) {
					return tc.response, nil
				},
			}
			e := newTestExtractor(provider)

			rec := e.ExtractGovernance(context.Background(), "AAPL", oneFiling(t))

			if rec.AverageDirectorTenure != tc.wantTenure {
				t.Errorf("AverageDirectorTenure = %v, want %v", rec.AverageDirectorTenure, tc.wantTenure)
			}
			if rec.BoardSize != tc.wantBoard {
				t.Errorf("BoardSize = %v, want %v", rec.BoardSize, tc.wantBoard)
			}
			if rec.BoardMembers == nil {
				t.Error("BoardMembers must never be nil")
			}
			if rec.CEOBonus != 0 || rec.CEOStockAwards != 0 || rec.CEOTotalCompPrior1 != 0 {
				t.Error("non-extracted compensation fields must be zero")
			}
		})
	}
}

func TestExtractEvents(t *testing.T) {
	e := newTestExtractor(&MockProvider{})
	filings := []models.DownloadedFiling{
		{FilingDate: "2024-02-01"},
		{FilingDate: "2024-01-15"},
		{FilingDate: "2023-12-01"},
		{FilingDate: "2023-11-01"},
	}

	rec := e.ExtractEvents(context.Background(), "AAPL", filings)

	if len(rec.RecentEvents) != 3 {
		t.Fatalf("got %d events, want 3 (most recent only)", len(rec.RecentEvents))
	}
	if rec.RecentEvents[0] != "Material event on 2024-02-01" {
		t.Errorf("unexpected event text: %q", rec.RecentEvents[0])
	}

	empty := e.ExtractEvents(context.Background(), "AAPL", nil)
	if empty.RecentEvents == nil || len(empty.RecentEvents) != 0 {
		t.Error("empty input must yield empty non-nil slice")
	}
}

func TestDemoExtract(t *testing.T) {
	extract := DemoExtract("AAPL")

	if extract.TenK.RevenueCurrent != 383285000000 {
		t.Errorf("demo revenue_current = %v", extract.TenK.RevenueCurrent)
	}
	if extract.Proxy.BoardSize != 8 || extract.Proxy.SayOnPayApprovalPct != 95.4 {
		t.Errorf("demo governance mismatch: %+v", extract.Proxy)
	}
	if len(extract.EightK.RecentEvents) != 2 {
		t.Errorf("demo events = %v", extract.EightK.RecentEvents)
	}

	// The demo dataset is the same regardless of ticker.
	other := DemoExtract("ZZZZ")
	if other.TenK.RevenueCurrent != extract.TenK.RevenueCurrent {
		t.Error("demo dataset should not vary by ticker")
	}
}
