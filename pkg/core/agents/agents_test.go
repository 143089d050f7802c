package agents

import (
	"context"
	"strings"
	"testing"

	"shareholder_catalyst/pkg/core/calc"
	"shareholder_catalyst/pkg/core/peers"
	"shareholder_catalyst/pkg/models"
)

func TestRedFlags(t *testing.T) {
	tests := []struct {
		name      string
		fin       *models.FinancialRecord
		gov       *models.GovernanceRecord
		wantCount int
		wantMatch string
	}{
		{
			name: "excessive compensation",
			fin:  &models.FinancialRecord{NetIncomeCurrent: 1000000000},
			gov: &models.GovernanceRecord{
				CEOTotalComp: 20000000, // 2% of net income
				BoardSize:    9, IndependentDirectors: 8,
			},
			wantCount: 1,
			wantMatch: "exceeds 1%",
		},
		{
			name: "pay rose while income fell",
			fin: &models.FinancialRecord{
				NetIncomeCurrent: 900, NetIncomePrior1: 1000,
			},
			gov: &models.GovernanceRecord{
				CEOTotalComp: 200, CEOTotalCompPrior1: 100,
				BoardSize: 9, IndependentDirectors: 8,
			},
			wantCount: 1,
			wantMatch: "pay-for-performance",
		},
		{
			name: "weak say-on-pay and dependent board",
			gov: &models.GovernanceRecord{
				SayOnPayApprovalPct: 55,
				BoardSize:           10, IndependentDirectors: 4,
			},
			wantCount: 2,
		},
		{
			name: "entrenched board",
			gov: &models.GovernanceRecord{
				BoardSize: 8, IndependentDirectors: 7,
				AverageDirectorTenure: 15,
			},
			wantCount: 1,
			wantMatch: "entrenchment",
		},
		{
			name:      "all-zero record fires nothing",
			fin:       models.NewFinancialRecord(),
			gov:       models.NewGovernanceRecord(),
			wantCount: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RedFlags(tc.fin, tc.gov)
			if len(got) != tc.wantCount {
				t.Fatalf("got %d flags %v, want %d", len(got), got, tc.wantCount)
			}
			if tc.wantMatch != "" && !strings.Contains(strings.Join(got, "\n"), tc.wantMatch) {
				t.Errorf("flags %v missing %q", got, tc.wantMatch)
			}
		})
	}
}

func TestFallbackNarratives(t *testing.T) {
	identity := models.CompanyIdentity{Ticker: "AAPL", CIK: "0000320193", Name: "Apple Inc."}
	fin := &models.FinancialRecord{RevenueCurrent: 383285000000, RevenuePrior1: 394328000000}
	metrics := calc.Metrics{OperatingMargin: 29.8, ROE: 156}
	comparison := peers.Comparison{UpsidePct: 12}

	analyst := NewFinancialAnalyst(nil)
	out := analyst.Analyze(context.Background(), identity, fin, metrics, comparison)
	if !strings.Contains(out, "Apple Inc.") || !strings.Contains(out, "declining") {
		t.Errorf("fallback narrative incomplete:\n%s", out)
	}

	gov := &models.GovernanceRecord{BoardSize: 8, IndependentDirectors: 7, SayOnPayApprovalPct: 95.4}
	govAnalyst := NewGovernanceAnalyst(nil)
	govOut := govAnalyst.Analyze(context.Background(), identity, fin, gov)
	if !strings.Contains(govOut, "Governance Assessment") {
		t.Errorf("governance fallback incomplete:\n%s", govOut)
	}
}

func TestFallbackThesisBands(t *testing.T) {
	identity := models.CompanyIdentity{Ticker: "AAPL", Name: "Apple Inc."}
	events := &models.EventRecord{RecentEvents: []string{"Material event on 2024-01-01"}}

	tests := []struct {
		upside float64
		want   string
	}{
		{15, "upside"},
		{-10, "lags its peer group"},
		{5, "in line with peers"},
	}
	for _, tc := range tests {
		out := fallbackThesis(identity, tc.upside, events)
		if !strings.Contains(out, tc.want) {
			t.Errorf("upside %.0f: thesis missing %q:\n%s", tc.upside, tc.want, out)
		}
		if !strings.Contains(out, "Material event on 2024-01-01") {
			t.Errorf("thesis missing catalyst event")
		}
	}
}
