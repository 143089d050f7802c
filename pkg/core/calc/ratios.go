// Package calc computes profitability and balance sheet ratios from
// extracted filing records. Pure functions, zero-guarded: any ratio
// with a zero denominator comes back 0 instead of Inf/NaN.
package calc

import (
	"math"

	"shareholder_catalyst/pkg/models"
)

// Metrics is the derived ratio set for one company.
type Metrics struct {
	ROE             float64 `json:"roe"`              // percent
	ROIC            float64 `json:"roic"`             // percent
	OperatingMargin float64 `json:"operating_margin"` // percent
	NetMargin       float64 `json:"net_margin"`       // percent
	RevenueCAGR     float64 `json:"revenue_cagr"`     // percent, 2-year
	DebtToEquity    float64 `json:"debt_to_equity"`
	CashRatio       float64 `json:"cash_ratio"` // cash / total assets
	EPS             float64 `json:"eps"`
}

// Compute derives Metrics from a financial record. A zero-value
// record yields a zero-value Metrics.
func Compute(fin *models.FinancialRecord) Metrics {
	var m Metrics
	if fin == nil {
		return m
	}

	m.ROE = pct(fin.NetIncomeCurrent, fin.ShareholdersEquity)
	m.OperatingMargin = pct(fin.OperatingIncome, fin.RevenueCurrent)
	m.NetMargin = pct(fin.NetIncomeCurrent, fin.RevenueCurrent)
	m.DebtToEquity = ratio(fin.TotalDebt, fin.ShareholdersEquity)
	m.CashRatio = ratio(fin.CashEquivalents, fin.TotalAssets)
	m.EPS = ratio(fin.NetIncomeCurrent, fin.SharesOutstanding)

	// ROIC approximated as operating income over invested capital
	// (equity + debt); tax adjustment needs data we do not extract.
	m.ROIC = pct(fin.OperatingIncome, fin.ShareholdersEquity+fin.TotalDebt)

	// 2-year CAGR needs both endpoints.
	if fin.RevenuePrior2 > 0 && fin.RevenueCurrent > 0 {
		m.RevenueCAGR = (math.Pow(fin.RevenueCurrent/fin.RevenuePrior2, 0.5) - 1) * 100
	}

	return m
}

func pct(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den * 100
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
