// Package peers compares a company's ratios against a fixed large-cap
// technology peer set and estimates upside to the peer median.
package peers

import (
	"sort"

	"shareholder_catalyst/pkg/core/calc"
)

// PeerMetrics is the stored ratio triple for one peer.
type PeerMetrics struct {
	ROE             float64 `json:"roe"`
	ROIC            float64 `json:"roic"`
	OperatingMargin float64 `json:"operating_margin"`
}

// peerTable is the built-in comparison universe.
var peerTable = map[string]PeerMetrics{
	"AAPL":  {ROE: 147, ROIC: 45, OperatingMargin: 30},
	"MSFT":  {ROE: 38, ROIC: 28, OperatingMargin: 42},
	"GOOGL": {ROE: 26, ROIC: 22, OperatingMargin: 27},
	"AMZN":  {ROE: 12, ROIC: 8, OperatingMargin: 8},
	"META":  {ROE: 31, ROIC: 25, OperatingMargin: 35},
	"TSLA":  {ROE: 19, ROIC: 15, OperatingMargin: 19},
	"NFLX":  {ROE: 22, ROIC: 18, OperatingMargin: 21},
}

// Comparison is the result of ranking one company against the peer
// universe.
type Comparison struct {
	Medians     PeerMetrics        `json:"medians"`
	Percentiles map[string]float64 `json:"percentiles"` // metric -> percentile rank
	Gaps        map[string]float64 `json:"gaps"`        // metric -> value minus median
	UpsidePct   float64            `json:"upside_pct"`  // estimated upside to peer median
}

// Comparator ranks metrics against the peer table. The subject ticker
// is excluded from its own universe when present.
type Comparator struct{}

// NewComparator returns a Comparator over the built-in universe.
func NewComparator() *Comparator {
	return &Comparator{}
}

// Compare ranks the company's metrics and estimates upside. Works for
// any ticker; unknown tickers are simply ranked against the full
// table.
func (c *Comparator) Compare(ticker string, m calc.Metrics) Comparison {
	universe := make(map[string]PeerMetrics, len(peerTable))
	for k, v := range peerTable {
		if k == ticker {
			continue
		}
		universe[k] = v
	}

	roes := collect(universe, func(p PeerMetrics) float64 { return p.ROE })
	roics := collect(universe, func(p PeerMetrics) float64 { return p.ROIC })
	margins := collect(universe, func(p PeerMetrics) float64 { return p.OperatingMargin })

	medians := PeerMetrics{
		ROE:             median(roes),
		ROIC:            median(roics),
		OperatingMargin: median(margins),
	}

	comparison := Comparison{
		Medians: medians,
		Percentiles: map[string]float64{
			"roe":              percentile(roes, m.ROE),
			"roic":             percentile(roics, m.ROIC),
			"operating_margin": percentile(margins, m.OperatingMargin),
		},
		Gaps: map[string]float64{
			"roe":              m.ROE - medians.ROE,
			"roic":             m.ROIC - medians.ROIC,
			"operating_margin": m.OperatingMargin - medians.OperatingMargin,
		},
	}
	comparison.UpsidePct = upside(m, medians)
	return comparison
}

func collect(universe map[string]PeerMetrics, pick func(PeerMetrics) float64) []float64 {
	out := make([]float64, 0, len(universe))
	for _, p := range universe {
		out = append(out, pick(p))
	}
	sort.Float64s(out)
	return out
}

// median of a sorted slice; 0 when empty.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// percentile returns the share of peers strictly below the value, as
// a percentage. An empty universe ranks at 50.
func percentile(sorted []float64, value float64) float64 {
	if len(sorted) == 0 {
		return 50.0
	}
	below := 0
	for _, v := range sorted {
		if v < value {
			below++
		}
	}
	return float64(below) / float64(len(sorted)) * 100
}

// upside estimates the re-rating potential if the company closed the
// gap to the peer medians. Above-median performers get a small
// residual upside rather than zero.
func upside(m calc.Metrics, medians PeerMetrics) float64 {
	var ratios []float64
	for _, pair := range [][2]float64{
		{m.ROE, medians.ROE},
		{m.ROIC, medians.ROIC},
		{m.OperatingMargin, medians.OperatingMargin},
	} {
		if pair[1] != 0 {
			ratios = append(ratios, pair[0]/pair[1])
		}
	}
	if len(ratios) == 0 {
		return 0
	}

	var score float64
	for _, r := range ratios {
		score += r
	}
	score /= float64(len(ratios))

	switch {
	case score > 1.1:
		return (score - 1) * 50
	case score < 0.9:
		return (score - 1) * 30
	default:
		return 5
	}
}
