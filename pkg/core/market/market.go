// Package market supplies current market data for a ticker. The demo
// provider serves a small built-in table so the pipeline runs without
// a market data subscription.
package market

import "fmt"

// CompanyInfo is a snapshot of market data for one company.
type CompanyInfo struct {
	Ticker        string  `json:"ticker"`
	CompanyName   string  `json:"company_name"`
	MarketCap     float64 `json:"market_cap"`
	CurrentPrice  float64 `json:"current_price"`
	PERatio       float64 `json:"pe_ratio"`
	DividendYield float64 `json:"dividend_yield"`
}

// Provider looks up market data by ticker.
type Provider interface {
	Lookup(ticker string) (*CompanyInfo, error)
}

// DemoProvider serves canned large-cap data and a generic fallback
// for unknown tickers.
type DemoProvider struct{}

var _ Provider = (*DemoProvider)(nil)

var demoTable = map[string]CompanyInfo{
	"AAPL":  {Ticker: "AAPL", CompanyName: "Apple Inc.", MarketCap: 3.0e12, CurrentPrice: 195.0, PERatio: 31.0, DividendYield: 0.5},
	"MSFT":  {Ticker: "MSFT", CompanyName: "Microsoft Corporation", MarketCap: 3.1e12, CurrentPrice: 420.0, PERatio: 36.0, DividendYield: 0.7},
	"GOOGL": {Ticker: "GOOGL", CompanyName: "Alphabet Inc.", MarketCap: 2.1e12, CurrentPrice: 170.0, PERatio: 26.0, DividendYield: 0.5},
	"AMZN":  {Ticker: "AMZN", CompanyName: "Amazon.com Inc.", MarketCap: 1.9e12, CurrentPrice: 185.0, PERatio: 60.0, DividendYield: 0},
	"META":  {Ticker: "META", CompanyName: "Meta Platforms Inc.", MarketCap: 1.3e12, CurrentPrice: 500.0, PERatio: 28.0, DividendYield: 0.4},
	"TSLA":  {Ticker: "TSLA", CompanyName: "Tesla Inc.", MarketCap: 0.7e12, CurrentPrice: 220.0, PERatio: 62.0, DividendYield: 0},
	"NFLX":  {Ticker: "NFLX", CompanyName: "Netflix Inc.", MarketCap: 0.3e12, CurrentPrice: 650.0, PERatio: 42.0, DividendYield: 0},
}

// Lookup returns the canned entry or a generic placeholder; it never
// fails so the pipeline stays total.
func (p *DemoProvider) Lookup(ticker string) (*CompanyInfo, error) {
	if info, ok := demoTable[ticker]; ok {
		return &info, nil
	}
	fmt.Printf("[MARKET] [WARNING] ticker=%s not in demo table, using generic placeholder\n", ticker)
	return &CompanyInfo{
		Ticker:      ticker,
		CompanyName: ticker + " Corp.",
	}, nil
}
