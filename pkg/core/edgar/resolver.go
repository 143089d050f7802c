package edgar

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"shareholder_catalyst/pkg/models"
)

const companyTickersPath = "/files/company_tickers.json"

type tickerEntry struct {
	CIK    int    `json:"cik_str"`
	Ticker string `json:"ticker"`
	Title  string `json:"title"`
}

type cachedIdentity struct {
	cik  string
	name string
}

// Resolver maps ticker symbols to CIK numbers using the SEC's bulk
// company_tickers.json. The full map is fetched once, lazily, and held
// in memory for the life of the process.
type Resolver struct {
	client *Client

	mu    sync.Mutex
	cache map[string]cachedIdentity
}

// NewResolver creates a Resolver backed by the given client.
func NewResolver(client *Client) *Resolver {
	return &Resolver{client: client}
}

// Resolve returns the company identity for a ticker. It never fails:
// any error (network, parse, unknown ticker) logs a warning and
// returns the sentinel identity, which downstream stages handle by
// producing empty filing sets.
func (r *Resolver) Resolve(ticker string) models.CompanyIdentity {
	normalized := strings.ToUpper(strings.TrimSpace(ticker))

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cache == nil {
		r.cache = make(map[string]cachedIdentity)
	}

	if id, ok := r.cache[normalized]; ok {
		return models.CompanyIdentity{Ticker: normalized, CIK: id.cik, Name: id.name}
	}

	if len(r.cache) == 0 {
		if err := r.loadTickerCache(); err != nil {
			fmt.Printf("[EDGAR] [WARNING] ticker=%s failed to load ticker map: %v\n", normalized, err)
			return sentinelIdentity(normalized)
		}
		if id, ok := r.cache[normalized]; ok {
			return models.CompanyIdentity{Ticker: normalized, CIK: id.cik, Name: id.name}
		}
	}

	fmt.Printf("[EDGAR] [WARNING] ticker=%s not found in SEC ticker map\n", normalized)
	return sentinelIdentity(normalized)
}

// loadTickerCache fetches the full ticker list from SEC.
// Format: {"0": {"cik_str": 320193, "ticker": "AAPL", "title": "Apple Inc."}, ...}
func (r *Resolver) loadTickerCache() error {
	fmt.Println("[EDGAR] Loading ticker->CIK map from SEC...")
	body, err := r.client.getAPI(r.client.BaseURL + companyTickersPath)
	if err != nil {
		return fmt.Errorf("failed to fetch company tickers: %w", err)
	}

	var resp map[string]tickerEntry
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("failed to parse ticker JSON: %w", err)
	}

	for _, entry := range resp {
		r.cache[strings.ToUpper(entry.Ticker)] = cachedIdentity{
			cik:  fmt.Sprintf("%010d", entry.CIK),
			name: entry.Title,
		}
	}

	fmt.Printf("[EDGAR] Loaded %d tickers from SEC\n", len(r.cache))
	return nil
}

func sentinelIdentity(ticker string) models.CompanyIdentity {
	return models.CompanyIdentity{
		Ticker: ticker,
		CIK:    models.SentinelCIK,
		Name:   ticker + " Corp.",
	}
}
