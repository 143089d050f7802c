package edgar

import (
	"fmt"
	"time"

	"shareholder_catalyst/pkg/models"
)

// Fetcher drives the acquisition flow for one company: resolve the
// ticker once, then locate and download filings per form type.
type Fetcher struct {
	resolver  *Resolver
	locator   *Locator
	retriever *Retriever
	pause     time.Duration
	maxPerCat int
	lookback  int
}

// NewFetcher wires the acquisition stages around one shared client.
func NewFetcher(client *Client, lookbackYears int) *Fetcher {
	return &Fetcher{
		resolver:  NewResolver(client),
		locator:   NewLocator(client),
		retriever: NewRetriever(client),
		pause:     client.Pause,
		maxPerCat: client.MaxPerCat,
		lookback:  lookbackYears,
	}
}

// FetchFilings resolves a ticker and downloads up to maxPerCat recent
// filings for each requested form type. The returned map always has a
// key for every requested type, even when nothing was found. A feed
// failure for one type logs a warning and leaves that type empty; it
// never aborts the other types.
func (f *Fetcher) FetchFilings(ticker string, formTypes []string) (models.CompanyIdentity, map[string][]models.DownloadedFiling) {
	identity := f.resolver.Resolve(ticker)
	fmt.Printf("[EDGAR] ticker=%s resolved cik=%s name=%q\n", identity.Ticker, identity.CIK, identity.Name)

	filings := make(map[string][]models.DownloadedFiling, len(formTypes))
	for _, formType := range formTypes {
		filings[formType] = []models.DownloadedFiling{}

		refs, err := f.locator.Locate(identity, formType, f.lookback)
		if err != nil {
			fmt.Printf("[EDGAR] [WARNING] ticker=%s type=%s locate failed: %v\n", identity.Ticker, formType, err)
			continue
		}
		if len(refs) > f.maxPerCat {
			refs = refs[:f.maxPerCat]
		}
		fmt.Printf("[EDGAR] ticker=%s type=%s downloading %d filing(s)\n", identity.Ticker, formType, len(refs))

		for _, ref := range refs {
			filings[formType] = append(filings[formType], f.retriever.Retrieve(identity, ref, formType))
			time.Sleep(f.pause)
		}
	}

	return identity, filings
}
