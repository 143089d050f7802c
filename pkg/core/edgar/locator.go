package edgar

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"time"

	"shareholder_catalyst/pkg/models"
)

var (
	entryRe = regexp.MustCompile(`(?s)<entry>(.*?)</entry>`)
	dateRe  = regexp.MustCompile(`<filing-date>(\d{4}-\d{2}-\d{2})</filing-date>`)
	hrefRe  = regexp.MustCompile(`<filing-href>([^<]+)</filing-href>`)

	// Canonical accession form: 0000320193-23-000106
	accessionPattern = regexp.MustCompile(`\d{10}-\d{2}-\d{6}`)
	accessionTagRe   = regexp.MustCompile(`<accession-number>([^<]+)</accession-number>`)
	// Feeds occasionally carry the accession under a variant label.
	accessionLooseRe = regexp.MustCompile(`accession[_-]?number[>=:]\s*"?(\d{10}-\d{2}-\d{6})`)
)

// Locator discovers filings of a given form type via the EDGAR
// browse-edgar Atom feed.
type Locator struct {
	client *Client

	// now is swappable for cutoff tests.
	now func() time.Time
}

// NewLocator creates a Locator backed by the given client.
func NewLocator(client *Client) *Locator {
	return &Locator{client: client, now: time.Now}
}

// Locate fetches the Atom feed for the company and form type and
// returns every filing inside the lookback window, newest first.
// Entries are parsed independently: a malformed entry is skipped with
// a warning, never aborting the rest of the feed. Callers truncate to
// their own per-category limit.
func (l *Locator) Locate(identity models.CompanyIdentity, formType string, lookbackYears int) ([]models.FilingReference, error) {
	feedURL := fmt.Sprintf(
		"%s/cgi-bin/browse-edgar?action=getcompany&CIK=%s&type=%s&dateb=&owner=exclude&count=100&output=atom",
		l.client.BaseURL, identity.CIK, url.QueryEscape(formType),
	)

	body, err := l.client.getAPI(feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch filing feed for %s %s: %w", identity.Ticker, formType, err)
	}

	cutoff := l.now().Add(-time.Duration(lookbackYears) * 365 * 24 * time.Hour)

	var refs []models.FilingReference
	for _, m := range entryRe.FindAllStringSubmatch(string(body), -1) {
		entry := m[1]

		dm := dateRe.FindStringSubmatch(entry)
		if dm == nil {
			fmt.Printf("[EDGAR] [WARNING] ticker=%s type=%s entry missing filing-date, skipped\n", identity.Ticker, formType)
			continue
		}
		filingDate, err := time.Parse("2006-01-02", dm[1])
		if err != nil {
			fmt.Printf("[EDGAR] [WARNING] ticker=%s type=%s unparsable filing-date %q, skipped\n", identity.Ticker, formType, dm[1])
			continue
		}

		accession := extractAccession(entry)
		if accession == "" {
			fmt.Printf("[EDGAR] [WARNING] ticker=%s type=%s entry missing accession number, skipped\n", identity.Ticker, formType)
			continue
		}

		if filingDate.Before(cutoff) {
			continue
		}

		ref := models.FilingReference{
			FilingDate: filingDate,
			Accession:  accession,
		}
		if hm := hrefRe.FindStringSubmatch(entry); hm != nil {
			ref.IndexURL = hm[1]
		}
		refs = append(refs, ref)
	}

	// The feed is usually newest-first already; re-sort in case.
	sort.Slice(refs, func(i, j int) bool {
		return refs[i].FilingDate.After(refs[j].FilingDate)
	})

	return refs, nil
}

// extractAccession pulls the accession number from an entry body,
// trying the canonical tag first and a lenient label match second.
func extractAccession(entry string) string {
	if m := accessionTagRe.FindStringSubmatch(entry); m != nil {
		if acc := accessionPattern.FindString(m[1]); acc != "" {
			return acc
		}
	}
	if m := accessionLooseRe.FindStringSubmatch(entry); m != nil {
		return m[1]
	}
	return ""
}
