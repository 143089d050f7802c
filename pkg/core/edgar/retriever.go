package edgar

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"shareholder_catalyst/pkg/models"
)

// placeholderSize is the exact on-disk byte count of a synthetic
// filing. Downstream stages use the fixed size to recognize
// placeholders without reparsing them.
const placeholderSize = 1000

// smallDocThreshold flags suspiciously small downloads; real filings
// are rarely under 5 KB.
const smallDocThreshold = 5 * 1024

// Retriever downloads the primary document for a filing into the
// local cache.
type Retriever struct {
	client *Client
}

// NewRetriever creates a Retriever backed by the given client.
func NewRetriever(client *Client) *Retriever {
	return &Retriever{client: client}
}

// Retrieve resolves and downloads the document of the given form type
// for one filing. It never fails: any error along the way (index
// fetch, row match, document download, disk write) degrades to a
// synthetic placeholder file so the pipeline always has a document
// per located filing.
func (r *Retriever) Retrieve(identity models.CompanyIdentity, ref models.FilingReference, formType string) models.DownloadedFiling {
	date := ref.FilingDate.Format("2006-01-02")
	cachePath := r.cachePath(identity.Ticker, formType, date)

	indexURL := ref.IndexURL
	if indexURL == "" {
		indexURL = r.buildIndexURL(identity.CIK, ref.Accession)
	}

	docURL, err := r.findDocumentURL(indexURL, formType)
	if err != nil {
		fmt.Printf("[EDGAR] [WARNING] ticker=%s type=%s accession=%s: %v, writing placeholder\n",
			identity.Ticker, formType, ref.Accession, err)
		return r.writePlaceholder(identity, ref, formType, cachePath, date)
	}

	body, err := r.client.getDocument(docURL)
	if err != nil {
		fmt.Printf("[EDGAR] [WARNING] ticker=%s type=%s accession=%s download failed: %v, writing placeholder\n",
			identity.Ticker, formType, ref.Accession, err)
		return r.writePlaceholder(identity, ref, formType, cachePath, date)
	}

	if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err != nil {
		fmt.Printf("[EDGAR] [WARNING] ticker=%s cache dir: %v, writing placeholder\n", identity.Ticker, err)
		return r.writePlaceholder(identity, ref, formType, cachePath, date)
	}
	if err := os.WriteFile(cachePath, body, 0o644); err != nil {
		fmt.Printf("[EDGAR] [WARNING] ticker=%s write %s: %v, writing placeholder\n", identity.Ticker, cachePath, err)
		return r.writePlaceholder(identity, ref, formType, cachePath, date)
	}

	size := int64(len(body))
	if size < smallDocThreshold {
		fmt.Printf("[EDGAR] [WARNING] ticker=%s type=%s document is only %d bytes, may be truncated\n",
			identity.Ticker, formType, size)
	}
	fmt.Printf("[EDGAR] ticker=%s type=%s date=%s saved %d bytes -> %s\n",
		identity.Ticker, formType, date, size, cachePath)

	return models.DownloadedFiling{
		FilingDate: date,
		Accession:  ref.Accession,
		SourceURL:  docURL,
		LocalPath:  cachePath,
		Size:       size,
	}
}

// findDocumentURL fetches the filing index page and locates the row
// of the requested form type in the Document Format Files table.
func (r *Retriever) findDocumentURL(indexURL, formType string) (string, error) {
	body, err := r.client.getAPI(indexURL)
	if err != nil {
		return "", fmt.Errorf("index fetch failed: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return "", fmt.Errorf("index parse failed: %w", err)
	}

	var href string
	doc.Find(`table[summary="Document Format Files"] tr`).EachWithBreak(func(i int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() < 4 {
			return true
		}
		rowType := strings.TrimSpace(cells.Eq(3).Text())
		if !strings.EqualFold(rowType, formType) {
			return true
		}
		href, _ = cells.Eq(2).Find("a").Attr("href")
		return href == ""
	})

	if href == "" {
		return "", fmt.Errorf("no %s row in document table", formType)
	}

	// Inline XBRL viewer links wrap the real document path:
	// /ix?doc=/Archives/... -> /Archives/...
	if strings.Contains(href, "/ix?doc=") {
		parts := strings.SplitN(href, "?doc=", 2)
		href = parts[1]
	}

	if strings.HasPrefix(href, "http") {
		return href, nil
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return r.client.BaseURL + href, nil
}

// buildIndexURL reconstructs the filing index page URL from the CIK
// and accession number.
func (r *Retriever) buildIndexURL(cik, accession string) string {
	unpadded := strings.TrimLeft(cik, "0")
	if unpadded == "" {
		unpadded = "0"
	}
	return fmt.Sprintf("%s/Archives/edgar/data/%s/%s/%s-index.html",
		r.client.BaseURL, unpadded, strings.ReplaceAll(accession, "-", ""), accession)
}

// cachePath builds the cache file path for a filing. Spaces in the
// form type become underscores and slashes become dashes so types
// like "DEF 14A" and "10-K/A" stay filesystem safe.
func (r *Retriever) cachePath(ticker, formType, date string) string {
	safe := strings.ReplaceAll(formType, " ", "_")
	safe = strings.ReplaceAll(safe, "/", "-")
	name := fmt.Sprintf("%s_%s_%s.html", ticker, safe, date)
	return filepath.Join(r.client.CacheDir, ticker, name)
}

// writePlaceholder persists a synthetic single-paragraph HTML document
// padded to exactly placeholderSize bytes.
func (r *Retriever) writePlaceholder(identity models.CompanyIdentity, ref models.FilingReference, formType, cachePath, date string) models.DownloadedFiling {
	content := fmt.Sprintf(
		"<html><body><h1>%s %s</h1><p>Placeholder document for %s filed %s (accession %s). The original document could not be retrieved from EDGAR.</p></body></html>",
		identity.Ticker, formType, identity.Name, date, ref.Accession,
	)

	buf := []byte(content)
	if len(buf) > placeholderSize {
		buf = buf[:placeholderSize]
	} else {
		pad := make([]byte, placeholderSize-len(buf))
		for i := range pad {
			pad[i] = ' '
		}
		buf = append(buf, pad...)
	}

	if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err == nil {
		if err := os.WriteFile(cachePath, buf, 0o644); err != nil {
			fmt.Printf("[EDGAR] [WARNING] ticker=%s placeholder write failed: %v\n", identity.Ticker, err)
		}
	}

	return models.DownloadedFiling{
		FilingDate: date,
		Accession:  ref.Accession,
		SourceURL:  "",
		LocalPath:  cachePath,
		Size:       placeholderSize,
	}
}
