// Package edgar acquires SEC EDGAR filings: ticker identity
// resolution, Atom feed discovery, and document download into a flat
// file cache. Every public entry point degrades instead of failing;
// callers always receive a usable value.
package edgar

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"shareholder_catalyst/pkg/core/config"
)

// DefaultBaseURL is the production EDGAR host. Tests swap in an
// httptest server.
const DefaultBaseURL = "https://www.sec.gov"

// Client wraps HTTP access to EDGAR. Two underlying clients: a short
// timeout for API/feed requests and a long one for filing documents,
// which can run to tens of megabytes.
type Client struct {
	BaseURL   string
	UserAgent string
	Pause     time.Duration
	CacheDir  string
	MaxPerCat int

	api  *http.Client
	docs *http.Client
}

// NewClient builds a Client from resolved configuration.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		BaseURL:   DefaultBaseURL,
		UserAgent: cfg.UserAgent,
		Pause:     cfg.RequestPause,
		CacheDir:  cfg.CacheDir,
		MaxPerCat: cfg.MaxPerCategory,
		api:       &http.Client{Timeout: 30 * time.Second},
		docs:      &http.Client{Timeout: 120 * time.Second},
	}
}

// get fetches a URL with the EDGAR User-Agent header set. The SEC
// blocks anonymous clients.
func (c *Client) get(client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	return body, nil
}

// getAPI fetches feed/JSON endpoints with the short timeout.
func (c *Client) getAPI(url string) ([]byte, error) {
	return c.get(c.api, url)
}

// getDocument fetches filing documents with the long timeout.
func (c *Client) getDocument(url string) ([]byte, error) {
	return c.get(c.docs, url)
}
