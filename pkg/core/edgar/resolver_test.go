package edgar

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shareholder_catalyst/pkg/core/config"
	"shareholder_catalyst/pkg/models"
)

func testClient(baseURL string) *Client {
	cfg := config.Default()
	cfg.RequestPause = time.Millisecond
	c := NewClient(cfg)
	c.BaseURL = baseURL
	return c
}

func TestResolver_Resolve(t *testing.T) {
	tickerJSON := `{
		"0": {"cik_str": 320193, "ticker": "AAPL", "title": "Apple Inc."},
		"1": {"cik_str": 789019, "ticker": "MSFT", "title": "MICROSOFT CORP"}
	}`

	tests := []struct {
		name     string
		ticker   string
		status   int
		body     string
		wantCIK  string
		wantName string
	}{
		{
			name:     "known ticker",
			ticker:   "AAPL",
			status:   http.StatusOK,
			body:     tickerJSON,
			wantCIK:  "0000320193",
			wantName: "Apple Inc.",
		},
		{
			name:     "case insensitive match",
			ticker:   "msft",
			status:   http.StatusOK,
			body:     tickerJSON,
			wantCIK:  "0000789019",
			wantName: "MICROSOFT CORP",
		},
		{
			name:     "unknown ticker gets sentinel",
			ticker:   "ZZZZ",
			status:   http.StatusOK,
			body:     tickerJSON,
			wantCIK:  models.SentinelCIK,
			wantName: "ZZZZ Corp.",
		},
		{
			name:     "server error gets sentinel",
			ticker:   "AAPL",
			status:   http.StatusInternalServerError,
			body:     "",
			wantCIK:  models.SentinelCIK,
			wantName: "AAPL Corp.",
		},
		{
			name:     "malformed JSON gets sentinel",
			ticker:   "AAPL",
			status:   http.StatusOK,
			body:     "not json",
			wantCIK:  models.SentinelCIK,
			wantName: "AAPL Corp.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("User-Agent") == "" {
					t.Error("expected User-Agent header to be set")
				}
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			resolver := NewResolver(testClient(srv.URL))
			got := resolver.Resolve(tc.ticker)

			if got.CIK != tc.wantCIK {
				t.Errorf("CIK = %q, want %q", got.CIK, tc.wantCIK)
			}
			if got.Name != tc.wantName {
				t.Errorf("Name = %q, want %q", got.Name, tc.wantName)
			}
		})
	}
}

func TestResolver_CacheAvoidsRefetch(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"0": {"cik_str": 320193, "ticker": "AAPL", "title": "Apple Inc."}}`))
	}))
	defer srv.Close()

	resolver := NewResolver(testClient(srv.URL))
	resolver.Resolve("AAPL")
	resolver.Resolve("aapl")

	if calls != 1 {
		t.Errorf("ticker map fetched %d times, want 1", calls)
	}
}
