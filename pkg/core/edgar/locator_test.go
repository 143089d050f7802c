package edgar

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shareholder_catalyst/pkg/models"
)

func atomEntry(date, accession, href string) string {
	return fmt.Sprintf(`<entry>
		<title>10-K</title>
		<filing-date>%s</filing-date>
		<accession-number>%s</accession-number>
		<filing-href>%s</filing-href>
	</entry>`, date, accession, href)
}

func TestLocator_Locate(t *testing.T) {
	identity := models.CompanyIdentity{Ticker: "AAPL", CIK: "0000320193", Name: "Apple Inc."}
	fixedNow := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		feed     string
		lookback int
		wantLen  int
		wantAcc  []string
	}{
		{
			name: "valid entries sorted descending",
			feed: `<feed>` +
				atomEntry("2022-10-28", "0000320193-22-000108", "https://example.com/a-index.htm") +
				atomEntry("2023-11-03", "0000320193-23-000106", "https://example.com/b-index.htm") +
				`</feed>`,
			lookback: 3,
			wantLen:  2,
			wantAcc:  []string{"0000320193-23-000106", "0000320193-22-000108"},
		},
		{
			name: "entry missing accession is skipped",
			feed: `<feed>` +
				`<entry><filing-date>2023-11-03</filing-date></entry>` +
				atomEntry("2022-10-28", "0000320193-22-000108", "") +
				`</feed>`,
			lookback: 3,
			wantLen:  1,
			wantAcc:  []string{"0000320193-22-000108"},
		},
		{
			name: "entry with unparsable date is skipped",
			feed: `<feed>` +
				`<entry><filing-date>notadate</filing-date><accession-number>0000320193-23-000106</accession-number></entry>` +
				`</feed>`,
			lookback: 3,
			wantLen:  0,
		},
		{
			name: "entries past cutoff are excluded",
			feed: `<feed>` +
				atomEntry("2023-11-03", "0000320193-23-000106", "") +
				atomEntry("2019-10-31", "0000320193-19-000119", "") +
				`</feed>`,
			lookback: 3,
			wantLen:  1,
			wantAcc:  []string{"0000320193-23-000106"},
		},
		{
			name: "lenient accession label is accepted",
			feed: `<feed>` +
				`<entry><filing-date>2023-11-03</filing-date>accession_number=0000320193-23-000106</entry>` +
				`</feed>`,
			lookback: 3,
			wantLen:  1,
			wantAcc:  []string{"0000320193-23-000106"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				if q.Get("action") != "getcompany" || q.Get("output") != "atom" {
					t.Errorf("unexpected query: %s", r.URL.RawQuery)
				}
				if q.Get("owner") != "exclude" || q.Get("count") != "100" {
					t.Errorf("missing feed parameters: %s", r.URL.RawQuery)
				}
				w.Write([]byte(tc.feed))
			}))
			defer srv.Close()

			locator := NewLocator(testClient(srv.URL))
			locator.now = func() time.Time { return fixedNow }

			refs, err := locator.Locate(identity, "10-K", tc.lookback)
			if err != nil {
				t.Fatalf("Locate failed: %v", err)
			}
			if len(refs) != tc.wantLen {
				t.Fatalf("got %d refs, want %d", len(refs), tc.wantLen)
			}
			for i, acc := range tc.wantAcc {
				if refs[i].Accession != acc {
					t.Errorf("refs[%d].Accession = %q, want %q", i, refs[i].Accession, acc)
				}
			}
		})
	}
}

func TestLocator_FeedErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	locator := NewLocator(testClient(srv.URL))
	identity := models.CompanyIdentity{Ticker: "AAPL", CIK: "0000320193"}

	if _, err := locator.Locate(identity, "10-K", 3); err == nil {
		t.Error("expected error on feed failure")
	}
}
