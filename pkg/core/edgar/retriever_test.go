package edgar

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"shareholder_catalyst/pkg/models"
)

const docBody = "<html><body>Annual report contents</body></html>"

func indexPage(rowType, href string) string {
	return fmt.Sprintf(`<html><body>
	<table summary="Document Format Files">
		<tr><th>Seq</th><th>Description</th><th>Document</th><th>Type</th><th>Size</th></tr>
		<tr><td>1</td><td>Annual report</td><td><a href="%s">doc.htm</a></td><td>%s</td><td>12345</td></tr>
	</table>
	</body></html>`, href, rowType)
}

func newTestRetriever(t *testing.T, baseURL string) *Retriever {
	t.Helper()
	c := testClient(baseURL)
	c.CacheDir = t.TempDir()
	return NewRetriever(c)
}

func testRef() models.FilingReference {
	return models.FilingReference{
		FilingDate: time.Date(2023, 11, 3, 0, 0, 0, 0, time.UTC),
		Accession:  "0000320193-23-000106",
	}
}

func TestRetriever_DownloadsMatchingDocument(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/Archives/edgar/data/320193/000032019323000106/0000320193-23-000106-index.html",
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(indexPage("10-K", "/Archives/edgar/data/320193/doc.htm")))
		})
	mux.HandleFunc("/Archives/edgar/data/320193/doc.htm", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(docBody))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	retriever := newTestRetriever(t, srv.URL)
	identity := models.CompanyIdentity{Ticker: "AAPL", CIK: "0000320193", Name: "Apple Inc."}

	got := retriever.Retrieve(identity, testRef(), "10-K")

	if got.Size != int64(len(docBody)) {
		t.Errorf("Size = %d, want %d", got.Size, len(docBody))
	}
	data, err := os.ReadFile(got.LocalPath)
	if err != nil {
		t.Fatalf("cached file unreadable: %v", err)
	}
	if string(data) != docBody {
		t.Errorf("cached content mismatch")
	}
	if filepath.Base(got.LocalPath) != "AAPL_10-K_2023-11-03.html" {
		t.Errorf("cache name = %s", filepath.Base(got.LocalPath))
	}
}

func TestRetriever_InlineViewerIndirection(t *testing.T) {
	var docRequested string
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "-index.html") {
			w.Write([]byte(indexPage("10-K", "/ix?doc=/Archives/edgar/data/320193/real.htm")))
			return
		}
		docRequested = r.URL.Path
		w.Write([]byte(docBody))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	retriever := newTestRetriever(t, srv.URL)
	identity := models.CompanyIdentity{Ticker: "AAPL", CIK: "0000320193"}

	got := retriever.Retrieve(identity, testRef(), "10-K")

	if docRequested != "/Archives/edgar/data/320193/real.htm" {
		t.Errorf("downloaded %q, want the path behind ?doc=", docRequested)
	}
	if got.Size != int64(len(docBody)) {
		t.Errorf("Size = %d, want %d", got.Size, len(docBody))
	}
}

func TestRetriever_TypeMatchIsCaseInsensitive(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "-index.html") {
			w.Write([]byte(indexPage("def 14a", "/Archives/proxy.htm")))
			return
		}
		w.Write([]byte(docBody))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	retriever := newTestRetriever(t, srv.URL)
	identity := models.CompanyIdentity{Ticker: "AAPL", CIK: "0000320193"}

	got := retriever.Retrieve(identity, testRef(), "DEF 14A")

	if got.Size == placeholderSize {
		t.Fatal("expected real download, got placeholder")
	}
	if filepath.Base(got.LocalPath) != "AAPL_DEF_14A_2023-11-03.html" {
		t.Errorf("cache name = %s, want sanitized category", filepath.Base(got.LocalPath))
	}
}

func TestRetriever_PlaceholderFallback(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "no matching row",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(indexPage("EX-99.1", "/Archives/ex.htm")))
			},
		},
		{
			name: "index fetch fails",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "document fetch fails",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if strings.HasSuffix(r.URL.Path, "-index.html") {
					w.Write([]byte(indexPage("10-K", "/Archives/missing.htm")))
					return
				}
				w.WriteHeader(http.StatusNotFound)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			retriever := newTestRetriever(t, srv.URL)
			identity := models.CompanyIdentity{Ticker: "AAPL", CIK: "0000320193", Name: "Apple Inc."}

			got := retriever.Retrieve(identity, testRef(), "10-K")

			if got.Size != placeholderSize {
				t.Errorf("Size = %d, want %d", got.Size, placeholderSize)
			}
			info, err := os.Stat(got.LocalPath)
			if err != nil {
				t.Fatalf("placeholder not written: %v", err)
			}
			if info.Size() != placeholderSize {
				t.Errorf("on-disk size = %d, want %d", info.Size(), placeholderSize)
			}
		})
	}
}
