package convert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConvertTable_SimpleGrid(t *testing.T) {
	html := `<table>
		<tr><th>Year</th><th>Revenue</th></tr>
		<tr><td>2023</td><td>$383,285</td></tr>
		<tr><td>2022</td><td>(1,234)</td></tr>
	</table>`

	md := ConvertTable(html)

	if !strings.Contains(md, "| Year | Revenue |") {
		t.Errorf("missing header row:\n%s", md)
	}
	if !strings.Contains(md, "| --- | --- |") {
		t.Errorf("missing separator row:\n%s", md)
	}
	if !strings.Contains(md, "383285") {
		t.Errorf("currency not normalized:\n%s", md)
	}
	if !strings.Contains(md, "-1234") {
		t.Errorf("accounting negative not normalized:\n%s", md)
	}
}

func TestConvertTable_ColspanAlignment(t *testing.T) {
	html := `<table>
		<tr><th colspan="2">Fiscal 2023</th><th>Fiscal 2022</th></tr>
		<tr><td>Q4</td><td>100</td><td>90</td></tr>
	</table>`

	md := ConvertTable(html)

	for _, line := range strings.Split(strings.TrimSpace(md), "\n") {
		if strings.Count(line, "|") != 4 {
			t.Errorf("row not aligned to 3 columns: %q", line)
		}
	}
}

func TestNormalizeNumber(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"(1,234.56)", "-1234.56"},
		{"$5,000", "5000"},
		{"(1234)", "-1234"},
		{"N/A", "N/A"},
		{"Total revenue", "Total revenue"},
		{"12.5%", "12.5%"},
	}
	for _, tc := range tests {
		if got := normalizeNumber(tc.in); got != tc.want {
			t.Errorf("normalizeNumber(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizer_FakeHeadersAndNoise(t *testing.T) {
	html := `<html><body>
		<script>alert(1)</script>
		<p style="font-weight:bold;font-size:14pt">Executive Compensation Overview</p>
		<p><b>Item 7. Management Discussion</b></p>
		<p>Real content here</p>
		<span>42</span>
		<img src="spacer.gif">
	</body></html>`

	s := NewSanitizer()
	cleaned, err := s.Sanitize(html)
	if err != nil {
		t.Fatalf("Sanitize failed: %v", err)
	}

	if strings.Contains(cleaned, "script") {
		t.Error("script not removed")
	}
	if !strings.Contains(cleaned, "<h2>") {
		t.Error("fake header not promoted to h2")
	}
	if strings.Contains(cleaned, "spacer.gif") {
		t.Error("spacer image not removed")
	}
	if strings.Contains(cleaned, "<span>42</span>") {
		t.Error("page number footer not removed")
	}
	if !strings.Contains(cleaned, "Real content here") {
		t.Error("real content lost")
	}
}

func TestSanitizer_TableRoundTrip(t *testing.T) {
	html := `<html><body>
		<p>Before</p>
		<table><tr><th>A</th><th>B</th></tr><tr><td>1</td><td>2</td></tr></table>
		<p>After</p>
	</body></html>`

	s := NewSanitizer()
	cleaned, err := s.Sanitize(html)
	if err != nil {
		t.Fatalf("Sanitize failed: %v", err)
	}
	if !strings.Contains(cleaned, "{{TABLE_ID_1}}") {
		t.Fatalf("table not replaced with placeholder:\n%s", cleaned)
	}
	if s.TableCount() != 1 {
		t.Errorf("TableCount = %d, want 1", s.TableCount())
	}

	restored := s.RestoreTables("text before\n{{TABLE_ID_1}}\ntext after")
	if !strings.Contains(restored, "| A | B |") {
		t.Errorf("table not restored:\n%s", restored)
	}
}

func TestNativeHTMLToMarkdown(t *testing.T) {
	html := `<html><body>
		<h2>Business Overview</h2>
		<p>We design products. See <a href="https://www.sec.gov/doc.htm">the filing</a> for details.</p>
		<img src="chart.png">
		<ul><li>First item</li><li>Second item</li></ul>
	</body></html>`

	md, err := NativeHTMLToMarkdown(html)
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}

	if !strings.Contains(md, "## Business Overview") {
		t.Errorf("heading missing:\n%s", md)
	}
	if !strings.Contains(md, "[the filing](https://www.sec.gov/doc.htm)") {
		t.Errorf("link not preserved:\n%s", md)
	}
	if strings.Contains(md, "chart.png") {
		t.Errorf("image not stripped:\n%s", md)
	}
	if !strings.Contains(md, "- First item") {
		t.Errorf("list item missing:\n%s", md)
	}
}

func TestNormalizer_WritesMarkdownSibling(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "AAPL_10-K_2023-11-03.html")
	html := `<html><body>
		<h2>Item 8. Financial Statements</h2>
		<p>Revenue grew in fiscal 2023.</p>
		<table><tr><th>Year</th><th>Revenue</th></tr><tr><td>2023</td><td>383,285</td></tr></table>
	</body></html>`
	if err := os.WriteFile(src, []byte(html), 0o644); err != nil {
		t.Fatal(err)
	}

	n := NewNormalizer()
	mdPath, err := n.Normalize(src)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if mdPath != filepath.Join(dir, "AAPL_10-K_2023-11-03.md") {
		t.Errorf("mdPath = %s", mdPath)
	}

	data, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("markdown not written: %v", err)
	}
	md := string(data)
	if !strings.Contains(md, "Revenue grew in fiscal 2023") {
		t.Errorf("prose missing:\n%s", md)
	}
	if !strings.Contains(md, "383285") {
		t.Errorf("table figures missing:\n%s", md)
	}
}

func TestNormalizer_MissingFileIsError(t *testing.T) {
	n := NewNormalizer()
	if _, err := n.Normalize(filepath.Join(t.TempDir(), "absent.html")); err == nil {
		t.Error("expected error for missing file")
	}
}
