// Package convert normalizes raw EDGAR filing HTML into Markdown the
// extraction stage can consume. Tables are lifted out before text
// conversion and rebuilt afterwards so their structure survives.
package convert

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Sanitizer performs pre-conversion cleanup specific to EDGAR filings:
// fake styled headers, inline-XBRL wrappers, spacer images, page
// number footers, and tables that need specialized conversion.
type Sanitizer struct {
	tableStore map[string]string
	tableCount int
}

// NewSanitizer creates a sanitizer with an empty table store.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{tableStore: make(map[string]string)}
}

// Sanitize runs the full cleanup pass and returns HTML ready for
// text conversion. Extracted tables are held in the store until
// RestoreTables is called on the converted Markdown.
func (s *Sanitizer) Sanitize(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	s.removeNoise(doc)
	s.fixFakeHeaders(doc)
	s.extractTables(doc)

	cleaned, err := doc.Find("body").Html()
	if err != nil || strings.TrimSpace(cleaned) == "" {
		cleaned, _ = doc.Html()
	}
	return cleaned, nil
}

// fixFakeHeaders promotes styled paragraphs to semantic headers.
// Filings routinely fake section headers with bold inline styles
// instead of h2/h3 tags.
func (s *Sanitizer) fixFakeHeaders(doc *goquery.Document) {
	doc.Find("p").Each(func(i int, sel *goquery.Selection) {
		style, exists := sel.Attr("style")
		if !exists {
			return
		}
		styleLower := strings.ToLower(style)

		isBold := strings.Contains(styleLower, "font-weight:bold") ||
			strings.Contains(styleLower, "font-weight: bold") ||
			strings.Contains(styleLower, "font-weight:700") ||
			strings.Contains(styleLower, "font-weight: 700")
		if !isBold {
			return
		}

		if hasFontSize(styleLower, 14) {
			convertToHeader(sel, "h2")
		} else if hasFontSize(styleLower, 12) {
			convertToHeader(sel, "h3")
		}
	})

	doc.Find("b, strong").Each(func(i int, sel *goquery.Selection) {
		if !looksLikeSectionHeader(strings.TrimSpace(sel.Text())) {
			return
		}
		parent := sel.Parent()
		if goquery.NodeName(parent) == "p" || goquery.NodeName(parent) == "div" {
			convertToHeader(parent, "h2")
		}
	})
}

var fontSizeRe = regexp.MustCompile(`font-size:\s*(\d+)(?:\.?\d*)pt`)

func hasFontSize(style string, minPt int) bool {
	m := fontSizeRe.FindStringSubmatch(style)
	if len(m) < 2 {
		return false
	}
	var size int
	fmt.Sscanf(m[1], "%d", &size)
	return size >= minPt
}

var sectionHeaderRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^Item\s+\d`),
	regexp.MustCompile(`(?i)^PART\s+[IVX]+`),
	regexp.MustCompile(`(?i)^Note\s+\d`),
	regexp.MustCompile(`(?i)^PROPOSAL\s+\d`),
	regexp.MustCompile(`(?i)^EXECUTIVE\s+COMPENSATION`),
	regexp.MustCompile(`(?i)^CONSOLIDATED\s+`),
	regexp.MustCompile(`(?i)^STATEMENTS?\s+OF`),
}

func looksLikeSectionHeader(text string) bool {
	for _, re := range sectionHeaderRes {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func convertToHeader(sel *goquery.Selection, tag string) {
	html, _ := sel.Html()
	sel.ReplaceWithHtml(fmt.Sprintf("<%s>%s</%s>", tag, html, tag))
}

// extractTables replaces every table with a {{TABLE_ID_N}} marker and
// stashes the original HTML for later grid conversion.
func (s *Sanitizer) extractTables(doc *goquery.Document) {
	doc.Find("table").Each(func(i int, sel *goquery.Selection) {
		tableHTML, err := goquery.OuterHtml(sel)
		if err != nil {
			return
		}
		s.tableCount++
		id := fmt.Sprintf("{{TABLE_ID_%d}}", s.tableCount)
		s.tableStore[id] = tableHTML
		sel.ReplaceWithHtml(fmt.Sprintf("\n%s\n", id))
	})
}

// RestoreTables swaps {{TABLE_ID_N}} markers in converted Markdown for
// grid-converted Markdown tables.
func (s *Sanitizer) RestoreTables(markdown string) string {
	for id, tableHTML := range s.tableStore {
		markdown = strings.Replace(markdown, id, ConvertTable(tableHTML), 1)
	}
	return markdown
}

// TableCount returns how many tables were extracted.
func (s *Sanitizer) TableCount() int {
	return s.tableCount
}

var pageNumberRe = regexp.MustCompile(`^(?:Page\s*)?\d+$|^-\s*\d+\s*-$|^[A-Z]?-\d+$`)

// removeNoise strips elements that add nothing to extraction.
func (s *Sanitizer) removeNoise(doc *goquery.Document) {
	doc.Find("script, style").Remove()
	doc.Find("[hidden], [style*='display:none'], [style*='display: none']").Remove()

	// Spacer and decoration images. Real figures are useless to a
	// text extractor anyway, so images only survive when they carry
	// meaningful alt text.
	doc.Find("img").Each(func(i int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		alt, _ := sel.Attr("alt")
		width, _ := sel.Attr("width")
		height, _ := sel.Attr("height")

		if src == "" || strings.Contains(src, "spacer") || strings.Contains(src, "blank") {
			sel.Remove()
			return
		}
		if width == "1" || height == "1" {
			sel.Remove()
			return
		}
		if alt == "" {
			sel.Remove()
		}
	})

	// Page number footers.
	doc.Find("p, div, span").Each(func(i int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if len(text) < 20 && pageNumberRe.MatchString(text) {
			sel.Remove()
		}
	})

	// Inline XBRL wrappers: keep the displayed value, drop the tag.
	doc.Find("ix\\:nonFraction, ix\\:nonNumeric, ix\\:fraction").Each(func(i int, sel *goquery.Selection) {
		sel.ReplaceWithHtml(sel.Text())
	})

	// Empty leaf elements that become stray blank lines in Markdown.
	doc.Find("p, div, span").Each(func(i int, sel *goquery.Selection) {
		if strings.TrimSpace(sel.Text()) == "" && sel.Children().Length() == 0 {
			sel.Remove()
		}
	})
}
