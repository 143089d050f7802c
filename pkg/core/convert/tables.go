package convert

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ConvertTable renders an HTML table as an aligned Markdown table
// using a virtual grid, so colspan and rowspan cells land in the
// right columns. Standard Markdown has no cell merging; spanned slots
// are filled with blanks to keep columns aligned.
func ConvertTable(tableHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(tableHTML))
	if err != nil {
		return ""
	}

	rows := doc.Find("tr")
	rowCount := rows.Length()
	if rowCount == 0 {
		return ""
	}

	// Pre-scan for the widest row, counting colspans.
	maxCols := 0
	rows.Each(func(i int, tr *goquery.Selection) {
		cols := 0
		tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			cols += spanAttr(cell, "colspan")
		})
		if cols > maxCols {
			maxCols = cols
		}
	})
	if maxCols == 0 {
		return ""
	}

	grid := make([][]string, rowCount)
	for i := range grid {
		grid[i] = make([]string, maxCols)
	}

	rowIdx := 0
	rows.Each(func(i int, tr *goquery.Selection) {
		colIdx := 0
		for colIdx < maxCols && grid[rowIdx][colIdx] != "" {
			colIdx++
		}

		tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			colspan := spanAttr(cell, "colspan")
			rowspan := spanAttr(cell, "rowspan")
			text := cleanCellText(cell.Text())

			for r := 0; r < rowspan; r++ {
				for c := 0; c < colspan; c++ {
					tr, tc := rowIdx+r, colIdx+c
					if tr >= rowCount || tc >= maxCols {
						continue
					}
					if r == 0 && c == 0 {
						grid[tr][tc] = text
					} else {
						grid[tr][tc] = " "
					}
				}
			}

			colIdx += colspan
			for colIdx < maxCols && grid[rowIdx][colIdx] != "" {
				colIdx++
			}
		})
		rowIdx++
	})

	var sb strings.Builder
	sb.WriteString("\n")
	for i, row := range grid {
		sb.WriteString("|")
		for _, cell := range row {
			if cell == "" {
				cell = " "
			}
			sb.WriteString(" " + cell + " |")
		}
		sb.WriteString("\n")
		if i == 0 {
			sb.WriteString("|")
			for range row {
				sb.WriteString(" --- |")
			}
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

func spanAttr(cell *goquery.Selection, name string) int {
	n, _ := strconv.Atoi(cell.AttrOr(name, "1"))
	if n < 1 {
		n = 1
	}
	return n
}

func cleanCellText(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "|", "&#124;")
	text = normalizeNumber(text)
	if text == "" {
		return " "
	}
	return text
}

// normalizeNumber converts accounting-format figures to plain numbers:
// (1,234) -> -1234, $5,000 -> 5000. Non-numeric cells pass through
// untouched.
func normalizeNumber(text string) string {
	original := text

	hasDigit := false
	for _, r := range text {
		if r >= '0' && r <= '9' {
			hasDigit = true
			break
		}
	}
	if !hasDigit {
		return original
	}

	isNegative := false
	if strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")") {
		isNegative = true
		text = text[1 : len(text)-1]
	}

	for _, sym := range []string{"$", "€", "£", "¥", ","} {
		text = strings.ReplaceAll(text, sym, "")
	}
	text = strings.TrimSpace(text)

	for _, r := range text {
		if !((r >= '0' && r <= '9') || r == '.' || r == '-') {
			return original
		}
	}

	if isNegative && !strings.HasPrefix(text, "-") {
		text = "-" + text
	}
	return text
}
