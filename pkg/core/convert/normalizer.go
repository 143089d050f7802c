package convert

import (
	"fmt"
	"os"
	"strings"
)

// Normalizer converts a cached filing HTML file to Markdown, writing
// the result as a .md sibling of the source file. Conversion prefers
// Pandoc and falls back to the native renderer; tables go through the
// grid converter in both paths.
type Normalizer struct {
	pandoc *PandocAdapter

	// usePandoc is resolved once at construction.
	usePandoc bool
}

// NewNormalizer probes for Pandoc once and remembers the answer.
func NewNormalizer() *Normalizer {
	p := NewPandocAdapter()
	available := p.IsAvailable()
	if available {
		fmt.Println("[CONVERT] pandoc detected, using CLI conversion")
	} else {
		fmt.Println("[CONVERT] pandoc not found, using native converter")
	}
	return &Normalizer{pandoc: p, usePandoc: available}
}

// Normalize converts one HTML file and returns the path of the
// written Markdown file. Errors are recoverable by design: the caller
// falls back to default records when normalization fails.
func (n *Normalizer) Normalize(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	sanitizer := NewSanitizer()
	cleaned, err := sanitizer.Sanitize(string(raw))
	if err != nil {
		return "", fmt.Errorf("sanitize %s: %w", path, err)
	}

	var markdown string
	if n.usePandoc {
		markdown, err = n.pandoc.HTMLToMarkdown(cleaned)
		if err != nil {
			fmt.Printf("[CONVERT] [WARNING] pandoc failed for %s, falling back to native: %v\n", path, err)
			markdown, err = NativeHTMLToMarkdown(cleaned)
		}
	} else {
		markdown, err = NativeHTMLToMarkdown(cleaned)
	}
	if err != nil {
		return "", fmt.Errorf("convert %s: %w", path, err)
	}

	markdown = sanitizer.RestoreTables(markdown)
	if strings.TrimSpace(markdown) == "" {
		return "", fmt.Errorf("conversion of %s produced no content", path)
	}

	mdPath := markdownPath(path)
	if err := os.WriteFile(mdPath, []byte(markdown), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", mdPath, err)
	}

	fmt.Printf("[CONVERT] %s -> %s (%d tables)\n", path, mdPath, sanitizer.TableCount())
	return mdPath, nil
}

// markdownPath swaps the extension for .md.
func markdownPath(path string) string {
	if idx := strings.LastIndex(path, "."); idx > strings.LastIndex(path, "/") {
		return path[:idx] + ".md"
	}
	return path + ".md"
}
