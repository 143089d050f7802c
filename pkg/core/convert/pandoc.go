package convert

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

// spanAttrRe matches Pandoc span attributes like [text]{style="..."}.
var spanAttrRe = regexp.MustCompile(`\[([^\]]+)\]\{[^}]*\}`)

// divBlockRe matches Pandoc fenced div markers like ::: {style="..."}.
var divBlockRe = regexp.MustCompile(`(?m)^:::\s*(?:\{[^}]*\})?\s*$`)

// PandocAdapter converts HTML to Markdown through the Pandoc CLI when
// it is installed. Pandoc produces far cleaner output on messy filing
// HTML than any pure-Go renderer; the native renderer is the fallback.
type PandocAdapter struct {
	Timeout time.Duration
}

// NewPandocAdapter returns an adapter with the default 30s timeout.
func NewPandocAdapter() *PandocAdapter {
	return &PandocAdapter{Timeout: 30 * time.Second}
}

// IsAvailable checks whether the pandoc binary is on PATH.
func (p *PandocAdapter) IsAvailable() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return exec.CommandContext(ctx, "pandoc", "--version").Run() == nil
}

// HTMLToMarkdown pipes HTML through pandoc with pipe tables and no
// line wrapping (wrapping breaks table rows).
func (p *PandocAdapter) HTMLToMarkdown(html string) (string, error) {
	timeout := p.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "pandoc",
		"-f", "html",
		"-t", "markdown+pipe_tables",
		"--wrap=none",
		"-",
	)
	cmd.Stdin = strings.NewReader(html)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("pandoc timeout after %v", timeout)
		}
		return "", fmt.Errorf("pandoc failed: %v, stderr: %s", err, stderr.String())
	}

	return cleanPandocArtifacts(stdout.String()), nil
}

// cleanPandocArtifacts strips span attributes and fenced div markers
// Pandoc emits for styled HTML.
func cleanPandocArtifacts(md string) string {
	md = spanAttrRe.ReplaceAllString(md, "$1")
	return divBlockRe.ReplaceAllString(md, "")
}
