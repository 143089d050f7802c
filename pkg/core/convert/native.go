package convert

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// NativeHTMLToMarkdown is the pure-Go fallback converter used when
// Pandoc is not installed. It walks the parse tree and emits headings,
// paragraphs, list items, and links. Images are dropped; links keep
// both text and target.
func NativeHTMLToMarkdown(htmlContent string) (string, error) {
	root, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var sb strings.Builder
	renderNode(&sb, root)

	// Collapse runs of blank lines left behind by nested blocks.
	lines := strings.Split(sb.String(), "\n")
	var out []string
	blank := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blank++
			if blank > 1 {
				continue
			}
			out = append(out, "")
			continue
		}
		blank = 0
		out = append(out, strings.TrimRight(line, " "))
	}
	return strings.TrimSpace(strings.Join(out, "\n")) + "\n", nil
}

func renderNode(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		text := strings.Join(strings.Fields(n.Data), " ")
		if text != "" {
			sb.WriteString(text)
			sb.WriteString(" ")
		}
		return
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "head", "img":
			return
		case "h1", "h2", "h3", "h4", "h5", "h6":
			level := int(n.Data[1] - '0')
			sb.WriteString("\n\n" + strings.Repeat("#", level) + " ")
			renderChildren(sb, n)
			sb.WriteString("\n\n")
			return
		case "p", "div", "section", "article":
			sb.WriteString("\n\n")
			renderChildren(sb, n)
			sb.WriteString("\n\n")
			return
		case "br":
			sb.WriteString("\n")
			return
		case "li":
			sb.WriteString("\n- ")
			renderChildren(sb, n)
			return
		case "ul", "ol":
			renderChildren(sb, n)
			sb.WriteString("\n\n")
			return
		case "a":
			href := attrVal(n, "href")
			text := nodeText(n)
			if text == "" {
				return
			}
			if href == "" || strings.HasPrefix(href, "#") {
				sb.WriteString(text + " ")
			} else {
				sb.WriteString(fmt.Sprintf("[%s](%s) ", text, href))
			}
			return
		case "b", "strong":
			text := nodeText(n)
			if text != "" {
				sb.WriteString("**" + text + "** ")
			}
			return
		}
	}
	renderChildren(sb, n)
}

func renderChildren(sb *strings.Builder, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderNode(sb, c)
	}
}

func attrVal(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
