package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// ExtractHTML pulls visible text out of an HTML document. The whole document
// is treated as a single logical page since HTML has no physical pagination.
func ExtractHTML(data []byte) (*Result, error) {
	doc, err := html.Parse(strings.NewReader(string(data)))
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(extractVisibleText(doc))
	if text == "" {
		return nil, ErrNoText
	}

	return &Result{
		Text:  text,
		Pages: []Page{{Number: 1, Text: text}},
	}, nil
}

// extractVisibleText extracts text nodes from HTML, skipping scripts/styles
func extractVisibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			// Skip script, style, noscript tags
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return buf.String()
}
