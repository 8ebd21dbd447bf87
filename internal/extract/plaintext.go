package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractPlainText parses PDF bytes with the embedded parser and returns
// per-page text with no positioned segments. This is the fallback path when
// the delegated layout service is unavailable or fails.
func ExtractPlainText(data []byte) (*Result, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open PDF: %w", err)
	}

	result := &Result{}
	var full strings.Builder

	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)

		var pageText string
		if !page.V.IsNull() {
			text, err := page.GetPlainText(nil)
			if err == nil {
				pageText = strings.TrimSpace(text)
			}
			// A page that fails text extraction still gets an empty entry:
			// the page list must stay contiguous
		}

		result.Pages = append(result.Pages, Page{Number: i, Text: pageText})
		if pageText != "" {
			full.WriteString(pageText)
			full.WriteString("\n")
		}
	}

	result.Text = strings.TrimSpace(full.String())
	if result.Text == "" {
		return nil, ErrNoText
	}

	return result, nil
}
