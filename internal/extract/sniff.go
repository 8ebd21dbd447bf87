package extract

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format identifies a supported input document format
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
	FormatText Format = "text"
)

// DetectFormat sniffs the document format from magic bytes, falling back to
// the filename extension
func DetectFormat(data []byte, filename string) Format {
	if bytes.HasPrefix(data, []byte("%PDF-")) {
		return FormatPDF
	}

	head := bytes.ToLower(bytes.TrimSpace(data))
	if len(head) > 512 {
		head = head[:512]
	}
	if bytes.HasPrefix(head, []byte("<!doctype html")) || bytes.HasPrefix(head, []byte("<html")) {
		return FormatHTML
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF
	case ".html", ".htm":
		return FormatHTML
	}
	return FormatText
}

// ExtractText handles non-PDF inputs that carry no layout information
func ExtractText(data []byte) (*Result, error) {
	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, ErrNoText
	}
	return &Result{
		Text:  text,
		Pages: []Page{{Number: 1, Text: text}},
	}, nil
}
