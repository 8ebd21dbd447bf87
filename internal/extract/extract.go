package extract

import (
	"context"
	"errors"

	"github.com/mvoren/clauselens/internal/model"
)

// ErrNoText is the terminal extraction failure: no usable text could be
// obtained from the document by any path. It is the only error the pipeline
// surfaces to its caller.
var ErrNoText = errors.New("no usable text extracted from document")

// Result is the output of document extraction
type Result struct {
	// Text is the full document text
	Text string

	// Segments are positioned line/sentence units (layout path only)
	Segments []model.RawSegment

	// Pages holds per-page raw text, 1-based and contiguous
	Pages []Page
}

// Page is one physical page's raw text
type Page struct {
	Number int
	Text   string
}

// PageCount returns the number of physical pages in the result
func (r *Result) PageCount() int {
	return len(r.Pages)
}

// LayoutService is the delegated layout/OCR extraction capability. It fails
// with an error (never a silently empty result) so the caller can fall back
// to plain-text extraction.
type LayoutService interface {
	// Name returns the service name
	Name() string

	// Extract turns raw document bytes into full text plus positioned segments
	Extract(ctx context.Context, data []byte) (*Result, error)
}
