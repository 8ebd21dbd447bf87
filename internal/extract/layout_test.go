package extract

import (
	"strings"
	"testing"
)

func TestBoundingBoxFromPolygon(t *testing.T) {
	points := []Point{
		{X: 0.1, Y: 0.2},
		{X: 0.9, Y: 0.2},
		{X: 0.9, Y: 0.25},
		{X: 0.1, Y: 0.25},
	}

	box := BoundingBoxFromPolygon(points)

	if box.X != 0.1 || box.Y != 0.2 {
		t.Errorf("unexpected origin: (%v, %v)", box.X, box.Y)
	}
	if box.W != 0.8 {
		t.Errorf("expected width 0.8, got %v", box.W)
	}
	if box.H != 0.05 {
		t.Errorf("expected height 0.05, got %v", box.H)
	}
}

func TestBoundingBoxFromPolygon_Degenerate(t *testing.T) {
	// Fewer than four points gets the full-width thin default, not an error
	box := BoundingBoxFromPolygon([]Point{{X: 0.3, Y: 0.3}, {X: 0.5, Y: 0.5}})

	if box.X != 0 || box.Y != 0 || box.W != 1 || box.H != 0.05 {
		t.Errorf("expected default bbox {0 0 1 0.05}, got %+v", box)
	}

	if box := BoundingBoxFromPolygon(nil); box.W != 1 || box.H != 0.05 {
		t.Errorf("expected default bbox for nil polygon, got %+v", box)
	}
}

func TestSegmentsFromPage_PrefersLines(t *testing.T) {
	lines := []Block{
		{Text: "The Tenant shall pay rent monthly.", Polygon: rect(0.1, 0.1, 0.8, 0.02)},
		{Text: "  ", Polygon: rect(0.1, 0.13, 0.8, 0.02)},
		{Text: "Late payments incur a fee.", Polygon: rect(0.1, 0.16, 0.8, 0.02)},
	}
	paragraphs := []Block{
		{Text: "Should not be used when lines exist.", Polygon: rect(0, 0, 1, 1)},
	}

	segments := SegmentsFromPage(2, lines, paragraphs)

	if len(segments) != 2 {
		t.Fatalf("expected 2 segments (blank line dropped), got %d", len(segments))
	}
	if segments[0].Page != 2 {
		t.Errorf("expected page 2, got %d", segments[0].Page)
	}
	if segments[0].Text != "The Tenant shall pay rent monthly." {
		t.Errorf("unexpected text: %q", segments[0].Text)
	}
}

func TestSegmentsFromPage_ParagraphFallback(t *testing.T) {
	paragraphs := []Block{
		{
			Text:    "First sentence. Second sentence. Third one here.",
			Polygon: rect(0.1, 0.2, 0.8, 0.3),
		},
	}

	segments := SegmentsFromPage(1, nil, paragraphs)

	if len(segments) != 3 {
		t.Fatalf("expected 3 sentence segments, got %d", len(segments))
	}

	// Height divided evenly, segments stacked
	for i, seg := range segments {
		if !almostEqual(seg.BBox.H, 0.1) {
			t.Errorf("segment %d: expected height 0.1, got %v", i, seg.BBox.H)
		}
		wantY := 0.2 + float64(i)*0.1
		if !almostEqual(seg.BBox.Y, wantY) {
			t.Errorf("segment %d: expected y %v, got %v", i, wantY, seg.BBox.Y)
		}
		if seg.BBox.X != 0.1 || seg.BBox.W != 0.8 {
			t.Errorf("segment %d: horizontal extent not preserved: %+v", i, seg.BBox)
		}
	}
}

func TestSplitSentences(t *testing.T) {
	sentences := SplitSentences("This is one. This is two! Is this three? Yes.")

	if len(sentences) != 4 {
		t.Fatalf("expected 4 sentences, got %d: %v", len(sentences), sentences)
	}
	if sentences[2] != "Is this three?" {
		t.Errorf("unexpected sentence: %q", sentences[2])
	}
}

func TestSplitSentences_NoFalseSplits(t *testing.T) {
	// Decimal point with no following whitespace must not split
	sentences := SplitSentences("Interest accrues at 1.5% per month until paid.")

	if len(sentences) != 1 {
		t.Errorf("expected 1 sentence, got %d: %v", len(sentences), sentences)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		filename string
		want     Format
	}{
		{"pdf magic", "%PDF-1.7 rest", "doc.bin", FormatPDF},
		{"html doctype", "<!DOCTYPE html><html></html>", "page", FormatHTML},
		{"html tag", "  <html lang=\"en\">", "page", FormatHTML},
		{"pdf extension", "binary junk", "contract.PDF", FormatPDF},
		{"htm extension", "plain words", "page.htm", FormatHTML},
		{"plain text", "just some text", "notes.txt", FormatText},
		{"unknown", "whatever", "file.docx", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFormat([]byte(tt.data), tt.filename); got != tt.want {
				t.Errorf("DetectFormat(%q, %q) = %v, want %v", tt.data, tt.filename, got, tt.want)
			}
		})
	}
}

func TestExtractHTML(t *testing.T) {
	doc := `<html><head>
	<script>var hidden = "should not appear";</script>
	<style>.x { color: red }</style>
	</head><body>
	<h1>Service Agreement</h1>
	<p>The parties agree to the following terms.</p>
	</body></html>`

	result, err := ExtractHTML([]byte(doc))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	if !strings.Contains(result.Text, "Service Agreement") {
		t.Errorf("expected heading text, got %q", result.Text)
	}
	if strings.Contains(result.Text, "should not appear") {
		t.Errorf("script text leaked into output: %q", result.Text)
	}
	if len(result.Pages) != 1 || result.Pages[0].Number != 1 {
		t.Errorf("expected one page numbered 1, got %+v", result.Pages)
	}
}

func TestExtractText_Empty(t *testing.T) {
	if _, err := ExtractText([]byte("   \n\t ")); err != ErrNoText {
		t.Errorf("expected ErrNoText, got %v", err)
	}
}

// rect builds a four-point rectangle polygon
func rect(x, y, w, h float64) []Point {
	return []Point{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}
}

func almostEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
