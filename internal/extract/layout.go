package extract

import (
	"strings"

	"github.com/mvoren/clauselens/internal/model"
)

// Point is one vertex of a layout polygon in normalized page coordinates
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BoundingBoxFromPolygon derives a normalized rectangle from the top-left and
// bottom-right corners of a four-point polygon. Degenerate polygons (fewer
// than four points) yield the full-width thin default box instead of failing.
func BoundingBoxFromPolygon(points []Point) model.BBox {
	if len(points) < 4 {
		return model.DefaultBBox()
	}

	topLeft := points[0]
	bottomRight := points[2]

	return model.BBox{
		X: topLeft.X,
		Y: topLeft.Y,
		W: bottomRight.X - topLeft.X,
		H: bottomRight.Y - topLeft.Y,
	}
}

// Block is one layout unit (line or paragraph) reported by the layout service
type Block struct {
	Text    string  `json:"text"`
	Polygon []Point `json:"polygon"`
}

// SegmentsFromPage converts one page's layout blocks into raw segments.
// Line-level units are preferred; when a page yields zero lines, each
// paragraph is split into sentence-like segments that share the paragraph's
// horizontal extent and divide its height evenly.
func SegmentsFromPage(page int, lines, paragraphs []Block) []model.RawSegment {
	var segments []model.RawSegment

	if len(lines) > 0 {
		for _, line := range lines {
			text := strings.TrimSpace(line.Text)
			if text == "" {
				continue
			}
			segments = append(segments, model.RawSegment{
				Page: page,
				BBox: BoundingBoxFromPolygon(line.Polygon),
				Text: text,
			})
		}
		return segments
	}

	for _, para := range paragraphs {
		segments = append(segments, splitParagraph(page, para)...)
	}
	return segments
}

// splitParagraph breaks a paragraph block into sentence segments, stacking
// them vertically inside the paragraph's bounding box
func splitParagraph(page int, para Block) []model.RawSegment {
	sentences := SplitSentences(para.Text)
	if len(sentences) == 0 {
		return nil
	}

	box := BoundingBoxFromPolygon(para.Polygon)
	height := box.H / float64(len(sentences))

	segments := make([]model.RawSegment, 0, len(sentences))
	for i, sentence := range sentences {
		segments = append(segments, model.RawSegment{
			Page: page,
			BBox: model.BBox{
				X: box.X,
				Y: box.Y + float64(i)*height,
				W: box.W,
				H: height,
			},
			Text: sentence,
		})
	}
	return segments
}

// SplitSentences splits text on sentence-terminal punctuation followed by
// whitespace
func SplitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	for i, r := range text {
		current.WriteRune(r)

		if r == '.' || r == '!' || r == '?' {
			// Only break when whitespace follows, to avoid splitting on
			// abbreviations and decimals
			if i+1 < len(text) && (text[i+1] == ' ' || text[i+1] == '\t') {
				if sentence := strings.TrimSpace(current.String()); sentence != "" {
					sentences = append(sentences, sentence)
				}
				current.Reset()
			}
		}
	}

	if sentence := strings.TrimSpace(current.String()); sentence != "" {
		sentences = append(sentences, sentence)
	}

	return sentences
}
