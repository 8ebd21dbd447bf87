package model

// BBox is a normalized rectangle in [0,1] page coordinates, origin top-left
type BBox struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// DefaultBBox is the full-width thin box substituted when layout geometry
// is missing or degenerate (fewer than four polygon corners).
func DefaultBBox() BBox {
	return BBox{X: 0, Y: 0, W: 1, H: 0.05}
}

// RawSegment is a positioned unit of text straight out of layout extraction:
// unlabeled and, at that point, unredacted.
type RawSegment struct {
	Page int    `json:"page"` // 1-based
	BBox BBox   `json:"bbox"`
	Text string `json:"text"`
}

// Segment is a RawSegment after redaction and risk labeling. Segments are
// built once per analysis run and never mutated afterwards.
type Segment struct {
	ID     string    `json:"id"`
	Page   int       `json:"page"` // 1-based; never exceeds the document page count
	BBox   BBox      `json:"bbox"`
	Text   string    `json:"text"` // redacted
	Risk   RiskLevel `json:"risk"`
	Simple string    `json:"simple"` // one-sentence plain-language explanation
}
