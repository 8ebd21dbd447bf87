package model

// KeyPointType classifies a per-page finding. It mirrors RiskLevel plus a
// neutral informational tier.
type KeyPointType string

const (
	KeyPointLow    KeyPointType = "low"
	KeyPointMedium KeyPointType = "medium"
	KeyPointHigh   KeyPointType = "high"
	KeyPointInfo   KeyPointType = "info"
)

// KeyPoint is one finding on a page
type KeyPoint struct {
	Type        KeyPointType `json:"type"`
	Title       string       `json:"title"`
	Explanation string       `json:"explanation"`
}

// PageAnalysis is the per-page interpretation. A document's PageAnalysis
// list always covers pages 1..N contiguously: pages below the content
// threshold still get a minimal entry.
type PageAnalysis struct {
	PageNumber int        `json:"pageNumber"` // 1-based
	Text       string     `json:"-"`          // raw page text, transient, never serialized
	Summary    string     `json:"summary"`
	KeyPoints  []KeyPoint `json:"keyPoints"`
	RiskLevel  RiskLevel  `json:"riskLevel"`
	Clauses    []Clause   `json:"clauses,omitempty"`
}
