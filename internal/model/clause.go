package model

// Citation points at supporting material for a clause interpretation
type Citation struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Clause is a semantically meaningful excerpt of the document with
// interpretation attached. Simple and Why are always non-empty, including
// clauses produced by the heuristic fallback engine.
type Clause struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Original  string     `json:"original"` // redacted source excerpt
	Simple    string     `json:"simple"`   // plain-language meaning
	Why       string     `json:"why"`      // why it matters
	Risk      RiskLevel  `json:"risk"`
	Page      int        `json:"page,omitempty"` // 1-based; 0 = not yet assigned
	Citations []Citation `json:"citations,omitempty"`
}
