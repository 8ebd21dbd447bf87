package model

import "time"

// AnalysisResult is the complete output of one analysis run. The pipeline
// orchestrator exclusively owns its assembly; consumers only read it.
type AnalysisResult struct {
	Summary      string         `json:"summary"`
	OverallRisk  RiskLevel      `json:"overallRisk"`
	Clauses      []Clause       `json:"clauses"`
	Language     Language       `json:"language"`
	Segments     []Segment      `json:"segments,omitempty"`
	PageAnalysis []PageAnalysis `json:"pageAnalysis,omitempty"`

	AnalyzedAt time.Time `json:"analyzed_at"`
	Engine     string    `json:"engine,omitempty"` // "delegated" or "heuristic"
}

// Engine names recorded on the result for transparency about which path
// produced the document-level analysis.
const (
	EngineDelegated = "delegated"
	EngineHeuristic = "heuristic"
)
