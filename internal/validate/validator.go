// Package validate checks AnalysisResult invariants before a result leaves
// the pipeline boundary.
package validate

import (
	"fmt"

	"github.com/mvoren/clauselens/internal/model"
)

// Issue is one invariant violation found in a result
type Issue struct {
	Code    string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Code, i.Message)
}

// Validator verifies the structural invariants of an assembled result:
// contiguous page coverage, risk aggregation, clause completeness, and
// segment page bounds
type Validator struct{}

// NewValidator creates a result validator
func NewValidator() *Validator {
	return &Validator{}
}

// Check returns all invariant violations in the result. An empty slice
// means the result is well-formed.
func (v *Validator) Check(result *model.AnalysisResult, pageCount int) []Issue {
	var issues []Issue

	issues = append(issues, v.checkPageCoverage(result, pageCount)...)
	issues = append(issues, v.checkRiskAggregation(result)...)
	issues = append(issues, v.checkClauses(result)...)
	issues = append(issues, v.checkSegments(result, pageCount)...)

	return issues
}

// checkPageCoverage verifies pageNumber values form exactly 1..N
func (v *Validator) checkPageCoverage(result *model.AnalysisResult, pageCount int) []Issue {
	if result.PageAnalysis == nil {
		return nil
	}

	var issues []Issue

	if len(result.PageAnalysis) != pageCount {
		issues = append(issues, Issue{
			Code:    "page_coverage",
			Message: fmt.Sprintf("expected %d page analyses, got %d", pageCount, len(result.PageAnalysis)),
		})
	}

	seen := make(map[int]bool)
	for _, pa := range result.PageAnalysis {
		if pa.PageNumber < 1 || pa.PageNumber > pageCount {
			issues = append(issues, Issue{
				Code:    "page_range",
				Message: fmt.Sprintf("page number %d outside 1..%d", pa.PageNumber, pageCount),
			})
		}
		if seen[pa.PageNumber] {
			issues = append(issues, Issue{
				Code:    "page_duplicate",
				Message: fmt.Sprintf("page number %d appears more than once", pa.PageNumber),
			})
		}
		seen[pa.PageNumber] = true
	}

	return issues
}

// checkRiskAggregation verifies overallRisk is the max clause risk
func (v *Validator) checkRiskAggregation(result *model.AnalysisResult) []Issue {
	expected := model.AggregateRisk(result.Clauses)
	if result.OverallRisk != expected {
		return []Issue{{
			Code:    "risk_aggregation",
			Message: fmt.Sprintf("overall risk %q does not match clause maximum %q", result.OverallRisk, expected),
		}}
	}
	return nil
}

// checkClauses verifies every clause carries real content
func (v *Validator) checkClauses(result *model.AnalysisResult) []Issue {
	var issues []Issue

	for _, c := range result.Clauses {
		if c.Simple == "" || c.Why == "" {
			issues = append(issues, Issue{
				Code:    "clause_content",
				Message: fmt.Sprintf("clause %q has empty explanation fields", c.ID),
			})
		}
		if c.Simple == c.Title || c.Why == c.Title {
			issues = append(issues, Issue{
				Code:    "clause_placeholder",
				Message: fmt.Sprintf("clause %q repeats its title as explanation", c.ID),
			})
		}
		if !c.Risk.Valid() {
			issues = append(issues, Issue{
				Code:    "clause_risk",
				Message: fmt.Sprintf("clause %q has unknown risk level %q", c.ID, c.Risk),
			})
		}
	}

	return issues
}

// checkSegments verifies no segment points past the document's page count
func (v *Validator) checkSegments(result *model.AnalysisResult, pageCount int) []Issue {
	var issues []Issue

	for _, s := range result.Segments {
		if s.Page < 1 || (pageCount > 0 && s.Page > pageCount) {
			issues = append(issues, Issue{
				Code:    "segment_page",
				Message: fmt.Sprintf("segment %q references page %d outside 1..%d", s.ID, s.Page, pageCount),
			})
		}
	}

	return issues
}
