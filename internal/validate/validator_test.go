package validate

import (
	"testing"

	"github.com/mvoren/clauselens/internal/model"
)

func goodResult() *model.AnalysisResult {
	return &model.AnalysisResult{
		Summary:     "A well-formed result.",
		OverallRisk: model.RiskHigh,
		Clauses: []model.Clause{
			{ID: "clause-1", Title: "Liability", Simple: "You carry the risk.", Why: "It can cost you.", Risk: model.RiskHigh, Page: 1},
			{ID: "clause-2", Title: "Payment", Simple: "Pay monthly.", Why: "Deadlines matter.", Risk: model.RiskMedium, Page: 2},
		},
		Segments: []model.Segment{
			{ID: "seg-1", Page: 1, BBox: model.DefaultBBox(), Text: "x", Risk: model.RiskLow, Simple: "ok"},
		},
		PageAnalysis: []model.PageAnalysis{
			{PageNumber: 1, Summary: "p1", KeyPoints: []model.KeyPoint{}, RiskLevel: model.RiskLow},
			{PageNumber: 2, Summary: "p2", KeyPoints: []model.KeyPoint{}, RiskLevel: model.RiskLow},
		},
	}
}

func hasIssue(issues []Issue, code string) bool {
	for _, i := range issues {
		if i.Code == code {
			return true
		}
	}
	return false
}

func TestValidator_WellFormed(t *testing.T) {
	v := NewValidator()

	issues := v.Check(goodResult(), 2)
	if len(issues) != 0 {
		t.Errorf("expected no issues, got %v", issues)
	}
}

func TestValidator_PageCoverage(t *testing.T) {
	v := NewValidator()

	result := goodResult()
	result.PageAnalysis = result.PageAnalysis[:1]

	issues := v.Check(result, 2)
	if !hasIssue(issues, "page_coverage") {
		t.Errorf("expected page_coverage issue, got %v", issues)
	}
}

func TestValidator_DuplicateAndOutOfRangePages(t *testing.T) {
	v := NewValidator()

	result := goodResult()
	result.PageAnalysis = []model.PageAnalysis{
		{PageNumber: 1}, {PageNumber: 1}, {PageNumber: 7},
	}

	issues := v.Check(result, 2)
	if !hasIssue(issues, "page_duplicate") {
		t.Errorf("expected page_duplicate issue, got %v", issues)
	}
	if !hasIssue(issues, "page_range") {
		t.Errorf("expected page_range issue, got %v", issues)
	}
}

func TestValidator_RiskAggregation(t *testing.T) {
	v := NewValidator()

	result := goodResult()
	result.OverallRisk = model.RiskLow

	issues := v.Check(result, 2)
	if !hasIssue(issues, "risk_aggregation") {
		t.Errorf("expected risk_aggregation issue, got %v", issues)
	}
}

func TestValidator_ClauseContent(t *testing.T) {
	v := NewValidator()

	result := goodResult()
	result.Clauses[0].Simple = ""
	result.Clauses[1].Why = result.Clauses[1].Title

	issues := v.Check(result, 2)
	if !hasIssue(issues, "clause_content") {
		t.Errorf("expected clause_content issue, got %v", issues)
	}
	if !hasIssue(issues, "clause_placeholder") {
		t.Errorf("expected clause_placeholder issue, got %v", issues)
	}
}

func TestValidator_InvalidClauseRisk(t *testing.T) {
	v := NewValidator()

	result := goodResult()
	result.Clauses[1].Risk = "catastrophic"

	issues := v.Check(result, 2)
	if !hasIssue(issues, "clause_risk") {
		t.Errorf("expected clause_risk issue, got %v", issues)
	}
}

func TestValidator_SegmentPageBounds(t *testing.T) {
	v := NewValidator()

	result := goodResult()
	result.Segments = append(result.Segments, model.Segment{ID: "seg-2", Page: 9})

	issues := v.Check(result, 2)
	if !hasIssue(issues, "segment_page") {
		t.Errorf("expected segment_page issue, got %v", issues)
	}
}
