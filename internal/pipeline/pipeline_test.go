package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/mvoren/clauselens/internal/extract"
	"github.com/mvoren/clauselens/internal/model"
)

const leaseText = `RESIDENTIAL LEASE AGREEMENT

The Landlord leases the premises to the Tenant. The Tenant shall pay rent
monthly. Either party may terminate this lease with notice, and early
termination incurs a penalty. The Tenant shall be liable for damages to
the property. Contact the manager at manager@example.com or 555-123-4567.`

func newTestPipeline() *Pipeline {
	return New(model.DefaultConfig(), Deps{})
}

func TestPipeline_AnalyzeText(t *testing.T) {
	p := newTestPipeline()

	result, err := p.Analyze(context.Background(), []byte(leaseText), "lease.txt", model.LangEnglish)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if result.Summary == "" {
		t.Error("summary must not be empty")
	}
	if !result.OverallRisk.Valid() {
		t.Errorf("invalid overall risk: %q", result.OverallRisk)
	}
	if len(result.Clauses) < 4 {
		t.Errorf("expected at least 4 clauses, got %d", len(result.Clauses))
	}
	if result.Engine != model.EngineHeuristic {
		t.Errorf("no provider configured, expected heuristic engine, got %q", result.Engine)
	}
	if result.Language != model.LangEnglish {
		t.Errorf("expected language carried through, got %q", result.Language)
	}
}

func TestPipeline_PlaceholderSegments(t *testing.T) {
	p := newTestPipeline()

	result, err := p.Analyze(context.Background(), []byte(leaseText), "lease.txt", model.LangEnglish)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	// Text input yields no positioned segments, so one placeholder per
	// clause is synthesized for the overlay
	if len(result.Segments) != len(result.Clauses) {
		t.Errorf("expected %d placeholder segments, got %d", len(result.Clauses), len(result.Segments))
	}

	for i, seg := range result.Segments {
		if seg.Page < 1 {
			t.Errorf("segment %d: invalid page %d", i, seg.Page)
		}
		if seg.BBox.W != 0.9 || seg.BBox.H != 0.05 {
			t.Errorf("segment %d: unexpected geometry %+v", i, seg.BBox)
		}
		if !seg.Risk.Valid() {
			t.Errorf("segment %d: invalid risk %q", i, seg.Risk)
		}
	}
}

func TestPipeline_RedactsBeforeAnalysis(t *testing.T) {
	p := newTestPipeline()

	result, err := p.Analyze(context.Background(), []byte(leaseText), "lease.txt", model.LangEnglish)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	for _, c := range result.Clauses {
		if strings.Contains(c.Original, "manager@example.com") || strings.Contains(c.Original, "555-123-4567") {
			t.Errorf("clause %q carries unredacted PII: %q", c.ID, c.Original)
		}
	}
}

func TestPipeline_ClausePagesAssigned(t *testing.T) {
	p := newTestPipeline()

	result, err := p.Analyze(context.Background(), []byte(leaseText), "lease.txt", model.LangEnglish)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	pageCount := len(result.PageAnalysis)
	if pageCount == 0 {
		t.Fatal("expected page analyses")
	}
	for _, c := range result.Clauses {
		if c.Page < 1 || c.Page > pageCount {
			t.Errorf("clause %q assigned page %d outside 1..%d", c.ID, c.Page, pageCount)
		}
	}
}

func TestPipeline_EmptyDocument(t *testing.T) {
	p := newTestPipeline()

	if _, err := p.Analyze(context.Background(), []byte("   "), "empty.txt", model.LangEnglish); err == nil {
		t.Error("expected error for empty document")
	}
}

func TestPipeline_HTMLInput(t *testing.T) {
	p := newTestPipeline()

	doc := `<html><body><p>The Contractor shall indemnify the Client against all damages and liability arising from the services.</p></body></html>`

	result, err := p.Analyze(context.Background(), []byte(doc), "contract.html", model.LangEnglish)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if len(result.PageAnalysis) != 1 {
		t.Errorf("HTML is one logical page, got %d", len(result.PageAnalysis))
	}
	if result.OverallRisk != model.RiskHigh {
		t.Errorf("indemnification should aggregate to high, got %v", result.OverallRisk)
	}
}

// fakeLayout returns canned positioned segments
type fakeLayout struct{}

func (f *fakeLayout) Name() string { return "fake" }

func (f *fakeLayout) Extract(_ context.Context, _ []byte) (*extract.Result, error) {
	return &extract.Result{
		Text: "The Tenant waives all claims. Rent is payable monthly. Contact: jane@corp.com.",
		Segments: []model.RawSegment{
			{Page: 1, BBox: model.BBox{X: 0.1, Y: 0.1, W: 0.8, H: 0.05}, Text: "The Tenant waives all claims."},
			{Page: 1, BBox: model.BBox{X: 0.1, Y: 0.2, W: 0.8, H: 0.05}, Text: "Contact: jane@corp.com."},
		},
		Pages: []extract.Page{
			{Number: 1, Text: "The Tenant waives all claims. Rent is payable monthly. Contact: jane@corp.com."},
		},
	}, nil
}

func TestPipeline_LayoutSegmentsLabeled(t *testing.T) {
	p := New(model.DefaultConfig(), Deps{Layout: &fakeLayout{}})

	result, err := p.Analyze(context.Background(), []byte("%PDF-fake"), "doc.pdf", model.LangEnglish)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if len(result.Segments) != 2 {
		t.Fatalf("expected 2 labeled segments, got %d", len(result.Segments))
	}

	if result.Segments[0].ID != "seg-1" || result.Segments[1].ID != "seg-2" {
		t.Errorf("expected sequential segment IDs, got %q, %q", result.Segments[0].ID, result.Segments[1].ID)
	}

	// Waiver language classifies high without any provider
	if result.Segments[0].Risk != model.RiskHigh {
		t.Errorf("expected high risk for waiver segment, got %v", result.Segments[0].Risk)
	}

	// Segment text is redacted before labeling
	if strings.Contains(result.Segments[1].Text, "jane@corp.com") {
		t.Errorf("segment carries unredacted PII: %q", result.Segments[1].Text)
	}
	if !strings.Contains(result.Segments[1].Text, "[EMAIL]") {
		t.Errorf("expected email placeholder, got %q", result.Segments[1].Text)
	}

	// Geometry passes through untouched
	if result.Segments[0].BBox.X != 0.1 || result.Segments[0].BBox.W != 0.8 {
		t.Errorf("segment geometry altered: %+v", result.Segments[0].BBox)
	}
}

func TestDistributeClausePages(t *testing.T) {
	clauses := []model.Clause{
		{ID: "c1"}, {ID: "c2"}, {ID: "c3"}, {ID: "c4"},
	}

	distributeClausePages(clauses, 2)

	if clauses[0].Page != 1 || clauses[1].Page != 1 {
		t.Errorf("first half should land on page 1: %d, %d", clauses[0].Page, clauses[1].Page)
	}
	if clauses[2].Page != 2 || clauses[3].Page != 2 {
		t.Errorf("second half should land on page 2: %d, %d", clauses[2].Page, clauses[3].Page)
	}
}

func TestDistributeClausePages_PreservesAssigned(t *testing.T) {
	clauses := []model.Clause{
		{ID: "c1", Page: 5},
		{ID: "c2"},
	}

	distributeClausePages(clauses, 3)

	if clauses[0].Page != 5 {
		t.Errorf("content-derived page must not be overwritten, got %d", clauses[0].Page)
	}
	if clauses[1].Page < 1 || clauses[1].Page > 3 {
		t.Errorf("unassigned clause should land in range, got %d", clauses[1].Page)
	}
}

func TestDistributeClausePages_NoPages(t *testing.T) {
	clauses := []model.Clause{{ID: "c1"}}
	distributeClausePages(clauses, 0)

	if clauses[0].Page != 0 {
		t.Errorf("no page count means no assignment, got %d", clauses[0].Page)
	}
}

func TestPlaceholderSegments_Stacked(t *testing.T) {
	clauses := []model.Clause{
		{ID: "c1", Original: "a", Risk: model.RiskLow, Simple: "x", Page: 1},
		{ID: "c2", Original: "b", Risk: model.RiskHigh, Simple: "y", Page: 2},
	}

	segments := placeholderSegments(clauses)

	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if segments[0].BBox.Y >= segments[1].BBox.Y {
		t.Errorf("placeholders should stack downward: %v then %v", segments[0].BBox.Y, segments[1].BBox.Y)
	}
	if segments[1].Page != 2 {
		t.Errorf("placeholder should inherit clause page, got %d", segments[1].Page)
	}
	if segments[1].Risk != model.RiskHigh || segments[1].Simple != "y" {
		t.Errorf("placeholder should mirror clause label: %+v", segments[1])
	}
}
