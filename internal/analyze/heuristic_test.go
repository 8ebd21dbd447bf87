package analyze

import (
	"strings"
	"testing"

	"github.com/mvoren/clauselens/internal/model"
)

func TestDetectTopics(t *testing.T) {
	text := "The Borrower shall repay the principal amount with interest rate of 5%. Late fee applies. Binding ARBITRATION governs disputes."

	topics := DetectTopics(text)

	for _, want := range []Topic{TopicLoan, TopicPenalty, TopicArbitration} {
		if !topics[want] {
			t.Errorf("expected topic %s detected", want)
		}
	}
	if topics[TopicRealEstate] {
		t.Errorf("did not expect real_estate topic")
	}
}

func TestDetectDocumentType_Priority(t *testing.T) {
	// Employment outranks every other document type topic
	topics := map[Topic]bool{
		TopicService:    true,
		TopicLoan:       true,
		TopicEmployment: true,
	}
	if dt := DetectDocumentType(topics); dt != DocEmployment {
		t.Errorf("expected employment, got %v", dt)
	}

	// Without employment, real estate comes next
	topics = map[Topic]bool{
		TopicRealEstate: true,
		TopicService:    true,
	}
	if dt := DetectDocumentType(topics); dt != DocRealEstate {
		t.Errorf("expected real_estate, got %v", dt)
	}

	if dt := DetectDocumentType(map[Topic]bool{}); dt != DocGeneral {
		t.Errorf("expected general for no topics, got %v", dt)
	}
}

func TestHeuristicEngine_NoKeywords(t *testing.T) {
	engine := NewHeuristicEngine(4)

	text := strings.Repeat("Plain prose with nothing notable in it whatsoever. ", 20)
	result := engine.Analyze(text, model.LangEnglish)

	// Intro plus fillers satisfy the minimum
	if len(result.Clauses) < 4 {
		t.Fatalf("expected at least 4 clauses, got %d", len(result.Clauses))
	}
	if result.Clauses[0].Title != "Document Introduction" {
		t.Errorf("first clause should be the intro, got %q", result.Clauses[0].Title)
	}
	if result.Engine != model.EngineHeuristic {
		t.Errorf("expected heuristic engine marker, got %q", result.Engine)
	}
	if result.OverallRisk == "" {
		t.Error("overall risk must be set")
	}
	if !strings.Contains(result.Summary, "not legal advice") {
		t.Errorf("summary must carry the disclaimer, got %q", result.Summary)
	}
}

func TestHeuristicEngine_LoanDocument(t *testing.T) {
	engine := NewHeuristicEngine(4)

	text := strings.Repeat("The Borrower promises to repay the Lender the principal amount of $10,000 plus interest rate charges as scheduled. ", 10)
	result := engine.Analyze(text, model.LangEnglish)

	if result.Clauses[0].Title != "Loan Agreement Overview" {
		t.Errorf("expected loan intro, got %q", result.Clauses[0].Title)
	}

	// Fillers are type-specific
	titles := make(map[string]bool)
	for _, c := range result.Clauses {
		titles[c.Title] = true
	}
	if len(result.Clauses) < 4 {
		t.Fatalf("expected at least 4 clauses, got %d", len(result.Clauses))
	}
	if !titles["Interest Rate and Payment Schedule"] && !titles["Loan Terms"] {
		t.Errorf("expected loan-specific clauses, got %v", titles)
	}
}

func TestHeuristicEngine_TerminationElevatedByPenalty(t *testing.T) {
	engine := NewHeuristicEngine(4)

	text := strings.Repeat("Either party may terminate this agreement. Early termination incurs a penalty of two months' charges. ", 10)
	result := engine.Analyze(text, model.LangEnglish)

	var termination *model.Clause
	for i := range result.Clauses {
		if result.Clauses[i].Title == "Termination Conditions" {
			termination = &result.Clauses[i]
		}
	}
	if termination == nil {
		t.Fatalf("expected a termination clause, got %+v", result.Clauses)
	}
	if termination.Risk != model.RiskHigh {
		t.Errorf("termination with penalty language should be high risk, got %v", termination.Risk)
	}
	if result.OverallRisk != model.RiskHigh {
		t.Errorf("overall risk should aggregate to high, got %v", result.OverallRisk)
	}
}

func TestHeuristicEngine_TerminationAloneIsMedium(t *testing.T) {
	engine := NewHeuristicEngine(4)

	text := strings.Repeat("Either party may terminate this agreement with thirty days written notice to the other party. ", 10)
	result := engine.Analyze(text, model.LangEnglish)

	for _, c := range result.Clauses {
		if c.Title == "Termination Conditions" && c.Risk != model.RiskMedium {
			t.Errorf("termination without penalty should stay medium, got %v", c.Risk)
		}
	}
}

func TestHeuristicEngine_SequentialIDs(t *testing.T) {
	engine := NewHeuristicEngine(4)

	result := engine.Analyze(strings.Repeat("liability damages arbitration payment termination. ", 20), model.LangEnglish)

	for i, c := range result.Clauses {
		want := "clause-" + string(rune('1'+i))
		if i < 9 && c.ID != want {
			t.Errorf("clause %d: expected ID %q, got %q", i, want, c.ID)
		}
	}
}

func TestExcerptWindow(t *testing.T) {
	short := "tiny document"
	if got := excerptWindow(short, 3); got != short {
		t.Errorf("short text should be returned whole, got %q", got)
	}

	long := strings.Repeat("a", 1000)
	first := excerptWindow(long, 0)
	second := excerptWindow(long, 1)
	if len(first) != 200 || len(second) != 200 {
		t.Errorf("expected 200-char windows, got %d and %d", len(first), len(second))
	}

	// Late indices clamp to the tail instead of running past the end
	tail := excerptWindow(long, 50)
	if len(tail) != 200 {
		t.Errorf("clamped window should still be 200 chars, got %d", len(tail))
	}
}
