package model

import "testing"

func TestRiskLevel_Valid(t *testing.T) {
	for _, r := range []RiskLevel{RiskLow, RiskMedium, RiskHigh} {
		if !r.Valid() {
			t.Errorf("expected %q valid", r)
		}
	}
	if RiskLevel("severe").Valid() {
		t.Error("expected unknown level invalid")
	}
}

func TestMaxRisk(t *testing.T) {
	if MaxRisk(RiskLow, RiskHigh) != RiskHigh {
		t.Error("expected high to win")
	}
	if MaxRisk(RiskMedium, RiskLow) != RiskMedium {
		t.Error("expected medium to win")
	}
	// Unknown levels never win
	if MaxRisk(RiskLow, RiskLevel("bogus")) != RiskLow {
		t.Error("expected known level to win over unknown")
	}
}

func TestAggregateRisk(t *testing.T) {
	clauses := []Clause{
		{Risk: RiskLow},
		{Risk: RiskHigh},
		{Risk: RiskMedium},
	}
	if got := AggregateRisk(clauses); got != RiskHigh {
		t.Errorf("expected high, got %v", got)
	}

	if got := AggregateRisk(nil); got != RiskLow {
		t.Errorf("empty clause list should aggregate to low, got %v", got)
	}
}

func TestCountRisks(t *testing.T) {
	d := CountRisks([]Clause{
		{Risk: RiskHigh},
		{Risk: RiskHigh},
		{Risk: RiskMedium},
		{Risk: RiskLow},
	})
	if d.High != 2 || d.Medium != 1 || d.Low != 1 {
		t.Errorf("unexpected distribution: %+v", d)
	}
}

func TestParseLanguage(t *testing.T) {
	for _, code := range []string{"en", "es", "fr", "de", "pt"} {
		if _, err := ParseLanguage(code); err != nil {
			t.Errorf("expected %q accepted: %v", code, err)
		}
	}

	if _, err := ParseLanguage("zz"); err == nil {
		t.Error("expected unknown language rejected")
	}
	if _, err := ParseLanguage("EN"); err == nil {
		t.Error("language codes are case-sensitive; expected rejection")
	}
}

func TestDefaultBBox(t *testing.T) {
	box := DefaultBBox()
	if box.X != 0 || box.Y != 0 || box.W != 1 || box.H != 0.05 {
		t.Errorf("unexpected default bbox: %+v", box)
	}
}
