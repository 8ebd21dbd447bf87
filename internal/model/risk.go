package model

// RiskLevel classifies how much attention a clause or segment deserves
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// severity defines the total order low < medium < high used for aggregation
var severity = map[RiskLevel]int{
	RiskLow:    0,
	RiskMedium: 1,
	RiskHigh:   2,
}

// Valid reports whether the level is one of the three known values
func (r RiskLevel) Valid() bool {
	_, ok := severity[r]
	return ok
}

// Severity returns the numeric rank of the level (low=0, medium=1, high=2).
// Unknown levels rank below low so they never win aggregation.
func (r RiskLevel) Severity() int {
	if s, ok := severity[r]; ok {
		return s
	}
	return -1
}

// MaxRisk returns the higher of two risk levels
func MaxRisk(a, b RiskLevel) RiskLevel {
	if b.Severity() > a.Severity() {
		return b
	}
	return a
}

// AggregateRisk returns the highest risk level present among the clauses.
// An empty clause list aggregates to low.
func AggregateRisk(clauses []Clause) RiskLevel {
	overall := RiskLow
	for _, c := range clauses {
		overall = MaxRisk(overall, c.Risk)
	}
	return overall
}

// RiskDistribution counts clauses per risk level (used by summary templates)
type RiskDistribution struct {
	High   int
	Medium int
	Low    int
}

// CountRisks tallies the clause list by risk level
func CountRisks(clauses []Clause) RiskDistribution {
	var d RiskDistribution
	for _, c := range clauses {
		switch c.Risk {
		case RiskHigh:
			d.High++
		case RiskMedium:
			d.Medium++
		default:
			d.Low++
		}
	}
	return d
}
