package label

import (
	"strings"

	"github.com/mvoren/clauselens/internal/model"
)

// Risk keyword tiers. The same rule is given verbatim to the delegated
// labeling capability so both paths classify consistently: penalties,
// liability, auto-renewal, arbitration and termination fees are high;
// payment terms, notice periods, renewals and jurisdiction are medium;
// definitions, headers and boilerplate are low.
var (
	highRiskKeywords = []string{
		"penalty", "penalties", "liability", "liable", "indemnif",
		"auto-renew", "automatic renewal", "automatically renew",
		"arbitration", "termination fee", "liquidated damages",
		"waive", "waiver",
	}

	mediumRiskKeywords = []string{
		"payment", "payable", "fee", "notice period", "days notice",
		"renewal", "renew", "jurisdiction", "governing law", "venue",
		"interest", "late charge",
	}
)

var riskExplanations = map[model.RiskLevel]string{
	model.RiskHigh:   "This language can create significant obligations or costs and deserves close attention.",
	model.RiskMedium: "This sets terms you should be aware of, such as payments, deadlines, or legal venue.",
	model.RiskLow:    "This appears to be standard or definitional language.",
}

// ClassifySegment assigns a risk level and plain-language explanation to one
// segment using the deterministic keyword rule
func ClassifySegment(text string) (model.RiskLevel, string) {
	lower := strings.ToLower(text)

	for _, kw := range highRiskKeywords {
		if strings.Contains(lower, kw) {
			return model.RiskHigh, riskExplanations[model.RiskHigh]
		}
	}
	for _, kw := range mediumRiskKeywords {
		if strings.Contains(lower, kw) {
			return model.RiskMedium, riskExplanations[model.RiskMedium]
		}
	}
	return model.RiskLow, riskExplanations[model.RiskLow]
}
