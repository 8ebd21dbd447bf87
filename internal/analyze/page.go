package analyze

import (
	"fmt"
	"strings"

	"github.com/mvoren/clauselens/internal/model"
)

// pageTopics are the topic categories the per-page analyzer scans for, in
// reporting order
var pageTopics = []Topic{
	TopicPayment,
	TopicTermination,
	TopicLiability,
	TopicArbitration,
	TopicConfidentiality,
	TopicIntellectualProperty,
}

// pageKeyPoints maps each page topic to its finding. The type reflects the
// topic's individual risk tier, not the page's aggregate: a payment finding
// is always medium even on a high-risk page.
var pageKeyPoints = map[Topic]model.KeyPoint{
	TopicPayment: {
		Type:        model.KeyPointMedium,
		Title:       "Payment Obligations",
		Explanation: "This page discusses amounts owed, payment timing, or related charges.",
	},
	TopicTermination: {
		Type:        model.KeyPointMedium,
		Title:       "Termination Conditions",
		Explanation: "This page addresses how the agreement can be ended.",
	},
	TopicLiability: {
		Type:        model.KeyPointHigh,
		Title:       "Liability and Risk Allocation",
		Explanation: "This page assigns responsibility for losses, damages, or claims.",
	},
	TopicArbitration: {
		Type:        model.KeyPointHigh,
		Title:       "Dispute Resolution",
		Explanation: "This page routes disputes to arbitration or another forum.",
	},
	TopicConfidentiality: {
		Type:        model.KeyPointMedium,
		Title:       "Confidentiality Requirements",
		Explanation: "This page restricts disclosure of information.",
	},
	TopicIntellectualProperty: {
		Type:        model.KeyPointMedium,
		Title:       "Intellectual Property Rights",
		Explanation: "This page allocates ownership of created work or inventions.",
	},
}

var pageTopicNames = map[Topic]string{
	TopicPayment:              "payment terms",
	TopicTermination:          "termination",
	TopicLiability:            "liability",
	TopicArbitration:          "dispute resolution",
	TopicConfidentiality:      "confidentiality",
	TopicIntellectualProperty: "intellectual property",
}

// PageAnalyzer independently interprets each page's raw text with the
// deterministic keyword scan; it never calls a delegated capability
type PageAnalyzer struct {
	minChars int
}

// NewPageAnalyzer creates a page analyzer. Pages shorter than minChars get
// a minimal-content entry instead of topic analysis.
func NewPageAnalyzer(minChars int) *PageAnalyzer {
	if minChars <= 0 {
		minChars = 50
	}
	return &PageAnalyzer{minChars: minChars}
}

// Analyze produces the PageAnalysis for one page. It always returns an
// entry, whatever the input looks like.
func (a *PageAnalyzer) Analyze(pageNumber int, text string, _ model.Language) model.PageAnalysis {
	trimmed := strings.TrimSpace(text)

	if len(trimmed) < a.minChars {
		return model.PageAnalysis{
			PageNumber: pageNumber,
			Text:       text,
			Summary:    fmt.Sprintf("Page %d contains minimal text content and was not analyzed for contract topics.", pageNumber),
			KeyPoints:  []model.KeyPoint{},
			RiskLevel:  model.RiskLow,
		}
	}

	topics := DetectTopics(trimmed)

	var (
		found     []Topic
		keyPoints []model.KeyPoint
	)
	for _, topic := range pageTopics {
		if topics[topic] {
			found = append(found, topic)
			keyPoints = append(keyPoints, pageKeyPoints[topic])
		}
	}

	risk := pageRisk(topics)

	if len(keyPoints) == 0 {
		keyPoints = append(keyPoints, genericKeyPoint(pageNumber))
	}

	return model.PageAnalysis{
		PageNumber: pageNumber,
		Text:       text,
		Summary:    buildPageSummary(pageNumber, trimmed, found, risk),
		KeyPoints:  keyPoints,
		RiskLevel:  risk,
	}
}

// pageRisk applies the page-level aggregation rule: liability or
// arbitration present means high; any other scanned topic means medium
func pageRisk(topics map[Topic]bool) model.RiskLevel {
	if topics[TopicLiability] || topics[TopicArbitration] {
		return model.RiskHigh
	}
	if topics[TopicPayment] || topics[TopicTermination] || topics[TopicConfidentiality] || topics[TopicIntellectualProperty] {
		return model.RiskMedium
	}
	return model.RiskLow
}

// genericKeyPoint covers pages where no scanned topic appears
func genericKeyPoint(pageNumber int) model.KeyPoint {
	if pageNumber == 1 {
		return model.KeyPoint{
			Type:        model.KeyPointInfo,
			Title:       "Document Introduction",
			Explanation: "This page introduces the document and its parties.",
		}
	}
	return model.KeyPoint{
		Type:        model.KeyPointInfo,
		Title:       "General Provisions",
		Explanation: "This page contains general contractual language without flagged topics.",
	}
}

// buildPageSummary names the detected topics, appends a caution matched to
// the page's risk tier, and quotes a short verbatim snippet as evidence
func buildPageSummary(pageNumber int, text string, found []Topic, risk model.RiskLevel) string {
	var b strings.Builder

	if len(found) == 0 {
		fmt.Fprintf(&b, "Page %d contains general contractual language with no flagged topics.", pageNumber)
	} else {
		names := make([]string, len(found))
		for i, t := range found {
			names[i] = pageTopicNames[t]
		}
		fmt.Fprintf(&b, "Page %d covers %s.", pageNumber, strings.Join(names, ", "))
	}

	switch risk {
	case model.RiskHigh:
		b.WriteString(" It contains language that can significantly shift risk or limit your options; read it closely.")
	case model.RiskMedium:
		b.WriteString(" It sets terms you should understand before agreeing.")
	default:
		b.WriteString(" Nothing on this page stands out as unusual.")
	}

	snippet := text
	if len(snippet) > 120 {
		snippet = snippet[:120] + "..."
	}
	fmt.Fprintf(&b, " Excerpt: %q", snippet)

	return b.String()
}
