package analyze

import (
	"fmt"
	"time"

	"github.com/mvoren/clauselens/internal/model"
)

// HeuristicEngine produces a complete document analysis from keyword
// detection and templated clauses, with no dependency on any delegated
// capability. It backs the document analyzer whenever generation is
// disabled or fails.
type HeuristicEngine struct {
	minClauses int
}

// NewHeuristicEngine creates the fallback engine. minClauses is the floor
// below which document-type fillers are appended.
func NewHeuristicEngine(minClauses int) *HeuristicEngine {
	if minClauses <= 0 {
		minClauses = 4
	}
	return &HeuristicEngine{minClauses: minClauses}
}

// Analyze builds the full templated analysis for the document text
func (e *HeuristicEngine) Analyze(text string, lang model.Language) *model.AnalysisResult {
	topics := DetectTopics(text)
	docType := DetectDocumentType(topics)

	clauses := e.generateClauses(text, topics, docType)

	return &model.AnalysisResult{
		Summary:     buildHeuristicSummary(docType, clauses),
		OverallRisk: model.AggregateRisk(clauses),
		Clauses:     clauses,
		Language:    lang,
		AnalyzedAt:  time.Now().UTC(),
		Engine:      model.EngineHeuristic,
	}
}

// generateClauses emits the intro clause, one clause per detected topic in
// fixed enumeration order, and document-type fillers up to the minimum
func (e *HeuristicEngine) generateClauses(text string, topics map[Topic]bool, docType DocumentType) []model.Clause {
	noun := docTypeNouns[docType]
	var clauses []model.Clause

	intro := introTemplates[docType]
	clauses = append(clauses, model.Clause{
		ID:       fmt.Sprintf("clause-%d", len(clauses)+1),
		Title:    intro.Title,
		Original: excerptWindow(text, 0),
		Simple:   intro.Simple,
		Why:      intro.Why,
		Risk:     intro.Risk,
	})

	for _, topic := range topicOrder {
		if !topics[topic] {
			continue
		}
		tmpl := topicClauseTemplates[topic]

		risk := tmpl.Risk
		// Termination backed by penalty language is a costlier exit than
		// the template's default assumes
		if topic == TopicTermination && topics[TopicPenalty] {
			risk = model.RiskHigh
		}

		clauses = append(clauses, model.Clause{
			ID:       fmt.Sprintf("clause-%d", len(clauses)+1),
			Title:    tmpl.Title,
			Original: excerptWindow(text, len(clauses)),
			Simple:   fmt.Sprintf(tmpl.Simple, noun),
			Why:      tmpl.Why,
			Risk:     risk,
		})
	}

	for _, tmpl := range fillerTemplates[docType] {
		if len(clauses) >= e.minClauses {
			break
		}
		clauses = append(clauses, model.Clause{
			ID:       fmt.Sprintf("clause-%d", len(clauses)+1),
			Title:    tmpl.Title,
			Original: excerptWindow(text, len(clauses)),
			Simple:   tmpl.Simple,
			Why:      tmpl.Why,
			Risk:     tmpl.Risk,
		})
	}

	return clauses
}

// excerptWindow picks a deterministic 200-character window into the
// document so each clause carries a distinct, traceable excerpt
func excerptWindow(text string, index int) string {
	const window = 200

	if len(text) <= window {
		return text
	}

	start := (index + 1) * window
	if start > len(text)-window {
		start = len(text) - window
	}
	if start < 0 {
		start = 0
	}

	end := start + window
	if end > len(text) {
		end = len(text)
	}
	return text[start:end]
}

// buildHeuristicSummary reports the clause count and risk distribution in a
// single templated paragraph, always closing with the review disclaimer
func buildHeuristicSummary(docType DocumentType, clauses []model.Clause) string {
	dist := model.CountRisks(clauses)

	summary := fmt.Sprintf(
		"This %s was analyzed and %d notable provisions were identified: %d high-risk, %d medium-risk, and %d low-risk.",
		docTypeNouns[docType], len(clauses), dist.High, dist.Medium, dist.Low,
	)

	switch {
	case dist.High > 0:
		summary += " Several provisions can create significant obligations or costs and deserve careful reading before signing."
	case dist.Medium > 0:
		summary += " The identified provisions set terms worth understanding, though none appear unusually aggressive."
	default:
		summary += " The identified provisions appear largely standard."
	}

	summary += " This automated analysis is not legal advice; consider having the document reviewed by a qualified professional."
	return summary
}
