package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mvoren/clauselens/internal/jsonrepair"
	"github.com/mvoren/clauselens/internal/llm"
	"github.com/mvoren/clauselens/internal/model"
)

// minSalvageSummaryChars is the shortest salvaged summary worth keeping over
// the generic disclaimer
const minSalvageSummaryChars = 50

const genericSummary = "This document was processed, but a detailed automated summary could not be produced from the analysis output. " +
	"The document may contain complex or unusual language. This is not legal advice; have the document reviewed by a qualified professional."

// DocumentAnalyzer produces the top-level structured analysis from full
// document text. With a generation provider it delegates and then validates
// and repairs the untrusted output; without one (or when the provider
// fails) the heuristic engine takes over. It never returns an empty result.
type DocumentAnalyzer struct {
	provider llm.Provider // nil = heuristic only
	engine   *HeuristicEngine
	maxChars int
}

// NewDocumentAnalyzer creates a document analyzer
func NewDocumentAnalyzer(provider llm.Provider, engine *HeuristicEngine, maxChars int) *DocumentAnalyzer {
	if maxChars <= 0 {
		maxChars = 100_000
	}
	return &DocumentAnalyzer{
		provider: provider,
		engine:   engine,
		maxChars: maxChars,
	}
}

// Analyze runs the delegated or heuristic document analysis over redacted
// document text
func (a *DocumentAnalyzer) Analyze(ctx context.Context, text string, lang model.Language) *model.AnalysisResult {
	if len(text) > a.maxChars {
		text = text[:a.maxChars]
	}

	if a.provider == nil {
		return a.engine.Analyze(text, lang)
	}

	resp, err := a.provider.Generate(ctx, llm.GenerateRequest{
		System:      "You are a contract analysis assistant. You respond with strict JSON only: no markdown, no commentary.",
		Prompt:      buildAnalysisPrompt(text, lang),
		Temperature: 0.2,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: delegated document analysis failed, using heuristic engine: %v\n", err)
		return a.engine.Analyze(text, lang)
	}

	return a.parseDelegated(resp.Text, text, lang)
}

// delegatedResult is the JSON shape the generation capability is instructed
// to return
type delegatedResult struct {
	Summary     string            `json:"summary"`
	OverallRisk string            `json:"overallRisk"`
	Clauses     []delegatedClause `json:"clauses"`
}

type delegatedClause struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Original string `json:"original"`
	Simple   string `json:"simple"`
	Why      string `json:"why"`
	Risk     string `json:"risk"`
}

// parseDelegated walks the untrusted output through parse, repair, salvage,
// and generic fallback, in that order. Whatever happens, it returns a valid
// result.
func (a *DocumentAnalyzer) parseDelegated(raw, docText string, lang model.Language) *model.AnalysisResult {
	cleaned := jsonrepair.Clean(raw)

	var parsed delegatedResult
	err := json.Unmarshal([]byte(cleaned), &parsed)
	if err != nil {
		err = json.Unmarshal([]byte(jsonrepair.Repair(cleaned)), &parsed)
	}

	if err == nil {
		if result := a.validated(parsed, docText, lang); result != nil {
			return result
		}
	}

	// Parsing or validation failed; try to keep at least the summary
	summary := jsonrepair.SalvageSummary(cleaned)
	if len(summary) < minSalvageSummaryChars {
		summary = genericSummary
	}

	return &model.AnalysisResult{
		Summary:     summary,
		OverallRisk: model.RiskMedium,
		Clauses:     []model.Clause{genericClause(docText)},
		Language:    lang,
		AnalyzedAt:  time.Now().UTC(),
		Engine:      model.EngineDelegated,
	}
}

// validated converts a parsed delegated result into the final shape,
// dropping clauses with missing content. Returns nil when nothing usable
// remains.
func (a *DocumentAnalyzer) validated(parsed delegatedResult, docText string, lang model.Language) *model.AnalysisResult {
	var clauses []model.Clause
	for i, c := range parsed.Clauses {
		if strings.TrimSpace(c.Title) == "" || strings.TrimSpace(c.Simple) == "" || strings.TrimSpace(c.Why) == "" {
			continue
		}

		risk := model.RiskLevel(strings.ToLower(c.Risk))
		if !risk.Valid() {
			risk = model.RiskMedium
		}

		id := strings.TrimSpace(c.ID)
		if id == "" {
			id = fmt.Sprintf("clause-%d", i+1)
		}

		clauses = append(clauses, model.Clause{
			ID:       id,
			Title:    strings.TrimSpace(c.Title),
			Original: c.Original,
			Simple:   strings.TrimSpace(c.Simple),
			Why:      strings.TrimSpace(c.Why),
			Risk:     risk,
		})
	}

	summary := strings.TrimSpace(parsed.Summary)
	if summary == "" || len(clauses) == 0 {
		return nil
	}

	return &model.AnalysisResult{
		Summary:     summary,
		OverallRisk: model.AggregateRisk(clauses),
		Clauses:     clauses,
		Language:    lang,
		AnalyzedAt:  time.Now().UTC(),
		Engine:      model.EngineDelegated,
	}
}

// genericClause is the single clause emitted when nothing could be
// recovered from the delegated output
func genericClause(docText string) model.Clause {
	return model.Clause{
		ID:       "clause-1",
		Title:    "Document Review Required",
		Original: excerptWindow(docText, 0),
		Simple:   "The automated analysis could not break this document into individual provisions.",
		Why:      "Documents that resist automated analysis often contain non-standard language worth professional review.",
		Risk:     model.RiskMedium,
	}
}

// buildAnalysisPrompt instructs the generation capability to return strict
// JSON in the AnalysisResult clause schema, using the same risk rule as the
// deterministic classifier
func buildAnalysisPrompt(text string, lang model.Language) string {
	return fmt.Sprintf(`Analyze the following contract document.

Respond ONLY with a valid JSON object (no markdown, no code fences) with this structure:
{
  "summary": "A plain-language synopsis of the document in 3-5 sentences",
  "overallRisk": "low|medium|high",
  "clauses": [
    {
      "id": "clause-1",
      "title": "Short clause title",
      "original": "Verbatim excerpt from the document",
      "simple": "What the clause means in plain language",
      "why": "Why this clause matters to the reader",
      "risk": "low|medium|high"
    }
  ]
}

Risk rule:
- high: penalties, liability, auto-renewal, arbitration, termination fees
- medium: payment terms, notice periods, renewals, jurisdiction
- low: definitions, headers, boilerplate

Write summary, simple, and why in %s.

Document text:
%s`, lang.Name(), text)
}
