package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mvoren/clauselens/internal/model"
)

// Renderer writes analysis results as JSON artifacts and Markdown reports
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the result as indented JSON
func (r *Renderer) RenderJSON(result *model.AnalysisResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report
func (r *Renderer) RenderMarkdown(result *model.AnalysisResult, path string) error {
	var b strings.Builder

	b.WriteString("# Document Analysis\n\n")
	fmt.Fprintf(&b, "**Overall risk:** %s\n\n", strings.ToUpper(string(result.OverallRisk)))
	fmt.Fprintf(&b, "%s\n\n", result.Summary)

	if len(result.Clauses) > 0 {
		b.WriteString("## Clauses\n\n")
		b.WriteString("| Risk | Clause | What it means |\n")
		b.WriteString("|------|--------|---------------|\n")
		for _, c := range result.Clauses {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", c.Risk, c.Title, c.Simple)
		}
		b.WriteString("\n")

		for _, c := range result.Clauses {
			fmt.Fprintf(&b, "### %s (%s risk)\n\n", c.Title, c.Risk)
			if c.Page > 0 {
				fmt.Fprintf(&b, "*Page %d*\n\n", c.Page)
			}
			fmt.Fprintf(&b, "%s\n\n", c.Simple)
			fmt.Fprintf(&b, "**Why it matters:** %s\n\n", c.Why)
			if c.Original != "" {
				fmt.Fprintf(&b, "> %s\n\n", strings.ReplaceAll(c.Original, "\n", " "))
			}
		}
	}

	if len(result.PageAnalysis) > 0 {
		b.WriteString("## Page-by-page\n\n")
		for _, pa := range result.PageAnalysis {
			fmt.Fprintf(&b, "### Page %d (%s risk)\n\n%s\n\n", pa.PageNumber, pa.RiskLevel, pa.Summary)
			for _, kp := range pa.KeyPoints {
				fmt.Fprintf(&b, "- **%s** (%s): %s\n", kp.Title, kp.Type, kp.Explanation)
			}
			b.WriteString("\n")
		}
	}

	if r.includeFooter {
		b.WriteString("---\n\n")
		b.WriteString("*Generated by clauselens. Automated analysis is not legal advice.*\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// RenderSummary prints a short result summary to stdout
func (r *Renderer) RenderSummary(result *model.AnalysisResult) {
	dist := model.CountRisks(result.Clauses)

	fmt.Printf("\nOverall risk: %s\n", strings.ToUpper(string(result.OverallRisk)))
	fmt.Printf("Clauses: %d (%d high, %d medium, %d low)\n", len(result.Clauses), dist.High, dist.Medium, dist.Low)
	if len(result.PageAnalysis) > 0 {
		fmt.Printf("Pages analyzed: %d\n", len(result.PageAnalysis))
	}
	if len(result.Segments) > 0 {
		fmt.Printf("Segments: %d\n", len(result.Segments))
	}
	fmt.Printf("\n%s\n", result.Summary)
}

// RenderReport renders the result to the requested outputs
func (p *Pipeline) RenderReport(result *model.AnalysisResult, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(result, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(result, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(result)

	return nil
}
