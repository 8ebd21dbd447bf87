package pipeline

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/mvoren/clauselens/internal/analyze"
	"github.com/mvoren/clauselens/internal/extract"
	"github.com/mvoren/clauselens/internal/label"
	"github.com/mvoren/clauselens/internal/llm"
	"github.com/mvoren/clauselens/internal/model"
	"github.com/mvoren/clauselens/internal/redact"
	"github.com/mvoren/clauselens/internal/validate"
	"github.com/mvoren/clauselens/internal/worker"
)

// Capability keys for rate limiting
const (
	capLayout   = "layout"
	capRedact   = "redact"
	capGenerate = "generate"
)

// Deps holds the delegated capabilities, each optional and resolved once at
// startup. A nil capability means its fallback path handles that concern.
type Deps struct {
	Layout    extract.LayoutService // nil = plain-text extraction only
	Redaction redact.Redactor       // nil = regex fallback only
	Generator llm.Provider          // nil = heuristic engine only
}

// Pipeline orchestrates the complete document analysis: extraction,
// redaction, segment labeling, per-page analysis, document analysis, and
// result assembly
type Pipeline struct {
	layout    extract.LayoutService
	redactor  redact.Redactor
	labeler   *label.Labeler
	pages     *analyze.PageAnalyzer
	analyzer  *analyze.DocumentAnalyzer
	validator *validate.Validator
	limiter   *worker.Limiter
	renderer  *Renderer
	config    *model.Config
}

// New creates a pipeline with explicitly injected capabilities
func New(cfg *model.Config, deps Deps) *Pipeline {
	engine := analyze.NewHeuristicEngine(cfg.Pipeline.MinClauses)

	return &Pipeline{
		layout:    deps.Layout,
		redactor:  redact.NewChain(deps.Redaction),
		labeler:   label.NewLabeler(deps.Generator, cfg.Pipeline.SegmentBatchSize),
		pages:     analyze.NewPageAnalyzer(cfg.Pipeline.MinPageChars),
		analyzer:  analyze.NewDocumentAnalyzer(deps.Generator, engine, cfg.Pipeline.MaxDocChars),
		validator: validate.NewValidator(),
		limiter:   worker.NewLimiter(cfg.Pipeline.CapabilityRPS, 0),
		renderer:  NewRenderer(cfg.Output.IncludeFooter),
		config:    cfg,
	}
}

// NewFromConfig resolves the delegated capabilities from configuration and
// creates the pipeline. A capability that fails to initialize is disabled
// with a warning; its fallback path covers it.
func NewFromConfig(cfg *model.Config) *Pipeline {
	var deps Deps

	if cfg.Extraction.ServiceURL != "" {
		svc, err := extract.NewHTTPLayoutService(cfg.Extraction, cfg.Proxy)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: layout service disabled: %v\n", err)
		} else {
			deps.Layout = svc
		}
	}

	if svc := redact.NewHTTPRedactionService(cfg.Redaction, cfg.Proxy); svc != nil {
		deps.Redaction = svc
	}

	if cfg.LLM.Provider != "" {
		provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM, cfg.Proxy))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: generation provider disabled: %v\n", err)
		} else {
			deps.Generator = provider
		}
	}

	return New(cfg, deps)
}

// Analyze runs the full pipeline over raw document bytes and returns the
// assembled result. The only failure that crosses this boundary is
// extraction producing no usable text; every other degradation is absorbed
// into a valid result.
func (p *Pipeline) Analyze(ctx context.Context, data []byte, filename string, lang model.Language) (*model.AnalysisResult, error) {
	// 1. Extraction: layout service first, plain text as fallback
	extracted, err := p.extractDocument(ctx, data, filename)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	// 2. Redact and label positioned segments, when the layout path
	// produced any
	var segments []model.Segment
	if len(extracted.Segments) > 0 {
		if err := p.limiter.Wait(ctx, capRedact); err != nil {
			return nil, err
		}
		redactedRaw := p.redactSegments(ctx, extracted.Segments)

		if err := p.limiter.Wait(ctx, capGenerate); err != nil {
			return nil, err
		}
		segments = p.labeler.Label(ctx, redactedRaw, lang)
	}

	// 3. Per-page analysis, each page independent; a wholesale failure here
	// degrades to an empty list rather than aborting
	pageAnalyses := p.analyzePages(ctx, extracted.Pages, lang)

	// 4. Document-level analysis over redacted full text
	if err := p.limiter.Wait(ctx, capRedact); err != nil {
		return nil, err
	}
	redactedText, _ := p.redactor.Redact(ctx, extracted.Text)

	if err := p.limiter.Wait(ctx, capGenerate); err != nil {
		return nil, err
	}
	result := p.analyzer.Analyze(ctx, redactedText, lang)

	// 5. Merge
	result.Segments = segments
	result.PageAnalysis = pageAnalyses

	// 6. The visual overlay always needs something to render
	if len(result.Segments) == 0 {
		result.Segments = placeholderSegments(result.Clauses)
	}

	// 7. Clauses without a content-derived page get a best-effort default
	distributeClausePages(result.Clauses, len(pageAnalyses))

	for _, issue := range p.validator.Check(result, extracted.PageCount()) {
		fmt.Fprintf(os.Stderr, "Warning: result invariant: %s\n", issue)
	}

	return result, nil
}

// AnalyzeFile reads a document from disk and analyzes it
func (p *Pipeline) AnalyzeFile(ctx context.Context, path string, lang model.Language) (*model.AnalysisResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return p.Analyze(ctx, data, path, lang)
}

// extractDocument picks the extraction path by format. For PDFs the layout
// service is preferred; its failure falls back to the embedded plain-text
// parser. Both failing is the terminal extraction error.
func (p *Pipeline) extractDocument(ctx context.Context, data []byte, filename string) (*extract.Result, error) {
	switch extract.DetectFormat(data, filename) {
	case extract.FormatHTML:
		return extract.ExtractHTML(data)

	case extract.FormatText:
		return extract.ExtractText(data)

	default:
		if p.layout != nil {
			if err := p.limiter.Wait(ctx, capLayout); err != nil {
				return nil, err
			}
			result, err := p.layout.Extract(ctx, data)
			if err == nil {
				return result, nil
			}
			fmt.Fprintf(os.Stderr, "Warning: layout extraction failed, falling back to plain text: %v\n", err)
		}
		return extract.ExtractPlainText(data)
	}
}

// redactSegments redacts each segment's text in place-order, preserving
// geometry
func (p *Pipeline) redactSegments(ctx context.Context, raw []model.RawSegment) []model.RawSegment {
	redacted := make([]model.RawSegment, len(raw))
	for i, seg := range raw {
		text, _ := p.redactor.Redact(ctx, seg.Text)
		redacted[i] = model.RawSegment{
			Page: seg.Page,
			BBox: seg.BBox,
			Text: text,
		}
	}
	return redacted
}

// pageJob analyzes one page through the worker pool
type pageJob struct {
	analyzer *analyze.PageAnalyzer
	page     extract.Page
	lang     model.Language
}

type pageResult struct {
	analysis model.PageAnalysis
}

func (r *pageResult) GetError() error { return nil }

func (j *pageJob) Execute(_ context.Context) worker.Result {
	return &pageResult{analysis: j.analyzer.Analyze(j.page.Number, j.page.Text, j.lang)}
}

// analyzePages runs the page analyzer over each page independently and
// returns the analyses ordered by page number
func (p *Pipeline) analyzePages(_ context.Context, pages []extract.Page, lang model.Language) []model.PageAnalysis {
	if len(pages) == 0 {
		return nil
	}

	pool := worker.NewPool(p.config.Pipeline.PageWorkers)
	pool.Start()

	for _, page := range pages {
		pool.Submit(&pageJob{analyzer: p.pages, page: page, lang: lang})
	}

	results := pool.Wait()

	analyses := make([]model.PageAnalysis, 0, len(results))
	for _, r := range results {
		analyses = append(analyses, r.(*pageResult).analysis)
	}

	sort.Slice(analyses, func(i, j int) bool {
		return analyses[i].PageNumber < analyses[j].PageNumber
	})

	return analyses
}

// placeholderSegments synthesizes one generic, vertically stacked segment
// per clause when extraction yielded no positioned segments at all
func placeholderSegments(clauses []model.Clause) []model.Segment {
	if len(clauses) == 0 {
		return nil
	}

	segments := make([]model.Segment, 0, len(clauses))
	step := 0.9 / float64(len(clauses))

	for i, c := range clauses {
		page := c.Page
		if page == 0 {
			page = 1
		}
		segments = append(segments, model.Segment{
			ID:   fmt.Sprintf("seg-%d", i+1),
			Page: page,
			BBox: model.BBox{
				X: 0.05,
				Y: 0.05 + float64(i)*step,
				W: 0.9,
				H: 0.05,
			},
			Text:   c.Original,
			Risk:   c.Risk,
			Simple: c.Simple,
		})
	}

	return segments
}

// distributeClausePages assigns a page to clauses lacking one by spreading
// clause indices evenly across the known page count. This is a best-effort
// default, not a content-derived placement.
func distributeClausePages(clauses []model.Clause, pageCount int) {
	if pageCount <= 0 || len(clauses) == 0 {
		return
	}

	for i := range clauses {
		if clauses[i].Page != 0 {
			continue
		}
		page := i*pageCount/len(clauses) + 1
		if page > pageCount {
			page = pageCount
		}
		clauses[i].Page = page
	}
}
