package label

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mvoren/clauselens/internal/jsonrepair"
	"github.com/mvoren/clauselens/internal/llm"
	"github.com/mvoren/clauselens/internal/model"
)

// DefaultBatchSize caps how many segments go into one delegated labeling
// call, to respect payload/token limits
const DefaultBatchSize = 50

const fallbackExplanation = "This section requires review."

// Labeler assigns a risk level and plain-language explanation to each
// positioned segment. Segments must already be redacted.
type Labeler struct {
	provider  llm.Provider // nil = deterministic classification only
	batchSize int
}

// NewLabeler creates a segment labeler
func NewLabeler(provider llm.Provider, batchSize int) *Labeler {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Labeler{
		provider:  provider,
		batchSize: batchSize,
	}
}

// Label converts raw segments into labeled segments. Every input segment
// appears in the output exactly once, in order: a failed delegated batch
// degrades to the lowest-risk default, never to an omission.
func (l *Labeler) Label(ctx context.Context, segments []model.RawSegment, lang model.Language) []model.Segment {
	labeled := make([]model.Segment, len(segments))
	for i, seg := range segments {
		labeled[i] = model.Segment{
			ID:   fmt.Sprintf("seg-%d", i+1),
			Page: seg.Page,
			BBox: seg.BBox,
			Text: seg.Text,
		}
	}

	if l.provider == nil {
		for i := range labeled {
			labeled[i].Risk, labeled[i].Simple = ClassifySegment(labeled[i].Text)
		}
		return labeled
	}

	// Only the first batch goes to the delegated capability; segments past
	// the cap are classified deterministically
	batchEnd := len(labeled)
	if batchEnd > l.batchSize {
		batchEnd = l.batchSize
	}

	if err := l.labelBatch(ctx, labeled[:batchEnd], lang); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: delegated segment labeling failed: %v\n", err)
		for i := 0; i < batchEnd; i++ {
			labeled[i].Risk = model.RiskLow
			labeled[i].Simple = fallbackExplanation
		}
	}

	for i := batchEnd; i < len(labeled); i++ {
		labeled[i].Risk, labeled[i].Simple = ClassifySegment(labeled[i].Text)
	}

	return labeled
}

// segmentLabel is the JSON shape the delegated capability must return
type segmentLabel struct {
	Index  int    `json:"index"`
	Risk   string `json:"risk"`
	Simple string `json:"simple"`
}

// labelBatch sends one batch to the delegated capability and applies the
// returned labels in place
func (l *Labeler) labelBatch(ctx context.Context, batch []model.Segment, lang model.Language) error {
	resp, err := l.provider.Generate(ctx, llm.GenerateRequest{
		System:      "You are a contract analysis assistant. You respond with strict JSON only: no markdown, no commentary.",
		Prompt:      buildLabelPrompt(batch, lang),
		Temperature: 0.2,
	})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	var labels []segmentLabel
	cleaned := jsonrepair.Clean(resp.Text)
	if err := json.Unmarshal([]byte(cleaned), &labels); err != nil {
		if err2 := json.Unmarshal([]byte(jsonrepair.Repair(cleaned)), &labels); err2 != nil {
			return fmt.Errorf("unparseable labels: %w", err)
		}
	}

	applied := make([]bool, len(batch))
	for _, lb := range labels {
		if lb.Index < 0 || lb.Index >= len(batch) {
			continue
		}
		risk := model.RiskLevel(strings.ToLower(lb.Risk))
		if !risk.Valid() || strings.TrimSpace(lb.Simple) == "" {
			continue
		}
		batch[lb.Index].Risk = risk
		batch[lb.Index].Simple = strings.TrimSpace(lb.Simple)
		applied[lb.Index] = true
	}

	// Segments the capability skipped still get the default label
	for i := range batch {
		if !applied[i] {
			batch[i].Risk = model.RiskLow
			batch[i].Simple = fallbackExplanation
		}
	}

	return nil
}

func buildLabelPrompt(batch []model.Segment, lang model.Language) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Classify each contract text segment below by risk level.

Risk rule:
- high: penalties, liability, auto-renewal, arbitration, termination fees
- medium: payment terms, notice periods, renewals, jurisdiction
- low: definitions, headers, boilerplate

Write the "simple" field as one plain-language sentence in %s.

Respond with a JSON array only, one element per segment:
[{"index": 0, "risk": "low|medium|high", "simple": "..."}]

Segments:
`, lang.Name())

	for i, seg := range batch {
		fmt.Fprintf(&b, "%d: %s\n", i, seg.Text)
	}

	return b.String()
}
