package redact

import (
	"context"
	"regexp"
)

// Placeholder tokens substituted for detected PII. None of them match any
// of the PII patterns, which is what makes redaction idempotent.
const (
	PlaceholderEmail = "[EMAIL]"
	PlaceholderPhone = "[PHONE]"
	PlaceholderID    = "[ID]"
)

// Ordered so that government IDs (NNN-NN-NNNN) are replaced before phone
// numbers: the patterns share a digit-dash shape and must not shadow each
// other.
var piiPatterns = []struct {
	pattern     *regexp.Regexp
	placeholder string
}{
	{regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`), PlaceholderEmail},
	{regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`), PlaceholderID},
	{regexp.MustCompile(`\b\d{3}-\d{3}-\d{4}\b`), PlaceholderPhone},
}

// RegexRedactor is the deterministic redaction fallback. It covers email
// addresses, NNN-NNN-NNNN phone numbers, and NNN-NN-NNNN government IDs.
type RegexRedactor struct{}

// NewRegexRedactor creates the regex redactor
func NewRegexRedactor() *RegexRedactor {
	return &RegexRedactor{}
}

// Name returns the redactor name
func (r *RegexRedactor) Name() string {
	return "regex"
}

// Redact replaces PII matches with typed placeholders. It never fails.
func (r *RegexRedactor) Redact(_ context.Context, text string) (string, error) {
	for _, p := range piiPatterns {
		text = p.pattern.ReplaceAllString(text, p.placeholder)
	}
	return text, nil
}
