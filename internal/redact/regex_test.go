package redact

import (
	"context"
	"strings"
	"testing"
)

func TestRegexRedactor_Email(t *testing.T) {
	r := NewRegexRedactor()

	out, err := r.Redact(context.Background(), "Contact john.doe+legal@example.co.uk for notices.")
	if err != nil {
		t.Fatalf("redact failed: %v", err)
	}

	if out != "Contact [EMAIL] for notices." {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestRegexRedactor_PhoneAndID(t *testing.T) {
	r := NewRegexRedactor()

	// 555-12-3456 is the government ID shape; 555-123-4567 is the phone
	// shape. The ID pattern must win where both could match.
	out, err := r.Redact(context.Background(), "SSN 123-45-6789, phone 555-123-4567.")
	if err != nil {
		t.Fatalf("redact failed: %v", err)
	}

	if !strings.Contains(out, "[ID]") {
		t.Errorf("expected [ID] placeholder, got %q", out)
	}
	if !strings.Contains(out, "[PHONE]") {
		t.Errorf("expected [PHONE] placeholder, got %q", out)
	}
	if strings.Contains(out, "123-45-6789") || strings.Contains(out, "555-123-4567") {
		t.Errorf("PII leaked: %q", out)
	}
}

func TestRegexRedactor_MixedText(t *testing.T) {
	r := NewRegexRedactor()

	out, err := r.Redact(context.Background(), "Email foo@bar.com or call 555-123-4567.")
	if err != nil {
		t.Fatalf("redact failed: %v", err)
	}

	if out != "Email [EMAIL] or call [PHONE]." {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestRegexRedactor_Idempotent(t *testing.T) {
	r := NewRegexRedactor()
	ctx := context.Background()

	once, err := r.Redact(ctx, "Reach jane@corp.com or 555-867-5309, SSN 987-65-4321.")
	if err != nil {
		t.Fatalf("redact failed: %v", err)
	}

	twice, err := r.Redact(ctx, once)
	if err != nil {
		t.Fatalf("second redact failed: %v", err)
	}

	if once != twice {
		t.Errorf("redaction not idempotent:\n first: %q\nsecond: %q", once, twice)
	}
}

func TestRegexRedactor_NoPII(t *testing.T) {
	r := NewRegexRedactor()

	text := "Section 4.2 governs termination for convenience."
	out, err := r.Redact(context.Background(), text)
	if err != nil {
		t.Fatalf("redact failed: %v", err)
	}
	if out != text {
		t.Errorf("clean text should pass through unchanged, got %q", out)
	}
}

// failingRedactor simulates a delegated service that always errors
type failingRedactor struct{}

func (f *failingRedactor) Name() string { return "failing" }

func (f *failingRedactor) Redact(_ context.Context, _ string) (string, error) {
	return "", context.DeadlineExceeded
}

func TestChain_FallsBackToRegex(t *testing.T) {
	chain := NewChain(&failingRedactor{})

	out, err := chain.Redact(context.Background(), "Write to ceo@acme.com.")
	if err != nil {
		t.Fatalf("chain redact failed: %v", err)
	}

	if out != "Write to [EMAIL]." {
		t.Errorf("expected regex fallback output, got %q", out)
	}
}

func TestChain_NilService(t *testing.T) {
	chain := NewChain(nil)

	out, err := chain.Redact(context.Background(), "Call 555-123-4567.")
	if err != nil {
		t.Fatalf("chain redact failed: %v", err)
	}
	if out != "Call [PHONE]." {
		t.Errorf("unexpected output: %q", out)
	}
}
