package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 5)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1)
	if l2.defaultBurst != 5 {
		t.Errorf("expected default burst 5 for negative input, got %d", l2.defaultBurst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "layout"); err != nil {
		t.Errorf("wait failed: %v", err)
	}

	// A different capability has its own bucket
	if err := limiter.Wait(ctx, "generate"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_RateLimit(t *testing.T) {
	// 1 rps, burst 1: the first request drains the bucket
	limiter := NewLimiter(1, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "redact"); err != nil {
		t.Errorf("first wait failed: %v", err)
	}

	if limiter.Allow("redact") {
		t.Errorf("expected allow to fail (exhausted tokens)")
	}

	// Other capabilities are unaffected
	if !limiter.Allow("layout") {
		t.Errorf("expected allow for other capability")
	}
}

func TestLimiter_SetRate(t *testing.T) {
	limiter := NewLimiter(10, 10)

	limiter.SetRate("generate", 0.1, 1)

	if !limiter.Allow("generate") {
		t.Errorf("first request should pass")
	}
	if limiter.Allow("generate") {
		t.Errorf("second request should fail under the strict rate")
	}
	if !limiter.Allow("layout") {
		t.Errorf("other capability should still be fast")
	}
}

func TestLimiter_WaitWithDelay(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	start := time.Now()
	if err := limiter.WaitWithDelay(ctx, "layout", 50*time.Millisecond); err != nil {
		t.Fatalf("WaitWithDelay failed: %v", err)
	}

	if time.Since(start) < 50*time.Millisecond {
		t.Errorf("expected delay >= 50ms, got %v", time.Since(start))
	}
}

func TestLimiter_CancelledContext(t *testing.T) {
	limiter := NewLimiter(0.001, 1)
	ctx, cancel := context.WithCancel(context.Background())

	// Drain the bucket, then cancel: the blocked wait must return an error
	_ = limiter.Wait(ctx, "slow")
	cancel()

	if err := limiter.Wait(ctx, "slow"); err == nil {
		t.Error("expected error from cancelled context")
	}
}
