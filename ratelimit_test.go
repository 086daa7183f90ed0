package lingo

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiter_BurstThenEmpty(t *testing.T) {
	r := NewRateLimiter(RateLimitConfig{
		RequestsPerMinute: 60,
		BurstSize:         2,
	})

	if !r.TryAcquire() {
		t.Error("first acquire from a full bucket should succeed")
	}
	if !r.TryAcquire() {
		t.Error("second acquire within burst should succeed")
	}
	if r.TryAcquire() {
		t.Error("acquire beyond burst should fail")
	}
}

func TestRateLimiter_Refill(t *testing.T) {
	// 600 RPM = 10 tokens per second, so a token roughly every 100ms.
	r := NewRateLimiter(RateLimitConfig{
		RequestsPerMinute: 600,
		BurstSize:         1,
	})

	if !r.TryAcquire() {
		t.Fatal("initial acquire should succeed")
	}
	if r.TryAcquire() {
		t.Fatal("bucket should be empty")
	}

	time.Sleep(150 * time.Millisecond)

	if !r.TryAcquire() {
		t.Error("token should have refilled after waiting")
	}
}

func TestRateLimiter_Defaults(t *testing.T) {
	r := NewRateLimiter(RateLimitConfig{})

	// Default: 60 RPM with burst = RPM
	if got := r.Available(); got < 59 {
		t.Errorf("Available = %v, want a full default bucket", got)
	}
}

func TestRateLimiter_WaitCancelled(t *testing.T) {
	r := NewRateLimiter(RateLimitConfig{
		RequestsPerMinute: 1,
		BurstSize:         1,
	})
	r.TryAcquire() // drain

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := r.Wait(ctx); err == nil {
		t.Error("Wait on an empty bucket should fail when context expires")
	}
}

// countingProvider records Translate calls.
type countingProvider struct {
	calls int
}

func (c *countingProvider) Translate(ctx context.Context, key, locale string) (string, error) {
	c.calls++
	return "Hola", nil
}

func TestRateLimitedProvider_PassesThrough(t *testing.T) {
	inner := &countingProvider{}
	p := NewRateLimitedProvider(inner, RateLimitConfig{
		RequestsPerMinute: 600,
		BurstSize:         10,
	})

	out, err := p.Translate(context.Background(), "hello", "es_ES")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if out != "Hola" {
		t.Errorf("Translate returned %q, want %q", out, "Hola")
	}
	if inner.calls != 1 {
		t.Errorf("underlying provider called %d times, want 1", inner.calls)
	}
}

func TestRateLimitedProvider_CancelledWait(t *testing.T) {
	inner := &countingProvider{}
	p := NewRateLimitedProvider(inner, RateLimitConfig{
		RequestsPerMinute: 1,
		BurstSize:         1,
	})
	p.Limiter().TryAcquire() // drain the bucket

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Translate(ctx, "hello", "es_ES")
	if err == nil {
		t.Fatal("Translate should fail when the rate limit wait is cancelled")
	}
	if inner.calls != 0 {
		t.Errorf("underlying provider called %d times, want 0", inner.calls)
	}
}
