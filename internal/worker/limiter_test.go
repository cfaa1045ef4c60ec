package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_AllowWithinBurst(t *testing.T) {
	limiter := NewLimiter(1, 3)

	for i := 0; i < 3; i++ {
		if !limiter.Allow("openai") {
			t.Fatalf("request %d within burst should be allowed", i)
		}
	}
	if limiter.Allow("openai") {
		t.Error("request past burst should be denied")
	}
}

func TestLimiter_ProvidersIndependent(t *testing.T) {
	limiter := NewLimiter(1, 1)

	if !limiter.Allow("openai") {
		t.Fatal("first openai request should be allowed")
	}
	if limiter.Allow("openai") {
		t.Error("second openai request should be denied")
	}
	// A throttled provider must not gate another
	if !limiter.Allow("ollama") {
		t.Error("ollama request should be unaffected by openai throttling")
	}
}

func TestLimiter_SetProviderRate(t *testing.T) {
	limiter := NewLimiter(1, 1)

	if !limiter.Allow("anthropic") {
		t.Fatal("first request should be allowed")
	}
	if limiter.Allow("anthropic") {
		t.Error("second request should be denied at default rate")
	}

	limiter.SetProviderRate("anthropic", 100, 10)
	if !limiter.Allow("anthropic") {
		t.Error("request should be allowed after raising the provider rate")
	}
}

func TestLimiter_WaitRespectsContext(t *testing.T) {
	limiter := NewLimiter(0.001, 1)
	limiter.Allow("slow") // exhaust the burst

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := limiter.Wait(ctx, "slow"); err == nil {
		t.Error("expected context deadline to abort the wait")
	}
}

func TestLimiter_WaitWithDelay(t *testing.T) {
	limiter := NewLimiter(100, 10)

	start := time.Now()
	if err := limiter.WaitWithDelay(context.Background(), "openai", 30*time.Millisecond); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("expected at least the additional delay, elapsed %v", elapsed)
	}
}
