package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, window time.Duration, max int) *RateLimiter {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRateLimiter(client, window, max)
}

func TestRateLimiter_AllowsWithinBudget(t *testing.T) {
	limiter := newTestLimiter(t, time.Minute, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, "10.0.0.1")
		if err != nil {
			t.Fatalf("Allow returned error: %v", err)
		}
		if !ok {
			t.Fatalf("request %d rejected within budget", i+1)
		}
	}
}

func TestRateLimiter_RejectsOverBudget(t *testing.T) {
	limiter := newTestLimiter(t, time.Minute, 2)
	ctx := context.Background()

	_, _ = limiter.Allow(ctx, "10.0.0.2")
	_, _ = limiter.Allow(ctx, "10.0.0.2")

	ok, err := limiter.Allow(ctx, "10.0.0.2")
	if err != nil {
		t.Fatalf("Allow returned error: %v", err)
	}
	if ok {
		t.Fatalf("request over budget was allowed")
	}
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	limiter := newTestLimiter(t, time.Minute, 1)
	ctx := context.Background()

	if ok, _ := limiter.Allow(ctx, "10.0.0.3"); !ok {
		t.Fatalf("first request for first key rejected")
	}
	if ok, _ := limiter.Allow(ctx, "10.0.0.4"); !ok {
		t.Fatalf("first request for second key rejected")
	}
	if ok, _ := limiter.Allow(ctx, "10.0.0.3"); ok {
		t.Fatalf("second request for exhausted key allowed")
	}
}

func TestRateLimiter_SubSecondWindow(t *testing.T) {
	limiter := newTestLimiter(t, 500*time.Millisecond, 2)
	ctx := context.Background()

	// Windows shorter than a second must bucket correctly, not blow up on
	// truncated integer arithmetic. Requests within budget stay allowed even
	// if the calls straddle a window boundary.
	for i := 0; i < 2; i++ {
		ok, err := limiter.Allow(ctx, "10.0.0.6")
		if err != nil {
			t.Fatalf("Allow returned error: %v", err)
		}
		if !ok {
			t.Fatalf("request %d rejected within budget", i+1)
		}
	}
}

func TestRateLimiter_ClientErrorSurfaces(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	limiter := NewRateLimiter(client, time.Minute, 1)
	srv.Close()

	if _, err := limiter.Allow(context.Background(), "10.0.0.5"); err == nil {
		t.Fatalf("expected error when redis is down")
	}
}
