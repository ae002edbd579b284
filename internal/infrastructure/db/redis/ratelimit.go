package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter implements a fixed-window request counter backed by Redis.
// Key format: ratelimit:<key>:<window_start_ms>; the counter expires with
// the window so stale windows clean themselves up.
type RateLimiter struct {
	client *redis.Client
	window time.Duration
	max    int
}

// NewRateLimiter creates a limiter allowing max requests per window.
func NewRateLimiter(client *redis.Client, window time.Duration, max int) *RateLimiter {
	if window <= 0 {
		window = 15 * time.Minute
	}
	if max <= 0 {
		max = 100
	}
	return &RateLimiter{client: client, window: window, max: max}
}

// Allow counts a hit for key in the current window and reports whether the
// request is within budget. Bucketing truncates to the window length, which
// holds for any positive duration including sub-second ones.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowStart := time.Now().Truncate(l.window).UnixMilli()
	redisKey := fmt.Sprintf("ratelimit:%s:%d", key, windowStart)

	pipe := l.client.TxPipeline()
	count := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit check: %w", err)
	}

	return count.Val() <= int64(l.max), nil
}
