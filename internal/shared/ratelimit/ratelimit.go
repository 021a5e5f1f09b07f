// Package ratelimit counts events per key inside fixed time windows.
// It backs both login lockout and per-user throttling of hash verification.
// Implementations are safe for concurrent use.
package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// Config configures a limiter.
type Config struct {
	// Limit is the maximum number of events allowed per window.
	Limit int64

	// Window is the length of one counting window.
	Window time.Duration

	// Prefix namespaces every key in the backing store.
	Prefix string

	// OnLimited is called when Allow rejects an event.
	OnLimited func(ctx context.Context, key string, result Result)
}

// Result contains the decision and counter metadata.
type Result struct {
	// Allowed reports whether the key is still under its limit.
	Allowed bool

	Limit     int64
	Remaining int64

	// ResetAt is when the current window expires.
	ResetAt time.Time

	// RetryAfter is set when Allowed is false.
	RetryAfter time.Duration
}

// Limiter is the interface consumers depend on.
type Limiter interface {
	// Allow records one event for key and reports whether it fits the limit.
	Allow(ctx context.Context, key string) (Result, error)

	// Peek reports the state of key without recording an event.
	Peek(ctx context.Context, key string) (Result, error)

	// Reset clears the counter for key.
	Reset(ctx context.Context, key string) error
}

func (c Config) validate() error {
	if c.Limit <= 0 {
		return fmt.Errorf("ratelimit: limit must be positive")
	}
	if c.Window <= 0 {
		return fmt.Errorf("ratelimit: window must be positive")
	}
	return nil
}

// evaluate turns a raw counter and its remaining ttl into a Result.
func evaluate(count, ttlMs int64, config Config, now time.Time) Result {
	if ttlMs <= 0 {
		ttlMs = config.Window.Milliseconds()
	}
	ttl := time.Duration(ttlMs) * time.Millisecond

	result := Result{
		Allowed: count <= config.Limit,
		Limit:   config.Limit,
		ResetAt: now.Add(ttl),
	}
	if result.Allowed {
		result.Remaining = config.Limit - count
	} else {
		result.RetryAfter = ttl
	}
	return result
}
