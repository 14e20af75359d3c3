// Package ratelimit bounds how many API calls one caller may make per window.
package ratelimit

import (
	"context"
	"time"
)

// Result is the outcome of one admission check.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
	// RetryAfter is set when the request was rejected.
	RetryAfter time.Duration
}

// Store admits requests against a sliding window keyed by an opaque string.
type Store interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (Result, error)
}

// Limit is the per-caller budget.
type Limit struct {
	Requests int
	Window   time.Duration
}

// Enabled reports whether the limit admits a finite number of requests.
func (l Limit) Enabled() bool {
	return l.Requests > 0 && l.Window > 0
}
