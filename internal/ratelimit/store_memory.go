package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Memory keeps sliding windows in process. It is the fallback when the
// shared store is unreachable and the default for single-node deployments.
type Memory struct {
	mu      sync.Mutex
	windows map[string][]time.Time
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{windows: make(map[string][]time.Time), now: time.Now}
}

func (m *Memory) Allow(_ context.Context, key string, limit int, window time.Duration) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	stamps := prune(m.windows[key], now.Add(-window))
	res := Result{Limit: limit}

	if len(stamps) >= limit {
		m.windows[key] = stamps
		res.ResetAt = stamps[0].Add(window)
		res.RetryAfter = res.ResetAt.Sub(now)
		return res, nil
	}

	stamps = append(stamps, now)
	m.windows[key] = stamps
	res.Allowed = true
	res.Remaining = limit - len(stamps)
	res.ResetAt = stamps[0].Add(window)
	return res, nil
}

// prune drops timestamps at or before cutoff. stamps is ascending.
func prune(stamps []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for ; i < len(stamps); i++ {
		if stamps[i].After(cutoff) {
			break
		}
	}
	return stamps[i:]
}
