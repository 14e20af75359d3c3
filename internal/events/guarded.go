package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"flightsurety/pkg/platform/circuit"
)

// ErrSinkUnavailable is returned while a guarded sink's breaker is open.
var ErrSinkUnavailable = errors.New("event sink unavailable")

// Guarded stops calling a failing sink once its breaker opens. While open,
// one probe is let through per cooldown; enough successful probes close it.
type Guarded struct {
	next     Publisher
	breaker  *circuit.Breaker
	logger   *slog.Logger
	cooldown time.Duration
	now      func() time.Time

	mu        sync.Mutex
	nextProbe time.Time
}

type GuardOption func(*Guarded)

func WithGuardLogger(logger *slog.Logger) GuardOption {
	return func(g *Guarded) { g.logger = logger }
}

func WithCooldown(d time.Duration) GuardOption {
	return func(g *Guarded) {
		if d > 0 {
			g.cooldown = d
		}
	}
}

func withClock(now func() time.Time) GuardOption {
	return func(g *Guarded) { g.now = now }
}

// Guard wraps next with breaker.
func Guard(next Publisher, breaker *circuit.Breaker, opts ...GuardOption) *Guarded {
	g := &Guarded{
		next:     next,
		breaker:  breaker,
		cooldown: 5 * time.Second,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Guarded) Publish(ctx context.Context, event Event) error {
	if g.breaker.IsOpen() && !g.probe() {
		return ErrSinkUnavailable
	}
	if err := g.next.Publish(ctx, event); err != nil {
		if _, change := g.breaker.RecordFailure(); change.Opened {
			g.scheduleProbe()
			if g.logger != nil {
				g.logger.WarnContext(ctx, "event sink circuit opened", "sink", g.breaker.Name(), "error", err)
			}
		}
		return err
	}
	if _, change := g.breaker.RecordSuccess(); change.Closed && g.logger != nil {
		g.logger.InfoContext(ctx, "event sink circuit closed", "sink", g.breaker.Name())
	}
	return nil
}

func (g *Guarded) scheduleProbe() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextProbe = g.now().Add(g.cooldown)
}

// probe reports whether this call may reach the open sink.
func (g *Guarded) probe() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	now := g.now()
	if now.Before(g.nextProbe) {
		return false
	}
	g.nextProbe = now.Add(g.cooldown)
	return true
}
