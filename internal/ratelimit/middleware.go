package ratelimit

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	dErrors "flightsurety/pkg/domain-errors"
	"flightsurety/pkg/platform/circuit"
	"flightsurety/pkg/platform/httputil"
	"flightsurety/pkg/platform/middleware/metadata"
	"flightsurety/pkg/requestcontext"
)

// Middleware enforces Limit per authenticated caller, or per client IP when
// no caller is known. A breaker around the primary store switches decisions
// to an in-process fallback while the primary keeps failing.
type Middleware struct {
	limit    Limit
	primary  Store
	fallback Store
	breaker  *circuit.Breaker
	logger   *slog.Logger
}

type Option func(*Middleware)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Middleware) { m.logger = logger }
}

// WithFallback replaces the default in-memory fallback store.
func WithFallback(store Store) Option {
	return func(m *Middleware) { m.fallback = store }
}

func WithBreaker(b *circuit.Breaker) Option {
	return func(m *Middleware) { m.breaker = b }
}

func New(primary Store, limit Limit, opts ...Option) *Middleware {
	m := &Middleware{
		limit:   limit,
		primary: primary,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.fallback == nil {
		m.fallback = NewMemory()
	}
	if m.breaker == nil {
		m.breaker = circuit.New("ratelimit")
	}
	return m
}

// Handler rejects over-budget requests with 429 and annotates every response
// with X-RateLimit headers.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	if !m.limit.Enabled() {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		res := m.check(ctx, keyFor(ctx))

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))
		if m.breaker.IsOpen() {
			w.Header().Set("X-RateLimit-Status", "degraded")
		}

		if !res.Allowed {
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(res.RetryAfter.Seconds()))))
			httputil.WriteError(w, dErrors.New(dErrors.CodeRateLimited, "too many requests, retry later"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// check asks the primary store first. Until the breaker opens, a failing
// primary admits the request; while open, the fallback decides.
func (m *Middleware) check(ctx context.Context, key string) Result {
	res, err := m.primary.Allow(ctx, key, m.limit.Requests, m.limit.Window)
	if err != nil {
		useFallback, change := m.breaker.RecordFailure()
		if change.Opened {
			m.logger.WarnContext(ctx, "rate limit store unavailable, using fallback", "error", err)
		}
		if !useFallback {
			m.logger.ErrorContext(ctx, "rate limit check failed", "error", err)
			return m.admitted()
		}
		return m.fromFallback(ctx, key)
	}

	usePrimary, change := m.breaker.RecordSuccess()
	if change.Closed {
		m.logger.InfoContext(ctx, "rate limit store recovered")
	}
	if usePrimary {
		return res
	}
	return m.fromFallback(ctx, key)
}

func (m *Middleware) fromFallback(ctx context.Context, key string) Result {
	res, err := m.fallback.Allow(ctx, key, m.limit.Requests, m.limit.Window)
	if err != nil {
		m.logger.ErrorContext(ctx, "fallback rate limit check failed", "error", err)
		return m.admitted()
	}
	return res
}

// admitted is the fail-open result used when no store can answer.
func (m *Middleware) admitted() Result {
	return Result{
		Allowed:   true,
		Limit:     m.limit.Requests,
		Remaining: m.limit.Requests,
		ResetAt:   time.Now().Add(m.limit.Window),
	}
}

func keyFor(ctx context.Context) string {
	if caller := requestcontext.Caller(ctx); !caller.IsZero() {
		return "caller:" + caller.String()
	}
	return "ip:" + metadata.GetClientIP(ctx)
}
