// Package requestcontext carries request-scoped values (caller, request ID,
// request time) so ledger services can read them without importing net/http.
package requestcontext

import (
	"context"
	"time"

	"flightsurety/pkg/domain"
)

type (
	callerKey      struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
)

// Caller is the authenticated caller, or the zero address.
func Caller(ctx context.Context) domain.Address {
	caller, _ := ctx.Value(callerKey{}).(domain.Address)
	return caller
}

func WithCaller(ctx context.Context, caller domain.Address) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// Now is the time captured when the request started. Outside a request
// (workers, CLI, tests) it falls back to the wall clock.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}

func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, t)
}
