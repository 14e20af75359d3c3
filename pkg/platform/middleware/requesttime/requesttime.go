// Package requesttime captures one "now" per request so every event emitted
// while serving it carries the same timestamp.
package requesttime

import (
	"net/http"
	"time"

	"flightsurety/pkg/requestcontext"
)

// Middleware captures the current time at the start of the request
// and stores it in the context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
