// Package httpserver builds the process's *http.Server from configuration.
package httpserver

import (
	"net/http"
	"time"

	"flightsurety/internal/platform/config"
)

const (
	defaultReadHeaderTimeout = 5 * time.Second
	defaultIdleTimeout       = 60 * time.Second
)

// New applies the configured timeouts. Zero values fall back to the
// defaults above, or no limit for read and write.
func New(cfg config.Server, handler http.Handler) *http.Server {
	idle := cfg.IdleTimeout
	if idle <= 0 {
		idle = defaultIdleTimeout
	}
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       idle,
	}
}
