package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"flightsurety/internal/platform/middleware"
	"flightsurety/pkg/platform/httputil"
	"flightsurety/pkg/platform/middleware/admin"
	authmw "flightsurety/pkg/platform/middleware/auth"
	"flightsurety/pkg/platform/middleware/metadata"
	request "flightsurety/pkg/platform/middleware/request"
	"flightsurety/pkg/platform/middleware/requesttime"
)

// healthTimeout bounds each dependency probe behind /health.
const healthTimeout = 2 * time.Second

// Registrar mounts a handler's routes.
type Registrar interface {
	Register(r chi.Router)
}

// HealthCheck probes one backing dependency.
type HealthCheck func(ctx context.Context) error

// RouterConfig is everything NewRouter mounts.
type RouterConfig struct {
	Logger    *slog.Logger
	Validator authmw.JWTValidator
	// Metrics serves /metrics when set.
	Metrics http.Handler
	// MetricsToken guards /metrics with X-Admin-Token when non-empty.
	MetricsToken string
	Checks  map[string]HealthCheck
	// Throttle, when set, runs after authentication on every /v1 route.
	Throttle func(http.Handler) http.Handler
	// Handlers are mounted under /v1 behind bearer authentication.
	Handlers []Registrar
}

// NewRouter wires the public endpoints. Handlers stay thin and delegate to
// domain services.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))

	r.Get("/health", healthHandler(cfg.Checks))
	if cfg.Metrics != nil {
		metrics := cfg.Metrics
		if cfg.MetricsToken != "" {
			metrics = admin.RequireAdminToken(cfg.MetricsToken, cfg.Logger)(metrics)
		}
		r.Handle("/metrics", metrics)
	}

	r.Route("/v1", func(v1 chi.Router) {
		v1.Use(authmw.RequireAuth(cfg.Validator, cfg.Logger))
		if cfg.Throttle != nil {
			v1.Use(cfg.Throttle)
		}
		for _, h := range cfg.Handlers {
			h.Register(v1)
		}
	})
	return r
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func healthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{Status: "ok"}
		if len(names) > 0 {
			resp.Checks = make(map[string]string, len(names))
		}
		for _, name := range names {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			err := checks[name](ctx)
			cancel()
			if err != nil {
				resp.Status = "degraded"
				resp.Checks[name] = err.Error()
				continue
			}
			resp.Checks[name] = "ok"
		}
		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		httputil.WriteJSON(w, status, resp)
	}
}
