package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"flightsurety/pkg/domain"
	"flightsurety/pkg/platform/httputil"
	request "flightsurety/pkg/platform/middleware/request"
)

// GateService is the operational switch and caller allow-list.
type GateService interface {
	IsOperational() bool
	SetOperatingStatus(ctx context.Context, caller domain.Address, operational bool) error
	AuthorizeCaller(ctx context.Context, caller, app domain.Address) error
	DeauthorizeCaller(ctx context.Context, caller, app domain.Address) error
	IsCallerAuthorized(app domain.Address) bool
}

type GateHandler struct {
	gate   GateService
	logger *slog.Logger
}

func NewGateHandler(gate GateService, logger *slog.Logger) *GateHandler {
	return &GateHandler{gate: gate, logger: logger}
}

func (h *GateHandler) Register(r chi.Router) {
	r.Get("/operational", h.handleGetOperational)
	r.Put("/operational", h.handleSetOperational)
	r.Post("/admin/callers", h.handleAuthorizeCaller)
	r.Delete("/admin/callers/{address}", h.handleDeauthorizeCaller)
}

func (h *GateHandler) handleGetOperational(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, OperationalResponse{Operational: h.gate.IsOperational()})
}

func (h *GateHandler) handleSetOperational(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := requireCaller(w, r, h.logger)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[OperationalRequest](w, r, h.logger, ctx, request.GetRequestID(ctx))
	if !ok {
		return
	}
	if err := h.gate.SetOperatingStatus(ctx, caller, *req.Operational); err != nil {
		writeServiceError(ctx, h.logger, w, "set operating status", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, OperationalResponse{Operational: h.gate.IsOperational()})
}

func (h *GateHandler) handleAuthorizeCaller(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := requireCaller(w, r, h.logger)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[CallerRequest](w, r, h.logger, ctx, request.GetRequestID(ctx))
	if !ok {
		return
	}
	if err := h.gate.AuthorizeCaller(ctx, caller, req.address); err != nil {
		writeServiceError(ctx, h.logger, w, "authorize caller", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, CallerResponse{Address: req.address, Authorized: h.gate.IsCallerAuthorized(req.address)})
}

func (h *GateHandler) handleDeauthorizeCaller(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := requireCaller(w, r, h.logger)
	if !ok {
		return
	}
	app, err := addressParam(r, "address")
	if err != nil {
		writeServiceError(ctx, h.logger, w, "deauthorize caller", err)
		return
	}
	if err := h.gate.DeauthorizeCaller(ctx, caller, app); err != nil {
		writeServiceError(ctx, h.logger, w, "deauthorize caller", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, CallerResponse{Address: app, Authorized: h.gate.IsCallerAuthorized(app)})
}
