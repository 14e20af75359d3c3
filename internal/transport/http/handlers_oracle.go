package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"flightsurety/internal/oracle"
	"flightsurety/pkg/domain"
	"flightsurety/pkg/platform/httputil"
	request "flightsurety/pkg/platform/middleware/request"
)

// OracleService registers oracles and accepts their status reports.
type OracleService interface {
	RegisterOracle(ctx context.Context, addr domain.Address, payment domain.Amount) ([]uint8, error)
	GetMyIndexes(ctx context.Context, addr domain.Address) ([]uint8, error)
	SubmitOracleResponse(ctx context.Context, addr domain.Address, index uint8, key domain.FlightKey, status domain.Status) (oracle.Response, error)
}

type OracleHandler struct {
	oracles OracleService
	logger  *slog.Logger
}

func NewOracleHandler(oracles OracleService, logger *slog.Logger) *OracleHandler {
	return &OracleHandler{oracles: oracles, logger: logger}
}

func (h *OracleHandler) Register(r chi.Router) {
	r.Post("/oracles", h.handleRegisterOracle)
	r.Get("/oracles/me/indexes", h.handleGetMyIndexes)
	r.Post("/oracles/responses", h.handleSubmitResponse)
}

func (h *OracleHandler) handleRegisterOracle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := requireCaller(w, r, h.logger)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[PaymentRequest](w, r, h.logger, ctx, request.GetRequestID(ctx))
	if !ok {
		return
	}
	indexes, err := h.oracles.RegisterOracle(ctx, caller, req.amount)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "register oracle", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, OracleIndexesResponse{Oracle: caller, Indexes: toInts(indexes)})
}

func (h *OracleHandler) handleGetMyIndexes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := requireCaller(w, r, h.logger)
	if !ok {
		return
	}
	indexes, err := h.oracles.GetMyIndexes(ctx, caller)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "get oracle indexes", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, OracleIndexesResponse{Oracle: caller, Indexes: toInts(indexes)})
}

func (h *OracleHandler) handleSubmitResponse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := requireCaller(w, r, h.logger)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[OracleResponseRequest](w, r, h.logger, ctx, request.GetRequestID(ctx))
	if !ok {
		return
	}
	res, err := h.oracles.SubmitOracleResponse(ctx, caller, req.index, req.key, req.status)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "submit oracle response", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, OracleSubmissionResponse{
		Accepted:   !res.Ignored,
		Count:      res.Count,
		Finalized:  res.Finalized,
		Credited:   len(res.Credits),
		StatusCode: uint8(req.status),
		Status:     req.status.String(),
	})
}

func toInts(indexes []uint8) []int {
	out := make([]int, len(indexes))
	for i, idx := range indexes {
		out[i] = int(idx)
	}
	return out
}
