package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"flightsurety/internal/ledger"
	"flightsurety/pkg/domain"
	"flightsurety/pkg/platform/httputil"
	request "flightsurety/pkg/platform/middleware/request"
)

// FlightService registers flights and triggers oracle requests for them.
type FlightService interface {
	RegisterFlight(ctx context.Context, airline domain.Address, code string, timestamp int64) (ledger.Flight, error)
	FetchFlightStatus(ctx context.Context, airline domain.Address, code string, timestamp int64) (uint8, error)
	GetFlight(ctx context.Context, key domain.FlightKey) (ledger.Flight, error)
}

type FlightHandler struct {
	flights FlightService
	logger  *slog.Logger
}

func NewFlightHandler(flights FlightService, logger *slog.Logger) *FlightHandler {
	return &FlightHandler{flights: flights, logger: logger}
}

func (h *FlightHandler) Register(r chi.Router) {
	r.Post("/flights", h.handleRegisterFlight)
	r.Get("/flights/{airline}/{code}/{timestamp}", h.handleGetFlight)
	r.Post("/flights/{airline}/{code}/{timestamp}/status-requests", h.handleFetchFlightStatus)
}

// handleRegisterFlight registers a flight for the calling airline.
func (h *FlightHandler) handleRegisterFlight(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := requireCaller(w, r, h.logger)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[RegisterFlightRequest](w, r, h.logger, ctx, request.GetRequestID(ctx))
	if !ok {
		return
	}
	f, err := h.flights.RegisterFlight(ctx, caller, req.Code, req.Timestamp)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "register flight", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toFlightResponse(f))
}

func (h *FlightHandler) handleGetFlight(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key, err := flightKeyParams(r)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "get flight", err)
		return
	}
	f, err := h.flights.GetFlight(ctx, key)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "get flight", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toFlightResponse(f))
}

func (h *FlightHandler) handleFetchFlightStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := requireCaller(w, r, h.logger); !ok {
		return
	}
	key, err := flightKeyParams(r)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "fetch flight status", err)
		return
	}
	index, err := h.flights.FetchFlightStatus(ctx, key.Airline, key.Code, key.Timestamp)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "fetch flight status", err)
		return
	}
	httputil.WriteJSON(w, http.StatusAccepted, StatusRequestResponse{
		Index:     index,
		Airline:   key.Airline,
		Code:      key.Code,
		Timestamp: key.Timestamp,
	})
}
