package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"flightsurety/internal/airline"
	"flightsurety/pkg/domain"
	"flightsurety/pkg/platform/httputil"
	request "flightsurety/pkg/platform/middleware/request"
)

// AirlineService admits airlines into the consortium.
type AirlineService interface {
	AddAirline(ctx context.Context, a domain.Address, name string) error
	RegisterAirline(ctx context.Context, sponsor, candidate domain.Address, name string) (airline.Registration, error)
	Get(ctx context.Context, a domain.Address) (airline.Details, error)
}

// FundingService accepts the participation stake.
type FundingService interface {
	SubmitFunding(ctx context.Context, airline domain.Address, amount domain.Amount) error
}

type AirlineHandler struct {
	airlines AirlineService
	funding  FundingService
	logger   *slog.Logger
}

func NewAirlineHandler(airlines AirlineService, funding FundingService, logger *slog.Logger) *AirlineHandler {
	return &AirlineHandler{airlines: airlines, funding: funding, logger: logger}
}

func (h *AirlineHandler) Register(r chi.Router) {
	r.Post("/airlines", h.handleAddAirline)
	r.Post("/airlines/{address}/registrations", h.handleRegisterAirline)
	r.Get("/airlines/{address}", h.handleGetAirline)
	r.Post("/funding", h.handleSubmitFunding)
}

func (h *AirlineHandler) handleAddAirline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := requireCaller(w, r, h.logger); !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[AddAirlineRequest](w, r, h.logger, ctx, request.GetRequestID(ctx))
	if !ok {
		return
	}
	if err := h.airlines.AddAirline(ctx, req.address, req.Name); err != nil {
		writeServiceError(ctx, h.logger, w, "add airline", err)
		return
	}
	h.writeAirline(w, r, req.address, http.StatusCreated)
}

func (h *AirlineHandler) handleRegisterAirline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sponsor, ok := requireCaller(w, r, h.logger)
	if !ok {
		return
	}
	candidate, err := addressParam(r, "address")
	if err != nil {
		writeServiceError(ctx, h.logger, w, "register airline", err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[RegisterAirlineRequest](w, r, h.logger, ctx, request.GetRequestID(ctx))
	if !ok {
		return
	}
	res, err := h.airlines.RegisterAirline(ctx, sponsor, candidate, req.Name)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "register airline", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, RegistrationResponse{
		Candidate:       res.Candidate,
		Registered:      res.Registered,
		Votes:           res.Votes,
		RegisteredCount: res.RegisteredCount,
	})
}

func (h *AirlineHandler) handleGetAirline(w http.ResponseWriter, r *http.Request) {
	a, err := addressParam(r, "address")
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, "get airline", err)
		return
	}
	h.writeAirline(w, r, a, http.StatusOK)
}

func (h *AirlineHandler) writeAirline(w http.ResponseWriter, r *http.Request, a domain.Address, status int) {
	d, err := h.airlines.Get(r.Context(), a)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, "get airline", err)
		return
	}
	votes := d.Votes
	if votes == nil {
		votes = []domain.Address{}
	}
	httputil.WriteJSON(w, status, AirlineResponse{
		Address:    d.Address,
		Name:       d.Name,
		Registered: d.Registered,
		Funded:     d.Funded,
		Votes:      votes,
	})
}

func (h *AirlineHandler) handleSubmitFunding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := requireCaller(w, r, h.logger)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[PaymentRequest](w, r, h.logger, ctx, request.GetRequestID(ctx))
	if !ok {
		return
	}
	if err := h.funding.SubmitFunding(ctx, caller, req.amount); err != nil {
		writeServiceError(ctx, h.logger, w, "submit funding", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FundingResponse{Airline: caller, Funded: true, Value: req.amount.String()})
}
