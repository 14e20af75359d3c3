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

// InsuranceService sells policies and pays out credits.
type InsuranceService interface {
	BuyInsurance(ctx context.Context, passenger domain.Address, key domain.FlightKey, payment domain.Amount) (ledger.Policy, error)
	GetPolicy(ctx context.Context, passenger domain.Address, key domain.FlightKey) (ledger.Policy, error)
	GetCredits(ctx context.Context, passenger domain.Address) (domain.Amount, error)
	WithdrawCredits(ctx context.Context, passenger domain.Address) (domain.Amount, error)
}

type InsuranceHandler struct {
	insurance InsuranceService
	logger    *slog.Logger
}

func NewInsuranceHandler(insurance InsuranceService, logger *slog.Logger) *InsuranceHandler {
	return &InsuranceHandler{insurance: insurance, logger: logger}
}

func (h *InsuranceHandler) Register(r chi.Router) {
	r.Post("/insurance", h.handleBuyInsurance)
	r.Get("/insurance/{airline}/{code}/{timestamp}", h.handleGetPolicy)
	r.Get("/credits", h.handleGetCredits)
	r.Post("/credits/withdrawals", h.handleWithdrawCredits)
}

func (h *InsuranceHandler) handleBuyInsurance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	passenger, ok := requireCaller(w, r, h.logger)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[BuyInsuranceRequest](w, r, h.logger, ctx, request.GetRequestID(ctx))
	if !ok {
		return
	}
	p, err := h.insurance.BuyInsurance(ctx, passenger, req.key, req.amount)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "buy insurance", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toPolicyResponse(p))
}

func (h *InsuranceHandler) handleGetPolicy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	passenger, ok := requireCaller(w, r, h.logger)
	if !ok {
		return
	}
	key, err := flightKeyParams(r)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "get policy", err)
		return
	}
	p, err := h.insurance.GetPolicy(ctx, passenger, key)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "get policy", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toPolicyResponse(p))
}

func (h *InsuranceHandler) handleGetCredits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	passenger, ok := requireCaller(w, r, h.logger)
	if !ok {
		return
	}
	credits, err := h.insurance.GetCredits(ctx, passenger)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "get credits", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, CreditsResponse{Passenger: passenger, Credits: credits.String()})
}

func (h *InsuranceHandler) handleWithdrawCredits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	passenger, ok := requireCaller(w, r, h.logger)
	if !ok {
		return
	}
	paid, err := h.insurance.WithdrawCredits(ctx, passenger)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "withdraw credits", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, WithdrawalResponse{Passenger: passenger, Paid: paid.String()})
}

func toPolicyResponse(p ledger.Policy) PolicyResponse {
	return PolicyResponse{
		Passenger:  p.Passenger,
		Airline:    p.Flight.Airline,
		Code:       p.Flight.Code,
		Timestamp:  p.Flight.Timestamp,
		AmountPaid: p.AmountPaid.String(),
	}
}
