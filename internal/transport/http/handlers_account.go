package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"flightsurety/pkg/domain"
	dErrors "flightsurety/pkg/domain-errors"
	"flightsurety/pkg/platform/httputil"
)

// AccountService reads treasury balances.
type AccountService interface {
	Balance(ctx context.Context, a domain.Address) (domain.Amount, error)
}

type AccountHandler struct {
	accounts AccountService
	logger   *slog.Logger
}

func NewAccountHandler(accounts AccountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{accounts: accounts, logger: logger}
}

func (h *AccountHandler) Register(r chi.Router) {
	r.Get("/accounts/me", h.handleGetAccount)
}

func (h *AccountHandler) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := requireCaller(w, r, h.logger)
	if !ok {
		return
	}
	balance, err := h.accounts.Balance(ctx, caller)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "get balance", dErrors.Wrap(err, dErrors.CodeInternal, "failed to read balance"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, AccountResponse{Address: caller, Balance: balance.String()})
}
