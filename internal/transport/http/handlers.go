package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"flightsurety/internal/ledger"
	"flightsurety/pkg/domain"
	dErrors "flightsurety/pkg/domain-errors"
	"flightsurety/pkg/platform/httputil"
	authmw "flightsurety/pkg/platform/middleware/auth"
	request "flightsurety/pkg/platform/middleware/request"
)

// writeServiceError logs a failed call at a level matching its cause and
// writes the error envelope.
func writeServiceError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, op string, err error) {
	requestID := request.GetRequestID(ctx)
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		logger.ErrorContext(ctx, op+" failed",
			"request_id", requestID,
			"error", err,
		)
	} else {
		logger.WarnContext(ctx, op+" rejected",
			"request_id", requestID,
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}

// requireCaller returns the authenticated identity. A zero caller means the
// auth middleware was not mounted.
func requireCaller(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (domain.Address, bool) {
	caller := authmw.GetCaller(r)
	if caller.IsZero() {
		ctx := r.Context()
		logger.ErrorContext(ctx, "caller missing from context despite auth middleware",
			"request_id", request.GetRequestID(ctx),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthenticated, "authentication required"))
		return domain.Address{}, false
	}
	return caller, true
}

func addressParam(r *http.Request, name string) (domain.Address, error) {
	return domain.ParseAddress(chi.URLParam(r, name))
}

// flightKeyParams reads {airline}/{code}/{timestamp} path segments.
func flightKeyParams(r *http.Request) (domain.FlightKey, error) {
	airline, err := addressParam(r, "airline")
	if err != nil {
		return domain.FlightKey{}, err
	}
	ts, err := strconv.ParseInt(chi.URLParam(r, "timestamp"), 10, 64)
	if err != nil {
		return domain.FlightKey{}, dErrors.New(dErrors.CodeInvalidInput, "timestamp must be an integer")
	}
	return domain.NewFlightKey(airline, chi.URLParam(r, "code"), ts)
}

func toFlightResponse(f ledger.Flight) FlightResponse {
	return FlightResponse{
		Airline:    f.Key.Airline,
		Code:       f.Key.Code,
		Timestamp:  f.Key.Timestamp,
		Registered: f.IsRegistered,
		StatusCode: uint8(f.Status),
		Status:     f.Status.String(),
	}
}
