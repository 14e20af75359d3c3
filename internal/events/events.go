// Package events defines the notifications the ledger emits for asynchronous
// collaborators (oracle participants, clients) and the sinks that carry them.
package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"flightsurety/pkg/domain"
	"flightsurety/pkg/requestcontext"
)

// Type names an event.
type Type string

const (
	TypeOracleRequest      Type = "oracle.request"
	TypeOracleReport       Type = "oracle.report"
	TypeOracleRegistered   Type = "oracle.registered"
	TypeFlightStatusInfo   Type = "flight.status"
	TypeFlightRegistered   Type = "flight.registered"
	TypeAirlineVote        Type = "airline.vote"
	TypeAirlineRegistered  Type = "airline.registered"
	TypeAirlineFunded      Type = "airline.funded"
	TypeInsurancePurchased Type = "insurance.purchased"
	TypeInsureesCredited   Type = "insurance.credited"
	TypeCreditsWithdrawn   Type = "credits.withdrawn"
	TypeGateStatus         Type = "gate.status"
)

// Event is one notification. Payload is one of the payload structs below.
type Event struct {
	ID         uuid.UUID `json:"id"`
	Type       Type      `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	RequestID  string    `json:"request_id,omitempty"`
	Payload    any       `json:"payload"`
}

// New stamps an event with a fresh ID and the request-scoped time.
func New(ctx context.Context, typ Type, payload any) Event {
	return Event{
		ID:         uuid.New(),
		Type:       typ,
		OccurredAt: requestcontext.Now(ctx).UTC(),
		RequestID:  requestcontext.RequestID(ctx),
		Payload:    payload,
	}
}

// Publisher delivers events to a sink.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Emit logs the event and hands it to publisher. Delivery failures are logged
// and swallowed: the ledger call that produced the event has already committed.
func Emit(ctx context.Context, logger *slog.Logger, publisher Publisher, event Event) {
	if logger != nil {
		logger.InfoContext(ctx, string(event.Type),
			"event_id", event.ID,
			"request_id", event.RequestID,
			"log_type", "event",
		)
	}
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil && logger != nil {
		logger.WarnContext(ctx, "failed to publish event", "event", event.Type, "event_id", event.ID, "error", err)
	}
}

// OracleRequest asks oracles holding Index to report a flight's status.
type OracleRequest struct {
	Index     uint8          `json:"index"`
	Airline   domain.Address `json:"airline"`
	Flight    string         `json:"flight"`
	Timestamp int64          `json:"timestamp"`
}

// OracleReport records one accepted oracle response.
type OracleReport struct {
	Oracle    domain.Address `json:"oracle"`
	Index     uint8          `json:"index"`
	Airline   domain.Address `json:"airline"`
	Flight    string         `json:"flight"`
	Timestamp int64          `json:"timestamp"`
	Status    domain.Status  `json:"status"`
}

// OracleRegistered announces a new oracle and its indexes.
type OracleRegistered struct {
	Oracle  domain.Address `json:"oracle"`
	Indexes []uint8        `json:"indexes"`
}

// FlightStatusInfo announces the finalized status of a flight.
type FlightStatusInfo struct {
	Airline   domain.Address `json:"airline"`
	Flight    string         `json:"flight"`
	Timestamp int64          `json:"timestamp"`
	Status    domain.Status  `json:"status"`
}

type FlightRegistered struct {
	Airline   domain.Address `json:"airline"`
	Flight    string         `json:"flight"`
	Timestamp int64          `json:"timestamp"`
}

type AirlineVote struct {
	Candidate       domain.Address `json:"candidate"`
	Sponsor         domain.Address `json:"sponsor"`
	Votes           int            `json:"votes"`
	RegisteredCount int            `json:"registered_count"`
}

type AirlineRegistered struct {
	Airline domain.Address `json:"airline"`
	Name    string         `json:"name"`
	Sponsor domain.Address `json:"sponsor"`
}

type AirlineFunded struct {
	Airline domain.Address `json:"airline"`
	Amount  domain.Amount  `json:"amount"`
}

type InsurancePurchased struct {
	Passenger domain.Address `json:"passenger"`
	Airline   domain.Address `json:"airline"`
	Flight    string         `json:"flight"`
	Timestamp int64          `json:"timestamp"`
	Amount    domain.Amount  `json:"amount"`
}

type Credit struct {
	Passenger domain.Address `json:"passenger"`
	Amount    domain.Amount  `json:"amount"`
}

type InsureesCredited struct {
	Airline   domain.Address `json:"airline"`
	Flight    string         `json:"flight"`
	Timestamp int64          `json:"timestamp"`
	Credits   []Credit       `json:"credits"`
}

type CreditsWithdrawn struct {
	Passenger domain.Address `json:"passenger"`
	Amount    domain.Amount  `json:"amount"`
}

// GateStatus announces an operational flag change.
type GateStatus struct {
	Operational bool           `json:"operational"`
	Caller      domain.Address `json:"caller"`
}
