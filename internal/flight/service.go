// Package flight registers flights and hands status requests to the oracle
// engine.
package flight

import (
	"context"
	"log/slog"
	"time"

	"flightsurety/internal/events"
	"flightsurety/internal/ledger"
	"flightsurety/internal/platform/metrics"
	"flightsurety/pkg/domain"
	dErrors "flightsurety/pkg/domain-errors"
)

// StatusRequester opens an oracle status request and returns its index.
type StatusRequester interface {
	RequestStatus(ctx context.Context, key domain.FlightKey) (uint8, error)
}

type Service struct {
	ledger    ledger.Ledger
	requester StatusRequester
	logger    *slog.Logger
	publisher events.Publisher
	metrics   *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithPublisher(publisher events.Publisher) Option {
	return func(s *Service) {
		s.publisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(l ledger.Ledger, requester StatusRequester, opts ...Option) *Service {
	s := &Service{ledger: l, requester: requester}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterFlight records a flight for a registered, funded airline with
// status Unknown.
func (s *Service) RegisterFlight(ctx context.Context, airline domain.Address, code string, timestamp int64) (f ledger.Flight, err error) {
	start := time.Now()
	defer func() { s.metrics.Observe("register_flight", start, err) }()

	err = s.ledger.RunInTx(ctx, func(tx ledger.Tx) error {
		if err := tx.Authorize(); err != nil {
			return err
		}
		key, err := domain.NewFlightKey(airline, code, timestamp)
		if err != nil {
			return err
		}
		if !tx.IsAirlineRegistered(airline) {
			return dErrors.New(dErrors.CodeAirlineNotRegistered, "airline is not registered")
		}
		if !tx.IsFunded(airline) {
			return dErrors.New(dErrors.CodeAirlineNotFunded, "airline has not submitted funding")
		}
		if err := tx.AddFlight(key); err != nil {
			return err
		}
		f, _ = tx.Flight(key)
		return nil
	})
	if err != nil {
		return ledger.Flight{}, err
	}

	s.metrics.IncFlightRegistered()
	events.Emit(ctx, s.logger, s.publisher, events.New(ctx, events.TypeFlightRegistered, events.FlightRegistered{
		Airline:   f.Key.Airline,
		Flight:    f.Key.Code,
		Timestamp: f.Key.Timestamp,
	}))
	return f, nil
}

// FetchFlightStatus asks oracles to report on a flight. It does not touch the
// flight record; the outcome arrives later through oracle responses. The gate
// is checked before the key, as for every other mutation.
func (s *Service) FetchFlightStatus(ctx context.Context, airline domain.Address, code string, timestamp int64) (index uint8, err error) {
	start := time.Now()
	defer func() { s.metrics.Observe("fetch_flight_status", start, err) }()

	var key domain.FlightKey
	err = s.ledger.RunInTx(ctx, func(tx ledger.Tx) error {
		if err := tx.Authorize(); err != nil {
			return err
		}
		k, err := domain.NewFlightKey(airline, code, timestamp)
		key = k
		return err
	})
	if err != nil {
		return 0, err
	}
	return s.requester.RequestStatus(ctx, key)
}

// GetFlight returns the flight record. A finalized flight has a terminal
// status.
func (s *Service) GetFlight(ctx context.Context, key domain.FlightKey) (ledger.Flight, error) {
	var f ledger.Flight
	err := s.ledger.View(ctx, func(r ledger.Reader) error {
		var ok bool
		f, ok = r.Flight(key)
		if !ok {
			return dErrors.New(dErrors.CodeFlightUnknown, "flight is not registered")
		}
		return nil
	})
	return f, err
}
