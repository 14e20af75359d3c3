// Package funding enforces the one-time airline stake.
package funding

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

// DefaultMinFunding is the fixed stake an airline submits once.
var DefaultMinFunding = domain.Units(10)

type Service struct {
	ledger     ledger.Ledger
	minFunding domain.Amount
	logger     *slog.Logger
	publisher  events.Publisher
	metrics    *metrics.Metrics
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

// WithMinFunding overrides the required stake.
func WithMinFunding(amount domain.Amount) Option {
	return func(s *Service) {
		if amount > 0 {
			s.minFunding = amount
		}
	}
}

func New(l ledger.Ledger, opts ...Option) *Service {
	s := &Service{ledger: l, minFunding: DefaultMinFunding}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MinFunding returns the exact stake SubmitFunding accepts.
func (s *Service) MinFunding() domain.Amount {
	return s.minFunding
}

// SubmitFunding moves exactly the stake from airline into the vault and marks
// it funded. Any other amount fails with InsufficientFunds.
func (s *Service) SubmitFunding(ctx context.Context, airline domain.Address, amount domain.Amount) (err error) {
	start := time.Now()
	defer func() { s.metrics.Observe("submit_funding", start, err) }()

	err = s.ledger.RunInTx(ctx, func(tx ledger.Tx) error {
		if err := tx.Authorize(); err != nil {
			return err
		}
		if tx.IsFunded(airline) {
			return dErrors.New(dErrors.CodeAlreadyFunded, "funding has already been submitted")
		}
		if amount != s.minFunding {
			return dErrors.New(dErrors.CodeInsufficientFunds, "funding must be exactly "+s.minFunding.String()+" units")
		}
		return tx.Fund(airline, amount)
	})
	if err != nil {
		return err
	}

	s.metrics.IncAirlineFunded()
	events.Emit(ctx, s.logger, s.publisher, events.New(ctx, events.TypeAirlineFunded, events.AirlineFunded{
		Airline: airline,
		Amount:  amount,
	}))
	return nil
}

// HasFundingBeenSubmitted reports whether a has staked.
func (s *Service) HasFundingBeenSubmitted(ctx context.Context, a domain.Address) (bool, error) {
	var funded bool
	err := s.ledger.View(ctx, func(r ledger.Reader) error {
		funded = r.IsFunded(a)
		return nil
	})
	return funded, err
}
