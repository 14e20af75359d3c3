// Package insurance sells capped flight-delay policies, credits policyholders
// when a flight finalizes late through the airline's fault, and pays credits
// out on request.
package insurance

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

var (
	// DefaultMaxPremium caps what a passenger may pay for one policy.
	DefaultMaxPremium = domain.Units(1)

	// DefaultPayoutTenths credits 1.5x the premium.
	DefaultPayoutTenths uint64 = 15
)

type Service struct {
	ledger       ledger.Ledger
	maxPremium   domain.Amount
	payoutTenths uint64
	logger       *slog.Logger
	publisher    events.Publisher
	metrics      *metrics.Metrics
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

func WithMaxPremium(amount domain.Amount) Option {
	return func(s *Service) {
		if amount > 0 {
			s.maxPremium = amount
		}
	}
}

// WithPayoutTenths sets the payout multiplier in tenths (15 = 1.5x).
func WithPayoutTenths(tenths uint64) Option {
	return func(s *Service) {
		if tenths > 0 {
			s.payoutTenths = tenths
		}
	}
}

func New(l ledger.Ledger, opts ...Option) *Service {
	s := &Service{ledger: l, maxPremium: DefaultMaxPremium, payoutTenths: DefaultPayoutTenths}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) MaxPremium() domain.Amount {
	return s.maxPremium
}

// BuyInsurance escrows payment as the premium of passenger's policy on key.
func (s *Service) BuyInsurance(ctx context.Context, passenger domain.Address, key domain.FlightKey, payment domain.Amount) (p ledger.Policy, err error) {
	start := time.Now()
	defer func() { s.metrics.Observe("buy_insurance", start, err) }()

	err = s.ledger.RunInTx(ctx, func(tx ledger.Tx) error {
		if err := tx.Authorize(); err != nil {
			return err
		}
		if payment.IsZero() {
			return dErrors.New(dErrors.CodeInvalidInput, "payment is required")
		}
		if _, ok := tx.Flight(key); !ok {
			return dErrors.New(dErrors.CodeFlightUnknown, "flight is not registered")
		}
		if _, ok := tx.Policy(passenger, key); ok {
			return dErrors.New(dErrors.CodePolicyAlreadyExists, "passenger already insured this flight")
		}
		if payment > s.maxPremium {
			return dErrors.New(dErrors.CodePaymentExceedsCap, "premium is capped at "+s.maxPremium.String()+" units")
		}
		if err := tx.AddPolicy(passenger, key, payment); err != nil {
			return err
		}
		p, _ = tx.Policy(passenger, key)
		return nil
	})
	if err != nil {
		return ledger.Policy{}, err
	}

	s.metrics.AddPolicy(uint64(payment))
	events.Emit(ctx, s.logger, s.publisher, events.New(ctx, events.TypeInsurancePurchased, events.InsurancePurchased{
		Passenger: passenger,
		Airline:   key.Airline,
		Flight:    key.Code,
		Timestamp: key.Timestamp,
		Amount:    payment,
	}))
	return p, nil
}

// CreditInsurees credits every policyholder of key inside the caller's
// transaction. Only the oracle engine calls it, while finalizing a flight.
func (s *Service) CreditInsurees(tx ledger.Tx, key domain.FlightKey) ([]ledger.Credit, error) {
	return tx.CreditInsurees(key, s.payoutTenths)
}

// GetCredits returns what passenger can withdraw.
func (s *Service) GetCredits(ctx context.Context, passenger domain.Address) (domain.Amount, error) {
	var owed domain.Amount
	err := s.ledger.View(ctx, func(r ledger.Reader) error {
		owed = r.Credits(passenger)
		return nil
	})
	return owed, err
}

// GetPolicy returns passenger's policy on key.
func (s *Service) GetPolicy(ctx context.Context, passenger domain.Address, key domain.FlightKey) (ledger.Policy, error) {
	var p ledger.Policy
	err := s.ledger.View(ctx, func(r ledger.Reader) error {
		var ok bool
		p, ok = r.Policy(passenger, key)
		if !ok {
			return dErrors.New(dErrors.CodeNotFound, "policy not found")
		}
		return nil
	})
	return p, err
}

// WithdrawCredits pays passenger's whole balance out of the vault. The
// balance is zeroed before the transfer; a failed transfer restores it.
func (s *Service) WithdrawCredits(ctx context.Context, passenger domain.Address) (paid domain.Amount, err error) {
	start := time.Now()
	defer func() { s.metrics.Observe("withdraw_credits", start, err) }()

	err = s.ledger.RunInTx(ctx, func(tx ledger.Tx) error {
		var err error
		paid, err = tx.WithdrawCredits(passenger)
		return err
	})
	if err != nil {
		return 0, err
	}

	s.metrics.AddCreditsWithdrawn(uint64(paid))
	events.Emit(ctx, s.logger, s.publisher, events.New(ctx, events.TypeCreditsWithdrawn, events.CreditsWithdrawn{
		Passenger: passenger,
		Amount:    paid,
	}))
	return paid, nil
}
