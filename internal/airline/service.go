// Package airline runs the airline admission state machine: the founder
// admits the first four airlines directly, after which a candidate needs a
// strict majority of registered airlines to vote for it.
package airline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"flightsurety/internal/events"
	"flightsurety/internal/ledger"
	"flightsurety/internal/platform/metrics"
	"flightsurety/pkg/domain"
	dErrors "flightsurety/pkg/domain-errors"
)

// FounderOnlyThreshold is the registered count below which only the founder
// may sponsor, and registration needs no vote.
const FounderOnlyThreshold = 4

// Registration is the outcome of one RegisterAirline call.
type Registration struct {
	Candidate       domain.Address
	Registered      bool
	Votes           int
	RegisteredCount int
}

// Details is an airline record plus its funding state.
type Details struct {
	ledger.Airline
	Funded bool
}

type Service struct {
	ledger    ledger.Ledger
	founder   domain.Address
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

// New constructs the registry. founder is the airline seeded at deploy time.
func New(l ledger.Ledger, founder domain.Address, opts ...Option) *Service {
	s := &Service{ledger: l, founder: founder}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Founder returns the founding airline.
func (s *Service) Founder() domain.Address {
	return s.founder
}

// AddAirline proposes a without registering it.
func (s *Service) AddAirline(ctx context.Context, a domain.Address, name string) (err error) {
	start := time.Now()
	defer func() { s.metrics.Observe("add_airline", start, err) }()

	name = strings.TrimSpace(name)
	return s.ledger.RunInTx(ctx, func(tx ledger.Tx) error {
		if err := tx.Authorize(); err != nil {
			return err
		}
		if err := validate(a, name); err != nil {
			return err
		}
		return tx.AddAirline(a, name)
	})
}

// RegisterAirline is sponsor's request to admit candidate. A candidate that
// was never proposed is added with name in the same call.
func (s *Service) RegisterAirline(ctx context.Context, sponsor, candidate domain.Address, name string) (res Registration, err error) {
	start := time.Now()
	defer func() { s.metrics.Observe("register_airline", start, err) }()

	name = strings.TrimSpace(name)
	res.Candidate = candidate
	voted := false
	err = s.ledger.RunInTx(ctx, func(tx ledger.Tx) error {
		if err := tx.Authorize(); err != nil {
			return err
		}
		existing, proposed := tx.Airline(candidate)
		if proposed && existing.Registered {
			return dErrors.New(dErrors.CodeAlreadyRegistered, "airline is already registered")
		}

		registered := tx.RegisteredAirlineCount()
		if registered < FounderOnlyThreshold {
			if sponsor != s.founder {
				return dErrors.New(dErrors.CodeFounderRequiredForFirstFour, "only the founding airline can register the first four airlines")
			}
		} else if !tx.IsAirlineRegistered(sponsor) {
			return dErrors.New(dErrors.CodeSponsorNotRegistered, "sponsor is not a registered airline")
		}

		if !proposed {
			if err := validate(candidate, name); err != nil {
				return err
			}
			if err := tx.AddAirline(candidate, name); err != nil {
				return err
			}
		}

		if registered < FounderOnlyThreshold {
			res.Registered = true
		} else {
			votes, err := tx.AddVote(candidate, sponsor)
			if err != nil {
				return err
			}
			voted = true
			res.Votes = votes
			res.Registered = hasMajority(votes, registered)
		}
		if res.Registered {
			if err := tx.RegisterAirline(candidate); err != nil {
				return err
			}
		}
		res.RegisteredCount = tx.RegisteredAirlineCount()
		return nil
	})
	if err != nil {
		return Registration{}, err
	}

	if voted {
		s.metrics.IncAirlineVote()
		events.Emit(ctx, s.logger, s.publisher, events.New(ctx, events.TypeAirlineVote, events.AirlineVote{
			Candidate:       candidate,
			Sponsor:         sponsor,
			Votes:           res.Votes,
			RegisteredCount: res.RegisteredCount,
		}))
	}
	if res.Registered {
		s.metrics.IncAirlineRegistered()
		rec, _ := s.Get(ctx, candidate)
		events.Emit(ctx, s.logger, s.publisher, events.New(ctx, events.TypeAirlineRegistered, events.AirlineRegistered{
			Airline: candidate,
			Name:    rec.Name,
			Sponsor: sponsor,
		}))
	}
	return res, nil
}

// hasMajority reports whether votes is a strict majority of registered.
// Exactly half is not enough.
func hasMajority(votes, registered int) bool {
	return votes*2 > registered
}

// HasAirlineBeenRegistered reports whether a is a registered airline.
func (s *Service) HasAirlineBeenRegistered(ctx context.Context, a domain.Address) (bool, error) {
	var registered bool
	err := s.ledger.View(ctx, func(r ledger.Reader) error {
		registered = r.IsAirlineRegistered(a)
		return nil
	})
	return registered, err
}

// Get returns the airline record of a, proposed or registered.
func (s *Service) Get(ctx context.Context, a domain.Address) (Details, error) {
	var d Details
	err := s.ledger.View(ctx, func(r ledger.Reader) error {
		rec, ok := r.Airline(a)
		if !ok {
			return dErrors.New(dErrors.CodeNotFound, "airline not found")
		}
		d = Details{Airline: rec, Funded: r.IsFunded(a)}
		return nil
	})
	return d, err
}

func validate(a domain.Address, name string) error {
	if a.IsZero() {
		return dErrors.New(dErrors.CodeInvalidInput, "airline address is required")
	}
	if name == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "airline name is required")
	}
	return nil
}
