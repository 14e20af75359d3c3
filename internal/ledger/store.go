// Package ledger is the storage component of the flight insurance ledger:
// funding records, airlines, flights, policies and credit balances.
//
// Logic services never touch the store directly. They hold a Ledger bound to
// their own identity via Store.Bind; the store checks that identity against
// the gate's allow-list on every mutation, so the logic layer can be replaced
// while the accumulated state stays put.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"flightsurety/pkg/domain"
	dErrors "flightsurety/pkg/domain-errors"
)

const tracerName = "flightsurety/ledger"

// Store holds all ledger state behind a single lock. One transaction runs at
// a time, which gives every call a total order.
type Store struct {
	mu       sync.RWMutex
	gate     Gate
	treasury Treasury
	vault    domain.Address
	logger   *slog.Logger
	tracer   trace.Tracer

	funded          map[domain.Address]struct{}
	airlines        map[domain.Address]*airlineRecord
	registeredCount int
	flights         map[domain.FlightKey]*Flight
	policies        map[policyKey]Policy
	flightPolicies  map[domain.FlightKey][]domain.Address
	credits         map[domain.Address]domain.Amount
}

type Option func(*Store)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithFounder seeds the founding airline as registered. This is the deploy
// step that bootstraps the network before any quorum exists.
func WithFounder(founder domain.Address, name string) Option {
	return func(s *Store) {
		s.airlines[founder] = &airlineRecord{
			name:       name,
			registered: true,
			voters:     make(map[domain.Address]struct{}),
		}
		s.registeredCount++
	}
}

// New constructs an empty store. vault is the identity holding escrowed value.
func New(gate Gate, treasury Treasury, vault domain.Address, opts ...Option) (*Store, error) {
	if gate == nil {
		return nil, fmt.Errorf("gate is required")
	}
	if treasury == nil {
		return nil, fmt.Errorf("treasury is required")
	}
	if vault.IsZero() {
		return nil, fmt.Errorf("vault address is required")
	}
	s := &Store{
		gate:           gate,
		treasury:       treasury,
		vault:          vault,
		tracer:         otel.Tracer(tracerName),
		funded:         make(map[domain.Address]struct{}),
		airlines:       make(map[domain.Address]*airlineRecord),
		flights:        make(map[domain.FlightKey]*Flight),
		policies:       make(map[policyKey]Policy),
		flightPolicies: make(map[domain.FlightKey][]domain.Address),
		credits:        make(map[domain.Address]domain.Amount),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Vault returns the identity that holds escrowed value.
func (s *Store) Vault() domain.Address {
	return s.vault
}

// Bind returns a Ledger whose transactions act as app.
func (s *Store) Bind(app domain.Address) *Handle {
	return &Handle{store: s, app: app}
}

// Handle is a Ledger bound to one logic-layer identity.
type Handle struct {
	store *Store
	app   domain.Address
}

// RunInTx runs fn as one atomic ledger call. Any error rolls back every
// mutation fn made, including value transfers.
func (h *Handle) RunInTx(ctx context.Context, fn func(tx Tx) error) (err error) {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	s := h.store
	ctx, span := s.tracer.Start(ctx, "ledger.RunInTx", trace.WithAttributes(
		attribute.String("ledger.app", h.app.String()),
	))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	t := &tx{store: s, ctx: ctx, app: h.app}
	defer func() {
		if r := recover(); r != nil {
			t.rollback()
			panic(r)
		}
		if err != nil {
			t.rollback()
			span.RecordError(err)
			span.SetStatus(codes.Error, string(dErrors.CodeOf(err)))
		}
	}()
	return fn(t)
}

// View runs fn against a consistent read-only snapshot.
func (h *Handle) View(ctx context.Context, fn func(r Reader) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "read aborted: context cancelled")
	}
	h.store.mu.RLock()
	defer h.store.mu.RUnlock()
	return fn(h.store)
}

// Reads below assume the caller holds s.mu.

func (s *Store) IsFunded(a domain.Address) bool {
	_, ok := s.funded[a]
	return ok
}

func (s *Store) Airline(a domain.Address) (Airline, bool) {
	rec, ok := s.airlines[a]
	if !ok {
		return Airline{}, false
	}
	return rec.toModel(a), true
}

func (s *Store) IsAirlineRegistered(a domain.Address) bool {
	rec, ok := s.airlines[a]
	return ok && rec.registered
}

func (s *Store) RegisteredAirlineCount() int {
	return s.registeredCount
}

func (s *Store) Flight(key domain.FlightKey) (Flight, bool) {
	f, ok := s.flights[key]
	if !ok {
		return Flight{}, false
	}
	return *f, true
}

func (s *Store) Policy(passenger domain.Address, key domain.FlightKey) (Policy, bool) {
	p, ok := s.policies[policyKey{passenger: passenger, flight: key}]
	return p, ok
}

func (s *Store) Credits(passenger domain.Address) domain.Amount {
	return s.credits[passenger]
}

func translateTransferError(err error, msg string) error {
	var coded *dErrors.Error
	if errors.As(err, &coded) {
		return err
	}
	if isInsufficient(err) {
		return dErrors.Wrap(err, dErrors.CodeInsufficientFunds, msg)
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}
