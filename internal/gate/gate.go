// Package gate implements the process-wide operational switch and the caller
// allow-list consulted by every mutating ledger operation.
//
// Lifecycle: New starts operational with the deployer as owner. The gate owns
// no goroutines; dropping the last reference is the teardown.
package gate

import (
	"context"
	"log/slog"
	"sync"

	"flightsurety/internal/events"
	"flightsurety/pkg/domain"
	dErrors "flightsurety/pkg/domain-errors"
)

// StatusObserver is notified after the operational flag changes.
type StatusObserver interface {
	SetOperational(operational bool)
}

// Gate holds the operational flag, the owner identity and the set of logic
// identities allowed to mutate ledger state.
type Gate struct {
	mu          sync.RWMutex
	owner       domain.Address
	operational bool
	authorized  map[domain.Address]struct{}
	logger      *slog.Logger
	observer    StatusObserver
	publisher   events.Publisher
}

type Option func(*Gate)

func WithLogger(logger *slog.Logger) Option {
	return func(g *Gate) {
		g.logger = logger
	}
}

func WithObserver(observer StatusObserver) Option {
	return func(g *Gate) {
		g.observer = observer
	}
}

// WithPublisher emits a gate.status event on every operational flag change.
func WithPublisher(publisher events.Publisher) Option {
	return func(g *Gate) {
		g.publisher = publisher
	}
}

// New creates an operational gate owned by owner.
func New(owner domain.Address, opts ...Option) *Gate {
	g := &Gate{
		owner:       owner,
		operational: true,
		authorized:  make(map[domain.Address]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.observer != nil {
		g.observer.SetOperational(true)
	}
	return g
}

// Owner returns the owner identity.
func (g *Gate) Owner() domain.Address {
	return g.owner
}

// IsOperational reports whether mutations are currently allowed.
func (g *Gate) IsOperational() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.operational
}

// SetOperatingStatus flips the operational flag. Only the owner may call it,
// and it is the one mutation that is never blocked by a pause.
func (g *Gate) SetOperatingStatus(ctx context.Context, caller domain.Address, operational bool) error {
	if caller != g.owner {
		return dErrors.New(dErrors.CodeUnauthorized, "caller is not the contract owner")
	}
	g.mu.Lock()
	changed := g.operational != operational
	g.operational = operational
	g.mu.Unlock()

	if changed {
		if g.observer != nil {
			g.observer.SetOperational(operational)
		}
		if g.logger != nil {
			g.logger.InfoContext(ctx, "operating status changed", "operational", operational, "caller", caller)
		}
		events.Emit(ctx, g.logger, g.publisher, events.New(ctx, events.TypeGateStatus, events.GateStatus{
			Operational: operational,
			Caller:      caller,
		}))
	}
	return nil
}

// AuthorizeCaller adds app to the allow-list.
func (g *Gate) AuthorizeCaller(ctx context.Context, caller, app domain.Address) error {
	if err := g.requireOwnerWhileOperational(caller); err != nil {
		return err
	}
	if app.IsZero() {
		return dErrors.New(dErrors.CodeInvalidInput, "caller address is required")
	}
	g.mu.Lock()
	g.authorized[app] = struct{}{}
	g.mu.Unlock()

	if g.logger != nil {
		g.logger.InfoContext(ctx, "caller authorized", "app", app)
	}
	return nil
}

// DeauthorizeCaller removes app from the allow-list.
func (g *Gate) DeauthorizeCaller(ctx context.Context, caller, app domain.Address) error {
	if err := g.requireOwnerWhileOperational(caller); err != nil {
		return err
	}
	g.mu.Lock()
	delete(g.authorized, app)
	g.mu.Unlock()

	if g.logger != nil {
		g.logger.InfoContext(ctx, "caller deauthorized", "app", app)
	}
	return nil
}

// IsCallerAuthorized reports whether app is on the allow-list.
func (g *Gate) IsCallerAuthorized(app domain.Address) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.authorized[app]
	return ok
}

// RequireOperational fails with CodeContractPaused while paused.
func (g *Gate) RequireOperational() error {
	if !g.IsOperational() {
		return dErrors.New(dErrors.CodeContractPaused, "contract is currently not operational")
	}
	return nil
}

// RequireAuthorized fails with CodeCallerNotAuthorized unless app is allow-listed.
func (g *Gate) RequireAuthorized(app domain.Address) error {
	if !g.IsCallerAuthorized(app) {
		return dErrors.New(dErrors.CodeCallerNotAuthorized, "caller is not authorized")
	}
	return nil
}

func (g *Gate) requireOwnerWhileOperational(caller domain.Address) error {
	if err := g.RequireOperational(); err != nil {
		return err
	}
	if caller != g.owner {
		return dErrors.New(dErrors.CodeUnauthorized, "caller is not the contract owner")
	}
	return nil
}
