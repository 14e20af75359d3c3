package ledger

import (
	"context"

	"flightsurety/pkg/domain"
)

// Gate is the access check consulted by every mutation.
type Gate interface {
	RequireOperational() error
	RequireAuthorized(app domain.Address) error
}

// Treasury moves native currency between identities.
type Treasury interface {
	Transfer(ctx context.Context, from, to domain.Address, amount domain.Amount) error
}

// Reader is the read-only view of ledger state.
type Reader interface {
	IsFunded(a domain.Address) bool
	Airline(a domain.Address) (Airline, bool)
	IsAirlineRegistered(a domain.Address) bool
	RegisteredAirlineCount() int
	Flight(key domain.FlightKey) (Flight, bool)
	Policy(passenger domain.Address, key domain.FlightKey) (Policy, bool)
	Credits(passenger domain.Address) domain.Amount
}

// Tx is a ledger transaction. Every mutation checks the gate first and
// records how to undo itself; a failed transaction leaves no trace.
type Tx interface {
	Reader

	// Authorize runs the gate check every mutation runs. Services call it
	// first so that a precondition failure never masks a pause.
	Authorize() error

	// Collect moves amount from an identity into the ledger vault.
	Collect(from domain.Address, amount domain.Amount) error

	// Fund records a one-time stake and collects it.
	Fund(a domain.Address, stake domain.Amount) error

	AddAirline(a domain.Address, name string) error
	RegisterAirline(a domain.Address) error

	// AddVote records sponsor's vote for candidate and returns the vote count.
	AddVote(candidate, sponsor domain.Address) (int, error)

	AddFlight(key domain.FlightKey) error

	// SetFlightStatus finalizes a flight; only Unknown flights can transition.
	SetFlightStatus(key domain.FlightKey, status domain.Status) error

	// AddPolicy records a policy and collects its premium.
	AddPolicy(passenger domain.Address, key domain.FlightKey, premium domain.Amount) error

	// CreditInsurees credits every policyholder of key with
	// amountPaid*multiplierTenths/10.
	CreditInsurees(key domain.FlightKey, multiplierTenths uint64) ([]Credit, error)

	// WithdrawCredits zeroes the balance, then pays it out of the vault.
	WithdrawCredits(passenger domain.Address) (domain.Amount, error)
}

// Ledger is the storage surface injected into logic services.
type Ledger interface {
	RunInTx(ctx context.Context, fn func(tx Tx) error) error
	View(ctx context.Context, fn func(r Reader) error) error
}
