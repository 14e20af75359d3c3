package ledger

import (
	"context"
	"errors"

	"flightsurety/pkg/domain"
	dErrors "flightsurety/pkg/domain-errors"
	"flightsurety/pkg/platform/sentinel"
)

// tx embeds the store for reads and keeps an undo log for writes.
type tx struct {
	store *Store
	ctx   context.Context
	app   domain.Address
	undo  []func()
}

func (t *tx) onRollback(fn func()) {
	t.undo = append(t.undo, fn)
}

func (t *tx) rollback() {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}

// guard enforces the gate for the bound logic identity.
func (t *tx) guard() error {
	if err := t.store.gate.RequireOperational(); err != nil {
		return err
	}
	return t.store.gate.RequireAuthorized(t.app)
}

func (t *tx) Authorize() error {
	return t.guard()
}

func isInsufficient(err error) bool {
	return errors.Is(err, sentinel.ErrInsufficient)
}

func (t *tx) IsFunded(a domain.Address) bool             { return t.store.IsFunded(a) }
func (t *tx) Airline(a domain.Address) (Airline, bool)   { return t.store.Airline(a) }
func (t *tx) IsAirlineRegistered(a domain.Address) bool  { return t.store.IsAirlineRegistered(a) }
func (t *tx) RegisteredAirlineCount() int                { return t.store.RegisteredAirlineCount() }
func (t *tx) Flight(key domain.FlightKey) (Flight, bool) { return t.store.Flight(key) }
func (t *tx) Credits(p domain.Address) domain.Amount     { return t.store.Credits(p) }
func (t *tx) Policy(p domain.Address, key domain.FlightKey) (Policy, bool) {
	return t.store.Policy(p, key)
}

func (t *tx) Collect(from domain.Address, amount domain.Amount) error {
	if err := t.guard(); err != nil {
		return err
	}
	if amount == 0 {
		return nil
	}
	s := t.store
	if err := s.treasury.Transfer(t.ctx, from, s.vault, amount); err != nil {
		return translateTransferError(err, "payment could not be collected")
	}
	t.onRollback(func() {
		if err := s.treasury.Transfer(context.WithoutCancel(t.ctx), s.vault, from, amount); err != nil && s.logger != nil {
			s.logger.ErrorContext(t.ctx, "failed to refund rolled back payment",
				"from", from, "amount", amount, "error", err)
		}
	})
	return nil
}

func (t *tx) Fund(a domain.Address, stake domain.Amount) error {
	if err := t.guard(); err != nil {
		return err
	}
	s := t.store
	if s.IsFunded(a) {
		return dErrors.New(dErrors.CodeAlreadyFunded, "funding has already been submitted")
	}
	if err := t.Collect(a, stake); err != nil {
		return err
	}
	s.funded[a] = struct{}{}
	t.onRollback(func() { delete(s.funded, a) })
	return nil
}

func (t *tx) AddAirline(a domain.Address, name string) error {
	if err := t.guard(); err != nil {
		return err
	}
	s := t.store
	if _, ok := s.airlines[a]; ok {
		return dErrors.New(dErrors.CodeAlreadyExists, "airline already exists")
	}
	s.airlines[a] = &airlineRecord{name: name, voters: make(map[domain.Address]struct{})}
	t.onRollback(func() { delete(s.airlines, a) })
	return nil
}

func (t *tx) RegisterAirline(a domain.Address) error {
	if err := t.guard(); err != nil {
		return err
	}
	s := t.store
	rec, ok := s.airlines[a]
	if !ok {
		return dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeNotFound, "airline has not been proposed")
	}
	if rec.registered {
		return dErrors.New(dErrors.CodeAlreadyRegistered, "airline is already registered")
	}
	rec.registered = true
	s.registeredCount++
	t.onRollback(func() {
		rec.registered = false
		s.registeredCount--
	})
	return nil
}

func (t *tx) AddVote(candidate, sponsor domain.Address) (int, error) {
	if err := t.guard(); err != nil {
		return 0, err
	}
	rec, ok := t.store.airlines[candidate]
	if !ok {
		return 0, dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeNotFound, "airline has not been proposed")
	}
	if rec.registered {
		return len(rec.order), dErrors.New(dErrors.CodeAlreadyRegistered, "airline is already registered")
	}
	if _, voted := rec.voters[sponsor]; voted {
		return len(rec.order), dErrors.New(dErrors.CodeDuplicateVote, "sponsor has already voted for this airline")
	}
	rec.voters[sponsor] = struct{}{}
	rec.order = append(rec.order, sponsor)
	t.onRollback(func() {
		delete(rec.voters, sponsor)
		rec.order = rec.order[:len(rec.order)-1]
	})
	return len(rec.order), nil
}

func (t *tx) AddFlight(key domain.FlightKey) error {
	if err := t.guard(); err != nil {
		return err
	}
	s := t.store
	if _, ok := s.flights[key]; ok {
		return dErrors.New(dErrors.CodeFlightAlreadyExists, "flight is already registered")
	}
	s.flights[key] = &Flight{Key: key, IsRegistered: true, Status: domain.StatusUnknown}
	t.onRollback(func() { delete(s.flights, key) })
	return nil
}

func (t *tx) SetFlightStatus(key domain.FlightKey, status domain.Status) error {
	if err := t.guard(); err != nil {
		return err
	}
	if !status.IsTerminal() {
		return dErrors.New(dErrors.CodeInvalidInput, "status must be terminal")
	}
	f, ok := t.store.flights[key]
	if !ok {
		return dErrors.New(dErrors.CodeFlightUnknown, "flight is not registered")
	}
	if f.Status != domain.StatusUnknown {
		return dErrors.New(dErrors.CodeAlreadyExists, "flight status is already final")
	}
	f.Status = status
	t.onRollback(func() { f.Status = domain.StatusUnknown })
	return nil
}

func (t *tx) AddPolicy(passenger domain.Address, key domain.FlightKey, premium domain.Amount) error {
	if err := t.guard(); err != nil {
		return err
	}
	s := t.store
	if _, ok := s.flights[key]; !ok {
		return dErrors.New(dErrors.CodeFlightUnknown, "flight is not registered")
	}
	pk := policyKey{passenger: passenger, flight: key}
	if _, ok := s.policies[pk]; ok {
		return dErrors.New(dErrors.CodePolicyAlreadyExists, "passenger already insured this flight")
	}
	if err := t.Collect(passenger, premium); err != nil {
		return err
	}
	s.policies[pk] = Policy{Passenger: passenger, Flight: key, AmountPaid: premium}
	s.flightPolicies[key] = append(s.flightPolicies[key], passenger)
	t.onRollback(func() {
		delete(s.policies, pk)
		holders := s.flightPolicies[key]
		s.flightPolicies[key] = holders[:len(holders)-1]
		if len(s.flightPolicies[key]) == 0 {
			delete(s.flightPolicies, key)
		}
	})
	return nil
}

func (t *tx) CreditInsurees(key domain.FlightKey, multiplierTenths uint64) ([]Credit, error) {
	if err := t.guard(); err != nil {
		return nil, err
	}
	s := t.store
	holders := s.flightPolicies[key]
	credits := make([]Credit, 0, len(holders))
	for _, passenger := range holders {
		policy := s.policies[policyKey{passenger: passenger, flight: key}]
		amount := policy.AmountPaid.MulTenths(multiplierTenths)
		prev := s.credits[passenger]
		s.credits[passenger] = prev + amount
		t.onRollback(func() { s.credits[passenger] = prev })
		credits = append(credits, Credit{Passenger: passenger, Amount: amount})
	}
	return credits, nil
}

func (t *tx) WithdrawCredits(passenger domain.Address) (domain.Amount, error) {
	if err := t.guard(); err != nil {
		return 0, err
	}
	s := t.store
	owed := s.credits[passenger]
	if owed == 0 {
		return 0, dErrors.New(dErrors.CodeNoCreditsOwed, "no credits owed")
	}
	// Zero before paying out.
	s.credits[passenger] = 0
	t.onRollback(func() { s.credits[passenger] = owed })

	if err := s.treasury.Transfer(t.ctx, s.vault, passenger, owed); err != nil {
		return 0, translateTransferError(err, "payout transfer failed")
	}
	return owed, nil
}
