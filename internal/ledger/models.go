package ledger

import (
	"flightsurety/pkg/domain"
)

// Airline is a proposed or registered airline. Registered never reverts to
// false once set; Votes lists sponsors in the order they voted.
type Airline struct {
	Address    domain.Address
	Name       string
	Registered bool
	Votes      []domain.Address
}

// Flight is a registered flight. Status leaves StatusUnknown at most once.
type Flight struct {
	Key          domain.FlightKey
	IsRegistered bool
	Status       domain.Status
}

// Policy is a passenger's paid claim on a flight. Immutable after creation.
type Policy struct {
	Passenger  domain.Address
	Flight     domain.FlightKey
	AmountPaid domain.Amount
}

// Credit is one balance increment produced by crediting insurees.
type Credit struct {
	Passenger domain.Address
	Amount    domain.Amount
}

type policyKey struct {
	passenger domain.Address
	flight    domain.FlightKey
}

type airlineRecord struct {
	name       string
	registered bool
	voters     map[domain.Address]struct{}
	order      []domain.Address
}

func (r *airlineRecord) toModel(a domain.Address) Airline {
	votes := make([]domain.Address, len(r.order))
	copy(votes, r.order)
	return Airline{Address: a, Name: r.name, Registered: r.registered, Votes: votes}
}
