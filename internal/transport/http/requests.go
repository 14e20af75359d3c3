package httptransport

import (
	"strings"

	"flightsurety/pkg/domain"
	dErrors "flightsurety/pkg/domain-errors"
)

// Amounts travel as decimal strings of whole units ("1", "0.5") so clients
// never deal with base units.

type OperationalRequest struct {
	Operational *bool `json:"operational"`
}

func (r *OperationalRequest) Validate() error {
	if r.Operational == nil {
		return dErrors.New(dErrors.CodeInvalidInput, "operational is required")
	}
	return nil
}

type CallerRequest struct {
	Address string `json:"address"`

	address domain.Address
}

func (r *CallerRequest) Validate() error {
	a, err := domain.ParseAddress(strings.TrimSpace(r.Address))
	if err != nil {
		return err
	}
	r.address = a
	return nil
}

type AddAirlineRequest struct {
	Address string `json:"address"`
	Name    string `json:"name"`

	address domain.Address
}

func (r *AddAirlineRequest) Validate() error {
	a, err := domain.ParseAddress(strings.TrimSpace(r.Address))
	if err != nil {
		return err
	}
	r.address = a
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "name is required")
	}
	return nil
}

// RegisterAirlineRequest names the candidate when it was never proposed.
type RegisterAirlineRequest struct {
	Name string `json:"name"`
}

func (r *RegisterAirlineRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	return nil
}

// PaymentRequest carries currency attached to a call.
type PaymentRequest struct {
	Value string `json:"value"`

	amount domain.Amount
}

func (r *PaymentRequest) Validate() error {
	v, err := domain.ParseUnits(r.Value)
	if err != nil {
		return err
	}
	r.amount = v
	return nil
}

type RegisterFlightRequest struct {
	Code      string `json:"code"`
	Timestamp int64  `json:"timestamp"`
}

func (r *RegisterFlightRequest) Validate() error {
	r.Code = strings.TrimSpace(r.Code)
	if r.Code == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "code is required")
	}
	if r.Timestamp < 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "timestamp must not be negative")
	}
	return nil
}

type BuyInsuranceRequest struct {
	Airline   string `json:"airline"`
	Code      string `json:"code"`
	Timestamp int64  `json:"timestamp"`
	Value     string `json:"value"`

	key    domain.FlightKey
	amount domain.Amount
}

func (r *BuyInsuranceRequest) Validate() error {
	airline, err := domain.ParseAddress(strings.TrimSpace(r.Airline))
	if err != nil {
		return err
	}
	key, err := domain.NewFlightKey(airline, r.Code, r.Timestamp)
	if err != nil {
		return err
	}
	v, err := domain.ParseUnits(r.Value)
	if err != nil {
		return err
	}
	r.key = key
	r.amount = v
	return nil
}

type OracleResponseRequest struct {
	Index     *int   `json:"index"`
	Airline   string `json:"airline"`
	Code      string `json:"code"`
	Timestamp int64  `json:"timestamp"`
	Status    *int   `json:"status"`

	key    domain.FlightKey
	index  uint8
	status domain.Status
}

func (r *OracleResponseRequest) Validate() error {
	if r.Index == nil || *r.Index < 0 || *r.Index > 255 {
		return dErrors.New(dErrors.CodeInvalidInput, "index must be between 0 and 255")
	}
	if r.Status == nil || *r.Status < 0 || *r.Status > 255 {
		return dErrors.New(dErrors.CodeInvalidInput, "invalid status code")
	}
	airline, err := domain.ParseAddress(strings.TrimSpace(r.Airline))
	if err != nil {
		return err
	}
	key, err := domain.NewFlightKey(airline, r.Code, r.Timestamp)
	if err != nil {
		return err
	}
	r.key = key
	r.index = uint8(*r.Index)
	r.status = domain.Status(*r.Status)
	return nil
}

type OperationalResponse struct {
	Operational bool `json:"operational"`
}

type CallerResponse struct {
	Address    domain.Address `json:"address"`
	Authorized bool           `json:"authorized"`
}

type AirlineResponse struct {
	Address    domain.Address   `json:"address"`
	Name       string           `json:"name"`
	Registered bool             `json:"registered"`
	Funded     bool             `json:"funded"`
	Votes      []domain.Address `json:"votes"`
}

type RegistrationResponse struct {
	Candidate       domain.Address `json:"candidate"`
	Registered      bool           `json:"registered"`
	Votes           int            `json:"votes"`
	RegisteredCount int            `json:"registered_count"`
}

type FundingResponse struct {
	Airline domain.Address `json:"airline"`
	Funded  bool           `json:"funded"`
	Value   string         `json:"value"`
}

type FlightResponse struct {
	Airline    domain.Address `json:"airline"`
	Code       string         `json:"code"`
	Timestamp  int64          `json:"timestamp"`
	Registered bool           `json:"registered"`
	StatusCode uint8          `json:"status_code"`
	Status     string         `json:"status"`
}

type StatusRequestResponse struct {
	Index     uint8          `json:"index"`
	Airline   domain.Address `json:"airline"`
	Code      string         `json:"code"`
	Timestamp int64          `json:"timestamp"`
}

type PolicyResponse struct {
	Passenger  domain.Address `json:"passenger"`
	Airline    domain.Address `json:"airline"`
	Code       string         `json:"code"`
	Timestamp  int64          `json:"timestamp"`
	AmountPaid string         `json:"amount_paid"`
}

type CreditsResponse struct {
	Passenger domain.Address `json:"passenger"`
	Credits   string         `json:"credits"`
}

type WithdrawalResponse struct {
	Passenger domain.Address `json:"passenger"`
	Paid      string         `json:"paid"`
}

type OracleIndexesResponse struct {
	Oracle  domain.Address `json:"oracle"`
	Indexes []int          `json:"indexes"`
}

type OracleSubmissionResponse struct {
	Accepted   bool   `json:"accepted"`
	Count      int    `json:"count"`
	Finalized  bool   `json:"finalized"`
	Credited   int    `json:"credited"`
	StatusCode uint8  `json:"status_code"`
	Status     string `json:"status"`
}

type AccountResponse struct {
	Address domain.Address `json:"address"`
	Balance string         `json:"balance"`
}
