package domain

import (
	"encoding/binary"
	"strings"

	dErrors "flightsurety/pkg/domain-errors"
)

// MaxFlightCodeLength bounds flight codes accepted at trust boundaries.
const MaxFlightCodeLength = 32

// FlightKey uniquely identifies a flight. It is comparable and immutable.
type FlightKey struct {
	Airline   Address
	Code      string
	Timestamp int64
}

// NewFlightKey validates and constructs a flight key.
//
// Errors: returns CodeInvalidInput for an empty or oversized code, a zero
// airline or a negative timestamp.
func NewFlightKey(airline Address, code string, timestamp int64) (FlightKey, error) {
	code = strings.TrimSpace(code)
	if airline.IsZero() {
		return FlightKey{}, dErrors.New(dErrors.CodeInvalidInput, "airline is required")
	}
	if code == "" {
		return FlightKey{}, dErrors.New(dErrors.CodeInvalidInput, "flight code is required")
	}
	if len(code) > MaxFlightCodeLength {
		return FlightKey{}, dErrors.New(dErrors.CodeInvalidInput, "flight code is too long")
	}
	if timestamp < 0 {
		return FlightKey{}, dErrors.New(dErrors.CodeInvalidInput, "timestamp must not be negative")
	}
	return FlightKey{Airline: airline, Code: code, Timestamp: timestamp}, nil
}

// Bytes is the canonical encoding used to seed index derivation:
// airline bytes, code bytes, then the big-endian timestamp.
func (k FlightKey) Bytes() []byte {
	b := make([]byte, 0, AddressLength+len(k.Code)+8)
	b = append(b, k.Airline[:]...)
	b = append(b, k.Code...)
	return binary.BigEndian.AppendUint64(b, uint64(k.Timestamp))
}

// Status is the closed enumeration of flight status codes reported by oracles.
type Status uint8

const (
	StatusUnknown       Status = 0
	StatusOnTime        Status = 10
	StatusLateAirline   Status = 20
	StatusLateWeather   Status = 30
	StatusLateTechnical Status = 40
	StatusLateOther     Status = 50
)

var statusNames = map[Status]string{
	StatusUnknown:       "unknown",
	StatusOnTime:        "on_time",
	StatusLateAirline:   "late_airline",
	StatusLateWeather:   "late_weather",
	StatusLateTechnical: "late_technical",
	StatusLateOther:     "late_other",
}

// ParseStatus validates a numeric status code.
//
// Errors: returns CodeInvalidInput for codes outside the enumeration.
func ParseStatus(code int) (Status, error) {
	if code < 0 || code > 255 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "invalid status code")
	}
	s := Status(code)
	if !s.IsValid() {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "invalid status code")
	}
	return s, nil
}

// IsValid reports whether s belongs to the enumeration.
func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

// IsTerminal reports whether s finalizes a flight.
func (s Status) IsTerminal() bool {
	return s.IsValid() && s != StatusUnknown
}

// TriggersPayout reports whether s credits insurees.
func (s Status) TriggersPayout() bool {
	return s == StatusLateAirline
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "invalid"
}
