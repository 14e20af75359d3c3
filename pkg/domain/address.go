package domain

import (
	"encoding/hex"
	"strings"

	dErrors "flightsurety/pkg/domain-errors"
)

// AddressLength is the byte length of an identity.
const AddressLength = 20

// Address is an opaque caller identity. It is comparable and used as a map
// key throughout the ledger; it is never mutated after parsing.
//
// Usage: construct via ParseAddress at trust boundaries. The zero address is
// never a valid caller.
type Address [AddressLength]byte

// ParseAddress parses a 0x-prefixed, 40 hex character identity.
//
// Errors: returns CodeInvalidInput when the value is malformed or the zero address.
func ParseAddress(s string) (Address, error) {
	var a Address
	s = strings.TrimSpace(s)
	if s == "" {
		return a, dErrors.New(dErrors.CodeInvalidInput, "address cannot be empty")
	}
	raw, ok := strings.CutPrefix(strings.ToLower(s), "0x")
	if !ok {
		return a, dErrors.New(dErrors.CodeInvalidInput, "address must be 0x-prefixed")
	}
	if len(raw) != AddressLength*2 {
		return a, dErrors.New(dErrors.CodeInvalidInput, "address must be 20 bytes")
	}
	if _, err := hex.Decode(a[:], []byte(raw)); err != nil {
		return Address{}, dErrors.New(dErrors.CodeInvalidInput, "address must be hex encoded")
	}
	if a.IsZero() {
		return Address{}, dErrors.New(dErrors.CodeInvalidInput, "zero address is not allowed")
	}
	return a, nil
}

// MustParseAddress panics on malformed input. Intended for constants and tests.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// IsZero reports whether a is the zero address.
func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// Bytes returns a copy of the raw address bytes.
func (a Address) Bytes() []byte {
	b := make([]byte, AddressLength)
	copy(b, a[:])
	return b
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
