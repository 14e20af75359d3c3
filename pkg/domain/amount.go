package domain

import (
	"fmt"
	"strconv"
	"strings"

	dErrors "flightsurety/pkg/domain-errors"
)

// Amount is a quantity of the native currency in base units.
type Amount uint64

// Unit is one whole currency unit expressed in base units.
const Unit Amount = 1_000_000

// Units converts whole units to base units.
func Units(n uint64) Amount {
	return Amount(n) * Unit
}

// MulTenths scales a by tenths/10 with integer truncation.
func (a Amount) MulTenths(tenths uint64) Amount {
	return Amount(uint64(a) * tenths / 10)
}

// IsZero reports whether a is zero.
func (a Amount) IsZero() bool {
	return a == 0
}

// String renders the amount as whole units with a fractional part, e.g. "1.5".
func (a Amount) String() string {
	whole := a / Unit
	frac := a % Unit
	if frac == 0 {
		return fmt.Sprintf("%d", whole)
	}
	s := fmt.Sprintf("%d.%06d", whole, frac)
	for s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	return s
}

// ParseUnits reads a decimal quantity of whole units such as "10" or "0.5".
//
// Errors: returns CodeInvalidInput for malformed input, more than six
// fractional digits or overflow.
func ParseUnits(s string) (Amount, error) {
	whole, frac, hasFrac := strings.Cut(strings.TrimSpace(s), ".")
	if whole == "" && (!hasFrac || frac == "") {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "amount is required")
	}
	if whole == "" {
		whole = "0"
	}
	w, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "invalid amount")
	}
	if w > uint64(^Amount(0)/Unit) {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "amount overflows")
	}
	total := Amount(w) * Unit
	if !hasFrac {
		return total, nil
	}
	if frac == "" || len(frac) > 6 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "invalid amount precision")
	}
	f, err := strconv.ParseUint(frac+strings.Repeat("0", 6-len(frac)), 10, 64)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "invalid amount")
	}
	if total+Amount(f) < total {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "amount overflows")
	}
	return total + Amount(f), nil
}
