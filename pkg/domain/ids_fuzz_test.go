//go:build go1.18

package domain

import (
	"testing"
)

// FuzzParseAddress tests that parsing never panics on arbitrary input
// and always returns either a valid address or an error.
func FuzzParseAddress(f *testing.F) {
	f.Add("")
	f.Add("0x70997970c51812dc3a010c7d01b50e0d17dc79c8")
	f.Add("0x0000000000000000000000000000000000000000")
	f.Add("0X70997970C51812DC3A010C7D01B50E0D17DC79C8")
	f.Add("'; DROP TABLE airlines;--")
	f.Add(string([]byte{0x00, 0x01, 0x02}))

	f.Fuzz(func(t *testing.T, input string) {
		a, err := ParseAddress(input)
		if err != nil {
			return
		}
		if a.IsZero() {
			t.Error("parsed the zero address")
		}
		roundTrip, err := ParseAddress(a.String())
		if err != nil {
			t.Errorf("valid address failed round-trip: %v", err)
		}
		if roundTrip != a {
			t.Error("round-trip changed address value")
		}
	})
}
