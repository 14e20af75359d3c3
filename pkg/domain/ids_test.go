package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "flightsurety/pkg/domain-errors"
)

// TestParseAddress_Invariants validates the parsing invariant:
// "identities must be 0x-prefixed, 20 byte, non-zero hex values"
func TestParseAddress_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseAddress("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects missing prefix", func(t *testing.T) {
		_, err := ParseAddress("f39fd6e51aad88f6f4ce6ab8827279cfffb92266")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := ParseAddress("0xf39f")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects non hex", func(t *testing.T) {
		_, err := ParseAddress("0xz39fd6e51aad88f6f4ce6ab8827279cfffb92266")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects zero address", func(t *testing.T) {
		_, err := ParseAddress("0x0000000000000000000000000000000000000000")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts mixed case and normalizes", func(t *testing.T) {
		a, err := ParseAddress("0xF39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
		require.NoError(t, err)
		assert.Equal(t, "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266", a.String())
	})
}

func TestAddress_JSONRoundTrip(t *testing.T) {
	a := MustParseAddress("0x70997970c51812dc3a010c7d01b50e0d17dc79c8")
	body, err := json.Marshal(map[string]Address{"airline": a})
	require.NoError(t, err)
	assert.JSONEq(t, `{"airline":"0x70997970c51812dc3a010c7d01b50e0d17dc79c8"}`, string(body))

	var decoded map[string]Address
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, a, decoded["airline"])

	err = json.Unmarshal([]byte(`{"airline":"nope"}`), &decoded)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestAmount(t *testing.T) {
	t.Run("multiplier truncates", func(t *testing.T) {
		assert.Equal(t, Amount(1), Amount(1).MulTenths(15))
		assert.Equal(t, Amount(4), Amount(3).MulTenths(15))
		assert.Equal(t, Units(1)+Units(1)/2, Units(1).MulTenths(15))
	})

	t.Run("renders whole and fractional units", func(t *testing.T) {
		assert.Equal(t, "10", Units(10).String())
		assert.Equal(t, "1.5", Units(1).MulTenths(15).String())
		assert.Equal(t, "0.000001", Amount(1).String())
	})

	t.Run("parses decimal units", func(t *testing.T) {
		for in, want := range map[string]Amount{
			"10":       Units(10),
			"1.5":      Units(1) + Units(1)/2,
			".25":      Unit / 4,
			"0.000001": 1,
		} {
			got, err := ParseUnits(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, got, in)
		}
		for _, in := range []string{"", ".", "abc", "1.0000001", "-1", "1.x", "99999999999999999999"} {
			_, err := ParseUnits(in)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput), "input %q", in)
		}
	})
}

func TestStatus(t *testing.T) {
	for _, code := range []int{0, 10, 20, 30, 40, 50} {
		s, err := ParseStatus(code)
		require.NoError(t, err)
		assert.Equal(t, Status(code), s)
	}
	for _, code := range []int{-1, 5, 60, 256} {
		_, err := ParseStatus(code)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput), "code %d", code)
	}

	assert.False(t, StatusUnknown.IsTerminal())
	assert.True(t, StatusLateWeather.IsTerminal())
	assert.True(t, StatusLateAirline.TriggersPayout())
	assert.False(t, StatusLateTechnical.TriggersPayout())
}

func TestNewFlightKey(t *testing.T) {
	airline := MustParseAddress("0x70997970c51812dc3a010c7d01b50e0d17dc79c8")

	key, err := NewFlightKey(airline, "  ND1309 ", 1700000000)
	require.NoError(t, err)
	assert.Equal(t, "ND1309", key.Code)

	other, err := NewFlightKey(airline, "ND1309", 1700000000)
	require.NoError(t, err)
	assert.Equal(t, key, other, "keys are comparable values")
	assert.Equal(t, key.Bytes(), other.Bytes())

	_, err = NewFlightKey(airline, "", 1)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	_, err = NewFlightKey(Address{}, "ND1309", 1)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	_, err = NewFlightKey(airline, "ND1309", -1)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}
