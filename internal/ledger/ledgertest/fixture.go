// Package ledgertest builds a wired gate, treasury and ledger for service
// tests.
package ledgertest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"flightsurety/internal/gate"
	"flightsurety/internal/ledger"
	"flightsurety/internal/treasury"
	"flightsurety/pkg/domain"
)

// Well-known test identities.
var (
	Owner   = domain.MustParseAddress("0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266")
	App     = domain.MustParseAddress("0x90f79bf6eb2c4f870365e785982e1f101e93b906")
	Vault   = domain.MustParseAddress("0x15d34aaf54267db7d7c367839aaf71a00a2c6a65")
	Founder = domain.MustParseAddress("0x70997970c51812dc3a010c7d01b50e0d17dc79c8")
)

// Fixture is an authorized, operational ledger with a seeded founder.
type Fixture struct {
	Gate     *gate.Gate
	Treasury *treasury.Memory
	Store    *ledger.Store
	Ledger   *ledger.Handle
}

func New(t *testing.T) *Fixture {
	t.Helper()
	ctx := context.Background()

	g := gate.New(Owner)
	require.NoError(t, g.AuthorizeCaller(ctx, Owner, App))
	tr := treasury.NewMemory()
	store, err := ledger.New(g, tr, Vault, ledger.WithFounder(Founder, "Founding Air"))
	require.NoError(t, err)

	return &Fixture{Gate: g, Treasury: tr, Store: store, Ledger: store.Bind(App)}
}

// Address returns a deterministic identity distinct per n.
func Address(n byte) domain.Address {
	var a domain.Address
	a[0] = 0xaa
	a[19] = n
	return a
}

// Mint gives a the amount in whole units.
func (f *Fixture) Mint(t *testing.T, a domain.Address, units uint64) {
	t.Helper()
	require.NoError(t, f.Treasury.Mint(context.Background(), a, domain.Units(units)))
}

// Balance returns a's treasury balance.
func (f *Fixture) Balance(t *testing.T, a domain.Address) domain.Amount {
	t.Helper()
	b, err := f.Treasury.Balance(context.Background(), a)
	require.NoError(t, err)
	return b
}

// Pause flips the gate off.
func (f *Fixture) Pause(t *testing.T) {
	t.Helper()
	require.NoError(t, f.Gate.SetOperatingStatus(context.Background(), Owner, false))
}

// Resume flips the gate back on.
func (f *Fixture) Resume(t *testing.T) {
	t.Helper()
	require.NoError(t, f.Gate.SetOperatingStatus(context.Background(), Owner, true))
}

// Seed runs fn in a ledger transaction and fails the test on error.
func (f *Fixture) Seed(t *testing.T, fn func(tx ledger.Tx) error) {
	t.Helper()
	require.NoError(t, f.Ledger.RunInTx(context.Background(), fn))
}
