//go:build integration

package treasury

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightsurety/pkg/domain"
	"flightsurety/pkg/platform/sentinel"
	"flightsurety/pkg/testutil/containers"
)

func TestRedisTreasury(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	ctx := context.Background()
	store := NewRedis(rc.Client)

	alice := domain.MustParseAddress("0x00000000000000000000000000000000000000a1")
	vault := domain.MustParseAddress("0x00000000000000000000000000000000000000f0")

	t.Run("unknown accounts hold nothing", func(t *testing.T) {
		got, err := store.Balance(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, domain.Amount(0), got)
	})

	require.NoError(t, store.Mint(ctx, alice, domain.Units(2)))

	t.Run("transfer moves value atomically", func(t *testing.T) {
		require.NoError(t, store.Transfer(ctx, alice, vault, domain.Units(1)))
		a, err := store.Balance(ctx, alice)
		require.NoError(t, err)
		v, err := store.Balance(ctx, vault)
		require.NoError(t, err)
		assert.Equal(t, domain.Units(1), a)
		assert.Equal(t, domain.Units(1), v)
	})

	t.Run("overdraft is rejected without side effects", func(t *testing.T) {
		err := store.Transfer(ctx, alice, vault, domain.Units(5))
		assert.ErrorIs(t, err, sentinel.ErrInsufficient)
		a, err := store.Balance(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, domain.Units(1), a)
	})

	t.Run("large balances compare exactly", func(t *testing.T) {
		carol := domain.MustParseAddress("0x00000000000000000000000000000000000000c3")
		// 2^53 and 2^53+1 are the same double.
		require.NoError(t, store.Mint(ctx, carol, 1<<53))

		err := store.Transfer(ctx, carol, vault, 1<<53+1)
		assert.ErrorIs(t, err, sentinel.ErrInsufficient)
		got, err := store.Balance(ctx, carol)
		require.NoError(t, err)
		assert.Equal(t, domain.Amount(1<<53), got)
	})

	t.Run("balances never pass the limit", func(t *testing.T) {
		dave := domain.MustParseAddress("0x00000000000000000000000000000000000000d4")
		assert.ErrorIs(t, store.Mint(ctx, dave, MaxBalance+1), ErrBalanceOverflow)
		require.NoError(t, store.Mint(ctx, dave, MaxBalance))
		assert.ErrorIs(t, store.Mint(ctx, dave, 1), ErrBalanceOverflow)

		assert.ErrorIs(t, store.Transfer(ctx, alice, dave, 1), ErrBalanceOverflow)
		a, err := store.Balance(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, domain.Units(1), a)
		d, err := store.Balance(ctx, dave)
		require.NoError(t, err)
		assert.Equal(t, MaxBalance, d)
	})
}
