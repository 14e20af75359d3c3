package gate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightsurety/internal/events"
	"flightsurety/pkg/domain"
	dErrors "flightsurety/pkg/domain-errors"
)

var (
	owner    = domain.MustParseAddress("0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266")
	stranger = domain.MustParseAddress("0x3c44cdddb6a900fa2b585dd299e03d12fa4293bc")
	app      = domain.MustParseAddress("0x90f79bf6eb2c4f870365e785982e1f101e93b906")
)

type recordingObserver struct {
	values []bool
}

func (o *recordingObserver) SetOperational(v bool) {
	o.values = append(o.values, v)
}

func TestGate_OperatingStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("starts operational", func(t *testing.T) {
		g := New(owner)
		assert.True(t, g.IsOperational())
		assert.NoError(t, g.RequireOperational())
	})

	t.Run("owner can pause and unpause", func(t *testing.T) {
		obs := &recordingObserver{}
		g := New(owner, WithObserver(obs))

		require.NoError(t, g.SetOperatingStatus(ctx, owner, false))
		assert.False(t, g.IsOperational())
		assert.True(t, dErrors.HasCode(g.RequireOperational(), dErrors.CodeContractPaused))

		require.NoError(t, g.SetOperatingStatus(ctx, owner, true))
		assert.True(t, g.IsOperational())
		assert.Equal(t, []bool{true, false, true}, obs.values)
	})

	t.Run("status changes are published once per change", func(t *testing.T) {
		rec := events.NewRecorder()
		g := New(owner, WithPublisher(rec))

		require.NoError(t, g.SetOperatingStatus(ctx, owner, true))
		require.NoError(t, g.SetOperatingStatus(ctx, owner, false))

		got := rec.ByType(events.TypeGateStatus)
		require.Len(t, got, 1)
		assert.Equal(t, events.GateStatus{Operational: false, Caller: owner}, got[0].Payload)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		g := New(owner)
		err := g.SetOperatingStatus(ctx, stranger, false)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
		assert.True(t, g.IsOperational())
	})
}

func TestGate_AllowList(t *testing.T) {
	ctx := context.Background()

	t.Run("owner authorizes and deauthorizes", func(t *testing.T) {
		g := New(owner)
		assert.True(t, dErrors.HasCode(g.RequireAuthorized(app), dErrors.CodeCallerNotAuthorized))

		require.NoError(t, g.AuthorizeCaller(ctx, owner, app))
		assert.True(t, g.IsCallerAuthorized(app))
		assert.NoError(t, g.RequireAuthorized(app))

		require.NoError(t, g.DeauthorizeCaller(ctx, owner, app))
		assert.False(t, g.IsCallerAuthorized(app))
	})

	t.Run("non-owner cannot authorize", func(t *testing.T) {
		g := New(owner)
		err := g.AuthorizeCaller(ctx, stranger, app)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
		assert.False(t, g.IsCallerAuthorized(app))
	})

	t.Run("authorization is blocked while paused", func(t *testing.T) {
		g := New(owner)
		require.NoError(t, g.SetOperatingStatus(ctx, owner, false))
		err := g.AuthorizeCaller(ctx, owner, app)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeContractPaused))
	})
}
