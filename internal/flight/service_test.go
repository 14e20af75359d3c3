package flight

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks StatusRequester

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"flightsurety/internal/events"
	"flightsurety/internal/flight/mocks"
	"flightsurety/internal/ledger"
	"flightsurety/internal/ledger/ledgertest"
	"flightsurety/pkg/domain"
	dErrors "flightsurety/pkg/domain-errors"
)

const departure = int64(1700000000)

func TestRegisterFlight(t *testing.T) {
	ctx := context.Background()
	founder := ledgertest.Founder
	proposed := ledgertest.Address(2)

	setup := func(t *testing.T) (*ledgertest.Fixture, *Service, *events.Recorder) {
		f := ledgertest.New(t)
		f.Mint(t, founder, 10)
		f.Seed(t, func(tx ledger.Tx) error {
			if err := tx.AddAirline(proposed, "Proposed Air"); err != nil {
				return err
			}
			return tx.Fund(proposed, 0)
		})
		rec := events.NewRecorder()
		return f, New(f.Ledger, nil, WithPublisher(rec)), rec
	}
	fund := func(t *testing.T, f *ledgertest.Fixture) {
		f.Seed(t, func(tx ledger.Tx) error { return tx.Fund(founder, domain.Units(10)) })
	}

	t.Run("unregistered airline", func(t *testing.T) {
		_, svc, _ := setup(t)
		_, err := svc.RegisterFlight(ctx, proposed, "ND1309", departure)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeAirlineNotRegistered))
	})

	t.Run("unfunded airline", func(t *testing.T) {
		_, svc, _ := setup(t)
		_, err := svc.RegisterFlight(ctx, founder, "ND1309", departure)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeAirlineNotFunded))
	})

	t.Run("registered and funded airline", func(t *testing.T) {
		f, svc, rec := setup(t)
		fund(t, f)

		got, err := svc.RegisterFlight(ctx, founder, " ND1309 ", departure)
		require.NoError(t, err)
		assert.True(t, got.IsRegistered)
		assert.Equal(t, domain.StatusUnknown, got.Status)
		assert.Equal(t, "ND1309", got.Key.Code)

		stored, err := svc.GetFlight(ctx, got.Key)
		require.NoError(t, err)
		assert.Equal(t, got, stored)
		assert.Len(t, rec.ByType(events.TypeFlightRegistered), 1)

		_, err = svc.RegisterFlight(ctx, founder, "ND1309", departure)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeFlightAlreadyExists))
	})

	t.Run("empty code is invalid", func(t *testing.T) {
		f, svc, _ := setup(t)
		fund(t, f)
		_, err := svc.RegisterFlight(ctx, founder, "  ", departure)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("unknown flight lookup", func(t *testing.T) {
		_, svc, _ := setup(t)
		key, err := domain.NewFlightKey(founder, "XX1", departure)
		require.NoError(t, err)
		_, err = svc.GetFlight(ctx, key)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeFlightUnknown))
	})

	t.Run("paused", func(t *testing.T) {
		f, svc, _ := setup(t)
		fund(t, f)
		f.Pause(t)
		_, err := svc.RegisterFlight(ctx, founder, "ND1309", departure)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeContractPaused))
	})
}

func TestFetchFlightStatus(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	requester := mocks.NewMockStatusRequester(ctrl)
	fixture := ledgertest.New(t)
	svc := New(fixture.Ledger, requester)

	key, err := domain.NewFlightKey(ledgertest.Founder, "ND1309", departure)
	require.NoError(t, err)

	t.Run("delegates to the oracle engine", func(t *testing.T) {
		requester.EXPECT().RequestStatus(gomock.Any(), key).Return(uint8(7), nil)
		index, err := svc.FetchFlightStatus(ctx, ledgertest.Founder, "ND1309", departure)
		require.NoError(t, err)
		assert.Equal(t, uint8(7), index)
	})

	t.Run("propagates engine errors", func(t *testing.T) {
		requester.EXPECT().RequestStatus(gomock.Any(), key).
			Return(uint8(0), dErrors.New(dErrors.CodeContractPaused, "paused"))
		_, err := svc.FetchFlightStatus(ctx, ledgertest.Founder, "ND1309", departure)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeContractPaused))
	})

	t.Run("rejects a malformed key without calling the engine", func(t *testing.T) {
		_, err := svc.FetchFlightStatus(ctx, ledgertest.Founder, "", departure)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("paused gate wins over a malformed key", func(t *testing.T) {
		fixture.Pause(t)
		defer fixture.Resume(t)
		_, err := svc.FetchFlightStatus(ctx, ledgertest.Founder, "", departure)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeContractPaused))
	})
}
