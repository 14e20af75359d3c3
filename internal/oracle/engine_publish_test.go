package oracle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightsurety/internal/events"
	"flightsurety/internal/insurance"
	"flightsurety/internal/ledger/ledgertest"
	"flightsurety/internal/oracle/randomness"
	"flightsurety/pkg/domain"
)

// stallingPublisher blocks on one event type until released or cancelled.
type stallingPublisher struct {
	stall   events.Type
	entered chan struct{}
	release chan struct{}
}

func (p *stallingPublisher) Publish(ctx context.Context, event events.Event) error {
	if event.Type != p.stall {
		return nil
	}
	p.entered <- struct{}{}
	select {
	case <-p.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func within(t *testing.T, d time.Duration, name string, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatalf("%s did not return while an event publish was stalled", name)
	}
}

func TestStalledSinkDoesNotBlockEngine(t *testing.T) {
	ctx := context.Background()
	fixture := ledgertest.New(t)
	pub := &stallingPublisher{
		stall:   events.TypeOracleRequest,
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	engine, err := New(fixture.Ledger, insurance.New(fixture.Ledger),
		WithSource(randomness.NewSequence(1, 2, 3)),
		WithPublisher(pub),
	)
	require.NoError(t, err)

	first, second := oracleAddr(0), oracleAddr(1)
	fixture.Mint(t, first, 1)
	fixture.Mint(t, second, 1)
	_, err = engine.RegisterOracle(ctx, first, domain.Units(1))
	require.NoError(t, err)

	key, err := domain.NewFlightKey(ledgertest.Founder, "ND1309", 1700000000)
	require.NoError(t, err)

	requested := make(chan error, 1)
	go func() {
		_, err := engine.RequestStatus(ctx, key)
		requested <- err
	}()
	defer close(pub.release)

	select {
	case <-pub.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("request event was never published")
	}

	within(t, 2*time.Second, "GetMyIndexes", func() {
		indexes, err := engine.GetMyIndexes(ctx, first)
		assert.NoError(t, err)
		assert.Equal(t, []uint8{1, 2, 3}, indexes)
	})
	within(t, 2*time.Second, "RegisterOracle", func() {
		_, err := engine.RegisterOracle(ctx, second, domain.Units(1))
		assert.NoError(t, err)
	})
	within(t, 2*time.Second, "SubmitOracleResponse", func() {
		res, err := engine.SubmitOracleResponse(ctx, first, 1, key, domain.StatusOnTime)
		assert.NoError(t, err)
		assert.Equal(t, 1, res.Count)
	})

	pub.release <- struct{}{}
	require.NoError(t, <-requested)
}
