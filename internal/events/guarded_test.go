package events

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightsurety/pkg/platform/circuit"
)

type flakyPublisher struct {
	err   error
	calls int
}

func (f *flakyPublisher) Publish(context.Context, Event) error {
	f.calls++
	return f.err
}

func TestGuarded(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	sink := &flakyPublisher{err: errors.New("broker down")}
	var buf bytes.Buffer
	breaker := circuit.New("kafka", circuit.WithFailureThreshold(2), circuit.WithSuccessThreshold(1))
	g := Guard(sink, breaker,
		WithGuardLogger(slog.New(slog.NewTextHandler(&buf, nil))),
		WithCooldown(time.Minute),
		withClock(clock),
	)
	event := New(ctx, TypeFlightStatusInfo, nil)

	t.Run("opens after consecutive failures", func(t *testing.T) {
		assert.Error(t, g.Publish(ctx, event))
		assert.Error(t, g.Publish(ctx, event))
		assert.True(t, breaker.IsOpen())
		assert.Contains(t, buf.String(), "event sink circuit opened")
	})

	t.Run("short-circuits while cooling down", func(t *testing.T) {
		calls := sink.calls
		assert.ErrorIs(t, g.Publish(ctx, event), ErrSinkUnavailable)
		assert.Equal(t, calls, sink.calls)
	})

	t.Run("failed probe keeps it open", func(t *testing.T) {
		now = now.Add(time.Minute)
		calls := sink.calls
		assert.Error(t, g.Publish(ctx, event))
		assert.Equal(t, calls+1, sink.calls)
		assert.ErrorIs(t, g.Publish(ctx, event), ErrSinkUnavailable)
	})

	t.Run("successful probe closes it", func(t *testing.T) {
		now = now.Add(time.Minute)
		sink.err = nil
		require.NoError(t, g.Publish(ctx, event))
		assert.False(t, breaker.IsOpen())
		assert.Contains(t, buf.String(), "event sink circuit closed")
		require.NoError(t, g.Publish(ctx, event))
	})
}
