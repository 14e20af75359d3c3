package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightsurety/internal/events"
)

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(Config{Topic: "flightsurety-events"})
	assert.Error(t, err)

	_, err = New(Config{Brokers: []string{"127.0.0.1:9092"}})
	assert.Error(t, err)

	pub, err := New(Config{Brokers: []string{"127.0.0.1:9092"}, Topic: "flightsurety-events"})
	require.NoError(t, err)
	defer pub.Close()
	assert.Equal(t, DefaultDeliveryTimeout, pub.timeout)
}

func TestPublishGivesUpAfterDeliveryTimeout(t *testing.T) {
	// Nothing listens on port 1, so the record never leaves the buffer.
	pub, err := New(Config{
		Brokers:         []string{"127.0.0.1:1"},
		Topic:           "flightsurety-events",
		DeliveryTimeout: 200 * time.Millisecond,
	})
	require.NoError(t, err)
	defer pub.Close()

	ctx := context.Background()
	start := time.Now()
	err = pub.Publish(ctx, events.New(ctx, events.TypeOracleRequest, events.OracleRequest{Index: 1, Flight: "ND1309"}))
	require.Error(t, err)
	assert.Less(t, time.Since(start), 3*time.Second)
}
