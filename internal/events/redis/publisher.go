// Package redis publishes ledger events on a Redis pub/sub channel so oracle
// participants can subscribe to OracleRequest notifications.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"flightsurety/internal/events"
)

// DefaultChannel is used when no channel is configured.
const DefaultChannel = "flightsurety.events"

type Publisher struct {
	client  goredis.UniversalClient
	channel string
}

func New(client goredis.UniversalClient, channel string) *Publisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Publisher{client: client, channel: channel}
}

// ChannelFor returns the per-type channel, e.g. "flightsurety.events.oracle.request".
func (p *Publisher) ChannelFor(typ events.Type) string {
	return p.channel + "." + string(typ)
}

// Publish sends the event on the shared channel and on its per-type channel.
func (p *Publisher) Publish(ctx context.Context, event events.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	pipe := p.client.Pipeline()
	pipe.Publish(ctx, p.channel, payload)
	pipe.Publish(ctx, p.ChannelFor(event.Type), payload)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}
