// Package kafka publishes ledger events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"flightsurety/internal/events"
)

// DefaultDeliveryTimeout bounds one Publish when Config leaves it unset.
const DefaultDeliveryTimeout = 5 * time.Second

// Config selects brokers and topic.
type Config struct {
	Brokers           []string
	Topic             string
	Partitions        int32
	ReplicationFactor int16
	// DeliveryTimeout caps how long Publish waits for the broker ack.
	DeliveryTimeout time.Duration
}

// Publisher produces one record per event, keyed by event type so each type
// stays ordered within its partition.
type Publisher struct {
	client  *kgo.Client
	topic   string
	timeout time.Duration
}

// New connects to the brokers. The client is lazy; EnsureTopic is the first
// round trip.
func New(cfg Config, opts ...kgo.Opt) (*Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("kafka topic is required")
	}
	timeout := cfg.DeliveryTimeout
	if timeout <= 0 {
		timeout = DefaultDeliveryTimeout
	}
	opts = append([]kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.Topic),
		kgo.AllowAutoTopicCreation(),
		kgo.RecordDeliveryTimeout(timeout),
	}, opts...)
	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &Publisher{client: client, topic: cfg.Topic, timeout: timeout}, nil
}

// EnsureTopic creates the topic if it does not exist yet.
func (p *Publisher) EnsureTopic(ctx context.Context, partitions int32, replicationFactor int16) error {
	if partitions <= 0 {
		partitions = 1
	}
	if replicationFactor <= 0 {
		replicationFactor = 1
	}
	adm := kadm.NewClient(p.client)
	resp, err := adm.CreateTopics(ctx, partitions, replicationFactor, nil, p.topic)
	if err != nil {
		return fmt.Errorf("create topic: %w", err)
	}
	for _, r := range resp {
		if r.Err != nil && !errors.Is(r.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("create topic %s: %w", r.Topic, r.Err)
		}
	}
	return nil
}

// Publish waits for the broker ack, at most the delivery timeout. A record
// still buffered when the wait ends is abandoned to the client.
func (p *Publisher) Publish(ctx context.Context, event events.Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.Type),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: "event_id", Value: []byte(event.ID.String())},
		},
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	acked := make(chan error, 1)
	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		acked <- err
	})
	select {
	case err := <-acked:
		if err != nil {
			return fmt.Errorf("produce event: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("produce event: %w", ctx.Err())
	}
}

// Health pings the cluster.
func (p *Publisher) Health(ctx context.Context) error {
	return p.client.Ping(ctx)
}

func (p *Publisher) Close() {
	p.client.Close()
}
