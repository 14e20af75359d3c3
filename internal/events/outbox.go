package events

import (
	"context"
	"errors"
	"log/slog"
)

// ErrOutboxFull is returned when the outbox buffer cannot take another event.
var ErrOutboxFull = errors.New("event outbox is full")

// Store persists events.
type Store interface {
	Append(ctx context.Context, event Event) error
}

// Outbox queues events for a Worker without blocking the ledger call.
type Outbox struct {
	ch chan Event
}

func NewOutbox(size int) *Outbox {
	return &Outbox{ch: make(chan Event, size)}
}

func (o *Outbox) Publish(_ context.Context, event Event) error {
	select {
	case o.ch <- event:
		return nil
	default:
		return ErrOutboxFull
	}
}

// Inbox exposes the queue to a Worker.
func (o *Outbox) Inbox() <-chan Event {
	return o.ch
}

// Worker consumes events from a channel and persists them.
type Worker struct {
	store  Store
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(store Store, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{store: store, inbox: inbox, logger: logger}
}

// Run drains the inbox until ctx is done. Append failures are logged and the
// event dropped so one bad write cannot wedge the queue.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil && w.logger != nil {
				w.logger.ErrorContext(ctx, "failed to persist event",
					"event", event.Type,
					"event_id", event.ID,
					"error", err,
				)
			}
		}
	}
}
