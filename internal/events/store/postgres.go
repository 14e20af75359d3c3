package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"flightsurety/internal/events"
	"flightsurety/pkg/platform/tx"
)

// Schema creates the event log table.
const Schema = `
CREATE TABLE IF NOT EXISTS ledger_events (
	id          UUID PRIMARY KEY,
	type        TEXT NOT NULL,
	occurred_at TIMESTAMPTZ NOT NULL,
	request_id  TEXT NOT NULL DEFAULT '',
	payload     JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS ledger_events_type_idx ON ledger_events (type, occurred_at);
`

// PostgresStore appends events to PostgreSQL. This store is pure I/O.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema applies Schema.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("apply event schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Append(ctx context.Context, event events.Event) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}
	query := `
		INSERT INTO ledger_events (id, type, occurred_at, request_id, payload)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`
	_, err = tx.Conn(ctx, s.db).ExecContext(ctx, query,
		event.ID,
		string(event.Type),
		event.OccurredAt,
		event.RequestID,
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

// AppendBatch writes events in one transaction.
func (s *PostgresStore) AppendBatch(ctx context.Context, batch []events.Event) error {
	return tx.Run(ctx, s.db, func(ctx context.Context) error {
		for _, e := range batch {
			if err := s.Append(ctx, e); err != nil {
				return err
			}
		}
		return nil
	})
}

// ListByType returns events of one type, oldest first. Payloads are returned
// as raw JSON.
func (s *PostgresStore) ListByType(ctx context.Context, typ events.Type, limit int) ([]events.Event, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `
		SELECT id, type, occurred_at, request_id, payload
		FROM ledger_events
		WHERE type = $1
		ORDER BY occurred_at, id
		LIMIT $2
	`
	rows, err := tx.Conn(ctx, s.db).QueryContext(ctx, query, string(typ), limit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []events.Event
	for rows.Next() {
		var (
			id         uuid.UUID
			eventType  string
			occurredAt time.Time
			requestID  string
			payload    []byte
		)
		if err := rows.Scan(&id, &eventType, &occurredAt, &requestID, &payload); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, events.Event{
			ID:         id,
			Type:       events.Type(eventType),
			OccurredAt: occurredAt,
			RequestID:  requestID,
			Payload:    json.RawMessage(payload),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return out, nil
}
