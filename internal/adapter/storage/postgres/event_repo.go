package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"wallet-lifecycle-service/internal/core/domain"
)

// EventRepo implements ports.EventSink as an append-only table. Rows are only
// ever inserted; one call writes the whole batch inside one transaction.
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

// SaveAll appends the events in their causal order within one transaction.
func (r *EventRepo) SaveAll(ctx context.Context, events []domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin event batch: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `INSERT INTO wallet_events (id, event_type, payload, occurred_at)
		VALUES ($1, $2, $3, $4)`

	for _, ev := range events {
		payload, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("encode event %s: %w", ev.EventID(), err)
		}
		if _, err := tx.Exec(ctx, query, ev.EventID(), ev.Type(), payload, ev.OccurredAt()); err != nil {
			return fmt.Errorf("insert event %s: %w", ev.EventID(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit event batch: %w", err)
	}
	return nil
}
