// Package audit pairs computed values with the ordered list of domain events
// that justify them, so a multi-step mutation accumulates a single event list
// and flushes it with one batched write at the edge of the operation.
package audit

import (
	"context"
	"fmt"

	"wallet-lifecycle-service/internal/core/domain"
)

// EventSink is the append-only destination for accumulated events.
type EventSink interface {
	SaveAll(ctx context.Context, events []domain.Event) error
}

// Logged pairs a value with the events that produced it. The event log is an
// explicit field, never hidden accumulation; composition preserves causal
// order (earlier-caused events first) and neither drops nor duplicates
// entries.
type Logged[T any] struct {
	Value  T
	Events []domain.Event
}

// New wraps a value with a single event.
func New[T any](value T, event domain.Event) Logged[T] {
	return Logged[T]{Value: value, Events: []domain.Event{event}}
}

// NewWithEvents wraps a value with an ordered event list.
func NewWithEvents[T any](value T, events []domain.Event) Logged[T] {
	return Logged[T]{Value: value, Events: events}
}

// Map transforms the value; the event log is unchanged.
func Map[T, R any](l Logged[T], f func(T) R) Logged[R] {
	return Logged[R]{Value: f(l.Value), Events: l.Events}
}

// FlatMap applies f to the value and concatenates this log with the result's
// log, keeping the result's value.
func FlatMap[T, R any](l Logged[T], f func(T) Logged[R]) Logged[R] {
	result := f(l.Value)
	events := make([]domain.Event, 0, len(l.Events)+len(result.Events))
	events = append(events, l.Events...)
	events = append(events, result.Events...)
	return Logged[R]{Value: result.Value, Events: events}
}

// SinkError reports a failed event-sink write. The state write it follows has
// already committed; callers must treat this as observable but non-fatal and
// never roll back state because of it.
type SinkError struct {
	Err error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("event sink write failed: %v", e.Err)
}

func (e *SinkError) Unwrap() error { return e.Err }

// Persist writes all accumulated events in one batched call and returns the
// value. On sink failure the value is still returned, together with a
// *SinkError.
func (l Logged[T]) Persist(ctx context.Context, sink EventSink) (T, error) {
	if len(l.Events) == 0 {
		return l.Value, nil
	}
	if err := sink.SaveAll(ctx, l.Events); err != nil {
		return l.Value, &SinkError{Err: err}
	}
	return l.Value, nil
}
