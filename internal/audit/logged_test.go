package audit

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"wallet-lifecycle-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	saved [][]domain.Event
	err   error
}

func (s *recordingSink) SaveAll(_ context.Context, events []domain.Event) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, events)
	return nil
}

func event(t *testing.T, walletID string) domain.Event {
	t.Helper()
	return domain.WalletAddedEvent{
		EventMeta: domain.NewEventMeta(time.Now().UTC()),
		WalletID:  walletID,
	}
}

func TestMap_PreservesEvents(t *testing.T) {
	l := New(2, event(t, "w1"))
	mapped := Map(l, func(v int) string {
		if v == 2 {
			return "two"
		}
		return "other"
	})

	assert.Equal(t, "two", mapped.Value)
	assert.Equal(t, l.Events, mapped.Events)
}

func TestFlatMap_ConcatenatesInCausalOrder(t *testing.T) {
	first := event(t, "w1")
	second := event(t, "w2")
	third := event(t, "w3")

	l := NewWithEvents(1, []domain.Event{first, second})
	result := FlatMap(l, func(v int) Logged[int] {
		return New(v+1, third)
	})

	assert.Equal(t, 2, result.Value)
	require.Len(t, result.Events, 3)
	assert.Equal(t, first.EventID(), result.Events[0].EventID())
	assert.Equal(t, second.EventID(), result.Events[1].EventID())
	assert.Equal(t, third.EventID(), result.Events[2].EventID())
}

func TestFlatMap_Chain_NoDropNoDuplicate(t *testing.T) {
	// Chains of random length where each step contributes a random number of
	// events, including zero. The concatenation must carry every event exactly
	// once, in causal order, regardless of the chain's shape.
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 20; run++ {
		var all []string
		l := NewWithEvents("start", nil)

		steps := 1 + rng.Intn(10)
		for i := 0; i < steps; i++ {
			batch := make([]domain.Event, rng.Intn(4))
			for j := range batch {
				ev := event(t, "w")
				batch[j] = ev
				all = append(all, ev.EventID())
			}
			l = FlatMap(l, func(v string) Logged[string] {
				return NewWithEvents(v+"x", batch)
			})
		}

		require.Len(t, l.Events, len(all))
		for i, ev := range l.Events {
			assert.Equal(t, all[i], ev.EventID())
		}
	}
}

func TestPersist_BatchesAllEvents(t *testing.T) {
	sink := &recordingSink{}
	l := NewWithEvents("v", []domain.Event{event(t, "w1"), event(t, "w2")})

	value, err := l.Persist(context.Background(), sink)
	require.NoError(t, err)
	assert.Equal(t, "v", value)
	require.Len(t, sink.saved, 1)
	assert.Len(t, sink.saved[0], 2)
}

func TestPersist_EmptyLogSkipsSink(t *testing.T) {
	sink := &recordingSink{err: errors.New("must not be called")}
	l := NewWithEvents("v", nil)

	value, err := l.Persist(context.Background(), sink)
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}

func TestPersist_SinkFailureReturnsValueAndSinkError(t *testing.T) {
	sinkFailure := errors.New("connection reset")
	sink := &recordingSink{err: sinkFailure}
	l := New("v", event(t, "w1"))

	value, err := l.Persist(context.Background(), sink)
	assert.Equal(t, "v", value)

	var sinkErr *SinkError
	require.True(t, errors.As(err, &sinkErr))
	assert.True(t, errors.Is(err, sinkFailure))
}
