package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wallet-lifecycle-service/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// SessionStore implements ports.SessionStore. Sessions live under a TTL and
// expire on their own; expiry doubles as the only session cleanup.
type SessionStore struct {
	client *goredis.Client
	prefix string
}

// NewSessionStore creates a new Redis-backed session store.
func NewSessionStore(client *goredis.Client) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: "session:order:",
	}
}

// Save stores the session keyed by its gateway order id.
func (s *SessionStore) Save(ctx context.Context, session *domain.OnboardingSession, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+session.OrderID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis session save: %w", err)
	}
	return nil
}

// FindByOrderID fetches the session for an order id. Returns nil, nil when the
// session is absent or expired.
func (s *SessionStore) FindByOrderID(ctx context.Context, orderID string) (*domain.OnboardingSession, error) {
	payload, err := s.client.Get(ctx, s.prefix+orderID).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis session get: %w", err)
	}

	session := &domain.OnboardingSession{}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return session, nil
}
