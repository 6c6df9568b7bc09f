package ports

import (
	"context"
	"time"

	"wallet-lifecycle-service/internal/core/domain"

	"github.com/google/uuid"
)

// WalletRepository defines persistence operations for wallets. Create fails
// with a domain.ErrDuplicateKey-wrapped error on a natural-key collision
// (wallet id or contract id); that uniqueness constraint is the only
// concurrency-control primitive the services rely on.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error)
	Update(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	FindByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*domain.Wallet, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Wallet, error)
	// FindByUserIDAndGatewayInstrumentID backs the duplicate-onboarding
	// guard: zero or one VALIDATED wallet for the same user carrying the
	// same provider-gateway instrument id. Returns nil, nil when absent.
	FindByUserIDAndGatewayInstrumentID(ctx context.Context, userID uuid.UUID, gatewayInstrumentID string) (*domain.Wallet, error)
}

// LegacyAssociationRepository persists the legacy-id -> wallet/contract
// mapping. Create fails with a domain.ErrDuplicateKey-wrapped error when the
// legacy id is already mapped.
type LegacyAssociationRepository interface {
	Create(ctx context.Context, assoc *domain.LegacyAssociation) (*domain.LegacyAssociation, error)
	FindByLegacyID(ctx context.Context, legacyWalletID string) (*domain.LegacyAssociation, error)
	FindByContractID(ctx context.Context, contractID string) (*domain.LegacyAssociation, error)
}

// ApplicationRepository reads the global application registry.
type ApplicationRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Application, error)
}

// EventSink is the append-only domain-event log. No update, no delete.
type EventSink interface {
	SaveAll(ctx context.Context, events []domain.Event) error
}

// SessionStore is the TTL-bounded ephemeral session cache, keyed by gateway
// order id. FindByOrderID returns nil, nil when the session is absent or
// expired.
type SessionStore interface {
	Save(ctx context.Context, session *domain.OnboardingSession, ttl time.Duration) error
	FindByOrderID(ctx context.Context, orderID string) (*domain.OnboardingSession, error)
}

// UniqueIDGenerator mints collision-resistant opaque identifiers, used for
// contract ids during legacy migration and for gateway order ids.
type UniqueIDGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// Clock abstracts the current time so services never read the system clock
// directly.
type Clock interface {
	Now() time.Time
}
