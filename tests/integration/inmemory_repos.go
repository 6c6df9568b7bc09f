package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"wallet-lifecycle-service/internal/core/domain"

	"github.com/google/uuid"
)

// In-memory repositories backing the integration stack. They enforce the same
// uniqueness constraints as the Postgres schema, so duplicate-key races behave
// exactly like production.

type inMemoryWalletRepo struct {
	mu      sync.Mutex
	wallets map[uuid.UUID]*domain.Wallet
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[uuid.UUID]*domain.Wallet)}
}

func (r *inMemoryWalletRepo) Create(_ context.Context, w *domain.Wallet) (*domain.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.wallets[w.ID]; exists {
		return nil, fmt.Errorf("insert wallet: %w", domain.ErrDuplicateKey)
	}
	if w.ContractID != nil {
		for _, other := range r.wallets {
			if other.ContractID != nil && *other.ContractID == *w.ContractID {
				return nil, fmt.Errorf("insert wallet: %w", domain.ErrDuplicateKey)
			}
		}
	}
	cp := *w
	r.wallets[w.ID] = &cp
	return w, nil
}

func (r *inMemoryWalletRepo) Update(_ context.Context, w *domain.Wallet) (*domain.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.wallets[w.ID]; !exists {
		return nil, fmt.Errorf("wallet not found: %s", w.ID)
	}
	w.Version++
	cp := *w
	r.wallets[w.ID] = &cp
	return w, nil
}

func (r *inMemoryWalletRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryWalletRepo) FindByIDAndUserID(_ context.Context, id, userID uuid.UUID) (*domain.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[id]
	if !ok || w.UserID != userID {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryWalletRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]domain.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Wallet
	for _, w := range r.wallets {
		if w.UserID == userID {
			result = append(result, *w)
		}
	}
	return result, nil
}

func (r *inMemoryWalletRepo) FindByUserIDAndGatewayInstrumentID(_ context.Context, userID uuid.UUID, gatewayInstrumentID string) (*domain.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.wallets {
		if w.UserID != userID || w.Status != domain.WalletStatusValidated {
			continue
		}
		if domain.GatewayInstrumentID(w.Details) == gatewayInstrumentID {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

type inMemoryAssociationRepo struct {
	mu       sync.Mutex
	byLegacy map[string]*domain.LegacyAssociation
}

func newInMemoryAssociationRepo() *inMemoryAssociationRepo {
	return &inMemoryAssociationRepo{byLegacy: make(map[string]*domain.LegacyAssociation)}
}

func (r *inMemoryAssociationRepo) Create(_ context.Context, a *domain.LegacyAssociation) (*domain.LegacyAssociation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byLegacy[a.LegacyWalletID]; exists {
		return nil, fmt.Errorf("insert association: %w", domain.ErrDuplicateKey)
	}
	cp := *a
	r.byLegacy[a.LegacyWalletID] = &cp
	return a, nil
}

func (r *inMemoryAssociationRepo) FindByLegacyID(_ context.Context, legacyWalletID string) (*domain.LegacyAssociation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byLegacy[legacyWalletID]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *inMemoryAssociationRepo) FindByContractID(_ context.Context, contractID string) (*domain.LegacyAssociation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.byLegacy {
		if a.ContractID == contractID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryAssociationRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byLegacy)
}

type inMemoryApplicationRepo struct {
	mu   sync.Mutex
	apps map[string]*domain.Application
}

func newInMemoryApplicationRepo() *inMemoryApplicationRepo {
	return &inMemoryApplicationRepo{apps: make(map[string]*domain.Application)}
}

func (r *inMemoryApplicationRepo) seed(id string, status domain.ApplicationStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	r.apps[id] = &domain.Application{
		ID:           id,
		Description:  id,
		Status:       status,
		CreationDate: now,
		UpdateDate:   now,
	}
}

func (r *inMemoryApplicationRepo) FindByID(_ context.Context, id string) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

type inMemoryEventSink struct {
	mu     sync.Mutex
	events []domain.Event
}

func newInMemoryEventSink() *inMemoryEventSink {
	return &inMemoryEventSink{}
}

func (s *inMemoryEventSink) SaveAll(_ context.Context, events []domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, events...)
	return nil
}

func (s *inMemoryEventSink) byType(t domain.EventType) []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []domain.Event
	for _, ev := range s.events {
		if ev.Type() == t {
			result = append(result, ev)
		}
	}
	return result
}
