package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wallet-lifecycle-service/config"
	"wallet-lifecycle-service/internal/audit"
	"wallet-lifecycle-service/internal/cache"
	"wallet-lifecycle-service/internal/core/domain"
	"wallet-lifecycle-service/internal/core/ports"
	"wallet-lifecycle-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MigrationServiceImpl transfers wallets out of the legacy payment manager.
// Every operation is idempotent under concurrent duplicate requests: the
// uniqueness constraints on legacy id and wallet id are the only concurrency
// control, and a duplicate-key rejection is recovered by re-reading the row
// the winning request created.
type MigrationServiceImpl struct {
	walletRepo ports.WalletRepository
	assocRepo  ports.LegacyAssociationRepository
	appRepo    ports.ApplicationRepository
	eventSink  ports.EventSink
	idGen      ports.UniqueIDGenerator
	cfg        config.MigrationConfig
	appCache   *cache.TTL[string, domain.Application]
	clock      ports.Clock
	log        zerolog.Logger
}

// NewMigrationService creates a new MigrationServiceImpl.
func NewMigrationService(
	walletRepo ports.WalletRepository,
	assocRepo ports.LegacyAssociationRepository,
	appRepo ports.ApplicationRepository,
	eventSink ports.EventSink,
	idGen ports.UniqueIDGenerator,
	cfg config.MigrationConfig,
	clock ports.Clock,
	log zerolog.Logger,
) *MigrationServiceImpl {
	return &MigrationServiceImpl{
		walletRepo: walletRepo,
		assocRepo:  assocRepo,
		appRepo:    appRepo,
		eventSink:  eventSink,
		idGen:      idGen,
		cfg:        cfg,
		appCache:   cache.NewTTL[string, domain.Application](5*time.Minute, clock),
		clock:      clock,
		log:        log,
	}
}

// CreateWalletByLegacyID migrates a legacy wallet: it finds or creates the
// legacy association, then finds or creates the CREATED card wallet it points
// to. Replays and concurrent duplicates converge on the same wallet without
// emitting extra events.
func (s *MigrationServiceImpl) CreateWalletByLegacyID(ctx context.Context, legacyWalletID string, userID uuid.UUID) (*domain.Wallet, error) {
	assoc, err := s.findOrCreateAssociation(ctx, legacyWalletID)
	if err != nil {
		return nil, err
	}

	existing, err := s.walletRepo.FindByID(ctx, assoc.WalletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find wallet: %w", err))
	}
	if existing != nil {
		return existing, nil
	}

	wallet, err := s.buildMigratedWallet(ctx, assoc, userID)
	if err != nil {
		return nil, err
	}

	saved, err := s.walletRepo.Create(ctx, wallet)
	if errors.Is(err, domain.ErrDuplicateKey) {
		// Lost the race against a concurrent migration of the same legacy
		// id. The winner's wallet is authoritative; no event is emitted.
		winner, findErr := s.walletRepo.FindByID(ctx, assoc.WalletID)
		if findErr != nil {
			return nil, apperror.InternalError(fmt.Errorf("find wallet after duplicate: %w", findErr))
		}
		if winner == nil {
			return nil, apperror.InternalError(fmt.Errorf("wallet %s vanished after duplicate key", assoc.WalletID))
		}
		return winner, nil
	}
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}

	logged := audit.New(saved, domain.Event(domain.WalletMigratedAddedEvent{
		EventMeta: domain.NewEventMeta(s.clock.Now()),
		WalletID:  saved.ID.String(),
	}))
	result, err := logged.Persist(ctx, s.eventSink)
	s.warnOnSinkFailure(err, saved.ID)

	s.log.Info().
		Str("wallet_id", saved.ID.String()).
		Str("legacy_wallet_id", legacyWalletID).
		Msg("legacy wallet migrated")

	return result, nil
}

// findOrCreateAssociation returns the association for the legacy id, creating
// it with a fresh wallet id and contract id on first sight. A duplicate-key
// rejection means a concurrent request created it first; the stored row wins.
func (s *MigrationServiceImpl) findOrCreateAssociation(ctx context.Context, legacyWalletID string) (*domain.LegacyAssociation, error) {
	assoc, err := s.assocRepo.FindByLegacyID(ctx, legacyWalletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find association: %w", err))
	}
	if assoc != nil {
		return assoc, nil
	}

	contractID, err := s.idGen.Generate(ctx)
	if err != nil {
		return nil, apperror.ErrUniqueIDGeneration()
	}

	created, err := s.assocRepo.Create(ctx, &domain.LegacyAssociation{
		LegacyWalletID: legacyWalletID,
		WalletID:       uuid.New(),
		ContractID:     contractID,
		CreationDate:   s.clock.Now(),
	})
	if errors.Is(err, domain.ErrDuplicateKey) {
		stored, findErr := s.assocRepo.FindByLegacyID(ctx, legacyWalletID)
		if findErr != nil {
			return nil, apperror.InternalError(fmt.Errorf("find association after duplicate: %w", findErr))
		}
		if stored == nil {
			return nil, apperror.InternalError(fmt.Errorf("association for legacy id %s vanished after duplicate key", legacyWalletID))
		}
		return stored, nil
	}
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create association: %w", err))
	}
	return created, nil
}

func (s *MigrationServiceImpl) buildMigratedWallet(ctx context.Context, assoc *domain.LegacyAssociation, userID uuid.UUID) (*domain.Wallet, error) {
	app, err := s.defaultApplication(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	appStatus := domain.ApplicationStatusEnabled
	if !domain.CanChangeStatus(domain.ApplicationStatusEnabled, app.Status) {
		appStatus = domain.ApplicationStatusDisabled
	}

	paymentMethodID, err := uuid.Parse(s.cfg.CardPaymentMethodID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("card payment method id: %w", err))
	}

	clients := make(map[string]domain.Client, len(domain.WellKnownClients))
	for _, c := range domain.WellKnownClients {
		clients[c] = domain.Client{Status: domain.ClientStatusEnabled}
	}

	contractID := assoc.ContractID
	return &domain.Wallet{
		ID:              assoc.WalletID,
		UserID:          userID,
		Status:          domain.WalletStatusCreated,
		PaymentMethodID: paymentMethodID,
		ContractID:      &contractID,
		Applications: []domain.WalletApplication{{
			ID:           app.ID,
			Status:       appStatus,
			CreationDate: now,
			UpdateDate:   now,
			Metadata:     map[string]string{domain.MetadataOnboardByMigration: "true"},
		}},
		Clients:           clients,
		CreationDate:      now,
		UpdateDate:        now,
		OnboardingChannel: "MIGRATION",
	}, nil
}

// defaultApplication resolves the application every migrated wallet is
// onboarded with, cached briefly to keep bulk migrations off the registry.
func (s *MigrationServiceImpl) defaultApplication(ctx context.Context) (domain.Application, error) {
	if app, ok := s.appCache.Get(s.cfg.DefaultApplicationID); ok {
		return app, nil
	}
	app, err := s.appRepo.FindByID(ctx, s.cfg.DefaultApplicationID)
	if err != nil {
		return domain.Application{}, apperror.InternalError(fmt.Errorf("find application %s: %w", s.cfg.DefaultApplicationID, err))
	}
	if app == nil {
		return domain.Application{}, apperror.ErrApplicationNotFound(s.cfg.DefaultApplicationID)
	}
	s.appCache.Set(s.cfg.DefaultApplicationID, *app)
	return *app, nil
}

// UpdateCardDetails attaches migrated card details to the wallet bound to the
// contract and moves it to VALIDATED. Re-delivering the same details to an
// already VALIDATED wallet is a no-op. The same instrument cannot reach
// VALIDATED twice for one user; a second wallet carrying it is rejected.
func (s *MigrationServiceImpl) UpdateCardDetails(ctx context.Context, contractID string, details domain.CardDetails) (*domain.Wallet, error) {
	wallet, err := s.findByContractID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	if wallet.IsRedelivery(details) {
		return wallet, nil
	}

	if gatewayID := domain.GatewayInstrumentID(details); gatewayID != "" {
		other, err := s.walletRepo.FindByUserIDAndGatewayInstrumentID(ctx, wallet.UserID, gatewayID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("find wallet by instrument: %w", err))
		}
		if other != nil && other.ID != wallet.ID && other.Status == domain.WalletStatusValidated {
			return nil, apperror.ErrWalletAlreadyOnboarded(other.ID)
		}
	}

	if err := wallet.ValidateTransition(domain.WalletStatusValidated, details); err != nil {
		var conflict *domain.ConflictStatusError
		if errors.As(err, &conflict) {
			return nil, apperror.ErrIllegalStateTransition(wallet.ID, wallet.Status)
		}
		var mismatch *domain.DetailsMismatchError
		if errors.As(err, &mismatch) {
			return nil, apperror.Validation(mismatch.Error())
		}
		return nil, apperror.InternalError(err)
	}

	now := s.clock.Now()
	wallet.Status = domain.WalletStatusValidated
	wallet.Details = details
	wallet.UpdateDate = now

	saved, err := s.walletRepo.Update(ctx, wallet)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update wallet: %w", err))
	}

	logged := audit.New(saved, domain.Event(domain.WalletDetailsAddedEvent{
		EventMeta: domain.NewEventMeta(now),
		WalletID:  saved.ID.String(),
	}))
	result, err := logged.Persist(ctx, s.eventSink)
	s.warnOnSinkFailure(err, saved.ID)

	return result, nil
}

// DeleteByContractID transitions the wallet bound to the contract to DELETED.
func (s *MigrationServiceImpl) DeleteByContractID(ctx context.Context, contractID string) (*domain.Wallet, error) {
	wallet, err := s.findByContractID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if err := wallet.ValidateTransition(domain.WalletStatusDeleted, nil); err != nil {
		return nil, apperror.ErrConflictStatus(wallet.ID, wallet.Status)
	}

	now := s.clock.Now()
	wallet.Status = domain.WalletStatusDeleted
	wallet.UpdateDate = now

	saved, err := s.walletRepo.Update(ctx, wallet)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update wallet: %w", err))
	}

	logged := audit.New(saved, domain.Event(domain.WalletDeletedEvent{
		EventMeta: domain.NewEventMeta(now),
		WalletID:  saved.ID.String(),
	}))
	result, err := logged.Persist(ctx, s.eventSink)
	s.warnOnSinkFailure(err, saved.ID)

	s.log.Info().
		Str("wallet_id", saved.ID.String()).
		Msg("migrated wallet deleted by contract")

	return result, nil
}

func (s *MigrationServiceImpl) findByContractID(ctx context.Context, contractID string) (*domain.Wallet, error) {
	assoc, err := s.assocRepo.FindByContractID(ctx, contractID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find association: %w", err))
	}
	if assoc == nil {
		return nil, apperror.ErrContractIDNotFound(contractID)
	}
	wallet, err := s.walletRepo.FindByID(ctx, assoc.WalletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound(assoc.WalletID)
	}
	return wallet, nil
}

func (s *MigrationServiceImpl) warnOnSinkFailure(err error, walletID uuid.UUID) {
	var sinkErr *audit.SinkError
	if errors.As(err, &sinkErr) {
		s.log.Warn().
			Err(sinkErr).
			Str("wallet_id", walletID.String()).
			Msg("event log write failed after committed state change")
	}
}
