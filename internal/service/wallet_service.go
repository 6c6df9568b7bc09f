package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wallet-lifecycle-service/config"
	"wallet-lifecycle-service/internal/audit"
	"wallet-lifecycle-service/internal/core/domain"
	"wallet-lifecycle-service/internal/core/ports"
	"wallet-lifecycle-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	walletRepo ports.WalletRepository
	appRepo    ports.ApplicationRepository
	sessions   ports.SessionStore
	eventSink  ports.EventSink
	tokenSvc   ports.TokenService
	idGen      ports.UniqueIDGenerator
	apiKeys    *config.NpgAPIKeys
	sessionTTL time.Duration
	clock      ports.Clock
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	walletRepo ports.WalletRepository,
	appRepo ports.ApplicationRepository,
	sessions ports.SessionStore,
	eventSink ports.EventSink,
	tokenSvc ports.TokenService,
	idGen ports.UniqueIDGenerator,
	apiKeys *config.NpgAPIKeys,
	sessionTTL time.Duration,
	clock ports.Clock,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		appRepo:    appRepo,
		sessions:   sessions,
		eventSink:  eventSink,
		tokenSvc:   tokenSvc,
		idGen:      idGen,
		apiKeys:    apiKeys,
		sessionTTL: sessionTTL,
		clock:      clock,
		log:        log,
	}
}

// CreateWallet creates an INITIALIZED wallet for the user, with the requested
// applications rule-checked against the global registry.
func (s *WalletServiceImpl) CreateWallet(ctx context.Context, req ports.CreateWalletRequest) (*domain.Wallet, error) {
	now := s.clock.Now()

	apps := make([]domain.WalletApplication, 0, len(req.Applications))
	for _, appID := range req.Applications {
		global, err := s.appRepo.FindByID(ctx, appID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("find application %s: %w", appID, err))
		}
		if global == nil {
			return nil, apperror.ErrApplicationNotFound(appID)
		}
		status := domain.ApplicationStatusEnabled
		if !domain.CanChangeStatus(domain.ApplicationStatusEnabled, global.Status) {
			status = domain.ApplicationStatusDisabled
		}
		apps = append(apps, domain.WalletApplication{
			ID:           appID,
			Status:       status,
			CreationDate: now,
			UpdateDate:   now,
			Metadata:     map[string]string{},
		})
	}

	clients := make(map[string]domain.Client, len(domain.WellKnownClients))
	for _, c := range domain.WellKnownClients {
		clients[c] = domain.Client{Status: domain.ClientStatusEnabled}
	}

	wallet := &domain.Wallet{
		ID:                uuid.New(),
		UserID:            req.UserID,
		Status:            domain.WalletStatusInitialized,
		PaymentMethodID:   req.PaymentMethodID,
		Applications:      apps,
		Clients:           clients,
		CreationDate:      now,
		UpdateDate:        now,
		OnboardingChannel: req.OnboardingChannel,
	}

	saved, err := s.walletRepo.Create(ctx, wallet)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}

	logged := audit.New(saved, domain.Event(domain.WalletAddedEvent{
		EventMeta: domain.NewEventMeta(now),
		WalletID:  saved.ID.String(),
	}))
	result, err := logged.Persist(ctx, s.eventSink)
	s.warnOnSinkFailure(err, saved.ID)

	s.log.Info().
		Str("wallet_id", saved.ID.String()).
		Str("user_id", req.UserID.String()).
		Msg("wallet created")

	return result, nil
}

// CreateSession opens an onboarding session for a wallet: it resolves the PSP
// credential, mints the security token the gateway must echo back, stores the
// session under a TTL and moves an INITIALIZED wallet to CREATED.
func (s *WalletServiceImpl) CreateSession(ctx context.Context, req ports.CreateSessionRequest) (*ports.SessionResult, error) {
	wallet, err := s.walletRepo.FindByIDAndUserID(ctx, req.WalletID, req.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound(req.WalletID)
	}
	if err := wallet.ExpectInStatus(domain.WalletStatusInitialized, domain.WalletStatusCreated); err != nil {
		return nil, apperror.ErrConflictStatus(wallet.ID, wallet.Status)
	}

	// The caller uses the resolved credential for its outbound order-build
	// call; resolving it here surfaces a misconfigured PSP before any state
	// change.
	if _, err := s.apiKeys.Get(req.PspID); err != nil {
		return nil, err
	}

	orderID, err := s.idGen.Generate(ctx)
	if err != nil {
		return nil, apperror.ErrUniqueIDGeneration()
	}
	token, err := s.tokenSvc.Generate(orderID, wallet.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate security token: %w", err))
	}

	now := s.clock.Now()
	if wallet.Status == domain.WalletStatusInitialized {
		wallet.Status = domain.WalletStatusCreated
	}
	wallet.UpdateDate = now
	saved, err := s.walletRepo.Update(ctx, wallet)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update wallet: %w", err))
	}

	session := &domain.OnboardingSession{
		OrderID:       orderID,
		SessionID:     uuid.NewString(),
		SecurityToken: token,
		WalletID:      saved.ID,
	}
	if err := s.sessions.Save(ctx, session, s.sessionTTL); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save session: %w", err))
	}

	logged := audit.New(saved, domain.Event(domain.SessionWalletAddedEvent{
		EventMeta: domain.NewEventMeta(now),
		WalletID:  saved.ID.String(),
		OrderID:   orderID,
	}))
	if _, err := logged.Persist(ctx, s.eventSink); err != nil {
		s.warnOnSinkFailure(err, saved.ID)
	}

	s.log.Info().
		Str("wallet_id", saved.ID.String()).
		Str("order_id", orderID).
		Msg("onboarding session created")

	return &ports.SessionResult{
		OrderID:       orderID,
		SecurityToken: token,
		WalletID:      saved.ID,
	}, nil
}

// UpdateApplications applies the requested enablement labels, accepting each
// one only when the 3x3 rule allows it against the global status.
func (s *WalletServiceImpl) UpdateApplications(ctx context.Context, req ports.UpdateApplicationsRequest) (*ports.ApplicationsUpdateResult, error) {
	wallet, err := s.walletRepo.FindByIDAndUserID(ctx, req.WalletID, req.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound(req.WalletID)
	}

	now := s.clock.Now()
	updated := map[string]domain.ApplicationStatus{}
	failed := map[string]domain.ApplicationStatus{}

	for appID, requested := range req.Updates {
		global, err := s.appRepo.FindByID(ctx, appID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("find application %s: %w", appID, err))
		}
		if global == nil {
			return nil, apperror.ErrApplicationNotFound(appID)
		}
		if !domain.CanChangeStatus(requested, global.Status) {
			failed[appID] = global.Status
			continue
		}
		updated[appID] = requested
		applyApplicationStatus(wallet, appID, requested, now)
	}

	if len(updated) > 0 {
		wallet.UpdateDate = now
		saved, err := s.walletRepo.Update(ctx, wallet)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("update wallet: %w", err))
		}
		wallet = saved

		ids := make([]string, 0, len(updated))
		for id := range updated {
			ids = append(ids, id)
		}
		logged := audit.New(wallet, domain.Event(domain.WalletApplicationsUpdatedEvent{
			EventMeta: domain.NewEventMeta(now),
			WalletID:  wallet.ID.String(),
			Updated:   ids,
		}))
		if _, err := logged.Persist(ctx, s.eventSink); err != nil {
			s.warnOnSinkFailure(err, wallet.ID)
		}
	}

	return &ports.ApplicationsUpdateResult{
		Wallet:  wallet,
		Updated: updated,
		Failed:  failed,
	}, nil
}

func applyApplicationStatus(wallet *domain.Wallet, appID string, status domain.ApplicationStatus, now time.Time) {
	for i := range wallet.Applications {
		if wallet.Applications[i].ID == appID {
			wallet.Applications[i].Status = status
			wallet.Applications[i].UpdateDate = now
			return
		}
	}
	wallet.Applications = append(wallet.Applications, domain.WalletApplication{
		ID:           appID,
		Status:       status,
		CreationDate: now,
		UpdateDate:   now,
		Metadata:     map[string]string{},
	})
}

// PatchWalletStateToError forces a transient wallet to ERROR with a reason.
func (s *WalletServiceImpl) PatchWalletStateToError(ctx context.Context, walletID uuid.UUID, reason *string) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.FindByID(ctx, walletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound(walletID)
	}

	patched := wallet.ToError(reason)
	if err := patched.ExpectInStatus(domain.WalletStatusError); err != nil {
		// A DELETED wallet passes through ToError unchanged.
		return nil, apperror.ErrConflictStatus(wallet.ID, wallet.Status)
	}

	now := s.clock.Now()
	patched.UpdateDate = now
	saved, err := s.walletRepo.Update(ctx, &patched)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update wallet: %w", err))
	}

	logged := audit.New(saved, domain.Event(domain.WalletPatchEvent{
		EventMeta: domain.NewEventMeta(now),
		WalletID:  saved.ID.String(),
	}))
	result, err := logged.Persist(ctx, s.eventSink)
	s.warnOnSinkFailure(err, saved.ID)

	s.log.Info().
		Str("wallet_id", saved.ID.String()).
		Msg("wallet patched to error state")

	return result, nil
}

// DeleteWallet transitions a user's wallet to DELETED.
func (s *WalletServiceImpl) DeleteWallet(ctx context.Context, walletID, userID uuid.UUID) error {
	wallet, err := s.walletRepo.FindByIDAndUserID(ctx, walletID, userID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("find wallet: %w", err))
	}
	if wallet == nil {
		return apperror.ErrWalletNotFound(walletID)
	}
	if err := wallet.ValidateTransition(domain.WalletStatusDeleted, nil); err != nil {
		return s.mapDomainError(err)
	}

	now := s.clock.Now()
	wallet.Status = domain.WalletStatusDeleted
	wallet.UpdateDate = now
	saved, err := s.walletRepo.Update(ctx, wallet)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("update wallet: %w", err))
	}

	logged := audit.New(saved, domain.Event(domain.WalletDeletedEvent{
		EventMeta: domain.NewEventMeta(now),
		WalletID:  saved.ID.String(),
	}))
	if _, err := logged.Persist(ctx, s.eventSink); err != nil {
		s.warnOnSinkFailure(err, saved.ID)
	}

	s.log.Info().
		Str("wallet_id", saved.ID.String()).
		Msg("wallet deleted")

	return nil
}

// FindByID fetches a wallet by id.
func (s *WalletServiceImpl) FindByID(ctx context.Context, walletID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.FindByID(ctx, walletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound(walletID)
	}
	return wallet, nil
}

// FindByUserID fetches all wallets of a user.
func (s *WalletServiceImpl) FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Wallet, error) {
	wallets, err := s.walletRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find wallets by user: %w", err))
	}
	return wallets, nil
}

// mapDomainError translates domain rejection types into the external error
// surface.
func (s *WalletServiceImpl) mapDomainError(err error) error {
	var conflict *domain.ConflictStatusError
	if errors.As(err, &conflict) {
		return apperror.ErrConflictStatus(conflict.WalletID, conflict.Current)
	}
	var mismatch *domain.DetailsMismatchError
	if errors.As(err, &mismatch) {
		return apperror.Validation(mismatch.Error())
	}
	return apperror.InternalError(err)
}

// warnOnSinkFailure logs a failed event-log write. State is already
// committed; the failure stays observable in the logs but never propagates.
func (s *WalletServiceImpl) warnOnSinkFailure(err error, walletID uuid.UUID) {
	var sinkErr *audit.SinkError
	if errors.As(err, &sinkErr) {
		s.log.Warn().
			Err(sinkErr).
			Str("wallet_id", walletID.String()).
			Msg("event log write failed after committed state change")
	}
}
