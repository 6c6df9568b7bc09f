package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"wallet-lifecycle-service/config"
	"wallet-lifecycle-service/internal/core/domain"
	"wallet-lifecycle-service/internal/core/ports"
	"wallet-lifecycle-service/internal/core/ports/mocks"
	"wallet-lifecycle-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fixedClock pins time for deterministic assertions across service tests.
type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

type walletServiceFixture struct {
	walletRepo *mocks.MockWalletRepository
	appRepo    *mocks.MockApplicationRepository
	sessions   *mocks.MockSessionStore
	eventSink  *mocks.MockEventSink
	tokenSvc   *mocks.MockTokenService
	idGen      *mocks.MockUniqueIDGenerator
	svc        *WalletServiceImpl
}

func newWalletServiceFixture(t *testing.T) *walletServiceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &walletServiceFixture{
		walletRepo: mocks.NewMockWalletRepository(ctrl),
		appRepo:    mocks.NewMockApplicationRepository(ctrl),
		sessions:   mocks.NewMockSessionStore(ctrl),
		eventSink:  mocks.NewMockEventSink(ctrl),
		tokenSvc:   mocks.NewMockTokenService(ctrl),
		idGen:      mocks.NewMockUniqueIDGenerator(ctrl),
	}

	apiKeys, err := config.ParseNpgAPIKeys(config.NpgConfig{
		APIKeysJSON:  `{"PSP_A":"key-a"}`,
		RequiredPsps: []string{"PSP_A"},
	})
	require.NoError(t, err)

	f.svc = NewWalletService(
		f.walletRepo, f.appRepo, f.sessions, f.eventSink,
		f.tokenSvc, f.idGen, apiKeys, 15*time.Minute,
		fixedClock{now: testNow}, zerolog.Nop(),
	)
	return f
}

func enabledApplication(id string) *domain.Application {
	return &domain.Application{ID: id, Status: domain.ApplicationStatusEnabled}
}

func TestCreateWallet_Success(t *testing.T) {
	f := newWalletServiceFixture(t)
	userID := uuid.New()

	f.appRepo.EXPECT().FindByID(gomock.Any(), "PAGOPA").Return(enabledApplication("PAGOPA"), nil)
	f.walletRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w *domain.Wallet) (*domain.Wallet, error) {
			assert.Equal(t, domain.WalletStatusInitialized, w.Status)
			assert.Equal(t, userID, w.UserID)
			require.Len(t, w.Applications, 1)
			assert.Equal(t, domain.ApplicationStatusEnabled, w.Applications[0].Status)
			assert.Contains(t, w.Clients, "IO")
			return w, nil
		})
	f.eventSink.EXPECT().SaveAll(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, events []domain.Event) error {
			require.Len(t, events, 1)
			assert.Equal(t, domain.EventTypeWalletAdded, events[0].Type())
			assert.Equal(t, testNow, events[0].OccurredAt())
			return nil
		})

	wallet, err := f.svc.CreateWallet(context.Background(), ports.CreateWalletRequest{
		UserID:            userID,
		PaymentMethodID:   uuid.New(),
		Applications:      []string{"PAGOPA"},
		OnboardingChannel: "IO",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.WalletStatusInitialized, wallet.Status)
}

func TestCreateWallet_UnknownApplication(t *testing.T) {
	f := newWalletServiceFixture(t)

	f.appRepo.EXPECT().FindByID(gomock.Any(), "NOPE").Return(nil, nil)

	_, err := f.svc.CreateWallet(context.Background(), ports.CreateWalletRequest{
		UserID:       uuid.New(),
		Applications: []string{"NOPE"},
	})
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WLT_004", appErr.Code)
}

func TestCreateWallet_GloballyDisabledApplicationEntryDisabled(t *testing.T) {
	f := newWalletServiceFixture(t)

	f.appRepo.EXPECT().FindByID(gomock.Any(), "PAGOPA").Return(
		&domain.Application{ID: "PAGOPA", Status: domain.ApplicationStatusDisabled}, nil)
	f.walletRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w *domain.Wallet) (*domain.Wallet, error) {
			require.Len(t, w.Applications, 1)
			assert.Equal(t, domain.ApplicationStatusDisabled, w.Applications[0].Status)
			return w, nil
		})
	f.eventSink.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.CreateWallet(context.Background(), ports.CreateWalletRequest{
		UserID:       uuid.New(),
		Applications: []string{"PAGOPA"},
	})
	require.NoError(t, err)
}

func TestCreateWallet_SinkFailureIsNonFatal(t *testing.T) {
	f := newWalletServiceFixture(t)

	f.appRepo.EXPECT().FindByID(gomock.Any(), "PAGOPA").Return(enabledApplication("PAGOPA"), nil)
	f.walletRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w *domain.Wallet) (*domain.Wallet, error) { return w, nil })
	f.eventSink.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	wallet, err := f.svc.CreateWallet(context.Background(), ports.CreateWalletRequest{
		UserID:       uuid.New(),
		Applications: []string{"PAGOPA"},
	})
	require.NoError(t, err)
	assert.NotNil(t, wallet)
}

func TestCreateSession_Success(t *testing.T) {
	f := newWalletServiceFixture(t)
	walletID := uuid.New()
	userID := uuid.New()

	stored := &domain.Wallet{ID: walletID, UserID: userID, Status: domain.WalletStatusInitialized}
	f.walletRepo.EXPECT().FindByIDAndUserID(gomock.Any(), walletID, userID).Return(stored, nil)
	f.idGen.EXPECT().Generate(gomock.Any()).Return("W1741948200000abcd", nil)
	f.tokenSvc.EXPECT().Generate("W1741948200000abcd", walletID).Return("signed-token", nil)
	f.walletRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w *domain.Wallet) (*domain.Wallet, error) {
			assert.Equal(t, domain.WalletStatusCreated, w.Status)
			return w, nil
		})
	f.sessions.EXPECT().Save(gomock.Any(), gomock.Any(), 15*time.Minute).DoAndReturn(
		func(_ context.Context, s *domain.OnboardingSession, _ time.Duration) error {
			assert.Equal(t, walletID, s.WalletID)
			assert.Equal(t, "signed-token", s.SecurityToken)
			return nil
		})
	f.eventSink.EXPECT().SaveAll(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, events []domain.Event) error {
			require.Len(t, events, 1)
			assert.Equal(t, domain.EventTypeSessionWalletAdded, events[0].Type())
			return nil
		})

	result, err := f.svc.CreateSession(context.Background(), ports.CreateSessionRequest{
		WalletID: walletID,
		UserID:   userID,
		PspID:    "PSP_A",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.SecurityToken)
	assert.Equal(t, walletID, result.WalletID)
}

func TestCreateSession_ConflictingStatus(t *testing.T) {
	f := newWalletServiceFixture(t)
	walletID := uuid.New()
	userID := uuid.New()

	stored := &domain.Wallet{ID: walletID, UserID: userID, Status: domain.WalletStatusValidated}
	f.walletRepo.EXPECT().FindByIDAndUserID(gomock.Any(), walletID, userID).Return(stored, nil)

	_, err := f.svc.CreateSession(context.Background(), ports.CreateSessionRequest{
		WalletID: walletID, UserID: userID, PspID: "PSP_A",
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WLT_101", appErr.Code)
}

func TestCreateSession_MissingPspKeyFailsBeforeAnyMutation(t *testing.T) {
	f := newWalletServiceFixture(t)
	walletID := uuid.New()
	userID := uuid.New()

	stored := &domain.Wallet{ID: walletID, UserID: userID, Status: domain.WalletStatusInitialized}
	f.walletRepo.EXPECT().FindByIDAndUserID(gomock.Any(), walletID, userID).Return(stored, nil)

	_, err := f.svc.CreateSession(context.Background(), ports.CreateSessionRequest{
		WalletID: walletID, UserID: userID, PspID: "PSP_UNKNOWN",
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "GTW_002", appErr.Code)
}

func TestUpdateApplications_PartitionsUpdatedAndFailed(t *testing.T) {
	f := newWalletServiceFixture(t)
	walletID := uuid.New()
	userID := uuid.New()

	stored := &domain.Wallet{
		ID: walletID, UserID: userID, Status: domain.WalletStatusValidated,
		Applications: []domain.WalletApplication{
			{ID: "PAGOPA", Status: domain.ApplicationStatusDisabled},
		},
	}
	f.walletRepo.EXPECT().FindByIDAndUserID(gomock.Any(), walletID, userID).Return(stored, nil)
	f.appRepo.EXPECT().FindByID(gomock.Any(), "PAGOPA").Return(enabledApplication("PAGOPA"), nil)
	f.appRepo.EXPECT().FindByID(gomock.Any(), "PARI").Return(
		&domain.Application{ID: "PARI", Status: domain.ApplicationStatusIncoming}, nil)
	f.walletRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w *domain.Wallet) (*domain.Wallet, error) { return w, nil })
	f.eventSink.EXPECT().SaveAll(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, events []domain.Event) error {
			require.Len(t, events, 1)
			assert.Equal(t, domain.EventTypeWalletAppsUpdated, events[0].Type())
			return nil
		})

	result, err := f.svc.UpdateApplications(context.Background(), ports.UpdateApplicationsRequest{
		WalletID: walletID,
		UserID:   userID,
		Updates: map[string]domain.ApplicationStatus{
			"PAGOPA": domain.ApplicationStatusEnabled, // allowed: globally ENABLED
			"PARI":   domain.ApplicationStatusEnabled, // rejected: globally INCOMING
		},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusEnabled, result.Updated["PAGOPA"])
	assert.Equal(t, domain.ApplicationStatusIncoming, result.Failed["PARI"])
	assert.NotContains(t, result.Updated, "PARI")
}

func TestUpdateApplications_NothingAcceptedSkipsWrite(t *testing.T) {
	f := newWalletServiceFixture(t)
	walletID := uuid.New()
	userID := uuid.New()

	stored := &domain.Wallet{ID: walletID, UserID: userID, Status: domain.WalletStatusValidated}
	f.walletRepo.EXPECT().FindByIDAndUserID(gomock.Any(), walletID, userID).Return(stored, nil)
	f.appRepo.EXPECT().FindByID(gomock.Any(), "PARI").Return(
		&domain.Application{ID: "PARI", Status: domain.ApplicationStatusIncoming}, nil)

	result, err := f.svc.UpdateApplications(context.Background(), ports.UpdateApplicationsRequest{
		WalletID: walletID,
		UserID:   userID,
		Updates:  map[string]domain.ApplicationStatus{"PARI": domain.ApplicationStatusEnabled},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Updated)
	assert.Len(t, result.Failed, 1)
}

func TestPatchWalletStateToError(t *testing.T) {
	f := newWalletServiceFixture(t)
	walletID := uuid.New()
	reason := "gateway reported fraud"

	stored := &domain.Wallet{ID: walletID, Status: domain.WalletStatusCreated}
	f.walletRepo.EXPECT().FindByID(gomock.Any(), walletID).Return(stored, nil)
	f.walletRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w *domain.Wallet) (*domain.Wallet, error) {
			assert.Equal(t, domain.WalletStatusError, w.Status)
			require.NotNil(t, w.ErrorReason)
			assert.Equal(t, reason, *w.ErrorReason)
			return w, nil
		})
	f.eventSink.EXPECT().SaveAll(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, events []domain.Event) error {
			require.Len(t, events, 1)
			assert.Equal(t, domain.EventTypeWalletPatch, events[0].Type())
			return nil
		})

	wallet, err := f.svc.PatchWalletStateToError(context.Background(), walletID, &reason)
	require.NoError(t, err)
	assert.Equal(t, domain.WalletStatusError, wallet.Status)
}

func TestPatchWalletStateToError_DeletedWalletConflicts(t *testing.T) {
	f := newWalletServiceFixture(t)
	walletID := uuid.New()

	stored := &domain.Wallet{ID: walletID, Status: domain.WalletStatusDeleted}
	f.walletRepo.EXPECT().FindByID(gomock.Any(), walletID).Return(stored, nil)

	_, err := f.svc.PatchWalletStateToError(context.Background(), walletID, nil)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WLT_101", appErr.Code)
}

func TestDeleteWallet(t *testing.T) {
	f := newWalletServiceFixture(t)
	walletID := uuid.New()
	userID := uuid.New()

	stored := &domain.Wallet{ID: walletID, UserID: userID, Status: domain.WalletStatusValidated}
	f.walletRepo.EXPECT().FindByIDAndUserID(gomock.Any(), walletID, userID).Return(stored, nil)
	f.walletRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w *domain.Wallet) (*domain.Wallet, error) {
			assert.Equal(t, domain.WalletStatusDeleted, w.Status)
			return w, nil
		})
	f.eventSink.EXPECT().SaveAll(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, events []domain.Event) error {
			require.Len(t, events, 1)
			assert.Equal(t, domain.EventTypeWalletDeleted, events[0].Type())
			return nil
		})

	require.NoError(t, f.svc.DeleteWallet(context.Background(), walletID, userID))
}

func TestDeleteWallet_TerminalRejected(t *testing.T) {
	f := newWalletServiceFixture(t)
	walletID := uuid.New()
	userID := uuid.New()

	stored := &domain.Wallet{ID: walletID, UserID: userID, Status: domain.WalletStatusError}
	f.walletRepo.EXPECT().FindByIDAndUserID(gomock.Any(), walletID, userID).Return(stored, nil)

	err := f.svc.DeleteWallet(context.Background(), walletID, userID)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WLT_101", appErr.Code)
}

func TestDeleteWallet_NotFound(t *testing.T) {
	f := newWalletServiceFixture(t)

	f.walletRepo.EXPECT().FindByIDAndUserID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	err := f.svc.DeleteWallet(context.Background(), uuid.New(), uuid.New())
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WLT_001", appErr.Code)
}
