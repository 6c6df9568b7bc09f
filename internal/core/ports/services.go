package ports

import (
	"context"
	"time"

	"wallet-lifecycle-service/internal/core/domain"

	"github.com/google/uuid"
)

// WalletService owns the wallet lifecycle: creation, onboarding session
// opening, applications enablement, error patching and deletion.
type WalletService interface {
	CreateWallet(ctx context.Context, req CreateWalletRequest) (*domain.Wallet, error)
	CreateSession(ctx context.Context, req CreateSessionRequest) (*SessionResult, error)
	UpdateApplications(ctx context.Context, req UpdateApplicationsRequest) (*ApplicationsUpdateResult, error)
	PatchWalletStateToError(ctx context.Context, walletID uuid.UUID, reason *string) (*domain.Wallet, error)
	DeleteWallet(ctx context.Context, walletID, userID uuid.UUID) error
	FindByID(ctx context.Context, walletID uuid.UUID) (*domain.Wallet, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Wallet, error)
}

// CreateWalletRequest holds validated input for wallet creation.
type CreateWalletRequest struct {
	UserID            uuid.UUID
	PaymentMethodID   uuid.UUID
	Applications      []string
	OnboardingChannel string
}

// CreateSessionRequest opens an onboarding session for a wallet.
type CreateSessionRequest struct {
	WalletID uuid.UUID
	UserID   uuid.UUID
	PspID    string
}

// SessionResult is the opened session plus the token handed to the gateway.
type SessionResult struct {
	OrderID       string
	SecurityToken string
	WalletID      uuid.UUID
}

// UpdateApplicationsRequest holds the requested enablement label per
// application id.
type UpdateApplicationsRequest struct {
	WalletID uuid.UUID
	UserID   uuid.UUID
	Updates  map[string]domain.ApplicationStatus
}

// ApplicationsUpdateResult partitions the requested changes into the ones
// accepted and the ones rejected by the enablement rule.
type ApplicationsUpdateResult struct {
	Wallet  *domain.Wallet
	Updated map[string]domain.ApplicationStatus
	Failed  map[string]domain.ApplicationStatus
}

// NotificationService reconciles gateway outcome notifications against the
// stored session and wallet state.
type NotificationService interface {
	Notify(ctx context.Context, req NotificationRequest) (*NotificationResult, error)
}

// NotificationDetails is the outcome-typed payload of a gateway notification.
type NotificationDetails interface {
	sealedNotificationDetails()
}

// NotificationCardDetails carries the card-specific notification fields.
type NotificationCardDetails struct {
	PaymentInstrumentGatewayID string
}

func (NotificationCardDetails) sealedNotificationDetails() {}

// NotificationPayPalDetails carries the PayPal-specific notification fields.
type NotificationPayPalDetails struct {
	MaskedEmail string
}

func (NotificationPayPalDetails) sealedNotificationDetails() {}

// NotificationRequest is a gateway callback correlated to a wallet and order.
type NotificationRequest struct {
	WalletID           uuid.UUID
	OrderID            string
	SecurityToken      string
	OperationID        string
	OperationResult    domain.OperationResult
	ErrorCode          *string
	OperationTimestamp time.Time
	Details            NotificationDetails
}

// NotificationOutcome classifies how a notification was handled, for the
// observability boundary.
type NotificationOutcome string

const (
	NotificationOutcomeOK                    NotificationOutcome = "OK"
	NotificationOutcomeSessionNotFound       NotificationOutcome = "SESSION_NOT_FOUND"
	NotificationOutcomeWalletNotFound        NotificationOutcome = "WALLET_NOT_FOUND"
	NotificationOutcomeSecurityTokenMismatch NotificationOutcome = "SECURITY_TOKEN_MISMATCH"
	NotificationOutcomeWrongWalletStatus     NotificationOutcome = "WRONG_WALLET_STATUS"
	NotificationOutcomeBadRequest            NotificationOutcome = "BAD_REQUEST"
	NotificationOutcomeProcessingError       NotificationOutcome = "PROCESSING_ERROR"
)

// NotificationResult is the structured outcome record emitted on every
// notification path, success or failure.
type NotificationResult struct {
	Outcome          NotificationOutcome
	PriorStatus      *domain.WalletStatus
	NextStatus       *domain.WalletStatus
	DetailsType      *domain.DetailsType
	GatewayResult    string
	GatewayErrorCode *string
	Wallet           *domain.Wallet
}

// MigrationService handles the one-time transfer of wallets from the legacy
// payment manager.
type MigrationService interface {
	CreateWalletByLegacyID(ctx context.Context, legacyWalletID string, userID uuid.UUID) (*domain.Wallet, error)
	UpdateCardDetails(ctx context.Context, contractID string, details domain.CardDetails) (*domain.Wallet, error)
	DeleteByContractID(ctx context.Context, contractID string) (*domain.Wallet, error)
}

// TokenService mints the per-session security token the gateway echoes back
// in notifications.
type TokenService interface {
	Generate(orderID string, walletID uuid.UUID) (string, error)
}
