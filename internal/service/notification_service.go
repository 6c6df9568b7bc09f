package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"wallet-lifecycle-service/internal/audit"
	"wallet-lifecycle-service/internal/core/domain"
	"wallet-lifecycle-service/internal/core/ports"
	"wallet-lifecycle-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// NotificationServiceImpl reconciles gateway outcome notifications with the
// wallet lifecycle. Every call, including every failure path, produces a
// NotificationResult so the handling of a callback stays observable.
type NotificationServiceImpl struct {
	walletRepo ports.WalletRepository
	sessions   ports.SessionStore
	eventSink  ports.EventSink
	clock      ports.Clock
	log        zerolog.Logger
}

// NewNotificationService creates a new NotificationServiceImpl.
func NewNotificationService(
	walletRepo ports.WalletRepository,
	sessions ports.SessionStore,
	eventSink ports.EventSink,
	clock ports.Clock,
	log zerolog.Logger,
) *NotificationServiceImpl {
	return &NotificationServiceImpl{
		walletRepo: walletRepo,
		sessions:   sessions,
		eventSink:  eventSink,
		clock:      clock,
		log:        log,
	}
}

// Notify applies a gateway notification: it authenticates the callback
// against the stored session, validates the wallet state, and moves the
// wallet to VALIDATED or ERROR. An identical re-delivery succeeds without
// mutating anything. The returned error, when non-nil, carries the same
// classification as the result's Outcome.
func (s *NotificationServiceImpl) Notify(ctx context.Context, req ports.NotificationRequest) (*ports.NotificationResult, error) {
	result, err := s.notify(ctx, req)
	if result == nil {
		result = &ports.NotificationResult{}
	}
	result.Outcome = classifyOutcome(err)
	result.GatewayResult = string(req.OperationResult)
	result.GatewayErrorCode = req.ErrorCode

	logEvent := s.log.Info()
	if err != nil {
		logEvent = s.log.Warn().Err(err)
	}
	logEvent.
		Str("wallet_id", req.WalletID.String()).
		Str("order_id", req.OrderID).
		Str("operation_id", req.OperationID).
		Str("outcome", string(result.Outcome)).
		Msg("gateway notification handled")

	return result, err
}

func (s *NotificationServiceImpl) notify(ctx context.Context, req ports.NotificationRequest) (*ports.NotificationResult, error) {
	session, err := s.sessions.FindByOrderID(ctx, req.OrderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find session: %w", err))
	}
	if session == nil {
		return nil, apperror.ErrSessionNotFound(req.OrderID)
	}
	if subtle.ConstantTimeCompare([]byte(session.SecurityToken), []byte(req.SecurityToken)) != 1 {
		return nil, apperror.ErrSecurityTokenMismatch()
	}

	wallet, err := s.walletRepo.FindByID(ctx, req.WalletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound(req.WalletID)
	}
	if session.WalletID != wallet.ID {
		return nil, apperror.ErrSessionWalletMismatch(session.SessionID, wallet.ID)
	}

	result := &ports.NotificationResult{Wallet: wallet}
	prior := wallet.Status
	result.PriorStatus = &prior
	if wallet.Details != nil {
		dt := wallet.Details.DetailsType()
		result.DetailsType = &dt
	}

	if req.OperationResult == domain.OperationResultExecuted {
		return s.applySuccess(ctx, req, wallet, result)
	}
	return s.applyFailure(ctx, req, wallet, result)
}

// applySuccess handles an EXECUTED outcome: enrich the stored details with the
// notification payload, guard against onboarding the same instrument twice for
// the user, then transition to VALIDATED.
func (s *NotificationServiceImpl) applySuccess(ctx context.Context, req ports.NotificationRequest, wallet *domain.Wallet, result *ports.NotificationResult) (*ports.NotificationResult, error) {
	next, err := enrichedDetails(wallet.Details, req.Details)
	if err != nil {
		return result, err
	}

	// A repeated delivery of the notification that already validated this
	// wallet is acknowledged without touching state or the event log.
	if wallet.IsRedelivery(next) {
		result.NextStatus = &wallet.Status
		return result, nil
	}

	if gatewayID := domain.GatewayInstrumentID(next); gatewayID != "" {
		other, err := s.walletRepo.FindByUserIDAndGatewayInstrumentID(ctx, wallet.UserID, gatewayID)
		if err != nil {
			return result, apperror.InternalError(fmt.Errorf("find wallet by instrument: %w", err))
		}
		if other != nil && other.ID != wallet.ID && other.Status == domain.WalletStatusValidated {
			return result, apperror.ErrWalletAlreadyOnboarded(other.ID)
		}
	}

	if err := wallet.ValidateTransition(domain.WalletStatusValidated, next); err != nil {
		return result, s.mapTransitionError(err)
	}

	now := s.clock.Now()
	opResult := req.OperationResult
	wallet.Status = domain.WalletStatusValidated
	wallet.Details = next
	wallet.ValidationOperationResult = &opResult
	wallet.ValidationErrorCode = nil
	wallet.UpdateDate = now

	saved, err := s.walletRepo.Update(ctx, wallet)
	if err != nil {
		return result, apperror.InternalError(fmt.Errorf("update wallet: %w", err))
	}

	logged := audit.New(saved, domain.Event(domain.WalletDetailsAddedEvent{
		EventMeta: domain.NewEventMeta(now),
		WalletID:  saved.ID.String(),
	}))
	if _, sinkErr := logged.Persist(ctx, s.eventSink); sinkErr != nil {
		s.warnOnSinkFailure(sinkErr, saved.ID)
	}

	result.Wallet = saved
	result.NextStatus = &saved.Status
	dt := next.DetailsType()
	result.DetailsType = &dt
	return result, nil
}

// applyFailure handles every non-EXECUTED outcome by moving the wallet to
// ERROR with the gateway's error code recorded.
func (s *NotificationServiceImpl) applyFailure(ctx context.Context, req ports.NotificationRequest, wallet *domain.Wallet, result *ports.NotificationResult) (*ports.NotificationResult, error) {
	if err := wallet.ValidateTransition(domain.WalletStatusError, nil); err != nil {
		return result, s.mapTransitionError(err)
	}

	now := s.clock.Now()
	opResult := req.OperationResult
	wallet.Status = domain.WalletStatusError
	wallet.ValidationOperationResult = &opResult
	wallet.ValidationErrorCode = req.ErrorCode
	wallet.UpdateDate = now

	saved, err := s.walletRepo.Update(ctx, wallet)
	if err != nil {
		return result, apperror.InternalError(fmt.Errorf("update wallet: %w", err))
	}

	logged := audit.New(saved, domain.Event(domain.WalletNotificationEvent{
		EventMeta:          domain.NewEventMeta(now),
		WalletID:           saved.ID.String(),
		OperationID:        req.OperationID,
		OperationResult:    string(req.OperationResult),
		OperationTimestamp: req.OperationTimestamp.Format(time.RFC3339),
		ErrorCode:          req.ErrorCode,
	}))
	if _, sinkErr := logged.Persist(ctx, s.eventSink); sinkErr != nil {
		s.warnOnSinkFailure(sinkErr, saved.ID)
	}

	result.Wallet = saved
	result.NextStatus = &saved.Status
	return result, nil
}

// enrichedDetails merges the notification payload into the details captured at
// onboarding. A successful card notification must reference details captured
// earlier in the flow; their absence is a malformed request.
func enrichedDetails(stored domain.Details, incoming ports.NotificationDetails) (domain.Details, error) {
	switch d := incoming.(type) {
	case ports.NotificationCardDetails:
		card, ok := stored.(domain.CardDetails)
		if !ok {
			return nil, apperror.Validation("card notification without stored card details")
		}
		return card.WithGatewayInstrumentID(d.PaymentInstrumentGatewayID), nil
	case ports.NotificationPayPalDetails:
		paypal, ok := stored.(domain.PayPalDetails)
		if !ok {
			if stored != nil {
				return nil, apperror.Validation("paypal notification against non-paypal wallet details")
			}
			paypal = domain.PayPalDetails{}
		}
		return paypal.WithMaskedEmail(d.MaskedEmail), nil
	case nil:
		if stored == nil {
			return nil, apperror.Validation("notification without payment instrument details")
		}
		return stored, nil
	default:
		return nil, apperror.Validation("unsupported notification details")
	}
}

func (s *NotificationServiceImpl) mapTransitionError(err error) error {
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

func (s *NotificationServiceImpl) warnOnSinkFailure(err error, walletID uuid.UUID) {
	var sinkErr *audit.SinkError
	if errors.As(err, &sinkErr) {
		s.log.Warn().
			Err(sinkErr).
			Str("wallet_id", walletID.String()).
			Msg("event log write failed after committed state change")
	}
}

// classifyOutcome maps the error surface onto the fixed outcome vocabulary.
func classifyOutcome(err error) ports.NotificationOutcome {
	if err == nil {
		return ports.NotificationOutcomeOK
	}
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		return ports.NotificationOutcomeProcessingError
	}
	switch appErr.Code {
	case "WLT_002":
		return ports.NotificationOutcomeSessionNotFound
	case "WLT_001", "WLT_103":
		// A session pointing at a different wallet is reported as the wallet
		// not being found, not as a status problem.
		return ports.NotificationOutcomeWalletNotFound
	case "SEC_001":
		return ports.NotificationOutcomeSecurityTokenMismatch
	case "WLT_101", "WLT_102":
		return ports.NotificationOutcomeWrongWalletStatus
	case "REQ_001":
		return ports.NotificationOutcomeBadRequest
	default:
		return ports.NotificationOutcomeProcessingError
	}
}
