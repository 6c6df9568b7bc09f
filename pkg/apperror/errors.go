package apperror

import (
	"fmt"
	"net/http"
	"strings"

	"wallet-lifecycle-service/internal/core/domain"

	"github.com/google/uuid"
)

// AppError is a structured error that maps to HTTP responses. Every domain
// failure maps to exactly one (status class, code, description) triple.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Not found (404-class) ----

func ErrWalletNotFound(walletID uuid.UUID) *AppError {
	return New("WLT_001", fmt.Sprintf("Wallet %s not found", walletID), http.StatusNotFound)
}

func ErrSessionNotFound(orderID string) *AppError {
	return New("WLT_002", fmt.Sprintf("Session for order %s not found", orderID), http.StatusNotFound)
}

func ErrContractIDNotFound(contractID string) *AppError {
	return New("WLT_003", fmt.Sprintf("No wallet associated to contract %s", contractID), http.StatusNotFound)
}

func ErrApplicationNotFound(applicationID string) *AppError {
	return New("WLT_004", fmt.Sprintf("Application %s not found", applicationID), http.StatusNotFound)
}

// ---- Conflicts (409-class) ----

// ErrConflictStatus rejects a transition, naming the status it was rejected
// from.
func ErrConflictStatus(walletID uuid.UUID, current domain.WalletStatus) *AppError {
	return New("WLT_101",
		fmt.Sprintf("Wallet %s in conflicting status %s", walletID, current),
		http.StatusConflict)
}

func ErrWalletAlreadyOnboarded(walletID uuid.UUID) *AppError {
	return New("WLT_102",
		fmt.Sprintf("Payment instrument already onboarded for the user of wallet %s", walletID),
		http.StatusConflict)
}

func ErrSessionWalletMismatch(sessionID string, walletID uuid.UUID) *AppError {
	return New("WLT_103",
		fmt.Sprintf("Session %s does not belong to wallet %s", sessionID, walletID),
		http.StatusConflict)
}

func ErrIllegalStateTransition(walletID uuid.UUID, current domain.WalletStatus) *AppError {
	return New("MIG_001",
		fmt.Sprintf("Illegal state transition for wallet %s in status %s", walletID, current),
		http.StatusConflict)
}

func ErrApplicationStatusConflict(applicationID string, requested, reference domain.ApplicationStatus) *AppError {
	return New("WLT_104",
		fmt.Sprintf("Application %s cannot change to %s while globally %s", applicationID, requested, reference),
		http.StatusConflict)
}

// ---- Unauthorized (401-class) ----

func ErrSecurityTokenMismatch() *AppError {
	return New("SEC_001", "Security token does not match the stored session token", http.StatusUnauthorized)
}

// ---- Bad request (400-class) ----

// Validation returns a 400-class error for malformed input.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}

// ---- Upstream (502-class) ----

// ErrBadGateway marks a payment-provider call failure, distinct from
// configuration errors which fail at startup.
func ErrBadGateway(err error) *AppError {
	return Wrap("GTW_001", "Payment gateway error", http.StatusBadGateway, err)
}

// ErrMissingPspAPIKey reports a lookup for a PSP absent from the configured
// key map. The message names configured ids only, never key values.
func ErrMissingPspAPIKey(pspID string, configured []string) *AppError {
	return New("GTW_002",
		fmt.Sprintf("No API key configured for PSP %s, configured PSPs: [%s]", pspID, strings.Join(configured, ", ")),
		http.StatusBadGateway)
}

// ---- System (500-class) ----

func ErrUniqueIDGeneration() *AppError {
	return New("SYS_001", "Unable to generate a unique identifier", http.StatusInternalServerError)
}

// InternalError wraps an internal error.
func InternalError(err error) *AppError {
	return Wrap("SYS_002", "Internal server error", http.StatusInternalServerError, err)
}
