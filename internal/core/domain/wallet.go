package domain

import (
	"time"

	"github.com/google/uuid"
)

// WalletStatus represents the lifecycle state of a wallet.
type WalletStatus string

const (
	WalletStatusInitialized WalletStatus = "INITIALIZED"
	WalletStatusCreated     WalletStatus = "CREATED"
	WalletStatusValidated   WalletStatus = "VALIDATED"
	WalletStatusError       WalletStatus = "ERROR"
	WalletStatusDeleted     WalletStatus = "DELETED"
)

// WalletStatuses lists every status, in lifecycle order.
var WalletStatuses = []WalletStatus{
	WalletStatusInitialized,
	WalletStatusCreated,
	WalletStatusValidated,
	WalletStatusError,
	WalletStatusDeleted,
}

// IsTerminal returns true if no transition may leave this status.
func (s WalletStatus) IsTerminal() bool {
	return s == WalletStatusError || s == WalletStatusDeleted
}

// legalTransitions is the full transition table. A missing entry means the
// transition is rejected. VALIDATED -> VALIDATED is listed because it is
// structurally legal; the same-details condition is enforced by
// ValidateTransition.
var legalTransitions = map[WalletStatus]map[WalletStatus]bool{
	WalletStatusInitialized: {
		WalletStatusCreated:   true,
		WalletStatusValidated: true,
		WalletStatusError:     true,
		WalletStatusDeleted:   true,
	},
	WalletStatusCreated: {
		WalletStatusValidated: true,
		WalletStatusError:     true,
		WalletStatusDeleted:   true,
	},
	WalletStatusValidated: {
		WalletStatusValidated: true,
		WalletStatusError:     true,
		WalletStatusDeleted:   true,
	},
	WalletStatusError:   {},
	WalletStatusDeleted: {},
}

// CanTransition answers whether from -> to appears in the transition table.
// It does not evaluate the VALIDATED re-delivery details condition.
func CanTransition(from, to WalletStatus) bool {
	return legalTransitions[from][to]
}

// OperationResult is the outcome reported by the payment gateway for an
// onboarding operation.
type OperationResult string

const (
	OperationResultExecuted OperationResult = "EXECUTED"
	OperationResultDeclined OperationResult = "DECLINED"
	OperationResultCanceled OperationResult = "CANCELED"
	OperationResultFailed   OperationResult = "FAILED"
	OperationResultPending  OperationResult = "PENDING"
)

// ClientStatus is the enablement state of a wallet client entry.
type ClientStatus string

const (
	ClientStatusEnabled  ClientStatus = "ENABLED"
	ClientStatusDisabled ClientStatus = "DISABLED"
)

// Client is a channel through which a wallet may be used.
type Client struct {
	Status    ClientStatus `json:"status"`
	LastUsage *time.Time   `json:"last_usage,omitempty"`
}

// WellKnownClients are the client entries every wallet carries.
var WellKnownClients = []string{"IO"}

// Wallet binds a user, a payment method and a gateway-issued contract.
type Wallet struct {
	ID                        uuid.UUID           `json:"id"`
	UserID                    uuid.UUID           `json:"user_id"`
	Status                    WalletStatus        `json:"status"`
	PaymentMethodID           uuid.UUID           `json:"payment_method_id"`
	ContractID                *string             `json:"contract_id,omitempty"`
	Applications              []WalletApplication `json:"applications"`
	Clients                   map[string]Client   `json:"clients"`
	ValidationOperationResult *OperationResult    `json:"validation_operation_result,omitempty"`
	ValidationErrorCode       *string             `json:"validation_error_code,omitempty"`
	ErrorReason               *string             `json:"error_reason,omitempty"`
	Details                   Details             `json:"-"`
	Version                   int                 `json:"version"`
	CreationDate              time.Time           `json:"creation_date"`
	UpdateDate                time.Time           `json:"update_date"`
	OnboardingChannel         string              `json:"onboarding_channel"`
}

// ExpectInStatus returns a ConflictStatusError unless the wallet is in one of
// the allowed statuses.
func (w *Wallet) ExpectInStatus(allowed ...WalletStatus) error {
	for _, s := range allowed {
		if w.Status == s {
			return nil
		}
	}
	return &ConflictStatusError{WalletID: w.ID, Current: w.Status, Allowed: allowed}
}

// ValidateTransition checks the requested status change against the transition
// table and, for VALIDATED, against the incoming details: the details family
// must match the stored one, and a VALIDATED -> VALIDATED re-delivery is legal
// only when the incoming details equal the stored details exactly.
func (w *Wallet) ValidateTransition(to WalletStatus, incoming Details) error {
	if !CanTransition(w.Status, to) {
		return &ConflictStatusError{WalletID: w.ID, Current: w.Status, Requested: to}
	}
	if to != WalletStatusValidated {
		return nil
	}
	if w.Details != nil && incoming != nil && w.Details.DetailsType() != incoming.DetailsType() {
		return &DetailsMismatchError{WalletID: w.ID, Stored: w.Details.DetailsType(), Incoming: incoming.DetailsType()}
	}
	if w.Status == WalletStatusValidated {
		if incoming == nil || w.Details == nil || !w.Details.Equal(incoming) {
			return &ConflictStatusError{WalletID: w.ID, Current: w.Status, Requested: to}
		}
	}
	return nil
}

// IsRedelivery reports whether applying incoming details to a VALIDATED wallet
// is a re-delivery of the notification that validated it.
func (w *Wallet) IsRedelivery(incoming Details) bool {
	return w.Status == WalletStatusValidated &&
		w.Details != nil && incoming != nil && w.Details.Equal(incoming)
}

// ToError moves a transient wallet to ERROR with the given reason. Terminal
// wallets are returned unchanged.
func (w Wallet) ToError(reason *string) Wallet {
	if w.Status.IsTerminal() {
		return w
	}
	w.Status = WalletStatusError
	w.ErrorReason = reason
	return w
}
