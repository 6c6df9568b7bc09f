package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType tags each domain event kind.
type EventType string

const (
	EventTypeWalletAdded         EventType = "WALLET_ADDED"
	EventTypeWalletMigratedAdded EventType = "WALLET_MIGRATED_ADDED"
	EventTypeWalletDeleted       EventType = "WALLET_DELETED"
	EventTypeWalletDetailsAdded  EventType = "WALLET_DETAILS_ADDED"
	EventTypeWalletPatch         EventType = "WALLET_PATCH"
	EventTypeSessionWalletAdded  EventType = "SESSION_WALLET_ADDED"
	EventTypeWalletAppsUpdated   EventType = "WALLET_APPLICATIONS_UPDATED"
	EventTypeWalletNotification  EventType = "WALLET_NOTIFICATION"
)

// Event is an immutable, timestamped, uniquely identified domain fact.
// Events are append-only: created alongside a state mutation and never
// modified or deleted afterwards. The unexported method keeps the set closed.
type Event interface {
	EventID() string
	OccurredAt() time.Time
	Type() EventType
	sealedEvent()
}

// EventMeta carries the identity shared by every event variant.
type EventMeta struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEventMeta builds event identity from an injected instant. The id is a
// fresh UUID; collisions are not a concern at audit-log volume.
func NewEventMeta(at time.Time) EventMeta {
	return EventMeta{ID: uuid.NewString(), Timestamp: at}
}

func (m EventMeta) EventID() string       { return m.ID }
func (m EventMeta) OccurredAt() time.Time { return m.Timestamp }
func (m EventMeta) sealedEvent()          {}

// WalletAddedEvent records the creation of a wallet.
type WalletAddedEvent struct {
	EventMeta
	WalletID string `json:"wallet_id"`
}

func (WalletAddedEvent) Type() EventType { return EventTypeWalletAdded }

// WalletMigratedAddedEvent records a wallet created through legacy migration.
type WalletMigratedAddedEvent struct {
	EventMeta
	WalletID string `json:"wallet_id"`
}

func (WalletMigratedAddedEvent) Type() EventType { return EventTypeWalletMigratedAdded }

// WalletDeletedEvent records a wallet reaching DELETED.
type WalletDeletedEvent struct {
	EventMeta
	WalletID string `json:"wallet_id"`
}

func (WalletDeletedEvent) Type() EventType { return EventTypeWalletDeleted }

// WalletDetailsAddedEvent records instrument details being attached to a
// wallet (the VALIDATED transition).
type WalletDetailsAddedEvent struct {
	EventMeta
	WalletID string `json:"wallet_id"`
}

func (WalletDetailsAddedEvent) Type() EventType { return EventTypeWalletDetailsAdded }

// WalletPatchEvent records an out-of-band status patch (e.g. to ERROR).
type WalletPatchEvent struct {
	EventMeta
	WalletID string `json:"wallet_id"`
}

func (WalletPatchEvent) Type() EventType { return EventTypeWalletPatch }

// SessionWalletAddedEvent records an onboarding session being opened for a
// wallet.
type SessionWalletAddedEvent struct {
	EventMeta
	WalletID string `json:"wallet_id"`
	OrderID  string `json:"order_id"`
}

func (SessionWalletAddedEvent) Type() EventType { return EventTypeSessionWalletAdded }

// WalletApplicationsUpdatedEvent records an applications enablement change.
type WalletApplicationsUpdatedEvent struct {
	EventMeta
	WalletID string   `json:"wallet_id"`
	Updated  []string `json:"updated"`
}

func (WalletApplicationsUpdatedEvent) Type() EventType { return EventTypeWalletAppsUpdated }

// WalletNotificationEvent records the gateway notification that moved a wallet
// out of its onboarding flow without validating it.
type WalletNotificationEvent struct {
	EventMeta
	WalletID           string  `json:"wallet_id"`
	OperationID        string  `json:"operation_id"`
	OperationResult    string  `json:"operation_result"`
	OperationTimestamp string  `json:"operation_timestamp"`
	ErrorCode          *string `json:"error_code,omitempty"`
}

func (WalletNotificationEvent) Type() EventType { return EventTypeWalletNotification }
