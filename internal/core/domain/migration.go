package domain

import (
	"time"

	"github.com/google/uuid"
)

// LegacyAssociation maps a legacy payment-manager wallet identifier to the
// wallet and contract it was migrated to. One legacy id maps to at most one
// association; the record is immutable once created.
type LegacyAssociation struct {
	LegacyWalletID string    `json:"legacy_wallet_id"`
	WalletID       uuid.UUID `json:"wallet_id"`
	ContractID     string    `json:"contract_id"`
	CreationDate   time.Time `json:"creation_date"`
}
