package domain

import "time"

// ApplicationStatus is the enablement label of an application, both globally
// and per wallet.
type ApplicationStatus string

const (
	ApplicationStatusEnabled  ApplicationStatus = "ENABLED"
	ApplicationStatusIncoming ApplicationStatus = "INCOMING"
	ApplicationStatusDisabled ApplicationStatus = "DISABLED"
)

// ApplicationStatuses lists every enablement label.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusEnabled,
	ApplicationStatusIncoming,
	ApplicationStatusDisabled,
}

// statusChangeTable is the fixed 3x3 truth table governing enablement changes,
// keyed by [requested][reference]:
//
//	              reference
//	               E  I  D
//	requested  E  OK NO NO
//	           I  NO OK NO
//	           D  OK OK OK
//
// A table lookup, deliberately not derived from any ordering of the labels.
var statusChangeTable = map[ApplicationStatus]map[ApplicationStatus]bool{
	ApplicationStatusEnabled: {
		ApplicationStatusEnabled:  true,
		ApplicationStatusIncoming: false,
		ApplicationStatusDisabled: false,
	},
	ApplicationStatusIncoming: {
		ApplicationStatusEnabled:  false,
		ApplicationStatusIncoming: true,
		ApplicationStatusDisabled: false,
	},
	ApplicationStatusDisabled: {
		ApplicationStatusEnabled:  true,
		ApplicationStatusIncoming: true,
		ApplicationStatusDisabled: true,
	},
}

// CanChangeStatus answers whether the requested enablement label is acceptable
// given the reference (global) label.
func CanChangeStatus(requested, reference ApplicationStatus) bool {
	return statusChangeTable[requested][reference]
}

// Application is a globally registered downstream application.
type Application struct {
	ID           string            `json:"id"`
	Description  string            `json:"description"`
	Status       ApplicationStatus `json:"status"`
	CreationDate time.Time         `json:"creation_date"`
	UpdateDate   time.Time         `json:"update_date"`
}

// Metadata keys attached to wallet application entries.
const (
	MetadataOnboardByMigration = "ONBOARD_BY_MIGRATION"
)

// WalletApplication is one application's enablement entry on a wallet.
type WalletApplication struct {
	ID           string            `json:"id"`
	Status       ApplicationStatus `json:"status"`
	CreationDate time.Time         `json:"creation_date"`
	UpdateDate   time.Time         `json:"update_date"`
	Metadata     map[string]string `json:"metadata"`
}
