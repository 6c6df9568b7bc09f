package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrDuplicateKey is the storage-neutral uniqueness-violation signal.
// Repository implementations wrap their driver's duplicate-key error with it
// so callers can recover races with errors.Is.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrInvalidDetails marks wallet detail values that failed format validation
// at construction time.
var ErrInvalidDetails = errors.New("invalid wallet details")

// ConflictStatusError rejects a status change, naming the status it was
// rejected from.
type ConflictStatusError struct {
	WalletID  uuid.UUID
	Current   WalletStatus
	Requested WalletStatus
	Allowed   []WalletStatus
}

func (e *ConflictStatusError) Error() string {
	if len(e.Allowed) > 0 {
		return fmt.Sprintf("wallet %s in status %s, expected one of %v", e.WalletID, e.Current, e.Allowed)
	}
	return fmt.Sprintf("wallet %s: illegal transition %s -> %s", e.WalletID, e.Current, e.Requested)
}

// DetailsMismatchError rejects details whose instrument family does not match
// the wallet's stored details.
type DetailsMismatchError struct {
	WalletID uuid.UUID
	Stored   DetailsType
	Incoming DetailsType
}

func (e *DetailsMismatchError) Error() string {
	return fmt.Sprintf("wallet %s: incoming %s details incompatible with stored %s details",
		e.WalletID, e.Incoming, e.Stored)
}
