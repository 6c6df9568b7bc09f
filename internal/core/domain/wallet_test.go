package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition_FullTable(t *testing.T) {
	allowed := map[[2]WalletStatus]bool{
		{WalletStatusInitialized, WalletStatusCreated}:   true,
		{WalletStatusInitialized, WalletStatusValidated}: true,
		{WalletStatusInitialized, WalletStatusError}:     true,
		{WalletStatusInitialized, WalletStatusDeleted}:   true,
		{WalletStatusCreated, WalletStatusValidated}:     true,
		{WalletStatusCreated, WalletStatusError}:         true,
		{WalletStatusCreated, WalletStatusDeleted}:       true,
		{WalletStatusValidated, WalletStatusValidated}:   true,
		{WalletStatusValidated, WalletStatusError}:       true,
		{WalletStatusValidated, WalletStatusDeleted}:     true,
	}

	for _, from := range WalletStatuses {
		for _, to := range WalletStatuses {
			got := CanTransition(from, to)
			want := allowed[[2]WalletStatus{from, to}]
			assert.Equal(t, want, got, "%s -> %s", from, to)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, WalletStatusInitialized.IsTerminal())
	assert.False(t, WalletStatusCreated.IsTerminal())
	assert.False(t, WalletStatusValidated.IsTerminal())
	assert.True(t, WalletStatusError.IsTerminal())
	assert.True(t, WalletStatusDeleted.IsTerminal())
}

func TestExpectInStatus(t *testing.T) {
	w := &Wallet{ID: uuid.New(), Status: WalletStatusCreated}

	assert.NoError(t, w.ExpectInStatus(WalletStatusInitialized, WalletStatusCreated))

	err := w.ExpectInStatus(WalletStatusValidated)
	require.Error(t, err)
	var conflict *ConflictStatusError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, w.ID, conflict.WalletID)
	assert.Equal(t, WalletStatusCreated, conflict.Current)
}

func mustCardDetails(t *testing.T, bin, lastFour, expiry, brand, gatewayID string) CardDetails {
	t.Helper()
	d, err := NewCardDetails(bin, lastFour, expiry, brand, gatewayID)
	require.NoError(t, err)
	return d
}

func TestValidateTransition_TerminalRejected(t *testing.T) {
	for _, from := range []WalletStatus{WalletStatusError, WalletStatusDeleted} {
		w := &Wallet{ID: uuid.New(), Status: from}
		for _, to := range WalletStatuses {
			err := w.ValidateTransition(to, nil)
			assert.Error(t, err, "%s -> %s must be rejected", from, to)
		}
	}
}

func TestValidateTransition_DetailsFamilyMismatch(t *testing.T) {
	card := mustCardDetails(t, "424242", "5555", "203012", "VISA", "gw-1")
	paypal, err := NewPayPalDetails(nil, "PSP_A")
	require.NoError(t, err)

	w := &Wallet{ID: uuid.New(), Status: WalletStatusCreated, Details: card}

	verr := w.ValidateTransition(WalletStatusValidated, paypal)
	require.Error(t, verr)
	var mismatch *DetailsMismatchError
	require.True(t, errors.As(verr, &mismatch))
	assert.Equal(t, DetailsTypeCards, mismatch.Stored)
	assert.Equal(t, DetailsTypePayPal, mismatch.Incoming)
}

func TestValidateTransition_RevalidationRequiresEqualDetails(t *testing.T) {
	card := mustCardDetails(t, "424242", "5555", "203012", "VISA", "gw-1")
	w := &Wallet{ID: uuid.New(), Status: WalletStatusValidated, Details: card}

	// Identical details: legal re-delivery.
	assert.NoError(t, w.ValidateTransition(WalletStatusValidated, card))

	// Differing details: rejected.
	other := mustCardDetails(t, "424242", "5555", "203012", "VISA", "gw-2")
	assert.Error(t, w.ValidateTransition(WalletStatusValidated, other))

	// Missing details: rejected.
	assert.Error(t, w.ValidateTransition(WalletStatusValidated, nil))
}

func TestIsRedelivery(t *testing.T) {
	card := mustCardDetails(t, "424242", "5555", "203012", "VISA", "gw-1")
	other := mustCardDetails(t, "424242", "5555", "203012", "VISA", "gw-2")

	w := &Wallet{Status: WalletStatusValidated, Details: card}
	assert.True(t, w.IsRedelivery(card))
	assert.False(t, w.IsRedelivery(other))
	assert.False(t, w.IsRedelivery(nil))

	w.Status = WalletStatusCreated
	assert.False(t, w.IsRedelivery(card))
}

func TestToError(t *testing.T) {
	reason := "gateway timeout"

	w := Wallet{Status: WalletStatusCreated}
	errored := w.ToError(&reason)
	assert.Equal(t, WalletStatusError, errored.Status)
	require.NotNil(t, errored.ErrorReason)
	assert.Equal(t, reason, *errored.ErrorReason)

	// Terminal wallets pass through unchanged.
	deleted := Wallet{Status: WalletStatusDeleted}
	assert.Equal(t, WalletStatusDeleted, deleted.ToError(&reason).Status)
	assert.Nil(t, deleted.ToError(&reason).ErrorReason)
}
