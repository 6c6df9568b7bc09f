// Package dto defines the request and response bodies of the HTTP API.
package dto

import (
	"time"

	"wallet-lifecycle-service/internal/core/domain"
)

// CreateWalletRequest creates a wallet for the authenticated user.
type CreateWalletRequest struct {
	PaymentMethodID   string   `json:"payment_method_id" binding:"required,uuid"`
	Applications      []string `json:"applications" binding:"required,min=1"`
	OnboardingChannel string   `json:"onboarding_channel" binding:"required"`
}

// CreateSessionRequest opens an onboarding session for a wallet.
type CreateSessionRequest struct {
	PspID string `json:"psp_id" binding:"required"`
}

// SessionResponse is the opened session handed back to the onboarding client.
type SessionResponse struct {
	OrderID       string `json:"order_id"`
	SecurityToken string `json:"security_token"`
	WalletID      string `json:"wallet_id"`
}

// UpdateApplicationsRequest sets per-application enablement labels.
type UpdateApplicationsRequest struct {
	Applications []ApplicationUpdate `json:"applications" binding:"required,min=1,dive"`
}

// ApplicationUpdate is one requested enablement change.
type ApplicationUpdate struct {
	ID     string `json:"id" binding:"required"`
	Status string `json:"status" binding:"required,oneof=ENABLED INCOMING DISABLED"`
}

// ApplicationsUpdateResponse partitions the requested changes.
type ApplicationsUpdateResponse struct {
	Updated map[string]string `json:"updated"`
	Failed  map[string]string `json:"failed,omitempty"`
}

// PatchWalletRequest forces a wallet to ERROR with a reason.
type PatchWalletRequest struct {
	Status string  `json:"status" binding:"required,oneof=ERROR"`
	Reason *string `json:"reason,omitempty"`
}

// NotifyRequest is the gateway's outcome callback for an onboarding order.
type NotifyRequest struct {
	OperationID        string               `json:"operation_id" binding:"required"`
	OperationResult    string               `json:"operation_result" binding:"required,oneof=EXECUTED DECLINED CANCELED FAILED PENDING"`
	OperationTimestamp time.Time            `json:"operation_timestamp" binding:"required"`
	ErrorCode          *string              `json:"error_code,omitempty"`
	Card               *NotifyCardDetails   `json:"card,omitempty"`
	PayPal             *NotifyPayPalDetails `json:"paypal,omitempty"`
}

// NotifyCardDetails carries the card fields of a notification.
type NotifyCardDetails struct {
	PaymentInstrumentGatewayID string `json:"payment_instrument_gateway_id" binding:"required"`
}

// NotifyPayPalDetails carries the PayPal fields of a notification.
type NotifyPayPalDetails struct {
	MaskedEmail string `json:"masked_email" binding:"required"`
}

// MigrateWalletRequest creates a wallet from a legacy payment-manager id.
type MigrateWalletRequest struct {
	LegacyWalletID string `json:"legacy_wallet_id" binding:"required"`
	UserID         string `json:"user_id" binding:"required,uuid"`
}

// MigrateWalletResponse returns the migrated wallet and its contract id.
type MigrateWalletResponse struct {
	WalletID   string `json:"wallet_id"`
	ContractID string `json:"contract_id"`
	Status     string `json:"status"`
}

// MigrationCardDetailsRequest attaches migrated card details by contract id.
type MigrationCardDetailsRequest struct {
	ContractID     string `json:"contract_id" binding:"required"`
	Bin            string `json:"bin" binding:"required"`
	LastFourDigits string `json:"last_four_digits" binding:"required"`
	ExpiryDate     string `json:"expiry_date" binding:"required"`
	Brand          string `json:"brand" binding:"required"`
}

// MigrationDeleteRequest deletes a migrated wallet by contract id.
type MigrationDeleteRequest struct {
	ContractID string `json:"contract_id" binding:"required"`
}

// WalletResponse is the external shape of a wallet.
type WalletResponse struct {
	ID                        string                      `json:"id"`
	Status                    string                      `json:"status"`
	PaymentMethodID           string                      `json:"payment_method_id"`
	Applications              []WalletApplicationResponse `json:"applications"`
	Clients                   map[string]ClientResponse   `json:"clients"`
	ValidationOperationResult *string                     `json:"validation_operation_result,omitempty"`
	ValidationErrorCode       *string                     `json:"validation_error_code,omitempty"`
	ErrorReason               *string                     `json:"error_reason,omitempty"`
	Details                   *WalletDetailsResponse      `json:"details,omitempty"`
	CreationDate              time.Time                   `json:"creation_date"`
	UpdateDate                time.Time                   `json:"update_date"`
}

// WalletApplicationResponse is one application entry on a wallet.
type WalletApplicationResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ClientResponse is one client entry on a wallet.
type ClientResponse struct {
	Status    string     `json:"status"`
	LastUsage *time.Time `json:"last_usage,omitempty"`
}

// WalletDetailsResponse exposes the non-sensitive slice of the instrument
// details. Full PANs never enter the system; the stored bin and last four are
// already masked.
type WalletDetailsResponse struct {
	Type           string  `json:"type"`
	Bin            string  `json:"bin,omitempty"`
	LastFourDigits string  `json:"last_four_digits,omitempty"`
	ExpiryDate     string  `json:"expiry_date,omitempty"`
	Brand          string  `json:"brand,omitempty"`
	MaskedEmail    *string `json:"masked_email,omitempty"`
	PspID          string  `json:"psp_id,omitempty"`
}

// FromWallet converts a domain wallet to its external shape.
func FromWallet(w *domain.Wallet) WalletResponse {
	resp := WalletResponse{
		ID:              w.ID.String(),
		Status:          string(w.Status),
		PaymentMethodID: w.PaymentMethodID.String(),
		Applications:    make([]WalletApplicationResponse, 0, len(w.Applications)),
		Clients:         make(map[string]ClientResponse, len(w.Clients)),
		ErrorReason:     w.ErrorReason,
		CreationDate:    w.CreationDate,
		UpdateDate:      w.UpdateDate,
	}
	if w.ValidationOperationResult != nil {
		s := string(*w.ValidationOperationResult)
		resp.ValidationOperationResult = &s
	}
	resp.ValidationErrorCode = w.ValidationErrorCode
	for _, app := range w.Applications {
		resp.Applications = append(resp.Applications, WalletApplicationResponse{
			ID:     app.ID,
			Status: string(app.Status),
		})
	}
	for name, client := range w.Clients {
		resp.Clients[name] = ClientResponse{
			Status:    string(client.Status),
			LastUsage: client.LastUsage,
		}
	}
	switch d := w.Details.(type) {
	case domain.CardDetails:
		resp.Details = &WalletDetailsResponse{
			Type:           string(domain.DetailsTypeCards),
			Bin:            d.Bin,
			LastFourDigits: d.LastFourDigits,
			ExpiryDate:     d.ExpiryDate,
			Brand:          d.Brand,
		}
	case domain.PayPalDetails:
		resp.Details = &WalletDetailsResponse{
			Type:        string(domain.DetailsTypePayPal),
			MaskedEmail: d.MaskedEmail,
			PspID:       d.PspID,
		}
	}
	return resp
}
