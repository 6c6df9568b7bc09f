package handler

import (
	"wallet-lifecycle-service/internal/adapter/http/dto"
	"wallet-lifecycle-service/internal/core/domain"
	"wallet-lifecycle-service/internal/core/ports"
	"wallet-lifecycle-service/pkg/apperror"
	"wallet-lifecycle-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MigrationHandler handles the legacy payment-manager migration endpoints.
type MigrationHandler struct {
	migrationSvc ports.MigrationService
}

// NewMigrationHandler creates a new migration handler.
func NewMigrationHandler(migrationSvc ports.MigrationService) *MigrationHandler {
	return &MigrationHandler{migrationSvc: migrationSvc}
}

// CreateWallet handles POST /migrations/wallets. Idempotent: repeating the
// same legacy id returns the same wallet.
func (h *MigrationHandler) CreateWallet(c *gin.Context) {
	var req dto.MigrateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		response.Error(c, apperror.Validation("malformed user id"))
		return
	}

	wallet, err := h.migrationSvc.CreateWalletByLegacyID(c.Request.Context(), req.LegacyWalletID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	contractID := ""
	if wallet.ContractID != nil {
		contractID = *wallet.ContractID
	}
	response.OK(c, dto.MigrateWalletResponse{
		WalletID:   wallet.ID.String(),
		ContractID: contractID,
		Status:     string(wallet.Status),
	})
}

// UpdateDetails handles PUT /migrations/wallets/details.
func (h *MigrationHandler) UpdateDetails(c *gin.Context) {
	var req dto.MigrationCardDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	details, err := domain.NewCardDetails(req.Bin, req.LastFourDigits, req.ExpiryDate, req.Brand, "")
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	wallet, err := h.migrationSvc.UpdateCardDetails(c.Request.Context(), req.ContractID, details)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromWallet(wallet))
}

// Delete handles POST /migrations/wallets/delete.
func (h *MigrationHandler) Delete(c *gin.Context) {
	var req dto.MigrationDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	wallet, err := h.migrationSvc.DeleteByContractID(c.Request.Context(), req.ContractID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromWallet(wallet))
}
