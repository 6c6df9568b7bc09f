package handler

import (
	"wallet-lifecycle-service/internal/adapter/http/dto"
	"wallet-lifecycle-service/internal/adapter/http/middleware"
	"wallet-lifecycle-service/internal/core/domain"
	"wallet-lifecycle-service/internal/core/ports"
	"wallet-lifecycle-service/pkg/apperror"
	"wallet-lifecycle-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler handles the wallet lifecycle endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new wallet handler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// Create handles POST /wallets.
func (h *WalletHandler) Create(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	paymentMethodID, err := uuid.Parse(req.PaymentMethodID)
	if err != nil {
		response.Error(c, apperror.Validation("malformed payment method id"))
		return
	}

	wallet, err := h.walletSvc.CreateWallet(c.Request.Context(), ports.CreateWalletRequest{
		UserID:            userID,
		PaymentMethodID:   paymentMethodID,
		Applications:      req.Applications,
		OnboardingChannel: req.OnboardingChannel,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.FromWallet(wallet))
}

// CreateSession handles POST /wallets/:walletId/sessions.
func (h *WalletHandler) CreateSession(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	walletID, err := uuid.Parse(c.Param("walletId"))
	if err != nil {
		response.Error(c, apperror.Validation("malformed wallet id"))
		return
	}

	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.walletSvc.CreateSession(c.Request.Context(), ports.CreateSessionRequest{
		WalletID: walletID,
		UserID:   userID,
		PspID:    req.PspID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.SessionResponse{
		OrderID:       result.OrderID,
		SecurityToken: result.SecurityToken,
		WalletID:      result.WalletID.String(),
	})
}

// UpdateApplications handles PUT /wallets/:walletId/applications.
func (h *WalletHandler) UpdateApplications(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	walletID, err := uuid.Parse(c.Param("walletId"))
	if err != nil {
		response.Error(c, apperror.Validation("malformed wallet id"))
		return
	}

	var req dto.UpdateApplicationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	updates := make(map[string]domain.ApplicationStatus, len(req.Applications))
	for _, app := range req.Applications {
		updates[app.ID] = domain.ApplicationStatus(app.Status)
	}

	result, err := h.walletSvc.UpdateApplications(c.Request.Context(), ports.UpdateApplicationsRequest{
		WalletID: walletID,
		UserID:   userID,
		Updates:  updates,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.ApplicationsUpdateResponse{
		Updated: make(map[string]string, len(result.Updated)),
		Failed:  make(map[string]string, len(result.Failed)),
	}
	for id, status := range result.Updated {
		resp.Updated[id] = string(status)
	}
	for id, status := range result.Failed {
		resp.Failed[id] = string(status)
	}
	response.OK(c, resp)
}

// Patch handles PATCH /wallets/:walletId. The only accepted patch is the
// ERROR status with an optional reason.
func (h *WalletHandler) Patch(c *gin.Context) {
	walletID, err := uuid.Parse(c.Param("walletId"))
	if err != nil {
		response.Error(c, apperror.Validation("malformed wallet id"))
		return
	}

	var req dto.PatchWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	wallet, err := h.walletSvc.PatchWalletStateToError(c.Request.Context(), walletID, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromWallet(wallet))
}

// Delete handles DELETE /wallets/:walletId.
func (h *WalletHandler) Delete(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	walletID, err := uuid.Parse(c.Param("walletId"))
	if err != nil {
		response.Error(c, apperror.Validation("malformed wallet id"))
		return
	}

	if err := h.walletSvc.DeleteWallet(c.Request.Context(), walletID, userID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Get handles GET /wallets/:walletId.
func (h *WalletHandler) Get(c *gin.Context) {
	walletID, err := uuid.Parse(c.Param("walletId"))
	if err != nil {
		response.Error(c, apperror.Validation("malformed wallet id"))
		return
	}

	wallet, err := h.walletSvc.FindByID(c.Request.Context(), walletID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromWallet(wallet))
}

// List handles GET /wallets for the authenticated user.
func (h *WalletHandler) List(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	wallets, err := h.walletSvc.FindByUserID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := make([]dto.WalletResponse, 0, len(wallets))
	for i := range wallets {
		resp = append(resp, dto.FromWallet(&wallets[i]))
	}
	response.OK(c, resp)
}

func authenticatedUser(c *gin.Context) (uuid.UUID, bool) {
	raw, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.Validation("missing user identity"))
		return uuid.Nil, false
	}
	return raw.(uuid.UUID), true
}
