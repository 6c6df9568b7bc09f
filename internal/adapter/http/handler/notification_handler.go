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

// HeaderSecurityToken carries the token the gateway echoes back from the
// onboarding session.
const HeaderSecurityToken = "X-Security-Token"

// NotificationHandler handles the gateway notification callback.
type NotificationHandler struct {
	notificationSvc ports.NotificationService
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(notificationSvc ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

// Notify handles POST /wallets/:walletId/sessions/:orderId/notifications.
func (h *NotificationHandler) Notify(c *gin.Context) {
	walletID, err := uuid.Parse(c.Param("walletId"))
	if err != nil {
		response.Error(c, apperror.Validation("malformed wallet id"))
		return
	}
	orderID := c.Param("orderId")

	var req dto.NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	var details ports.NotificationDetails
	switch {
	case req.Card != nil:
		details = ports.NotificationCardDetails{
			PaymentInstrumentGatewayID: req.Card.PaymentInstrumentGatewayID,
		}
	case req.PayPal != nil:
		details = ports.NotificationPayPalDetails{MaskedEmail: req.PayPal.MaskedEmail}
	}

	result, err := h.notificationSvc.Notify(c.Request.Context(), ports.NotificationRequest{
		WalletID:           walletID,
		OrderID:            orderID,
		SecurityToken:      c.GetHeader(HeaderSecurityToken),
		OperationID:        req.OperationID,
		OperationResult:    domain.OperationResult(req.OperationResult),
		ErrorCode:          req.ErrorCode,
		OperationTimestamp: req.OperationTimestamp,
		Details:            details,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"outcome": string(result.Outcome)})
}
