package domain

import "github.com/google/uuid"

// OnboardingSession is the ephemeral record binding a gateway order to a
// wallet while the user completes onboarding. It lives in the session cache
// under a TTL and is looked up by order id when the gateway notifies us.
type OnboardingSession struct {
	OrderID       string    `json:"order_id"`
	SessionID     string    `json:"session_id"`
	SecurityToken string    `json:"security_token"`
	WalletID      uuid.UUID `json:"wallet_id"`
}
