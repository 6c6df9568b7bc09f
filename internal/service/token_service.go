package service

import (
	"fmt"
	"time"

	"wallet-lifecycle-service/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTTokenService implements ports.TokenService using HS256 JWT. The minted
// token is stored in the onboarding session and must be echoed back by the
// gateway in its notification callback.
type JWTTokenService struct {
	secret []byte
	expiry time.Duration
	issuer string
	clock  ports.Clock
}

// NewJWTTokenService creates a new JWT token service.
func NewJWTTokenService(secret string, expiry time.Duration, issuer string, clock ports.Clock) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
		clock:  clock,
	}
}

// Generate creates a signed security token bound to an order and wallet.
func (s *JWTTokenService) Generate(orderID string, walletID uuid.UUID) (string, error) {
	now := s.clock.Now()

	claims := jwt.MapClaims{
		"sub":      orderID,
		"walletId": walletID.String(),
		"iat":      now.Unix(),
		"exp":      now.Add(s.expiry).Unix(),
		"iss":      s.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}

	return tokenString, nil
}
