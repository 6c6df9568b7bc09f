package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTTokenService_Generate(t *testing.T) {
	clock := fixedClock{now: testNow}
	svc := NewJWTTokenService("test-secret", 15*time.Minute, "wallet-lifecycle-service", clock)
	walletID := uuid.New()

	tokenStr, err := svc.Generate("order-1", walletID)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	parsed, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(func() time.Time { return testNow }))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "order-1", claims["sub"])
	assert.Equal(t, walletID.String(), claims["walletId"])
	assert.Equal(t, "wallet-lifecycle-service", claims["iss"])
	assert.Equal(t, float64(testNow.Unix()), claims["iat"])
	assert.Equal(t, float64(testNow.Add(15*time.Minute).Unix()), claims["exp"])
}

func TestJWTTokenService_TokensDifferPerOrder(t *testing.T) {
	svc := NewJWTTokenService("test-secret", 15*time.Minute, "wallet-lifecycle-service", fixedClock{now: testNow})
	walletID := uuid.New()

	a, err := svc.Generate("order-1", walletID)
	require.NoError(t, err)
	b, err := svc.Generate("order-2", walletID)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
