package jwt

import (
	"testing"
	"time"

	"clinic-backend/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(expiry time.Duration) *TokenService {
	return NewTokenService(config.JWTConfig{
		Secret: "test-secret",
		Expiry: expiry,
	})
}

func TestTokenService_GenerateAndVerify(t *testing.T) {
	svc := newTestTokenService(time.Hour)
	accountID := uuid.New()

	token, err := svc.Generate(accountID, "doc@clinic.com", "doctor")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, "doc@clinic.com", claims.Email)
	assert.Equal(t, "doctor", claims.Role)
}

func TestTokenService_VerifyExpiredToken(t *testing.T) {
	svc := newTestTokenService(-time.Minute)

	token, err := svc.Generate(uuid.New(), "doc@clinic.com", "doctor")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestTokenService_VerifyWrongSecret(t *testing.T) {
	svc := newTestTokenService(time.Hour)
	other := NewTokenService(config.JWTConfig{Secret: "another-secret", Expiry: time.Hour})

	token, err := svc.Generate(uuid.New(), "doc@clinic.com", "doctor")
	require.NoError(t, err)

	claims, err := other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestTokenService_VerifyMalformedToken(t *testing.T) {
	svc := newTestTokenService(time.Hour)

	claims, err := svc.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestTokenService_VerifyTamperedToken(t *testing.T) {
	svc := newTestTokenService(time.Hour)

	token, err := svc.Generate(uuid.New(), "doc@clinic.com", "doctor")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	claims, err := svc.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}
