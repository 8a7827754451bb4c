package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"accounts/config"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Signing = secret

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_signing_secret_key_very_long_for_testing"))
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	accountID := "64f1b2c3d4e5f60718293a4b"

	token, err := jwtService.Issue(accountID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.Validate(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, accountID, claims.Subject)
}

func TestJWTService_TokenExpiry(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_signing_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	token, err := jwtService.Issue("64f1b2c3d4e5f60718293a4b")
	assert.NoError(t, err)

	claims, err := jwtService.Validate(token)
	assert.NoError(t, err)

	// Tokens carry a fixed 60-minute lifetime from issuance.
	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 60*time.Minute, lifetime)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_signing_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	invalidToken := "clearly-not-a-jwt-token-format"
	claims, err := jwtService.Validate(invalidToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("issuer_secret_key_very_long_for_testing"))
	assert.NoError(t, err)
	validator, err := NewJWTService(newTestConfig("different_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	token, err := issuer.Issue("64f1b2c3d4e5f60718293a4b")
	assert.NoError(t, err)

	claims, err := validator.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt signing secret must be provided")
}
