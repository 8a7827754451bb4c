package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by issued bearer tokens.
type Claims struct {
	AccountID string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-limited bearer token whose subject is the
	// given account identifier.
	Issue(accountID string) (string, error)

	// Validate checks the signature of a token string and returns its claims.
	// Expiry is enforced here on behalf of the verifying party.
	Validate(tokenString string) (*Claims, error)
}
