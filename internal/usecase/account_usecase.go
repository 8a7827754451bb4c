// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// AuthenticateInput defines the data required for an account to log in.
type AuthenticateInput struct {
	UserName string
	Password string
}

// RegisterInput defines the data required to register a new account.
// Origin is the base URL used to build the verification link.
type RegisterInput struct {
	UserName  string
	FirstName string
	LastName  string
	Email     string
	Password  string
	Origin    string
}

// --- Output DTOs ---

// AccountView is the redacted account representation returned to callers.
// It never carries the password hash or the verification token.
type AccountView struct {
	ID        string `json:"id"`
	UserName  string `json:"userName"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// AuthenticateOutput returns the issued bearer token and the redacted account.
type AuthenticateOutput struct {
	Token string       `json:"token"`
	User  *AccountView `json:"user"`
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Authenticate verifies credentials and issues a bearer token. It fails
	// with one generic error whether the account is missing, unverified, or
	// the password is wrong.
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error)

	// Register creates a new unverified account and dispatches the
	// verification email. The caller reports a generic "check your email"
	// message on success.
	Register(ctx context.Context, input *RegisterInput) error

	// VerifyEmail consumes a verification token, marking its account as
	// verified. Tokens are single-use: a second call with the same token fails.
	VerifyEmail(ctx context.Context, token string) error
}
