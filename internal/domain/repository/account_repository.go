// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"accounts/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByUserName retrieves a single account by exact userName match.
	FindByUserName(ctx context.Context, userName string) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByVerificationToken retrieves the account holding the given
	// verification token. Tokens are single-use, so a consumed token no
	// longer matches any account.
	FindByVerificationToken(ctx context.Context, token string) (*entity.Account, error)

	// Create persists a new account document and assigns its identifier.
	Create(ctx context.Context, account *entity.Account) error

	// Update saves the mutated account document.
	Update(ctx context.Context, account *entity.Account) error
}
