// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// Account is the sole entity in the system, representing a registered user.
// It carries the credential hash and the email-verification state alongside
// the basic identity fields.
type Account struct {
	ID                string     // Opaque unique identifier, assigned by the repository at creation.
	UserName          string     // Unique login name.
	FirstName         string     // The account holder's first name.
	LastName          string     // The account holder's last name.
	Email             string     // Unique, syntactically valid email address.
	PasswordHash      string     // bcrypt hash of the password. Never stored or transmitted in plaintext.
	VerificationToken string     // Single-use opaque token, present only while the account is unverified.
	VerifiedAt        *time.Time // Set exactly once by email verification. nil means unverified.
	CreatedAt         time.Time  // Timestamp of when this account was created.
	UpdatedAt         time.Time  // Timestamp of the last modification to this account.
}

// IsVerified reports whether the account has completed email verification.
// An account is either unverified (VerificationToken set, VerifiedAt nil) or
// verified (VerificationToken cleared, VerifiedAt set), never both.
func (a *Account) IsVerified() bool {
	return a.VerifiedAt != nil
}

// MarkVerified transitions the account into the verified state at the given
// time, consuming the verification token.
func (a *Account) MarkVerified(now time.Time) {
	a.VerifiedAt = &now
	a.VerificationToken = ""
}
