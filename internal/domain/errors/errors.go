package errors

import (
	"fmt"
	"net/http"

	"accounts/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithMessagef returns a copy of the error whose user-facing message is built
// from the format specifier. Used for messages that embed request data, such
// as the duplicate email/userName messages.
func (e *BaseError) WithMessagef(format string, args ...any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   fmt.Sprintf(format, args...),
	}
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Is lets errors.Is match a derived error (built with WithMessagef) against
// its predefined template by business error code.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// Predefined error types.
//
// Messages follow the wire contract of the service: they are returned to the
// caller verbatim, so they must not leak storage or transport detail.
var (
	// ErrInvalidCredentials covers every authentication failure: unknown
	// userName, unverified account, and wrong password. One generic error for
	// all three prevents user enumeration.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_FAILED",
		"Invalid UserName/Password",
	)

	// ErrEmailTaken is returned when registering with an email that already
	// belongs to an account. Use WithMessagef to embed the email.
	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"email seems to be already registed.",
	)

	// ErrUserNameTaken is returned when registering with a userName that
	// already belongs to an account. Use WithMessagef to embed the userName.
	ErrUserNameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"userName seems to be already taken.",
	)

	// ErrAccountCreateFailed hides the underlying storage error behind a
	// fixed message when persisting a new account fails.
	ErrAccountCreateFailed = NewBaseError(
		http.StatusInternalServerError,
		"ACCOUNT_CREATE_FAILED",
		"Failed to create the user.",
	)

	// ErrVerificationEmailFailed is returned when the verification email
	// cannot be dispatched. The account already exists in unverified state at
	// this point.
	ErrVerificationEmailFailed = NewBaseError(
		http.StatusInternalServerError,
		"VERIFICATION_EMAIL_FAILED",
		"Failed to send Verification email.",
	)

	// ErrVerificationFailed is returned when no account holds the submitted
	// verification token, either because it never existed or because it was
	// already consumed.
	ErrVerificationFailed = NewBaseError(
		http.StatusNotFound,
		"VERIFICATION_FAILED",
		"Verification failed",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
	)
)

// ValidationError represents a request-shape violation detected before the
// service layer. The message lists every violated field rule joined by ", ".
type ValidationError struct {
	message string
}

// NewValidationError creates a validation error from the joined rule messages.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{message: message}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return e.message
}
