// Package validator adapts go-playground/validator to echo's Validator
// interface, rendering violations in the wire format the service promises:
// every violated field rule, in declaration order, joined by ", ".
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	domainerrors "accounts/internal/domain/errors"
)

// CustomValidator wraps a validator.Validate instance for echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the HTTP server. Field names in messages
// come from the json tag, matching the request body the caller sent.
func New() *CustomValidator {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator. It returns a domain ValidationError
// whose message lists all violated rules.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		// Struct-level failure (nil pointer, non-struct): misuse, not user input.
		return err
	}

	messages := make([]string, 0, len(violations))
	for _, violation := range violations {
		messages = append(messages, describe(violation))
	}

	return domainerrors.NewValidationError(strings.Join(messages, ", "))
}

// describe renders a single field violation.
func describe(violation validator.FieldError) string {
	switch violation.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", violation.Field())
	case "email":
		return fmt.Sprintf("%q must be a valid email", violation.Field())
	case "min":
		return fmt.Sprintf("%q length must be at least %s characters long", violation.Field(), violation.Param())
	case "max":
		return fmt.Sprintf("%q length must be less than or equal to %s characters long", violation.Field(), violation.Param())
	default:
		return fmt.Sprintf("%q is invalid", violation.Field())
	}
}
