// Package handler contains the HTTP handlers for the application.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"accounts/internal/delivery/http/response"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/usecase"
)

// Fixed success messages of the wire contract.
const (
	registerSuccessMessage    = "Please check the verification email send to your email"
	verifyEmailSuccessMessage = "Verification successful, login is enabled"
)

// loginRequest is the body of POST /user/login.
type loginRequest struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// registerRequest is the body of POST /user/register.
type registerRequest struct {
	UserName  string `json:"userName" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

// verifyEmailRequest is the body of POST /user/verify-email.
type verifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Login handles the account login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidationError("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Authenticate(c.Request().Context(), &usecase.AuthenticateInput{
		UserName: req.UserName,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, output)
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidationError("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		UserName:  req.UserName,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Origin:    requestOrigin(c),
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, registerSuccessMessage)
}

// VerifyEmail handles the single-use email verification request.
func (h *AccountHandler) VerifyEmail(c echo.Context) error {
	var req verifyEmailRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidationError("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.VerifyEmail(c.Request().Context(), req.Token); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, verifyEmailSuccessMessage)
}

// Root is a simple liveness endpoint.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "It's Working!")
}

// requestOrigin resolves the base URL for verification links: the caller's
// Origin header when present, otherwise the scheme and host of the request.
func requestOrigin(c echo.Context) string {
	if origin := c.Request().Header.Get(echo.HeaderOrigin); origin != "" {
		return origin
	}

	return fmt.Sprintf("%s://%s", c.Scheme(), c.Request().Host)
}
