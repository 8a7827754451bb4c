package response

import (
	"github.com/labstack/echo/v4"
)

// MessageBody is the flat single-message payload used by this service's wire
// contract for registration, verification, and every error outcome.
type MessageBody struct {
	Message string `json:"message"`
}

// Message writes a flat {"message": ...} body with the given status code.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}

// JSON writes an arbitrary payload with the given status code.
func JSON(c echo.Context, statusCode int, payload any) error {
	return c.JSON(statusCode, payload)
}
