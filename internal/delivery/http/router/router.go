// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"accounts/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Liveness endpoint
	e.GET("/", handler.Root)

	// Account routes
	userGroup := e.Group("/user")
	{
		userGroup.POST("/login", r.accountHandler.Login)
		userGroup.POST("/register", r.accountHandler.Register)
		userGroup.POST("/verify-email", r.accountHandler.VerifyEmail)
	}
}
