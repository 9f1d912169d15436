// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"accounts/internal/delivery/api/middleware"
	"accounts/internal/delivery/api/router/handler"
	"accounts/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	RoleHandler    *handler.RoleHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	roleHandler    *handler.RoleHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		roleHandler:    params.RoleHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	requireAdmin := []echo.MiddlewareFunc{r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin)}

	usersGroup := apiV1.Group("/users")
	{
		usersGroup.POST("", r.accountHandler.CreateAccount)
		usersGroup.GET("", r.accountHandler.ListAccounts)
		usersGroup.GET("/lookup", r.accountHandler.LookupAccount)
		usersGroup.GET("/:id", r.accountHandler.GetAccount)

		// Lifecycle and role changes are administrative
		usersGroup.POST("/:id/activate", r.accountHandler.ActivateAccount, requireAdmin...)
		usersGroup.POST("/:id/deactivate", r.accountHandler.DeactivateAccount, requireAdmin...)
		usersGroup.GET("/:id/roles", r.roleHandler.ListAccountRoles)
		usersGroup.POST("/:id/roles", r.roleHandler.AddRole, requireAdmin...)
		usersGroup.DELETE("/:id/roles/:roleId", r.roleHandler.DeleteRole, requireAdmin...)
	}

	apiV1.GET("/roles", r.roleHandler.ListRoles)
}
