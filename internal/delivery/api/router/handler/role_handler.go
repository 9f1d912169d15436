package handler

import (
	"log/slog"
	"net/http"

	"accounts/internal/delivery/api/response"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RoleHandlerParams holds dependencies for RoleHandler, injected by Fx.
type RoleHandlerParams struct {
	fx.In

	RoleUC usecase.RoleUsecase
	Logger *slog.Logger
}

// RoleHandler serves the role membership endpoints.
type RoleHandler struct {
	roleUC usecase.RoleUsecase
	logger *slog.Logger
}

// NewRoleHandler is the constructor for RoleHandler
func NewRoleHandler(params RoleHandlerParams) *RoleHandler {
	return &RoleHandler{
		roleUC: params.RoleUC,
		logger: params.Logger,
	}
}

// AddRoleRequest represents the request body for assigning a role
type AddRoleRequest struct {
	RoleID string `json:"roleId" validate:"required"`
}

// AddRole handles POST /users/:id/roles
func (h *RoleHandler) AddRole(c echo.Context) error {
	var req AddRoleRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("malformed request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.roleUC.AddRole(c.Request().Context(), c.Param("id"), req.RoleID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, account)
}

// DeleteRole handles DELETE /users/:id/roles/:roleId
func (h *RoleHandler) DeleteRole(c echo.Context) error {
	if err := h.roleUC.DeleteRole(c.Request().Context(), c.Param("id"), c.Param("roleId")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ListAccountRoles handles GET /users/:id/roles
func (h *RoleHandler) ListAccountRoles(c echo.Context) error {
	roles, err := h.roleUC.ListAccountRoles(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, roles.ToStrings())
}

// ListRoles handles GET /roles
func (h *RoleHandler) ListRoles(c echo.Context) error {
	roles, err := h.roleUC.ListRoles(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, roles.ToStrings())
}
