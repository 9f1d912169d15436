// Package handler contains the HTTP handlers of the API server.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"accounts/config"
	"accounts/internal/delivery/api/response"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// AccountHandler serves the account lifecycle endpoints.
type AccountHandler struct {
	accountUC   usecase.AccountUsecase
	defaultTake int
	logger      *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	defaultTake := 0
	if params.Config != nil && params.Config.Pagination != nil {
		defaultTake = params.Config.Pagination.DefaultTake
	}

	return &AccountHandler{
		accountUC:   params.AccountUC,
		defaultTake: defaultTake,
		logger:      params.Logger,
	}
}

// CreateAccountRequest represents the request body for creating an account
type CreateAccountRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// CreateAccount handles POST /users
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("malformed request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.accountUC.Create(c.Request().Context(), &usecase.CreateAccountInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, account)
}

// ListAccounts handles GET /users?page=&take=
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	page, err := intQueryParam(c, "page", 1)
	if err != nil {
		return err
	}
	take, err := intQueryParam(c, "take", h.defaultTake)
	if err != nil {
		return err
	}

	result, err := h.accountUC.FindByAll(c.Request().Context(), &usecase.PageInput{Page: page, Take: take})
	if err != nil {
		return err
	}

	return response.Page(c, result.Accounts, &response.Pagination{
		Page:  result.Page,
		Take:  result.Take,
		Total: result.Total,
	})
}

func intQueryParam(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " must be an integer"))
	}

	return value, nil
}

// LookupAccount handles GET /users/lookup?email=&username=
func (h *AccountHandler) LookupAccount(c echo.Context) error {
	account, err := h.accountUC.FindByEmailOrUsername(c.Request().Context(), &usecase.LookupInput{
		Email:    c.QueryParam("email"),
		Username: c.QueryParam("username"),
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, account)
}

// GetAccount handles GET /users/:id
func (h *AccountHandler) GetAccount(c echo.Context) error {
	account, err := h.accountUC.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, account)
}

// ActivateAccount handles POST /users/:id/activate
func (h *AccountHandler) ActivateAccount(c echo.Context) error {
	account, err := h.accountUC.Activate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, account)
}

// DeactivateAccount handles POST /users/:id/deactivate
func (h *AccountHandler) DeactivateAccount(c echo.Context) error {
	account, err := h.accountUC.Deactivate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, account)
}
