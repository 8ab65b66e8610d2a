package handler

import (
	"net/http"

	"romaneio/internal/delivery/http/response"
	"romaneio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account management handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// CreateUser handles the account creation request.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var input *usecase.CreateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de usuário inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.CreateUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "Usuário criado")
}

// ListUsers handles the account listing request.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// SetActive activates or deactivates an account.
func (h *UserHandler) SetActive(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de usuário inválido")
	}

	var input struct {
		Active *bool `json:"ativo" validate:"required"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados inválidos")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SetActive(c.Request().Context(), id, *input.Active); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Usuário atualizado")
}
