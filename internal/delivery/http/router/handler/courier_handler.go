package handler

import (
	"net/http"

	"romaneio/internal/delivery/http/response"
	"romaneio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CourierHandler holds dependencies for courier handlers.
type CourierHandler struct {
	uc usecase.CourierUsecase
}

// NewCourierHandler is the constructor for CourierHandler, injected by Fx.
func NewCourierHandler(uc usecase.CourierUsecase) *CourierHandler {
	return &CourierHandler{uc: uc}
}

// CreateCourier handles the courier registration request.
func (h *CourierHandler) CreateCourier(c echo.Context) error {
	var input *usecase.CourierInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de motoboy inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	courier, err := h.uc.CreateCourier(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, courier, "Motoboy cadastrado")
}

// GetCourier handles the single courier lookup request.
func (h *CourierHandler) GetCourier(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de motoboy inválido")
	}

	courier, err := h.uc.GetCourier(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, courier, "")
}

// ListCouriers handles the courier listing request.
func (h *CourierHandler) ListCouriers(c echo.Context) error {
	activeOnly := c.QueryParam("ativos") == "true"

	couriers, err := h.uc.ListCouriers(c.Request().Context(), activeOnly)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, couriers, "")
}

// UpdateCourier handles the courier update request.
func (h *CourierHandler) UpdateCourier(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de motoboy inválido")
	}

	var input *usecase.CourierInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de motoboy inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateCourier(c.Request().Context(), id, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Motoboy atualizado")
}

// RemoveCourier handles the courier removal request.
func (h *CourierHandler) RemoveCourier(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de motoboy inválido")
	}

	if err := h.uc.RemoveCourier(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Motoboy removido")
}

// WeeklyPayments returns the courier's weekly payment ledger.
func (h *CourierHandler) WeeklyPayments(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de motoboy inválido")
	}

	payments, err := h.uc.WeeklyPayments(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payments, "")
}

// SetWeeklyPayment sets the payment status of one work week.
func (h *CourierHandler) SetWeeklyPayment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de motoboy inválido")
	}

	var input *usecase.SetWeeklyPaymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de pagamento inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SetWeeklyPayment(c.Request().Context(), id, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Pagamento da semana atualizado")
}
