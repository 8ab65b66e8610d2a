package handler

import (
	"net/http"

	"romaneio/internal/delivery/http/response"
	"romaneio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MailHandler holds dependencies for mail shipment handlers.
type MailHandler struct {
	uc usecase.MailUsecase
}

// NewMailHandler is the constructor for MailHandler, injected by Fx.
func NewMailHandler(uc usecase.MailUsecase) *MailHandler {
	return &MailHandler{uc: uc}
}

// CreateShipment handles the shipment creation request.
func (h *MailHandler) CreateShipment(c echo.Context) error {
	var input *usecase.MailShipmentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de envio inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	shipment, err := h.uc.CreateShipment(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, shipment, "Envio cadastrado")
}

// GetShipment handles the single shipment lookup request.
func (h *MailHandler) GetShipment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de envio inválido")
	}

	shipment, err := h.uc.GetShipment(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shipment, "")
}

// ListShipments handles the filtered shipment listing request.
func (h *MailHandler) ListShipments(c echo.Context) error {
	input := &usecase.ListMailShipmentsInput{
		Service:       c.QueryParam("servico"),
		Status:        c.QueryParam("status"),
		PaymentStatus: c.QueryParam("status_pagamento"),
	}

	shipments, err := h.uc.ListShipments(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shipments, "")
}

// UpdateShipment handles the shipment update request.
func (h *MailHandler) UpdateShipment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de envio inválido")
	}

	var input *usecase.MailShipmentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de envio inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateShipment(c.Request().Context(), id, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Envio atualizado")
}

// RemoveShipment handles the shipment removal request.
func (h *MailHandler) RemoveShipment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de envio inválido")
	}

	if err := h.uc.RemoveShipment(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Envio removido")
}
