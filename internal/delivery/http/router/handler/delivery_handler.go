package handler

import (
	"net/http"
	"time"

	"romaneio/internal/delivery/http/response"
	"romaneio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// DeliveryHandler holds dependencies for delivery workflow handlers.
type DeliveryHandler struct {
	uc usecase.DeliveryUsecase
}

// NewDeliveryHandler is the constructor for DeliveryHandler, injected by Fx.
func NewDeliveryHandler(uc usecase.DeliveryUsecase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

// CreateDelivery handles the delivery creation request.
func (h *DeliveryHandler) CreateDelivery(c echo.Context) error {
	var input *usecase.CreateDeliveryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de entrega inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	delivery, err := h.uc.CreateDelivery(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, delivery, "Entrega cadastrada")
}

// GetDelivery handles the single delivery lookup request.
func (h *DeliveryHandler) GetDelivery(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de entrega inválido")
	}

	delivery, err := h.uc.GetDelivery(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, delivery, "")
}

// ListDeliveries handles the filtered delivery listing request.
func (h *DeliveryHandler) ListDeliveries(c echo.Context) error {
	input := &usecase.ListDeliveriesInput{
		Region: c.QueryParam("regiao"),
		Status: c.QueryParam("status"),
	}

	if raw := c.QueryParam("data"); raw != "" {
		day, err := time.Parse(dateLayout, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_DATE", "Data inválida, use AAAA-MM-DD")
		}
		input.Date = &day
	}
	if raw := c.QueryParam("motoboy_id"); raw != "" {
		courierID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "ID de motoboy inválido")
		}
		input.CourierID = &courierID
	}
	if raw := c.QueryParam("cliente_id"); raw != "" {
		clientID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "ID de cliente inválido")
		}
		input.ClientID = &clientID
	}
	if c.QueryParams().Has("periodo") {
		period := c.QueryParam("periodo")
		input.Period = &period
	}

	deliveries, err := h.uc.ListDeliveries(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deliveries, "")
}

// UpdateDelivery handles the delivery update request.
func (h *DeliveryHandler) UpdateDelivery(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de entrega inválido")
	}

	var input *usecase.UpdateDeliveryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de entrega inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateDelivery(c.Request().Context(), id, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Entrega atualizada")
}

// RemoveDelivery handles the delivery removal request.
func (h *DeliveryHandler) RemoveDelivery(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de entrega inválido")
	}

	if err := h.uc.RemoveDelivery(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Entrega removida")
}

// ChangeStatus handles the delivery status change request.
func (h *DeliveryHandler) ChangeStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de entrega inválido")
	}

	var input struct {
		Status string `json:"status" validate:"required"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Status inválido")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	status, err := h.uc.ChangeStatus(c.Request().Context(), id, input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": status.String()}, "Status atualizado")
}

// MoveDelivery handles the manual reorder request.
func (h *DeliveryHandler) MoveDelivery(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de entrega inválido")
	}

	var input struct {
		Direction string `json:"direcao" validate:"required"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Direção inválida")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.MoveDelivery(c.Request().Context(), id, usecase.MoveDirection(input.Direction)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Ordem atualizada")
}

// ReconcilePayments runs the payment reconciliation pass.
func (h *DeliveryHandler) ReconcilePayments(c echo.Context) error {
	result, err := h.uc.ReconcilePayments(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Conferência de pagamentos concluída")
}

// MapView returns the day's geocoded deliveries.
func (h *DeliveryHandler) MapView(c echo.Context) error {
	day := time.Now()
	if raw := c.QueryParam("data"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_DATE", "Data inválida, use AAAA-MM-DD")
		}
		day = parsed
	}

	points, err := h.uc.MapView(c.Request().Context(), day)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, points, "")
}

// RequisitionQR renders the manifest QR code PNG for a delivery.
func (h *DeliveryHandler) RequisitionQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de entrega inválido")
	}

	png, err := h.uc.RequisitionQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// AttachFile stores an uploaded attachment on the delivery.
func (h *DeliveryHandler) AttachFile(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de entrega inválido")
	}

	fileHeader, err := c.FormFile("arquivo")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Arquivo não enviado")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	url, err := h.uc.AttachFile(c.Request().Context(), id, &usecase.AttachmentInput{
		Kind:        c.FormValue("tipo"),
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Anexo salvo")
}
