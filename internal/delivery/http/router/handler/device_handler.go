package handler

import (
	"net/http"

	"romaneio/internal/delivery/http/middleware"
	"romaneio/internal/delivery/http/response"
	"romaneio/internal/domain/entity"
	"romaneio/internal/domain/service"
	"romaneio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DeviceHandler holds dependencies for device gate handlers.
type DeviceHandler struct {
	uc             usecase.DeviceUsecase
	fingerprintSvc service.FingerprintService
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(uc usecase.DeviceUsecase, fingerprintSvc service.FingerprintService) *DeviceHandler {
	return &DeviceHandler{
		uc:             uc,
		fingerprintSvc: fingerprintSvc,
	}
}

// verifyDeviceRequest accepts either a precomputed fingerprint or the raw
// signal tuple to derive one from.
type verifyDeviceRequest struct {
	usecase.VerifyDeviceInput
	Signals *service.DeviceSignals `json:"sinais"`
}

// VerifyDevice resolves the caller's device to an approval verdict,
// registering unknown devices as pending.
func (h *DeviceHandler) VerifyDevice(c echo.Context) error {
	var input *verifyDeviceRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de dispositivo inválidos")
	}

	if input.Fingerprint == "" && input.Signals != nil {
		input.Fingerprint = h.fingerprintSvc.Derive(*input.Signals)
	}
	if err := c.Validate(&input.VerifyDeviceInput); err != nil {
		return errors.WithStack(err)
	}

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Usuário não autenticado")
	}

	output, err := h.uc.VerifyDevice(c.Request().Context(), userID, &input.VerifyDeviceInput)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// ListDevices lists every registered device for the admin screen.
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	devices, err := h.uc.ListDevices(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, devices, "")
}

// SetDeviceStatus approves, blocks, or resets a device.
func (h *DeviceHandler) SetDeviceStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de dispositivo inválido")
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

	if err := h.uc.SetDeviceStatus(c.Request().Context(), id, entity.DeviceStatus(input.Status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Dispositivo atualizado")
}

// RenameDevice changes the display name of a device.
func (h *DeviceHandler) RenameDevice(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de dispositivo inválido")
	}

	var input struct {
		Name string `json:"nome_dispositivo" validate:"required"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Nome inválido")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RenameDevice(c.Request().Context(), id, input.Name); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Dispositivo renomeado")
}

// RemoveDevice deletes a device record.
func (h *DeviceHandler) RemoveDevice(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de dispositivo inválido")
	}

	if err := h.uc.RemoveDevice(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Dispositivo removido")
}
