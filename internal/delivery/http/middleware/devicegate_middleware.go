package middleware

import (
	"log/slog"

	"romaneio/internal/delivery/http/response"
	"romaneio/internal/domain/entity"
	"romaneio/internal/usecase"

	"github.com/labstack/echo/v4"
)

// FingerprintHeader carries the device fingerprint token on every dashboard
// request.
const FingerprintHeader = "X-Device-Fingerprint"

// DeviceGateMiddleware enforces the device authorization gate: only devices
// an administrator approved may reach the dashboard routes.
type DeviceGateMiddleware struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceGateMiddleware is the constructor for DeviceGateMiddleware.
func NewDeviceGateMiddleware(deviceUC usecase.DeviceUsecase, logger *slog.Logger) *DeviceGateMiddleware {
	return &DeviceGateMiddleware{
		deviceUC: deviceUC,
		logger:   logger,
	}
}

// Gate rejects requests from pending or blocked devices. Devices that never
// registered count as pending. A gate lookup failure lets the request
// through; JWT authentication remains the security boundary.
func (m *DeviceGateMiddleware) Gate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		fingerprint := c.Request().Header.Get(FingerprintHeader)
		if fingerprint == "" {
			return response.Forbidden(c, "DEVICE_PENDING", "Dispositivo não identificado, aguardando aprovação")
		}

		status, err := m.deviceUC.CheckFingerprint(c.Request().Context(), fingerprint)
		if err != nil {
			m.logger.Warn("Device gate lookup failed, letting request through",
				"fingerprint", fingerprint, "error", err.Error())

			return next(c)
		}

		switch status {
		case entity.DeviceStatusAuthorized:
			return next(c)
		case entity.DeviceStatusBlocked:
			return response.Forbidden(c, "DEVICE_BLOCKED", "Este dispositivo está bloqueado")
		default:
			return response.Forbidden(c, "DEVICE_PENDING", "Dispositivo aguardando aprovação do administrador")
		}
	}
}
