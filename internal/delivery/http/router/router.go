// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"romaneio/internal/delivery/http/middleware"
	"romaneio/internal/delivery/http/router/handler"
	"romaneio/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	ClientHandler   *handler.ClientHandler
	CourierHandler  *handler.CourierHandler
	DeliveryHandler *handler.DeliveryHandler
	DeviceHandler   *handler.DeviceHandler
	MailHandler     *handler.MailHandler
	ReportHandler   *handler.ReportHandler

	AuthMiddleware *middleware.AuthMiddleware
	DeviceGate     *middleware.DeviceGateMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authMW := r.params.AuthMiddleware
	gate := r.params.DeviceGate

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes: the only endpoints open to unauthenticated callers.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/refresh", r.params.AuthHandler.RefreshToken)
	}

	// Device verification needs a logged-in user but must stay reachable
	// from devices the gate would reject; registration happens here.
	verifyGroup := e.Group("/dispositivos", authMW.Authenticate)
	{
		verifyGroup.POST("/verificar", r.params.DeviceHandler.VerifyDevice)
	}

	// Everything below requires a valid token and an authorized device.
	dashboard := e.Group("", authMW.Authenticate, gate.Gate)

	staffOnly := authMW.RequireRole(entity.RoleAdmin, entity.RoleAttendant)
	adminOnly := authMW.RequireRole(entity.RoleAdmin)

	clientGroup := dashboard.Group("/clientes", staffOnly)
	{
		clientGroup.POST("", r.params.ClientHandler.RegisterClient)
		clientGroup.GET("", r.params.ClientHandler.SearchClients)
		clientGroup.GET("/:id", r.params.ClientHandler.GetClient)
		clientGroup.PUT("/:id", r.params.ClientHandler.UpdateClient)
		clientGroup.DELETE("/:id", r.params.ClientHandler.RemoveClient)
		clientGroup.POST("/:id/enderecos", r.params.ClientHandler.AddAddress)
		clientGroup.PUT("/:id/enderecos/:enderecoId/principal", r.params.ClientHandler.SetPrimaryAddress)
		clientGroup.DELETE("/:id/enderecos/:enderecoId", r.params.ClientHandler.RemoveAddress)
	}

	courierGroup := dashboard.Group("/motoboys", staffOnly)
	{
		courierGroup.POST("", r.params.CourierHandler.CreateCourier)
		courierGroup.GET("", r.params.CourierHandler.ListCouriers)
		courierGroup.GET("/:id", r.params.CourierHandler.GetCourier)
		courierGroup.PUT("/:id", r.params.CourierHandler.UpdateCourier)
		courierGroup.DELETE("/:id", r.params.CourierHandler.RemoveCourier)
		courierGroup.GET("/:id/pagamentos", r.params.CourierHandler.WeeklyPayments)
		courierGroup.PUT("/:id/pagamentos", r.params.CourierHandler.SetWeeklyPayment, adminOnly)
	}

	// Couriers work their own deliveries, so every role may enter here.
	deliveryGroup := dashboard.Group("/entregas")
	{
		deliveryGroup.POST("", r.params.DeliveryHandler.CreateDelivery, staffOnly)
		deliveryGroup.GET("", r.params.DeliveryHandler.ListDeliveries)
		deliveryGroup.GET("/mapa", r.params.DeliveryHandler.MapView)
		deliveryGroup.POST("/reconciliar-pagamentos", r.params.DeliveryHandler.ReconcilePayments, staffOnly)
		deliveryGroup.GET("/:id", r.params.DeliveryHandler.GetDelivery)
		deliveryGroup.PUT("/:id", r.params.DeliveryHandler.UpdateDelivery, staffOnly)
		deliveryGroup.DELETE("/:id", r.params.DeliveryHandler.RemoveDelivery, staffOnly)
		deliveryGroup.PATCH("/:id/status", r.params.DeliveryHandler.ChangeStatus)
		deliveryGroup.POST("/:id/mover", r.params.DeliveryHandler.MoveDelivery)
		deliveryGroup.GET("/:id/qrcode", r.params.DeliveryHandler.RequisitionQR)
		deliveryGroup.POST("/:id/anexos", r.params.DeliveryHandler.AttachFile)
	}

	mailGroup := dashboard.Group("/envios", staffOnly)
	{
		mailGroup.POST("", r.params.MailHandler.CreateShipment)
		mailGroup.GET("", r.params.MailHandler.ListShipments)
		mailGroup.GET("/:id", r.params.MailHandler.GetShipment)
		mailGroup.PUT("/:id", r.params.MailHandler.UpdateShipment)
		mailGroup.DELETE("/:id", r.params.MailHandler.RemoveShipment)
	}

	reportGroup := dashboard.Group("/relatorios", staffOnly)
	{
		reportGroup.GET("/diario", r.params.ReportHandler.DailyTotals)
		reportGroup.GET("/pagamentos", r.params.ReportHandler.PaymentSummary)
		reportGroup.GET("/regioes", r.params.ReportHandler.RegionBreakdown)
	}

	userGroup := dashboard.Group("/usuarios", adminOnly)
	{
		userGroup.POST("", r.params.UserHandler.CreateUser)
		userGroup.GET("", r.params.UserHandler.ListUsers)
		userGroup.PATCH("/:id/ativo", r.params.UserHandler.SetActive)
	}

	deviceGroup := dashboard.Group("/dispositivos", adminOnly)
	{
		deviceGroup.GET("", r.params.DeviceHandler.ListDevices)
		deviceGroup.PATCH("/:id/status", r.params.DeviceHandler.SetDeviceStatus)
		deviceGroup.PATCH("/:id/nome", r.params.DeviceHandler.RenameDevice)
		deviceGroup.DELETE("/:id", r.params.DeviceHandler.RemoveDevice)
	}
}
