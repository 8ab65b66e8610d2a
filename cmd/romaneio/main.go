package main

import (
	"context"
	"log/slog"
	"os"

	"romaneio/config"
	"romaneio/internal/delivery"
	"romaneio/internal/delivery/http"
	"romaneio/internal/delivery/http/middleware"
	"romaneio/internal/delivery/http/router/handler"
	"romaneio/internal/infra/auth"
	"romaneio/internal/infra/fingerprint"
	"romaneio/internal/infra/geocode"
	logs "romaneio/internal/infra/log"
	"romaneio/internal/infra/persistence/postgres"
	"romaneio/internal/infra/qrcode"
	"romaneio/internal/infra/storage"
	"romaneio/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewClientRepository,
			postgres.NewAddressRepository,
			postgres.NewCourierRepository,
			postgres.NewCourierPaymentRepository,
			postgres.NewDeliveryRepository,
			postgres.NewMailRepository,
			postgres.NewDeviceRepository,
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			fingerprint.NewFingerprintService,
			geocode.NewNominatimClient,
			qrcode.NewQRCodeService,
			storage.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewClientService,
			impl.NewCourierService,
			impl.NewDeliveryService,
			impl.NewDeviceService,
			impl.NewMailService,
			impl.NewReportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewDeviceGateMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewClientHandler,
			handler.NewCourierHandler,
			handler.NewDeliveryHandler,
			handler.NewDeviceHandler,
			handler.NewMailHandler,
			handler.NewReportHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
