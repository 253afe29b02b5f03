package main

import (
	"context"
	"log/slog"
	"os"

	"datadex/config"
	"datadex/internal/delivery"
	"datadex/internal/delivery/http"
	"datadex/internal/delivery/http/middleware"
	"datadex/internal/delivery/http/router/handler"
	"datadex/internal/domain/service"
	"datadex/internal/infra/auth"
	logs "datadex/internal/infra/log"
	"datadex/internal/infra/persistence/postgres"
	"datadex/internal/infra/pubsub"
	"datadex/internal/infra/qrcode"
	"datadex/internal/usecase/impl"

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
			postgres.NewAccountRepository,
			postgres.NewReceiptRepository,
			postgres.NewStoreRepository,
			postgres.NewItemRepository,
			postgres.NewSellerBalanceRepository,
			postgres.NewOrderRepository,
			postgres.NewRegistryRepository,
			postgres.NewBurnRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newQRCodeService,
			pubsub.NewEventPublisher,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMarketService,
			impl.NewItemSettler,
			impl.NewOrderService,
			impl.NewSettlementTargets,
			impl.NewLedgerService,
			impl.NewRegistryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewLedgerHandler,
			handler.NewMarketHandler,
			handler.NewOrderHandler,
			handler.NewRegistryHandler,
			handler.NewTestHandler,
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
