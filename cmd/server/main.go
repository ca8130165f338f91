package main

import (
	"context"
	"log/slog"
	"os"

	"innkeep/config"
	"innkeep/internal/delivery"
	"innkeep/internal/delivery/http"
	"innkeep/internal/delivery/http/middleware"
	"innkeep/internal/delivery/http/router/handler"
	"innkeep/internal/domain/service"
	"innkeep/internal/infra/auth"
	"innkeep/internal/infra/exchange"
	logs "innkeep/internal/infra/log"
	"innkeep/internal/infra/metrics"
	"innkeep/internal/infra/persistence/postgres"
	"innkeep/internal/infra/pms"
	"innkeep/internal/infra/prefill"
	"innkeep/internal/usecase/impl"

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
		newHTTPMetrics,
	)
}

func newHTTPMetrics(cfg *config.Config) *metrics.HTTPMetrics {
	return metrics.NewHTTPMetrics(cfg.Env.ServiceName)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewConsentRepository,
			postgres.NewResetTokenRepository,
			postgres.NewHotelRepository,
			postgres.NewRoomTypeRepository,
			postgres.NewAddonRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newRateProvider,
			pms.NewUploadClient,
			prefill.NewMarketplaceProvider,
		),
	)
}

// newRateProvider wraps the upstream exchange-rate client in the TTL cache.
func newRateProvider(cfg *config.Config, logger *slog.Logger, m *metrics.HTTPMetrics) service.RateProvider {
	upstream := exchange.NewFrankfurterClient(cfg, logger, m)

	return exchange.NewCachedProvider(upstream, cfg, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewSettingsService,
			impl.NewRoomService,
			impl.NewAddonService,
			impl.NewPublicService,
			impl.NewSuperadminService,
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
			handler.NewAuthHandler,
			handler.NewSettingsHandler,
			handler.NewRoomHandler,
			handler.NewAddonHandler,
			handler.NewUploadHandler,
			handler.NewPublicHandler,
			handler.NewSuperadminHandler,
			handler.NewHealthHandler,
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
