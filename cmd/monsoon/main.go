package main

import (
	"context"
	"log/slog"
	"os"

	"monsoon/config"
	"monsoon/internal/delivery"
	"monsoon/internal/delivery/http"
	"monsoon/internal/delivery/http/middleware"
	"monsoon/internal/delivery/http/router/handler"
	"monsoon/internal/infra/auth"
	logs "monsoon/internal/infra/log"
	"monsoon/internal/infra/persistence/postgres"
	"monsoon/internal/infra/persistence/seed"
	"monsoon/internal/usecase/impl"

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
			seedDatabase,
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
			postgres.NewUserRepository,
			postgres.NewPolicyRepository,
			postgres.NewWeatherRiskRepository,
			postgres.NewPolicyApplicationRepository,
			postgres.NewContactInquiryRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			seed.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewPolicyService,
			impl.NewWeatherRiskService,
			impl.NewQuoteService,
			impl.NewApplicationService,
			impl.NewContactService,
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
			handler.NewPolicyHandler,
			handler.NewWeatherRiskHandler,
			handler.NewApplicationHandler,
			handler.NewContactHandler,
			handler.NewPremiumHandler,
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

func seedDatabase(ctx context.Context, cfg *config.Config, seeder *seed.Seeder, logger *slog.Logger) error {
	if !cfg.Seed.Enabled {
		logger.Info("Seed disabled, skipping bootstrap")

		return nil
	}

	return seeder.Run(ctx)
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
