package main

import (
	"context"
	"log/slog"
	"os"

	"linkscan/config"
	"linkscan/internal/delivery"
	"linkscan/internal/delivery/http"
	"linkscan/internal/delivery/http/middleware"
	"linkscan/internal/delivery/http/router/handler"
	logs "linkscan/internal/infra/log"
	"linkscan/internal/infra/persistence/postgres"
	"linkscan/internal/infra/reputation"
	"linkscan/internal/usecase/impl"

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
			postgres.NewScanRecordRepository,
			postgres.NewDeviceRepository,
			postgres.NewPreferenceRepository,
			postgres.NewFeedbackRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			reputation.NewVirusTotalScanner,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewScanService,
			impl.NewFeedbackService,
			impl.NewPreferenceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewRequestIDMiddleware,
			fx.Annotate(
				middleware.NewScanRateLimiter,
				fx.ResultTags(`name:"scanRateLimiter"`),
			),
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewScanHandler,
			handler.NewFeedbackHandler,
			handler.NewPreferenceHandler,
			handler.NewMetaHandler,
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
