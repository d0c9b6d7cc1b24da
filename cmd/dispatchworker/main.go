package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"mandi/config"
	"mandi/internal/delivery"
	"mandi/internal/delivery/worker"
	"mandi/internal/delivery/worker/handler"
	"mandi/internal/domain/service"
	logs "mandi/internal/infra/log"
	"mandi/internal/infra/persistence/postgres"
	"mandi/internal/infra/pubsub"
	"mandi/internal/infra/push"
	"mandi/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		// Expose dispatch limits for the notification service
		func(cfg *config.Config) *config.NotificationConfig {
			return cfg.Notification
		},
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewNotificationRepository,
			postgres.NewPreferenceRepository,
			postgres.NewDeviceRepository,
			postgres.NewAlertRepository,
			postgres.NewPriceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			newPushGateway,
		),
	)
}

// newPushGateway creates the FCM gateway with dependency injection
func newPushGateway(ctx context.Context, cfg *config.Config) (service.PushGateway, error) {
	if cfg.Firebase == nil {
		return nil, fmt.Errorf("firebase configuration is required")
	}

	gateway, err := push.NewFirebaseGateway(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create push gateway: %w", err)
	}

	return gateway, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
			impl.NewDealService,
			impl.NewAlertService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
			handler.NewTaskHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
