package main

import (
	"context"
	"log/slog"
	"os"

	"upkeep/config"
	"upkeep/internal/delivery"
	"upkeep/internal/delivery/api"
	apimiddleware "upkeep/internal/delivery/api/middleware"
	"upkeep/internal/delivery/api/router/handler"
	"upkeep/internal/delivery/scheduler"
	"upkeep/internal/infra/archive"
	"upkeep/internal/infra/auth"
	"upkeep/internal/infra/conversation"
	logs "upkeep/internal/infra/log"
	"upkeep/internal/infra/notification"
	"upkeep/internal/infra/persistence/postgres"
	"upkeep/internal/infra/pubsub"
	"upkeep/internal/infra/qrcode"
	"upkeep/internal/usecase/impl"

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
		injectMiddleware(),
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
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewMaintenanceTaskRepository,
			postgres.NewMaintenanceHistoryRepository,
			postgres.NewDeviceRepository,
			postgres.NewUserRepository,
			postgres.NewNotificationRepository,
			postgres.NewPushTokenRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTVerifier,
			conversation.NewHTTPSink,
			notification.NewPushService,
			postgres.NewPreferenceChecker,
			pubsub.NewEventPublisher,
			qrcode.NewLabelEncoder,
			archive.NewSnapshotArchiver,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMaintenanceService,
			impl.NewDispatcherService,
			impl.NewInAppNotifier,
			impl.NewSchedulerService,
			impl.NewDeviceLabelService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMaintenanceHandler,
			handler.NewDeviceHandler,
			handler.NewNotificationHandler,
			handler.NewOpsHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewScheduler,
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
