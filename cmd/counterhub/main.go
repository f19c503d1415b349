package main

import (
	"context"
	"log/slog"
	"os"

	"counterhub/config"
	"counterhub/internal/delivery"
	"counterhub/internal/delivery/api"
	apimiddleware "counterhub/internal/delivery/api/middleware"
	"counterhub/internal/delivery/api/router/handler"
	"counterhub/internal/domain/repository"
	"counterhub/internal/domain/service"
	"counterhub/internal/infra/auth"
	logs "counterhub/internal/infra/log"
	"counterhub/internal/infra/storage"
	"counterhub/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
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
		storage.New,
	)
}

// injectRepo exposes the storage context's unit of work and its health probe.
func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			func(storageCtx *storage.Context) repository.TransactionManager {
				return storageCtx.TransactionManager()
			},
			func(storageCtx *storage.Context) impl.StorageProbe {
				return storageCtx
			},
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			func() service.Clock { return service.SystemClock{} },
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCounterService,
			impl.NewProfileService,
			impl.NewAdminService,
			impl.NewHealthService,
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
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewActivityHandler,
			handler.NewAdminHandler,
			handler.NewHealthHandler,
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
