package main

import (
	"context"
	"log/slog"
	"os"

	"hallcms/config"
	"hallcms/internal/delivery"
	"hallcms/internal/delivery/http"
	"hallcms/internal/delivery/http/middleware"
	"hallcms/internal/delivery/http/router/handler"
	"hallcms/internal/domain/service"
	"hallcms/internal/infra/auth"
	logs "hallcms/internal/infra/log"
	"hallcms/internal/infra/mail"
	"hallcms/internal/infra/persistence/postgres"
	"hallcms/internal/infra/upload"
	"hallcms/internal/usecase/impl"

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
		upload.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAdminRepository,
			postgres.NewBookingRepository,
			postgres.NewEventRepository,
			postgres.NewActivityRepository,
			postgres.NewCommitteeRepository,
			postgres.NewGroupRepository,
			postgres.NewNewsRepository,
			postgres.NewSettingsRepository,
			postgres.NewDocumentRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTService,
			mail.NewBookingNotifier,
		),
	)
}

// newPasswordHasher picks up a configured bcrypt cost when one is set.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth == nil || cfg.Auth.BcryptCost == 0 {
		return auth.NewBcryptHasher()
	}

	return auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewBookingService,
			impl.NewContentService,
			impl.NewSiteService,
			impl.NewUploadService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewBookingHandler,
			handler.NewContentHandler,
			handler.NewSiteHandler,
			handler.NewUploadHandler,
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
