package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"cakehaven/config"
	"cakehaven/internal/delivery"
	"cakehaven/internal/delivery/http"
	"cakehaven/internal/delivery/http/middleware"
	"cakehaven/internal/delivery/http/router/handler"
	"cakehaven/internal/domain/lifecycle"
	"cakehaven/internal/infra/auth"
	logs "cakehaven/internal/infra/log"
	"cakehaven/internal/infra/mail"
	"cakehaven/internal/infra/persistence/postgres"
	"cakehaven/internal/infra/qrcode"
	"cakehaven/internal/infra/storage"
	"cakehaven/internal/usecase"
	"cakehaven/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Logger     *slog.Logger
	Auth       usecase.AuthUsecase
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
			postgres.NewRepositoryFactory,
			postgres.NewTransactionManager,
			postgres.NewRevokedTokenRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			mail.NewComposer,
			mail.NewSender,
			qrcode.New,
			storage.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCustomerService,
			impl.NewShopService,
			impl.NewEnquiryService,
			impl.NewCakeService,
			impl.NewCartService,
			impl.NewOrderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCustomerHandler,
			handler.NewShopHandler,
			handler.NewEnquiryHandler,
			handler.NewCakeHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
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

// startServer seeds the super admin once the database is reachable, then serves.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			bootstrapCtx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(params.Auth.BootstrapSuperAdmin(bootstrapCtx))
		},
	})

	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				params.Logger.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
