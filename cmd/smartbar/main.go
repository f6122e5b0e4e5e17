package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/JeffJagr/SmartBar-v3/config"
	"github.com/JeffJagr/SmartBar-v3/internal/delivery"
	"github.com/JeffJagr/SmartBar-v3/internal/delivery/api"
	"github.com/JeffJagr/SmartBar-v3/internal/delivery/api/router/handler"
	"github.com/JeffJagr/SmartBar-v3/internal/infra/auth"
	"github.com/JeffJagr/SmartBar-v3/internal/infra/firebase"
	logs "github.com/JeffJagr/SmartBar-v3/internal/infra/log"
	"github.com/JeffJagr/SmartBar-v3/internal/infra/notification"
	"github.com/JeffJagr/SmartBar-v3/internal/infra/persistence/firestore"
	"github.com/JeffJagr/SmartBar-v3/internal/infra/pubsub"
	"github.com/JeffJagr/SmartBar-v3/internal/usecase/impl"

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
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			newAppProvider,
			func(p *firebase.AppProvider) firestore.ClientProvider { return p },
			func(p *firebase.AppProvider) notification.MessagingProvider { return p },
		),
		pubsub.Module,
	)
}

// newAppProvider creates the process-wide Firebase handle and closes its clients on shutdown.
func newAppProvider(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) *firebase.AppProvider {
	provider := firebase.NewAppProvider(cfg, logger)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing Firebase clients")

			return provider.Close()
		},
	})

	return provider
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewStaffCredentialRepository,
			firestore.NewCompanyRepository,
			firestore.NewStaffUserRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewSHA256PinHasher,
			auth.NewSharedSecretVerifier,
			notification.NewFirebaseService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewStaffAuthService,
			impl.NewPinBackfillService,
			impl.NewCompanyNotificationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewStaffHandler,
			handler.NewNotificationHandler,
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
