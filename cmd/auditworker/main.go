package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/JeffJagr/SmartBar-v3/config"
	"github.com/JeffJagr/SmartBar-v3/internal/delivery"
	"github.com/JeffJagr/SmartBar-v3/internal/delivery/worker"
	"github.com/JeffJagr/SmartBar-v3/internal/delivery/worker/handler"
	"github.com/JeffJagr/SmartBar-v3/internal/infra/firebase"
	logs "github.com/JeffJagr/SmartBar-v3/internal/infra/log"
	"github.com/JeffJagr/SmartBar-v3/internal/infra/persistence/firestore"

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
		newAppProvider,
		func(p *firebase.AppProvider) firestore.ClientProvider { return p },
	)
}

func newAppProvider(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) *firebase.AppProvider {
	provider := firebase.NewAppProvider(cfg, logger)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return provider.Close()
		},
	})

	return provider
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewAuditEventRepository,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
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
				slog.Error("Failed to start audit worker", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
