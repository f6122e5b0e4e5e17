package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JeffJagr/SmartBar-v3/config"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/service"
	"github.com/JeffJagr/SmartBar-v3/internal/errors"
	"github.com/JeffJagr/SmartBar-v3/internal/infra/auth"
	"github.com/JeffJagr/SmartBar-v3/internal/infra/firebase"
	logs "github.com/JeffJagr/SmartBar-v3/internal/infra/log"
	"github.com/JeffJagr/SmartBar-v3/internal/infra/persistence/firestore"
	"github.com/JeffJagr/SmartBar-v3/internal/infra/pubsub"
	"github.com/JeffJagr/SmartBar-v3/internal/usecase"
	"github.com/JeffJagr/SmartBar-v3/internal/usecase/impl"

	"github.com/spf13/cobra"
)

var (
	configDir string
	Version   = "dev"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "smartbarctl",
		Short: "SmartBar operator tooling",
		Long:  "Maintenance commands for SmartBar staff credentials stored in Firestore",

		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", "config", "Directory containing config.yaml")

	rootCmd.AddCommand(
		backfillCmd(),
		dedupeStaffCmd(),
		seedStaffCmd(),
		versionCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// runtime holds the clients one command invocation talks to.
type runtime struct {
	cfg       *config.Config
	logger    *slog.Logger
	app       *firebase.AppProvider
	publisher service.EventPublisher
}

func newRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, err
	}

	// Logs go to stderr so command output stays pipeable.
	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return nil, err
	}

	publisher, err := pubsub.New(ctx, cfg.PubSub, logger)
	if err != nil {
		return nil, err
	}

	return &runtime{
		cfg:       cfg,
		logger:    logger,
		app:       firebase.NewAppProvider(cfg, logger),
		publisher: publisher,
	}, nil
}

func (rt *runtime) backfill() usecase.PinBackfillUsecase {
	return impl.NewPinBackfillService(impl.PinBackfillServiceParams{
		CredentialRepo: firestore.NewStaffCredentialRepository(rt.app),
		Hasher:         auth.NewSHA256PinHasher(),
		Secrets:        auth.NewSharedSecretVerifier(rt.cfg),
		Publisher:      rt.publisher,
		Logger:         rt.logger,
	})
}

func (rt *runtime) staffAdmin() usecase.StaffAdminUsecase {
	return impl.NewStaffAdminService(impl.StaffAdminServiceParams{
		CredentialRepo: firestore.NewStaffCredentialRepository(rt.app),
		CompanyRepo:    firestore.NewCompanyRepository(rt.app),
		StaffUserRepo:  firestore.NewStaffUserRepository(rt.app),
		Hasher:         auth.NewSHA256PinHasher(),
		Logger:         rt.logger,
	})
}

func (rt *runtime) Close() error {
	return errors.Join(rt.publisher.Close(), rt.app.Close())
}

// withRuntime builds a runtime, runs fn and releases the clients afterwards.
func withRuntime(cmd *cobra.Command, fn func(ctx context.Context, rt *runtime) error) error {
	ctx := cmd.Context()

	rt, err := newRuntime(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := rt.Close(); closeErr != nil {
			rt.logger.Warn("Failed to close clients", slog.Any("error", closeErr))
		}
	}()

	return fn(ctx, rt)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "smartbarctl version %s\n", Version)
		},
	}
}
