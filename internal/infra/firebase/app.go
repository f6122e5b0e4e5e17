// Package firebase owns the process-wide Firebase app and the clients derived from it.
package firebase

import (
	"context"
	"log/slog"
	"sync"

	"github.com/JeffJagr/SmartBar-v3/config"
	"github.com/JeffJagr/SmartBar-v3/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type appFactory func(ctx context.Context) (*firebase.App, error)

// AppProvider lazily initializes one Firebase app per process and memoizes the
// Firestore and Messaging clients built from it. Initialization is idempotent and
// safe for concurrent first use; a failed attempt is retried on the next call.
type AppProvider struct {
	logger  *slog.Logger
	newApp  appFactory
	mu      sync.Mutex
	app     *firebase.App
	store   *firestore.Client
	message *messaging.Client
}

// NewAppProvider creates a provider for the configured project. Nothing is dialed until first use.
func NewAppProvider(cfg *config.Config, logger *slog.Logger) *AppProvider {
	fbCfg := cfg.Firebase
	if fbCfg == nil {
		fbCfg = &config.FirebaseConfig{}
	}

	return &AppProvider{
		logger: logger,
		newApp: func(ctx context.Context) (*firebase.App, error) {
			var opts []option.ClientOption
			if fbCfg.CredentialsPath != "" {
				opts = append(opts, option.WithCredentialsFile(fbCfg.CredentialsPath))
			}

			// A nil config lets the SDK read FIREBASE_CONFIG and Application Default Credentials.
			var appCfg *firebase.Config
			if fbCfg.ProjectID != "" {
				appCfg = &firebase.Config{ProjectID: fbCfg.ProjectID}
			}

			return firebase.NewApp(ctx, appCfg, opts...)
		},
	}
}

// App returns the memoized Firebase app, creating it on first call.
func (p *AppProvider) App(ctx context.Context) (*firebase.App, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.appLocked(ctx)
}

func (p *AppProvider) appLocked(ctx context.Context) (*firebase.App, error) {
	if p.app != nil {
		return p.app, nil
	}

	app, err := p.newApp(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}
	p.app = app
	p.logger.Info("Firebase app initialized")

	return app, nil
}

// Firestore returns the memoized Firestore client.
func (p *AppProvider) Firestore(ctx context.Context) (*firestore.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.store != nil {
		return p.store, nil
	}

	app, err := p.appLocked(ctx)
	if err != nil {
		return nil, err
	}

	store, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firestore client")
	}
	p.store = store

	return store, nil
}

// Messaging returns the memoized Cloud Messaging client.
func (p *AppProvider) Messaging(ctx context.Context) (*messaging.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.message != nil {
		return p.message, nil
	}

	app, err := p.appLocked(ctx)
	if err != nil {
		return nil, err
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}
	p.message = client

	return client, nil
}

// Close releases the Firestore client if one was created.
func (p *AppProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.store == nil {
		return nil
	}

	err := p.store.Close()
	p.store = nil

	return errors.WithStack(err)
}
