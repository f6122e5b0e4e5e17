package firebase

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/JeffJagr/SmartBar-v3/config"
	"github.com/JeffJagr/SmartBar-v3/internal/errors"

	firebase "firebase.google.com/go/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(factory appFactory) *AppProvider {
	provider := NewAppProvider(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	provider.newApp = factory

	return provider
}

func TestAppProvider_App_InitializesOnce(t *testing.T) {
	var calls atomic.Int32
	provider := newTestProvider(func(ctx context.Context) (*firebase.App, error) {
		calls.Add(1)

		return &firebase.App{}, nil
	})

	var wg sync.WaitGroup
	apps := make([]*firebase.App, 16)
	for i := range apps {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app, err := provider.App(context.Background())
			assert.NoError(t, err)
			apps[i] = app
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, app := range apps {
		assert.Same(t, apps[0], app)
	}
}

func TestAppProvider_App_RetriesAfterFailure(t *testing.T) {
	var calls atomic.Int32
	provider := newTestProvider(func(ctx context.Context) (*firebase.App, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("metadata server unavailable")
		}

		return &firebase.App{}, nil
	})

	_, err := provider.App(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize Firebase app")

	app, err := provider.App(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, app)
	assert.Equal(t, int32(2), calls.Load())
}

func TestAppProvider_Firestore_PropagatesInitError(t *testing.T) {
	provider := newTestProvider(func(ctx context.Context) (*firebase.App, error) {
		return nil, errors.New("no credentials")
	})

	client, err := provider.Firestore(context.Background())

	assert.Nil(t, client)
	assert.Error(t, err)
}

func TestAppProvider_Close_WithoutClients(t *testing.T) {
	provider := newTestProvider(func(ctx context.Context) (*firebase.App, error) {
		return &firebase.App{}, nil
	})

	assert.NoError(t, provider.Close())
}
