package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/notepad-sync/internal/adapter"
	"github.com/MKhiriev/notepad-sync/internal/config"
	"github.com/MKhiriev/notepad-sync/internal/hasher"
	"github.com/MKhiriev/notepad-sync/internal/logger"
	"github.com/MKhiriev/notepad-sync/internal/manifest"
	"github.com/MKhiriev/notepad-sync/internal/notify"
	"github.com/MKhiriev/notepad-sync/internal/service"
	"github.com/MKhiriev/notepad-sync/internal/store"
	"github.com/MKhiriev/notepad-sync/internal/workers"
	"github.com/MKhiriev/notepad-sync/models"
)

// App owns every long-lived component of one client process.
type App struct {
	cfg      *config.ClientConfig
	storages *store.ClientStorages
	services *service.ClientServices
	workers  *workers.Workers
	logger   *logger.Logger
}

// NewApp opens local storage, starts the hashing pool and wires the client
// services. notices receives user-facing warnings of sync attempts.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, notices io.Writer, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	server, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.Sync, buildInfo, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	pool := hasher.NewPool(storages.Assets, cfg.Workers, cfg.Sync, log)
	notifier := notify.Multi{notify.NewConsoleNotifier(notices), notify.NewLogNotifier(log)}
	builder := manifest.NewBuilder(pool, notifier, log)

	services := service.NewClientServices(storages, server, server, builder, cfg, log,
		service.WithStateObserver(func(notepadID string, from, to service.SyncState) {
			log.Debug().
				Str("func", "App.stateObserver").
				Str("notepad_id", notepadID).
				Str("from", string(from)).
				Str("to", string(to)).
				Msg("sync state changed")
		}),
	)

	ws := workers.NewWorkers(pool)
	ws.Run()

	return &App{
		cfg:      cfg,
		storages: storages,
		services: services,
		workers:  ws,
		logger:   log,
	}, nil
}

// Close stops background workers and closes local storage.
func (a *App) Close() error {
	a.workers.Stop()
	return a.storages.Close()
}

// identity returns the remembered account. A missing account yields the
// zero identity so that sync attempts report the authentication failure
// themselves.
func (a *App) identity(ctx context.Context) (models.SyncIdentity, error) {
	identity, err := a.services.AccountService.Identity(ctx)
	if err != nil && !errors.Is(err, service.ErrNotLoggedIn) {
		return models.SyncIdentity{}, err
	}
	return identity, nil
}

// requireIdentity is like identity but fails when nobody is logged in.
func (a *App) requireIdentity(ctx context.Context) (models.SyncIdentity, error) {
	return a.services.AccountService.Identity(ctx)
}
