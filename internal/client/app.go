// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-session-keeper/internal/adapter"
	"github.com/MKhiriev/go-session-keeper/internal/config"
	"github.com/MKhiriev/go-session-keeper/internal/crypto"
	"github.com/MKhiriev/go-session-keeper/internal/events"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/service"
	"github.com/MKhiriev/go-session-keeper/internal/store"
	"github.com/MKhiriev/go-session-keeper/internal/tui"
	"github.com/MKhiriev/go-session-keeper/internal/workers"
	"github.com/MKhiriev/go-session-keeper/models"
)

const tickInterval = time.Second

// App owns every long-lived component of the client process.
type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	bus      *events.Bus
	ui       Screen
	workers  *workers.Workers
	logger   *logger.Logger
}

// NewApp opens the local store and wires storage, transport, services, the
// activity bus and the terminal UI together.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, crypto.NewSealer(cfg.App.StoreKey), log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	bridge := tui.NewBridge()
	services := service.NewClientServices(storages, serverAdapter, bridge, service.RealClock(), cfg.Session)

	bus := events.NewBus()
	services.Monitor.Register(bus)

	ui := tui.New(services, bus, bridge, cfg.Session.NotificationTTL, buildInfo, log)

	return newApp(storages, services, bus, ui, backgroundWorkers(cfg, bus, ui, log), log), nil
}

func newApp(storages *store.ClientStorages, services *service.ClientServices, bus *events.Bus, ui Screen, w *workers.Workers, log *logger.Logger) *App {
	return &App{
		storages: storages,
		services: services,
		bus:      bus,
		ui:       ui,
		workers:  w,
		logger:   log,
	}
}

func backgroundWorkers(cfg *config.ClientConfig, bus *events.Bus, ui Screen, log *logger.Logger) *workers.Workers {
	jobs := []workers.Worker{workers.NewTickerWorker(tickInterval, ui.Tick)}

	if cfg.Session.WatchStore {
		if path, ok := store.DatabaseFile(cfg.Storage.DB.DSN); ok {
			jobs = append(jobs, workers.NewStoreWatcher(path, bus, workers.DefaultStoreDebounce, log))
		} else {
			log.Info().Str("func", "backgroundWorkers").Msg("store watching disabled for in-memory database")
		}
	}

	return workers.NewWorkers(log, jobs...)
}

// Run shows the UI until the user quits or ctx is done. Quitting from the UI
// is a normal exit.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)
	defer a.shutdown()

	a.workers.Start(ctx)

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) || errors.Is(err, context.Canceled) {
		a.logger.Info().Str("func", "App.Run").Msg("client stopped")
		return nil
	}
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func (a *App) shutdown() {
	a.workers.Stop()
	a.services.Monitor.Stop()
	a.storages.Close()
}
