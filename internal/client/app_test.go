// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-session-keeper/internal/config"
	"github.com/MKhiriev/go-session-keeper/internal/crypto"
	"github.com/MKhiriev/go-session-keeper/internal/events"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/mock"
	"github.com/MKhiriev/go-session-keeper/internal/service"
	"github.com/MKhiriev/go-session-keeper/internal/store"
	"github.com/MKhiriev/go-session-keeper/internal/tui"
	"github.com/MKhiriev/go-session-keeper/internal/workers"
	"github.com/MKhiriev/go-session-keeper/models"
)

type fakeScreen struct {
	run   func(ctx context.Context) error
	ticks atomic.Int32
}

func (s *fakeScreen) Run(ctx context.Context) error { return s.run(ctx) }

func (s *fakeScreen) Tick(context.Context) { s.ticks.Add(1) }

func newTestApp(t *testing.T, screen *fakeScreen, jobs ...workers.Worker) *App {
	t.Helper()
	ctx := logger.Nop().WithContext(context.Background())

	storages, err := store.NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: ":memory:"}}, crypto.NewSealer(""), logger.Nop())
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	services := service.NewClientServices(storages, mock.NewMockServerAdapter(ctrl), tui.NewBridge(), service.RealClock(), config.ClientSession{})

	return newApp(storages, services, events.NewBus(), screen, workers.NewWorkers(logger.Nop(), jobs...), logger.Nop())
}

func TestApp_RunTreatsQuitAsNormalExit(t *testing.T) {
	tests := []struct {
		name    string
		runErr  error
		wantErr bool
	}{
		{name: "user quit", runErr: tui.ErrUserQuit},
		{name: "context cancelled", runErr: context.Canceled},
		{name: "clean exit"},
		{name: "ui failure", runErr: errors.New("no tty"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, &fakeScreen{run: func(context.Context) error { return tt.runErr }})

			err := app.Run(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.runErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestApp_RunDrivesWorkersUntilExit(t *testing.T) {
	screen := &fakeScreen{}
	screen.run = func(context.Context) error {
		require.Eventually(t, func() bool { return screen.ticks.Load() >= 2 }, time.Second, 5*time.Millisecond)
		return tui.ErrUserQuit
	}
	app := newTestApp(t, screen, workers.NewTickerWorker(10*time.Millisecond, screen.Tick))

	require.NoError(t, app.Run(context.Background()))

	after := screen.ticks.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, screen.ticks.Load(), "workers must stop with the UI")
	assert.Equal(t, service.MonitorIdle, app.services.Monitor.State())
}

func TestNewApp(t *testing.T) {
	cfg := &config.ClientConfig{
		Adapter: config.ClientAdapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "client.db")}},
		Session: config.ClientSession{WatchStore: true},
	}

	app, err := NewApp(context.Background(), cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(app.shutdown)

	assert.Equal(t, []string{"inactivity-monitor"}, app.bus.Handlers(events.KeyDown))
}

func TestNewApp_InvalidAddress(t *testing.T) {
	cfg := &config.ClientConfig{
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: ":memory:"}},
	}

	_, err := NewApp(context.Background(), cfg, models.AppBuildInfo{}, logger.Nop())
	require.Error(t, err)
}
