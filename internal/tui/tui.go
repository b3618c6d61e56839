// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the session keeper. It renders
// the pages, forwards user input to the event bus and implements the
// service layer's UI through [Bridge].
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-session-keeper/internal/events"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/notify"
	"github.com/MKhiriev/go-session-keeper/internal/service"
	"github.com/MKhiriev/go-session-keeper/models"
)

const storeReloadHandler = "tui-store-reload"

type TUI struct {
	services  *service.ClientServices
	bus       *events.Bus
	bridge    *Bridge
	board     *notify.Board
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(
	services *service.ClientServices,
	bus *events.Bus,
	bridge *Bridge,
	notificationTTL time.Duration,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) *TUI {
	return &TUI{
		services:  services,
		bus:       bus,
		bridge:    bridge,
		board:     notify.NewBoard(notificationTTL),
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run shows the UI until the user quits. Store changes reported on the bus
// trigger a fresh bootstrap of the visible page.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRootModel(ctx)

	p := tea.NewProgram(root,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	t.bridge.Attach(p.Send)
	defer t.bridge.Close()

	t.bus.On(events.StoreChanged, storeReloadHandler, func(context.Context, events.Event) {
		t.bridge.Send(storeChangedMsg{})
	})
	defer t.bus.Off(events.StoreChanged, storeReloadHandler)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// Tick refreshes time-dependent parts of the screen: notification expiry and
// the token countdown.
func (t *TUI) Tick(context.Context) {
	t.bridge.Send(tickMsg{at: time.Now()})
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	d := &deps{
		ctx:      t.logger.WithContext(ctx),
		services: t.services,
		bus:      t.bus,
		logger:   t.logger,
		st:       newStyles(models.ThemeDark),
	}

	pages := map[string]page{
		models.RouteRoot:     NewMenuModel(d),
		models.RouteLogin:    NewLoginModel(d),
		models.RouteRegister: NewRegisterModel(d),
		models.RouteHome:     NewHomeModel(d),
	}

	return NewRootModel(d, pages, models.RouteRoot, t.board, t.buildInfo)
}
