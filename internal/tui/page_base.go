// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-session-keeper/internal/events"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/service"
	"github.com/MKhiriev/go-session-keeper/internal/view"
	"github.com/MKhiriev/go-session-keeper/models"
)

// deps is shared by the router and every page.
type deps struct {
	ctx      context.Context
	services *service.ClientServices
	bus      *events.Bus
	logger   *logger.Logger
	st       styles
}

func (d *deps) emit(kind events.Kind, target string) {
	d.bus.Emit(d.ctx, events.Event{Kind: kind, Target: target})
}

// boundDoc keeps a page's elements in sync with the session view.
type boundDoc struct {
	doc  models.Document
	view models.AuthView
}

// Bind applies v to the page's elements.
func (b *boundDoc) Bind(v models.AuthView) {
	b.view = v
	view.Apply(b.doc, v)
}

func navigate(target string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{target: target} }
}

func cmdNotify(scope string, level models.NotificationLevel, message string) tea.Cmd {
	return func() tea.Msg {
		return notifyMsg{notification: models.Notification{Scope: scope, Level: level, Message: message}}
	}
}

func cmdLogout(d *deps) tea.Cmd {
	ctx := d.ctx
	sessions := d.services.Sessions
	return func() tea.Msg {
		confirmed, err := sessions.Logout(ctx)
		return logoutDoneMsg{confirmed: confirmed, err: err}
	}
}
