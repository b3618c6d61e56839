// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-session-keeper/internal/app"
	"github.com/MKhiriev/go-session-keeper/internal/events"
	"github.com/MKhiriev/go-session-keeper/models"
)

const homeCopyField = "home-copy"

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func homeDocument() models.Document {
	return models.Document{
		{ID: "home-username", Label: "Username", UserField: "username"},
		{ID: "home-email", Label: "Email", UserField: "email"},
		{ID: "home-name", Label: "Name", UserField: "name"},
		{ID: homeCopyField, Label: "Copy", UserField: "username", Kind: models.ElementInput},
		{ID: "home-logout", Label: "Log out", Classes: []string{models.ClassLogoutLink}},
	}
}

// HomeModel shows the signed-in user's profile. It is also the fallback page
// for unknown redirect targets.
type HomeModel struct {
	boundDoc
	d *deps

	path       string
	token      models.TokenInfo
	now        time.Time
	loggingOut bool
}

func NewHomeModel(d *deps) *HomeModel {
	doc := homeDocument()
	for _, e := range doc {
		e.Hidden = true
	}
	return &HomeModel{boundDoc: boundDoc{doc: doc}, d: d, now: time.Now()}
}

func (m *HomeModel) Init() tea.Cmd {
	return nil
}

func (m *HomeModel) Open(r route) tea.Cmd {
	m.path = r.path
	m.loggingOut = false
	return nil
}

func (m *HomeModel) Bind(v models.AuthView) {
	m.boundDoc.Bind(v)
	m.token = m.d.services.Sessions.TokenInfo()
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.now = msg.at
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.d.logger.Warn().Err(msg.err).Str("func", "HomeModel.Update").Msg("clipboard write failed")
			return m, cmdNotify(models.ScopeSession, models.NotificationError, app.MsgCopyFailed)
		}
		return m, cmdNotify(models.ScopeSession, models.NotificationSuccess, app.MsgUsernameCopied)

	case logoutDoneMsg:
		m.loggingOut = false
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(models.RouteRoot)
		case key.Matches(msg, keys.copyUser):
			return m, m.cmdCopy()
		case key.Matches(msg, keys.logout):
			if !m.view.Authenticated() || m.loggingOut {
				return m, nil
			}
			m.d.emit(events.Click, "home-logout")
			m.loggingOut = true
			return m, cmdLogout(m.d)
		}
	}
	return m, nil
}

func (m *HomeModel) View() string {
	if !m.view.Authenticated() {
		body := "You are not signed in.\n\nPress esc and choose \"Log in\"."
		return m.d.st.renderPage("HOME", body, "esc: back")
	}

	var b strings.Builder
	if m.path != "" && m.path != models.RouteHome {
		b.WriteString(m.d.st.help.Render(m.path))
		b.WriteString("\n\n")
	}

	profile := models.Document{}
	for _, e := range m.doc {
		if e.UserField != "" {
			profile = append(profile, e)
		}
	}
	b.WriteString(renderElements(profile))

	if m.token.HasExpiry() {
		b.WriteString("\n\nToken expires in ")
		b.WriteString(m.token.ExpiresAt.Sub(m.now).Truncate(time.Second).String())
	}
	if m.loggingOut {
		b.WriteString("\n\n[Logging out...]")
	}

	hotKeys := "esc: back │ c: copy username"
	if logout := m.doc.ByID("home-logout"); logout != nil && !logout.Hidden {
		hotKeys += " │ o: log out"
	}
	return m.d.st.renderPage("HOME", b.String(), hotKeys)
}

func (m *HomeModel) cmdCopy() tea.Cmd {
	e := m.doc.ByID(homeCopyField)
	if e == nil || e.Hidden || e.Value == "" {
		return nil
	}
	text := e.Value
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}
