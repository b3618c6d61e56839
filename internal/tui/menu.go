// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-session-keeper/internal/events"
	"github.com/MKhiriev/go-session-keeper/models"
)

const (
	navLogin    = "nav-login"
	navRegister = "nav-register"
	navProfile  = "nav-profile"
	navLogout   = "nav-logout"
	navGreeting = "nav-greeting"
)

var navTargets = map[string]string{
	navLogin:    models.RouteLogin,
	navRegister: models.RouteRegister,
	navProfile:  models.RouteHome,
}

func navDocument() models.Document {
	return models.Document{
		{ID: navGreeting, Label: "Signed in as", UserField: "username"},
		{ID: navLogin, Label: "Log in", Classes: []string{models.ClassLoginLink}},
		{ID: navRegister, Label: "Register", Classes: []string{models.ClassRegisterLink}},
		{ID: navProfile, Label: "Profile", Classes: []string{models.ClassAuthLink, models.ClassProfileLink}},
		{ID: navLogout, Label: "Log out", Classes: []string{models.ClassAuthLink, models.ClassLogoutLink}},
	}
}

// MenuModel is the landing page. It lists the auth actions that are visible
// for the current session.
type MenuModel struct {
	boundDoc
	d *deps

	idx        int
	loggingOut bool
}

func NewMenuModel(d *deps) *MenuModel {
	// everything hidden until the first bootstrap lands
	doc := navDocument()
	for _, e := range doc {
		e.Hidden = true
	}
	return &MenuModel{boundDoc: boundDoc{doc: doc}, d: d}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Open(route) tea.Cmd {
	m.loggingOut = false
	return nil
}

func (m *MenuModel) Bind(v models.AuthView) {
	m.boundDoc.Bind(v)
	if items := m.items(); m.idx >= len(items) {
		m.idx = max(len(items)-1, 0)
	}
}

// items returns the visible actions in display order.
func (m *MenuModel) items() []*models.Element {
	var out []*models.Element
	for _, e := range m.doc {
		if e.ID == navGreeting || e.Hidden {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(logoutDoneMsg); ok {
		m.loggingOut = false
		if done.err != nil {
			m.d.logger.Err(done.err).Str("func", "MenuModel.Update").Msg("logout failed")
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	items := m.items()
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.idx >= len(items) {
			return m, nil
		}
		return m, m.activate(items[m.idx])
	}

	return m, nil
}

func (m *MenuModel) activate(e *models.Element) tea.Cmd {
	m.d.emit(events.Click, e.ID)

	if e.ID == navLogout {
		if m.loggingOut {
			return nil
		}
		m.loggingOut = true
		return cmdLogout(m.d)
	}
	return navigate(navTargets[e.ID])
}

func (m *MenuModel) View() string {
	var b strings.Builder

	if greeting := m.doc.ByID(navGreeting); greeting != nil && !greeting.Hidden {
		b.WriteString(greeting.Label)
		b.WriteString(" ")
		b.WriteString(m.d.st.selected.Render(valueOrDash(greeting.Text)))
		b.WriteString("\n\n")
	}

	items := m.items()
	actionColWidth := lipgloss.Width("Action")
	for _, item := range items {
		if w := lipgloss.Width(item.Label); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("  %-*s\n", actionColWidth, "Action"))
	b.WriteString("──")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range items {
		cursor := " "
		label := item.Label
		if i == m.idx {
			cursor = ">"
			label = m.d.st.selected.Render(label)
		}
		b.WriteString(cursor)
		b.WriteString(" ")
		b.WriteString(label)
		b.WriteString("\n")
	}

	if m.loggingOut {
		b.WriteString("\n[Logging out...]\n")
	}

	return m.d.st.renderPage("SESSION KEEPER", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move │ v: version")
}
