// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-session-keeper/internal/app"
	"github.com/MKhiriev/go-session-keeper/internal/events"
	"github.com/MKhiriev/go-session-keeper/models"
)

const (
	loginFocusUsername = iota
	loginFocusPassword
	loginFocusRemember
	loginFocusCount
)

// LoginModel is the Bubble Tea model for the login screen. It renders the
// username and password inputs and the "remember me" checkbox and hands the
// form to the session manager on submit. Errors and navigation come back
// through the bridge.
type LoginModel struct {
	boundDoc
	d *deps

	inputs     []textinput.Model
	remember   bool
	focus      int
	submitting bool
	// notice is shown above the form when the previous session expired.
	notice string
}

func NewLoginModel(d *deps) *LoginModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	usernameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		d:      d,
		inputs: []textinput.Model{usernameInput, passwordInput},
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Open resets the form, shows the expiry notice for "/login?timeout=true" and
// pre-fills the remembered username.
func (m *LoginModel) Open(r route) tea.Cmd {
	m.submitting = false
	m.inputs[loginFocusPassword].SetValue("")
	m.setFocus(loginFocusUsername)

	m.notice = ""
	if r.timedOut() {
		m.notice = app.MsgSessionExpired
	}

	return tea.Batch(textinput.Blink, m.cmdRemembered())
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case rememberedMsg:
		if msg.username != "" && m.inputs[loginFocusUsername].Value() == "" {
			m.inputs[loginFocusUsername].SetValue(msg.username)
			m.remember = true
			m.setFocus(loginFocusPassword)
		}
		return m, nil

	case loginDoneMsg:
		m.submitting = false
		if msg.err == nil {
			m.inputs[loginFocusPassword].SetValue("")
			m.notice = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.submitting = false
			return m, navigate(models.RouteRoot)
		case key.Matches(msg, keys.tab):
			m.setFocus((m.focus + 1) % loginFocusCount)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.setFocus((m.focus - 1 + loginFocusCount) % loginFocusCount)
			return m, nil
		case key.Matches(msg, keys.toggle) && m.focus == loginFocusRemember:
			m.remember = !m.remember
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			m.d.emit(events.Submit, "login-form")
			return m, m.cmdLogin(m.form())
		}
	}

	if m.focus >= len(m.inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder

	if m.notice != "" {
		b.WriteString(m.d.st.level(models.NotificationWarning).Render(m.notice))
		b.WriteString("\n\n")
	}

	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Username  │ [")
	b.WriteString(m.inputs[loginFocusUsername].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[loginFocusPassword].View())
	b.WriteString("]\n")

	rememberLine := checkbox(m.remember) + " Remember me"
	if m.focus == loginFocusRemember {
		rememberLine = m.d.st.selected.Render(rememberLine)
	}
	b.WriteString("          │ ")
	b.WriteString(rememberLine)
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}

	return m.d.st.renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ space: toggle │ enter: submit")
}

func (m *LoginModel) form() models.LoginForm {
	return models.LoginForm{
		Username: strings.TrimSpace(m.inputs[loginFocusUsername].Value()),
		Password: m.inputs[loginFocusPassword].Value(),
		Remember: m.remember,
	}
}

func (m *LoginModel) cmdLogin(form models.LoginForm) tea.Cmd {
	ctx := m.d.ctx
	sessions := m.d.services.Sessions

	return func() tea.Msg {
		return loginDoneMsg{err: sessions.Login(ctx, form)}
	}
}

func (m *LoginModel) cmdRemembered() tea.Cmd {
	ctx := m.d.ctx
	sessions := m.d.services.Sessions
	log := m.d.logger

	return func() tea.Msg {
		username, err := sessions.RememberedUsername(ctx)
		if err != nil {
			log.Err(err).Str("func", "LoginModel.cmdRemembered").Msg("failed to read remembered username")
		}
		return rememberedMsg{username: username}
	}
}

func (m *LoginModel) setFocus(i int) {
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.focus = i
	if i < len(m.inputs) {
		m.inputs[i].Focus()
	}
}
