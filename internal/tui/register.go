// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-session-keeper/internal/events"
	"github.com/MKhiriev/go-session-keeper/internal/validators"
	"github.com/MKhiriev/go-session-keeper/models"
)

const (
	registerUsername = iota
	registerEmail
	registerPassword
	registerConfirm
)

// RegisterModel is the Bubble Tea model for the registration screen. It
// renders four inputs and a live password-strength meter. On success the
// form is cleared; the session manager shows the success notification and
// schedules the redirect to the login page.
type RegisterModel struct {
	boundDoc
	d *deps

	inputs     []textinput.Model
	focus      int
	submitting bool
}

func NewRegisterModel(d *deps) *RegisterModel {
	fields := make([]textinput.Model, 4)

	fields[registerUsername] = textinput.New()
	fields[registerUsername].Placeholder = "username"
	fields[registerUsername].CharLimit = 64
	fields[registerUsername].Width = 40
	fields[registerUsername].Focus()

	fields[registerEmail] = textinput.New()
	fields[registerEmail].Placeholder = "email (optional)"
	fields[registerEmail].CharLimit = 254
	fields[registerEmail].Width = 40

	fields[registerPassword] = textinput.New()
	fields[registerPassword].Placeholder = "password"
	fields[registerPassword].EchoMode = textinput.EchoPassword
	fields[registerPassword].EchoCharacter = '*'
	fields[registerPassword].Width = 40

	fields[registerConfirm] = textinput.New()
	fields[registerConfirm].Placeholder = "repeat password"
	fields[registerConfirm].EchoMode = textinput.EchoPassword
	fields[registerConfirm].EchoCharacter = '*'
	fields[registerConfirm].Width = 40

	return &RegisterModel{
		d:      d,
		inputs: fields,
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Open(route) tea.Cmd {
	m.submitting = false
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [registerDoneMsg]: clears the submitting state and, on success, the form.
//   - esc: cancels a pending redirect and navigates back to the menu.
//   - tab / shift+tab: moves focus.
//   - enter: hands the form to the session manager.
//
// All other key events are forwarded to the focused input widget.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(registerDoneMsg); ok {
		m.submitting = false
		if result.err == nil {
			m.resetForm()
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.d.services.Sessions.CancelRedirect()
			return m, navigate(models.RouteRoot)
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			m.d.emit(events.Submit, "register-form")
			return m, m.cmdRegister(m.form())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Field            │ Value\n")
	b.WriteString("─────────────────┼────────────────────────────────────\n")
	b.WriteString("Username         │ [")
	b.WriteString(m.inputs[registerUsername].View())
	b.WriteString("]\n")
	b.WriteString("Email            │ [")
	b.WriteString(m.inputs[registerEmail].View())
	b.WriteString("]\n")
	b.WriteString("Password         │ [")
	b.WriteString(m.inputs[registerPassword].View())
	b.WriteString("]\n")
	b.WriteString("Repeat password  │ [")
	b.WriteString(m.inputs[registerConfirm].View())
	b.WriteString("]\n")

	if password := m.inputs[registerPassword].Value(); password != "" {
		b.WriteString("Strength         │ ")
		b.WriteString(m.renderStrength(validators.EvaluatePasswordStrength(password)))
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	return m.d.st.renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) renderStrength(s models.PasswordStrength) string {
	level := models.NotificationError
	switch s.Label() {
	case "medium":
		level = models.NotificationWarning
	case "strong":
		level = models.NotificationSuccess
	}

	meter := strings.Repeat("■", s.Score) + strings.Repeat("□", s.Max-s.Score)
	return m.d.st.level(level).Render(fmt.Sprintf("%s %s", meter, s.Feedback))
}

func (m *RegisterModel) form() models.RegisterForm {
	return models.RegisterForm{
		Username:        strings.TrimSpace(m.inputs[registerUsername].Value()),
		Email:           strings.TrimSpace(m.inputs[registerEmail].Value()),
		Password:        m.inputs[registerPassword].Value(),
		ConfirmPassword: m.inputs[registerConfirm].Value(),
	}
}

func (m *RegisterModel) cmdRegister(form models.RegisterForm) tea.Cmd {
	ctx := m.d.ctx
	sessions := m.d.services.Sessions

	return func() tea.Msg {
		return registerDoneMsg{err: sessions.Register(ctx, form)}
	}
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
