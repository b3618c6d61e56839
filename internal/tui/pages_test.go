// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-session-keeper/internal/app"
	"github.com/MKhiriev/go-session-keeper/internal/events"
	"github.com/MKhiriev/go-session-keeper/models"
)

func TestLogin_PrefillsRememberedUsername(t *testing.T) {
	u := newTestUI(t)
	u.sessions.remembered = "alice"

	u.send(navigateMsg{target: models.RouteLogin})

	login := u.root.current.(*LoginModel)
	assert.Equal(t, "alice", login.inputs[loginFocusUsername].Value())
	assert.True(t, login.remember)
	assert.Equal(t, loginFocusPassword, login.focus)
	assert.Empty(t, login.notice)
}

func TestLogin_SubmitHandsFormToSessionManager(t *testing.T) {
	u := newTestUI(t)
	u.send(navigateMsg{target: models.RouteLogin})

	login := u.root.current.(*LoginModel)
	login.inputs[loginFocusUsername].SetValue(" alice ")
	login.inputs[loginFocusPassword].SetValue("secret1")

	// focus the checkbox and tick it
	u.send(keyType(tea.KeyTab))
	u.send(keyType(tea.KeyTab))
	u.send(keyType(tea.KeySpace))
	require.True(t, login.remember)

	u.send(keyType(tea.KeyEnter))

	require.Len(t, u.sessions.logins, 1)
	assert.Equal(t, models.LoginForm{Username: "alice", Password: "secret1", Remember: true}, u.sessions.logins[0])
	assert.False(t, login.submitting)
	assert.Empty(t, login.inputs[loginFocusPassword].Value())
	assert.Contains(t, u.kinds(), events.Submit)
}

func TestLogin_FailureKeepsPassword(t *testing.T) {
	u := newTestUI(t)
	u.sessions.loginErr = errors.New("rejected")
	u.send(navigateMsg{target: models.RouteLogin})

	login := u.root.current.(*LoginModel)
	login.inputs[loginFocusUsername].SetValue("alice")
	login.inputs[loginFocusPassword].SetValue("wrong")

	u.send(keyType(tea.KeyEnter))

	assert.False(t, login.submitting)
	assert.Equal(t, "wrong", login.inputs[loginFocusPassword].Value())
}

func TestLogin_IgnoresDoubleSubmit(t *testing.T) {
	u := newTestUI(t)
	u.send(navigateMsg{target: models.RouteLogin})
	login := u.root.current.(*LoginModel)

	login.submitting = true
	_, cmd := login.Update(keyType(tea.KeyEnter))
	assert.Nil(t, cmd)
}

func TestRegister_SubmitAndClear(t *testing.T) {
	u := newTestUI(t)
	u.send(navigateMsg{target: models.RouteRegister})

	reg := u.root.current.(*RegisterModel)
	reg.inputs[registerUsername].SetValue("carol")
	reg.inputs[registerEmail].SetValue("carol@example.com")
	reg.inputs[registerPassword].SetValue("abcdef")
	reg.inputs[registerConfirm].SetValue("abcdef")

	assert.Contains(t, u.root.View(), "Strength")

	u.send(keyType(tea.KeyEnter))

	require.Len(t, u.sessions.registers, 1)
	assert.Equal(t, models.RegisterForm{
		Username:        "carol",
		Email:           "carol@example.com",
		Password:        "abcdef",
		ConfirmPassword: "abcdef",
	}, u.sessions.registers[0])
	for i := range reg.inputs {
		assert.Empty(t, reg.inputs[i].Value())
	}
}

func TestRegister_EscCancelsRedirect(t *testing.T) {
	u := newTestUI(t)
	u.send(navigateMsg{target: models.RouteRegister})

	u.send(keyType(tea.KeyEsc))

	assert.Equal(t, 1, u.sessions.cancels)
	assert.IsType(t, &MenuModel{}, u.root.current)
}

func TestRegister_StrengthMeter(t *testing.T) {
	u := newTestUI(t)
	reg := NewRegisterModel(u.root.d)

	reg.inputs[registerPassword].SetValue("Abcdef1!")
	assert.Contains(t, reg.View(), "Strong password!")

	reg.inputs[registerPassword].SetValue("abc")
	assert.Contains(t, reg.View(), "Add: at least 8 characters")
}

func TestHome_CopyUsername(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	u := newTestUI(t)
	u.sessions.session = aliceSession()
	u.send(navigateMsg{target: models.RouteHome})

	u.send(keyRunes("c"))

	assert.Equal(t, "alice", copied)
	assert.Contains(t, u.root.View(), app.MsgUsernameCopied)
}

func TestHome_CopyFailure(t *testing.T) {
	orig := writeClipboard
	writeClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { writeClipboard = orig })

	u := newTestUI(t)
	u.sessions.session = aliceSession()
	u.send(navigateMsg{target: models.RouteHome})

	u.send(keyRunes("c"))
	assert.Contains(t, u.root.View(), app.MsgCopyFailed)
}

func TestHome_GuestCannotCopyOrLogout(t *testing.T) {
	u := newTestUI(t)
	u.send(navigateMsg{target: models.RouteHome})

	home := u.root.current.(*HomeModel)
	assert.Nil(t, home.cmdCopy())

	u.send(keyRunes("o"))
	assert.Zero(t, u.sessions.logouts)
	assert.Contains(t, u.root.View(), "not signed in")
}

func TestHome_Logout(t *testing.T) {
	u := newTestUI(t)
	u.sessions.session = aliceSession()
	u.send(navigateMsg{target: models.RouteHome})

	u.send(keyRunes("o"))

	assert.Equal(t, 1, u.sessions.logouts)
	assert.False(t, u.root.current.(*HomeModel).loggingOut)
}

func TestMenu_EnterNavigates(t *testing.T) {
	u := newTestUI(t)
	u.send(storeChangedMsg{})

	u.send(keyType(tea.KeyDown))
	u.send(keyType(tea.KeyEnter))

	assert.IsType(t, &RegisterModel{}, u.root.current)
	assert.Contains(t, u.kinds(), events.Click)
}

func TestMenu_LogoutAction(t *testing.T) {
	u := newTestUI(t)
	u.sessions.session = aliceSession()
	u.send(storeChangedMsg{})

	u.send(keyType(tea.KeyDown))
	u.send(keyType(tea.KeyEnter))

	assert.Equal(t, 1, u.sessions.logouts)
}
