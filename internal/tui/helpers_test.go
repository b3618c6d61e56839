// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-session-keeper/internal/events"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/service"
	"github.com/MKhiriev/go-session-keeper/internal/view"
	"github.com/MKhiriev/go-session-keeper/models"
)

// fakeSessions is a spy [service.SessionManager].
type fakeSessions struct {
	mu sync.Mutex

	session    models.Session
	bootstraps int
	logins     []models.LoginForm
	registers  []models.RegisterForm
	loginErr   error
	cancels    int
	logouts    int
	remembered string
	token      models.TokenInfo
}

func (f *fakeSessions) Bootstrap(context.Context) (models.AuthView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bootstraps++
	return view.Project(f.session), nil
}

func (f *fakeSessions) Login(_ context.Context, form models.LoginForm) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logins = append(f.logins, form)
	return f.loginErr
}

func (f *fakeSessions) Register(_ context.Context, form models.RegisterForm) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registers = append(f.registers, form)
	return nil
}

func (f *fakeSessions) CancelRedirect() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancels++
	return true
}

func (f *fakeSessions) Logout(context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logouts++
	return true, nil
}

func (f *fakeSessions) RememberedUsername(context.Context) (string, error) {
	return f.remembered, nil
}

func (f *fakeSessions) TokenInfo() models.TokenInfo {
	return f.token
}

type fakePreferences struct {
	prefs models.Preferences
}

func (f *fakePreferences) Load(context.Context) (models.Preferences, error) {
	return f.prefs, nil
}

func (f *fakePreferences) Save(_ context.Context, prefs models.Preferences) error {
	f.prefs = prefs
	return nil
}

func (f *fakePreferences) ToggleTheme(context.Context) (models.Preferences, error) {
	if f.prefs.Theme == models.ThemeLight {
		f.prefs.Theme = models.ThemeDark
	} else {
		f.prefs.Theme = models.ThemeLight
	}
	return f.prefs, nil
}

type testUI struct {
	root     RootModel
	sessions *fakeSessions
	prefs    *fakePreferences
	bus      *events.Bus
	events   *[]events.Event
}

func newTestUI(t *testing.T) *testUI {
	t.Helper()

	sessions := &fakeSessions{}
	prefs := &fakePreferences{prefs: models.Preferences{Theme: models.ThemeDark}}
	bus := events.NewBus()

	var seen []events.Event
	record := func(_ context.Context, e events.Event) { seen = append(seen, e) }
	for _, kind := range append([]events.Kind{events.PageLoad, events.Submit, events.Click}, events.ActivityKinds...) {
		bus.On(kind, "test-recorder", record)
	}

	ui := New(
		&service.ClientServices{Sessions: sessions, Preferences: prefs},
		bus,
		NewBridge(),
		0,
		models.NewAppBuildInfo("1.0.0", "", ""),
		logger.Nop(),
	)

	return &testUI{
		root:     ui.newRootModel(context.Background()),
		sessions: sessions,
		prefs:    prefs,
		bus:      bus,
		events:   &seen,
	}
}

// send feeds msg to the root model and runs the resulting commands,
// feeding the package's own messages back until nothing is left. The board
// TTL is zero, so no dismiss timer is ever armed.
func (u *testUI) send(msg tea.Msg) {
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		model, cmd := u.root.Update(next)
		u.root = model.(RootModel)
		queue = append(queue, runCmd(cmd)...)
	}
}

func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, runCmd(c)...)
		}
		return out
	case navigateMsg, notifyMsg, confirmMsg, confirmCancelMsg, bootstrapMsg, storeChangedMsg, rememberedMsg,
		loginDoneMsg, registerDoneMsg, logoutDoneMsg, copiedMsg, prefsMsg:
		return []tea.Msg{msg}
	default:
		// cursor blinks and quit
		return nil
	}
}

func (u *testUI) kinds() []events.Kind {
	out := make([]events.Kind, 0, len(*u.events))
	for _, e := range *u.events {
		out = append(out, e.Kind)
	}
	return out
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func aliceSession() models.Session {
	return models.Session{
		Token:   "abc",
		Profile: models.Profile{"username": "alice", "email": "alice@example.com"},
	}
}
