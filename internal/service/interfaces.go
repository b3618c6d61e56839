// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client session manager: bootstrap of the
// UI state from the local store, login, registration, logout, inactivity
// expiry and display preferences.
//
// The package never imports the UI. Everything it needs from the screen is
// expressed by [Navigator], [Notifier] and [Confirmer], and time is read
// through [Clock] so the inactivity state machine can be driven in tests.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-session-keeper/internal/events"
	"github.com/MKhiriev/go-session-keeper/models"
)

// Navigator switches the visible page. Targets are routes such as
// [models.RouteHome], optionally with a query string.
type Navigator interface {
	Navigate(target string)
}

// Notifier shows a transient message. A notification replaces the previous
// one in the same scope.
type Notifier interface {
	Notify(n models.Notification)
}

// Confirmer asks the user a yes/no question and blocks until it is answered
// or ctx is done. Dismissing the prompt counts as "no".
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// UI groups the screen-side collaborators.
type UI interface {
	Navigator
	Notifier
	Confirmer
}

// Timer is a pending AfterFunc call.
type Timer interface {
	// Stop prevents the call from firing. It reports whether the call was
	// stopped before it fired.
	Stop() bool
}

// Clock abstracts time for timers.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// SessionManager mediates every change of the local session.
type SessionManager interface {
	// Bootstrap reads token and profile from the store and returns the UI
	// projection. It is idempotent and writes nothing. It also syncs the
	// adapter token and (re)initialises the inactivity monitor.
	Bootstrap(ctx context.Context) (models.AuthView, error)

	// Login validates form, sends one login request and, on success, stores
	// the session and navigates to the server-supplied redirect or
	// [models.RouteHome]. On failure it shows one error notification in the
	// login scope and leaves the store untouched.
	Login(ctx context.Context, form models.LoginForm) error

	// Register checks the local preconditions, then sends one registration
	// request. On success it shows a success notification and navigates to
	// [models.RouteLogin] after the configured delay.
	Register(ctx context.Context, form models.RegisterForm) error

	// CancelRedirect cancels a pending post-registration redirect. It
	// reports whether one was pending.
	CancelRedirect() bool

	// Logout asks for confirmation and, if given, clears the session and
	// navigates to [models.RouteRoot]. It reports whether the user confirmed.
	Logout(ctx context.Context) (bool, error)

	// RememberedUsername returns the username to pre-fill on the login form,
	// or "" when the user did not opt in.
	RememberedUsername(ctx context.Context) (string, error)

	// TokenInfo describes the token currently held by the adapter.
	TokenInfo() models.TokenInfo
}

// InactivityMonitor expires the session after a period without user
// activity.
type InactivityMonitor interface {
	// Init arms an idle monitor if an authenticated session is stored and
	// stops it otherwise. A running countdown is not restarted.
	Init(ctx context.Context) error
	// OnActivity resets the countdown while the monitor is active.
	OnActivity(ctx context.Context, e events.Event)
	// Register subscribes OnActivity to every activity kind on bus.
	Register(bus *events.Bus)
	// Stop disarms the monitor.
	Stop()
	// State returns the current state.
	State() MonitorState
}

// PreferencesService reads and changes display preferences.
type PreferencesService interface {
	Load(ctx context.Context) (models.Preferences, error)
	Save(ctx context.Context, prefs models.Preferences) error
	// ToggleTheme switches between light and dark and persists the result.
	ToggleTheme(ctx context.Context) (models.Preferences, error)
}
