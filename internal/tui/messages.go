// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/go-session-keeper/models"
)

// navigateMsg switches the visible page. target is a route such as
// "/login?timeout=true".
type navigateMsg struct {
	target string
}

type notifyMsg struct {
	notification models.Notification
}

// dismissMsg auto-dismisses a notification. A newer notification in the same
// scope carries a different id and survives.
type dismissMsg struct {
	scope string
	id    uint64
}

// confirmMsg asks the user a yes/no question. The answer is written to reply,
// which is buffered so an abandoned prompt never blocks the UI.
type confirmMsg struct {
	prompt string
	reply  chan<- bool
}

// confirmCancelMsg withdraws the prompt answering to reply once nobody waits
// for its answer.
type confirmCancelMsg struct {
	reply chan<- bool
}

// bootstrapMsg carries the result of bootstrap number seq. Results of older
// bootstraps that arrive late are dropped.
type bootstrapMsg struct {
	seq  uint64
	view models.AuthView
	err  error
}

type storeChangedMsg struct{}

type tickMsg struct {
	at time.Time
}

type rememberedMsg struct {
	username string
}

type loginDoneMsg struct {
	err error
}

type registerDoneMsg struct {
	err error
}

type logoutDoneMsg struct {
	confirmed bool
	err       error
}

type copiedMsg struct {
	err error
}

type prefsMsg struct {
	prefs models.Preferences
	err   error
}
