// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-session-keeper/models"
)

func TestBridge_DropsMessagesWhenDetached(t *testing.T) {
	b := NewBridge()

	b.Navigate(models.RouteHome)
	b.Notify(models.Notification{Message: "lost"})

	_, err := b.Confirm(context.Background(), "sure?")
	require.ErrorIs(t, err, ErrNoScreen)
}

func TestBridge_ForwardsMessages(t *testing.T) {
	b := NewBridge()
	var got []tea.Msg
	b.Attach(func(msg tea.Msg) { got = append(got, msg) })

	b.Navigate(models.RouteHome)
	b.Notify(models.Notification{Scope: models.ScopeLogin, Message: "hi"})

	require.Len(t, got, 2)
	assert.Equal(t, navigateMsg{target: models.RouteHome}, got[0])
	assert.Equal(t, notifyMsg{notification: models.Notification{Scope: models.ScopeLogin, Message: "hi"}}, got[1])
}

func TestBridge_ConfirmWaitsForAnswer(t *testing.T) {
	b := NewBridge()
	b.Attach(func(msg tea.Msg) {
		c := msg.(confirmMsg)
		assert.Equal(t, "stay?", c.prompt)
		go c.answer(true)
	})

	ok, err := b.Confirm(context.Background(), "stay?")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBridge_ConfirmContextDone(t *testing.T) {
	b := NewBridge()
	var got []tea.Msg
	b.Attach(func(msg tea.Msg) { got = append(got, msg) })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	ok, err := b.Confirm(ctx, "stay?")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, ok)

	// the prompt is withdrawn from the screen
	require.Len(t, got, 2)
	prompt := got[0].(confirmMsg)
	assert.Equal(t, confirmCancelMsg{reply: prompt.reply}, got[1])
}

func TestBridge_CloseFailsPendingConfirm(t *testing.T) {
	b := NewBridge()
	sent := make(chan struct{})
	b.Attach(func(tea.Msg) { close(sent) })

	go func() {
		<-sent
		b.Close()
	}()

	ok, err := b.Confirm(context.Background(), "stay?")
	require.ErrorIs(t, err, ErrScreenClosed)
	assert.False(t, ok)

	// closing twice is fine
	b.Close()
}

func TestConfirmAnswerNeverBlocks(t *testing.T) {
	reply := make(chan bool, 1)
	c := confirmMsg{reply: reply}

	c.answer(true)
	c.answer(false)

	assert.True(t, <-reply)
}
