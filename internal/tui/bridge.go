// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-session-keeper/models"
)

// Bridge lets code outside the Bubble Tea loop drive the screen. It
// implements service.UI by turning every call into a message for the running
// program. Bridge is safe for concurrent use.
type Bridge struct {
	mu   sync.RWMutex
	send func(tea.Msg)

	done      chan struct{}
	closeOnce sync.Once
}

func NewBridge() *Bridge {
	return &Bridge{done: make(chan struct{})}
}

// Attach routes messages to send, usually (*tea.Program).Send.
func (b *Bridge) Attach(send func(tea.Msg)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.send = send
}

// Close detaches the program and fails every pending Confirm.
func (b *Bridge) Close() {
	b.mu.Lock()
	b.send = nil
	b.mu.Unlock()

	b.closeOnce.Do(func() { close(b.done) })
}

// Send delivers msg to the program. It is dropped when nothing is attached.
func (b *Bridge) Send(msg tea.Msg) {
	if send := b.sender(); send != nil {
		send(msg)
	}
}

func (b *Bridge) Navigate(target string) {
	b.Send(navigateMsg{target: target})
}

func (b *Bridge) Notify(n models.Notification) {
	b.Send(notifyMsg{notification: n})
}

// Confirm shows prompt as a modal and blocks until it is answered, ctx is
// done or the program exits. It must not be called from the Update loop.
func (b *Bridge) Confirm(ctx context.Context, prompt string) (bool, error) {
	send := b.sender()
	if send == nil {
		return false, ErrNoScreen
	}

	reply := make(chan bool, 1)
	send(confirmMsg{prompt: prompt, reply: reply})

	select {
	case answer := <-reply:
		return answer, nil
	case <-ctx.Done():
		b.Send(confirmCancelMsg{reply: reply})
		return false, ctx.Err()
	case <-b.done:
		return false, ErrScreenClosed
	}
}

func (b *Bridge) sender() func(tea.Msg) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.send
}
