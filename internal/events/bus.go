// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events is the abstract event source of the client. Named handlers
// are registered per event kind and run synchronously, in registration order,
// on the goroutine that emits the event.
package events

import (
	"context"
	"sync"
	"time"
)

// Kind identifies an event.
type Kind string

// Activity kinds. Any of them counts as user activity for the inactivity
// monitor.
const (
	PointerDown Kind = "pointer_down"
	PointerMove Kind = "pointer_move"
	KeyDown     Kind = "key_down"
	Scroll      Kind = "scroll"
	TouchStart  Kind = "touch_start"
)

// Lifecycle and interaction kinds.
const (
	PageLoad     Kind = "page_load"
	Submit       Kind = "submit"
	Click        Kind = "click"
	StoreChanged Kind = "store_changed"
)

// ActivityKinds lists the kinds that reset the inactivity countdown.
var ActivityKinds = []Kind{PointerDown, PointerMove, KeyDown, Scroll, TouchStart}

// IsActivity reports whether k is one of [ActivityKinds].
func IsActivity(k Kind) bool {
	for _, a := range ActivityKinds {
		if a == k {
			return true
		}
	}
	return false
}

// Event is one occurrence of a Kind. Target names the element or page the
// event originated from, if any.
type Event struct {
	Kind   Kind
	Target string
	At     time.Time
}

// Handler reacts to an event.
type Handler func(ctx context.Context, e Event)

type namedHandler struct {
	name string
	fn   Handler
}

// Bus dispatches events to registered handlers. The zero value is ready to
// use.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Kind][]namedHandler
}

func NewBus() *Bus {
	return &Bus{}
}

// On registers fn under name for kind. Registering the same name again for
// the same kind replaces the earlier handler in place, keeping its position.
func (b *Bus) On(kind Kind, name string, fn Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers == nil {
		b.handlers = make(map[Kind][]namedHandler)
	}

	list := b.handlers[kind]
	for i := range list {
		if list[i].name == name {
			list[i].fn = fn
			return
		}
	}
	b.handlers[kind] = append(list, namedHandler{name: name, fn: fn})
}

// Off removes the handler registered under name for kind. It reports
// whether one was removed.
func (b *Bus) Off(kind Kind, name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.handlers[kind]
	for i := range list {
		if list[i].name == name {
			b.handlers[kind] = append(list[:i:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// Emit calls every handler registered for e.Kind in registration order.
// A zero e.At is set to the current time. Handlers may register or remove
// handlers; such changes take effect from the next Emit.
func (b *Bus) Emit(ctx context.Context, e Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}

	b.mu.RLock()
	list := append([]namedHandler(nil), b.handlers[e.Kind]...)
	b.mu.RUnlock()

	for _, h := range list {
		h.fn(ctx, e)
	}
}

// Handlers returns the names registered for kind, in dispatch order.
func (b *Bus) Handlers(kind Kind) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.handlers[kind]))
	for _, h := range b.handlers[kind] {
		names = append(names, h.name)
	}
	return names
}
