// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify keeps the notifications currently on screen. Each scope
// holds at most one notification; showing a new one replaces the previous.
package notify

import (
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-session-keeper/models"
)

// Entry is a notification on the board. ID changes on every Show, so an
// auto-dismiss timer armed for a replaced notification cannot remove its
// successor.
type Entry struct {
	models.Notification
	ID        uint64
	ShownAt   time.Time
	ExpiresAt time.Time
}

// Board is safe for concurrent use.
type Board struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	nextID  uint64
	entries map[string]Entry
}

// NewBoard returns a board whose entries expire after ttl. A non-positive ttl
// keeps entries until dismissed.
func NewBoard(ttl time.Duration) *Board {
	return &Board{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]Entry),
	}
}

// TTL returns the auto-dismiss delay.
func (b *Board) TTL() time.Duration {
	return b.ttl
}

// Show puts n on the board, replacing any entry in the same scope, and
// returns the new entry. An empty scope is treated as [models.ScopeGlobal].
func (b *Board) Show(n models.Notification) Entry {
	if n.Scope == "" {
		n.Scope = models.ScopeGlobal
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	now := b.now()
	e := Entry{Notification: n, ID: b.nextID, ShownAt: now}
	if b.ttl > 0 {
		e.ExpiresAt = now.Add(b.ttl)
	}
	b.entries[n.Scope] = e

	return e
}

// Dismiss removes the entry of scope if it still has the given id.
func (b *Board) Dismiss(scope string, id uint64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.entries[scope]
	if !ok || e.ID != id {
		return false
	}
	delete(b.entries, scope)
	return true
}

// Clear removes the entry of scope regardless of its id.
func (b *Board) Clear(scope string) {
	b.mu.Lock()
	delete(b.entries, scope)
	b.mu.Unlock()
}

// Sweep removes every expired entry and returns how many were removed.
func (b *Board) Sweep() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	removed := 0
	for scope, e := range b.entries {
		if !e.ExpiresAt.IsZero() && !now.Before(e.ExpiresAt) {
			delete(b.entries, scope)
			removed++
		}
	}
	return removed
}

// Current returns the entry of scope.
func (b *Board) Current(scope string) (Entry, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.entries[scope]
	return e, ok
}

// All returns every entry, oldest first.
func (b *Board) All() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Entry, 0, len(b.entries))
	for _, e := range b.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
