// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBus_RegistrationOrder(t *testing.T) {
	bus := NewBus()
	var order []string

	bus.On(Submit, "first", func(context.Context, Event) { order = append(order, "first") })
	bus.On(Submit, "second", func(context.Context, Event) { order = append(order, "second") })
	bus.On(Submit, "third", func(context.Context, Event) { order = append(order, "third") })
	bus.On(Click, "other", func(context.Context, Event) { order = append(order, "other") })

	bus.Emit(context.Background(), Event{Kind: Submit})

	assert.Equal(t, []string{"first", "second", "third"}, order)
	assert.Equal(t, []string{"first", "second", "third"}, bus.Handlers(Submit))
}

func TestBus_ReplaceKeepsPosition(t *testing.T) {
	bus := NewBus()
	var got []string

	bus.On(KeyDown, "a", func(context.Context, Event) { got = append(got, "a1") })
	bus.On(KeyDown, "b", func(context.Context, Event) { got = append(got, "b") })
	bus.On(KeyDown, "a", func(context.Context, Event) { got = append(got, "a2") })

	bus.Emit(context.Background(), Event{Kind: KeyDown})
	assert.Equal(t, []string{"a2", "b"}, got)
}

func TestBus_Off(t *testing.T) {
	bus := NewBus()
	calls := 0
	bus.On(Scroll, "count", func(context.Context, Event) { calls++ })

	assert.True(t, bus.Off(Scroll, "count"))
	assert.False(t, bus.Off(Scroll, "count"))

	bus.Emit(context.Background(), Event{Kind: Scroll})
	assert.Zero(t, calls)
	assert.Empty(t, bus.Handlers(Scroll))
}

func TestBus_EmitStampsTime(t *testing.T) {
	var zero Bus
	var seen Event
	zero.On(PageLoad, "capture", func(_ context.Context, e Event) { seen = e })

	before := time.Now()
	zero.Emit(context.Background(), Event{Kind: PageLoad, Target: "/home"})

	assert.Equal(t, "/home", seen.Target)
	assert.False(t, seen.At.Before(before))
}

func TestBus_HandlerRegisteringDuringEmit(t *testing.T) {
	bus := NewBus()
	calls := 0
	bus.On(Click, "outer", func(context.Context, Event) {
		bus.On(Click, "inner", func(context.Context, Event) { calls++ })
	})

	bus.Emit(context.Background(), Event{Kind: Click})
	assert.Zero(t, calls)

	bus.Emit(context.Background(), Event{Kind: Click})
	assert.Equal(t, 1, calls)
}

func TestIsActivity(t *testing.T) {
	for _, k := range ActivityKinds {
		assert.True(t, IsActivity(k), k)
	}
	assert.False(t, IsActivity(Submit))
	assert.False(t, IsActivity(StoreChanged))
}
