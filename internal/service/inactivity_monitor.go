// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-session-keeper/internal/app"
	"github.com/MKhiriev/go-session-keeper/internal/events"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/store"
)

// DefaultInactivityTimeout is used when the configured timeout is not positive.
const DefaultInactivityTimeout = 30 * time.Minute

const monitorHandlerName = "inactivity-monitor"

// MonitorState is a state of the inactivity state machine.
type MonitorState int

const (
	// MonitorIdle: not armed. Initial state, and the state after Stop or
	// after the countdown elapsed with no token stored.
	MonitorIdle MonitorState = iota
	// MonitorActive: countdown running; activity restarts it.
	MonitorActive
	// MonitorExpiredPrompted: countdown elapsed, the user is being asked
	// whether to stay logged in. Activity is ignored.
	MonitorExpiredPrompted
	// MonitorLoggedOut: the user declined; the session was cleared.
	MonitorLoggedOut
)

// String returns a string representation of the MonitorState.
func (s MonitorState) String() string {
	switch s {
	case MonitorIdle:
		return "IDLE"
	case MonitorActive:
		return "ACTIVE"
	case MonitorExpiredPrompted:
		return "EXPIRED_PROMPTED"
	case MonitorLoggedOut:
		return "LOGGED_OUT"
	default:
		return "UNKNOWN"
	}
}

type inactivityMonitor struct {
	timeout   time.Duration
	clock     Clock
	sessions  store.SessionRepository
	confirmer Confirmer
	onExpire  func(ctx context.Context)

	mu    sync.Mutex
	state MonitorState
	timer Timer
	// generation invalidates timers and prompts that belong to an earlier
	// arming. It changes on every reset, Stop and Init.
	generation uint64
	ctx        context.Context
	// cancelPrompt withdraws the expiry prompt while one is on screen.
	cancelPrompt context.CancelFunc
}

// NewInactivityMonitor returns an idle monitor. onExpire runs when the user
// declines to stay logged in.
func NewInactivityMonitor(
	timeout time.Duration,
	clock Clock,
	sessions store.SessionRepository,
	confirmer Confirmer,
	onExpire func(ctx context.Context),
) InactivityMonitor {
	return newInactivityMonitor(timeout, clock, sessions, confirmer, onExpire)
}

func newInactivityMonitor(
	timeout time.Duration,
	clock Clock,
	sessions store.SessionRepository,
	confirmer Confirmer,
	onExpire func(ctx context.Context),
) *inactivityMonitor {
	if timeout <= 0 {
		timeout = DefaultInactivityTimeout
	}
	if onExpire == nil {
		onExpire = func(context.Context) {}
	}
	return &inactivityMonitor{
		timeout:   timeout,
		clock:     clock,
		sessions:  sessions,
		confirmer: confirmer,
		onExpire:  onExpire,
		ctx:       context.Background(),
	}
}

// Init arms the monitor when an authenticated session is stored. A running
// countdown or an open prompt is left alone: only activity restarts the
// countdown.
func (m *inactivityMonitor) Init(ctx context.Context) error {
	authenticated, err := m.authenticated(ctx)
	if err != nil {
		m.Stop()
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.ctx = context.WithoutCancel(ctx)

	if !authenticated {
		m.stopLocked(MonitorIdle)
		return nil
	}
	if m.state == MonitorActive || m.state == MonitorExpiredPrompted {
		return nil
	}

	m.state = MonitorActive
	m.resetLocked()
	return nil
}

func (m *inactivityMonitor) OnActivity(_ context.Context, _ events.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != MonitorActive {
		return
	}
	m.resetLocked()
}

func (m *inactivityMonitor) Register(bus *events.Bus) {
	for _, kind := range events.ActivityKinds {
		bus.On(kind, monitorHandlerName, m.OnActivity)
	}
}

func (m *inactivityMonitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked(MonitorIdle)
}

func (m *inactivityMonitor) State() MonitorState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *inactivityMonitor) stopLocked(next MonitorState) {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	if m.cancelPrompt != nil {
		m.cancelPrompt()
		m.cancelPrompt = nil
	}
	m.generation++
	m.state = next
}

// resetLocked restarts the countdown. Any earlier timer is stopped and, if it
// is already firing, ignored through the generation check.
func (m *inactivityMonitor) resetLocked() {
	if m.timer != nil {
		m.timer.Stop()
	}
	m.generation++
	gen := m.generation
	m.timer = m.clock.AfterFunc(m.timeout, func() { m.elapse(gen) })
}

// elapse runs on the timer goroutine when the countdown of generation gen
// reaches zero.
func (m *inactivityMonitor) elapse(gen uint64) {
	m.mu.Lock()
	if gen != m.generation || m.state != MonitorActive {
		m.mu.Unlock()
		return
	}
	m.timer = nil
	ctx := m.ctx
	m.mu.Unlock()

	log := logger.FromContext(ctx)

	authenticated, err := m.authenticated(ctx)
	if err != nil || !authenticated {
		if err != nil {
			log.Err(err).Str("func", "inactivityMonitor.elapse").Msg("failed to read session, disarming")
		}
		m.mu.Lock()
		if gen == m.generation {
			m.stopLocked(MonitorIdle)
		}
		m.mu.Unlock()
		return
	}

	m.mu.Lock()
	if gen != m.generation {
		m.mu.Unlock()
		return
	}
	m.state = MonitorExpiredPrompted
	promptCtx, cancel := context.WithCancel(ctx)
	m.cancelPrompt = cancel
	m.mu.Unlock()
	defer cancel()

	log.Info().Str("func", "inactivityMonitor.elapse").Dur("timeout", m.timeout).Msg("inactivity timeout reached, prompting")

	stay, err := m.confirmer.Confirm(promptCtx, app.MsgSessionExpiryPrompt)
	if err != nil {
		log.Warn().Err(err).Str("func", "inactivityMonitor.elapse").Msg("expiry prompt failed, treating as decline")
		stay = false
	}

	m.mu.Lock()
	if gen != m.generation || m.state != MonitorExpiredPrompted {
		m.mu.Unlock()
		return
	}
	m.cancelPrompt = nil
	if stay {
		m.state = MonitorActive
		m.resetLocked()
		m.mu.Unlock()
		return
	}
	m.stopLocked(MonitorLoggedOut)
	m.mu.Unlock()

	m.onExpire(ctx)
}

// authenticated applies the same test as the session view: token and profile
// must both be readable.
func (m *inactivityMonitor) authenticated(ctx context.Context) (bool, error) {
	session, err := m.sessions.LoadSession(ctx)
	if err != nil {
		return false, err
	}
	return session.IsAuthenticated(), nil
}
