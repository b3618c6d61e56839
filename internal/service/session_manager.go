// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-session-keeper/internal/adapter"
	"github.com/MKhiriev/go-session-keeper/internal/app"
	"github.com/MKhiriev/go-session-keeper/internal/config"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/store"
	"github.com/MKhiriev/go-session-keeper/internal/validators"
	"github.com/MKhiriev/go-session-keeper/internal/view"
	"github.com/MKhiriev/go-session-keeper/models"
)

type sessionManager struct {
	sessions  store.SessionRepository
	adapter   adapter.ServerAdapter
	validator *validators.AuthFormValidator
	ui        UI
	clock     Clock
	cfg       config.ClientSession

	monitor InactivityMonitor

	mu       sync.Mutex
	redirect Timer
}

// NewSessionManager wires a [SessionManager]. The inactivity monitor is
// attached later by [NewClientServices] because it calls back into the
// manager on expiry.
func NewSessionManager(
	sessions store.SessionRepository,
	serverAdapter adapter.ServerAdapter,
	ui UI,
	clock Clock,
	cfg config.ClientSession,
) SessionManager {
	return newSessionManager(sessions, serverAdapter, ui, clock, cfg)
}

func newSessionManager(
	sessions store.SessionRepository,
	serverAdapter adapter.ServerAdapter,
	ui UI,
	clock Clock,
	cfg config.ClientSession,
) *sessionManager {
	return &sessionManager{
		sessions:  sessions,
		adapter:   serverAdapter,
		validator: validators.NewAuthFormValidator(cfg.MinPasswordLength),
		ui:        ui,
		clock:     clock,
		cfg:       cfg,
	}
}

func (s *sessionManager) Bootstrap(ctx context.Context) (models.AuthView, error) {
	log := logger.FromContext(ctx)

	session, err := s.sessions.LoadSession(ctx)
	if err != nil {
		log.Err(err).Str("func", "sessionManager.Bootstrap").Msg("failed to load session, showing guest view")
		s.adapter.SetToken("")
		if s.monitor != nil {
			s.monitor.Stop()
		}
		return view.Project(models.Session{}), err
	}

	s.adapter.SetToken(session.Token)

	if s.monitor != nil {
		if err = s.monitor.Init(ctx); err != nil {
			log.Err(err).Str("func", "sessionManager.Bootstrap").Msg("failed to initialise inactivity monitor")
		}
	}

	v := view.Project(session)
	log.Debug().
		Str("func", "sessionManager.Bootstrap").
		Stringer("state", v.State).
		Msg("session bootstrapped")

	return v, nil
}

func (s *sessionManager) Login(ctx context.Context, form models.LoginForm) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, form); err != nil {
		s.notifyError(models.ScopeLogin, err, app.MsgLoginFailed)
		return err
	}

	req := form.Request()
	resp, err := s.adapter.Login(ctx, req)
	if err != nil {
		log.Warn().Err(err).Str("func", "sessionManager.Login").Str("username", req.Username).Msg("login rejected")
		s.notifyError(models.ScopeLogin, err, app.MsgLoginFailed)
		return fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	if err = s.sessions.SaveSession(ctx, resp.Token, resp.User); err != nil {
		log.Err(err).Str("func", "sessionManager.Login").Msg("failed to store session")
		s.adapter.SetToken("")
		s.ui.Notify(models.Notification{Scope: models.ScopeLogin, Level: models.NotificationError, Message: app.MsgSessionNotSaved})
		return fmt.Errorf("%w: %w", ErrSessionNotSaved, err)
	}

	if form.Remember {
		err = s.sessions.SaveRemember(ctx, req.Username)
	} else {
		err = s.sessions.ClearRemember(ctx)
	}
	if err != nil {
		log.Warn().Err(err).Str("func", "sessionManager.Login").Msg("failed to update remembered username")
	}

	target := strings.TrimSpace(resp.Redirect)
	if target == "" {
		target = models.RouteHome
	}

	log.Info().Str("func", "sessionManager.Login").Str("username", req.Username).Str("redirect", target).Msg("logged in")
	s.ui.Navigate(target)

	return nil
}

func (s *sessionManager) Register(ctx context.Context, form models.RegisterForm) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, form); err != nil {
		s.notifyError(models.ScopeRegister, err, app.MsgRegistrationFailed)
		return err
	}

	req := form.Request()
	resp, err := s.adapter.Register(ctx, req)
	if err != nil {
		log.Warn().Err(err).Str("func", "sessionManager.Register").Str("username", req.Username).Msg("registration rejected")
		s.notifyError(models.ScopeRegister, err, app.MsgRegistrationFailed)
		return fmt.Errorf("%w: %w", ErrRegisterOnServer, err)
	}

	msg := strings.TrimSpace(resp.Message)
	if msg == "" {
		msg = app.MsgRegistrationSucceeded
	}
	s.ui.Notify(models.Notification{Scope: models.ScopeRegister, Level: models.NotificationSuccess, Message: msg})

	s.scheduleRedirect(models.RouteLogin)
	log.Info().Str("func", "sessionManager.Register").Str("username", req.Username).Msg("registered")

	return nil
}

func (s *sessionManager) scheduleRedirect(target string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.redirect != nil {
		s.redirect.Stop()
	}

	var t Timer
	t = s.clock.AfterFunc(s.cfg.RegisterRedirectDelay, func() {
		s.mu.Lock()
		current := s.redirect == t
		if current {
			s.redirect = nil
		}
		s.mu.Unlock()

		if current {
			s.ui.Navigate(target)
		}
	})
	s.redirect = t
}

func (s *sessionManager) CancelRedirect() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.redirect == nil {
		return false
	}
	s.redirect.Stop()
	s.redirect = nil
	return true
}

func (s *sessionManager) Logout(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	confirmed, err := s.ui.Confirm(ctx, app.MsgLogoutPrompt)
	if err != nil {
		return false, fmt.Errorf("logout confirmation: %w", err)
	}
	if !confirmed {
		log.Debug().Str("func", "sessionManager.Logout").Msg("logout declined")
		return false, nil
	}

	if err = s.adapter.Logout(ctx); err != nil {
		log.Warn().Err(err).Str("func", "sessionManager.Logout").Msg("server logout failed, clearing local session anyway")
	}

	if err = s.sessions.ClearAll(ctx); err != nil {
		log.Err(err).Str("func", "sessionManager.Logout").Msg("failed to clear session")
		s.ui.Notify(models.Notification{Scope: models.ScopeSession, Level: models.NotificationError, Message: app.MsgLogoutFailed})
		return true, fmt.Errorf("%w: %w", ErrSessionNotCleared, err)
	}

	if s.monitor != nil {
		s.monitor.Stop()
	}

	log.Info().Str("func", "sessionManager.Logout").Msg("logged out")
	s.ui.Navigate(models.RouteRoot)

	return true, nil
}

// expire is the LOGGED_OUT action of the inactivity monitor: token and
// profile are removed and the login page is opened with the timeout flag.
func (s *sessionManager) expire(ctx context.Context) {
	log := logger.FromContext(ctx)

	if err := s.sessions.ClearSession(ctx); err != nil {
		log.Err(err).Str("func", "sessionManager.expire").Msg("failed to clear expired session")
	}
	s.adapter.SetToken("")

	log.Info().Str("func", "sessionManager.expire").Msg("session expired after inactivity")
	s.ui.Navigate(models.RouteLoginTimeout)
}

func (s *sessionManager) RememberedUsername(ctx context.Context) (string, error) {
	session, err := s.sessions.LoadSession(ctx)
	if err != nil {
		return "", err
	}
	if !session.RememberFlag {
		return "", nil
	}
	return session.RememberUsername, nil
}

func (s *sessionManager) TokenInfo() models.TokenInfo {
	return adapter.InspectToken(s.adapter.Token())
}

func (s *sessionManager) notifyError(scope string, err error, fallback string) {
	s.ui.Notify(models.Notification{
		Scope:   scope,
		Level:   models.NotificationError,
		Message: userMessage(err, fallback, s.validator.MinPasswordLength()),
	})
}
