// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-session-keeper/internal/crypto"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/models"
)

const rememberMeValue = "true"

type sessionRepository struct {
	items  LocalStorageRepository
	sealer crypto.Sealer
	logger *logger.Logger
}

func NewSessionRepository(items LocalStorageRepository, sealer crypto.Sealer, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		items:  items,
		sealer: sealer,
		logger: logger,
	}
}

func (s *sessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	stored, err := s.items.GetItems(ctx, sessionKeys...)
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to load session: %w", err)
	}

	var session models.Session

	if sealed := stored[KeyAuthToken]; sealed != "" {
		token, openErr := s.sealer.Open(sealed)
		if openErr != nil {
			log.Warn().Err(openErr).
				Str("func", "sessionRepository.LoadSession").
				Msg("stored token cannot be opened, treating session as guest")
		} else {
			session.Token = token
		}
	}

	if raw, ok := stored[KeyUserData]; ok {
		profile, decodeErr := decodeProfile(raw)
		if decodeErr != nil {
			log.Warn().Err(decodeErr).
				Str("func", "sessionRepository.LoadSession").
				Msg("stored user data is corrupt, treating profile as absent")
		} else {
			session.Profile = profile
		}
	}

	session.RememberFlag = stored[KeyRememberMe] == rememberMeValue
	session.RememberUsername = stored[KeyRememberedUsername]

	return session, nil
}

func (s *sessionRepository) SaveSession(ctx context.Context, token string, profile models.Profile) error {
	if token == "" || profile == nil {
		return ErrIncompleteSession
	}

	userData, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingProfile, err)
	}

	sealed, err := s.sealer.Seal(token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSealingToken, err)
	}

	return s.items.SetItems(ctx, map[string]string{
		KeyAuthToken: sealed,
		KeyUserData:  string(userData),
	})
}

func (s *sessionRepository) ClearSession(ctx context.Context) error {
	return s.items.RemoveItems(ctx, KeyAuthToken, KeyUserData)
}

func (s *sessionRepository) SaveRemember(ctx context.Context, username string) error {
	return s.items.SetItems(ctx, map[string]string{
		KeyRememberMe:         rememberMeValue,
		KeyRememberedUsername: username,
	})
}

func (s *sessionRepository) ClearRemember(ctx context.Context) error {
	return s.items.RemoveItems(ctx, KeyRememberMe, KeyRememberedUsername)
}

func (s *sessionRepository) ClearAll(ctx context.Context) error {
	return s.items.RemoveItems(ctx, sessionKeys...)
}

func decodeProfile(raw string) (models.Profile, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()

	var profile models.Profile
	if err := dec.Decode(&profile); err != nil {
		return nil, err
	}
	return profile, nil
}
