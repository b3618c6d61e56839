// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-session-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocalStorageRepository is the low-level key/value repository backed by the
// local_storage table. Every method touches all given keys in a single SQL
// statement, so a concurrent reader never observes half of a write.
type LocalStorageRepository interface {
	// GetItems returns the values of the requested keys. Missing keys are
	// absent from the result map.
	GetItems(ctx context.Context, keys ...string) (map[string]string, error)
	// SetItems inserts or overwrites all given items.
	SetItems(ctx context.Context, items map[string]string) error
	// RemoveItems deletes the given keys. Removing an absent key is not an error.
	RemoveItems(ctx context.Context, keys ...string) error
}

// SessionRepository persists the authenticated session and the
// "remember me" state on top of [LocalStorageRepository].
type SessionRepository interface {
	// LoadSession reads token, profile and remember state. A profile that
	// cannot be decoded, or a token that cannot be opened, is treated as
	// absent.
	LoadSession(ctx context.Context) (models.Session, error)
	// SaveSession stores token and profile together.
	SaveSession(ctx context.Context, token string, profile models.Profile) error
	// ClearSession removes token and profile, keeping the remember state.
	ClearSession(ctx context.Context) error
	// SaveRemember stores the remember flag and the username to pre-fill.
	SaveRemember(ctx context.Context, username string) error
	// ClearRemember removes the remember flag and the remembered username.
	ClearRemember(ctx context.Context) error
	// ClearAll removes every session key.
	ClearAll(ctx context.Context) error
}

// PreferencesRepository persists UI preferences, which outlive any session.
type PreferencesRepository interface {
	LoadPreferences(ctx context.Context) (models.Preferences, error)
	SavePreferences(ctx context.Context, prefs models.Preferences) error
}
