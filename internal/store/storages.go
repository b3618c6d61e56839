// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-session-keeper/internal/config"
	"github.com/MKhiriev/go-session-keeper/internal/crypto"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
)

// ClientStorages groups all client-side repositories into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	// LocalStorage is the raw key/value repository. The store watcher and
	// diagnostics read it directly.
	LocalStorage LocalStorageRepository
	// Sessions persists token, profile and remember state.
	Sessions SessionRepository
	// Preferences persists theme and language.
	Preferences PreferencesRepository

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. opens the SQLite database at cfg.DB.DSN,
//  2. runs pending schema migrations via [DB.Migrate],
//  3. wires the repositories on top of the connection.
//
// sealer protects the auth token at rest; pass a no-op sealer to store it in
// the clear.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, sealer crypto.Sealer, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, sealer, logger), nil
}

func newClientStorages(db *DB, sealer crypto.Sealer, logger *logger.Logger) *ClientStorages {
	items := NewLocalStorageRepository(db, logger)
	return &ClientStorages{
		LocalStorage: items,
		Sessions:     NewSessionRepository(items, sealer, logger),
		Preferences:  NewPreferencesRepository(items),
		db:           db,
	}
}

// Close releases the underlying database connection.
func (c *ClientStorages) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}
