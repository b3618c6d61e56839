// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/migrations"
)

// DB wraps the SQLite connection pool shared by all repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies pending goose migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
