// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-session-keeper/internal/logger"
)

type localStorageRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewLocalStorageRepository(db *DB, logger *logger.Logger) LocalStorageRepository {
	return &localStorageRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (l *localStorageRepository) GetItems(ctx context.Context, keys ...string) (map[string]string, error) {
	log := logger.FromContext(ctx)

	items := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return items, nil
	}

	query, args, err := buildGetItemsQuery(keys)
	if err != nil {
		log.Err(err).Str("func", "localStorageRepository.GetItems").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localStorageRepository.GetItems").
			Strs("keys", keys).
			Msg("failed to execute query for local storage items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var name, value string
		if err = rows.Scan(&name, &value); err != nil {
			log.Err(err).Str("func", "localStorageRepository.GetItems").Msg("failed to scan local storage row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items[name] = value
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "localStorageRepository.GetItems").Msg("error during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (l *localStorageRepository) SetItems(ctx context.Context, items map[string]string) error {
	log := logger.FromContext(ctx)

	if len(items) == 0 {
		return nil
	}

	query, args, err := buildSetItemsQuery(items, l.now())
	if err != nil {
		log.Err(err).Str("func", "localStorageRepository.SetItems").Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localStorageRepository.SetItems").
			Int("count", len(items)).
			Msg("failed to upsert local storage items")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localStorageRepository) RemoveItems(ctx context.Context, keys ...string) error {
	log := logger.FromContext(ctx)

	if len(keys) == 0 {
		return nil
	}

	query, args, err := buildRemoveItemsQuery(keys)
	if err != nil {
		log.Err(err).Str("func", "localStorageRepository.RemoveItems").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localStorageRepository.RemoveItems").
			Strs("keys", keys).
			Msg("failed to delete local storage items")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
