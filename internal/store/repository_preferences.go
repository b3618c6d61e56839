// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-session-keeper/models"
)

type preferencesRepository struct {
	items LocalStorageRepository
}

func NewPreferencesRepository(items LocalStorageRepository) PreferencesRepository {
	return &preferencesRepository{items: items}
}

func (p *preferencesRepository) LoadPreferences(ctx context.Context) (models.Preferences, error) {
	stored, err := p.items.GetItems(ctx, KeyTheme, KeyLanguage)
	if err != nil {
		return models.Preferences{}, fmt.Errorf("failed to load preferences: %w", err)
	}

	return models.Preferences{
		Theme:    stored[KeyTheme],
		Language: stored[KeyLanguage],
	}, nil
}

func (p *preferencesRepository) SavePreferences(ctx context.Context, prefs models.Preferences) error {
	items := make(map[string]string, 2)
	if prefs.Theme != "" {
		items[KeyTheme] = prefs.Theme
	}
	if prefs.Language != "" {
		items[KeyLanguage] = prefs.Language
	}
	return p.items.SetItems(ctx, items)
}
