// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-session-keeper/internal/store"
	"github.com/MKhiriev/go-session-keeper/models"
)

const defaultLanguage = "en"

type preferencesService struct {
	repo store.PreferencesRepository
}

func NewPreferencesService(repo store.PreferencesRepository) PreferencesService {
	return &preferencesService{repo: repo}
}

// Load returns stored preferences with defaults filled in.
func (p *preferencesService) Load(ctx context.Context) (models.Preferences, error) {
	prefs, err := p.repo.LoadPreferences(ctx)
	if err != nil {
		return withDefaults(models.Preferences{}), err
	}
	return withDefaults(prefs), nil
}

func (p *preferencesService) Save(ctx context.Context, prefs models.Preferences) error {
	if prefs.Theme != "" && prefs.Theme != models.ThemeLight && prefs.Theme != models.ThemeDark {
		return fmt.Errorf("unknown theme %q", prefs.Theme)
	}
	return p.repo.SavePreferences(ctx, prefs)
}

func (p *preferencesService) ToggleTheme(ctx context.Context) (models.Preferences, error) {
	prefs, err := p.Load(ctx)
	if err != nil {
		return prefs, err
	}

	if prefs.Theme == models.ThemeDark {
		prefs.Theme = models.ThemeLight
	} else {
		prefs.Theme = models.ThemeDark
	}

	if err = p.Save(ctx, prefs); err != nil {
		return prefs, err
	}
	return prefs, nil
}

func withDefaults(prefs models.Preferences) models.Preferences {
	if prefs.Theme == "" {
		prefs.Theme = models.ThemeDark
	}
	if prefs.Language == "" {
		prefs.Language = defaultLanguage
	}
	return prefs
}
