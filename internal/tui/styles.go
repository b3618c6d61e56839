// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-session-keeper/models"
)

type palette struct {
	accent  lipgloss.Color
	muted   lipgloss.Color
	success lipgloss.Color
	warning lipgloss.Color
	danger  lipgloss.Color
}

var palettes = map[string]palette{
	models.ThemeDark: {
		accent:  lipgloss.Color("#7D56F4"),
		muted:   lipgloss.Color("#6C6C6C"),
		success: lipgloss.Color("#04B575"),
		warning: lipgloss.Color("#E5C07B"),
		danger:  lipgloss.Color("#FF5F87"),
	},
	models.ThemeLight: {
		accent:  lipgloss.Color("#5A3FC0"),
		muted:   lipgloss.Color("#9A9A9A"),
		success: lipgloss.Color("#00875A"),
		warning: lipgloss.Color("#B07D00"),
		danger:  lipgloss.Color("#D7005F"),
	},
}

// styles is the rendering theme. It is rebuilt whenever the theme
// preference changes.
type styles struct {
	theme string

	app      lipgloss.Style
	title    lipgloss.Style
	help     lipgloss.Style
	selected lipgloss.Style
	overlay  lipgloss.Style
	levels   map[models.NotificationLevel]lipgloss.Style
}

func newStyles(theme string) styles {
	p, ok := palettes[theme]
	if !ok {
		theme = models.ThemeDark
		p = palettes[theme]
	}

	return styles{
		theme:    theme,
		app:      lipgloss.NewStyle().Padding(1, 2),
		title:    lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		help:     lipgloss.NewStyle().Faint(true).Foreground(p.muted),
		selected: lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		overlay:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.accent).Padding(1, 2),
		levels: map[models.NotificationLevel]lipgloss.Style{
			models.NotificationInfo:    lipgloss.NewStyle().Foreground(p.accent),
			models.NotificationSuccess: lipgloss.NewStyle().Bold(true).Foreground(p.success),
			models.NotificationWarning: lipgloss.NewStyle().Foreground(p.warning),
			models.NotificationError:   lipgloss.NewStyle().Bold(true).Foreground(p.danger),
		},
	}
}

func (s styles) level(l models.NotificationLevel) lipgloss.Style {
	if st, ok := s.levels[l]; ok {
		return st
	}
	return s.levels[models.NotificationInfo]
}
