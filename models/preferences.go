// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Themes supported by the terminal UI.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Preferences are per-device display settings. They are not part of the
// session and survive logout.
type Preferences struct {
	Theme    string
	Language string
}
