// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	ErrUserQuit = errors.New("user quit")
	// ErrNoScreen is returned by [Bridge.Confirm] before a program is attached.
	ErrNoScreen = errors.New("no screen attached")
	// ErrScreenClosed is returned by [Bridge.Confirm] when the program exits
	// while a prompt is open.
	ErrScreenClosed = errors.New("screen closed")
)
