// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// Screen is the interactive front end driven by [App].
type Screen interface {
	// Run blocks until the user quits or ctx is done.
	Run(ctx context.Context) error
	// Tick refreshes time-dependent parts of the screen.
	Tick(ctx context.Context)
}
