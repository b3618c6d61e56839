// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-session-keeper/internal/adapter"
	"github.com/MKhiriev/go-session-keeper/internal/config"
	"github.com/MKhiriev/go-session-keeper/internal/store"
)

type ClientServices struct {
	Sessions    SessionManager
	Monitor     InactivityMonitor
	Preferences PreferencesService
}

func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	ui UI,
	clock Clock,
	cfg config.ClientSession,
) *ClientServices {
	manager := newSessionManager(storages.Sessions, serverAdapter, ui, clock, cfg)
	monitor := NewInactivityMonitor(cfg.InactivityTimeout, clock, storages.Sessions, ui, manager.expire)
	manager.monitor = monitor

	return &ClientServices{
		Sessions:    manager,
		Monitor:     monitor,
		Preferences: NewPreferencesService(storages.Preferences),
	}
}
