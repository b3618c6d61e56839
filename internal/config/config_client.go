// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds client-side application secrets.
type ClientApp struct {
	// HashKey is the HMAC key used for request body signing.
	HashKey string
	// StoreKey is the passphrase used to seal the token at rest.
	StoreKey string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server base address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientSession contains session manager policy.
type ClientSession struct {
	InactivityTimeout     time.Duration
	MinPasswordLength     int
	RegisterRedirectDelay time.Duration
	NotificationTTL       time.Duration
	WatchStore            bool
}

// ClientConfig is the client configuration assembled from [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Session ClientSession
	LogFile string
}

// GetClientConfig builds and validates the client configuration from the
// process environment and command-line arguments.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey:  cfg.App.HashKey,
			StoreKey: cfg.App.StoreKey,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Session: ClientSession{
			InactivityTimeout:     cfg.Session.InactivityTimeout,
			MinPasswordLength:     cfg.Session.MinPasswordLength,
			RegisterRedirectDelay: cfg.Session.RegisterRedirectDelay,
			NotificationTTL:       cfg.Session.NotificationTTL,
			WatchStore:            cfg.Session.WatchStore,
		},
		LogFile: cfg.Log.FilePath,
	}
}
