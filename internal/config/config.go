// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables, command-line flags, and an
// optional JSON/TOML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds keys shared by the transport and the local store.
	App App `envPrefix:"APP_"`

	// Storage holds the local key/value store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the server address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Session holds session manager policy: inactivity timeout, password
	// policy and UI timings.
	Session Session `envPrefix:"SESSION_"`

	// Log holds the log file location.
	Log Log `envPrefix:"LOG_"`

	// ConfigFilePath is the optional path to a JSON or TOML configuration
	// file. Populated via the CONFIG environment variable or the -c / -config
	// flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level secrets.
type App struct {
	// HashKey is the HMAC key used to sign request bodies (HashSHA256 header).
	// Empty disables signing.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// StoreKey is the passphrase used to seal the auth token at rest.
	// Empty stores the token as is.
	// Env: APP_STORE_KEY
	StoreKey string `env:"STORE_KEY"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path shared by every client process of the
	// same user ("tabs").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings for the outbound HTTP transport.
type Adapter struct {
	// HTTPAddress is the server base URL, with or without scheme
	// (e.g. "localhost:8080", "https://auth.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Session holds session manager policy.
type Session struct {
	// InactivityTimeout is the countdown reset by every activity signal.
	// Env: SESSION_INACTIVITY_TIMEOUT
	InactivityTimeout time.Duration `env:"INACTIVITY_TIMEOUT"`

	// MinPasswordLength is the registration password length policy.
	// Env: SESSION_MIN_PASSWORD_LENGTH
	MinPasswordLength int `env:"MIN_PASSWORD_LENGTH"`

	// RegisterRedirectDelay is the pause between a successful registration
	// and the navigation to the login page.
	// Env: SESSION_REGISTER_REDIRECT_DELAY
	RegisterRedirectDelay time.Duration `env:"REGISTER_REDIRECT_DELAY"`

	// NotificationTTL is how long a notification stays on screen.
	// Env: SESSION_NOTIFICATION_TTL
	NotificationTTL time.Duration `env:"NOTIFICATION_TTL"`

	// WatchStore reloads the page when another process changes the store.
	// Env: SESSION_WATCH_STORE
	WatchStore bool `env:"WATCH_STORE"`
}

// Log holds logging settings.
type Log struct {
	// FilePath is the log file. Empty puts it next to the executable.
	// Env: LOG_FILE_PATH
	FilePath string `env:"FILE_PATH"`
}

// Defaults returns the built-in configuration, the lowest-priority source.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB: DB{DSN: "session-keeper.db"},
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Session: Session{
			InactivityTimeout:     30 * time.Minute,
			MinPasswordLength:     6,
			RegisterRedirectDelay: 2 * time.Second,
			NotificationTTL:       5 * time.Second,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources.
// args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
