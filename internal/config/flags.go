// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the client command-line flags.
//
// Flags:
//
//	-a server address ([scheme://]host:port)
//	-d SQLite database file
//	-c/-config JSON or TOML config file path
//	-hash-key request signing key
//	-store-key token sealing passphrase
//	-request-timeout request timeout (e.g. "15s")
//	-inactivity-timeout session inactivity timeout (e.g. "30m")
//	-min-password-length registration password minimum length
//	-watch-store reload when another process changes the store
//	-log-file log file path
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("session-keeper", flag.ContinueOnError)

	var (
		address           string
		databaseDSN       string
		configPath        string
		hashKey           string
		storeKey          string
		requestTimeout    time.Duration
		inactivityTimeout time.Duration
		minPasswordLength int
		watchStore        bool
		logFile           string
	)

	fs.StringVar(&address, "a", "", "Server address [scheme://]host:port")
	fs.StringVar(&databaseDSN, "d", "", "SQLite database file")
	fs.StringVar(&configPath, "c", "", "Config file path (JSON or TOML)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&hashKey, "hash-key", "", "Request signing key")
	fs.StringVar(&storeKey, "store-key", "", "Token sealing passphrase")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g. 15s)")
	fs.DurationVar(&inactivityTimeout, "inactivity-timeout", 0, "Inactivity timeout (e.g. 30m)")
	fs.IntVar(&minPasswordLength, "min-password-length", 0, "Minimum registration password length")
	fs.BoolVar(&watchStore, "watch-store", false, "Reload when the store changes")
	fs.StringVar(&logFile, "log-file", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			HashKey:  hashKey,
			StoreKey: storeKey,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Session: Session{
			InactivityTimeout: inactivityTimeout,
			MinPasswordLength: minPasswordLength,
			WatchStore:        watchStore,
		},
		Log:            Log{FilePath: logFile},
		ConfigFilePath: configPath,
	}, nil
}
