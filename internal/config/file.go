// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig is the on-disk shape shared by JSON and TOML config files.
type fileConfig struct {
	App struct {
		HashKey  string `json:"hash_key" toml:"hash_key"`
		StoreKey string `json:"store_key" toml:"store_key"`
	} `json:"app" toml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"db" toml:"db"`
	} `json:"storage" toml:"storage"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"adapter" toml:"adapter"`

	Session struct {
		InactivityTimeout     Duration `json:"inactivity_timeout" toml:"inactivity_timeout"`
		MinPasswordLength     int      `json:"min_password_length" toml:"min_password_length"`
		RegisterRedirectDelay Duration `json:"register_redirect_delay" toml:"register_redirect_delay"`
		NotificationTTL       Duration `json:"notification_ttl" toml:"notification_ttl"`
		WatchStore            bool     `json:"watch_store" toml:"watch_store"`
	} `json:"session" toml:"session"`

	Log struct {
		FilePath string `json:"file_path" toml:"file_path"`
	} `json:"log" toml:"log"`
}

// parseFile decodes a config file; ".toml" files are read with
// BurntSushi/toml, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	var fc fileConfig

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, &fc); err != nil {
			return nil, fmt.Errorf("error decoding toml configs: %w", err)
		}
		return fc.toStructured(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer file.Close()

	if err = json.NewDecoder(file).Decode(&fc); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return fc.toStructured(), nil
}

func (fc fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			HashKey:  fc.App.HashKey,
			StoreKey: fc.App.StoreKey,
		},
		Storage: Storage{
			DB: DB{DSN: fc.Storage.DB.DSN},
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
		},
		Session: Session{
			InactivityTimeout:     time.Duration(fc.Session.InactivityTimeout),
			MinPasswordLength:     fc.Session.MinPasswordLength,
			RegisterRedirectDelay: time.Duration(fc.Session.RegisterRedirectDelay),
			NotificationTTL:       time.Duration(fc.Session.NotificationTTL),
			WatchStore:            fc.Session.WatchStore,
		},
		Log: Log{FilePath: fc.Log.FilePath},
	}
}

// Duration is a time.Duration that decodes from strings like "30m" in both
// JSON and TOML, and from integer nanoseconds in JSON.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler (used by TOML).
func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
