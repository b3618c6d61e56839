// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_JSON(t *testing.T) {
	path := writeTempFile(t, "client.json", `{
		"app": {"hash_key": "hk", "store_key": "sk"},
		"storage": {"db": {"dsn": "client.db"}},
		"adapter": {"http_address": "localhost:8080", "request_timeout": "20s"},
		"session": {
			"inactivity_timeout": "15m",
			"min_password_length": 7,
			"register_redirect_delay": 1000000000,
			"notification_ttl": "3s",
			"watch_store": true
		},
		"log": {"file_path": "client.log"}
	}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "hk", cfg.App.HashKey)
	assert.Equal(t, "sk", cfg.App.StoreKey)
	assert.Equal(t, "client.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 15*time.Minute, cfg.Session.InactivityTimeout)
	assert.Equal(t, 7, cfg.Session.MinPasswordLength)
	assert.Equal(t, time.Second, cfg.Session.RegisterRedirectDelay)
	assert.Equal(t, 3*time.Second, cfg.Session.NotificationTTL)
	assert.True(t, cfg.Session.WatchStore)
	assert.Equal(t, "client.log", cfg.Log.FilePath)
	assert.Empty(t, cfg.ConfigFilePath)
}

func TestParseFile_TOML(t *testing.T) {
	path := writeTempFile(t, "client.toml", `
[adapter]
http_address = "https://auth.example.com"
request_timeout = "10s"

[session]
inactivity_timeout = "5m"
min_password_length = 9
`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "https://auth.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Session.InactivityTimeout)
	assert.Equal(t, 9, cfg.Session.MinPasswordLength)
}

func TestParseFile_InvalidJSON(t *testing.T) {
	path := writeTempFile(t, "broken.json", `{"adapter": `)

	_, err := parseFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseFile_InvalidTOMLDuration(t *testing.T) {
	path := writeTempFile(t, "broken.toml", "[session]\ninactivity_timeout = \"later\"\n")

	_, err := parseFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding toml configs")
}

func TestDuration_JSONRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(data))

	var back Duration
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, back)
}

func TestDuration_RejectsBool(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}
