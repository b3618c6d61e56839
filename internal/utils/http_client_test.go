// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(fixedID("a"))
	client2 := NewHTTPClient(fixedID("b"))

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_DefaultHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(fixedID("req-1"))
	_, err := client.R().Get(srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, userAgent, got.Get("User-Agent"))
	assert.Equal(t, "req-1", got.Get(RequestIDHeader))
}

func TestNewHTTPClient_KeepsExplicitRequestID(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(RequestIDHeader)
	}))
	defer srv.Close()

	client := NewHTTPClient(fixedID("generated"))
	_, err := client.R().SetHeader(RequestIDHeader, "explicit").Get(srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "explicit", got)
}
