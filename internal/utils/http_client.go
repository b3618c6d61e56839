// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

const (
	// RequestIDHeader carries a per-request correlation id.
	RequestIDHeader = "X-Request-ID"

	userAgent = "session-keeper-client"
)

// IDGenerator produces unique request identifiers.
type IDGenerator interface {
	Generate() string
}

// HTTPClient is a wrapper around resty.Client preconfigured for the JSON
// endpoints the client talks to.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that accepts JSON, identifies itself with a
// User-Agent and stamps every request lacking one with an X-Request-ID from
// ids. Each call returns an independent client.
func NewHTTPClient(ids IDGenerator) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(RequestIDHeader) == "" {
			r.SetHeader(RequestIDHeader, ids.Generate())
		}
		return nil
	})

	return &HTTPClient{Client: client}
}
