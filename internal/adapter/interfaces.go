// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the session manager
// and the authentication server.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/JSON implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx responses are mapped by mapHTTPError to a [*ResponseError] that
// unwraps to one of the sentinel values in errors.go, so callers can use
// [errors.Is] for status matching (e.g. [ErrUnauthorized] for 401) and
// [errors.As] to reach the server-supplied message. Requests that never
// produced a response wrap [ErrNetwork].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-session-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// authentication server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently held, or "" if none.
	Token() string

	// Login sends POST /login. On success it returns the decoded response,
	// which is guaranteed to carry both a token and a user profile, and
	// remembers the token via SetToken. An ok response missing either of
	// them yields an error wrapping [ErrIncompleteLoginResponse].
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Register sends POST /register and returns the decoded response.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)

	// Logout sends POST /logout with an empty body and forgets the token
	// regardless of the outcome. The response body is ignored.
	Logout(ctx context.Context) error
}
