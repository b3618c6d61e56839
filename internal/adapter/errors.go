// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	// ErrUnexpectedStatus covers every non-2xx status without its own sentinel.
	ErrUnexpectedStatus = errors.New("unexpected http status")

	// ErrNetwork is returned when a request could not complete at all.
	ErrNetwork = errors.New("network error")

	// ErrIncompleteLoginResponse is returned when the server reports success
	// for POST /login but omits the token or the user profile.
	ErrIncompleteLoginResponse = errors.New("login response lacks token or user")

	ErrEmptyAddress = errors.New("empty address")
)

// ResponseError is a server rejection. Message is the server-supplied
// "message" field, or the raw body when the body is not JSON. It unwraps to
// the sentinel matching StatusCode.
type ResponseError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("http %d: %v: %s", e.StatusCode, e.Err, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

// ServerMessage extracts the server-supplied message from err, if any.
func ServerMessage(err error) (string, bool) {
	var respErr *ResponseError
	if errors.As(err, &respErr) && respErr.Message != "" {
		return respErr.Message, true
	}
	return "", false
}
