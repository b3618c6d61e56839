// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the JSON body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Remember bool   `json:"remember,omitempty"`
}

// LoginResponse is the JSON body returned by POST /login. Every field is
// optional on the wire; a successful response is expected to carry both
// Token and User.
type LoginResponse struct {
	Token    string  `json:"token,omitempty"`
	User     Profile `json:"user,omitempty"`
	Redirect string  `json:"redirect,omitempty"`
	Message  string  `json:"message,omitempty"`
}

// RegisterRequest is the JSON body of POST /register. It never carries the
// password confirmation.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// RegisterResponse is the JSON body returned by POST /register.
type RegisterResponse struct {
	Message string `json:"message,omitempty"`
}

// MessageResponse is the error body shape shared by all endpoints.
type MessageResponse struct {
	Message string `json:"message,omitempty"`
}
