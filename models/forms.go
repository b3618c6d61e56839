// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// LoginForm holds the values entered on the login page.
type LoginForm struct {
	Username string
	Password string
	// Remember asks the client to pre-fill Username on the next visit.
	Remember bool
}

// Request converts the form into the POST /login payload.
func (f LoginForm) Request() LoginRequest {
	return LoginRequest{
		Username: strings.TrimSpace(f.Username),
		Password: f.Password,
		Remember: f.Remember,
	}
}

// RegisterForm holds the values entered on the registration page.
type RegisterForm struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Request converts the form into the POST /register payload. The password
// confirmation is dropped.
func (f RegisterForm) Request() RegisterRequest {
	return RegisterRequest{
		Username: strings.TrimSpace(f.Username),
		Email:    strings.TrimSpace(f.Email),
		Password: f.Password,
	}
}
