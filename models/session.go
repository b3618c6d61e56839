// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Profile is the user record returned by the server on login. The client does
// not enforce a schema: fields are looked up by name when they are bound into
// UI elements.
type Profile map[string]any

// Field returns the named profile field formatted as display text.
// The second return value reports whether the field is present.
func (p Profile) Field(name string) (string, bool) {
	v, ok := p[name]
	if !ok {
		return "", false
	}

	switch value := v.(type) {
	case nil:
		return "", true
	case string:
		return value, true
	case bool:
		return strconv.FormatBool(value), true
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), true
	case json.Number:
		return value.String(), true
	default:
		return fmt.Sprint(value), true
	}
}

// Username returns the "username" field, falling back to "email".
func (p Profile) Username() string {
	if name, ok := p.Field("username"); ok && name != "" {
		return name
	}
	email, _ := p.Field("email")
	return email
}

// Session is the client's local belief about who is signed in.
//
// Token and Profile are written and removed together. A session without
// either of them is a guest session.
type Session struct {
	// Token is the opaque bearer token issued by the server.
	Token string
	// Profile is the user record issued together with Token. Nil when absent.
	Profile Profile
	// RememberUsername is the login pre-fill value kept across logouts of
	// the form, independent from authentication.
	RememberUsername string
	// RememberFlag reports whether the user opted into RememberUsername.
	RememberFlag bool
}

// IsAuthenticated reports whether both the token and the profile are present.
func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.Profile != nil
}
