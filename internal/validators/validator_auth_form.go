// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-session-keeper/models"
)

const (
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
)

// DefaultMinPasswordLength is used when the validator is built with a
// non-positive minimum.
const DefaultMinPasswordLength = 6

// AuthFormValidator checks login and registration forms.
type AuthFormValidator struct {
	minPasswordLength int
}

func NewAuthFormValidator(minPasswordLength int) *AuthFormValidator {
	if minPasswordLength <= 0 {
		minPasswordLength = DefaultMinPasswordLength
	}
	return &AuthFormValidator{minPasswordLength: minPasswordLength}
}

// MinPasswordLength returns the enforced minimum, in characters.
func (v *AuthFormValidator) MinPasswordLength() int {
	return v.minPasswordLength
}

func (v *AuthFormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginForm:
		return v.validateLoginForm(ctx, value, fields...)
	case *models.LoginForm:
		return v.validateLoginForm(ctx, *value, fields...)

	case models.RegisterForm:
		return v.validateRegisterForm(ctx, value, fields...)
	case *models.RegisterForm:
		return v.validateRegisterForm(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthFormValidator) validateLoginForm(_ context.Context, form models.LoginForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			if strings.TrimSpace(form.Username) == "" {
				return ErrMissingCredentials
			}
		case FieldPassword:
			if form.Password == "" {
				return ErrMissingCredentials
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// validateRegisterForm checks the confirmation first, then the length
// policy, then the username.
func (v *AuthFormValidator) validateRegisterForm(_ context.Context, form models.RegisterForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldConfirmPassword, FieldPassword, FieldUsername}
	}

	for _, field := range fields {
		switch field {
		case FieldConfirmPassword:
			if form.ConfirmPassword != form.Password {
				return ErrPasswordsDoNotMatch
			}
		case FieldPassword:
			if utf8.RuneCountInString(form.Password) < v.minPasswordLength {
				return fmt.Errorf("%w: need at least %d characters", ErrPasswordTooShort, v.minPasswordLength)
			}
		case FieldUsername:
			if strings.TrimSpace(form.Username) == "" {
				return ErrMissingCredentials
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
