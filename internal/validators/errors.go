// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrPasswordTooShort    = errors.New("password too short")
	ErrMissingCredentials  = errors.New("username and password are required")
)
