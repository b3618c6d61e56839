// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrSessionNotSaved   = errors.New("session was not saved")
	ErrSessionNotCleared = errors.New("session was not cleared")
	ErrLoginOnServer     = errors.New("login rejected")
	ErrRegisterOnServer  = errors.New("registration rejected")
)
