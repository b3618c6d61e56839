// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-session-keeper/internal/adapter"
	"github.com/MKhiriev/go-session-keeper/internal/app"
	"github.com/MKhiriev/go-session-keeper/internal/validators"
)

// userMessage translates err into the text shown in a notification.
// Validation errors get their fixed wording, transport failures the generic
// network message, and server rejections the server's own message when it
// sent one. Everything else falls back to fallback.
func userMessage(err error, fallback string, minPasswordLength int) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, validators.ErrPasswordsDoNotMatch):
		return app.MsgPasswordsDoNotMatch
	case errors.Is(err, validators.ErrPasswordTooShort):
		return fmt.Sprintf(app.MsgPasswordTooShortFormat, minPasswordLength)
	case errors.Is(err, validators.ErrMissingCredentials):
		return app.MsgMissingCredentials
	case errors.Is(err, adapter.ErrNetwork):
		return app.MsgNetworkError
	}

	if msg, ok := adapter.ServerMessage(err); ok {
		return msg
	}
	return fallback
}
