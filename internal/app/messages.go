// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing text shown by the client.
//
// Keeping the strings in one place ensures the terminal pages and the session
// manager use the same wording.
package app

const (
	// MsgNetworkError is shown when a request could not complete at all.
	MsgNetworkError = "Network error. Please try again."

	// MsgLoginFailed is the fallback when a login is rejected without a
	// server message.
	MsgLoginFailed = "Login failed"

	// MsgRegistrationFailed is the fallback when a registration is rejected
	// without a server message.
	MsgRegistrationFailed = "Registration failed"

	// MsgRegistrationSucceeded is shown when the server accepts a
	// registration without a message of its own.
	MsgRegistrationSucceeded = "Registration successful! Redirecting to login..."

	MsgPasswordsDoNotMatch = "Passwords do not match"

	// MsgPasswordTooShortFormat takes the configured minimum length.
	MsgPasswordTooShortFormat = "Password must be at least %d characters long"

	MsgMissingCredentials = "Please enter username and password"

	// MsgLogoutPrompt is the confirmation asked before an explicit logout.
	MsgLogoutPrompt = "Are you sure you want to log out?"

	// MsgSessionExpiryPrompt is asked when the inactivity countdown elapses.
	MsgSessionExpiryPrompt = "Your session is about to expire. Stay logged in?"

	// MsgSessionExpired is shown on the login page after an inactivity logout.
	MsgSessionExpired = "Your session has expired. Please log in again."

	MsgSessionNotSaved = "Could not save your session on this device"
	MsgLogoutFailed    = "Could not clear your session on this device"
	MsgLoggedOut       = "You have been logged out"

	MsgUsernameCopied = "Username copied to clipboard"
	MsgCopyFailed     = "Could not access the clipboard"
)
