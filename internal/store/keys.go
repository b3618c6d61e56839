// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Keys of the local_storage table. Every reader and writer of session state
// goes through these names so that two windows sharing one database file agree
// on the layout.
const (
	// KeyAuthToken holds the (optionally sealed) bearer token.
	KeyAuthToken = "auth_token"
	// KeyUserData holds the JSON-serialised user profile.
	KeyUserData = "user_data"
	// KeyRememberMe is "true" when the user ticked "remember me" on login.
	KeyRememberMe = "remember_me"
	// KeyRememberedUsername holds the username to pre-fill on the login form.
	KeyRememberedUsername = "remembered_username"

	KeyTheme    = "theme"
	KeyLanguage = "language"
)

// sessionKeys are the keys removed by a full logout.
var sessionKeys = []string{KeyAuthToken, KeyUserData, KeyRememberMe, KeyRememberedUsername}
