// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto seals sensitive store values at rest.
//
// The auth token is the only secret the client persists. When a store key is
// configured the token is sealed with XChaCha20-Poly1305 under a key derived
// from the passphrase with Argon2id, so copying the database file alone does
// not leak a usable bearer token.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer protects individual string values before they reach the store.
type Sealer interface {
	// Seal returns the protected form of plain.
	Seal(plain string) (string, error)

	// Open reverses Seal. Values that were never sealed are returned
	// unchanged so that enabling a key does not invalidate stored sessions.
	Open(sealed string) (string, error)
}
