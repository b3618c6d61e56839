// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealer_RoundTrip(t *testing.T) {
	s := NewSealer("passphrase")

	sealed, err := s.Seal("abc.def.ghi")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sealed, sealedPrefix))
	assert.NotContains(t, sealed, "abc.def.ghi")

	plain, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", plain)
}

func TestSealer_NonceIsRandom(t *testing.T) {
	s := NewSealer("passphrase")

	a, err := s.Seal("token")
	require.NoError(t, err)
	b, err := s.Seal("token")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestSealer_WrongKeyFails(t *testing.T) {
	sealed, err := NewSealer("right").Seal("token")
	require.NoError(t, err)

	_, err = NewSealer("wrong").Open(sealed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decryption failed")
}

func TestSealer_OpenPassesThroughUnsealedValues(t *testing.T) {
	plain, err := NewSealer("key").Open("legacy-token")
	require.NoError(t, err)
	assert.Equal(t, "legacy-token", plain)
}

func TestSealer_OpenRejectsShortBlob(t *testing.T) {
	short := sealedPrefix + base64.StdEncoding.EncodeToString([]byte("tiny"))

	_, err := NewSealer("key").Open(short)
	assert.ErrorIs(t, err, ErrCiphertextTooShort)
}

func TestSealer_OpenRejectsBadBase64(t *testing.T) {
	_, err := NewSealer("key").Open(sealedPrefix + "%%%")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode base64")
}

func TestNopSealer(t *testing.T) {
	s := NewSealer("")

	sealed, err := s.Seal("token")
	require.NoError(t, err)
	assert.Equal(t, "token", sealed)

	plain, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "token", plain)
}
