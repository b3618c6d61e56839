// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectToken_JWT(t *testing.T) {
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("server-only-key"))
	require.NoError(t, err)

	info := InspectToken(signed)
	assert.Equal(t, "alice", info.Subject)
	assert.True(t, info.HasExpiry())
	assert.True(t, exp.Equal(info.ExpiresAt))
}

func TestInspectToken_Opaque(t *testing.T) {
	info := InspectToken("T1")
	assert.Empty(t, info.Subject)
	assert.False(t, info.HasExpiry())
}
