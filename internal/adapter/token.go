// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-session-keeper/models"
)

// InspectToken reads the subject and expiry of a JWT bearer token without
// verifying its signature. The client never holds the signing key, so the
// result is informational only. Opaque tokens yield a zero TokenInfo.
func InspectToken(token string) models.TokenInfo {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return models.TokenInfo{}
	}

	info := models.TokenInfo{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info
}
