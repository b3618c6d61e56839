// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TokenInfo is what the client can learn from a bearer token without
// verifying it. Opaque (non-JWT) tokens produce a zero TokenInfo.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

// HasExpiry reports whether the token carried an exp claim.
func (t TokenInfo) HasExpiry() bool {
	return !t.ExpiresAt.IsZero()
}
