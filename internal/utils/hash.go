// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader is the request header carrying the body signature.
const HashHeader = "HashSHA256"

// Hasher computes keyed HMAC-SHA256 signatures. Hash instances are pooled to
// avoid an allocation per request.
type Hasher struct {
	key  []byte
	pool sync.Pool
}

// NewHasher returns a Hasher for key. An empty key yields a Hasher whose
// Sum always returns "", which callers treat as "signing disabled".
func NewHasher(key string) *Hasher {
	h := &Hasher{key: []byte(key)}
	h.pool.New = func() any {
		return hmac.New(sha256.New, h.key)
	}
	return h
}

// Enabled reports whether a key is configured.
func (h *Hasher) Enabled() bool {
	return h != nil && len(h.key) > 0
}

// Sum returns the hex-encoded HMAC-SHA256 of data, or "" when disabled.
func (h *Hasher) Sum(data []byte) string {
	if !h.Enabled() {
		return ""
	}

	mac := h.pool.Get().(hash.Hash)
	mac.Reset()
	mac.Write(data)
	sum := mac.Sum(nil)
	mac.Reset()
	h.pool.Put(mac)

	return hex.EncodeToString(sum)
}
