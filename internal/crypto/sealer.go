// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// sealedPrefix marks values produced by [aeadSealer.Seal].
const sealedPrefix = "sealed:v1:"

// storeKeySalt domain-separates the store key from any other use of the
// passphrase. It is not secret.
var storeKeySalt = []byte("session-keeper/local-storage/v1")

var ErrCiphertextTooShort = errors.New("ciphertext too short")

// Argon2id parameters for the one-off store key derivation at startup.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024 // 64 MiB
	argonThreads = 4
)

type aeadSealer struct {
	key []byte
}

// NewSealer returns a [Sealer] keyed by passphrase. An empty passphrase
// returns a pass-through sealer that stores values as is.
func NewSealer(passphrase string) Sealer {
	if passphrase == "" {
		return nopSealer{}
	}

	key := argon2.IDKey([]byte(passphrase), storeKeySalt, argonTime, argonMemory, argonThreads, chacha20poly1305.KeySize)
	return &aeadSealer{key: key}
}

// Seal implements [Sealer]. Output: prefix ‖ base64(nonce ‖ ciphertext).
func (s *aeadSealer) Seal(plain string) (string, error) {
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return "", fmt.Errorf("create aead: %w", err)
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plain)+aead.Overhead())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := aead.Seal(nonce, nonce, []byte(plain), nil)
	return sealedPrefix + base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [Sealer].
func (s *aeadSealer) Open(sealed string) (string, error) {
	encoded, ok := strings.CutPrefix(sealed, sealedPrefix)
	if !ok {
		return sealed, nil
	}

	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return "", fmt.Errorf("create aead: %w", err)
	}

	if len(blob) < aead.NonceSize() {
		return "", ErrCiphertextTooShort
	}
	nonce, ciphertext := blob[:aead.NonceSize()], blob[aead.NonceSize():]

	plain, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("decryption failed: %w", err)
	}

	return string(plain), nil
}

type nopSealer struct{}

func (nopSealer) Seal(plain string) (string, error) { return plain, nil }

func (nopSealer) Open(sealed string) (string, error) { return sealed, nil }
