// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the transport layer:
// the resty client wrapper, request-id generation and HMAC body signing.
package utils
