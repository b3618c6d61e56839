// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Navigation targets.
const (
	RouteRoot         = "/"
	RouteHome         = "/home"
	RouteLogin        = "/login"
	RouteLoginTimeout = "/login?timeout=true"
	RouteRegister     = "/register"
)
