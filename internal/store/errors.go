// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrIncompleteSession is returned when a session is saved without a token
	// or without a profile. Nothing is written in that case.
	ErrIncompleteSession = errors.New("session requires both token and profile")

	// ErrEncodingProfile is returned when the user profile cannot be
	// serialised to JSON.
	ErrEncodingProfile = errors.New("failed to encode user profile")

	// ErrSealingToken is returned when the token cannot be sealed before
	// being written to disk.
	ErrSealingToken = errors.New("failed to seal auth token")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan local storage rows")
)
