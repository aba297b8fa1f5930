// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [TokenStore] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrTokenNotPersisted is returned when the token could not be sealed or
	// written to the local database.
	ErrTokenNotPersisted = errors.New("session token was not persisted")

	// ErrTokenNotCleared is returned when removing the stored token fails.
	ErrTokenNotCleared = errors.New("session token was not cleared")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a statement fails in the driver.
	ErrExecutingQuery = errors.New("error executing sql query")
)
