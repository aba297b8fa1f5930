// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("invalid command usage")

	// ErrNotLoggedIn is returned by commands that need a session when no
	// token is stored.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrProfileNotLoaded is returned by commands that need a session when a
	// token is stored but the profile could not be fetched.
	ErrProfileNotLoaded = errors.New("profile not loaded")
)
