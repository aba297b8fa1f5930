// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto protects the session token while it rests in the local
// store.
package crypto

// TokenSealer turns a session token into an opaque string that is safe to
// write to disk, and back.
type TokenSealer interface {
	// Seal returns the storable form of token.
	Seal(token string) (string, error)

	// Open reverses Seal. It fails when sealed was produced with a different
	// key or has been tampered with.
	Open(sealed string) (string, error)
}
