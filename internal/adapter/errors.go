// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors for HTTP statuses the client distinguishes. They are
// always wrapped in an [*HTTPError].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected http status")
)

// ErrUnexpectedResponse is returned when a 2xx body does not match the
// expected schema.
var ErrUnexpectedResponse = errors.New("unexpected response")

// HTTPError describes a non-2xx response.
type HTTPError struct {
	StatusCode int
	// Message is the server-provided explanation, possibly empty.
	Message string

	kind error
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http %d: %v", e.StatusCode, e.kind)
	}
	return fmt.Sprintf("http %d: %v: %s", e.StatusCode, e.kind, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.kind
}

func unexpectedResponse(op, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", op, ErrUnexpectedResponse, fmt.Sprintf(format, args...))
}
