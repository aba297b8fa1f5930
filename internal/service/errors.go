// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-bank-client/internal/app"
)

// ValidationError is an input problem detected before any request is made.
// Its text is meant to be shown to the user verbatim.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func newValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

var (
	ErrEmptyFields       = newValidationError(app.MsgFillAllFields)
	ErrInvalidEmail      = newValidationError(app.MsgInvalidEmail)
	ErrPasswordTooShort  = newValidationError(app.MsgPasswordTooShort)
	ErrPasswordsMismatch = newValidationError(app.MsgPasswordsDoNotMatch)

	ErrEmptyAmount         = newValidationError(app.MsgEnterAmount)
	ErrInvalidAmount       = newValidationError(app.MsgInvalidAmount)
	ErrInsufficientBalance = newValidationError(app.MsgInsufficientBalance)
	ErrEmptyRecipient      = newValidationError(app.MsgSelectRecipient)

	ErrProfileNotLoaded = newValidationError(app.MsgProfileNotLoaded)
	ErrInvalidDate      = newValidationError(app.MsgInvalidDate)
)
