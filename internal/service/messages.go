// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-bank-client/internal/adapter"
)

// UserMessage turns err into text for the user. Validation errors are shown
// verbatim, HTTP errors show the server's explanation when it gave one, and
// anything else (transport failures, malformed responses) becomes fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}

	var httpErr *adapter.HTTPError
	if errors.As(err, &httpErr) && httpErr.Message != "" {
		return httpErr.Message
	}

	return fallback
}
