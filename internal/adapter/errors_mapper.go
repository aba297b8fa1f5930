// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	httpErr := &HTTPError{
		StatusCode: resp.StatusCode(),
		Message:    serverMessage(resp.Body()),
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		httpErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		httpErr.kind = ErrUnauthorized
	case http.StatusForbidden:
		httpErr.kind = ErrForbidden
	case http.StatusNotFound:
		httpErr.kind = ErrNotFound
	case http.StatusConflict:
		httpErr.kind = ErrConflict
	case http.StatusBadGateway:
		httpErr.kind = ErrBadGateway
	case http.StatusInternalServerError:
		httpErr.kind = ErrInternalServerError
	default:
		httpErr.kind = ErrUnexpectedStatus
	}

	return httpErr
}

// serverMessage picks "message", then "error" from a JSON body, and falls
// back to the raw text of plain bodies.
func serverMessage(body []byte) string {
	raw := strings.TrimSpace(string(body))
	if raw == "" {
		return ""
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		// structured or markup bodies carry nothing worth showing
		if strings.HasPrefix(raw, "{") || strings.HasPrefix(raw, "[") || strings.HasPrefix(raw, "<") {
			return ""
		}
		return raw
	}

	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
