// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-bank-client/models"
)

// Wire shapes of the API responses. Required fields are pointers so that a
// missing field can be told apart from a zero value.

type authResponseSchema struct {
	Token *string `json:"token"`
}

type balanceResponseSchema struct {
	Balance *float64 `json:"balance"`
}

type profileSchema struct {
	ID       *string  `json:"_id"`
	Username *string  `json:"username"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Image    string   `json:"image"`
	Balance  *float64 `json:"balance"`

	AccountNumber string `json:"accountNumber"`
	AccountType   string `json:"accountType"`
}

type transactionSchema struct {
	ID          string   `json:"_id"`
	Type        string   `json:"type"`
	Amount      *float64 `json:"amount"`
	Date        *string  `json:"date"`
	Description string   `json:"description"`
	FromUser    string   `json:"fromUser"`
	ToUser      string   `json:"toUser"`
	Username    string   `json:"username"`
}

func decodeAuthResponse(op string, body []byte) (models.AuthResponse, error) {
	var s authResponseSchema
	if err := json.Unmarshal(body, &s); err != nil {
		return models.AuthResponse{}, unexpectedResponse(op, "decode: %v", err)
	}
	if s.Token == nil || strings.TrimSpace(*s.Token) == "" {
		return models.AuthResponse{}, unexpectedResponse(op, "missing token")
	}
	return models.AuthResponse{Token: strings.TrimSpace(*s.Token)}, nil
}

func decodeBalanceResponse(op string, body []byte) (models.BalanceResponse, error) {
	var s balanceResponseSchema
	if err := json.Unmarshal(body, &s); err != nil {
		return models.BalanceResponse{}, unexpectedResponse(op, "decode: %v", err)
	}
	if s.Balance == nil {
		return models.BalanceResponse{}, unexpectedResponse(op, "missing balance")
	}
	return models.BalanceResponse{Balance: *s.Balance}, nil
}

func (s profileSchema) toModel(op string, origin *url.URL) (models.Profile, error) {
	if s.ID == nil || *s.ID == "" {
		return models.Profile{}, unexpectedResponse(op, "profile without _id")
	}
	if s.Username == nil || *s.Username == "" {
		return models.Profile{}, unexpectedResponse(op, "profile %s without username", *s.ID)
	}

	p := models.Profile{
		ID:       *s.ID,
		Username: *s.Username,
		Name:     s.Name,
		Email:    s.Email,
		ImageURL: resolveImageURL(origin, s.Image),

		AccountNumber: strings.TrimSpace(s.AccountNumber),
		AccountType:   models.AccountType(strings.TrimSpace(s.AccountType)),
	}
	if s.Balance != nil {
		p.Balance = *s.Balance
	}
	return p, nil
}

func decodeProfile(op string, body []byte, origin *url.URL) (models.Profile, error) {
	var s profileSchema
	if err := json.Unmarshal(body, &s); err != nil {
		return models.Profile{}, unexpectedResponse(op, "decode: %v", err)
	}
	return s.toModel(op, origin)
}

func decodeProfiles(op string, body []byte, origin *url.URL) ([]models.Profile, error) {
	var list []profileSchema
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, unexpectedResponse(op, "decode: %v", err)
	}

	profiles := make([]models.Profile, 0, len(list))
	for _, s := range list {
		p, err := s.toModel(op, origin)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// decodeTransactions maps the ledger. Entries without a date are stamped
// with fetchedAt.
func decodeTransactions(op string, body []byte, fetchedAt time.Time) ([]models.Transaction, error) {
	var list []transactionSchema
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, unexpectedResponse(op, "decode: %v", err)
	}

	txs := make([]models.Transaction, 0, len(list))
	for i, s := range list {
		kind, ok := models.ParseTransactionType(s.Type)
		if !ok {
			return nil, unexpectedResponse(op, "transaction %d: unknown type %q", i, s.Type)
		}
		if s.Amount == nil {
			return nil, unexpectedResponse(op, "transaction %d: missing amount", i)
		}

		date := fetchedAt
		if s.Date != nil && *s.Date != "" {
			parsed, err := time.Parse(time.RFC3339Nano, *s.Date)
			if err != nil {
				return nil, unexpectedResponse(op, "transaction %d: bad date %q", i, *s.Date)
			}
			date = parsed
		}

		txs = append(txs, models.Transaction{
			ID:          s.ID,
			Type:        kind,
			Amount:      *s.Amount,
			Date:        date,
			Description: s.Description,
			FromUser:    s.FromUser,
			ToUser:      s.ToUser,
			Username:    s.Username,
		})
	}
	return txs, nil
}

// resolveImageURL turns server-relative paths like "media/a.png" into
// absolute URLs on the API origin.
func resolveImageURL(origin *url.URL, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || origin == nil {
		return raw
	}

	ref, err := url.Parse(raw)
	if err != nil || ref.IsAbs() {
		return raw
	}

	if !strings.HasPrefix(ref.Path, "/") {
		ref.Path = "/" + ref.Path
	}
	return origin.ResolveReference(ref).String()
}
