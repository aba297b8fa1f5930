// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-bank-client/internal/config"
	"github.com/MKhiriev/go-bank-client/internal/logger"
	"github.com/MKhiriev/go-bank-client/internal/utils"
	"github.com/MKhiriev/go-bank-client/models"
)

const (
	loginPath          = "/auth/login"
	registerPath       = "/auth/register"
	mePath             = "/auth/me"
	usersPath          = "/auth/users"
	myTransactionsPath = "/transactions/my"
	depositPath        = "/transactions/deposit"
	withdrawPath       = "/transactions/withdraw"
	transferPath       = "/transactions/transfer/{username}"
)

type httpBankAdapter struct {
	client *utils.HTTPClient
	tokens TokenSource
	origin *url.URL
	now    func() time.Time

	logger *logger.Logger
}

// NewHTTPBankAdapter constructs the HTTP/REST implementation of
// [BankAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures one shared HTTP client with the
// resolved base URL and request timeout.
//
// Every request consults tokens and carries "Authorization: Bearer <token>"
// when a token is present. A 401 response is logged but never clears the
// token.
func NewHTTPBankAdapter(adapterCfg config.ClientAdapter, tokens TokenSource, logger *logger.Logger) (BankAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	base, _ := url.Parse(baseURL)

	h := &httpBankAdapter{
		client: utils.NewHTTPClient().WithRequestIDs(utils.NewUUIDGenerator()),
		tokens: tokens,
		origin: &url.URL{Scheme: base.Scheme, Host: base.Host},
		now:    time.Now,
		logger: logger,
	}

	h.client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(h.attachToken).
		OnAfterResponse(h.reportUnauthorized)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBankAdapter) attachToken(_ *resty.Client, r *resty.Request) error {
	if token, ok := h.tokens.Get(r.Context()); ok {
		r.SetHeader("Authorization", "Bearer "+token)
	}
	return nil
}

func (h *httpBankAdapter) reportUnauthorized(_ *resty.Client, resp *resty.Response) error {
	if resp.StatusCode() != http.StatusUnauthorized {
		return nil
	}

	event := h.logger.Warn().
		Str("func", "*httpBankAdapter.reportUnauthorized").
		Str("path", resp.Request.URL).
		Str("request_id", resp.Request.Header.Get(utils.RequestIDHeader))

	token, err := utils.ParseBearerToken(resp.Request.Header.Get("Authorization"))
	switch {
	case err != nil:
		event.Msg("unauthorized request without session token")
	default:
		if exp, ok := utils.TokenExpiry(token); ok {
			event = event.Time("token_exp", exp).Bool("token_expired", exp.Before(h.now()))
		}
		event.Msg("unauthorized, session token may be expired; keeping it until logout")
	}

	return nil
}

// Login implements [BankAdapter].
func (h *httpBankAdapter) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post(loginPath)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	return decodeAuthResponse("login", resp.Body())
}

// Register implements [BankAdapter]. An empty display name falls back to the
// username.
func (h *httpBankAdapter) Register(ctx context.Context, reg models.Registration) (models.AuthResponse, error) {
	name := strings.TrimSpace(reg.Name)
	if name == "" {
		name = reg.Username
	}

	req := h.client.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{
			"username": reg.Username,
			"password": reg.Password,
			"name":     name,
		})

	if reg.Image != nil && reg.Image.Reader != nil {
		fileName := reg.Image.FileName
		if fileName == "" {
			fileName = "image"
		}
		contentType := reg.Image.ContentType
		if contentType == "" {
			contentType = "image/jpeg"
		}
		req.SetMultipartField("image", fileName, contentType, reg.Image.Reader)
	}

	resp, err := req.Post(registerPath)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	return decodeAuthResponse("register", resp.Body())
}

// Me implements [BankAdapter].
func (h *httpBankAdapter) Me(ctx context.Context) (models.Profile, error) {
	resp, err := h.client.R().SetContext(ctx).Get(mePath)
	if err != nil {
		return models.Profile{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return decodeProfile("me", resp.Body(), h.origin)
}

// Users implements [BankAdapter].
func (h *httpBankAdapter) Users(ctx context.Context) ([]models.Profile, error) {
	resp, err := h.client.R().SetContext(ctx).Get(usersPath)
	if err != nil {
		return nil, fmt.Errorf("users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeProfiles("users", resp.Body(), h.origin)
}

// MyTransactions implements [BankAdapter].
func (h *httpBankAdapter) MyTransactions(ctx context.Context) ([]models.Transaction, error) {
	resp, err := h.client.R().SetContext(ctx).Get(myTransactionsPath)
	if err != nil {
		return nil, fmt.Errorf("my transactions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeTransactions("my transactions", resp.Body(), h.now())
}

// Deposit implements [BankAdapter].
func (h *httpBankAdapter) Deposit(ctx context.Context, amount float64) (models.BalanceResponse, error) {
	return h.putAmount(ctx, "deposit", h.client.R(), depositPath, amount)
}

// Withdraw implements [BankAdapter].
func (h *httpBankAdapter) Withdraw(ctx context.Context, amount float64) (models.BalanceResponse, error) {
	return h.putAmount(ctx, "withdraw", h.client.R(), withdrawPath, amount)
}

// Transfer implements [BankAdapter]. username is path-escaped.
func (h *httpBankAdapter) Transfer(ctx context.Context, username string, amount float64) (models.BalanceResponse, error) {
	req := h.client.R().SetPathParam("username", username)
	return h.putAmount(ctx, "transfer", req, transferPath, amount)
}

func (h *httpBankAdapter) putAmount(ctx context.Context, op string, req *resty.Request, path string, amount float64) (models.BalanceResponse, error) {
	resp, err := req.
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AmountRequest{Amount: amount}).
		Put(path)
	if err != nil {
		return models.BalanceResponse{}, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BalanceResponse{}, err
	}

	return decodeBalanceResponse(op, resp.Body())
}
