// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-bank-client/internal/adapter"
	"github.com/MKhiriev/go-bank-client/internal/logger"
	"github.com/MKhiriev/go-bank-client/models"
)

type sessionSynchronizer struct {
	bank   adapter.BankAdapter
	tokens adapter.TokenSource
	logger *logger.Logger

	// calls for the same generation share one /auth/me request
	group singleflight.Group

	mu sync.RWMutex
	// generation changes on Reset and ApplyBalance; a refresh started under
	// an older generation is not applied
	generation uint64
	profile    *models.Profile
	lastErr    error
	resolved   bool
	inflight   int
}

// NewSessionSynchronizer constructs a [SessionSynchronizer]. Its state
// reports Loading until the first refresh resolves.
func NewSessionSynchronizer(bank adapter.BankAdapter, tokens adapter.TokenSource, log *logger.Logger) SessionSynchronizer {
	return &sessionSynchronizer{
		bank:   bank,
		tokens: tokens,
		logger: log,
	}
}

func (s *sessionSynchronizer) Start(ctx context.Context) {
	_ = s.Refresh(ctx)
}

func (s *sessionSynchronizer) Refresh(ctx context.Context) error {
	s.mu.Lock()
	gen := s.generation
	s.inflight++
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inflight--
		s.mu.Unlock()
	}()

	_, err, _ := s.group.Do(strconv.FormatUint(gen, 10), func() (any, error) {
		return nil, s.fetch(ctx, gen)
	})
	return err
}

func (s *sessionSynchronizer) fetch(ctx context.Context, gen uint64) error {
	if _, ok := s.tokens.Get(ctx); !ok {
		s.apply(gen, nil, nil)
		return nil
	}

	profile, err := s.bank.Me(ctx)
	if err != nil {
		s.logger.Err(err).
			Str("func", "*sessionSynchronizer.fetch").
			Msg("failed to load profile, keeping session token")
		s.apply(gen, nil, err)
		return err
	}

	s.apply(gen, &profile, nil)
	return nil
}

func (s *sessionSynchronizer) apply(gen uint64, profile *models.Profile, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resolved = true
	if gen != s.generation {
		s.logger.Debug().
			Str("func", "*sessionSynchronizer.apply").
			Uint64("started_generation", gen).
			Uint64("current_generation", s.generation).
			Msg("discarding stale profile refresh")
		return
	}

	s.profile = profile
	s.lastErr = err
}

func (s *sessionSynchronizer) ApplyBalance(balance float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		return
	}

	updated := *s.profile
	updated.Balance = balance
	s.profile = &updated
	s.generation++
}

func (s *sessionSynchronizer) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = nil
	s.lastErr = nil
	s.generation++
}

func (s *sessionSynchronizer) State() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := models.Session{
		Loading: !s.resolved || s.inflight > 0,
		Err:     s.lastErr,
	}
	if s.profile != nil {
		p := *s.profile
		state.Profile = &p
	}
	return state
}

func (s *sessionSynchronizer) Balance() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.profile == nil {
		return 0
	}
	return s.profile.Balance
}

func (s *sessionSynchronizer) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}
