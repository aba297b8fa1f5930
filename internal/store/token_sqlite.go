// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bank-client/internal/crypto"
	"github.com/MKhiriev/go-bank-client/internal/logger"
)

// sqliteTokenStore keeps the sealed session token in the kv_store table.
type sqliteTokenStore struct {
	db     *DB
	sealer crypto.TokenSealer
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteTokenStore returns a [TokenStore] backed by db. Values are passed
// through sealer before they reach the database.
func NewSQLiteTokenStore(db *DB, sealer crypto.TokenSealer, log *logger.Logger) TokenStore {
	log.Debug().Msg("creating sqlite token store")
	return &sqliteTokenStore{
		db:     db,
		sealer: sealer,
		logger: log,
		now:    time.Now,
	}
}

func (s *sqliteTokenStore) Get(ctx context.Context) (string, bool) {
	query, args, err := selectValueQuery(tokenKey)
	if err != nil {
		s.logger.Err(err).Str("func", "*sqliteTokenStore.Get").Msg("error building select query")
		return "", false
	}

	var sealed string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		s.logger.Err(err).Str("func", "*sqliteTokenStore.Get").Msg("error reading session token")
		return "", false
	}

	token, err := s.sealer.Open(sealed)
	if err != nil {
		s.logger.Err(err).Str("func", "*sqliteTokenStore.Get").Msg("stored session token cannot be opened")
		return "", false
	}
	if token == "" {
		return "", false
	}

	return token, true
}

func (s *sqliteTokenStore) Set(ctx context.Context, token string) error {
	sealed, err := s.sealer.Seal(token)
	if err != nil {
		s.logger.Err(err).Str("func", "*sqliteTokenStore.Set").Msg("error sealing session token")
		return fmt.Errorf("%w: %w", ErrTokenNotPersisted, err)
	}

	query, args, err := upsertValueQuery(tokenKey, sealed, s.now())
	if err != nil {
		s.logger.Err(err).Str("func", "*sqliteTokenStore.Set").Msg("error building upsert query")
		return fmt.Errorf("%w: %w: %w", ErrTokenNotPersisted, ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqliteTokenStore.Set").Msg("error writing session token")
		return fmt.Errorf("%w: %w: %w", ErrTokenNotPersisted, ErrExecutingQuery, err)
	}

	return nil
}

func (s *sqliteTokenStore) Clear(ctx context.Context) error {
	query, args, err := deleteValueQuery(tokenKey)
	if err != nil {
		s.logger.Err(err).Str("func", "*sqliteTokenStore.Clear").Msg("error building delete query")
		return fmt.Errorf("%w: %w: %w", ErrTokenNotCleared, ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqliteTokenStore.Clear").Msg("error deleting session token")
		return fmt.Errorf("%w: %w: %w", ErrTokenNotCleared, ErrExecutingQuery, err)
	}

	return nil
}
