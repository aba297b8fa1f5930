// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bank-client/internal/config"
	"github.com/MKhiriev/go-bank-client/internal/crypto"
	"github.com/MKhiriev/go-bank-client/internal/logger"
)

// InMemoryDSN selects the non-durable token store.
const InMemoryDSN = ":memory:"

// ClientStorages groups the client-side stores so they can be handed to the
// service layer as one value.
type ClientStorages struct {
	// Tokens holds the session token.
	Tokens TokenStore

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. opens the SQLite file named by cfg.DB.DSN, creating it when missing;
//  2. applies pending goose migrations;
//  3. wires a [TokenStore] that seals values with storageKey.
//
// The ":memory:" DSN skips the database entirely and keeps the token in
// process memory.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, storageKey string, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new storages...")

	if cfg.DB.DSN == InMemoryDSN {
		log.Warn().Msg("token store is in memory, session will not survive restart")
		return &ClientStorages{Tokens: NewMemoryTokenStore()}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Tokens: NewSQLiteTokenStore(db, crypto.NewTokenSealer(storageKey), log),
		db:     db,
	}, nil
}

// Close releases the database handle, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
