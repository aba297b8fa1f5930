// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-bank-client/internal/adapter"
	"github.com/MKhiriev/go-bank-client/internal/config"
	"github.com/MKhiriev/go-bank-client/internal/logger"
	"github.com/MKhiriev/go-bank-client/internal/store"
)

// ClientServices is the explicitly constructed object graph shared by the
// client front end. There is exactly one synchronizer per process.
type ClientServices struct {
	Session      SessionSynchronizer
	Auth         AuthService
	Transactions TransactionService
	RefreshJob   ProfileRefreshJob
}

func NewClientServices(storages *store.ClientStorages, bank adapter.BankAdapter, workersCfg config.ClientWorkers, log *logger.Logger) *ClientServices {
	session := NewSessionSynchronizer(bank, storages.Tokens, log)

	return &ClientServices{
		Session:      session,
		Auth:         NewAuthService(bank, storages.Tokens, session, log),
		Transactions: NewTransactionService(bank, session, log),
		RefreshJob:   NewProfileRefreshJob(session, workersCfg.RefreshInterval, log),
	}
}
