// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultHTTPAddress = "https://react-bank-project.eapi.joincoded.com/mini-project/api"
	// DefaultRequestTimeout bounds every outbound request so a stalled
	// backend fails the command instead of hanging it.
	DefaultRequestTimeout  = 15 * time.Second
	DefaultDSN             = "bank-client.db"
	DefaultRefreshInterval = time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{RefreshInterval: DefaultRefreshInterval},
	}
}
