// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses configuration flags from args and returns the populated
// config together with the remaining positional arguments (the command).
//
// Flags:
//
//	-a banking API base URL
//	-request-timeout outbound request timeout (e.g. "15s")
//	-d local database DSN
//	-storage-key secret used to seal the stored token
//	-log log file path
//	-refresh-interval background profile refresh interval (e.g. "1m")
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var (
		address         string
		requestTimeout  time.Duration
		databaseDSN     string
		storageKey      string
		logFile         string
		refreshInterval time.Duration
		jsonConfigPath  string
	)

	fs := flag.NewFlagSet("bank-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&address, "a", "", "Banking API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&storageKey, "storage-key", "", "Token sealing key")
	fs.StringVar(&logFile, "log", "", "Log file path")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Profile refresh interval (e.g., 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			StorageKey: storageKey,
			LogFile:    logFile,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{RefreshInterval: refreshInterval},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}
