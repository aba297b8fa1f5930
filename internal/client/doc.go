// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line front end of the bank client.
//
// It parses a command, makes sure a session is loaded when the command needs
// one, calls the client services and prints plain-text results. Running
// without a command starts an interactive shell that keeps the profile fresh
// with the background refresh job.
package client
