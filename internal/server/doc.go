// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of go-accounts.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown once SIGTERM, SIGINT or SIGQUIT arrives or the parent context
// is cancelled.
package server
