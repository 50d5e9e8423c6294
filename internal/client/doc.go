// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of go-accounts.
//
// An [App] runs one sub-command against a server through an
// [adapter.ServerAdapter] and prints the result as JSON.
package client
