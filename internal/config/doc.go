// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the settings of the go-accounts server and client.
//
// Server settings come from environment variables, then command-line flags,
// then an optional JSON file named by CONFIG or -c. A later source overrides
// the non-zero fields of an earlier one; defaults fill what is still empty
// and the result is validated. See [GetStructuredConfig].
//
// The client reads CLIENT_* variables and its own flags, see
// [GetClientConfig].
package config
