// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppInfo describes a running server to API clients. Token lifetimes are
// in seconds so a client can schedule its refresh.
type AppInfo struct {
	Version              string `json:"version"`
	TokenIssuer          string `json:"token_issuer"`
	AccessTokenLifetime  int64  `json:"access_token_lifetime"`
	RefreshTokenLifetime int64  `json:"refresh_token_lifetime"`
}
