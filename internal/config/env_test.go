// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN_SIGN_KEY":         "jwt_secret",
		"APP_TOKEN_ISSUER":           "test_issuer",
		"APP_ACCESS_TOKEN_DURATION":  "10m",
		"APP_REFRESH_TOKEN_DURATION": "48h",
		"APP_SESSION_DURATION":       "1h",
		"APP_PASSWORD_MIN_LENGTH":    "12",
		"APP_LOG_LEVEL":              "info",
		"APP_VERSION":                "1.2.3",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",
		"SERVER_SECURE_COOKIES":  "true",

		"STORAGE_DB_DRIVER":       "sqlite3",
		"STORAGE_DB_DATABASE_URI": "file:test.db",

		"PAGINATION_PAGE_SIZE":     "5",
		"PAGINATION_MAX_PAGE_SIZE": "50",

		"WORKERS_SESSION_CLEANUP_INTERVAL": "15m",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 10*time.Minute, cfg.App.AccessTokenDuration)
	assert.Equal(t, 48*time.Hour, cfg.App.RefreshTokenDuration)
	assert.Equal(t, time.Hour, cfg.App.SessionDuration)
	assert.Equal(t, 12, cfg.App.PasswordMinLength)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Server.SecureCookies)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:test.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 5, cfg.Pagination.PageSize)
	assert.Equal(t, 50, cfg.Pagination.MaxPageSize)
	assert.Equal(t, 15*time.Minute, cfg.Workers.SessionCleanupInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_ACCESS_TOKEN_DURATION": "not-a-duration"})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_ClientConfig(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CLIENT_ADDRESS":         "localhost:8080",
		"CLIENT_REQUEST_TIMEOUT": "3s",
		"CLIENT_USERNAME":        "alice",
		"CLIENT_PASSWORD":        "secret",
	})

	cfg := &ClientConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "alice", cfg.Credentials.Username)
	assert.Equal(t, "secret", cfg.Credentials.Password)
}
