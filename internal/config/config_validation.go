// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Defaults must already
// be applied.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" ||
		cfg.App.AccessTokenDuration <= 0 ||
		cfg.App.RefreshTokenDuration <= 0 ||
		cfg.App.SessionDuration <= 0 ||
		cfg.App.PasswordMinLength < 1 {
		return ErrInvalidAppConfigs
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Pagination.PageSize < 1 || cfg.Pagination.MaxPageSize < cfg.Pagination.PageSize {
		return ErrInvalidPaginationConfigs
	}

	if cfg.Workers.SessionCleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
