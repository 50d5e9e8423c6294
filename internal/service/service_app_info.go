// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/models"
)

type appInfoService struct {
	info models.AppInfo

	logger *logger.Logger
}

// NewAppInfoService fixes the published server info at construction. The
// version must be set.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info: models.AppInfo{
			Version:              cfg.Version,
			TokenIssuer:          cfg.TokenIssuer,
			AccessTokenLifetime:  int64(cfg.AccessTokenDuration.Seconds()),
			RefreshTokenLifetime: int64(cfg.RefreshTokenDuration.Seconds()),
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(_ context.Context) models.AppInfo {
	return s.info
}
