// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/store"
)

type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	UserService    UserService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	userService := NewUserValidationService(cfg.App.PasswordMinLength).
		Wrap(NewUserService(storages.UserRepository, cfg.Pagination, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.SessionRepository, cfg.App, logger),
		TokenService:   NewTokenService(storages.UserRepository, cfg.App, logger),
		UserService:    userService,
		AppInfoService: appInfoService,
	}, nil
}
