// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	secureCookies  bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	requestTimeout := cfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = config.DefaultRequestTimeout
	}

	return &Handler{
		services:       services,
		requestTimeout: requestTimeout,
		secureCookies:  cfg.SecureCookies,
		logger:         logger,
	}
}
