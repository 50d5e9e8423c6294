// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
)

// Workers is the set of background jobs of the server.
type Workers struct {
	workers []Worker
}

// NewWorkers builds the server's background jobs from cfg.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewSessionCleaner(services.AuthService, cfg.SessionCleanupInterval, logger),
		},
	}
}

// Run starts every worker and blocks until all of them return. The first
// failure cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		worker := worker
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}
	return g.Wait()
}
