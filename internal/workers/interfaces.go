// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the go-accounts server.
//
// Each job implements [Worker]; [Workers] starts them together and waits
// until all of them return.
package workers

import (
	"context"

	"github.com/MKhiriev/go-accounts/internal/service"
)

// Worker is a background job. Run blocks until ctx is cancelled or the job
// fails.
type Worker interface {
	Run(ctx context.Context) error
}

// SessionPurger removes expired login sessions and reports how many were
// deleted. [service.AuthService] satisfies it.
type SessionPurger interface {
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

var _ SessionPurger = (service.AuthService)(nil)
