// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
)

// SessionCleaner periodically deletes expired login sessions.
type SessionCleaner struct {
	purger   SessionPurger
	interval time.Duration
	logger   *logger.Logger
}

func NewSessionCleaner(purger SessionPurger, interval time.Duration, logger *logger.Logger) *SessionCleaner {
	if interval <= 0 {
		interval = config.DefaultSessionCleanupInterval
	}

	return &SessionCleaner{
		purger:   purger,
		interval: interval,
		logger:   logger,
	}
}

// Run purges once per interval until ctx is cancelled. Purge failures are
// logged and retried on the next tick.
func (c *SessionCleaner) Run(ctx context.Context) error {
	c.logger.Info().Dur("interval", c.interval).Msg("session cleaner started")

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("session cleaner stopped")
			return nil
		case <-ticker.C:
			c.purge(ctx)
		}
	}
}

func (c *SessionCleaner) purge(ctx context.Context) {
	deleted, err := c.purger.PurgeExpiredSessions(ctx)
	if err != nil {
		if ctx.Err() == nil {
			c.logger.Err(err).Msg("error purging expired sessions")
		}
		return
	}

	if deleted > 0 {
		c.logger.Info().Int64("deleted", deleted).Msg("expired sessions purged")
	}
}
