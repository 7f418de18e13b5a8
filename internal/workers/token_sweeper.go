// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-visit-feedback/internal/logger"
	"github.com/MKhiriev/go-visit-feedback/internal/store"
)

// TokenSweeper periodically drops survey tokens whose expiry has passed.
type TokenSweeper struct {
	tokens   store.SurveyTokenRepository
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewTokenSweeper(tokens store.SurveyTokenRepository, interval time.Duration, logger *logger.Logger) *TokenSweeper {
	return &TokenSweeper{
		tokens:   tokens,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Run sweeps once per interval until ctx is done. A non-positive interval
// disables the sweeper.
func (s *TokenSweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info().Msg("token sweeper disabled")
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("token sweeper stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep removes expired tokens and reports how many were removed.
func (s *TokenSweeper) Sweep(ctx context.Context) int {
	removed := s.tokens.DeleteExpired(ctx, s.now())
	if removed > 0 {
		s.logger.Debug().Int("removed", removed).Msg("expired survey tokens swept")
	}
	return removed
}
