package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/auth"
)

// SessionJobs keeps the refresh_tokens table from growing without bound.
type SessionJobs struct {
	refreshTokenRepo auth.RefreshTokenRepository
	retention        time.Duration
	now              func() time.Time
}

// NewSessionJobs deletes refresh tokens once they have been expired or
// revoked for longer than retention.
func NewSessionJobs(refreshTokenRepo auth.RefreshTokenRepository, retention time.Duration) *SessionJobs {
	return &SessionJobs{
		refreshTokenRepo: refreshTokenRepo,
		retention:        retention,
		now:              time.Now,
	}
}

func (j *SessionJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("purge_stale_refresh_tokens", time.Hour, j.PurgeStaleRefreshTokens)
}

func (j *SessionJobs) PurgeStaleRefreshTokens(ctx context.Context) error {
	cutoff := j.now().Add(-j.retention)
	deleted, err := j.refreshTokenRepo.DeleteStaleRefreshTokens(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("purge refresh tokens: %w", err)
	}
	if deleted > 0 {
		slog.Info("Cron: Purged stale refresh tokens", "count", deleted, "cutoff", cutoff)
	}
	return nil
}
