package cron

import (
	"context"
	"time"

	"github.com/linskybing/datadesk/pkg/logger"
)

type auditCleaner interface {
	CleanupOldLogs(ctx context.Context, days int) (int64, error)
}

// StartCleanupTask prunes audit logs older than retentionDays once at start
// and then every interval until ctx is cancelled.
func StartCleanupTask(ctx context.Context, svc auditCleaner, retentionDays int, interval time.Duration, log *logger.Logger) {
	if retentionDays <= 0 {
		log.Info("audit cleanup disabled")
		return
	}

	go func() {
		log.Info("starting audit cleanup task", "retention_days", retentionDays)
		runCleanup(ctx, svc, retentionDays, log)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runCleanup(ctx, svc, retentionDays, log)
			}
		}
	}()
}

func runCleanup(ctx context.Context, svc auditCleaner, retentionDays int, log *logger.Logger) {
	removed, err := svc.CleanupOldLogs(ctx, retentionDays)
	if err != nil {
		log.Error("failed to cleanup old audit logs", "error", err)
		return
	}
	log.Debug("audit log cleanup completed", "removed", removed)
}
