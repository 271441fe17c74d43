package application

import (
	"context"
	"time"

	"github.com/linskybing/datadesk/internal/config"
	"github.com/linskybing/datadesk/internal/domain/audit"
	"github.com/linskybing/datadesk/internal/repository"
)

type AuditService struct {
	Repos *repository.Repos
	now   func() time.Time
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
		now:   time.Now,
	}
}

func (s *AuditService) QueryAuditLogs(ctx context.Context, params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	return readWithRetry(ctx, config.RequestTimeout, func(ctx context.Context) ([]audit.AuditLog, error) {
		return s.Repos.Audit.GetAuditLogs(ctx, params)
	})
}

// CleanupOldLogs drops entries older than days and returns how many went.
func (s *AuditService) CleanupOldLogs(ctx context.Context, days int) (int64, error) {
	return s.Repos.Audit.PurgeAuditLogsBefore(ctx, s.now().AddDate(0, 0, -days))
}
