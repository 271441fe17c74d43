package repository

import (
	"context"
	"time"

	"github.com/linskybing/datadesk/internal/domain/audit"
	"gorm.io/gorm"
)

// AuditQueryParams narrows an audit trail query. Nil filters match
// everything; ResourceID selects the history of one template, response or
// import batch.
type AuditQueryParams struct {
	ActorEmail   *string
	ResourceType *string
	ResourceID   *string
	Action       *string
	StartTime    *time.Time
	EndTime      *time.Time
	Limit        int
	Offset       int
}

func (p AuditQueryParams) scope(q *gorm.DB) *gorm.DB {
	eq := []struct {
		column string
		value  *string
	}{
		{"actor_email", p.ActorEmail},
		{"resource_type", p.ResourceType},
		{"resource_id", p.ResourceID},
		{"action", p.Action},
	}
	for _, f := range eq {
		if f.value != nil {
			q = q.Where(f.column+" = ?", *f.value)
		}
	}
	if p.StartTime != nil {
		q = q.Where("created_at >= ?", *p.StartTime)
	}
	if p.EndTime != nil {
		q = q.Where("created_at <= ?", *p.EndTime)
	}
	return q
}

type AuditRepo interface {
	GetAuditLogs(ctx context.Context, params AuditQueryParams) ([]audit.AuditLog, error)
	CreateAuditLog(ctx context.Context, entry *audit.AuditLog) error
	PurgeAuditLogsBefore(ctx context.Context, cutoff time.Time) (int64, error)
	WithTx(tx *gorm.DB) AuditRepo
}

type DBAuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *DBAuditRepo {
	return &DBAuditRepo{
		db: db,
	}
}

// GetAuditLogs returns matching entries newest first. Entries written in the
// same instant keep insertion order reversed through the id tiebreak.
func (r *DBAuditRepo) GetAuditLogs(ctx context.Context, params AuditQueryParams) ([]audit.AuditLog, error) {
	logs := []audit.AuditLog{}
	q := params.scope(r.db.WithContext(ctx).Model(&audit.AuditLog{})).
		Order("created_at DESC").
		Order("id DESC")
	if params.Limit > 0 {
		q = q.Limit(params.Limit)
	}
	if params.Offset > 0 {
		q = q.Offset(params.Offset)
	}
	if err := q.Find(&logs).Error; err != nil {
		return nil, translate(err)
	}
	return logs, nil
}

func (r *DBAuditRepo) CreateAuditLog(ctx context.Context, entry *audit.AuditLog) error {
	return translate(r.db.WithContext(ctx).Create(entry).Error)
}

// PurgeAuditLogsBefore removes entries older than cutoff and reports how many
// went.
func (r *DBAuditRepo) PurgeAuditLogsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&audit.AuditLog{})
	return result.RowsAffected, result.Error
}

func (r *DBAuditRepo) WithTx(tx *gorm.DB) AuditRepo {
	if tx == nil {
		return r
	}
	return &DBAuditRepo{
		db: tx,
	}
}
