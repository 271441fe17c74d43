package repository

import (
	"context"

	"github.com/linskybing/datadesk/internal/domain/template"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TemplateRepo interface {
	GetTemplate(ctx context.Context, jobID string) (template.Template, error)
	LockTemplate(ctx context.Context, jobID, strength string) (template.Template, error)
	ListTemplates(ctx context.Context) ([]template.Template, error)
	ListTemplatesByJobIDs(ctx context.Context, jobIDs []string) ([]template.Template, error)
	SaveTemplate(ctx context.Context, t *template.Template) error
	WithTx(tx *gorm.DB) TemplateRepo
}

type DBTemplateRepo struct {
	db *gorm.DB
}

func NewTemplateRepo(db *gorm.DB) *DBTemplateRepo {
	return &DBTemplateRepo{
		db: db,
	}
}

func (r *DBTemplateRepo) GetTemplate(ctx context.Context, jobID string) (template.Template, error) {
	var t template.Template
	if err := r.db.WithContext(ctx).Where("job_id = ?", jobID).First(&t).Error; err != nil {
		return t, translate(err)
	}
	return t, nil
}

// LockTemplate reads a template and holds a row lock of the given strength
// (clause.LockingStrengthUpdate or clause.LockingStrengthShare) until the
// surrounding transaction ends. Outside a transaction it is a plain read.
func (r *DBTemplateRepo) LockTemplate(ctx context.Context, jobID, strength string) (template.Template, error) {
	var t template.Template
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: strength}).
		Where("job_id = ?", jobID).
		First(&t).Error
	if err != nil {
		return t, translate(err)
	}
	return t, nil
}

func (r *DBTemplateRepo) ListTemplates(ctx context.Context) ([]template.Template, error) {
	var templates []template.Template
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&templates).Error
	return templates, err
}

func (r *DBTemplateRepo) ListTemplatesByJobIDs(ctx context.Context, jobIDs []string) ([]template.Template, error) {
	var templates []template.Template
	if len(jobIDs) == 0 {
		return templates, nil
	}
	err := r.db.WithContext(ctx).Where("job_id IN ?", jobIDs).Find(&templates).Error
	return templates, err
}

func (r *DBTemplateRepo) SaveTemplate(ctx context.Context, t *template.Template) error {
	return translate(r.db.WithContext(ctx).Save(t).Error)
}

func (r *DBTemplateRepo) WithTx(tx *gorm.DB) TemplateRepo {
	if tx == nil {
		return r
	}
	return &DBTemplateRepo{
		db: tx,
	}
}
