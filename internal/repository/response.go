package repository

import (
	"context"
	"errors"

	"github.com/linskybing/datadesk/internal/domain/response"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResponseQueryParams struct {
	Status    *response.Status
	JobID     *string
	UserEmail *string
}

type ResponseRepo interface {
	GetResponse(ctx context.Context, responseID string) (response.Response, error)
	ListResponses(ctx context.Context, params ResponseQueryParams) ([]response.Response, error)
	CountResponsesByJob(ctx context.Context, jobID string) (int64, error)
	CreateResponse(ctx context.Context, r *response.Response) error
	UpdateResponse(ctx context.Context, r *response.Response, expectedVersion int) error
	WithTx(tx *gorm.DB) ResponseRepo
}

type DBResponseRepo struct {
	db *gorm.DB
}

func NewResponseRepo(db *gorm.DB) *DBResponseRepo {
	return &DBResponseRepo{
		db: db,
	}
}

func (r *DBResponseRepo) GetResponse(ctx context.Context, responseID string) (response.Response, error) {
	var resp response.Response
	if err := r.db.WithContext(ctx).Where("response_id = ?", responseID).First(&resp).Error; err != nil {
		return resp, translate(err)
	}
	return resp, nil
}

func (r *DBResponseRepo) ListResponses(ctx context.Context, params ResponseQueryParams) ([]response.Response, error) {
	var responses []response.Response
	query := r.db.WithContext(ctx).Model(&response.Response{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.JobID != nil {
		query = query.Where("job_id = ?", *params.JobID)
	}
	if params.UserEmail != nil {
		query = query.Where("user_email = ?", *params.UserEmail)
	}

	err := query.Order("updated_at DESC").Find(&responses).Error
	return responses, err
}

func (r *DBResponseRepo) CountResponsesByJob(ctx context.Context, jobID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&response.Response{}).Where("job_id = ?", jobID).Count(&count).Error
	return count, err
}

// CreateResponse inserts the first save of a response. Another writer having
// created the same response first is reported as a version conflict; a row
// under the same id written for another user or job is ErrResponseOwner.
// The insert skips conflicting rows instead of failing so the transaction
// stays usable for the follow-up read.
func (r *DBResponseRepo) CreateResponse(ctx context.Context, resp *response.Response) error {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "response_id"}}, DoNothing: true}).
		Create(resp)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrVersionConflict
		}
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	existing, err := r.GetResponse(ctx, resp.ResponseID)
	switch {
	case errors.Is(err, ErrNotFound):
		return ErrVersionConflict
	case err != nil:
		return err
	case !sameOwner(existing, resp):
		return ErrResponseOwner
	default:
		return ErrVersionConflict
	}
}

// UpdateResponse writes resp only if the stored row belongs to the same user
// and job, still carries expectedVersion and has not been submitted.
func (r *DBResponseRepo) UpdateResponse(ctx context.Context, resp *response.Response, expectedVersion int) error {
	result := r.db.WithContext(ctx).Model(&response.Response{}).
		Where("response_id = ? AND user_email = ? AND job_id = ?", resp.ResponseID, resp.UserEmail, resp.JobID).
		Where("version = ? AND status <> ?", expectedVersion, response.StatusSubmitted).
		Updates(map[string]interface{}{
			"status":       resp.Status,
			"data":         resp.Data,
			"version":      resp.Version,
			"updated_at":   resp.UpdatedAt,
			"submitted_at": resp.SubmittedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	current, err := r.GetResponse(ctx, resp.ResponseID)
	switch {
	case errors.Is(err, ErrNotFound):
		return ErrVersionConflict
	case err != nil:
		return err
	case !sameOwner(current, resp):
		return ErrResponseOwner
	case current.Status == response.StatusSubmitted:
		return ErrResponseSubmitted
	default:
		return ErrVersionConflict
	}
}

func sameOwner(stored response.Response, resp *response.Response) bool {
	return stored.UserEmail == resp.UserEmail && stored.JobID == resp.JobID
}

func (r *DBResponseRepo) WithTx(tx *gorm.DB) ResponseRepo {
	if tx == nil {
		return r
	}
	return &DBResponseRepo{
		db: tx,
	}
}
