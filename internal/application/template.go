package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/linskybing/datadesk/internal/config"
	"github.com/linskybing/datadesk/internal/domain/template"
	"github.com/linskybing/datadesk/internal/events"
	"github.com/linskybing/datadesk/internal/repository"
	"github.com/linskybing/datadesk/internal/storage"
	"github.com/linskybing/datadesk/internal/transform"
	"github.com/linskybing/datadesk/pkg/csvparse"
	"github.com/linskybing/datadesk/pkg/logger"
	"gorm.io/gorm/clause"
)

type TemplateService struct {
	Repos *repository.Repos
	store storage.ObjectStore
	bus   events.Bus
	log   *logger.Logger
	now   func() time.Time
}

func NewTemplateService(repos *repository.Repos, store storage.ObjectStore, bus events.Bus, log *logger.Logger) *TemplateService {
	return &TemplateService{
		Repos: repos,
		store: store,
		bus:   bus,
		log:   log,
		now:   time.Now,
	}
}

// UploadTemplate parses csvText into questions and stores them under the job
// id. An existing template is replaced with the next version unless coders
// have already started answering it.
func (s *TemplateService) UploadTemplate(ctx context.Context, input template.UploadTemplateInput, csvText string) (template.Template, error) {
	jobID := strings.TrimSpace(input.JobID)
	title := strings.TrimSpace(input.Title)
	if jobID == "" {
		return template.Template{}, ErrMissingJobID
	}
	if title == "" {
		return template.Template{}, ErrMissingTitle
	}

	table, err := csvparse.Parse(csvText)
	if err != nil {
		return template.Template{}, ErrEmptyFile
	}
	questions := transform.QuestionsFromTable(table, s.log.With("job_id", jobID))
	if len(questions) == 0 {
		return template.Template{}, ErrEmptyTemplate
	}

	now := s.now()
	tpl := template.Template{
		JobID:       jobID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Questions:   questions,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		// The update lock holds off coders' first saves until the in-use
		// check and the replacement have committed.
		existing, err := tx.Template.LockTemplate(ctx, jobID, clause.LockingStrengthUpdate)
		switch {
		case err == nil:
			count, err := tx.Response.CountResponsesByJob(ctx, jobID)
			if err != nil {
				return err
			}
			if count > 0 {
				return ErrTemplateInUse
			}
			tpl.Version = existing.Version + 1
			tpl.CreatedAt = existing.CreatedAt
		case !errors.Is(err, repository.ErrNotFound):
			return err
		}

		tpl.SourceObject = s.archive(ctx, jobID, tpl.Version, csvText)
		return tx.Template.SaveTemplate(ctx, &tpl)
	})
	if err != nil {
		return template.Template{}, err
	}

	s.log.Info("template uploaded", "job_id", jobID, "version", tpl.Version, "questions", len(tpl.Questions))
	publish(ctx, s.bus, s.log, events.Event{
		Type:    events.TypeTemplateUploaded,
		JobID:   jobID,
		Version: tpl.Version,
		At:      now,
	})
	return tpl, nil
}

// archive stores the raw upload and returns its key, or "" when archiving is
// disabled or fails.
func (s *TemplateService) archive(ctx context.Context, jobID string, version int, csvText string) string {
	if s.store == nil {
		return ""
	}
	key := template.SourceObjectKey(jobID, version)
	if err := s.store.PutObject(ctx, key, []byte(csvText), "text/csv"); err != nil {
		s.log.Warn("template archive failed", "job_id", jobID, "key", key, "error", err)
		return ""
	}
	return key
}

func (s *TemplateService) GetTemplate(ctx context.Context, jobID string) (template.Template, error) {
	tpl, err := readWithRetry(ctx, config.RequestTimeout, func(ctx context.Context) (template.Template, error) {
		return s.Repos.Template.GetTemplate(ctx, jobID)
	})
	if errors.Is(err, repository.ErrNotFound) {
		return tpl, ErrTemplateNotFound
	}
	return tpl, err
}

func (s *TemplateService) ListTemplates(ctx context.Context) ([]template.Template, error) {
	return readWithRetry(ctx, config.RequestTimeout, s.Repos.Template.ListTemplates)
}

// TemplateSource returns the archived CSV of the current template version.
func (s *TemplateService) TemplateSource(ctx context.Context, jobID string) ([]byte, string, error) {
	tpl, err := s.GetTemplate(ctx, jobID)
	if err != nil {
		return nil, "", err
	}
	if s.store == nil || tpl.SourceObject == "" {
		return nil, "", ErrSourceUnavailable
	}

	data, err := s.store.GetObject(ctx, tpl.SourceObject)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, "", ErrSourceUnavailable
		}
		return nil, "", err
	}

	filename := tpl.JobID + ".csv"
	return data, filename, nil
}

func publish(ctx context.Context, bus events.Bus, log *logger.Logger, evt events.Event) {
	if bus == nil {
		return
	}
	if err := bus.Publish(ctx, evt); err != nil {
		log.Warn("event publish failed", "type", evt.Type, "job_id", evt.JobID, "error", err)
	}
}
