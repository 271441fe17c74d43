package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/linskybing/datadesk/internal/config"
	"github.com/linskybing/datadesk/internal/domain/response"
	"github.com/linskybing/datadesk/internal/domain/template"
	"github.com/linskybing/datadesk/internal/domain/user"
	"github.com/linskybing/datadesk/internal/events"
	"github.com/linskybing/datadesk/internal/notify"
	"github.com/linskybing/datadesk/internal/repository"
	"github.com/linskybing/datadesk/internal/transform"
	"github.com/linskybing/datadesk/pkg/logger"
	"gorm.io/gorm/clause"
)

// AssignedJob is one row of a coder's job list.
type AssignedJob struct {
	template.TemplateSummary
	Status    response.Status `json:"status" example:"draft"`
	Version   int             `json:"version" example:"2"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty"`
}

// Workspace is everything the grid editor needs for one job.
type Workspace struct {
	Template template.Template `json:"template"`
	Headers  []string          `json:"headers"`
	Grid     [][]string        `json:"grid"`
	Status   response.Status   `json:"status" example:"draft"`
	Version  int               `json:"version" example:"2"`
	ReadOnly bool              `json:"read_only"`
}

type ResponseService struct {
	Repos    *repository.Repos
	bus      events.Bus
	notifier notify.Notifier
	log      *logger.Logger
	now      func() time.Time
}

func NewResponseService(repos *repository.Repos, bus events.Bus, notifier notify.Notifier, log *logger.Logger) *ResponseService {
	return &ResponseService{
		Repos:    repos,
		bus:      bus,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

func (s *ResponseService) ListAssignedJobs(ctx context.Context, email string) ([]AssignedJob, error) {
	u, err := s.getUser(ctx, email)
	if err != nil {
		return nil, err
	}

	templates, err := readWithRetry(ctx, config.RequestTimeout, func(ctx context.Context) ([]template.Template, error) {
		return s.Repos.Template.ListTemplatesByJobIDs(ctx, u.AssignedJobs)
	})
	if err != nil {
		return nil, err
	}
	byJob := make(map[string]template.Template, len(templates))
	for _, t := range templates {
		byJob[t.JobID] = t
	}

	responses, err := readWithRetry(ctx, config.RequestTimeout, func(ctx context.Context) ([]response.Response, error) {
		return s.Repos.Response.ListResponses(ctx, repository.ResponseQueryParams{UserEmail: &u.Email})
	})
	if err != nil {
		return nil, err
	}
	byResp := make(map[string]response.Response, len(responses))
	for _, r := range responses {
		byResp[r.JobID] = r
	}

	jobs := make([]AssignedJob, 0, len(u.AssignedJobs))
	for _, jobID := range u.AssignedJobs {
		tpl, ok := byJob[jobID]
		if !ok {
			s.log.Warn("assigned job has no template", "email", u.Email, "job_id", jobID)
			continue
		}
		job := AssignedJob{TemplateSummary: template.Summarize(tpl), Status: response.StatusNew}
		if r, ok := byResp[jobID]; ok {
			job.Status = r.CurrentStatus()
			job.Version = r.Version
			updated := r.UpdatedAt
			job.UpdatedAt = &updated
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// Workspace hydrates the grid from the saved response, or from the template
// when the coder has not saved anything yet.
func (s *ResponseService) Workspace(ctx context.Context, email, jobID string) (Workspace, error) {
	u, err := s.assignedUser(ctx, email, jobID)
	if err != nil {
		return Workspace{}, err
	}
	tpl, err := s.getTemplate(ctx, jobID)
	if err != nil {
		return Workspace{}, err
	}
	resp, err := s.currentResponse(ctx, u.Email, jobID)
	if err != nil {
		return Workspace{}, err
	}

	ws := Workspace{
		Template: tpl,
		Headers:  transform.GridHeaders,
		Status:   resp.CurrentStatus(),
		Version:  resp.Version,
		ReadOnly: resp.CurrentStatus().ReadOnly(),
	}
	if resp.IsNew() {
		ws.Grid = transform.GridFromQuestions(tpl.Questions)
	} else {
		ws.Grid = transform.GridFromAnswers(resp.Data)
	}
	return ws, nil
}

func (s *ResponseService) SaveDraft(ctx context.Context, email, jobID string, input response.SaveInput) (*response.Response, error) {
	return s.save(ctx, email, jobID, input, response.StatusDraft)
}

func (s *ResponseService) Submit(ctx context.Context, email, jobID string, input response.SubmitInput) (*response.Response, error) {
	if !input.Confirm {
		return nil, ErrSubmitNotConfirmed
	}
	return s.save(ctx, email, jobID, input.SaveInput, response.StatusSubmitted)
}

func (s *ResponseService) save(ctx context.Context, email, jobID string, input response.SaveInput, target response.Status) (*response.Response, error) {
	u, err := s.assignedUser(ctx, email, jobID)
	if err != nil {
		return nil, err
	}

	var (
		tpl  template.Template
		resp *response.Response
	)
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		// The shared lock keeps a template upload from replacing the
		// questions between the shape check and the write.
		var err error
		tpl, err = tx.Template.LockTemplate(ctx, jobID, clause.LockingStrengthShare)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTemplateNotFound
		}
		if err != nil {
			return err
		}
		if len(input.Grid) != len(tpl.Questions) {
			return fmt.Errorf("%w: expected %d rows, got %d", ErrGridShape, len(tpl.Questions), len(input.Grid))
		}
		answers := transform.RestoreReadOnly(transform.AnswersFromGrid(input.Grid), tpl.Questions)

		resp, err = loadResponse(ctx, tx.Response, u.Email, jobID)
		if err != nil {
			return err
		}
		if resp.CurrentStatus() == response.StatusSubmitted {
			return response.ErrAlreadySubmitted
		}
		if !response.CanTransition(resp.CurrentStatus(), target) {
			return response.ErrInvalidTransition
		}
		if input.Version != resp.Version {
			return ErrVersionConflict
		}

		isNew := resp.IsNew()
		expected := resp.Version
		if err := resp.Apply(target, answers, s.now()); err != nil {
			return err
		}
		if isNew {
			return tx.Response.CreateResponse(ctx, resp)
		}
		return tx.Response.UpdateResponse(ctx, resp, expected)
	})
	if err != nil {
		if errors.Is(err, repository.ErrResponseSubmitted) {
			return nil, response.ErrAlreadySubmitted
		}
		return nil, err
	}

	evtType := events.TypeResponseSaved
	if target == response.StatusSubmitted {
		evtType = events.TypeResponseSubmitted
		s.notifySubmitted(resp, tpl.Title)
	}
	publish(ctx, s.bus, s.log, events.Event{
		Type:       evtType,
		ResponseID: resp.ResponseID,
		JobID:      resp.JobID,
		UserEmail:  resp.UserEmail,
		Status:     string(resp.Status),
		Version:    resp.Version,
		At:         resp.UpdatedAt,
	})
	s.log.Info("response saved", "response_id", resp.ResponseID, "status", resp.Status, "version", resp.Version)
	return resp, nil
}

// notifySubmitted mails the configured recipients in the background.
func (s *ResponseService) notifySubmitted(resp *response.Response, title string) {
	if s.notifier == nil {
		return
	}
	notice := notify.Submission{
		ResponseID: resp.ResponseID,
		UserEmail:  resp.UserEmail,
		JobID:      resp.JobID,
		Title:      title,
	}
	if resp.SubmittedAt != nil {
		notice.SubmittedAt = *resp.SubmittedAt
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.notifier.Submitted(ctx, notice); err != nil {
			s.log.Warn("submission notification failed", "response_id", notice.ResponseID, "error", err)
		}
	}()
}

func (s *ResponseService) ListResponses(ctx context.Context, filter response.Filter) ([]response.Response, error) {
	var params repository.ResponseQueryParams
	if filter.Status != "" {
		status := filter.Status
		params.Status = &status
	}
	if filter.JobID != "" {
		jobID := filter.JobID
		params.JobID = &jobID
	}
	return readWithRetry(ctx, config.RequestTimeout, func(ctx context.Context) ([]response.Response, error) {
		return s.Repos.Response.ListResponses(ctx, params)
	})
}

func (s *ResponseService) GetResponse(ctx context.Context, responseID string) (response.Response, error) {
	resp, err := readWithRetry(ctx, config.RequestTimeout, func(ctx context.Context) (response.Response, error) {
		return s.Repos.Response.GetResponse(ctx, responseID)
	})
	if errors.Is(err, repository.ErrNotFound) {
		return resp, ErrResponseNotFound
	}
	return resp, err
}

// ExportCSV writes every response matching filter to w, one line per answer.
func (s *ResponseService) ExportCSV(ctx context.Context, w io.Writer, filter response.Filter) error {
	responses, err := s.ListResponses(ctx, filter)
	if err != nil {
		return err
	}
	return transform.WriteResponsesCSV(w, responses)
}

func (s *ResponseService) getUser(ctx context.Context, email string) (user.User, error) {
	u, err := readWithRetry(ctx, config.RequestTimeout, func(ctx context.Context) (user.User, error) {
		return s.Repos.User.GetUserByEmail(ctx, normalizeEmail(email))
	})
	if errors.Is(err, repository.ErrNotFound) {
		return u, ErrUserNotFound
	}
	return u, err
}

func (s *ResponseService) assignedUser(ctx context.Context, email, jobID string) (user.User, error) {
	u, err := s.getUser(ctx, email)
	if err != nil {
		return u, err
	}
	if !u.IsAssigned(jobID) {
		return u, ErrJobNotAssigned
	}
	return u, nil
}

func (s *ResponseService) getTemplate(ctx context.Context, jobID string) (template.Template, error) {
	tpl, err := readWithRetry(ctx, config.RequestTimeout, func(ctx context.Context) (template.Template, error) {
		return s.Repos.Template.GetTemplate(ctx, jobID)
	})
	if errors.Is(err, repository.ErrNotFound) {
		return tpl, ErrTemplateNotFound
	}
	return tpl, err
}

// currentResponse loads the stored response or the virtual new one.
func (s *ResponseService) currentResponse(ctx context.Context, email, jobID string) (*response.Response, error) {
	return readWithRetry(ctx, config.RequestTimeout, func(ctx context.Context) (*response.Response, error) {
		return loadResponse(ctx, s.Repos.Response, email, jobID)
	})
}

// loadResponse reads the row stored under the derived id. A row that was
// written for another user or job is never handed out as this one.
func loadResponse(ctx context.Context, repo repository.ResponseRepo, email, jobID string) (*response.Response, error) {
	resp, err := repo.GetResponse(ctx, response.ID(email, jobID))
	if errors.Is(err, repository.ErrNotFound) {
		return response.New(email, jobID), nil
	}
	if err != nil {
		return nil, err
	}
	if resp.UserEmail != email || resp.JobID != jobID {
		return nil, ErrResponseOwner
	}
	return &resp, nil
}
