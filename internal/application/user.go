package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/linskybing/datadesk/internal/config"
	"github.com/linskybing/datadesk/internal/domain/user"
	"github.com/linskybing/datadesk/internal/repository"
	"github.com/linskybing/datadesk/internal/transform"
	"github.com/linskybing/datadesk/pkg/csvparse"
	"github.com/linskybing/datadesk/pkg/logger"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

var validate = validator.New()

type UserService struct {
	Repos *repository.Repos
	log   *logger.Logger
}

func NewUserService(repos *repository.Repos, log *logger.Logger) *UserService {
	return &UserService{
		Repos: repos,
		log:   log,
	}
}

// ImportUsers creates or updates one user per CSV row. Existing users get
// their assignments replaced, and their role when the row names one. Their
// password is never touched. A failing row is reported in the result and does
// not stop the others.
func (s *UserService) ImportUsers(ctx context.Context, csvText string) (user.ImportResult, error) {
	result := user.ImportResult{Failures: []user.ImportFailure{}}

	table, err := csvparse.Parse(csvText)
	if err != nil {
		return result, ErrEmptyFile
	}
	if !hasHeader(table, transform.HeaderUserEmail) {
		return result, fmt.Errorf("%w: %s", ErrMissingColumn, transform.HeaderUserEmail)
	}

	records := transform.UsersFromTable(table)

	var mu sync.Mutex
	fail := func(row int, email string, err error) {
		mu.Lock()
		defer mu.Unlock()
		result.Errors++
		result.Failures = append(result.Failures, user.ImportFailure{Row: row, Email: email, Error: err.Error()})
	}
	succeed := func() {
		mu.Lock()
		defer mu.Unlock()
		result.Created++
	}

	workers := config.ImportWorkers
	if workers < 1 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		row := i + 2 // header is line 1
		rec.Email = normalizeEmail(rec.Email)

		if _, dup := seen[rec.Email]; dup && rec.Email != "" {
			fail(row, rec.Email, ErrDuplicateEmail)
			continue
		}
		seen[rec.Email] = struct{}{}

		g.Go(func() error {
			if err := s.importOne(gctx, rec); err != nil {
				s.log.Warn("user import row failed", "row", row, "email", rec.Email, "error", err)
				fail(row, rec.Email, err)
				return nil
			}
			succeed()
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(result.Failures, func(i, j int) bool {
		return result.Failures[i].Row < result.Failures[j].Row
	})

	s.log.Info("users imported", "created", result.Created, "errors", result.Errors)
	return result, nil
}

func (s *UserService) importOne(ctx context.Context, rec user.Record) error {
	if err := validate.Var(rec.Email, "required,email"); err != nil {
		return ErrInvalidEmail
	}
	role, ok := user.ParseRole(strings.ToLower(strings.TrimSpace(rec.Role)))
	if !ok {
		return ErrInvalidRole
	}

	existing, err := s.Repos.User.GetUserByEmail(ctx, rec.Email)
	switch {
	case err == nil:
		// An empty role cell leaves an existing account's role alone.
		if rec.RoleSet {
			existing.Role = role
		}
		existing.AssignedJobs = rec.AssignedJobs
		return s.Repos.User.SaveUser(ctx, &existing)
	case !errors.Is(err, repository.ErrNotFound):
		return err
	}

	if rec.Password == "" {
		return ErrPasswordRequired
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(rec.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.Repos.User.CreateUser(ctx, &user.User{
		Email:        rec.Email,
		PasswordHash: string(hashed),
		AssignedJobs: rec.AssignedJobs,
		Role:         role,
	})
}

func (s *UserService) ListUsers(ctx context.Context) ([]user.User, error) {
	return readWithRetry(ctx, config.RequestTimeout, s.Repos.User.ListUsers)
}

func (s *UserService) GetUser(ctx context.Context, email string) (user.User, error) {
	u, err := readWithRetry(ctx, config.RequestTimeout, func(ctx context.Context) (user.User, error) {
		return s.Repos.User.GetUserByEmail(ctx, normalizeEmail(email))
	})
	if errors.Is(err, repository.ErrNotFound) {
		return u, ErrUserNotFound
	}
	return u, err
}

func hasHeader(table *csvparse.Table, header string) bool {
	for _, h := range table.Headers {
		if h == header {
			return true
		}
	}
	return false
}
