package application

import (
	"context"
	"errors"
	"strings"

	"github.com/linskybing/datadesk/internal/api/middleware"
	"github.com/linskybing/datadesk/internal/config"
	"github.com/linskybing/datadesk/internal/domain/user"
	"github.com/linskybing/datadesk/internal/repository"
	"github.com/linskybing/datadesk/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// Session is what a successful login hands back to the client.
type Session struct {
	Token string
	Email string
	Role  user.Role
}

type AuthService struct {
	Repos *repository.Repos
	log   *logger.Logger
}

func NewAuthService(repos *repository.Repos, log *logger.Logger) *AuthService {
	return &AuthService{
		Repos: repos,
		log:   log,
	}
}

func (s *AuthService) Authenticate(ctx context.Context, email, password string) (Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}

	u, err := readWithRetry(ctx, config.RequestTimeout, func(ctx context.Context) (user.User, error) {
		return s.Repos.User.GetUserByEmail(ctx, email)
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(u.Email, string(u.Role), config.TokenTTL)
	if err != nil {
		return Session{}, err
	}

	return Session{Token: token, Email: u.Email, Role: u.Role}, nil
}

// EnsureBootstrapAdmin creates the configured admin account when it does not
// exist. An existing account is left as it is.
func (s *AuthService) EnsureBootstrapAdmin(ctx context.Context) error {
	email := normalizeEmail(config.AdminEmail)
	if email == "" || config.AdminPassword == "" {
		return nil
	}

	_, err := s.Repos.User.GetUserByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(config.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &user.User{
		Email:        email,
		PasswordHash: string(hashed),
		Role:         user.RoleAdmin,
		AssignedJobs: []string{},
	}
	if err := s.Repos.User.CreateUser(ctx, admin); err != nil && !errors.Is(err, repository.ErrAlreadyExists) {
		return err
	}
	s.log.Info("bootstrap admin created", "email", email)
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
