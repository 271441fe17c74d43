package application

import (
	"errors"

	"github.com/linskybing/datadesk/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrMissingColumn      = errors.New("csv is missing a required column")
	ErrEmptyFile          = errors.New("uploaded file is empty")
	ErrInvalidEmail       = errors.New("email is invalid")
	ErrInvalidRole        = errors.New("role must be admin or coder")
	ErrPasswordRequired   = errors.New("password is required for new users")
	ErrDuplicateEmail     = errors.New("email appears more than once in the file")

	ErrMissingJobID      = errors.New("job_id is required")
	ErrMissingTitle      = errors.New("title is required")
	ErrEmptyTemplate     = errors.New("template has no questions")
	ErrTemplateNotFound  = errors.New("template not found")
	ErrTemplateInUse     = errors.New("template already has responses and cannot be replaced")
	ErrSourceUnavailable = errors.New("template source file is not available")

	ErrJobNotAssigned     = errors.New("job is not assigned to this user")
	ErrGridShape          = errors.New("grid rows do not match the template questions")
	ErrSubmitNotConfirmed = errors.New("submission must be confirmed")
	ErrResponseNotFound   = errors.New("response not found")

	// ErrVersionConflict is returned when the client saved against a stale
	// version of a response.
	ErrVersionConflict = repository.ErrVersionConflict

	// ErrResponseOwner is returned when a stored response under the derived
	// id was written for a different user or job.
	ErrResponseOwner = repository.ErrResponseOwner
)
