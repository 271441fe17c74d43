package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/datadesk/internal/application"
	"github.com/linskybing/datadesk/internal/domain/response"
	apiresp "github.com/linskybing/datadesk/pkg/response"
)

const maxUploadBytes = 10 << 20

var errMissingFile = errors.New("file is required")

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, application.ErrMissingJobID),
		errors.Is(err, application.ErrMissingTitle),
		errors.Is(err, application.ErrEmptyTemplate),
		errors.Is(err, application.ErrEmptyFile),
		errors.Is(err, application.ErrMissingColumn),
		errors.Is(err, application.ErrGridShape),
		errors.Is(err, application.ErrSubmitNotConfirmed),
		errors.Is(err, errMissingFile):
		return http.StatusBadRequest
	case errors.Is(err, application.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, application.ErrJobNotAssigned):
		return http.StatusForbidden
	case errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrTemplateNotFound),
		errors.Is(err, application.ErrResponseNotFound),
		errors.Is(err, application.ErrSourceUnavailable):
		return http.StatusNotFound
	case errors.Is(err, response.ErrAlreadySubmitted),
		errors.Is(err, response.ErrInvalidTransition),
		errors.Is(err, application.ErrVersionConflict),
		errors.Is(err, application.ErrResponseOwner),
		errors.Is(err, application.ErrTemplateInUse):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, apiresp.ErrorResponse{Error: err.Error()})
}

// bindingMessage produces friendly validation messages for the frontend.
func bindingMessage(err error, labels map[string]string) string {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return "Invalid input"
	}

	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		field := fe.StructField()
		lbl, ok := labels[field]
		if !ok {
			lbl = strings.ToLower(field)
		}

		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", lbl)
		case "min":
			msg = fmt.Sprintf("%s must be at least %s", lbl, fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s characters", lbl, fe.Param())
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", lbl)
		case "oneof":
			msg = fmt.Sprintf("%s must be one of [%s]", lbl, fe.Param())
		default:
			msg = fmt.Sprintf("%s is invalid", lbl)
		}
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "; ")
}

// readUploadedFile returns the text of the multipart field "file".
func readUploadedFile(c *gin.Context) (string, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return "", errMissingFile
	}
	if fh.Size > maxUploadBytes {
		return "", fmt.Errorf("%w: file exceeds %d bytes", application.ErrEmptyFile, maxUploadBytes)
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		return "", err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return "", application.ErrEmptyFile
	}
	return string(data), nil
}
