// Package seed loads demo templates and users from a YAML fixture.
package seed

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/linskybing/datadesk/internal/application"
	"github.com/linskybing/datadesk/internal/domain/template"
	"github.com/linskybing/datadesk/internal/transform"
	"github.com/linskybing/datadesk/pkg/logger"
	"gopkg.in/yaml.v2"
)

type Fixture struct {
	Templates []TemplateFixture `yaml:"templates"`
	Users     []UserFixture     `yaml:"users"`
}

type TemplateFixture struct {
	JobID       string `yaml:"job_id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	CSV         string `yaml:"csv"`
}

type UserFixture struct {
	Email        string   `yaml:"email"`
	Password     string   `yaml:"password"`
	Role         string   `yaml:"role"`
	AssignedJobs []string `yaml:"assigned_jobs"`
}

func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &f, nil
}

// UsersCSV renders users in the format accepted by the users import.
func UsersCSV(users []UserFixture) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{
		transform.HeaderUserEmail,
		transform.HeaderPassword,
		transform.HeaderAssignedJobs,
		transform.HeaderRole,
	}); err != nil {
		return "", err
	}
	for _, u := range users {
		if err := w.Write([]string{u.Email, u.Password, strings.Join(u.AssignedJobs, ","), u.Role}); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}

// Apply uploads every template and imports every user. Templates that
// already have responses are left untouched.
func Apply(ctx context.Context, svc *application.Services, f *Fixture, log *logger.Logger) error {
	for _, t := range f.Templates {
		tpl, err := svc.Template.UploadTemplate(ctx, template.UploadTemplateInput{
			JobID:       t.JobID,
			Title:       t.Title,
			Description: t.Description,
		}, t.CSV)
		switch {
		case errors.Is(err, application.ErrTemplateInUse):
			log.Warn("template in use, skipped", "job_id", t.JobID)
		case err != nil:
			return fmt.Errorf("template %s: %w", t.JobID, err)
		default:
			log.Info("template seeded", "job_id", tpl.JobID, "version", tpl.Version, "questions", len(tpl.Questions))
		}
	}

	if len(f.Users) == 0 {
		return nil
	}
	text, err := UsersCSV(f.Users)
	if err != nil {
		return err
	}
	result, err := svc.User.ImportUsers(ctx, text)
	if err != nil {
		return fmt.Errorf("users: %w", err)
	}
	for _, fail := range result.Failures {
		log.Warn("user not seeded", "row", fail.Row, "email", fail.Email, "error", fail.Error)
	}
	log.Info("users seeded", "created", result.Created, "errors", result.Errors)
	return nil
}
