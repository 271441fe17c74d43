package handlers

import (
	"context"

	"github.com/linskybing/datadesk/internal/application"
	"github.com/linskybing/datadesk/internal/repository"
	"github.com/linskybing/datadesk/pkg/logger"
)

type Handlers struct {
	Audit    *AuditHandler
	Auth     *AuthHandler
	Health   *HealthHandler
	User     *UserHandler
	Template *TemplateHandler
	Response *ResponseHandler
	Stream   *StreamHandler
}

func New(svc *application.Services, repos *repository.Repos, ping func(context.Context) error, log *logger.Logger) *Handlers {
	return &Handlers{
		Audit:    NewAuditHandler(svc.Audit),
		Auth:     NewAuthHandler(svc.Auth),
		Health:   NewHealthHandler(ping),
		User:     NewUserHandler(svc.User, repos.Audit, log),
		Template: NewTemplateHandler(svc.Template, repos.Audit, log),
		Response: NewResponseHandler(svc.Response, repos.Audit, log),
		Stream:   NewStreamHandler(svc.Bus, log),
	}
}
