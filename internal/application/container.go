package application

import (
	"github.com/linskybing/datadesk/internal/events"
	"github.com/linskybing/datadesk/internal/notify"
	"github.com/linskybing/datadesk/internal/repository"
	"github.com/linskybing/datadesk/internal/storage"
	"github.com/linskybing/datadesk/pkg/logger"
)

// Infra carries the outside collaborators. Store may be nil, which disables
// template archiving; the other fields fall back to in-process defaults.
type Infra struct {
	Store    storage.ObjectStore
	Bus      events.Bus
	Notifier notify.Notifier
	Log      *logger.Logger
}

type Services struct {
	Audit    *AuditService
	Auth     *AuthService
	User     *UserService
	Template *TemplateService
	Response *ResponseService
	Bus      events.Bus
}

func New(repos *repository.Repos, infra Infra) *Services {
	if infra.Log == nil {
		infra.Log = logger.Nop()
	}
	if infra.Bus == nil {
		infra.Bus = events.NewMemoryBus()
	}
	if infra.Notifier == nil {
		infra.Notifier = notify.Nop{}
	}

	return &Services{
		Audit:    NewAuditService(repos),
		Auth:     NewAuthService(repos, infra.Log.With("service", "auth")),
		User:     NewUserService(repos, infra.Log.With("service", "user")),
		Template: NewTemplateService(repos, infra.Store, infra.Bus, infra.Log.With("service", "template")),
		Response: NewResponseService(repos, infra.Bus, infra.Notifier, infra.Log.With("service", "response")),
		Bus:      infra.Bus,
	}
}
