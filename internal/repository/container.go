package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User     UserRepo
	Template TemplateRepo
	Response ResponseRepo
	Audit    AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:     NewUserRepo(db),
		Template: NewTemplateRepo(db),
		Response: NewResponseRepo(db),
		Audit:    NewAuditRepo(db),
		db:       db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:     r.User.WithTx(tx),
		Template: r.Template.WithTx(tx),
		Response: r.Response.WithTx(tx),
		Audit:    r.Audit.WithTx(tx),
		db:       tx,
	}
}

// ExecTx runs fn inside a database transaction. Repos built without a
// database (mocked repositories in unit tests) run fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
