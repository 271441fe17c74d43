// Package notify sends e-mail when a coder submits a response.
package notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"html"
	"time"

	mail "github.com/go-mail/mail/v2"
	"github.com/linskybing/datadesk/internal/config"
)

type Submission struct {
	ResponseID  string
	UserEmail   string
	JobID       string
	Title       string
	SubmittedAt time.Time
}

type Notifier interface {
	Submitted(ctx context.Context, s Submission) error
}

// New returns a mail notifier when SMTP and recipients are configured and a
// no-op notifier otherwise.
func New() Notifier {
	if config.SmtpHost == "" || config.SmtpFrom == "" || len(config.NotifyEmails) == 0 {
		return Nop{}
	}
	return &Mailer{
		host: config.SmtpHost,
		port: config.SmtpPort,
		user: config.SmtpUser,
		pass: config.SmtpPass,
		from: config.SmtpFrom,
		to:   config.NotifyEmails,
	}
}

type Nop struct{}

func (Nop) Submitted(context.Context, Submission) error { return nil }

type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
	to   []string
}

func (m *Mailer) Submitted(ctx context.Context, s Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := mail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to...)
	msg.SetHeader("Subject", SubmissionSubject(s))
	msg.SetBody("text/html", SubmissionBody(s))

	d := mail.NewDialer(m.host, m.port, m.user, m.pass)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{
		ServerName: m.host,
	}
	d.Timeout = 10 * time.Second

	return d.DialAndSend(msg)
}

func SubmissionSubject(s Submission) string {
	return fmt.Sprintf("[datadesk] %s submitted %s", s.UserEmail, s.JobID)
}

func SubmissionBody(s Submission) string {
	title := s.Title
	if title == "" {
		title = s.JobID
	}
	return fmt.Sprintf(
		"<p><b>%s</b> submitted <b>%s</b> (%s) at %s.</p><p>Response: %s</p>",
		html.EscapeString(s.UserEmail),
		html.EscapeString(title),
		html.EscapeString(s.JobID),
		s.SubmittedAt.UTC().Format(time.RFC3339),
		html.EscapeString(s.ResponseID),
	)
}
