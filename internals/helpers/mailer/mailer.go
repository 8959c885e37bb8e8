// file: internals/helpers/mailer/mailer.go
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"schoolsite_backend/internals/configs"
)

// Notifier is the narrow outbound-mail surface the API consumes. Controllers
// call it best-effort; delivery failures must never fail the request.
type Notifier interface {
	Notify(subject, body string) error
}

// SMTPMailer sends notifications to the school's own inbox over SMTP.
type SMTPMailer struct {
	Host     string
	Port     string
	Username string
	Password string
	To       string
}

// NewFromEnv builds a mailer from the MAIL_* config. Returns nil when the
// credentials are absent so callers can treat mail as optional.
func NewFromEnv() *SMTPMailer {
	if configs.MailUsername == "" || configs.MailPassword == "" {
		return nil
	}
	return &SMTPMailer{
		Host:     configs.MailServer,
		Port:     configs.MailPort,
		Username: configs.MailUsername,
		Password: configs.MailPassword,
		To:       configs.MailUsername,
	}
}

func (m *SMTPMailer) Notify(subject, body string) error {
	msg := strings.Join([]string{
		"From: " + m.Username,
		"To: " + m.To,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)
	addr := fmt.Sprintf("%s:%s", m.Host, m.Port)
	return smtp.SendMail(addr, auth, m.Username, []string{m.To}, []byte(msg))
}
