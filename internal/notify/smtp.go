package notify

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/Zachkp/resume-site/internal/config"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTP sends submissions through an SMTP relay with PLAIN auth.
type SMTP struct {
	host, port string
	user, pass string
	from, to   string
	send       sendMailFunc
}

func NewSMTP(cfg config.NotifyConfig) *SMTP {
	from := cfg.FromEmail
	if from == "" {
		from = cfg.SMTPUser
	}
	return &SMTP{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: from,
		to:   cfg.ToEmail,
		send: smtp.SendMail,
	}
}

// Notify sends the mail. net/smtp has no context support, so ctx is only
// checked before dialing.
func (s *SMTP) Notify(ctx context.Context, c Contact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.user == "" || s.pass == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}

	auth := smtp.PlainAuth("", s.user, s.pass, s.host)
	if err := s.send(s.host+":"+s.port, auth, s.from, []string{s.to}, s.message(c)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func (s *SMTP) message(c Contact) []byte {
	return []byte("To: " + s.to + "\r\n" +
		"Subject: " + subject(c) + "\r\n" +
		"From: " + s.from + "\r\n" +
		"Reply-To: " + singleLine(c.Email) + "\r\n" +
		"\r\n" +
		body(c) + "\r\n")
}
