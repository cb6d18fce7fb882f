package notify

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/Zachkp/resume-site/internal/config"
)

type sendGridClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGrid sends submissions through the SendGrid v3 mail API.
type SendGrid struct {
	client sendGridClient
	from   *mail.Email
	to     *mail.Email
}

func NewSendGrid(cfg config.NotifyConfig) *SendGrid {
	return &SendGrid{
		client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
		from:   mail.NewEmail(cfg.FromName, cfg.FromEmail),
		to:     mail.NewEmail("", cfg.ToEmail),
	}
}

func (s *SendGrid) Notify(ctx context.Context, c Contact) error {
	plain := body(c)
	htmlContent := "<pre>" + html.EscapeString(strings.TrimSpace(plain)) + "</pre>"

	message := mail.NewSingleEmail(s.from, subject(c), s.to, plain, htmlContent)
	message.SetReplyTo(mail.NewEmail(c.Name, c.Email))

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
