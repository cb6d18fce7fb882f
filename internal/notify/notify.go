// Package notify forwards contact form submissions to the site owner.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Zachkp/resume-site/internal/config"
)

// Contact is a submission to forward.
type Contact struct {
	ID         string
	Name       string
	Email      string
	Message    string
	ResumeType string
}

// Notifier delivers contact submissions.
type Notifier interface {
	Notify(ctx context.Context, c Contact) error
}

// New builds the notifier selected by cfg.Provider.
func New(cfg config.NotifyConfig, logger *slog.Logger) (Notifier, error) {
	switch cfg.Provider {
	case "", config.ProviderLog:
		return NewLog(logger), nil
	case config.ProviderSMTP:
		return NewSMTP(cfg), nil
	case config.ProviderSendGrid:
		return NewSendGrid(cfg), nil
	}
	return nil, fmt.Errorf("unknown notification provider %q", cfg.Provider)
}

// Log only records submissions in the application log.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger}
}

func (l *Log) Notify(ctx context.Context, c Contact) error {
	l.logger.InfoContext(ctx, "contact message received",
		"message_id", c.ID,
		"name", c.Name,
		"email", c.Email,
		"resume_type", c.ResumeType,
		"length", len(c.Message),
	)
	return nil
}

func subject(c Contact) string {
	return fmt.Sprintf("Portfolio Contact: %s", singleLine(c.Name))
}

func body(c Contact) string {
	return fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Resume: %s
Message:
%s

---
Sent from your portfolio contact form
`, singleLine(c.Name), singleLine(c.Email), c.ResumeType, c.Message)
}

// singleLine strips line breaks so user input cannot inject mail headers.
func singleLine(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
