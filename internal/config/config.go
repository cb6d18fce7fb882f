// Package config loads the site configuration from environment variables.
//
// Values are parsed with github.com/caarlos0/env. A .env file in the working
// directory is loaded first when present.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Notification providers.
const (
	ProviderLog      = "log"
	ProviderSMTP     = "smtp"
	ProviderSendGrid = "sendgrid"
)

// Config is the root configuration for the site.
type Config struct {
	// Dev enables template hot reloading from disk, text logs and default
	// admin credentials.
	Dev bool `env:"DEV" envDefault:"false"`

	// DatabasePath is the SQLite file used for visits and contact messages.
	DatabasePath string `env:"DATABASE_PATH" envDefault:"portfolio.db"`

	// ContentFile optionally replaces the built-in resume content with a YAML file.
	ContentFile string `env:"CONTENT_FILE"`

	HTTP    HTTPConfig
	Log     LogConfig
	Contact ContactConfig
	Notify  NotifyConfig
	Admin   AdminConfig
}

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// Port is kept for hosts that only inject PORT. It overrides Addr.
	Port string `env:"PORT"`

	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT"`
}

// ContactConfig controls the contact form.
type ContactConfig struct {
	// SubmitDelay is the pause before a submission is acknowledged.
	SubmitDelay time.Duration `env:"CONTACT_SUBMIT_DELAY" envDefault:"1s"`

	RatePerMinute float64 `env:"CONTACT_RATE_PER_MINUTE" envDefault:"5"`
	Burst         int     `env:"CONTACT_BURST" envDefault:"3"`

	NotifyTimeout time.Duration `env:"CONTACT_NOTIFY_TIMEOUT" envDefault:"15s"`
}

// NotifyConfig selects where contact submissions are forwarded.
type NotifyConfig struct {
	Provider string `env:"NOTIFY_PROVIDER" envDefault:"log"`

	SMTPHost string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort string `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`

	SendGridAPIKey string `env:"SENDGRID_API_KEY"`

	FromEmail string `env:"FROM_EMAIL"`
	FromName  string `env:"FROM_NAME" envDefault:"Portfolio"`
	ToEmail   string `env:"TO_EMAIL"`
}

// AdminConfig configures the admin dashboard.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME"`
	Password string `env:"ADMIN_PASSWORD"`

	// VisitorRetention bounds how long page views are kept.
	VisitorRetention time.Duration `env:"VISITOR_RETENTION" envDefault:"8760h"`
}

// Load reads .env (if present) and parses the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return finish(cfg)
}

// FromEnvironment parses configuration from the given variables only.
func FromEnvironment(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return finish(cfg)
}

func finish(cfg Config) (Config, error) {
	cfg.Sanitize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Sanitize applies guardrails to values loaded from the environment.
func (c *Config) Sanitize() {
	if c.HTTP.Port != "" {
		c.HTTP.Addr = ":" + strings.TrimPrefix(c.HTTP.Port, ":")
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		c.HTTP.ShutdownTimeout = 10 * time.Second
	}

	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	if c.Log.Format == "" {
		c.Log.Format = "json"
		if c.Dev {
			c.Log.Format = "text"
		}
	}

	if c.Contact.SubmitDelay < 0 {
		c.Contact.SubmitDelay = 0
	}
	if c.Contact.SubmitDelay > 10*time.Second {
		c.Contact.SubmitDelay = 10 * time.Second
	}
	if c.Contact.RatePerMinute <= 0 {
		c.Contact.RatePerMinute = 5
	}
	if c.Contact.Burst < 1 {
		c.Contact.Burst = 1
	}
	if c.Contact.NotifyTimeout <= 0 {
		c.Contact.NotifyTimeout = 15 * time.Second
	}

	c.Notify.Provider = strings.ToLower(strings.TrimSpace(c.Notify.Provider))
	if c.Notify.Provider == "" {
		c.Notify.Provider = ProviderLog
	}
	if c.Notify.FromEmail == "" {
		c.Notify.FromEmail = c.Notify.SMTPUser
	}

	if c.Admin.VisitorRetention <= 0 {
		c.Admin.VisitorRetention = 365 * 24 * time.Hour
	}
	if c.Dev && c.Admin.Password == "" {
		c.Admin.Password = "admin123"
	}
	if c.Admin.Password != "" && c.Admin.Username == "" {
		c.Admin.Username = "admin"
	}
}

// Validate reports configuration that cannot work at runtime.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q", c.Log.Format)
	}

	switch c.Notify.Provider {
	case ProviderLog:
	case ProviderSMTP:
		if c.Notify.SMTPUser == "" || c.Notify.SMTPPass == "" {
			return errors.New("SMTP credentials not configured")
		}
		if c.Notify.ToEmail == "" {
			return errors.New("TO_EMAIL is required for smtp notifications")
		}
	case ProviderSendGrid:
		if c.Notify.SendGridAPIKey == "" {
			return errors.New("SENDGRID_API_KEY is required for sendgrid notifications")
		}
		if c.Notify.ToEmail == "" || c.Notify.FromEmail == "" {
			return errors.New("TO_EMAIL and FROM_EMAIL are required for sendgrid notifications")
		}
	default:
		return fmt.Errorf("unknown NOTIFY_PROVIDER %q", c.Notify.Provider)
	}
	return nil
}

// AdminEnabled reports whether admin routes should be mounted.
func (c *Config) AdminEnabled() bool {
	return c.Admin.Username != "" && c.Admin.Password != ""
}
