package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvironment_Defaults(t *testing.T) {
	cfg, err := FromEnvironment(map[string]string{})
	require.NoError(t, err)

	assert.False(t, cfg.Dev)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "portfolio.db", cfg.DatabasePath)
	assert.Equal(t, time.Second, cfg.Contact.SubmitDelay)
	assert.Equal(t, 5.0, cfg.Contact.RatePerMinute)
	assert.Equal(t, 3, cfg.Contact.Burst)
	assert.Equal(t, ProviderLog, cfg.Notify.Provider)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 8760*time.Hour, cfg.Admin.VisitorRetention)
	assert.False(t, cfg.AdminEnabled())
}

func TestFromEnvironment_PortOverridesAddr(t *testing.T) {
	cfg, err := FromEnvironment(map[string]string{"PORT": "3000", "HTTP_ADDR": ":9999"})
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.HTTP.Addr)
}

func TestFromEnvironment_DevDefaults(t *testing.T) {
	cfg, err := FromEnvironment(map[string]string{"DEV": "true"})
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "admin123", cfg.Admin.Password)
	assert.True(t, cfg.AdminEnabled())
}

func TestFromEnvironment_AdminUsernameDefaults(t *testing.T) {
	cfg, err := FromEnvironment(map[string]string{"ADMIN_PASSWORD": "hunter2"})
	require.NoError(t, err)

	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.True(t, cfg.AdminEnabled())

	cfg, err = FromEnvironment(map[string]string{"ADMIN_USERNAME": "zach"})
	require.NoError(t, err)
	assert.False(t, cfg.AdminEnabled())
}

func TestSanitize_ClampsContactValues(t *testing.T) {
	tests := []struct {
		name      string
		vars      map[string]string
		wantDelay time.Duration
		wantRate  float64
		wantBurst int
	}{
		{
			name:      "delay above ceiling",
			vars:      map[string]string{"CONTACT_SUBMIT_DELAY": "1m"},
			wantDelay: 10 * time.Second,
			wantRate:  5,
			wantBurst: 3,
		},
		{
			name:      "zero delay kept",
			vars:      map[string]string{"CONTACT_SUBMIT_DELAY": "0s"},
			wantDelay: 0,
			wantRate:  5,
			wantBurst: 3,
		},
		{
			name:      "non positive rate and burst",
			vars:      map[string]string{"CONTACT_RATE_PER_MINUTE": "-1", "CONTACT_BURST": "0"},
			wantDelay: time.Second,
			wantRate:  5,
			wantBurst: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := FromEnvironment(tt.vars)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDelay, cfg.Contact.SubmitDelay)
			assert.Equal(t, tt.wantRate, cfg.Contact.RatePerMinute)
			assert.Equal(t, tt.wantBurst, cfg.Contact.Burst)
		})
	}
}

func TestValidate_Notify(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		wantErr string
	}{
		{
			name:    "smtp without credentials",
			vars:    map[string]string{"NOTIFY_PROVIDER": "smtp"},
			wantErr: "SMTP credentials not configured",
		},
		{
			name: "smtp complete",
			vars: map[string]string{
				"NOTIFY_PROVIDER": "smtp",
				"SMTP_USER":       "me@example.com",
				"SMTP_PASS":       "secret",
				"TO_EMAIL":        "inbox@example.com",
			},
		},
		{
			name:    "sendgrid without key",
			vars:    map[string]string{"NOTIFY_PROVIDER": "SendGrid"},
			wantErr: "SENDGRID_API_KEY",
		},
		{
			name: "sendgrid complete",
			vars: map[string]string{
				"NOTIFY_PROVIDER":  "sendgrid",
				"SENDGRID_API_KEY": "SG.key",
				"TO_EMAIL":         "inbox@example.com",
				"FROM_EMAIL":       "site@example.com",
			},
		},
		{
			name:    "unknown provider",
			vars:    map[string]string{"NOTIFY_PROVIDER": "pigeon"},
			wantErr: "unknown NOTIFY_PROVIDER",
		},
		{
			name:    "bad log level",
			vars:    map[string]string{"LOG_LEVEL": "loud"},
			wantErr: "invalid LOG_LEVEL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnvironment(tt.vars)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSanitize_FromEmailFallsBackToSMTPUser(t *testing.T) {
	cfg, err := FromEnvironment(map[string]string{"SMTP_USER": "me@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", cfg.Notify.FromEmail)
}
