package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr     string
	GelfAddr     string
	MailProvider string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	AdminEmail   string

	MXTimeout   time.Duration
	SMTPTimeout time.Duration
}

// requiredVars must be present in the environment; the process refuses to
// start without them rather than failing per-request.
var requiredVars = []string{"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASSWORD", "ADMIN_EMAIL"}

// Load reads configuration from the environment. An error names every
// missing required variable at once.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("CONTACT_ADDR", ":8080")
	v.SetDefault("GELF_ADDR", "")
	v.SetDefault("MAIL_PROVIDER", "smtp")
	v.SetDefault("MX_TIMEOUT", "5s")
	v.SetDefault("SMTP_TIMEOUT", "10s")

	for _, key := range append([]string{"CONTACT_ADDR", "GELF_ADDR", "MAIL_PROVIDER", "MX_TIMEOUT", "SMTP_TIMEOUT"}, requiredVars...) {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	var missing []string
	for _, key := range requiredVars {
		if v.GetString(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	cfg := &Config{
		HTTPAddr:     v.GetString("CONTACT_ADDR"),
		GelfAddr:     v.GetString("GELF_ADDR"),
		MailProvider: v.GetString("MAIL_PROVIDER"),
		SMTPHost:     v.GetString("SMTP_HOST"),
		SMTPPort:     v.GetInt("SMTP_PORT"),
		SMTPUser:     v.GetString("SMTP_USER"),
		SMTPPassword: v.GetString("SMTP_PASSWORD"),
		AdminEmail:   v.GetString("ADMIN_EMAIL"),
		MXTimeout:    v.GetDuration("MX_TIMEOUT"),
		SMTPTimeout:  v.GetDuration("SMTP_TIMEOUT"),
	}

	if cfg.SMTPPort <= 0 || cfg.SMTPPort > 65535 {
		return nil, fmt.Errorf("SMTP_PORT must be a valid port number, got %q", v.GetString("SMTP_PORT"))
	}
	if cfg.MailProvider != "smtp" && cfg.MailProvider != "dev" {
		return nil, fmt.Errorf("MAIL_PROVIDER must be smtp or dev, got %q", cfg.MailProvider)
	}

	return cfg, nil
}
