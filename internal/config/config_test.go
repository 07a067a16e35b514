package config

import (
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SMTP_USER", "agency@example.com")
	t.Setenv("SMTP_PASSWORD", "secret")
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("\nwanted:\n:8080\ngot:\n%s", cfg.HTTPAddr)
	}
	if cfg.MailProvider != "smtp" {
		t.Fatalf("\nwanted:\nsmtp\ngot:\n%s", cfg.MailProvider)
	}
	if cfg.MXTimeout != 5*time.Second || cfg.SMTPTimeout != 10*time.Second {
		t.Fatalf("unexpected timeouts: mx=%s smtp=%s", cfg.MXTimeout, cfg.SMTPTimeout)
	}
	if cfg.SMTPPort != 465 {
		t.Fatalf("\nwanted:\n465\ngot:\n%d", cfg.SMTPPort)
	}
}

func TestLoadMissingVarsNamedTogether(t *testing.T) {
	setRequired(t)
	t.Setenv("SMTP_PASSWORD", "")
	t.Setenv("ADMIN_EMAIL", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing required variables")
	}
	for _, name := range []string{"SMTP_PASSWORD", "ADMIN_EMAIL"} {
		if !strings.Contains(err.Error(), name) {
			t.Fatalf("error should name %s, got: %v", name, err)
		}
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	setRequired(t)
	t.Setenv("SMTP_PORT", "not-a-port")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric port")
	}
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	setRequired(t)
	t.Setenv("MAIL_PROVIDER", "pigeon")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown mail provider")
	}
}
