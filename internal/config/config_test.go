package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.EmailProvider != "sendgrid" {
		t.Errorf("expected default provider sendgrid, got %s", cfg.EmailProvider)
	}
	if cfg.CompanyEmail != "hello@nexai.com" {
		t.Errorf("expected default company email, got %s", cfg.CompanyEmail)
	}
	if cfg.SendGridVerifiedSender != "hello@nexai.com" {
		t.Errorf("expected default verified sender, got %s", cfg.SendGridVerifiedSender)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("expected default session TTL 30m, got %s", cfg.SessionTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Errorf("expected default CORS origin *, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("EMAIL_PROVIDER", "SES")
	t.Setenv("SESSION_TTL", "10m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://nexai.com, https://www.nexai.com")
	t.Setenv("RATE_LIMIT_PER_SEC", "2.5")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.EmailProvider != "ses" {
		t.Errorf("expected provider normalized to ses, got %s", cfg.EmailProvider)
	}
	if cfg.SessionTTL != 10*time.Minute {
		t.Errorf("expected 10m TTL, got %s", cfg.SessionTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://www.nexai.com" {
		t.Errorf("expected two trimmed origins, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.RateLimitPerSec != 2.5 {
		t.Errorf("expected rate 2.5, got %f", cfg.RateLimitPerSec)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")
	t.Setenv("RATE_LIMIT_BURST", "lots")

	cfg := Load()

	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("expected fallback TTL, got %s", cfg.SessionTTL)
	}
	if cfg.RateLimitBurst != 10 {
		t.Errorf("expected fallback burst, got %d", cfg.RateLimitBurst)
	}
}
