package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string

	// Wizard session handling
	SessionTTL      time.Duration
	RateLimitPerSec float64
	RateLimitBurst  int

	// Email dispatch
	EmailProvider string // "sendgrid", "ses", or "stub"
	CompanyEmail  string // internal recipient of consultation requests
	DispatchURL   string // when set, emails are dispatched via this remote endpoint

	// SendGrid Email Configuration
	SendGridAPIKey         string
	SendGridVerifiedSender string
	SendGridFromName       string

	// AWS Configuration (SES provider)
	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	AWSEndpointOverride string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		SessionTTL:      getEnvAsDuration("SESSION_TTL", 30*time.Minute),
		RateLimitPerSec: getEnvAsFloat("RATE_LIMIT_PER_SEC", 5),
		RateLimitBurst:  getEnvAsInt("RATE_LIMIT_BURST", 10),

		EmailProvider: strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", "sendgrid"))),
		CompanyEmail:  getEnv("COMPANY_EMAIL", "hello@nexai.com"),
		DispatchURL:   getEnv("DISPATCH_URL", ""),

		SendGridAPIKey:         getEnv("SENDGRID_API_KEY", ""),
		SendGridVerifiedSender: getEnv("SENDGRID_VERIFIED_SENDER", "hello@nexai.com"),
		SendGridFromName:       getEnv("SENDGRID_FROM_NAME", "Nex AI"),

		AWSRegion:           getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointOverride: getEnv("AWS_ENDPOINT_OVERRIDE", ""),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsFloat retrieves an environment variable as a float or returns a default value
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
