// Package config provides environment-driven configuration with fail-fast
// validation. Components receive their configuration explicitly through
// constructors; nothing reads ambient process state after startup.
package config

import (
	"fmt"
	"os"
)

// AppConfig holds the process-wide configuration resolved once at startup.
type AppConfig struct {
	DatabaseURL  string
	GeminiAPIKey string
	RapidAPIKey  string
	FrontendURL  string
	SMTP         SMTPConfig
}

// SMTPConfig holds outbound email settings. Email is optional: when Host
// is empty, the mailer runs in disabled mode and activation links are
// logged instead of sent.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// NewAppConfig reads configuration from the environment and fails fast
// when a required secret is absent, rather than letting a component
// discover the gap mid-request.
func NewAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		RapidAPIKey:  os.Getenv("RAPIDAPI_KEY"),
		FrontendURL:  os.Getenv("FRONTEND_URL"),
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     os.Getenv("SMTP_PORT"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
		},
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	if cfg.RapidAPIKey == "" {
		return nil, fmt.Errorf("RAPIDAPI_KEY environment variable is required")
	}
	if cfg.SMTP.Port == "" {
		cfg.SMTP.Port = "587"
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.Username
	}
	return cfg, nil
}
