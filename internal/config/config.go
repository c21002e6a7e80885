package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port          int
	DatabaseURL   string
	JWTSecret     string
	SetupKey      string
	AllowedOrigin string

	AdminEmail   string
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string

	// Gate project/skill mutations behind admin auth. Off by default.
	AdminProtectWrites bool

	CacheTTLSeconds       int
	RateLimitSweepMinutes int
}

func Load() Config {
	cfg := Config{
		Port:                  8080,
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		SetupKey:              os.Getenv("SETUP_KEY"),
		AllowedOrigin:         os.Getenv("ALLOWED_ORIGIN"),
		AdminEmail:            os.Getenv("ADMIN_EMAIL"),
		SMTPHost:              os.Getenv("SMTP_HOST"),
		SMTPPort:              587,
		SMTPUsername:          os.Getenv("SMTP_USERNAME"),
		SMTPPassword:          os.Getenv("SMTP_PASSWORD"),
		CacheTTLSeconds:       300,
		RateLimitSweepMinutes: 60,
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 && p < 65536 {
			cfg.Port = p
		}
	}

	if v := os.Getenv("SMTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 && p < 65536 {
			cfg.SMTPPort = p
		}
	}

	if v := os.Getenv("ADMIN_PROTECT_WRITES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AdminProtectWrites = b
		}
	}

	if v := os.Getenv("CACHE_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CacheTTLSeconds = n
		}
	}

	if v := os.Getenv("RATE_LIMIT_SWEEP_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RateLimitSweepMinutes = n
		}
	}

	return cfg
}

func (c Config) ListenAddr() string {
	return ":" + strconv.Itoa(c.Port)
}
