package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultListenAddr    = ":8080"
	defaultDatabaseURL   = "repairshop.db"
	defaultSessionTTL    = "24h"
	defaultSessionPepper = "change-me-session-pepper"
)

type Config struct {
	AppEnv        string
	ListenAddr    string
	DatabaseURL   string
	SessionTTL    time.Duration
	SessionPepper string
	CORSOrigins   []string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.ListenAddr = getEnv("LISTEN_ADDR", defaultListenAddr)
	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDatabaseURL)
	cfg.SessionPepper = strings.TrimSpace(getEnv("SESSION_PEPPER", defaultSessionPepper))

	var err error
	cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}

	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be > 0")
	}
	if isProdLike(cfg.AppEnv) {
		if cfg.SessionPepper == "" || cfg.SessionPepper == defaultSessionPepper {
			return fmt.Errorf("in prod/release SESSION_PEPPER must be set and not default")
		}
	}
	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
