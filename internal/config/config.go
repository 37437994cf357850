package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAddr      = ":8080"
	defaultDSN       = "vacarent.db"
	defaultJWTSecret = "change-me-jwt-secret"
	defaultJWTTTL    = "24h"
)

type Config struct {
	Addr      string
	DSN       string
	JWTSecret string
	JWTTTL    time.Duration
	DemoData  bool
}

// Load reads the runtime configuration from the environment, falling back
// to local-development defaults. The only hard failure is a JWT TTL that
// does not parse.
func Load() (*Config, error) {
	ttlRaw := getenv("JWT_TTL", defaultJWTTTL)
	ttl, err := time.ParseDuration(ttlRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL %q: %w", ttlRaw, err)
	}

	return &Config{
		Addr:      getenv("HTTP_ADDR", defaultAddr),
		DSN:       getenv("DATABASE_URL", defaultDSN),
		JWTSecret: getenv("JWT_SECRET", defaultJWTSecret),
		JWTTTL:    ttl,
		DemoData:  isTruthy(os.Getenv("DEMO_DATA")),
	}, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
