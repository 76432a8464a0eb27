package config

import (
	"os"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	JWTSigningKey   string
	StaffAPIKeyHash string
	TokenTTL        time.Duration
	ShutdownTimeout time.Duration
}

var (
	defaultTokenTTL        = 15 * time.Minute
	defaultShutdownTimeout = 10 * time.Second
)

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("LLM_INTAKE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	tokenTTL := defaultTokenTTL
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			tokenTTL = d
		}
	}

	shutdown := defaultShutdownTimeout
	if raw := os.Getenv("SHUTDOWN_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			shutdown = d
		}
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Server{
		Addr:            addr,
		JWTSigningKey:   jwtSigningKey,
		StaffAPIKeyHash: os.Getenv("STAFF_API_KEY_HASH"),
		TokenTTL:        tokenTTL,
		ShutdownTimeout: shutdown,
	}
}
