package env

import (
	"fmt"
	"os"
	"quiz_backend/internal/config"
	"time"
)

const (
	sessionTokenKeyEnvName      = "SESSION_TOKEN_SECRET"
	sessionTokenDurationEnvName = "SESSION_TOKEN_TTL"

	defaultSessionTokenDuration = 24 * time.Hour
)

type tokenConfig struct {
	sessionTokenSecretKey string
	sessionTokenDuration  time.Duration
}

func NewTokenConfig() (config.TokenConfig, error) {
	secret := os.Getenv(sessionTokenKeyEnvName)
	if len(secret) == 0 {
		return nil, fmt.Errorf("session token secret key not found")
	}

	duration := defaultSessionTokenDuration
	if raw := os.Getenv(sessionTokenDurationEnvName); len(raw) != 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid session token duration: %w", err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("session token duration must be positive")
		}
		duration = parsed
	}

	return &tokenConfig{
		sessionTokenSecretKey: secret,
		sessionTokenDuration:  duration,
	}, nil
}

func (t *tokenConfig) SessionTokenSecretKey() []byte {
	return []byte(t.sessionTokenSecretKey)
}

func (t *tokenConfig) SessionTokenDuration() time.Duration {
	return t.sessionTokenDuration
}
