package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_ISSUER", "")
	t.Setenv("JWT_TTL_MINUTES", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "", cfg.DatabaseURL)
	assert.Equal(t, "usersvc", cfg.JWTIssuer)
	assert.Equal(t, 60*24*7, cfg.JWTTTLMinutes)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_ISSUER", "custom")
	t.Setenv("JWT_TTL_MINUTES", "15")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://localhost/test", cfg.DatabaseURL)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "custom", cfg.JWTIssuer)
	assert.Equal(t, 15, cfg.JWTTTLMinutes)
}

func TestLoad_BadTTLFallsBack(t *testing.T) {
	t.Setenv("JWT_TTL_MINUTES", "not-a-number")

	cfg := Load()
	assert.Equal(t, 60*24*7, cfg.JWTTTLMinutes)
}
