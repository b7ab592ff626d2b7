package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "gearmart")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "gearmart")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("APP_ENV", "test")
	t.Setenv("JWT_SECRET", "testsecret")

	cfg := LoadConfig()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "gearmart", cfg.DBUser)
	assert.Equal(t, "9000", cfg.AppPort)
	assert.Equal(t, "test", cfg.AppEnv)
	assert.Equal(t, "testsecret", cfg.JWTSecret)
}

func TestLoadConfig_DefaultPort(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("APP_PORT", "")

	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.AppPort)
}
