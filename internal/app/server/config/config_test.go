package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("RUN_ADDRESS", ":9090")
	t.Setenv("DATABASE_URI", "postgres://u:p@localhost:5432/hub?sslmode=disable")
	t.Setenv("API_TOKEN", "secret")
	t.Setenv("ALLOWLIST_PATH", "/etc/hub/allowlist.yaml")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg := Load()

	assert.Equal(t, EnvProd, cfg.Env)
	assert.Equal(t, ":9090", cfg.Server.RunAddress)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.True(t, cfg.UsesDatabase())
	assert.Equal(t, "secret", cfg.Auth.Token)
	assert.Equal(t, "/etc/hub/allowlist.yaml", cfg.Allowlist.Path)
	assert.Equal(t, defaultMigrations, cfg.DB.Migrations)
}

func TestLoad_UnknownEnvFallsBackToLocal(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("DATABASE_URI", "")

	cfg := Load()

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.False(t, cfg.UsesDatabase())
}
