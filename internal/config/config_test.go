package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, DefaultItemsPerPage, cfg.App.DefaultItemsPerPage)
	assert.Equal(t, DefaultMaxItemsPerPage, cfg.App.MaxItemsPerPage)
	assert.Equal(t, DefaultMaxRedraws, cfg.App.MaxRedraws)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
database:
  driver: sqlite
  url: file:test.db
app:
  max_redraws: 3
cache:
  ttl: 30s
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))
	t.Setenv("APP_SERVER_PORT", ":9090")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 3, cfg.App.MaxRedraws)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestLoad_AuthEnabledByDefault(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.True(t, cfg.Auth.Enabled)

	t.Setenv("APP_AUTH_JWT_SECRET", "s3cret")
	cfg, err = Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
}

func TestIsDevEnv(t *testing.T) {
	t.Setenv("APP_ENV", "DEV")
	assert.True(t, IsDevEnv())
	t.Setenv("APP_ENV", "production")
	assert.False(t, IsDevEnv())
}
