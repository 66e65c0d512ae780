package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.Demo.Enabled)
	assert.True(t, cfg.Frontend.Enabled)
	assert.Equal(t, 15, cfg.Auth.AccessTokenMinutes)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Cors.Origins)
	assert.Equal(t, "globetrotter", cfg.Database.Name)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yaml")
	content := []byte("port: 9090\ndemo:\n  enabled: false\ndb:\n  host: db.internal\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.False(t, cfg.Demo.Enabled)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	// untouched keys keep their defaults
	assert.Equal(t, 7, cfg.Auth.RefreshTokenDays)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("GLOBETROTTER_PORT", "7070")
	t.Setenv("GLOBETROTTER_AUTH_SECRET", "env-secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "env-secret", cfg.Auth.Secret)
}
