package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParsePrecedence(t *testing.T) {
	path := writeConfig(t, `
listen_addr: ":9000"
db_path: /var/lib/hall.db
log_level: warn
token_ttl: 2h
`)
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DB_PATH", "/tmp/from-env.db")

	cfg, err := Parse([]string{"--config", path, "--log-level", "debug"})
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "/tmp/from-env.db", cfg.DBPath, "env beats file")
	assert.Equal(t, "debug", cfg.LogLevel, "flag beats file")
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
}

func TestParseRequiresSecretForAuth(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Parse([]string{"--require-auth"})
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "s3cret")
	cfg, err := Parse([]string{"--require-auth"})
	require.NoError(t, err)
	assert.True(t, cfg.RequireAuth)
}

func TestLoadBadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "listen_addr: [oops"))
	assert.Error(t, err)
}
