package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const validConfig = `
app:
  port: 8080
  gin_mode: test
database:
  dsn: "file::memory:"
redis:
  addr: "localhost:6379"
  db: 1
jwt:
  secret: "file-secret"
  issuer: "auth-app"
  token_ttl: "1h"
login_throttle:
  max_attempts: 10
  window: "15m"
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "file-secret", cfg.JWTSecret)
	assert.Equal(t, "auth-app", cfg.JWTIssuer)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, int64(10), cfg.MaxAttempts)
	assert.Equal(t, 15*time.Minute, cfg.AttemptWindow)
	assert.Equal(t, 1, cfg.RedisDB)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("PORT", "9090")

	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, "9090", cfg.Port)
}

// The service must refuse to start without a signing secret rather than
// fall back to a known default.
func TestLoad_MissingSecretFailsFast(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	config := `
app:
  port: 8080
jwt:
  secret: ""
  issuer: "auth-app"
  token_ttl: "1h"
login_throttle:
  max_attempts: 10
  window: "15m"
`
	_, err := Load(writeConfig(t, config))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt secret is not configured")
}

func TestLoad_InvalidTTL(t *testing.T) {
	config := `
jwt:
  secret: "s"
  token_ttl: "one hour"
login_throttle:
  max_attempts: 10
  window: "15m"
`
	_, err := Load(writeConfig(t, config))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JWT token TTL")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
