package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "168h", cfg.JWT.TokenExpiration)
	assert.Equal(t, "practiceshare.app", cfg.JWT.Issuer)
	assert.Equal(t, 100, cfg.RateLimit.APILimit)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoadConfigFromFile(t *testing.T) {
	// Make sure the environment does not override the file values
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "9090"
  mode: "production"
jwt:
  secret: "a-production-grade-secret-of-32-chars!"
database:
  dbname: "practiceshare_test"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "practiceshare_test", cfg.Database.DBName)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "3001")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret")
}

func TestLoadConfigProductionSecretLength(t *testing.T) {
	t.Setenv("JWT_SECRET", "too-short")
	t.Setenv("SERVER_MODE", "production")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32 characters")
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.Password = "pw"
	cfg.Database.DBName = "practiceshare"

	assert.Equal(t,
		"postgres://postgres:pw@localhost:5432/practiceshare?sslmode=disable",
		cfg.GetPostgresConnectionString())
}

func TestGetRedisAddress(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddress())
}
