package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Вспомогательные хелперы.
func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

// Полный корректный YAML с заданными значениями (не зависящими от дефолтов).
const sampleYAML = `
env: "prod"
http:
  host: "127.0.0.1"
  port: "9090"
auth:
  jwt_secret: "super-secret"
  access_token_ttl: "30m"
  refresh_token_ttl: "240h"
  leeway: "30s"
identity:
  api_key: "idp-key"
  base_url: "https://idp.example.com"
  timeout: "5s"
store:
  redis_url: "redis://localhost:6379/0"
  mongo_url: "mongodb://localhost:27017/points"
cors:
  allowed_origins: "https://app.example.com,https://admin.example.com"
timeouts:
  service: "3s"
janitor:
  interval: "5m"
`

// Минимально валидный YAML (только обязательные поля).
const minimalYAML = `
auth:
  jwt_secret: "min-secret"
`

// Некорректный YAML — для проверки ошибок парсинга.
const brokenYAML = `
auth:
  jwt_secret: [unclosed
`

func TestLoad_WithExplicitPath_OK(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", sampleYAML)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	require.Equal(t, "9090", cfg.HTTP.Port)
	require.Equal(t, "127.0.0.1:9090", cfg.HTTP.Addr())

	require.Equal(t, "super-secret", cfg.Auth.JWTSecret)
	require.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL)
	require.Equal(t, 240*time.Hour, cfg.Auth.RefreshTokenTTL)
	require.Equal(t, 30*time.Second, cfg.Auth.Leeway)

	require.Equal(t, "idp-key", cfg.Identity.APIKey)
	require.Equal(t, "https://idp.example.com", cfg.Identity.BaseURL)
	require.Equal(t, 5*time.Second, cfg.Identity.Timeout)

	require.Equal(t, "redis://localhost:6379/0", cfg.Store.RedisURL)
	require.Equal(t, "mongodb://localhost:27017/points", cfg.Store.MongoURL)

	require.Equal(t, "https://app.example.com,https://admin.example.com", cfg.CORS.AllowedOrigins)
	require.Equal(t, 3*time.Second, cfg.Timeouts.Service)
	require.Equal(t, 5*time.Minute, cfg.Janitor.Interval)
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "minimal.yaml", minimalYAML)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	require.Equal(t, "local", cfg.Env)
	require.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	require.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
	require.Equal(t, 720*time.Hour, cfg.Auth.RefreshTokenTTL)
	require.Equal(t, time.Duration(0), cfg.Auth.Leeway)
	require.Empty(t, cfg.Identity.APIKey)
	require.Equal(t, 10*time.Second, cfg.Identity.Timeout)
	require.Empty(t, cfg.Store.RedisURL)
	require.Empty(t, cfg.Store.MongoURL)
	require.Equal(t, "*", cfg.CORS.AllowedOrigins)
	require.Equal(t, 15*time.Second, cfg.Timeouts.Service)
	require.Equal(t, 30*time.Minute, cfg.Janitor.Interval)
}

func TestLoad_WithExplicitPath_FileDoesNotExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "stat failed")
}

func TestLoad_WithExplicitPath_BrokenYAML(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "broken.yaml", brokenYAML)

	_, err := Load(cfgPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_WithCONFIG_PATH_OK(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "from_env_path.yaml", minimalYAML)

	t.Setenv("CONFIG_PATH", cfgPath)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "min-secret", cfg.Auth.JWTSecret)
}

func TestLoad_WithLocalYAML_OK(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, ".", "local.yaml", sampleYAML)

	t.Setenv("CONFIG_PATH", "")
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "super-secret", cfg.Auth.JWTSecret)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", sampleYAML)

	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("HTTP_PORT", "7070")

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	require.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	require.Equal(t, "7070", cfg.HTTP.Port)
}

func TestLoad_EnvOnly_OK(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("JWT_SECRET", "env-only-secret")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "env-only-secret", cfg.Auth.JWTSecret)
}

// Без JWT_SECRET процесс не должен стартовать (fail-closed).
func TestLoad_EnvOnly_MissingSecretFails(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load("")
	require.Error(t, err)
}

func TestMustLoad_OK(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "ok.yaml", minimalYAML)

	cfg := MustLoad(cfgPath)
	require.NotNil(t, cfg)
	require.Equal(t, "min-secret", cfg.Auth.JWTSecret)
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	require.Panics(t, func() {
		_ = MustLoad(filepath.Join(t.TempDir(), "nope.yaml"))
	})
}
