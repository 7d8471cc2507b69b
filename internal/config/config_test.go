package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"newsroom/internal/config"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_DefaultsAndFile(t *testing.T) {
	path := writeConfig(t, `
environment: production
backend:
  baseURL: https://api.example.com
session:
  ttl: 2h
upload:
  allowedExtensions: [png, jpg]
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.False(t, cfg.IsDevelopment())
	require.Equal(t, "https://api.example.com", cfg.Backend.BaseURL)
	require.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	require.Equal(t, 2*time.Hour, cfg.Session.TTL)
	require.Equal(t, "newsroom_session", cfg.Session.CookieName)
	require.Equal(t, []string{"png", "jpg"}, cfg.Upload.AllowedExtensions)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
backend:
  baseURL: https://api.example.com
`)
	t.Setenv("BACKEND_BASE_URL", "http://backend.internal:8080")
	t.Setenv("SESSION_SECURE", "true")
	t.Setenv("UPLOAD_MAX_BYTES", "1024")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "http://backend.internal:8080", cfg.Backend.BaseURL)
	require.True(t, cfg.Session.Secure)
	require.EqualValues(t, 1024, cfg.Upload.MaxBytes)
	require.True(t, cfg.IsDevelopment())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
