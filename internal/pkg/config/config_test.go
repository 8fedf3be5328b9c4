package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()

	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestNewConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
db_username: app
db_password: secret
db_host: localhost
db_name: staff
disable_tls: true
cors_allowed_origins:
  - "http://localhost:3000"
  - "https://staff.example.com"
`), 0o644))
	chdir(t, dir)

	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, "app", cfg.DBUsername)
	require.Equal(t, "staff", cfg.DBName)
	require.True(t, cfg.DisableTLS)
	require.Equal(t, "5432", cfg.DBPort)
	require.Equal(t, []string{"http://localhost:3000", "https://staff.example.com"}, cfg.CORSAllowedOrigins)
}

func TestNewConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
db_username: app
db_password: secret
db_host: localhost
db_name: staff
`), 0o644))
	chdir(t, dir)

	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
}

func TestNewConfigMissingRequired(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
db_username: app
`), 0o644))
	chdir(t, dir)

	_, err := NewConfig()
	require.Error(t, err)
}

func TestNewConfigMissingFile(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := NewConfig()
	require.Error(t, err)
}
