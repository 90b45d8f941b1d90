package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "./schedules.db", cfg.Database.Path)
	assert.Equal(t, "5m", cfg.Sync.Interval)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
database:
  path: /tmp/collector.db
sync:
  interval: 1m
notifier:
  token: xoxb-file
  channel: C123
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/collector.db", cfg.Database.Path)
	assert.Equal(t, "1m", cfg.Sync.Interval)
	assert.Equal(t, "xoxb-file", cfg.Notifier.Token)
	assert.Equal(t, "C123", cfg.Notifier.Channel)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("COLLECTOR_DATABASE_PATH", "/var/lib/collector.db")
	t.Setenv("COLLECTOR_NOTIFIER_TOKEN", "xoxb-env")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/collector.db", cfg.Database.Path)
	assert.Equal(t, "xoxb-env", cfg.Notifier.Token)
}

func TestLoad_BadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}
