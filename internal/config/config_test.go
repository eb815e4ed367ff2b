package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/2beens/weekplan/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigToml = `
[development]
host = "localhost"
port = 9000
log_level = "trace"
log_to_stdout = true
slot_backend = "file"
slot_file_path = "/tmp/weekplan/sessions.json"
prometheus_metrics_host = "localhost"
prometheus_metrics_port = "9001"

[production]
host = ""
port = 9000
log_level = "debug"
logs_path = "/var/log/weekplan/service.log"
slot_backend = "redis"
slot_redis_key = "weekplan::sessions"
redis_host = "localhost"
redis_port = "6379"
prometheus_metrics_host = "localhost"
prometheus_metrics_port = "9001"
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigToml), 0644))
	return path
}

func TestLoad_Development(t *testing.T) {
	cfg, err := config.Load("development", writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "file", cfg.SlotBackend)
	assert.Equal(t, "/tmp/weekplan/sessions.json", cfg.SlotFilePath)
	assert.True(t, cfg.LogToStdout)
}

func TestLoad_Production(t *testing.T) {
	cfg, err := config.Load("prod", writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.SlotBackend)
	assert.Equal(t, "weekplan::sessions", cfg.SlotRedisKey)
	assert.Equal(t, "/var/log/weekplan/service.log", cfg.LogsPath)
}

func TestLoad_UnknownEnv(t *testing.T) {
	_, err := config.Load("staging", writeTestConfig(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown env")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load("development", filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
