package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOSTSCAN_OUTPUT_DIR", "")
	t.Setenv("HOSTSCAN_LOG_LEVEL", "")
	t.Setenv("HOSTSCAN_LOG_COLOR", "")

	cfg := Load(filepath.Join(t.TempDir(), ".env"))

	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.LogColor)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("HOSTSCAN_OUTPUT_DIR", "/var/tmp/scans")
	t.Setenv("HOSTSCAN_LOG_LEVEL", "debug")
	t.Setenv("HOSTSCAN_LOG_COLOR", "false")

	cfg := Load(filepath.Join(t.TempDir(), ".env"))

	assert.Equal(t, "/var/tmp/scans", cfg.OutputDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.LogColor)
}

func TestLoad_EnvFile(t *testing.T) {
	t.Setenv("HOSTSCAN_OUTPUT_DIR", "")
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("HOSTSCAN_LOG_LEVEL=warn\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("HOSTSCAN_LOG_LEVEL") })
	os.Unsetenv("HOSTSCAN_LOG_LEVEL")

	cfg := Load(envFile)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_UnreadableEnvFileIsIgnored(t *testing.T) {
	t.Setenv("HOSTSCAN_OUTPUT_DIR", "")
	t.Setenv("HOSTSCAN_LOG_LEVEL", "")

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	// a directory where the env file should be
	cfg := Load(t.TempDir())

	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Contains(t, buf.String(), "ignoring env file")
}
