package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSettings_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	s, err := ReadSettings(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "info", s.Logging.Level)
	assert.Equal(t, "console", s.Logging.Format)
	assert.Equal(t, "", s.Tables.Path)
	assert.Equal(t, 0, s.Calc.AsOfYear)
	assert.Equal(t, "console", s.Output.Format)
	assert.Equal(t, ":8080", s.Server.Addr)
	assert.GreaterOrEqual(t, s.Batch.Workers, 1)
}

func TestReadSettings_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "takehome.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: debug
  format: json
calc:
  as_of_year: 2024
output:
  format: csv
batch:
  workers: 0
`), 0o600))

	t.Setenv("TAKEHOME_SERVER_ADDR", ":9090")
	t.Setenv("TAKEHOME_OUTPUT_FORMAT", "yaml")

	s, err := ReadSettings(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "debug", s.Logging.Level)
	assert.Equal(t, "json", s.Logging.Format)
	assert.Equal(t, 2024, s.Calc.AsOfYear)
	assert.Equal(t, "yaml", s.Output.Format, "environment overrides the file")
	assert.Equal(t, ":9090", s.Server.Addr)
	assert.Equal(t, 1, s.Batch.Workers, "workers are clamped to at least one")
}

func TestReadSettings_MissingExplicitFile(t *testing.T) {
	_, err := ReadSettings(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLogLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLogLevel("loud")
	assert.Error(t, err)
}
