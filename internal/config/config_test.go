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

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `
source:
  type: mysql
  host: ch1:9004
  username: reader
  password: secret
  dialTimeout: 2s
log:
  level: debug
  pretty: false
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, SourceMySQL, cfg.Source.Type)
	assert.Equal(t, "ch1:9004", cfg.Source.Host)
	assert.Equal(t, "reader", cfg.Source.Username)
	assert.Equal(t, "secret", cfg.Source.Password)
	assert.Equal(t, 2*time.Second, cfg.Source.DialTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, "source:\n  host: localhost\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, SourceClickHouse, cfg.Source.Type)
	assert.Equal(t, "default", cfg.Source.Username)
	assert.Equal(t, 5*time.Second, cfg.Source.DialTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown source type", "source:\n  type: postgres\n  host: h\n"},
		{"missing host", "source:\n  type: clickhouse\n"},
		{"negative timeout", "source:\n  host: h\n  dialTimeout: -1s\n"},
		{"bad log level", "source:\n  host: h\nlog:\n  level: loud\n"},
		{"malformed yaml", "source: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("")
	assert.EqualError(t, err, "config path is required")

	_, err = LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "config file not found")
}

func TestLoad_SkipsValidation(t *testing.T) {
	path := writeConfig(t, "source:\n  type: clickhouse\n  username: default\n")

	_, err := LoadConfig(path)
	assert.EqualError(t, err, "source.host is required")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Source.Host)
	assert.Equal(t, "default", cfg.Source.Username)

	cfg.Source.Host = "ch1"
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("")
	assert.EqualError(t, err, "config path is required")

	_, err = Load(writeConfig(t, "source: [\n"))
	assert.ErrorContains(t, err, "parse config")
}

func TestDefault_NeedsHost(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.Validate())

	cfg.Source.Host = "localhost"
	assert.NoError(t, cfg.Validate())
}
