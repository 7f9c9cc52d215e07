package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderjulianmartinez/tablehouse/internal/config"
	"github.com/alexanderjulianmartinez/tablehouse/internal/source"
)

func TestDriverConfig(t *testing.T) {
	e := NewExecutor(config.SourceConfig{
		Type:        config.SourceMySQL,
		Username:    "reader",
		Password:    "secret",
		DialTimeout: 4 * time.Second,
	}, zerolog.Nop())

	cfg, err := e.driverConfig(source.Connection{Host: "ch1", Database: "events"})
	require.NoError(t, err)
	assert.Equal(t, "tcp", cfg.Net)
	assert.Equal(t, "ch1:9004", cfg.Addr)
	assert.Equal(t, "reader", cfg.User)
	assert.Equal(t, "secret", cfg.Passwd)
	assert.Equal(t, "events", cfg.DBName)
	assert.Equal(t, 4*time.Second, cfg.Timeout)
	assert.True(t, cfg.InterpolateParams)
}

func TestDriverConfig_FormatDSN(t *testing.T) {
	e := NewExecutor(config.SourceConfig{Host: "ch2:3306", Username: "default"}, zerolog.Nop())

	cfg, err := e.driverConfig(source.Connection{Database: "system"})
	require.NoError(t, err)
	assert.Contains(t, cfg.FormatDSN(), "default@tcp(ch2:3306)/system")
}

func TestDriverConfig_RejectsURL(t *testing.T) {
	e := NewExecutor(config.SourceConfig{}, zerolog.Nop())

	_, err := e.driverConfig(source.Connection{Host: "http://localhost:8123"})
	assert.ErrorContains(t, err, "urls are not supported")

	_, err = e.ExecuteQuery(context.Background(), "SELECT 1", source.Connection{Host: "http://localhost:8123"})
	assert.ErrorContains(t, err, "urls are not supported")
}
