// Package mysql runs queries through the MySQL-compatible interface that
// ClickHouse exposes, using the standard MySQL driver.
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"

	"github.com/alexanderjulianmartinez/tablehouse/internal/config"
	"github.com/alexanderjulianmartinez/tablehouse/internal/source"
	"github.com/alexanderjulianmartinez/tablehouse/pkg/types"
)

const DefaultPort = "9004"

type Executor struct {
	cfg    config.SourceConfig
	logger zerolog.Logger
}

func NewExecutor(cfg config.SourceConfig, logger zerolog.Logger) *Executor {
	return &Executor{cfg: cfg, logger: logger}
}

func (e *Executor) ExecuteQuery(ctx context.Context, query string, conn source.Connection) (*types.Result, error) {
	cfg, err := e.driverConfig(conn)
	if err != nil {
		return nil, err
	}
	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("mysql connector: %w", err)
	}
	db := sql.OpenDB(connector)
	defer source.DeferClose(e.logger, db, "close mysql connection")

	e.logger.Debug().
		Str("host", conn.Host).
		Str("database", conn.Database).
		Str("query", query).
		Msg("executing query")

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer source.DeferClose(e.logger, rows, "close mysql rows")

	return source.ScanRows(rows)
}

func (e *Executor) driverConfig(conn source.Connection) (*mysql.Config, error) {
	host := conn.Host
	if host == "" {
		host = e.cfg.Host
	}
	if strings.Contains(host, "://") {
		return nil, fmt.Errorf("mysql host %q: urls are not supported, use host[:port]", host)
	}

	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = source.WithDefaultPort(host, DefaultPort)
	cfg.User = e.cfg.Username
	cfg.Passwd = e.cfg.Password
	cfg.DBName = conn.Database
	cfg.Timeout = e.cfg.DialTimeout
	// Send arguments inline instead of preparing statements server side.
	cfg.InterpolateParams = true
	return cfg, nil
}
