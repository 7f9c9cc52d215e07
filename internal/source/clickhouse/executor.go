// Package clickhouse runs queries over the native ClickHouse protocol, or
// over HTTP when the host is given as an http:// or https:// URL.
package clickhouse

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/rs/zerolog"

	"github.com/alexanderjulianmartinez/tablehouse/internal/config"
	"github.com/alexanderjulianmartinez/tablehouse/internal/source"
	"github.com/alexanderjulianmartinez/tablehouse/pkg/types"
)

const (
	DefaultPort      = "9000"
	DefaultHTTPPort  = "8123"
	DefaultHTTPSPort = "8443"
)

type Executor struct {
	cfg    config.SourceConfig
	logger zerolog.Logger
}

func NewExecutor(cfg config.SourceConfig, logger zerolog.Logger) *Executor {
	return &Executor{cfg: cfg, logger: logger}
}

// ExecuteQuery opens a connection for conn, runs query and closes the
// connection again before returning.
func (e *Executor) ExecuteQuery(ctx context.Context, query string, conn source.Connection) (*types.Result, error) {
	opts, err := e.options(conn)
	if err != nil {
		return nil, err
	}
	db := clickhouse.OpenDB(opts)
	defer source.DeferClose(e.logger, db, "close clickhouse connection")

	e.logger.Debug().
		Str("host", conn.Host).
		Str("database", conn.Database).
		Str("query", query).
		Msg("executing query")

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer source.DeferClose(e.logger, rows, "close clickhouse rows")

	return source.ScanRows(rows)
}

func (e *Executor) options(conn source.Connection) (*clickhouse.Options, error) {
	host := conn.Host
	if host == "" {
		host = e.cfg.Host
	}
	opts := &clickhouse.Options{
		Protocol: clickhouse.Native,
		Auth: clickhouse.Auth{
			Database: conn.Database,
			Username: e.cfg.Username,
			Password: e.cfg.Password,
		},
		DialTimeout: e.cfg.DialTimeout,
	}
	if !strings.Contains(host, "://") {
		opts.Addr = []string{source.WithDefaultPort(host, DefaultPort)}
		return opts, nil
	}

	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse host %q: %w", host, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("clickhouse host %q has no address", host)
	}
	if u.Path != "" && u.Path != "/" {
		return nil, fmt.Errorf("clickhouse host %q: url paths are not supported", host)
	}

	port := u.Port()
	switch u.Scheme {
	case "http":
		if port == "" {
			port = DefaultHTTPPort
		}
	case "https":
		if port == "" {
			port = DefaultHTTPSPort
		}
		opts.TLS = &tls.Config{ServerName: u.Hostname()}
	default:
		return nil, fmt.Errorf("clickhouse host %q: unsupported scheme %q, use http, https or host[:port]", host, u.Scheme)
	}
	opts.Protocol = clickhouse.HTTP
	opts.Addr = []string{net.JoinHostPort(u.Hostname(), port)}
	return opts, nil
}
