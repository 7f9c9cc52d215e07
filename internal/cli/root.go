// Package cli implements the tablehouse command line.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/alexanderjulianmartinez/tablehouse/internal/config"
	"github.com/alexanderjulianmartinez/tablehouse/internal/logging"
	"github.com/alexanderjulianmartinez/tablehouse/internal/source"
	"github.com/alexanderjulianmartinez/tablehouse/internal/source/clickhouse"
	"github.com/alexanderjulianmartinez/tablehouse/internal/source/mysql"
)

// Version is set at build time with -ldflags.
var Version = "dev"

type executorFactory func(cfg config.SourceConfig, logger zerolog.Logger) (source.Executor, error)

// app carries the state shared by all subcommands once flags are parsed.
type app struct {
	configPath string
	host       string
	sourceType string
	logLevel   string

	newExecutor executorFactory

	cfg    *config.Config
	logger zerolog.Logger
	exec   source.Executor
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{newExecutor: newExecutor})
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tablehouse",
		Short: "Browse ClickHouse metadata and pull time-bounded data",
		Long: `tablehouse discovers the databases, tables and columns of a ClickHouse
server and reads rows from a table between two timestamps.

Examples:
  # List every table on a server
  tablehouse tables --host ch1

  # Show the columns of one table
  tablehouse describe analytics.events --host ch1

  # Pull a day of rows as CSV
  tablehouse pull analytics.events --start "2021-01-01 00:00:00" --stop "2021-01-02 00:00:00" -f csv`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to config.yaml")
	cmd.PersistentFlags().StringVar(&a.host, "host", "", "ClickHouse host[:port], overrides source.host")
	cmd.PersistentFlags().StringVar(&a.sourceType, "source", "", "Wire protocol (clickhouse, mysql), overrides source.type")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error), overrides log.level")

	cmd.AddCommand(newTablesCmd(a))
	cmd.AddCommand(newDescribeCmd(a))
	cmd.AddCommand(newPullCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if a.host != "" {
		cfg.Source.Host = a.host
	}
	if a.sourceType != "" {
		cfg.Source.Type = a.sourceType
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logCfg := logging.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
		Output: cmd.ErrOrStderr(),
	}
	a.cfg = cfg
	a.logger = logging.New(logCfg)

	exec, err := a.newExecutor(cfg.Source, logging.NewWithComponent(logCfg, cfg.Source.Type))
	if err != nil {
		return err
	}
	a.exec = exec
	return nil
}

func newExecutor(cfg config.SourceConfig, logger zerolog.Logger) (source.Executor, error) {
	switch cfg.Type {
	case config.SourceClickHouse:
		return clickhouse.NewExecutor(cfg, logger), nil
	case config.SourceMySQL:
		return mysql.NewExecutor(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown source type: %s", cfg.Type)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		// Skip config loading; version needs no server.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("tablehouse version %s\n", Version)
		},
	}
}
