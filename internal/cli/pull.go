package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexanderjulianmartinez/tablehouse/internal/catalog"
)

func newPullCmd(a *app) *cobra.Command {
	var (
		start      string
		stop       string
		conditions string
		columns    string
		format     string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "pull <database>.<table>",
		Short: "Read rows whose Timestamp lies in a range",
		Long: `Reads rows of a table whose Timestamp column lies between --start and --stop.

Bounds are "YYYY-MM-DD hh:mm:ss" strings or RFC 3339 times. --where is
appended to the query as written, so it normally starts with AND.

--columns takes raw SQL ("*", "a, b AS x"), a YAML list ("[a, b]") or a
YAML mapping of column to alias ("{a: x, b: y}").

Examples:
  tablehouse pull analytics.events --start "2021-01-01 00:00:00" --stop "2021-01-02 00:00:00"
  tablehouse pull analytics.events --start 2021-01-01T00:00:00Z --stop 2021-01-02T00:00:00Z --columns "[user_id, event]" -f json
  tablehouse pull analytics.events --start "2021-01-01 00:00:00" --stop "2021-01-02 00:00:00" --where "AND event = 'click'" --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dbName, tblName, err := splitQualified(args[0])
			if err != nil {
				return err
			}
			proj, err := parseColumnsFlag(columns)
			if err != nil {
				return err
			}
			render, err := rendererFor(format)
			if err != nil {
				return err
			}

			tbl := catalog.NewTable(dbName, tblName, a.cfg.Source.Host, nil, a.exec, catalog.WithLogger(a.logger))
			if dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), tbl.PullQuery(parseBound(start), parseBound(stop), conditions, proj))
				return nil
			}

			res, err := tbl.PullData(cmd.Context(), parseBound(start), parseBound(stop), conditions, proj)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Range start (inclusive)")
	cmd.Flags().StringVar(&stop, "stop", "", "Range end (inclusive)")
	cmd.Flags().StringVar(&conditions, "where", "", "Extra SQL appended after the range predicate")
	cmd.Flags().StringVar(&columns, "columns", string(catalog.AllColumns), "Columns to select")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, csv, json)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the query instead of running it")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("stop")

	return cmd
}

// parseBound converts RFC 3339 input to the server's layout and passes
// anything else through untouched.
func parseBound(s string) catalog.Timestamp {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return catalog.TimeOf(t)
	}
	return catalog.Timestamp(s)
}

// parseColumnsFlag reads YAML flow lists and mappings; any other text is
// a raw select clause.
func parseColumnsFlag(s string) (catalog.Projection, error) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "[") && !strings.HasPrefix(trimmed, "{") {
		return catalog.RawClause(s), nil
	}
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(trimmed), &node); err != nil {
		return nil, fmt.Errorf("parse --columns: %w", err)
	}
	return catalog.ParseProjection(&node)
}
