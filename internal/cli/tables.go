package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexanderjulianmartinez/tablehouse/internal/catalog"
)

func newTablesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tables [database]",
		Short: "List the tables on the server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Discover(cmd.Context(), a.exec, a.cfg.Source.Host, catalog.WithLogger(a.logger))
			if err != nil {
				return err
			}

			databases := cat.Databases()
			if len(args) == 1 {
				if _, ok := cat.Database(args[0]); !ok {
					return fmt.Errorf("database %s not found on %s", args[0], cat.Host())
				}
				databases = []string{args[0]}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, dbName := range databases {
				db, _ := cat.Database(dbName)
				for _, tblName := range db.Tables() {
					tbl, _ := db.Table(tblName)
					fmt.Fprintf(w, "%s\t(%d columns)\n", tbl.QualifiedName(), len(tbl.Columns()))
				}
			}
			return w.Flush()
		},
	}
}

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <database>.<table>",
		Short: "Show the columns, types and codecs of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dbName, tblName, err := splitQualified(args[0])
			if err != nil {
				return err
			}

			cat, err := catalog.Discover(cmd.Context(), a.exec, a.cfg.Source.Host, catalog.WithLogger(a.logger))
			if err != nil {
				return err
			}
			tbl, ok := cat.Table(dbName, tblName)
			if !ok {
				return fmt.Errorf("table %s.%s not found on %s", dbName, tblName, cat.Host())
			}
			tbl.DescribeTo(cmd.OutOrStdout())
			return nil
		},
	}
}

// splitQualified splits "database.table" at the first dot.
func splitQualified(s string) (string, string, error) {
	db, tbl, ok := strings.Cut(s, ".")
	if !ok || db == "" || tbl == "" {
		return "", "", fmt.Errorf("expected <database>.<table>, got %q", s)
	}
	return db, tbl, nil
}
