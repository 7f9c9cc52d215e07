package catalog

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/alexanderjulianmartinez/tablehouse/internal/source"
	"github.com/alexanderjulianmartinez/tablehouse/pkg/types"
)

// Table is a snapshot of one table's columns on a host. It is not kept
// in sync with the server.
type Table struct {
	columns  []Column
	database string
	name     string
	host     string

	exec   source.Executor
	logger zerolog.Logger
}

// NewTable copies columns; later changes to the caller's slice are not seen.
func NewTable(database, name, host string, columns []Column, exec source.Executor, opts ...Option) *Table {
	o := newOptions(opts)
	return &Table{
		columns:  append([]Column(nil), columns...),
		database: database,
		name:     name,
		host:     host,
		exec:     exec,
		logger:   o.logger,
	}
}

func (t *Table) Database() string { return t.database }
func (t *Table) Name() string     { return t.name }
func (t *Table) Host() string     { return t.host }

// QualifiedName returns "database.table".
func (t *Table) QualifiedName() string { return t.database + "." + t.name }

// Columns returns a copy of the columns in discovery order.
func (t *Table) Columns() []Column {
	return append([]Column(nil), t.columns...)
}

func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name()
	}
	return names
}

// Describe prints the table layout to standard output.
func (t *Table) Describe() {
	t.DescribeTo(os.Stdout)
}

func (t *Table) DescribeTo(w io.Writer) {
	fmt.Fprintf(w, "%s (%s)\n", t.database, t.host)
	fmt.Fprintf(w, "   %s\n", t.name)
	for _, c := range t.columns {
		fmt.Fprintf(w, "     %s %s %s\n", c.Name(), c.DataType(), c.Codec())
	}
}

// PullQuery returns the query PullData would send.
func (t *Table) PullQuery(start, stop Timestamp, conditions string, columns Projection) string {
	return BuildPullQuery(t.database, t.name, start, stop, conditions, columns)
}

// PullData selects rows whose Timestamp lies between start and stop.
// conditions is appended after the range predicate as written, so it
// usually starts with AND. Errors from the executor are returned as is.
func (t *Table) PullData(ctx context.Context, start, stop Timestamp, conditions string, columns Projection) (*types.Result, error) {
	if t.exec == nil {
		return nil, ErrNoExecutor
	}
	query := t.PullQuery(start, stop, conditions, columns)

	t.logger.Debug().
		Str("table", t.QualifiedName()).
		Str("query", query).
		Msg("pulling data")

	res, err := t.exec.ExecuteQuery(ctx, query, source.Connection{Host: t.host, Database: t.database})
	if err != nil {
		return nil, err
	}
	t.logger.Debug().Str("table", t.QualifiedName()).Int("rows", res.Len()).Msg("pulled data")
	return res, nil
}
