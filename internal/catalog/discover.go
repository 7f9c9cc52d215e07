package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderjulianmartinez/tablehouse/internal/source"
	"github.com/alexanderjulianmartinez/tablehouse/pkg/types"
)

// MetadataQuery lists every column of every table on the server.
const MetadataQuery = "SELECT database, table, name, type, compression_codec as codec FROM system.columns"

// MetadataDatabase is the database MetadataQuery runs in.
const MetadataDatabase = "system"

// Discover reads the column metadata of host and groups it into a Catalog.
// Every call issues exactly one query; nothing is cached. The returned
// tables send their pulls through exec.
func Discover(ctx context.Context, exec source.Executor, host string, opts ...Option) (*Catalog, error) {
	if exec == nil {
		return nil, ErrNoExecutor
	}
	o := newOptions(opts)

	res, err := exec.ExecuteQuery(ctx, MetadataQuery, source.Connection{Host: host, Database: MetadataDatabase})
	if err != nil {
		return nil, err
	}

	cat := Build(host, res, exec, opts...)
	o.logger.Debug().
		Str("host", host).
		Int("rows", res.Len()).
		Int("databases", cat.Len()).
		Msg("discovered catalog")
	return cat, nil
}

// Build groups metadata rows by database and then by table. Fields are
// located by column name; missing fields and NULLs become empty strings,
// or NoCodec for the codec. Columns keep the order of their rows.
func Build(host string, res *types.Result, exec source.Executor, opts ...Option) *Catalog {
	var (
		dbIdx    = -1
		tableIdx = -1
		nameIdx  = -1
		typeIdx  = -1
		codecIdx = -1
	)
	if res != nil {
		dbIdx = res.ColumnIndex("database")
		tableIdx = res.ColumnIndex("table")
		nameIdx = res.ColumnIndex("name")
		typeIdx = res.ColumnIndex("type")
		codecIdx = res.ColumnIndex("codec")
	}

	grouped := map[string]map[string][]Column{}
	for _, row := range rowsOf(res) {
		db, _ := cellString(row, dbIdx)
		table, _ := cellString(row, tableIdx)
		name, _ := cellString(row, nameIdx)
		dataType, _ := cellString(row, typeIdx)

		codec := NoCodec
		if s, ok := cellString(row, codecIdx); ok {
			codec = CodecOf(s)
		}

		tables, ok := grouped[db]
		if !ok {
			tables = map[string][]Column{}
			grouped[db] = tables
		}
		tables[table] = append(tables[table], NewColumn(name, dataType, codec))
	}

	cat := &Catalog{
		host:      host,
		databases: make(map[string]*Database, len(grouped)),
		order:     sortedKeys(grouped),
	}
	for _, dbName := range cat.order {
		tables := grouped[dbName]
		db := &Database{
			name:   dbName,
			tables: make(map[string]*Table, len(tables)),
			order:  sortedKeys(tables),
		}
		for _, tblName := range db.order {
			db.tables[tblName] = NewTable(dbName, tblName, host, tables[tblName], exec, opts...)
		}
		cat.databases[dbName] = db
	}
	return cat
}

func rowsOf(res *types.Result) [][]any {
	if res == nil {
		return nil
	}
	return res.Rows
}

// cellString converts row[i] to a string. ok is false when the cell is
// missing or NULL.
func cellString(row []any, i int) (string, bool) {
	if i < 0 || i >= len(row) {
		return "", false
	}
	switch v := row[i].(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case []byte:
		return string(v), true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	case sql.NullString:
		return v.String, v.Valid
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprint(v), true
	}
}
