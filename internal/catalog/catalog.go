// Package catalog models the databases, tables and columns of a ClickHouse
// server and builds time-bounded reads against them.
package catalog

import "sort"

// Catalog maps database name to table name to Table. It is built once by
// Build or Discover and never modified afterwards.
type Catalog struct {
	host      string
	databases map[string]*Database
	order     []string
}

// Database holds the tables of one database, keyed by table name.
type Database struct {
	name   string
	tables map[string]*Table
	order  []string
}

func (c *Catalog) Host() string { return c.host }

// Databases returns the database names in sorted order.
func (c *Catalog) Databases() []string {
	return append([]string(nil), c.order...)
}

func (c *Catalog) Database(name string) (*Database, bool) {
	db, ok := c.databases[name]
	return db, ok
}

// Table looks up database.table.
func (c *Catalog) Table(database, table string) (*Table, bool) {
	db, ok := c.databases[database]
	if !ok {
		return nil, false
	}
	return db.Table(table)
}

// Len returns the number of databases.
func (c *Catalog) Len() int { return len(c.order) }

func (d *Database) Name() string { return d.name }

// Tables returns the table names in sorted order.
func (d *Database) Tables() []string {
	return append([]string(nil), d.order...)
}

func (d *Database) Table(name string) (*Table, bool) {
	t, ok := d.tables[name]
	return t, ok
}

func (d *Database) Len() int { return len(d.order) }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
