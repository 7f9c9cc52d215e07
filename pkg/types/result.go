package types

// Result is a row-oriented table returned by a query. Columns holds the
// field names in select order and every row has one value per column.
type Result struct {
	Columns []string
	Rows    [][]any
}

// ColumnIndex returns the position of the named column, or -1.
func (r *Result) ColumnIndex(name string) int {
	for i, c := range r.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Rows)
}
