package catalog

import (
	"fmt"
	"time"
)

// TimeColumn is the time axis every pulled table is expected to carry.
// Nothing checks that the column exists; the server rejects the query if
// it does not.
const TimeColumn = "Timestamp"

// TimestampLayout is the text form toDateTime accepts.
const TimestampLayout = "2006-01-02 15:04:05"

// Timestamp is a range bound, either formatted from a time.Time or passed
// through as written. It is not validated locally.
type Timestamp string

func TimeOf(t time.Time) Timestamp {
	return Timestamp(t.Format(TimestampLayout))
}

const pullTemplate = "SELECT %s FROM %s.%s WHERE " + TimeColumn + " BETWEEN toDateTime('%s') AND toDateTime('%s')"

// BuildPullQuery renders the bounded SELECT for database.table. conditions
// follows the range predicate after a single space, exactly as given.
func BuildPullQuery(database, table string, start, stop Timestamp, conditions string, columns Projection) string {
	if columns == nil {
		columns = AllColumns
	}
	query := fmt.Sprintf(pullTemplate, columns.clause(), database, table, start, stop)
	if conditions == "" {
		return query
	}
	return query + " " + conditions
}
