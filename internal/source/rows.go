package source

import (
	"database/sql"
	"io"
	"net"

	"github.com/rs/zerolog"

	"github.com/alexanderjulianmartinez/tablehouse/pkg/types"
)

// ScanRows drains rows into a Result. Byte slices are converted to strings
// so text columns read back the same from every driver.
func ScanRows(rows *sql.Rows) (*types.Result, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	res := &types.Result{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		res.Rows = append(res.Rows, values)
	}
	return res, rows.Err()
}

// DeferClose closes c and logs a failure instead of dropping it.
func DeferClose(logger zerolog.Logger, c io.Closer, msg string) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		logger.Warn().Err(err).Msg(msg)
	}
}

// WithDefaultPort appends port to host when host carries none.
func WithDefaultPort(host, port string) string {
	if host == "" {
		return net.JoinHostPort("localhost", port)
	}
	if _, _, err := net.SplitHostPort(host); err == nil {
		return host
	}
	return net.JoinHostPort(host, port)
}
