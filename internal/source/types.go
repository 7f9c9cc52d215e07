package source

import (
	"context"

	"github.com/alexanderjulianmartinez/tablehouse/pkg/types"
)

// Connection identifies the server and default database a query runs against.
type Connection struct {
	Host     string
	Database string
}

// Executor runs a single query and returns its rows. Implementations own
// the transport; errors from the server are returned unchanged.
type Executor interface {
	ExecuteQuery(ctx context.Context, query string, conn Connection) (*types.Result, error)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, query string, conn Connection) (*types.Result, error)

func (f ExecutorFunc) ExecuteQuery(ctx context.Context, query string, conn Connection) (*types.Result, error) {
	return f(ctx, query, conn)
}
