package catalog

import (
	"context"

	"github.com/alexanderjulianmartinez/tablehouse/internal/source"
	"github.com/alexanderjulianmartinez/tablehouse/pkg/types"
)

type call struct {
	query string
	conn  source.Connection
}

// fakeExecutor records queries and replies with a canned result or error.
type fakeExecutor struct {
	calls  []call
	result *types.Result
	err    error
}

func (f *fakeExecutor) ExecuteQuery(_ context.Context, query string, conn source.Connection) (*types.Result, error) {
	f.calls = append(f.calls, call{query: query, conn: conn})
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}
