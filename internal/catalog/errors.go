package catalog

import "errors"

var (
	// ErrInvalidArgument is returned when loosely typed column input has an
	// unsupported shape.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNoExecutor is returned when a table has nowhere to send queries.
	ErrNoExecutor = errors.New("table has no executor")
)
