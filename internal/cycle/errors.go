package cycle

import "errors"

// Domain errors for cycle construction.
var (
	// ErrUnknownCycle indicates a cycle name with no registered builder.
	ErrUnknownCycle = errors.New("cycle: unknown cycle")
)
