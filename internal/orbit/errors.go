package orbit

import "errors"

// Domain errors for integration runs.
var (
	// ErrInvalidParameter indicates a step size or end time that cannot
	// drive the time-marching loop (tau <= 0 or tend < tau).
	ErrInvalidParameter = errors.New("orbit: invalid integration parameter")

	// ErrEmptyHistory indicates a history with no samples.
	ErrEmptyHistory = errors.New("orbit: empty history")
)
