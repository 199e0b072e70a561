package waves

import "errors"

var (
	// ErrInvalidConfig indicates grid or time parameters that cannot form a simulation.
	ErrInvalidConfig = errors.New("waves: invalid config")
	// ErrOutOfRange indicates a disturbance outside the grid interior.
	ErrOutOfRange = errors.New("waves: cell out of range")
	// ErrInvalidMagnitude indicates a NaN or infinite disturbance magnitude.
	ErrInvalidMagnitude = errors.New("waves: invalid disturbance magnitude")
)
