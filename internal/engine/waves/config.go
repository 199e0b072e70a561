package waves

import (
	"fmt"
	"math"
)

// MinGridSize is the smallest row or column count a grid may have.
// Anything smaller leaves no interior for the stencil to work on.
const MinGridSize = 4

// MaxStableCourant is the largest c*dt/dx the explicit scheme stays bounded for.
var MaxStableCourant = 1 / math.Sqrt2

// Config holds grid geometry and simulation constants.
type Config struct {
	Rows     int     // m, number of grid rows
	Columns  int     // n, number of grid columns
	Spacing  float64 // dx, cell size in both axes
	TimeStep float64 // dt, fixed sub-step in seconds
	Speed    float64 // wave propagation speed
	Damping  float64 // in [0, 2)

	// Workers > 1 computes interior rows concurrently during a step.
	Workers int
	// MaxSubsteps caps the steps taken by a single Update. 0 means unlimited.
	MaxSubsteps int
}

// DefaultConfig returns the pond used by the demo scene.
func DefaultConfig() Config {
	return Config{
		Rows:     305,
		Columns:  150,
		Spacing:  1.0,
		TimeStep: 0.03,
		Speed:    4.0,
		Damping:  0.2,
		Workers:  1,
	}
}

// Validate checks the construction invariants. Stability is not part of it,
// see Stable.
func (c Config) Validate() error {
	switch {
	case c.Rows < MinGridSize:
		return fmt.Errorf("%w: rows %d < %d", ErrInvalidConfig, c.Rows, MinGridSize)
	case c.Columns < MinGridSize:
		return fmt.Errorf("%w: columns %d < %d", ErrInvalidConfig, c.Columns, MinGridSize)
	case !(c.Spacing > 0) || math.IsInf(c.Spacing, 0):
		return fmt.Errorf("%w: spacing %v must be positive", ErrInvalidConfig, c.Spacing)
	case !(c.TimeStep > 0) || math.IsInf(c.TimeStep, 0):
		return fmt.Errorf("%w: time step %v must be positive", ErrInvalidConfig, c.TimeStep)
	case !(c.Speed > 0) || math.IsInf(c.Speed, 0):
		return fmt.Errorf("%w: speed %v must be positive", ErrInvalidConfig, c.Speed)
	case !(c.Damping >= 0 && c.Damping < 2):
		return fmt.Errorf("%w: damping %v outside [0, 2)", ErrInvalidConfig, c.Damping)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d is negative", ErrInvalidConfig, c.Workers)
	case c.MaxSubsteps < 0:
		return fmt.Errorf("%w: max substeps %d is negative", ErrInvalidConfig, c.MaxSubsteps)
	}
	return nil
}

// Courant returns c*dt/dx.
func (c Config) Courant() float64 {
	return c.Speed * c.TimeStep / c.Spacing
}

// Stable reports whether the configuration satisfies c*dt/dx <= 1/sqrt(2).
// Unstable configurations are still accepted by New.
func (c Config) Stable() bool {
	return c.Courant() <= MaxStableCourant
}
