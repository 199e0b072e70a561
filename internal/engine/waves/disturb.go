package waves

import (
	"fmt"
	"math"
)

// Disturb adds magnitude to the height at (row, col) and magnitude/2 to each
// of its four axis neighbours. Only interior cells may be disturbed; anything
// else returns ErrOutOfRange and leaves the grid untouched.
//
// The impulse is a displacement at rest: prev is raised by the same amounts as
// curr, so the cells start from zero velocity and relax on the next Step.
// The trade-off is that the ripple starts still rather than moving. Raising
// curr alone would give it an upward velocity of magnitude/dt, and the peak
// would keep climbing (about 2x) on the first Step instead of falling.
// Neighbours on the fixed frame are skipped.
func (g *Grid) Disturb(row, col int, magnitude float32) error {
	if !g.Interior(row, col) {
		return fmt.Errorf("%w: (%d, %d) outside interior [1, %d]x[1, %d]",
			ErrOutOfRange, row, col, g.rows-2, g.cols-2)
	}
	if math.IsNaN(float64(magnitude)) || math.IsInf(float64(magnitude), 0) {
		return fmt.Errorf("%w: %v", ErrInvalidMagnitude, magnitude)
	}

	half := 0.5 * magnitude
	g.raise(row, col, magnitude)
	g.raiseInterior(row-1, col, half)
	g.raiseInterior(row+1, col, half)
	g.raiseInterior(row, col-1, half)
	g.raiseInterior(row, col+1, half)
	return nil
}

func (g *Grid) raiseInterior(row, col int, amount float32) {
	if g.Boundary(row, col) {
		return
	}
	g.raise(row, col, amount)
}

func (g *Grid) raise(row, col int, amount float32) {
	i := row*g.cols + col
	g.buffers[g.curr][i] += amount
	g.buffers[g.prev][i] += amount
}
