package waves

import (
	"golang.org/x/sync/errgroup"
)

// Integrator advances a Grid by one fixed time step using the explicit
// central-difference discretization of the damped 2D wave equation.
type Integrator struct {
	grid *Grid

	// next = k1*prev + k2*curr + k3*(sum of the four axis neighbours)
	k1, k2, k3 float32

	workers int
	bands   []band
}

// band is a contiguous run of interior rows, [start, end).
type band struct {
	start, end int
}

// newIntegrator derives the stencil coefficients once from cfg.
func newIntegrator(g *Grid, cfg Config) *Integrator {
	d := cfg.Damping
	dt := cfg.TimeStep
	e := cfg.Speed * cfg.Speed * dt * dt / (cfg.Spacing * cfg.Spacing)
	denom := d*dt + 2

	it := &Integrator{
		grid:    g,
		k1:      float32((d*dt - 2) / denom),
		k2:      float32((4 - 8*e) / denom),
		k3:      float32((2 * e) / denom),
		workers: cfg.Workers,
	}
	if it.workers > 1 {
		it.bands = splitRows(1, g.rows-1, it.workers)
	}
	return it
}

// Coefficients returns k1, k2 and k3.
func (it *Integrator) Coefficients() (k1, k2, k3 float32) {
	return it.k1, it.k2, it.k3
}

// Step advances the grid by exactly one time step and rotates its buffers.
func (it *Integrator) Step() {
	g := it.grid
	if len(it.bands) > 1 {
		var eg errgroup.Group
		eg.SetLimit(it.workers)
		for _, b := range it.bands {
			eg.Go(func() error {
				it.stepRows(b.start, b.end)
				return nil
			})
		}
		_ = eg.Wait()
	} else {
		it.stepRows(1, g.rows-1)
	}
	it.copyFrame()
	g.rotate()
}

// stepRows computes next for interior rows [start, end).
func (it *Integrator) stepRows(start, end int) {
	g := it.grid
	n := g.cols
	prev, curr, next := g.prevBuf(), g.currBuf(), g.nextBuf()
	k1, k2, k3 := it.k1, it.k2, it.k3

	for r := start; r < end; r++ {
		base := r * n
		center := curr[base : base+n]
		top := curr[base-n : base]
		bottom := curr[base+n : base+2*n]
		prevRow := prev[base : base+n]
		nextRow := next[base : base+n]

		for c := 1; c < n-1; c++ {
			nextRow[c] = k1*prevRow[c] + k2*center[c] +
				k3*(bottom[c]+top[c]+center[c+1]+center[c-1])
		}
	}
}

// copyFrame carries the fixed boundary ring from curr into next.
func (it *Integrator) copyFrame() {
	g := it.grid
	m, n := g.rows, g.cols
	curr, next := g.currBuf(), g.nextBuf()

	copy(next[:n], curr[:n])
	last := (m - 1) * n
	copy(next[last:last+n], curr[last:last+n])
	for r := 1; r < m-1; r++ {
		base := r * n
		next[base] = curr[base]
		next[base+n-1] = curr[base+n-1]
	}
}

// splitRows divides [first, last) into at most parts contiguous bands of
// near-equal size.
func splitRows(first, last, parts int) []band {
	total := last - first
	if total <= 0 {
		return nil
	}
	if parts > total {
		parts = total
	}
	bands := make([]band, 0, parts)
	size, extra := total/parts, total%parts
	start := first
	for i := 0; i < parts; i++ {
		end := start + size
		if i < extra {
			end++
		}
		bands = append(bands, band{start: start, end: end})
		start = end
	}
	return bands
}
