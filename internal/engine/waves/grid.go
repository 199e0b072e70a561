// Package waves implements a damped height-field wave simulation.
//
// The surface is a rows x columns lattice of heights advanced with an explicit
// finite-difference scheme. The outermost ring of cells is a fixed frame held at
// zero. Hosts feed per-frame elapsed time into Update, inject ripples with
// Disturb, and read positions and normals back for upload into a vertex buffer.
//
// A Simulation is not safe for concurrent use. Callers must not read positions
// or normals while Update or Disturb is running.
package waves

import (
	"github.com/Faultbox/midgard-waves/pkg/math"
)

// Buffer slots inside Grid.buffers.
const (
	slotPrev = iota
	slotCurr
	slotNext
	slotCount
)

// Grid owns the height history and the lattice geometry.
//
// The three height buffers are allocated once. prev, curr and next are slot
// indices into buffers and rotate after every step, so no slice header is ever
// shared between two roles.
type Grid struct {
	rows, cols int
	spacing    float32

	halfWidth float32 // (cols-1)*dx/2
	halfDepth float32 // (rows-1)*dx/2

	buffers          [slotCount][]float32
	prev, curr, next int
}

// newGrid allocates a zeroed grid. cfg must already be validated.
func newGrid(cfg Config) *Grid {
	n := cfg.Rows * cfg.Columns
	dx := float32(cfg.Spacing)
	g := &Grid{
		rows:      cfg.Rows,
		cols:      cfg.Columns,
		spacing:   dx,
		halfWidth: float32(cfg.Columns-1) * dx * 0.5,
		halfDepth: float32(cfg.Rows-1) * dx * 0.5,
		prev:      slotPrev,
		curr:      slotCurr,
		next:      slotNext,
	}
	for i := range g.buffers {
		g.buffers[i] = make([]float32, n)
	}
	return g
}

// Rows returns the row count m.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the column count n.
func (g *Grid) Columns() int { return g.cols }

// VertexCount returns m*n.
func (g *Grid) VertexCount() int { return g.rows * g.cols }

// TriangleCount returns the number of triangles covering the grid, two per quad.
func (g *Grid) TriangleCount() int { return 2 * (g.rows - 1) * (g.cols - 1) }

// Width returns n*dx.
func (g *Grid) Width() float32 { return float32(g.cols) * g.spacing }

// Depth returns m*dx.
func (g *Grid) Depth() float32 { return float32(g.rows) * g.spacing }

// Index returns the flat vertex index of (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// Cell returns the (row, col) of a flat vertex index.
func (g *Grid) Cell(i int) (row, col int) { return i / g.cols, i % g.cols }

// Height returns the current height at (row, col).
func (g *Grid) Height(row, col int) float32 {
	return g.buffers[g.curr][row*g.cols+col]
}

// CopyHeights copies the current heights into dst, growing it if needed.
func (g *Grid) CopyHeights(dst []float32) []float32 {
	n := g.VertexCount()
	if cap(dst) < n {
		dst = make([]float32, n)
	}
	dst = dst[:n]
	copy(dst, g.buffers[g.curr])
	return dst
}

// Position returns the lattice position of vertex i with its current height.
// X and Z depend only on the vertex index; the grid is centred on the origin
// with row 0 at +Z.
func (g *Grid) Position(i int) math.Vec3 {
	row, col := g.Cell(i)
	return math.Vec3{
		X: -g.halfWidth + float32(col)*g.spacing,
		Y: g.buffers[g.curr][i],
		Z: g.halfDepth - float32(row)*g.spacing,
	}
}

// Interior reports whether (row, col) lies strictly inside the fixed frame.
func (g *Grid) Interior(row, col int) bool {
	return row >= 1 && row <= g.rows-2 && col >= 1 && col <= g.cols-2
}

// Boundary reports whether (row, col) is part of the fixed frame.
func (g *Grid) Boundary(row, col int) bool {
	return row == 0 || row == g.rows-1 || col == 0 || col == g.cols-1
}

// Reset zeroes the whole height history in place.
func (g *Grid) Reset() {
	for _, buf := range g.buffers {
		clear(buf)
	}
}

// rotate makes next the current solution and recycles prev as the next target.
func (g *Grid) rotate() {
	g.prev, g.curr, g.next = g.curr, g.next, g.prev
}

func (g *Grid) prevBuf() []float32 { return g.buffers[g.prev] }
func (g *Grid) currBuf() []float32 { return g.buffers[g.curr] }
func (g *Grid) nextBuf() []float32 { return g.buffers[g.next] }
