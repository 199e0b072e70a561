package waves

import (
	"github.com/Faultbox/midgard-waves/pkg/math"
)

// neighbours returns the heights left, right, top (row-1) and bottom (row+1)
// of (row, col). Missing neighbours at the grid edge fall back to the cell's
// own height.
func (g *Grid) neighbours(row, col int) (l, r, t, b float32) {
	curr := g.currBuf()
	n := g.cols
	i := row*n + col
	h := curr[i]
	l, r, t, b = h, h, h, h
	if col > 0 {
		l = curr[i-1]
	}
	if col < n-1 {
		r = curr[i+1]
	}
	if row > 0 {
		t = curr[i-n]
	}
	if row < g.rows-1 {
		b = curr[i+n]
	}
	return l, r, t, b
}

// NormalAt returns the unit surface normal at (row, col) from the
// central-difference height gradient. Z decreases with the row index, so
// normalize(-dh/dx, 1, -dh/dz) scaled by 2dx is (l-r, 2dx, b-t).
func NormalAt(g *Grid, row, col int) math.Vec3 {
	l, r, t, b := g.neighbours(row, col)
	return math.Vec3{X: l - r, Y: 2 * g.spacing, Z: b - t}.Normalize()
}

// TangentAt returns the unit surface tangent along +X at (row, col).
func TangentAt(g *Grid, row, col int) math.Vec3 {
	l, r, _, _ := g.neighbours(row, col)
	return math.Vec3{X: 2 * g.spacing, Y: r - l}.Normalize()
}

// SurfaceFrame caches per-vertex normals for a grid. Tangents are evaluated on
// demand with TangentAt.
type SurfaceFrame struct {
	normals []math.Vec3
}

func newSurfaceFrame(g *Grid) *SurfaceFrame {
	f := &SurfaceFrame{normals: make([]math.Vec3, g.VertexCount())}
	f.Recompute(g)
	return f
}

// Recompute rebuilds every normal from the grid's current heights.
func (f *SurfaceFrame) Recompute(g *Grid) {
	i := 0
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			f.normals[i] = NormalAt(g, r, c)
			i++
		}
	}
}

// Normal returns the cached normal of vertex i.
func (f *SurfaceFrame) Normal(i int) math.Vec3 { return f.normals[i] }
