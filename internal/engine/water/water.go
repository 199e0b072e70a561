// Package water builds GPU-ready buffers for the animated water surface.
package water

import (
	"errors"
	"fmt"

	"github.com/Faultbox/midgard-waves/pkg/math"
)

// ErrTooManyVertices is returned when a grid cannot be indexed with 16-bit indices.
var ErrTooManyVertices = errors.New("water: vertex count exceeds 16-bit index range")

// Vertex represents a water surface vertex.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Surface is the read side of a simulated water grid.
type Surface interface {
	VertexCount() int
	Width() float32
	Depth() float32
	Position(i int) math.Vec3
	Normal(i int) math.Vec3
}

// BuildIndices creates a triangle list covering a rows x cols vertex grid,
// two triangles per quad, including the quads along the outer frame.
func BuildIndices(rows, cols int) []uint32 {
	if rows < 2 || cols < 2 {
		return nil
	}
	indices := make([]uint32, 0, 6*(rows-1)*(cols-1))
	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols-1; j++ {
			a := uint32(i*cols + j)
			b := uint32(i*cols + j + 1)
			c := uint32((i+1)*cols + j)
			d := uint32((i+1)*cols + j + 1)
			indices = append(indices,
				a, b, c,
				c, b, d,
			)
		}
	}
	return indices
}

// BuildIndices16 is BuildIndices for renderers that bind 16-bit index buffers.
func BuildIndices16(rows, cols int) ([]uint16, error) {
	// 0xffff is reserved as the primitive restart index.
	if rows*cols >= 0xffff {
		return nil, fmt.Errorf("%w: %dx%d grid has %d vertices", ErrTooManyVertices, rows, cols, rows*cols)
	}
	wide := BuildIndices(rows, cols)
	indices := make([]uint16, len(wide))
	for i, idx := range wide {
		indices[i] = uint16(idx)
	}
	return indices, nil
}

// FillVertices writes every vertex of s into dst, reusing its capacity.
// Texture coordinates map [-w/2, w/2] to [0, 1] horizontally and flip Z so
// that v grows toward the viewer.
func FillVertices(dst []Vertex, s Surface) []Vertex {
	n := s.VertexCount()
	if cap(dst) < n {
		dst = make([]Vertex, n)
	}
	dst = dst[:n]

	w, d := s.Width(), s.Depth()
	for i := range dst {
		p := s.Position(i)
		dst[i] = Vertex{
			Position: p.Array(),
			Normal:   s.Normal(i).Array(),
			TexCoord: [2]float32{0.5 + p.X/w, 0.5 - p.Z/d},
		}
	}
	return dst
}

// DefaultScrollRate is the water material's texture drift in UV units per second.
var DefaultScrollRate = math.Vec2{X: 0.1, Y: 0.02}

// TexScroll animates the water material's texture offset.
type TexScroll struct {
	Offset math.Vec2
	Rate   math.Vec2
}

// NewTexScroll returns a scroller starting at the origin with DefaultScrollRate.
func NewTexScroll() *TexScroll {
	return &TexScroll{Rate: DefaultScrollRate}
}

// Advance moves the offset by Rate*dt and wraps it into [0, 1).
func (t *TexScroll) Advance(dt float32) math.Vec2 {
	t.Offset = t.Offset.Add(t.Rate.Scale(dt)).Fract()
	return t.Offset
}
