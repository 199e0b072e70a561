package water

import (
	"errors"
	"testing"

	"github.com/Faultbox/midgard-waves/internal/engine/waves"
)

func near(a, b, eps float32) bool {
	d := a - b
	return d <= eps && d >= -eps
}

func TestBuildIndices(t *testing.T) {
	indices := BuildIndices(3, 4)

	// 2x3 quads, 2 triangles each
	if got, want := len(indices), 3*2*(3-1)*(4-1); got != want {
		t.Fatalf("len(indices) = %d, want %d", got, want)
	}

	// First quad of the first row
	want := []uint32{0, 1, 4, 4, 1, 5}
	for i, w := range want {
		if indices[i] != w {
			t.Errorf("indices[%d] = %d, want %d", i, indices[i], w)
		}
	}

	// Last quad touches the last vertex
	last := indices[len(indices)-6:]
	wantLast := []uint32{6, 7, 10, 10, 7, 11}
	for i, w := range wantLast {
		if last[i] != w {
			t.Errorf("last quad[%d] = %d, want %d", i, last[i], w)
		}
	}

	for _, idx := range indices {
		if idx >= 12 {
			t.Fatalf("index %d out of range for 12 vertices", idx)
		}
	}
}

func TestBuildIndicesDegenerate(t *testing.T) {
	if got := BuildIndices(1, 5); got != nil {
		t.Errorf("BuildIndices(1, 5) = %v, want nil", got)
	}
}

func TestBuildIndices16(t *testing.T) {
	indices, err := BuildIndices16(305, 150)
	if err != nil {
		t.Fatalf("BuildIndices16(305, 150) error: %v", err)
	}
	if got, want := len(indices), 3*2*304*149; got != want {
		t.Errorf("len(indices) = %d, want %d", got, want)
	}

	_, err = BuildIndices16(300, 300)
	if !errors.Is(err, ErrTooManyVertices) {
		t.Errorf("BuildIndices16(300, 300) error = %v, want ErrTooManyVertices", err)
	}
}

func TestFillVertices(t *testing.T) {
	sim, err := waves.New(waves.Config{
		Rows:     4,
		Columns:  6,
		Spacing:  2,
		TimeStep: 0.03,
		Speed:    4,
		Damping:  0.2,
	})
	if err != nil {
		t.Fatalf("waves.New error: %v", err)
	}
	if err := sim.Disturb(1, 2, 0.5); err != nil {
		t.Fatalf("Disturb error: %v", err)
	}

	buf := make([]Vertex, 0, 4)
	buf = FillVertices(buf, sim)
	if len(buf) != sim.VertexCount() {
		t.Fatalf("len(buf) = %d, want %d", len(buf), sim.VertexCount())
	}

	// Vertex 0 sits at (-5, 0, 3) on a 12x8 surface.
	v0 := buf[0]
	if v0.Position != [3]float32{-5, 0, 3} {
		t.Errorf("vertex 0 position = %v", v0.Position)
	}
	if !near(v0.TexCoord[0], 0.5-5.0/12.0, 1e-6) || !near(v0.TexCoord[1], 0.125, 1e-6) {
		t.Errorf("vertex 0 texcoord = %v", v0.TexCoord)
	}

	peak := buf[1*6+2]
	if peak.Position[1] != 0.5 {
		t.Errorf("disturbed vertex height = %v, want 0.5", peak.Position[1])
	}
	if peak.Normal != sim.Normal(1*6+2).Array() {
		t.Errorf("normal mismatch: %v vs %v", peak.Normal, sim.Normal(8))
	}

	// Refilling keeps the backing array.
	again := FillVertices(buf, sim)
	if &again[0] != &buf[0] {
		t.Error("FillVertices reallocated a buffer with enough capacity")
	}
}

func TestTexScroll(t *testing.T) {
	s := NewTexScroll()
	if s.Rate != DefaultScrollRate {
		t.Fatalf("default rate = %v, want %v", s.Rate, DefaultScrollRate)
	}

	off := s.Advance(5)
	if !near(off.X, 0.5, 1e-6) || !near(off.Y, 0.1, 1e-6) {
		t.Errorf("offset after 5s = %v, want {0.5 0.1}", off)
	}

	off = s.Advance(6)
	if off.X < 0 || off.X >= 1 || off.Y < 0 || off.Y >= 1 {
		t.Errorf("offset %v not wrapped into [0, 1)", off)
	}
	if !near(off.X, 0.1, 1e-5) || !near(off.Y, 0.22, 1e-5) {
		t.Errorf("offset after 11s = %v, want {0.1 0.22}", off)
	}
}
