package waves

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-waves/pkg/math"
)

// Simulation is the host-facing wave surface: grid state, integrator, frame
// stepper and cached normals behind one object.
type Simulation struct {
	cfg     Config
	grid    *Grid
	integ   *Integrator
	stepper *FrameStepper
	frame   *SurfaceFrame

	framesDirty bool
	log         *zap.Logger
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithLogger sets the logger used for construction diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.log = l
		}
	}
}

// Stats is a point-in-time summary of the simulation.
type Stats struct {
	Steps         uint64  `yaml:"steps"`
	DroppedSteps  uint64  `yaml:"dropped_steps"`
	SimulatedTime float64 `yaml:"simulated_time"`
	Energy        float64 `yaml:"energy"`
	PeakHeight    float32 `yaml:"peak_height"`
}

// New builds a flat (all zero) simulation from cfg.
//
// Configurations violating c*dt/dx <= 1/sqrt(2) are accepted and will diverge;
// New only logs a warning for them.
func New(cfg Config, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}

	s := &Simulation{cfg: cfg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	s.grid = newGrid(cfg)
	s.integ = newIntegrator(s.grid, cfg)
	s.stepper = NewFrameStepper(cfg.TimeStep, cfg.MaxSubsteps, s.integ.Step)
	s.frame = newSurfaceFrame(s.grid)

	if !cfg.Stable() {
		s.log.Warn("wave configuration violates the stability bound, simulation will diverge",
			zap.Float64("courant", cfg.Courant()),
			zap.Float64("max_courant", MaxStableCourant),
		)
	}
	k1, k2, k3 := s.integ.Coefficients()
	s.log.Debug("wave simulation created",
		zap.Int("rows", cfg.Rows),
		zap.Int("columns", cfg.Columns),
		zap.Float64("dt", cfg.TimeStep),
		zap.Int("workers", cfg.Workers),
		zap.Float32("k1", k1),
		zap.Float32("k2", k2),
		zap.Float32("k3", k3),
	)
	return s, nil
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() Config { return s.cfg }

// Grid exposes the underlying height field for read access.
func (s *Simulation) Grid() *Grid { return s.grid }

// VertexCount returns RowCount()*ColumnCount().
func (s *Simulation) VertexCount() int { return s.grid.VertexCount() }

// RowCount returns m.
func (s *Simulation) RowCount() int { return s.grid.Rows() }

// ColumnCount returns n.
func (s *Simulation) ColumnCount() int { return s.grid.Columns() }

// Width returns n*dx.
func (s *Simulation) Width() float32 { return s.grid.Width() }

// Depth returns m*dx.
func (s *Simulation) Depth() float32 { return s.grid.Depth() }

// TriangleCount returns 2*(m-1)*(n-1).
func (s *Simulation) TriangleCount() int { return s.grid.TriangleCount() }

// Position returns the position of vertex i.
func (s *Simulation) Position(i int) math.Vec3 { return s.grid.Position(i) }

// Normal returns the unit normal of vertex i.
func (s *Simulation) Normal(i int) math.Vec3 {
	s.refreshFrame()
	return s.frame.Normal(i)
}

// TangentX returns the unit +X tangent of vertex i, evaluated from the
// current heights.
func (s *Simulation) TangentX(i int) math.Vec3 {
	row, col := s.grid.Cell(i)
	return TangentAt(s.grid, row, col)
}

// Disturb injects a ripple at an interior cell. See Grid.Disturb.
func (s *Simulation) Disturb(row, col int, magnitude float32) error {
	if err := s.grid.Disturb(row, col, magnitude); err != nil {
		return err
	}
	s.framesDirty = true
	return nil
}

// Update advances the simulation by elapsed seconds of wall time in whole
// fixed steps and refreshes every normal. It returns the steps taken.
func (s *Simulation) Update(elapsed float64) int {
	n := s.stepper.Advance(elapsed)
	s.frame.Recompute(s.grid)
	s.framesDirty = false
	return n
}

// Step runs exactly one fixed step regardless of accumulated time.
func (s *Simulation) Step() {
	s.stepper.StepOnce()
	s.frame.Recompute(s.grid)
	s.framesDirty = false
}

// Reset flattens the surface and clears the stepper.
func (s *Simulation) Reset() {
	s.grid.Reset()
	s.stepper.Reset()
	s.frame.Recompute(s.grid)
	s.framesDirty = false
}

// Energy returns the sum of squared heights.
func (s *Simulation) Energy() float64 {
	var e float64
	for _, h := range s.grid.currBuf() {
		e += float64(h) * float64(h)
	}
	return e
}

// MaxAbsHeight returns the largest absolute height on the surface.
func (s *Simulation) MaxAbsHeight() float32 {
	var peak float32
	for _, h := range s.grid.currBuf() {
		if h < 0 {
			h = -h
		}
		if h > peak {
			peak = h
		}
	}
	return peak
}

// Stats returns step counters together with the current energy and peak.
func (s *Simulation) Stats() Stats {
	return Stats{
		Steps:         s.stepper.Steps(),
		DroppedSteps:  s.stepper.Dropped(),
		SimulatedTime: s.stepper.SimulatedTime(),
		Energy:        s.Energy(),
		PeakHeight:    s.MaxAbsHeight(),
	}
}

func (s *Simulation) refreshFrame() {
	if !s.framesDirty {
		return
	}
	s.frame.Recompute(s.grid)
	s.framesDirty = false
}
