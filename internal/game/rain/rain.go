// Package rain schedules random raindrop disturbances on a water surface.
//
// The scheduler is host policy: the simulation only knows how to apply a
// disturbance, rain decides when and where.
package rain

import (
	"fmt"
	"math/rand/v2"
)

// Disturber is anything that accepts a ripple at an interior cell.
type Disturber interface {
	RowCount() int
	ColumnCount() int
	Disturb(row, col int, magnitude float32) error
}

// Config holds raindrop scheduling settings.
type Config struct {
	Interval     float64 `yaml:"interval"`      // seconds between drops
	Margin       int     `yaml:"margin"`        // cells kept clear along each edge
	MinMagnitude float32 `yaml:"min_magnitude"` // smallest drop
	MaxMagnitude float32 `yaml:"max_magnitude"` // largest drop
	Seed         uint64  `yaml:"seed"`
	Enabled      bool    `yaml:"enabled"`
}

// DefaultConfig returns a drop every quarter second, 0.2 to 0.5 high, at
// least 4 cells from the edge.
func DefaultConfig() Config {
	return Config{
		Interval:     0.25,
		Margin:       4,
		MinMagnitude: 0.2,
		MaxMagnitude: 0.5,
		Seed:         1,
		Enabled:      true,
	}
}

// Drop records a single scheduled disturbance.
type Drop struct {
	Row, Col  int
	Magnitude float32
}

// Scheduler fires at most one drop per Tick once Interval has elapsed.
type Scheduler struct {
	cfg   Config
	rng   *rand.Rand
	clock float64 // total elapsed seconds
	base  float64 // time of the last scheduled drop
	drops uint64
	last  Drop
}

// New creates a scheduler. Interval must be positive and the magnitude range
// must not be inverted.
func New(cfg Config) (*Scheduler, error) {
	if !(cfg.Interval > 0) {
		return nil, fmt.Errorf("rain: interval %v must be positive", cfg.Interval)
	}
	if cfg.MinMagnitude > cfg.MaxMagnitude {
		return nil, fmt.Errorf("rain: magnitude range [%v, %v] is inverted", cfg.MinMagnitude, cfg.MaxMagnitude)
	}
	if cfg.Margin < 1 {
		cfg.Margin = 1
	}
	return &Scheduler{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}, nil
}

// Tick advances the scheduler clock by elapsed seconds and disturbs target
// when a drop is due. It reports whether a drop was applied.
func (s *Scheduler) Tick(elapsed float64, target Disturber) (bool, error) {
	if elapsed > 0 {
		s.clock += elapsed
	}
	if !s.cfg.Enabled || s.clock-s.base < s.cfg.Interval {
		return false, nil
	}
	s.base += s.cfg.Interval

	d := s.next(target.RowCount(), target.ColumnCount())
	if err := target.Disturb(d.Row, d.Col, d.Magnitude); err != nil {
		return false, fmt.Errorf("rain: drop at (%d, %d): %w", d.Row, d.Col, err)
	}
	s.drops++
	s.last = d
	return true, nil
}

// Drops returns the number of drops applied so far.
func (s *Scheduler) Drops() uint64 { return s.drops }

// Last returns the most recent drop.
func (s *Scheduler) Last() Drop { return s.last }

// next picks a drop inside the margin. The margin shrinks on grids too small
// to honour it but never reaches the fixed frame.
func (s *Scheduler) next(rows, cols int) Drop {
	row := s.between(s.cfg.Margin, rows-1-s.cfg.Margin, rows)
	col := s.between(s.cfg.Margin, cols-1-s.cfg.Margin, cols)
	mag := s.cfg.MinMagnitude + s.rng.Float32()*(s.cfg.MaxMagnitude-s.cfg.MinMagnitude)
	return Drop{Row: row, Col: col, Magnitude: mag}
}

// between returns a uniform integer in [lo, hi], clamped to [1, size-2].
func (s *Scheduler) between(lo, hi, size int) int {
	if lo < 1 {
		lo = 1
	}
	if hi > size-2 {
		hi = size - 2
	}
	if hi < lo {
		lo, hi = 1, size-2
	}
	return lo + s.rng.IntN(hi-lo+1)
}
