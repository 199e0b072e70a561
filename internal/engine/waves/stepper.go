package waves

import (
	"math"
)

// FrameStepper turns variable frame deltas into whole fixed-size steps.
// Leftover time carries over to the next Advance; no interpolation is done, so
// the visible state always sits on an exact multiple of dt.
type FrameStepper struct {
	step        func()
	dt          float64
	maxSubsteps int

	residual float64
	steps    uint64
	dropped  uint64
}

// NewFrameStepper returns a stepper calling step once per dt of accumulated
// time. maxSubsteps <= 0 means no cap.
func NewFrameStepper(dt float64, maxSubsteps int, step func()) *FrameStepper {
	return &FrameStepper{step: step, dt: dt, maxSubsteps: maxSubsteps}
}

// Advance accumulates elapsed seconds and runs as many steps as fit.
// Negative and non-finite values are ignored. It returns the number of steps run.
func (s *FrameStepper) Advance(elapsed float64) int {
	if !(elapsed >= 0) || math.IsInf(elapsed, 0) {
		return 0
	}
	s.residual += elapsed

	taken := 0
	for s.residual >= s.dt {
		if s.maxSubsteps > 0 && taken == s.maxSubsteps {
			backlog := math.Floor(s.residual / s.dt)
			s.dropped += uint64(backlog)
			s.residual -= backlog * s.dt
			if s.residual < 0 {
				s.residual = 0
			}
			break
		}
		s.step()
		s.residual -= s.dt
		taken++
	}
	s.steps += uint64(taken)
	return taken
}

// StepOnce runs a single step immediately without touching the residual.
func (s *FrameStepper) StepOnce() {
	s.step()
	s.steps++
}

// Steps returns the total number of steps run.
func (s *FrameStepper) Steps() uint64 { return s.steps }

// Dropped returns the total number of steps discarded by the substep cap.
func (s *FrameStepper) Dropped() uint64 { return s.dropped }

// Residual returns the accumulated time not yet consumed by a step.
func (s *FrameStepper) Residual() float64 { return s.residual }

// SimulatedTime returns Steps()*dt.
func (s *FrameStepper) SimulatedTime() float64 { return float64(s.steps) * s.dt }

// Reset clears the residual and counters.
func (s *FrameStepper) Reset() {
	s.residual = 0
	s.steps = 0
	s.dropped = 0
}
