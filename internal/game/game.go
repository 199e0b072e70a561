// Package game implements the headless host loop driving the wave surface.
//
// Each frame the host lets the rain scheduler drop ripples, advances the
// simulation by the frame's elapsed time, and copies the surface into a
// CPU-side vertex buffer the way a renderer upload would.
package game

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-waves/internal/config"
	"github.com/Faultbox/midgard-waves/internal/engine/water"
	"github.com/Faultbox/midgard-waves/internal/engine/waves"
	"github.com/Faultbox/midgard-waves/internal/game/rain"
	"github.com/Faultbox/midgard-waves/internal/logger"
)

// Game is the host instance.
type Game struct {
	cfg *config.Config
	log *zap.Logger

	sim      *waves.Simulation
	rain     *rain.Scheduler
	scroll   *water.TexScroll
	indices  []uint32
	vertices []water.Vertex

	frames    uint64
	maxSteps  int // most steps taken by any single frame
	wall      time.Duration
	texOffset [2]float32
	energy    []float64 // per-frame surface energy, newest last
}

// New creates the simulation, the rain scheduler and the upload buffers.
func New(cfg *config.Config) (*Game, error) {
	log := logger.Named("game")

	sim, err := waves.New(cfg.Simulation.Waves(), waves.WithLogger(logger.Named("waves")))
	if err != nil {
		return nil, fmt.Errorf("creating wave simulation: %w", err)
	}

	drops, err := rain.New(cfg.Rain)
	if err != nil {
		return nil, fmt.Errorf("creating rain scheduler: %w", err)
	}

	g := &Game{
		cfg:     cfg,
		log:     log,
		sim:     sim,
		rain:    drops,
		scroll:  water.NewTexScroll(),
		indices: water.BuildIndices(sim.RowCount(), sim.ColumnCount()),
		energy:  make([]float64, 0, historyCapacity),
	}
	g.vertices = water.FillVertices(nil, sim)

	log.Info("water surface ready",
		zap.Int("rows", sim.RowCount()),
		zap.Int("columns", sim.ColumnCount()),
		zap.Int("vertices", sim.VertexCount()),
		zap.Int("triangles", sim.TriangleCount()),
		zap.Float64("courant", cfg.Simulation.Waves().Courant()),
		zap.Bool("rain", cfg.Rain.Enabled),
	)
	return g, nil
}

// Simulation returns the wave surface driven by the host.
func (g *Game) Simulation() *waves.Simulation { return g.sim }

// Vertices returns the vertex buffer filled by the last frame.
func (g *Game) Vertices() []water.Vertex { return g.vertices }

// Indices returns the static triangle index buffer.
func (g *Game) Indices() []uint32 { return g.indices }

// Frame runs one host frame of elapsed seconds.
func (g *Game) Frame(elapsed float64) error {
	if _, err := g.rain.Tick(elapsed, g.sim); err != nil {
		return fmt.Errorf("frame %d: %w", g.frames, err)
	}

	if steps := g.sim.Update(elapsed); steps > g.maxSteps {
		g.maxSteps = steps
	}
	g.recordEnergy(g.sim.Energy())

	g.vertices = water.FillVertices(g.vertices, g.sim)
	g.texOffset = g.scroll.Advance(float32(elapsed)).Array()
	g.frames++
	return nil
}

// Run drives frames until Run.Frames have been produced or ctx is cancelled.
// Cancellation is a normal way to stop and is not reported as an error.
func (g *Game) Run(ctx context.Context) error {
	frameTime := g.cfg.Run.FrameTime
	if frameTime <= 0 {
		return fmt.Errorf("frame time %v must be positive", frameTime)
	}

	g.log.Info("starting host loop",
		zap.Int("frames", g.cfg.Run.Frames),
		zap.Duration("frame_time", frameTime),
		zap.Bool("realtime", g.cfg.Run.Realtime),
	)

	start := time.Now()
	defer func() { g.wall += time.Since(start) }()

	if g.cfg.Run.Realtime {
		return g.runRealtime(ctx, frameTime)
	}
	return g.runFixed(ctx, frameTime.Seconds())
}

func (g *Game) runFixed(ctx context.Context, elapsed float64) error {
	for g.more() {
		select {
		case <-ctx.Done():
			g.log.Info("host loop interrupted", zap.Uint64("frames", g.frames))
			return nil
		default:
		}
		if err := g.frame(elapsed); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) runRealtime(ctx context.Context, pace time.Duration) error {
	ticker := time.NewTicker(pace)
	defer ticker.Stop()

	last := time.Now()
	for g.more() {
		select {
		case <-ctx.Done():
			g.log.Info("host loop interrupted", zap.Uint64("frames", g.frames))
			return nil
		case now := <-ticker.C:
			elapsed := now.Sub(last).Seconds()
			last = now
			if err := g.frame(elapsed); err != nil {
				return err
			}
		}
	}
	return nil
}

// more reports whether another frame should run.
func (g *Game) more() bool {
	return g.cfg.Run.Frames == 0 || g.frames < uint64(g.cfg.Run.Frames)
}

// frame runs Frame and emits periodic stats.
func (g *Game) frame(elapsed float64) error {
	if err := g.Frame(elapsed); err != nil {
		return err
	}
	if n := g.cfg.Run.StatsInterval; n > 0 && g.frames%uint64(n) == 0 {
		st := g.sim.Stats()
		g.log.Debug("surface stats",
			zap.Uint64("frame", g.frames),
			zap.Uint64("steps", st.Steps),
			zap.Uint64("dropped_steps", st.DroppedSteps),
			zap.Float64("sim_time", st.SimulatedTime),
			zap.Float64("energy", st.Energy),
			zap.Float32("peak", st.PeakHeight),
			zap.Uint64("drops", g.rain.Drops()),
		)
	}
	return nil
}

// Close releases host resources.
func (g *Game) Close() {
	g.log.Info("closing host",
		zap.Uint64("frames", g.frames),
		zap.Uint64("drops", g.rain.Drops()),
		zap.Duration("wall", g.wall),
	)
}
