package game

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-waves/internal/config"
	"github.com/Faultbox/midgard-waves/internal/engine/waves"
)

func smallConfig() *config.Config {
	cfg := config.Default()
	cfg.Simulation.Rows = 24
	cfg.Simulation.Columns = 20
	cfg.Run.Frames = 120
	cfg.Run.FrameTime = 30 * time.Millisecond
	cfg.Run.StatsInterval = 10
	return cfg
}

func TestNewRejectsInvalidSimulation(t *testing.T) {
	cfg := smallConfig()
	cfg.Simulation.Rows = 2

	_, err := New(cfg)
	require.ErrorIs(t, err, waves.ErrInvalidConfig)
}

func TestNewRejectsInvalidRain(t *testing.T) {
	cfg := smallConfig()
	cfg.Rain.Interval = 0

	_, err := New(cfg)
	require.Error(t, err)
}

func TestNewBuildsBuffers(t *testing.T) {
	g, err := New(smallConfig())
	require.NoError(t, err)
	defer g.Close()

	sim := g.Simulation()
	assert.Len(t, g.Vertices(), sim.VertexCount())
	assert.Len(t, g.Indices(), 3*sim.TriangleCount())
}

func TestRunFixedFrames(t *testing.T) {
	g, err := New(smallConfig())
	require.NoError(t, err)
	defer g.Close()

	require.NoError(t, g.Run(context.Background()))

	s := g.Summary()
	assert.Equal(t, uint64(120), s.Frames)
	// 120 frames of 30ms with dt = 30ms is one step per frame.
	assert.Equal(t, uint64(120), s.Simulation.Steps)
	assert.Equal(t, 1, s.MaxStepsPerFrame)
	// Four drops per second over 3.6 seconds.
	assert.InDelta(t, 14, float64(s.Drops), 1)
	assert.Greater(t, s.Simulation.Energy, 0.0)

	sim := g.Simulation()
	for i, v := range g.Vertices() {
		p := sim.Position(i)
		require.Equal(t, p.Array(), v.Position)
	}
}

func TestRunWithoutRainStaysFlat(t *testing.T) {
	cfg := smallConfig()
	cfg.Rain.Enabled = false

	g, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, g.Run(context.Background()))

	s := g.Summary()
	assert.Zero(t, s.Drops)
	assert.Zero(t, s.Simulation.Energy)
	for _, v := range g.Vertices() {
		require.Equal(t, [3]float32{0, 1, 0}, v.Normal)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	cfg := smallConfig()
	cfg.Run.Frames = 0

	g, err := New(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, g.Run(ctx))
	assert.Zero(t, g.Summary().Frames)
}

func TestRunRealtime(t *testing.T) {
	cfg := smallConfig()
	cfg.Run.Realtime = true
	cfg.Run.Frames = 5
	cfg.Run.FrameTime = 5 * time.Millisecond

	g, err := New(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, g.Run(ctx))
	assert.Equal(t, uint64(5), g.Summary().Frames)
}

func TestRunRejectsZeroFrameTime(t *testing.T) {
	cfg := smallConfig()
	cfg.Run.FrameTime = 0

	g, err := New(cfg)
	require.NoError(t, err)
	require.Error(t, g.Run(context.Background()))
}

func TestFrameAdvancesTexture(t *testing.T) {
	g, err := New(smallConfig())
	require.NoError(t, err)

	require.NoError(t, g.Frame(1.0))
	off := g.Summary().TexOffset
	assert.InDelta(t, 0.1, off[0], 1e-6)
	assert.InDelta(t, 0.02, off[1], 1e-6)
}

func TestWriteSnapshot(t *testing.T) {
	cfg := smallConfig()
	cfg.Run.Frames = 30
	g, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, g.Run(context.Background()))

	path := filepath.Join(t.TempDir(), "out", "snapshot.yaml")
	require.NoError(t, g.WriteSnapshot(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var snap Snapshot
	require.NoError(t, yaml.Unmarshal(data, &snap))
	assert.Equal(t, uint64(30), snap.Summary.Frames)
	assert.Equal(t, 24, snap.Summary.Rows)
	assert.Equal(t, cfg.Simulation, snap.Config)
	require.Len(t, snap.CenterRow, 20)
	assert.Zero(t, snap.CenterRow[0], "frame column stays flat")
	assert.Zero(t, snap.CenterRow[19], "frame column stays flat")
}

func TestEnergyHistory(t *testing.T) {
	g, err := New(smallConfig())
	require.NoError(t, err)
	assert.Empty(t, g.EnergyPlot())

	require.NoError(t, g.Run(context.Background()))

	hist := g.EnergyHistory()
	require.Len(t, hist, 120)
	assert.Equal(t, g.Simulation().Energy(), hist[len(hist)-1])

	plot := g.EnergyPlot()
	assert.Contains(t, plot, "surface energy, last 120 frames")
}

func TestEnergyHistoryIsBounded(t *testing.T) {
	cfg := smallConfig()
	cfg.Rain.Enabled = false
	g, err := New(cfg)
	require.NoError(t, err)

	for i := 0; i < historyCapacity+50; i++ {
		require.NoError(t, g.Frame(0.03))
	}
	assert.Len(t, g.EnergyHistory(), historyCapacity)
}

func TestEnergyHistoryReturnsCopy(t *testing.T) {
	g, err := New(smallConfig())
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		require.NoError(t, g.Frame(0.03))
	}

	hist := g.EnergyHistory()
	want := hist[len(hist)-1]
	for i := range hist {
		hist[i] = -1
	}
	_ = append(hist[:0], 42)

	again := g.EnergyHistory()
	require.Len(t, again, 20)
	assert.Equal(t, want, again[len(again)-1])
	assert.NotContains(t, again, -1.0)
	assert.NotContains(t, again, 42.0)
}
