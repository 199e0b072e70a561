package game

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-waves/internal/config"
	"github.com/Faultbox/midgard-waves/internal/engine/waves"
)

// Summary describes a finished (or interrupted) run.
type Summary struct {
	Frames           uint64      `yaml:"frames"`
	Drops            uint64      `yaml:"drops"`
	MaxStepsPerFrame int         `yaml:"max_steps_per_frame"`
	Wall             string      `yaml:"wall"`
	Rows             int         `yaml:"rows"`
	Columns          int         `yaml:"columns"`
	Vertices         int         `yaml:"vertices"`
	Indices          int         `yaml:"indices"`
	TexOffset        [2]float32  `yaml:"tex_offset,flow"`
	Simulation       waves.Stats `yaml:"simulation"`
}

// Snapshot is the YAML document written at the end of a run.
type Snapshot struct {
	Summary   Summary                 `yaml:"summary"`
	Config    config.SimulationConfig `yaml:"config"`
	CenterRow []float32               `yaml:"center_row,flow"`
}

// Summary returns the current run statistics.
func (g *Game) Summary() Summary {
	return Summary{
		Frames:           g.frames,
		Drops:            g.rain.Drops(),
		MaxStepsPerFrame: g.maxSteps,
		Wall:             g.wall.String(),
		Rows:             g.sim.RowCount(),
		Columns:          g.sim.ColumnCount(),
		Vertices:         len(g.vertices),
		Indices:          len(g.indices),
		TexOffset:        g.texOffset,
		Simulation:       g.sim.Stats(),
	}
}

// WriteSnapshot writes the run summary and the heights of the middle grid row
// to path as YAML.
func (g *Game) WriteSnapshot(path string) error {
	grid := g.sim.Grid()
	mid := grid.Rows() / 2
	row := make([]float32, grid.Columns())
	for c := range row {
		row[c] = grid.Height(mid, c)
	}

	data, err := yaml.Marshal(Snapshot{
		Summary:   g.Summary(),
		Config:    g.cfg.Simulation,
		CenterRow: row,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
