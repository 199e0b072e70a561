// Package config handles wave demo configuration loading and management.
package config

import (
	"time"

	"github.com/Faultbox/midgard-waves/internal/engine/waves"
	"github.com/Faultbox/midgard-waves/internal/game/rain"
)

// Config holds all demo settings.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Rain       rain.Config      `yaml:"rain"`
	Run        RunConfig        `yaml:"run"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SimulationConfig holds wave grid and solver settings.
type SimulationConfig struct {
	Rows        int     `yaml:"rows"`
	Columns     int     `yaml:"columns"`
	Spacing     float64 `yaml:"spacing"`
	TimeStep    float64 `yaml:"time_step"`
	Speed       float64 `yaml:"speed"`
	Damping     float64 `yaml:"damping"`
	Workers     int     `yaml:"workers"`
	MaxSubsteps int     `yaml:"max_substeps"`
}

// RunConfig holds host loop settings.
type RunConfig struct {
	Frames        int           `yaml:"frames"`         // 0 runs until interrupted
	FrameTime     time.Duration `yaml:"frame_time"`     // fixed frame delta, or pacing in realtime mode
	Realtime      bool          `yaml:"realtime"`       // measure wall time between frames
	StatsInterval int           `yaml:"stats_interval"` // frames between stats log lines
	SnapshotPath  string        `yaml:"snapshot_path"`  // YAML summary written on exit
	Plot          bool          `yaml:"plot"`           // print an energy chart on exit
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	sim := waves.DefaultConfig()
	return &Config{
		Simulation: SimulationConfig{
			Rows:        sim.Rows,
			Columns:     sim.Columns,
			Spacing:     sim.Spacing,
			TimeStep:    sim.TimeStep,
			Speed:       sim.Speed,
			Damping:     sim.Damping,
			Workers:     sim.Workers,
			MaxSubsteps: 0,
		},
		Rain: rain.DefaultConfig(),
		Run: RunConfig{
			Frames:        600,
			FrameTime:     time.Second / 60,
			Realtime:      false,
			StatsInterval: 60,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Waves converts the simulation section into a solver configuration.
func (s SimulationConfig) Waves() waves.Config {
	return waves.Config{
		Rows:        s.Rows,
		Columns:     s.Columns,
		Spacing:     s.Spacing,
		TimeStep:    s.TimeStep,
		Speed:       s.Speed,
		Damping:     s.Damping,
		Workers:     s.Workers,
		MaxSubsteps: s.MaxSubsteps,
	}
}
