package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile  = flag.String("log-file", "", "Write logs to this file as well")
	flagRows     = flag.Int("rows", 0, "Grid row count")
	flagColumns  = flag.Int("columns", 0, "Grid column count")
	flagWorkers  = flag.Int("workers", 0, "Goroutines used per simulation step")
	flagFrames   = flag.Int("frames", -1, "Frames to run (0 runs until interrupted)")
	flagRealtime = flag.Bool("realtime", false, "Pace frames with the wall clock")
	flagNoRain   = flag.Bool("no-rain", false, "Disable random raindrops")
	flagSeed     = flag.Uint64("seed", 0, "Raindrop random seed")
	flagSnapshot = flag.String("snapshot", "", "Write a YAML run summary to this path")
	flagPlot     = flag.Bool("plot", false, "Print an energy chart when the run ends")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagRows > 0 {
		cfg.Simulation.Rows = *flagRows
	}
	if *flagColumns > 0 {
		cfg.Simulation.Columns = *flagColumns
	}
	if *flagWorkers > 0 {
		cfg.Simulation.Workers = *flagWorkers
	}
	if *flagFrames >= 0 {
		cfg.Run.Frames = *flagFrames
	}
	if *flagRealtime {
		cfg.Run.Realtime = true
	}
	if *flagNoRain {
		cfg.Rain.Enabled = false
	}
	if *flagSeed != 0 {
		cfg.Rain.Seed = *flagSeed
	}
	if *flagSnapshot != "" {
		cfg.Run.SnapshotPath = *flagSnapshot
	}
	if *flagPlot {
		cfg.Run.Plot = true
	}
}
