// Package main is the entry point for the headless wave demo.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-waves/internal/config"
	"github.com/Faultbox/midgard-waves/internal/game"
	"github.com/Faultbox/midgard-waves/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Midgard Waves ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("wave demo failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, err := game.New(cfg)
	if err != nil {
		return err
	}
	defer g.Close()

	if err := g.Run(ctx); err != nil {
		return err
	}

	s := g.Summary()
	logger.Info("run finished",
		zap.Uint64("frames", s.Frames),
		zap.Uint64("steps", s.Simulation.Steps),
		zap.Uint64("drops", s.Drops),
		zap.Float64("energy", s.Simulation.Energy),
		zap.Float32("peak", s.Simulation.PeakHeight),
	)

	if cfg.Run.Plot {
		if plot := g.EnergyPlot(); plot != "" {
			fmt.Println(plot)
		}
	}

	if path := cfg.Run.SnapshotPath; path != "" {
		if err := g.WriteSnapshot(path); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}
		logger.Info("snapshot written", zap.String("path", path))
	}
	return nil
}
