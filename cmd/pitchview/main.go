// Package main is the entry point for the pitch preview viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/soccerworks/pitchmesh/internal/config"
	"github.com/soccerworks/pitchmesh/internal/field"
	"github.com/soccerworks/pitchmesh/internal/logger"
	"github.com/soccerworks/pitchmesh/internal/viewer"
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

	logger.Info("=== PitchMesh Viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	params, err := cfg.FieldParams()
	if err != nil {
		logger.Error("invalid field configuration", zap.Error(err))
		os.Exit(1)
	}

	f := field.New(params)
	logger.Info("pitch generated",
		zap.String("size", f.Params.Size.String()),
		zap.Int("points", len(f.Mesh.Points)),
	)

	winCfg := viewer.WindowConfig{
		Title:      fmt.Sprintf("PitchMesh - %s", f.Params.Size),
		Width:      cfg.Viewer.Width,
		Height:     cfg.Viewer.Height,
		Fullscreen: cfg.Viewer.Fullscreen,
		VSync:      cfg.Viewer.VSync,
	}
	if err := viewer.Run(winCfg, f); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
