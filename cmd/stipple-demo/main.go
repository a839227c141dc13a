// Command stipple-demo runs an interactive viewer showcasing the
// stipple debug drawing library.
//
// Controls:
//
//	left drag    orbit the camera
//	mouse wheel  zoom
//	W/A/S/D/Q/E  pan the orbit center
//	click        pick an obstacle or mark the ground
//	space        pause the animation clock
//	G / X        toggle grid / axes
//	H            reframe the camera on the scene
//	F12          save a screenshot
//	escape       quit
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/stipple-dev/stipple/internal/config"
	"github.com/stipple-dev/stipple/internal/demo"
	"github.com/stipple-dev/stipple/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if config.WriteConfigRequested() {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("wrote config to", filepath.Join(config.ConfigDir(), "stipple.yaml"))
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Stipple Viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	app, err := demo.New(cfg)
	if err != nil {
		logger.Error("failed to initialize viewer", zap.Error(err))
		os.Exit(1)
	}
	defer app.Close()

	if err := app.Run(); err != nil {
		logger.Error("viewer exited with error", zap.Error(err))
		os.Exit(1)
	}
}
