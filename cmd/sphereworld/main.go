package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"sphereworld/internal/debug"
	"sphereworld/internal/engineconfig"
	"sphereworld/internal/graphics"
	"sphereworld/internal/logger"
	"sphereworld/internal/scene"

	"go.uber.org/zap"
)

func init() {
	// Window, input and GL calls must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

// run returns the process exit code: 0 when the window is closed, 1 when the backend fails to start.
func run() int {
	cfgPath := engineconfig.Find()
	cfg, cfgErr := engineconfig.Load(cfgPath)

	log, err := logger.New(cfg.LogPath, cfg.Debug)
	if err != nil {
		log = logger.NewConsole(cfg.Debug)
		log.Warn("log file unavailable, logging to stderr only", zap.String("path", cfg.LogPath), zap.Error(err))
	}
	defer log.Sync()
	if cfgErr != nil {
		log.Warn("config ignored, using defaults", zap.String("path", cfgPath), zap.Error(cfgErr))
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	scn := scene.New(rand.New(rand.NewSource(seed)), nil)
	log.Info("scene ready", zap.Int64("seed", seed), zap.Int("spheres", scene.NumSpheres))

	overlay := debug.New()
	overlay.SetShowFPS(cfg.ShowFPS)
	overlay.SetShowMemAlloc(cfg.ShowMemAlloc)
	overlay.SetShowCamera(cfg.ShowCamera)

	if err := graphics.Run(cfg, log, scn, overlay); err != nil {
		log.Error("rendering backend failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "sphereworld: %v\n", err)
		return 1
	}
	return 0
}
