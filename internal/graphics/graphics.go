package graphics

import (
	"errors"
	"fmt"

	"sphereworld/internal/debug"
	"sphereworld/internal/engineconfig"
	"sphereworld/internal/scene"
	"sphereworld/internal/shaders"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// ErrBackendInit is returned when the window, GL context or stock programs cannot be created.
var ErrBackendInit = errors.New("graphics: rendering backend initialization failed")

// specialKeys maps raylib arrow keys to scene keys, in polling order.
var specialKeys = []struct {
	code int32
	key  scene.Key
}{
	{rl.KeyUp, scene.KeyUp},
	{rl.KeyDown, scene.KeyDown},
	{rl.KeyLeft, scene.KeyLeft},
	{rl.KeyRight, scene.KeyRight},
}

// Run opens the window and drives the scene until the window is closed. Each frame it handles
// resize, then arrow keys, then renders the scene and the overlay and swaps buffers.
// There is no frame cap unless vsync is enabled in cfg.
func Run(cfg engineconfig.Prefs, log *zap.Logger, scn *scene.Scene, overlay *debug.Debug) error {
	routeTraceLog(log)

	var flags uint32 = rl.FlagWindowResizable
	if cfg.VSync {
		flags |= rl.FlagVsyncHint
	}
	if cfg.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	if !rl.IsWindowReady() {
		return ErrBackendInit
	}
	defer rl.CloseWindow()

	// ESC is not a quit key; close via the window button.
	rl.SetExitKey(rl.KeyNull)

	sh, err := shaders.NewManager()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBackendInit, err)
	}
	dev := NewDevice(sh)
	defer dev.Unload()
	for _, b := range scn.Batches() {
		if err := dev.Upload(b); err != nil {
			return fmt.Errorf("%w: %w", ErrBackendInit, err)
		}
		log.Debug("batch uploaded", zap.String("batch", b.Name()), zap.Stringer("primitive", b.Primitive()))
	}

	resize := func() {
		w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
		if err := scn.Resize(w, h); err != nil {
			log.Warn("resize rejected", zap.Int("width", w), zap.Int("height", h), zap.Error(err))
			return
		}
		log.Debug("resized", zap.Int("width", w), zap.Int("height", h))
	}
	resize()
	log.Info("render loop started", zap.Int("width", cfg.Width), zap.Int("height", cfg.Height), zap.Bool("vsync", cfg.VSync))

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			resize()
		}
		for _, k := range specialKeys {
			if rl.IsKeyPressed(k.code) || rl.IsKeyPressedRepeat(k.code) {
				scn.SpecialKey(k.key)
			}
		}

		rl.BeginDrawing()
		scn.Render(dev)
		rl.DisableDepthTest()
		overlay.Draw(&scn.Camera)
		rl.EndDrawing()
	}
	log.Info("window closed")
	return nil
}
