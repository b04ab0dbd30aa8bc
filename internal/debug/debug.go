package debug

import (
	"fmt"
	"runtime"

	"sphereworld/internal/frame"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds the runtime overlays (FPS, heap, camera). All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowCamera   bool
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastCamText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the memory allocation counter is drawn (top-right, under FPS).
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// SetShowCamera sets whether the camera position and heading are drawn.
func (d *Debug) SetShowCamera(show bool) {
	d.ShowCamera = show
}

// Heading returns the camera yaw in degrees: 0 when looking down -Z, positive after turning left.
func Heading(cam *frame.Frame) float32 {
	f := cam.Forward()
	h := math32.Atan2(-f[0], -f[2]) * 180 / math32.Pi
	if h == 0 {
		return 0 // drop the sign of -0
	}
	return h
}

// CameraText formats the camera position and heading for the overlay.
func CameraText(cam *frame.Frame) string {
	o := cam.Origin()
	return fmt.Sprintf("Cam: %.1f %.1f %.1f  %.0f°", o[0], o[1], o[2], Heading(cam))
}

// Draw renders any enabled overlays at the top-right. Call after the 3D pass with depth testing off.
// Text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw(cam *frame.Frame) {
	if !d.ShowFPS && !d.ShowMemAlloc && !d.ShowCamera {
		return
	}
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	line := func(text string) {
		if text != "" {
			w := rl.MeasureText(text, fontSize)
			rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		}
		y += lineHeight
	}

	if d.ShowFPS {
		if update || d.lastFpsText == "" {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		line(d.lastFpsText)
	}
	if d.ShowMemAlloc {
		if update || d.lastMemText == "" {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		line(d.lastMemText)
	}
	if d.ShowCamera {
		// Camera moves on key presses, so this one is cheap enough to refresh every frame.
		d.lastCamText = CameraText(cam)
		line(d.lastCamText)
	}
}
