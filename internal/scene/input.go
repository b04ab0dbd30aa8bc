package scene

import "github.com/go-gl/mathgl/mgl32"

// Key is one of the special keys the scene reacts to.
type Key int

// Arrow keys. The zero Key is no key.
const (
	KeyUp Key = iota + 1
	KeyDown
	KeyLeft
	KeyRight
)

// String returns the lower-case key name, or "none".
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "none"
	}
}

// SpecialKey moves the camera: up/down walk along the view direction, left/right yaw about world Y.
// Other keys are ignored.
func (s *Scene) SpecialKey(k Key) {
	angular := mgl32.DegToRad(angularStep)
	switch k {
	case KeyUp:
		s.Camera.MoveForward(linearStep)
	case KeyDown:
		s.Camera.MoveForward(-linearStep)
	case KeyLeft:
		s.Camera.RotateWorld(angular, 0, 1, 0)
	case KeyRight:
		s.Camera.RotateWorld(-angular, 0, 1, 0)
	}
}
