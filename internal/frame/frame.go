package frame

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Frame is a position plus an orthonormal orientation (forward and up).
// The local X axis is forward × up, so a default frame looks down -Z with +Y up,
// matching the OpenGL eye-space convention.
type Frame struct {
	origin  mgl32.Vec3
	forward mgl32.Vec3
	up      mgl32.Vec3
}

// New returns a frame at the world origin looking down -Z with +Y up.
func New() Frame {
	return Frame{
		forward: mgl32.Vec3{0, 0, -1},
		up:      mgl32.Vec3{0, 1, 0},
	}
}

// Origin returns the frame position.
func (f *Frame) Origin() mgl32.Vec3 { return f.origin }

// Forward returns the facing direction.
func (f *Frame) Forward() mgl32.Vec3 { return f.forward }

// Up returns the up direction.
func (f *Frame) Up() mgl32.Vec3 { return f.up }

// SetOrigin moves the frame to (x, y, z) without changing its orientation.
func (f *Frame) SetOrigin(x, y, z float32) {
	f.origin = mgl32.Vec3{x, y, z}
}

// MoveForward translates the frame along its forward vector. Negative distances move backward.
func (f *Frame) MoveForward(distance float32) {
	f.origin = f.origin.Add(f.forward.Mul(distance))
}

// RotateWorld rotates forward and up by angle radians about the world-space axis (x, y, z).
// The origin does not move. A zero axis is ignored.
func (f *Frame) RotateWorld(angle, x, y, z float32) {
	axis := mgl32.Vec3{x, y, z}
	if axis.Len() == 0 {
		return
	}
	rot := mgl32.HomogRotate3D(angle, axis.Normalize()).Mat3()
	f.forward = rot.Mul3x1(f.forward).Normalize()
	f.up = rot.Mul3x1(f.up).Normalize()
}

// Matrix returns the frame's world transform: local axes (forward × up, up, -forward) as columns
// and the origin as translation.
func (f *Frame) Matrix() mgl32.Mat4 {
	right := f.forward.Cross(f.up)
	back := f.forward.Mul(-1)
	o := f.origin
	return mgl32.Mat4{
		right[0], right[1], right[2], 0,
		f.up[0], f.up[1], f.up[2], 0,
		back[0], back[1], back[2], 0,
		o[0], o[1], o[2], 1,
	}
}

// CameraMatrix returns the view matrix for a camera placed at this frame, the inverse of Matrix.
func (f *Frame) CameraMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(f.origin, f.origin.Add(f.forward), f.up)
}
