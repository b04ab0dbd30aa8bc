package frustum

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Frustum holds a perspective projection and the parameters it was built from.
// The zero value has an identity projection.
type Frustum struct {
	projection mgl32.Mat4
	valid      bool

	FovY   float32 // degrees
	Aspect float32
	Near   float32
	Far    float32
}

// SetPerspective computes a perspective projection from a vertical field of view in degrees,
// the viewport aspect ratio (width/height) and the near/far clip distances.
// Invalid parameters are rejected and the previous projection is kept.
func (f *Frustum) SetPerspective(fovY, aspect, near, far float32) error {
	switch {
	case fovY <= 0 || fovY >= 180:
		return fmt.Errorf("frustum: field of view %v out of range (0, 180)", fovY)
	case aspect <= 0:
		return fmt.Errorf("frustum: aspect ratio %v must be positive", aspect)
	case near <= 0 || far <= near:
		return fmt.Errorf("frustum: clip planes near=%v far=%v must satisfy 0 < near < far", near, far)
	}
	f.projection = mgl32.Perspective(mgl32.DegToRad(fovY), aspect, near, far)
	f.valid = true
	f.FovY, f.Aspect, f.Near, f.Far = fovY, aspect, near, far
	return nil
}

// ProjectionMatrix returns the last computed projection, or identity before the first SetPerspective.
func (f *Frustum) ProjectionMatrix() mgl32.Mat4 {
	if !f.valid {
		return mgl32.Ident4()
	}
	return f.projection
}
