package scene

import (
	"fmt"

	"sphereworld/internal/frame"
	"sphereworld/internal/frustum"
	"sphereworld/internal/geometry"
	"sphereworld/internal/matrixstack"
	"sphereworld/internal/pipeline"

	"github.com/go-gl/mathgl/mgl32"
)

// NumSpheres is the number of floating spheres scattered over the floor.
const NumSpheres = 50

const (
	fovY  = 45
	zNear = 1
	zFar  = 100

	linearStep  = 0.2 // units per key press
	angularStep = 4   // degrees per key press

	degreesPerSecond = 60
	orbitRadius      = 0.8
	systemDepth      = -2.5 // torus and orbiter sit this far down -Z

	// Floating spheres are placed on a 0.1 grid in [-20, 19.9] on X and Z.
	placementCells = 400
	placementScale = 0.1
)

// Fixed RGBA colors, one per drawn object.
var (
	floorColor   = mgl32.Vec4{0.52, 0.81, 0.98, 1}
	torusColor   = mgl32.Vec4{0.94, 0.94, 0.50, 1}
	orbiterColor = mgl32.Vec4{1.0, 0.89, 0.77, 1}
	sphereColor  = mgl32.Vec4{0.87, 0.72, 0.53, 1}
)

// lightPosition is the world-space point light. It is moved into eye space every frame.
var lightPosition = mgl32.Vec4{0, 10, 5, 1}

// Intner is the random source used to place the floating spheres (e.g. *rand.Rand).
type Intner interface {
	Intn(n int) int
}

// Shading selects a shading mode and binds its uniforms for the next draw.
type Shading interface {
	UseFlat(mvp mgl32.Mat4, color mgl32.Vec4)
	UsePointLightDiffuse(modelView, projection mgl32.Mat4, lightEye mgl32.Vec3, color mgl32.Vec4)
}

// Device clears the frame and draws batches with whatever shading was selected last.
type Device interface {
	Shading
	Clear()
	Draw(b geometry.Batch)
}

// Scene holds everything drawn each frame: the camera, the matrix stacks and the batches.
// It is driven from a single goroutine (the one owning the window).
type Scene struct {
	Camera frame.Frame

	Floor  *geometry.LineBatch
	Torus  *geometry.Torus
	Sphere *geometry.Sphere

	spheres    [NumSpheres]frame.Frame
	modelView  *matrixstack.Stack
	projection *matrixstack.Stack
	frustum    frustum.Frustum
	transform  pipeline.GeometryTransform
	watch      *Stopwatch
}

// New builds the scene and places the floating spheres using rng. Sphere placement happens once;
// the spheres never move afterward.
func New(rng Intner, watch *Stopwatch) *Scene {
	if watch == nil {
		watch = NewStopwatch(nil)
	}
	s := &Scene{
		Camera:     frame.New(),
		Floor:      geometry.NewFloor(),
		Torus:      geometry.NewTorus(),
		Sphere:     geometry.NewSphere(),
		modelView:  matrixstack.New(matrixstack.DefaultCapacity),
		projection: matrixstack.New(2),
		watch:      watch,
	}
	s.transform.SetMatrixStacks(s.modelView, s.projection)
	for i := range s.spheres {
		x := float32(rng.Intn(placementCells)-placementCells/2) * placementScale
		z := float32(rng.Intn(placementCells)-placementCells/2) * placementScale
		s.spheres[i] = frame.New()
		s.spheres[i].SetOrigin(x, 0, z)
	}
	return s
}

// Batches returns every batch the scene draws, for upload by the device.
func (s *Scene) Batches() []geometry.Batch {
	return []geometry.Batch{s.Floor, s.Torus, s.Sphere}
}

// SpherePositions returns the floating sphere positions in draw order.
func (s *Scene) SpherePositions() [NumSpheres]mgl32.Vec3 {
	var out [NumSpheres]mgl32.Vec3
	for i := range s.spheres {
		out[i] = s.spheres[i].Origin()
	}
	return out
}

// ModelViewDepth returns the current depth of the model-view stack.
func (s *Scene) ModelViewDepth() int {
	return s.modelView.Depth()
}

// Projection returns the projection currently loaded on the projection stack.
func (s *Scene) Projection() mgl32.Mat4 {
	return s.transform.ProjectionMatrix()
}

// Resize recomputes the projection for a width×height viewport. A zero height is treated as 1.
func (s *Scene) Resize(width, height int) error {
	if height <= 0 {
		height = 1
	}
	if width <= 0 {
		width = 1
	}
	if err := s.frustum.SetPerspective(fovY, float32(width)/float32(height), zNear, zFar); err != nil {
		return fmt.Errorf("resize %dx%d: %w", width, height, err)
	}
	s.projection.Load(s.frustum.ProjectionMatrix())
	s.transform.SetMatrixStacks(s.modelView, s.projection)
	return nil
}

// YRot is the torus spin in degrees after t seconds. It is not wrapped.
func YRot(t float64) float32 {
	return float32(t * degreesPerSecond)
}

// OrbitAngle is the orbiter's angle for a torus spin of yRot degrees: twice as fast, opposite direction.
func OrbitAngle(yRot float32) float32 {
	return yRot * -2
}

// Render draws one frame using the scene stopwatch.
func (s *Scene) Render(dev Device) {
	s.RenderAt(dev, s.watch.Elapsed())
}

// RenderAt draws one frame as it looks t seconds after the first frame.
// The model-view stack is left exactly as it was found; an unbalanced frame panics.
func (s *Scene) RenderAt(dev Device, t float64) {
	depth := s.modelView.Depth()
	yRot := YRot(t)

	dev.Clear()

	s.modelView.Push()
	camera := s.Camera.CameraMatrix()
	s.modelView.PushMatrix(camera)

	lightEye := camera.Mul4x1(lightPosition).Vec3()

	// The floor is world-fixed: only the camera transform applies.
	dev.UseFlat(s.transform.ModelViewProjectionMatrix(), floorColor)
	dev.Draw(s.Floor)

	for i := range s.spheres {
		s.modelView.Push()
		s.modelView.Mult(s.spheres[i].Matrix())
		dev.UsePointLightDiffuse(s.transform.ModelViewMatrix(), s.transform.ProjectionMatrix(), lightEye, sphereColor)
		dev.Draw(s.Sphere)
		s.modelView.Pop()
	}

	s.modelView.Translate(0, 0, systemDepth)
	s.modelView.Push()

	s.modelView.Rotate(yRot, 0, 1, 0)
	dev.UsePointLightDiffuse(s.transform.ModelViewMatrix(), s.transform.ProjectionMatrix(), lightEye, torusColor)
	dev.Draw(s.Torus)

	s.modelView.Pop()

	s.modelView.Rotate(OrbitAngle(yRot), 0, 1, 0)
	s.modelView.Translate(orbitRadius, 0, 0)
	dev.UsePointLightDiffuse(s.transform.ModelViewMatrix(), s.transform.ProjectionMatrix(), lightEye, orbiterColor)
	dev.Draw(s.Sphere)

	s.modelView.Pop()
	s.modelView.Pop()

	if d := s.modelView.Depth(); d != depth {
		panic(fmt.Errorf("scene: model-view depth %d after frame, want %d", d, depth))
	}
}
