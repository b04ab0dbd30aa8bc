package graphics

import (
	"errors"
	"fmt"

	"sphereworld/internal/geometry"
	"sphereworld/internal/shaders"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrNotUploaded is the panic value (wrapped) when Draw is given a batch Upload never saw.
var ErrNotUploaded = errors.New("graphics: batch not uploaded")

// Device draws scene batches with raylib. Triangle batches become meshes on Upload;
// line batches are streamed through raylib's immediate-mode batch every frame.
// Shading is whatever the embedded Manager selected last.
type Device struct {
	*shaders.Manager
	meshes map[geometry.Batch]rl.Mesh
}

// NewDevice returns a device drawing with the programs of sh.
func NewDevice(sh *shaders.Manager) *Device {
	return &Device{Manager: sh, meshes: make(map[geometry.Batch]rl.Mesh)}
}

// Upload creates GPU resources for b. Uploading the same batch twice is a no-op.
func (d *Device) Upload(b geometry.Batch) error {
	if _, ok := d.meshes[b]; ok {
		return nil
	}
	switch b := b.(type) {
	case *geometry.LineBatch:
		return nil
	case *geometry.Torus:
		// raylib's torus has a unit ring scaled by size/2 with a tube of radius×ring.
		d.meshes[b] = rl.GenMeshTorus(b.Minor/b.Major, 2*b.Major, b.Sides, b.Rings)
	case *geometry.Sphere:
		d.meshes[b] = rl.GenMeshSphere(b.Radius, b.Stacks, b.Slices)
	default:
		return fmt.Errorf("graphics: unsupported batch %q", b.Name())
	}
	return nil
}

// Clear clears color and depth and enables depth testing for the 3D pass.
// The window has no stencil buffer.
func (d *Device) Clear() {
	rl.ClearBackground(rl.Black)
	rl.EnableDepthTest()
}

// Draw draws b with the currently selected program. It panics with ErrNotUploaded if a
// triangle batch was never passed to Upload.
func (d *Device) Draw(b geometry.Batch) {
	if lines, ok := b.(*geometry.LineBatch); ok {
		_, mtl := d.Current()
		d.drawLines(lines, mtl.Shader)
		return
	}
	mesh, ok := d.meshes[b]
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrNotUploaded, b.Name()))
	}
	_, mtl := d.Current()
	// Transforms live in the program's uniforms, so the mesh is drawn untransformed.
	rl.DrawMesh(mesh, mtl, rl.MatrixIdentity())
}

// drawLines pushes each segment into raylib's line batch and flushes it under shader.
// The vertex color is ignored by the stock programs.
func (d *Device) drawLines(b *geometry.LineBatch, shader rl.Shader) {
	rl.BeginShaderMode(shader)
	for i := 0; i < b.Segments(); i++ {
		start, end := b.Segment(i)
		rl.DrawLine3D(vector3(start), vector3(end), rl.White)
	}
	rl.EndShaderMode()
}

// Unload releases meshes and programs.
func (d *Device) Unload() {
	for b, mesh := range d.meshes {
		rl.UnloadMesh(&mesh)
		delete(d.meshes, b)
	}
	d.Manager.Unload()
}

func vector3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}
