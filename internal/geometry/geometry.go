package geometry

import "github.com/go-gl/mathgl/mgl32"

// Primitive is how a batch's vertices are assembled.
type Primitive int

// Lines pairs vertices into segments; Triangles groups them in threes.
const (
	Lines Primitive = iota
	Triangles
)

// String returns "lines", "triangles" or "unknown".
func (p Primitive) String() string {
	switch p {
	case Lines:
		return "lines"
	case Triangles:
		return "triangles"
	default:
		return "unknown"
	}
}

// Batch is an immutable drawable built once at setup. The GPU side decides how to upload it
// from its concrete type.
type Batch interface {
	Name() string
	Primitive() Primitive
}

// LineBatch is a list of line segments; vertices are consumed in pairs.
type LineBatch struct {
	name     string
	vertices []mgl32.Vec3
}

// Name returns the label given at construction, e.g. "floor".
func (b *LineBatch) Name() string { return b.name }

// Primitive returns Lines.
func (b *LineBatch) Primitive() Primitive { return Lines }

// Vertices returns a copy of the line endpoints.
func (b *LineBatch) Vertices() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(b.vertices))
	copy(out, b.vertices)
	return out
}

// Len returns the number of vertices.
func (b *LineBatch) Len() int { return len(b.vertices) }

// Segment returns the endpoints of line i.
func (b *LineBatch) Segment(i int) (start, end mgl32.Vec3) {
	return b.vertices[2*i], b.vertices[2*i+1]
}

// Segments returns the number of lines.
func (b *LineBatch) Segments() int { return len(b.vertices) / 2 }

const (
	floorExtent = 20
	floorStep   = 0.5
	floorY      = -0.55
)

// NewFloor returns the floor grid: lines parallel to Z and X every 0.5 units
// across [-20, 20], lying at y = -0.55.
func NewFloor() *LineBatch {
	steps := int(2*floorExtent/floorStep) + 1
	v := make([]mgl32.Vec3, 0, 4*steps)
	for i := 0; i < steps; i++ {
		x := float32(-floorExtent + float64(i)*floorStep)
		v = append(v,
			mgl32.Vec3{x, floorY, floorExtent},
			mgl32.Vec3{x, floorY, -floorExtent},
			mgl32.Vec3{floorExtent, floorY, x},
			mgl32.Vec3{-floorExtent, floorY, x},
		)
	}
	return &LineBatch{name: "floor", vertices: v}
}

// Torus describes a ring around the Z axis in the XY plane.
type Torus struct {
	Major float32 // distance from the center to the tube center
	Minor float32 // tube radius
	Sides int     // segments around the ring
	Rings int     // segments around the tube
}

// Name returns "torus".
func (t *Torus) Name() string { return "torus" }

// Primitive returns Triangles.
func (t *Torus) Primitive() Primitive { return Triangles }

// Sphere describes a UV sphere centered at the origin.
type Sphere struct {
	Radius float32
	Slices int // segments around Y
	Stacks int // segments from pole to pole
}

// Name returns "sphere".
func (s *Sphere) Name() string { return "sphere" }

// Primitive returns Triangles.
func (s *Sphere) Primitive() Primitive { return Triangles }

// NewTorus returns the scene torus: major radius 0.4, tube radius 0.15, 30×30 segments.
func NewTorus() *Torus {
	return &Torus{Major: 0.4, Minor: 0.15, Sides: 30, Rings: 30}
}

// NewSphere returns the sphere used for both the orbiter and the floating spheres.
func NewSphere() *Sphere {
	return &Sphere{Radius: 0.1, Slices: 26, Stacks: 13}
}
