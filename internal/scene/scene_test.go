package scene

import (
	"math"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"sphereworld/internal/geometry"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

// near compares with an absolute tolerance; expected zeros pick up float32 rotation residue.
func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

type mode int

const (
	modeNone mode = iota
	modeFlat
	modeDiffuse
)

type drawCall struct {
	mode      mode
	mvp       mgl32.Mat4
	modelView mgl32.Mat4
	proj      mgl32.Mat4
	light     mgl32.Vec3
	color     mgl32.Vec4
	batch     geometry.Batch
}

// recorder is a Device that remembers every draw and the shading bound for it.
type recorder struct {
	clears int
	bound  drawCall
	draws  []drawCall
}

func (r *recorder) Clear() { r.clears++ }

func (r *recorder) UseFlat(mvp mgl32.Mat4, color mgl32.Vec4) {
	r.bound = drawCall{mode: modeFlat, mvp: mvp, color: color}
}

func (r *recorder) UsePointLightDiffuse(mv, proj mgl32.Mat4, light mgl32.Vec3, color mgl32.Vec4) {
	r.bound = drawCall{mode: modeDiffuse, modelView: mv, proj: proj, light: light, color: color}
}

func (r *recorder) Draw(b geometry.Batch) {
	c := r.bound
	c.batch = b
	r.draws = append(r.draws, c)
}

// seq is an Intner returning a fixed cycle of values.
type seq struct {
	vals []int
	i    int
}

func (s *seq) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

func newScene(t *testing.T) *Scene {
	t.Helper()
	s := New(rand.New(rand.NewSource(1)), nil)
	if err := s.Resize(800, 600); err != nil {
		t.Fatalf("Scene.Resize: %v", err)
	}
	return s
}

func eyePosition(mv mgl32.Mat4) mgl32.Vec3 {
	return mv.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
}

func TestRenderOrder(t *testing.T) {
	s := newScene(t)
	var r recorder
	s.RenderAt(&r, 0)

	if r.clears != 1 {
		t.Fatalf("clears per frame\nhave %d\nwant 1", r.clears)
	}
	if n := len(r.draws); n != NumSpheres+3 {
		t.Fatalf("draws per frame\nhave %d\nwant %d", n, NumSpheres+3)
	}
	floor := r.draws[0]
	if floor.batch != s.Floor || floor.mode != modeFlat || floor.color != floorColor {
		t.Fatalf("first draw\nhave %+v\nwant flat floor", floor)
	}
	positions := s.SpherePositions()
	for i := 0; i < NumSpheres; i++ {
		d := r.draws[1+i]
		if d.batch != s.Sphere || d.mode != modeDiffuse || d.color != sphereColor {
			t.Fatalf("draw %d\nhave %+v\nwant lit floating sphere", 1+i, d)
		}
		if p := eyePosition(d.modelView); !p.ApproxFuncEqual(positions[i], near) {
			t.Fatalf("sphere %d position\nhave %v\nwant %v", i, p, positions[i])
		}
	}
	torus := r.draws[NumSpheres+1]
	if torus.batch != s.Torus || torus.mode != modeDiffuse || torus.color != torusColor {
		t.Fatalf("torus draw\nhave %+v", torus)
	}
	orbiter := r.draws[NumSpheres+2]
	if orbiter.batch != s.Sphere || orbiter.mode != modeDiffuse || orbiter.color != orbiterColor {
		t.Fatalf("orbiter draw\nhave %+v", orbiter)
	}
}

func TestObjectColors(t *testing.T) {
	s := newScene(t)
	var r recorder
	s.RenderAt(&r, 0)

	for _, c := range []struct {
		name string
		draw int
		want mgl32.Vec4
	}{
		{"floor", 0, mgl32.Vec4{0.52, 0.81, 0.98, 1}},
		{"floating sphere", 1, mgl32.Vec4{0.87, 0.72, 0.53, 1}},
		{"torus", NumSpheres + 1, mgl32.Vec4{0.94, 0.94, 0.50, 1}},
		{"orbiter", NumSpheres + 2, mgl32.Vec4{1.0, 0.89, 0.77, 1}},
	} {
		if have := r.draws[c.draw].color; have != c.want {
			t.Fatalf("%s color\nhave %v\nwant %v", c.name, have, c.want)
		}
	}
}

func TestRenderBalancesStack(t *testing.T) {
	s := newScene(t)
	before := s.ModelViewDepth()
	for i, ts := range []float64{0, 0.5, 1, 123.25} {
		var r recorder
		s.RenderAt(&r, ts)
		if d := s.ModelViewDepth(); d != before {
			t.Fatalf("frame %d: model-view depth\nhave %d\nwant %d", i, d, before)
		}
	}
	s.SpecialKey(KeyUp)
	s.SpecialKey(KeyLeft)
	var r recorder
	s.RenderAt(&r, 2)
	if d := s.ModelViewDepth(); d != before {
		t.Fatalf("after camera move: model-view depth\nhave %d\nwant %d", d, before)
	}
}

func TestRenderDeterministic(t *testing.T) {
	s := newScene(t)
	var a, b recorder
	s.RenderAt(&a, 1.5)
	s.RenderAt(&b, 1.5)
	if !reflect.DeepEqual(a.draws, b.draws) {
		t.Fatal("two frames at the same time differ")
	}
}

func TestFloorAndLight(t *testing.T) {
	s := newScene(t)
	var r recorder
	s.RenderAt(&r, 0)

	if mvp := r.draws[0].mvp; !mvp.ApproxFuncEqual(s.Projection(), near) {
		t.Fatalf("floor MVP with default camera\nhave %v\nwant projection %v", mvp, s.Projection())
	}
	if l := r.draws[1].light; !l.ApproxFuncEqual(mgl32.Vec3{0, 10, 5}, near) {
		t.Fatalf("eye-space light with default camera\nhave %v\nwant [0 10 5]", l)
	}

	s.SpecialKey(KeyUp)
	r = recorder{}
	s.RenderAt(&r, 0)
	if l := r.draws[1].light; !l.ApproxFuncEqual(mgl32.Vec3{0, 10, 5.2}, near) {
		t.Fatalf("eye-space light after moving forward\nhave %v\nwant [0 10 5.2]", l)
	}
	want := s.Projection().Mul4(s.Camera.CameraMatrix())
	if mvp := r.draws[0].mvp; !mvp.ApproxFuncEqual(want, near) {
		t.Fatalf("floor MVP after moving forward\nhave %v\nwant %v", mvp, want)
	}
	for _, d := range r.draws[1:] {
		if d.proj != s.Projection() {
			t.Fatalf("lit draw projection\nhave %v\nwant %v", d.proj, s.Projection())
		}
	}
}

func TestSolarSystem(t *testing.T) {
	s := newScene(t)
	center := mgl32.Vec3{0, 0, -2.5}

	var r recorder
	s.RenderAt(&r, 0)
	torus := r.draws[NumSpheres+1].modelView
	if !torus.ApproxFuncEqual(mgl32.Translate3D(0, 0, -2.5), near) {
		t.Fatalf("torus at t=0\nhave %v\nwant translation to %v", torus, center)
	}
	orbiter := eyePosition(r.draws[NumSpheres+2].modelView)
	if !orbiter.ApproxFuncEqual(mgl32.Vec3{0.8, 0, -2.5}, near) {
		t.Fatalf("orbiter at t=0\nhave %v\nwant [0.8 0 -2.5]", orbiter)
	}

	r = recorder{}
	s.RenderAt(&r, 1)
	torus = r.draws[NumSpheres+1].modelView
	wantTorus := mgl32.Translate3D(0, 0, -2.5).Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(60)))
	if !torus.ApproxFuncEqual(wantTorus, near) {
		t.Fatalf("torus at t=1\nhave %v\nwant %v", torus, wantTorus)
	}

	orbiter = eyePosition(r.draws[NumSpheres+2].modelView)
	if dist := orbiter.Sub(center).Len(); math.Abs(float64(dist)-0.8) > eps {
		t.Fatalf("orbit radius at t=1\nhave %v\nwant 0.8", dist)
	}
	// -120° about Y carries (0.8, 0, 0) to (-0.4, 0, +0.693).
	rad := mgl32.DegToRad(-120)
	want := mgl32.Vec3{0.8 * float32(math.Cos(float64(rad))), 0, -0.8 * float32(math.Sin(float64(rad)))}.Add(center)
	if !orbiter.ApproxFuncEqual(want, near) {
		t.Fatalf("orbiter at t=1\nhave %v\nwant %v", orbiter, want)
	}
}

func TestYRot(t *testing.T) {
	for _, c := range []struct {
		t    float64
		want float32
	}{
		{0, 0},
		{0.5, 30},
		{1, 60},
		{10, 600},
	} {
		if y := YRot(c.t); y != c.want {
			t.Fatalf("YRot(%v)\nhave %v\nwant %v", c.t, y, c.want)
		}
		if o := OrbitAngle(YRot(c.t)); o != -2*c.want {
			t.Fatalf("OrbitAngle(YRot(%v))\nhave %v\nwant %v", c.t, o, -2*c.want)
		}
	}
	if YRot(2) <= YRot(1) {
		t.Fatal("YRot is not increasing")
	}
}

func TestSpherePlacement(t *testing.T) {
	a := New(rand.New(rand.NewSource(42)), nil)
	b := New(rand.New(rand.NewSource(42)), nil)
	if a.SpherePositions() != b.SpherePositions() {
		t.Fatal("same seed produced different layouts")
	}
	for i, p := range a.SpherePositions() {
		if p[1] != 0 {
			t.Fatalf("sphere %d y\nhave %v\nwant 0", i, p[1])
		}
		for _, v := range []float32{p[0], p[2]} {
			if v < -20 || v > 19.9+eps {
				t.Fatalf("sphere %d outside [-20, 19.9]: %v", i, p)
			}
		}
	}

	c := New(&seq{vals: []int{0, 399, 200}}, nil)
	pos := c.SpherePositions()
	if !pos[0].ApproxFuncEqual(mgl32.Vec3{-20, 0, 19.9}, near) {
		t.Fatalf("sphere 0\nhave %v\nwant [-20 0 19.9]", pos[0])
	}
	if !pos[1].ApproxFuncEqual(mgl32.Vec3{0, 0, -20}, near) {
		t.Fatalf("sphere 1\nhave %v\nwant [0 0 -20]", pos[1])
	}
}

func TestResize(t *testing.T) {
	s := New(rand.New(rand.NewSource(1)), nil)
	if err := s.Resize(640, 480); err != nil {
		t.Fatalf("Scene.Resize: %v", err)
	}
	want := mgl32.Perspective(mgl32.DegToRad(45), 640.0/480.0, 1, 100)
	if p := s.Projection(); !p.ApproxFuncEqual(want, near) {
		t.Fatalf("projection\nhave %v\nwant %v", p, want)
	}
	if err := s.Resize(640, 0); err != nil {
		t.Fatalf("Scene.Resize with zero height: %v", err)
	}
	if p := s.Projection(); p[0] != p[5]/640 {
		t.Fatalf("zero height should act as 1\nhave %v", p)
	}
}

func TestSpecialKeys(t *testing.T) {
	s := New(rand.New(rand.NewSource(1)), nil)

	s.SpecialKey(KeyUp)
	if o := s.Camera.Origin(); !o.ApproxFuncEqual(mgl32.Vec3{0, 0, -0.2}, near) {
		t.Fatalf("after up\nhave %v\nwant [0 0 -0.2]", o)
	}
	s.SpecialKey(KeyDown)
	if o := s.Camera.Origin(); !o.ApproxFuncEqual(mgl32.Vec3{}, near) {
		t.Fatalf("after up, down\nhave %v\nwant origin", o)
	}

	s.SpecialKey(KeyLeft)
	left := s.Camera.Forward()
	want := mgl32.HomogRotate3DY(mgl32.DegToRad(4)).Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3()
	if !left.ApproxFuncEqual(want, near) {
		t.Fatalf("after left\nhave %v\nwant %v", left, want)
	}
	s.SpecialKey(KeyRight)
	if f := s.Camera.Forward(); !f.ApproxFuncEqual(mgl32.Vec3{0, 0, -1}, near) {
		t.Fatalf("after left, right\nhave %v\nwant [0 0 -1]", f)
	}

	s.SpecialKey(Key(99))
	if f := s.Camera.Forward(); !f.ApproxFuncEqual(mgl32.Vec3{0, 0, -1}, near) {
		t.Fatalf("unknown key moved the camera\nhave %v", f)
	}
	if k := Key(99).String(); k != "none" {
		t.Fatalf("Key.String\nhave %q\nwant none", k)
	}
}

func TestStopwatch(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := base
	w := NewStopwatch(func() time.Time { return now })

	now = base.Add(5 * time.Second)
	if e := w.Elapsed(); e != 0 {
		t.Fatalf("first Elapsed\nhave %v\nwant 0", e)
	}
	now = now.Add(1500 * time.Millisecond)
	if e := w.Elapsed(); e != 1.5 {
		t.Fatalf("Elapsed\nhave %v\nwant 1.5", e)
	}

	s := New(rand.New(rand.NewSource(1)), w)
	_ = s.Resize(4, 3)
	var r recorder
	now = now.Add(500 * time.Millisecond)
	s.Render(&r)
	want := mgl32.Translate3D(0, 0, -2.5).Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(120)))
	if mv := r.draws[NumSpheres+1].modelView; !mv.ApproxFuncEqual(want, near) {
		t.Fatalf("torus after 2s\nhave %v\nwant %v", mv, want)
	}
}
