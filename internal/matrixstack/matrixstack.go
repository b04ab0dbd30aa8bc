package matrixstack

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultCapacity is the stack depth used by New when capacity is not positive.
const DefaultCapacity = 64

var (
	// ErrOverflow is the panic value when a push would exceed the stack capacity.
	ErrOverflow = errors.New("matrixstack: overflow")
	// ErrUnderflow is the panic value when a pop would remove the last entry.
	ErrUnderflow = errors.New("matrixstack: underflow")
)

// Stack is a bounded stack of 4x4 matrices. It always holds at least one entry
// (identity after New). Transform methods post-multiply the top entry in place,
// so the last transform applied is the first one seen by a vertex.
// Push/pop imbalance is a programming error and panics.
type Stack struct {
	entries []mgl32.Mat4
}

// New returns a stack with a single identity entry that can grow to capacity entries.
func New(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	s := &Stack{entries: make([]mgl32.Mat4, 1, capacity)}
	s.entries[0] = mgl32.Ident4()
	return s
}

// Depth returns the number of entries, including the base entry.
func (s *Stack) Depth() int {
	return len(s.entries)
}

// Capacity returns the maximum depth.
func (s *Stack) Capacity() int {
	return cap(s.entries)
}

// Top returns the current matrix.
func (s *Stack) Top() mgl32.Mat4 {
	return s.entries[len(s.entries)-1]
}

// Push duplicates the top entry.
func (s *Stack) Push() {
	s.push(s.Top())
}

// PushMatrix pushes top × m.
func (s *Stack) PushMatrix(m mgl32.Mat4) {
	s.push(s.Top().Mul4(m))
}

func (s *Stack) push(m mgl32.Mat4) {
	if len(s.entries) == cap(s.entries) {
		panic(ErrOverflow)
	}
	s.entries = append(s.entries, m)
}

// Pop removes the top entry, restoring the previous one.
func (s *Stack) Pop() {
	if len(s.entries) <= 1 {
		panic(ErrUnderflow)
	}
	s.entries = s.entries[:len(s.entries)-1]
}

// Load replaces the top entry.
func (s *Stack) Load(m mgl32.Mat4) {
	s.entries[len(s.entries)-1] = m
}

// LoadIdentity replaces the top entry with the identity matrix.
func (s *Stack) LoadIdentity() {
	s.Load(mgl32.Ident4())
}

// Mult post-multiplies the top entry by m.
func (s *Stack) Mult(m mgl32.Mat4) {
	s.Load(s.Top().Mul4(m))
}

// Translate post-multiplies the top entry by a translation.
func (s *Stack) Translate(x, y, z float32) {
	s.Mult(mgl32.Translate3D(x, y, z))
}

// Rotate post-multiplies the top entry by a rotation of angle degrees about (x, y, z).
// A zero axis leaves the top unchanged.
func (s *Stack) Rotate(angle, x, y, z float32) {
	axis := mgl32.Vec3{x, y, z}
	if axis.Len() == 0 {
		return
	}
	s.Mult(mgl32.HomogRotate3D(mgl32.DegToRad(angle), axis.Normalize()))
}

// Scale post-multiplies the top entry by a scale.
func (s *Stack) Scale(x, y, z float32) {
	s.Mult(mgl32.Scale3D(x, y, z))
}
