package pipeline

import (
	"sphereworld/internal/matrixstack"

	"github.com/go-gl/mathgl/mgl32"
)

// GeometryTransform reads the current model-view and projection matrices from two stacks.
// Nothing is cached: each query reads the stack tops, so it always reflects the latest push/pop.
type GeometryTransform struct {
	modelView  *matrixstack.Stack
	projection *matrixstack.Stack
}

// SetMatrixStacks binds the model-view and projection stacks.
func (g *GeometryTransform) SetMatrixStacks(modelView, projection *matrixstack.Stack) {
	g.modelView = modelView
	g.projection = projection
}

// ModelViewMatrix returns the top of the model-view stack.
func (g *GeometryTransform) ModelViewMatrix() mgl32.Mat4 {
	return g.modelView.Top()
}

// ProjectionMatrix returns the top of the projection stack.
func (g *GeometryTransform) ProjectionMatrix() mgl32.Mat4 {
	return g.projection.Top()
}

// ModelViewProjectionMatrix returns projection × model-view.
func (g *GeometryTransform) ModelViewProjectionMatrix() mgl32.Mat4 {
	return g.projection.Top().Mul4(g.modelView.Top())
}

// NormalMatrix returns the rotation part of the model-view matrix.
func (g *GeometryTransform) NormalMatrix() mgl32.Mat3 {
	return g.modelView.Top().Mat3()
}
