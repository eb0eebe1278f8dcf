// Package transform provides a stack of column-major 4x4 matrices for hierarchical scene composition.
package transform

import (
	"fmt"

	"github.com/Carmen-Shannon/world-in-motion/common"
	"github.com/go-gl/mathgl/mgl32"
)

// MatrixStack is a stack of 4x4 matrices. The top of the stack is the current transform.
// All mutating operations right-multiply the current transform, so the most recently applied
// operation is the first one applied to a vertex.
//
// A MatrixStack is not safe for concurrent use.
type MatrixStack struct {
	stack  []mgl32.Mat4
	guards []*PushGuard
	serial uint64
}

// PushGuard releases exactly one Push. Calling Pop more than once is a no-op.
type PushGuard struct {
	ms       *MatrixStack
	id       uint64
	released bool
}

// NewMatrixStack creates a MatrixStack whose base matrix is the identity.
//
// Returns:
//   - *MatrixStack: the new stack
func NewMatrixStack() *MatrixStack {
	return NewMatrixStackFrom(mgl32.Ident4())
}

// NewMatrixStackFrom creates a MatrixStack whose base matrix is m.
//
// Parameters:
//   - m: the base matrix
//
// Returns:
//   - *MatrixStack: the new stack
func NewMatrixStackFrom(m mgl32.Mat4) *MatrixStack {
	return &MatrixStack{stack: []mgl32.Mat4{m}}
}

// Top returns the current matrix.
func (ms *MatrixStack) Top() mgl32.Mat4 {
	return ms.stack[len(ms.stack)-1]
}

// Depth returns the number of outstanding pushes. A fresh stack has depth 0.
func (ms *MatrixStack) Depth() int {
	return len(ms.stack) - 1
}

// Push duplicates the current matrix onto the stack and returns a guard that undoes the push.
// The intended use is scoped:
//
//	defer ms.Push().Pop()
//
// Returns:
//   - *PushGuard: the guard releasing this push
func (ms *MatrixStack) Push() *PushGuard {
	ms.stack = append(ms.stack, ms.Top())
	ms.serial++
	g := &PushGuard{ms: ms, id: ms.serial}
	ms.guards = append(ms.guards, g)
	return g
}

// Pop removes the current matrix, restoring the one that was current before the most recent Push.
// Pop panics if there is no outstanding push.
func (ms *MatrixStack) Pop() {
	if ms.Depth() == 0 {
		panic("transform: pop on empty matrix stack")
	}
	g := ms.guards[len(ms.guards)-1]
	g.released = true
	ms.guards = ms.guards[:len(ms.guards)-1]
	ms.stack = ms.stack[:len(ms.stack)-1]
}

// Pop releases the push this guard was returned from. It panics if that push is not the most
// recent outstanding one. Subsequent calls do nothing.
func (g *PushGuard) Pop() {
	if g.released {
		return
	}
	ms := g.ms
	if len(ms.guards) == 0 || ms.guards[len(ms.guards)-1] != g {
		panic(fmt.Sprintf("transform: out of order pop of push #%d", g.id))
	}
	ms.Pop()
}

// SetMatrix replaces the current matrix with m.
func (ms *MatrixStack) SetMatrix(m mgl32.Mat4) {
	ms.stack[len(ms.stack)-1] = m
}

// SetIdentity replaces the current matrix with the identity.
func (ms *MatrixStack) SetIdentity() {
	ms.SetMatrix(mgl32.Ident4())
}

// ApplyMatrix right-multiplies the current matrix by m.
func (ms *MatrixStack) ApplyMatrix(m mgl32.Mat4) {
	top := &ms.stack[len(ms.stack)-1]
	*top = top.Mul4(m)
}

// Translate right-multiplies the current matrix by a translation.
func (ms *MatrixStack) Translate(v mgl32.Vec3) {
	ms.ApplyMatrix(mgl32.Translate3D(v[0], v[1], v[2]))
}

// Scale right-multiplies the current matrix by a non-uniform scale.
func (ms *MatrixStack) Scale(v mgl32.Vec3) {
	ms.ApplyMatrix(mgl32.Scale3D(v[0], v[1], v[2]))
}

// ScaleUniform right-multiplies the current matrix by a uniform scale.
func (ms *MatrixStack) ScaleUniform(s float32) {
	ms.Scale(mgl32.Vec3{s, s, s})
}

// RotateX right-multiplies the current matrix by a rotation about the X axis.
//
// Parameters:
//   - deg: rotation angle in degrees, counter-clockwise looking down the axis
func (ms *MatrixStack) RotateX(deg float32) {
	ms.ApplyMatrix(mgl32.HomogRotate3DX(common.DegToRad(deg)))
}

// RotateY right-multiplies the current matrix by a rotation about the Y axis.
//
// Parameters:
//   - deg: rotation angle in degrees, counter-clockwise looking down the axis
func (ms *MatrixStack) RotateY(deg float32) {
	ms.ApplyMatrix(mgl32.HomogRotate3DY(common.DegToRad(deg)))
}

// RotateZ right-multiplies the current matrix by a rotation about the Z axis.
//
// Parameters:
//   - deg: rotation angle in degrees, counter-clockwise looking down the axis
func (ms *MatrixStack) RotateZ(deg float32) {
	ms.ApplyMatrix(mgl32.HomogRotate3DZ(common.DegToRad(deg)))
}

// Perspective replaces the current matrix with a symmetric perspective projection whose clip
// depth range is [0, 1]. It panics unless 0 < zNear < zFar and aspect > 0.
//
// Parameters:
//   - fovYDeg: vertical field of view in degrees
//   - aspect: viewport width divided by height
//   - zNear: distance to the near plane
//   - zFar: distance to the far plane
func (ms *MatrixStack) Perspective(fovYDeg, aspect, zNear, zFar float32) {
	if !(zNear > 0 && zNear < zFar) {
		panic(fmt.Sprintf("transform: invalid perspective depth range near=%v far=%v", zNear, zFar))
	}
	if !(aspect > 0) {
		panic(fmt.Sprintf("transform: invalid perspective aspect %v", aspect))
	}
	ms.SetMatrix(common.Perspective(common.DegToRad(fovYDeg), aspect, zNear, zFar))
}
