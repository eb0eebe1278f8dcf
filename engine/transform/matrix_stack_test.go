package transform

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixStack_PushPopRoundTrip(t *testing.T) {
	ms := NewMatrixStack()
	require.Equal(t, 0, ms.Depth())

	var saved []mgl32.Mat4
	var guards []*PushGuard
	for i := range 5 {
		saved = append(saved, ms.Top())
		guards = append(guards, ms.Push())
		ms.Translate(mgl32.Vec3{float32(i + 1), 0, 0})
		ms.Scale(mgl32.Vec3{2, 2, 2})
		assert.Equal(t, i+1, ms.Depth())
	}

	for i := len(guards) - 1; i >= 0; i-- {
		guards[i].Pop()
		assert.Equal(t, saved[i], ms.Top())
		assert.Equal(t, i, ms.Depth())
	}
	assert.Equal(t, mgl32.Ident4(), ms.Top())
}

func TestMatrixStack_PushDuplicatesTop(t *testing.T) {
	ms := NewMatrixStack()
	ms.Translate(mgl32.Vec3{1, 2, 3})
	before := ms.Top()

	g := ms.Push()
	assert.Equal(t, before, ms.Top())
	g.Pop()
}

func TestMatrixStack_DeferredGuard(t *testing.T) {
	ms := NewMatrixStack()
	func() {
		defer ms.Push().Pop()
		ms.Translate(mgl32.Vec3{5, 0, 0})
		func() {
			defer ms.Push().Pop()
			ms.RotateY(90)
			assert.Equal(t, 2, ms.Depth())
		}()
		assert.Equal(t, 1, ms.Depth())
		assert.Equal(t, mgl32.Translate3D(5, 0, 0), ms.Top())
	}()
	assert.Equal(t, 0, ms.Depth())
	assert.Equal(t, mgl32.Ident4(), ms.Top())
}

func TestMatrixStack_GuardPopIsIdempotent(t *testing.T) {
	ms := NewMatrixStack()
	outer := ms.Push()
	inner := ms.Push()
	inner.Pop()
	inner.Pop()
	assert.Equal(t, 1, ms.Depth())
	outer.Pop()
	assert.Equal(t, 0, ms.Depth())
}

func TestMatrixStack_PopEmptyPanics(t *testing.T) {
	ms := NewMatrixStack()
	assert.Panics(t, func() { ms.Pop() })
}

func TestMatrixStack_OutOfOrderPopPanics(t *testing.T) {
	ms := NewMatrixStack()
	outer := ms.Push()
	_ = ms.Push()
	assert.Panics(t, func() { outer.Pop() })
}

func TestMatrixStack_RightMultiplies(t *testing.T) {
	ms := NewMatrixStack()
	ms.Translate(mgl32.Vec3{10, 0, 0})
	ms.Scale(mgl32.Vec3{2, 3, 4})

	// scale applies first, then the translation
	p := ms.Top().Mul4x1(mgl32.Vec4{1, 1, 1, 1})
	want := mgl32.Vec4{12, 3, 4, 1}
	assert.InDeltaSlice(t, want[:], p[:], 1e-5)
}

func TestMatrixStack_Rotations(t *testing.T) {
	tests := []struct {
		name   string
		rotate func(ms *MatrixStack)
		in     mgl32.Vec4
		want   mgl32.Vec4
	}{
		{"x 90 maps +y to +z", func(ms *MatrixStack) { ms.RotateX(90) }, mgl32.Vec4{0, 1, 0, 1}, mgl32.Vec4{0, 0, 1, 1}},
		{"y 90 maps +z to +x", func(ms *MatrixStack) { ms.RotateY(90) }, mgl32.Vec4{0, 0, 1, 1}, mgl32.Vec4{1, 0, 0, 1}},
		{"z 90 maps +x to +y", func(ms *MatrixStack) { ms.RotateZ(90) }, mgl32.Vec4{1, 0, 0, 1}, mgl32.Vec4{0, 1, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := NewMatrixStack()
			tt.rotate(ms)
			got := ms.Top().Mul4x1(tt.in)
			assert.InDeltaSlice(t, tt.want[:], got[:], 1e-5)
		})
	}
}

func TestMatrixStack_SetMatrix(t *testing.T) {
	ms := NewMatrixStack()
	g := ms.Push()
	m := mgl32.Translate3D(1, 2, 3)
	ms.SetMatrix(m)
	assert.Equal(t, m, ms.Top())
	g.Pop()
	assert.Equal(t, mgl32.Ident4(), ms.Top())
}

func TestMatrixStack_Perspective(t *testing.T) {
	ms := NewMatrixStack()
	ms.Perspective(45, 1, 1, 1000)
	proj := ms.Top()

	near := proj.Mul4x1(mgl32.Vec4{0, 0, -1, 1})
	far := proj.Mul4x1(mgl32.Vec4{0, 0, -1000, 1})
	assert.InDelta(t, 0.0, near.Z()/near.W(), 1e-5)
	assert.InDelta(t, 1.0, far.Z()/far.W(), 1e-4)
	assert.InDelta(t, proj[0], proj[5], 1e-6)
}

func TestMatrixStack_PerspectiveInvalid(t *testing.T) {
	tests := []struct {
		name              string
		aspect, near, far float32
	}{
		{"zero near", 1, 0, 10},
		{"negative near", 1, -1, 10},
		{"near equals far", 1, 5, 5},
		{"near beyond far", 1, 10, 5},
		{"zero aspect", 0, 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := NewMatrixStack()
			assert.Panics(t, func() { ms.Perspective(45, tt.aspect, tt.near, tt.far) })
		})
	}
}
