package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangleNormal(m *Mesh, t int) (mgl32.Vec3, mgl32.Vec3) {
	a := mgl32.Vec3(m.Vertices[m.Indices[t]].Position)
	b := mgl32.Vec3(m.Vertices[m.Indices[t+1]].Position)
	c := mgl32.Vec3(m.Vertices[m.Indices[t+2]].Position)
	centroid := a.Add(b).Add(c).Mul(1.0 / 3.0)
	return b.Sub(a).Cross(c.Sub(a)), centroid
}

func TestGenerate_WindingIsOutward(t *testing.T) {
	tests := []struct {
		name     string
		interior mgl32.Vec3
	}{
		{UnitConeTint, mgl32.Vec3{0, 0.25, 0}},
		{UnitCylinderTint, mgl32.Vec3{}},
		{UnitCubeTint, mgl32.Vec3{}},
		{UnitCubeColor, mgl32.Vec3{}},
		{UnitSphere, mgl32.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Generate(tt.name)
			require.NoError(t, err)
			require.NoError(t, m.Validate())
			for i := 0; i < len(m.Indices); i += 3 {
				n, centroid := triangleNormal(m, i)
				assert.Greater(t, n.Dot(centroid.Sub(tt.interior)), float32(0), "triangle %d faces inward", i/3)
			}
		})
	}
}

func TestGenerate_PlaneFacesUp(t *testing.T) {
	m, err := Generate(UnitPlane)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	for i := 0; i < len(m.Indices); i += 3 {
		n, _ := triangleNormal(m, i)
		assert.Greater(t, n.Y(), float32(0))
	}
	for _, v := range m.Vertices {
		assert.Equal(t, float32(0), v.Position[1])
	}
}

func TestGenerate_UnitExtents(t *testing.T) {
	tests := []struct {
		name       string
		minY, maxY float32
	}{
		{UnitConeTint, 0, 1},
		{UnitCylinderTint, -0.5, 0.5},
		{UnitCubeTint, -0.5, 0.5},
		{UnitCubeColor, -0.5, 0.5},
		{UnitPlane, 0, 0},
		{UnitSphere, -0.5, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Generate(tt.name)
			require.NoError(t, err)

			lo := mgl32.Vec3{1e9, 1e9, 1e9}
			hi := mgl32.Vec3{-1e9, -1e9, -1e9}
			for _, v := range m.Vertices {
				for k := range 3 {
					lo[k] = min(lo[k], v.Position[k])
					hi[k] = max(hi[k], v.Position[k])
				}
			}
			assert.InDelta(t, -0.5, lo.X(), 1e-5)
			assert.InDelta(t, 0.5, hi.X(), 1e-5)
			assert.InDelta(t, -0.5, lo.Z(), 1e-3)
			assert.InDelta(t, 0.5, hi.Z(), 1e-3)
			assert.InDelta(t, tt.minY, lo.Y(), 1e-5)
			assert.InDelta(t, tt.maxY, hi.Y(), 1e-5)
		})
	}
}

func TestGenerate_CubeColorFacesAreDistinct(t *testing.T) {
	m, err := Generate(UnitCubeColor)
	require.NoError(t, err)

	colors := map[[4]float32]struct{}{}
	for _, v := range m.Vertices {
		colors[v.Color] = struct{}{}
	}
	assert.Len(t, colors, 6)
}

func TestGenerate_TintMeshesAreGrey(t *testing.T) {
	for _, name := range []string{UnitConeTint, UnitCylinderTint, UnitCubeTint, UnitSphere} {
		m, err := Generate(name)
		require.NoError(t, err)
		for _, v := range m.Vertices {
			assert.Equal(t, v.Color[0], v.Color[1], name)
			assert.Equal(t, v.Color[1], v.Color[2], name)
			assert.Equal(t, float32(1), v.Color[3], name)
			assert.GreaterOrEqual(t, v.Color[0], float32(shadeAmbient), name)
		}
	}
}

func TestGenerate_PlaneTiling(t *testing.T) {
	m, err := Generate(UnitPlane)
	require.NoError(t, err)
	assert.Equal(t, [2]float32{100, 100}, m.Vertices[2].TexCoord)

	m, err = Generate(UnitPlane, WithPlaneTiling(4))
	require.NoError(t, err)
	assert.Equal(t, [2]float32{4, 4}, m.Vertices[2].TexCoord)
}

func TestGenerate_AcceptsXMLSuffix(t *testing.T) {
	m, err := Generate("UnitSphere.xml")
	require.NoError(t, err)
	assert.Equal(t, UnitSphere, m.Name)
}

func TestGenerate_Unknown(t *testing.T) {
	_, err := Generate("UnitTeapot")
	assert.ErrorIs(t, err, ErrUnknownDescriptor)
}

func TestMesh_Validate(t *testing.T) {
	m := &Mesh{Name: "broken", Vertices: make([]GPUVertex, 3), Indices: []uint32{0, 1, 3}}
	assert.Error(t, m.Validate())

	m.Indices = []uint32{0, 1}
	assert.Error(t, m.Validate())

	m.Indices = []uint32{0, 1, 2}
	assert.NoError(t, m.Validate())

	assert.Error(t, (&Mesh{Name: "empty"}).Validate())
}

func TestMesh_PackedData(t *testing.T) {
	m, err := Generate(UnitCubeTint)
	require.NoError(t, err)

	assert.Len(t, m.VertexData(), 36*len(m.Vertices))
	assert.Len(t, m.IndexData(), 4*len(m.Indices))
	assert.Equal(t, 36, m.IndexCount())
	assert.Equal(t, m.Vertices[1].Marshal(), m.VertexData()[36:72])
}

func TestGPUTypes_Layout(t *testing.T) {
	var v GPUVertex
	assert.Equal(t, 36, v.Size())

	o := GPUObjectData{Model: mgl32.Translate3D(1, 2, 3), Color: mgl32.Vec4{0.1, 0.2, 0.3, 0.4}}
	assert.Equal(t, 80, o.Size())

	packed := MarshalObjects([]GPUObjectData{{}, o})
	require.Len(t, packed, 160)
	assert.Equal(t, o.Marshal(), packed[80:])
	assert.Nil(t, MarshalObjects(nil))
}
