package mesh

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTriangleGLTF writes a .gltf file with an embedded buffer holding one triangle,
// referenced by the given number of meshes.
func writeTriangleGLTF(t *testing.T, dir, name string, meshes int) string {
	t.Helper()

	buf := make([]byte, 44)
	positions := []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}
	for i, f := range positions {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	for i, idx := range []uint16{0, 1, 2} {
		binary.LittleEndian.PutUint16(buf[36+i*2:], idx)
	}

	meshJSON := ""
	for i := range meshes {
		if i > 0 {
			meshJSON += ","
		}
		meshJSON += fmt.Sprintf(`{"name":"tri%d","primitives":[{"attributes":{"POSITION":0},"indices":1}]}`, i)
	}

	doc := fmt.Sprintf(`{
  "asset": {"version": "2.0"},
  "buffers": [{"byteLength": 44, "uri": "data:application/octet-stream;base64,%s"}],
  "bufferViews": [
    {"buffer": 0, "byteOffset": 0, "byteLength": 36, "target": 34962},
    {"buffer": 0, "byteOffset": 36, "byteLength": 6, "target": 34963}
  ],
  "accessors": [
    {"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3", "min": [0, 0, 0], "max": [1, 1, 0]},
    {"bufferView": 1, "componentType": 5123, "count": 3, "type": "SCALAR"}
  ],
  "meshes": [%s]
}`, base64.StdEncoding.EncodeToString(buf), meshJSON)

	path := filepath.Join(dir, name+".gltf")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestLoadGLTF_Triangle(t *testing.T) {
	path := writeTriangleGLTF(t, t.TempDir(), "tri", 1)

	m, err := LoadGLTF(path, "Tri.xml")
	require.NoError(t, err)
	assert.Equal(t, "Tri", m.Name)
	require.Len(t, m.Vertices, 3)
	assert.Equal(t, []uint32{0, 1, 2}, m.Indices)
	assert.Equal(t, [3]float32{1, 0, 0}, m.Vertices[1].Position)
	assert.Equal(t, [4]float32{1, 1, 1, 1}, m.Vertices[0].Color)
}

func TestLoadGLTF_MergesMeshes(t *testing.T) {
	path := writeTriangleGLTF(t, t.TempDir(), "pair", 2)

	m, err := LoadGLTF(path, "pair")
	require.NoError(t, err)
	assert.Len(t, m.Vertices, 6)
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, m.Indices)
}

func TestLoadGLTF_Errors(t *testing.T) {
	_, err := LoadGLTF(filepath.Join(t.TempDir(), "missing.gltf"), "missing")
	assert.Error(t, err)

	// no meshes at all fails validation
	path := writeTriangleGLTF(t, t.TempDir(), "none", 0)
	_, err = LoadGLTF(path, "none")
	assert.Error(t, err)
}

func TestLibrary_BuildAll(t *testing.T) {
	lib := NewLibrary(WithWorkers(3))
	require.NoError(t, lib.Build(Descriptors...))

	meshes := lib.Meshes()
	assert.Len(t, meshes, len(Descriptors))
	for _, name := range Descriptors {
		m, err := lib.Mesh(name + ".xml")
		require.NoError(t, err, name)
		assert.Equal(t, name, m.Name)
		assert.NoError(t, m.Validate())
	}
}

func TestLibrary_Override(t *testing.T) {
	dir := t.TempDir()
	writeTriangleGLTF(t, dir, UnitCubeTint, 1)

	lib := NewLibrary(WithOverrideDir(dir))
	require.NoError(t, lib.Build(UnitCubeTint, UnitCubeColor))

	tint, err := lib.Mesh(UnitCubeTint)
	require.NoError(t, err)
	assert.Len(t, tint.Vertices, 3)

	color, err := lib.Mesh(UnitCubeColor)
	require.NoError(t, err)
	assert.Len(t, color.Vertices, 24)
}

func TestLibrary_Errors(t *testing.T) {
	lib := NewLibrary(WithGenerateOptions(WithPlaneTiling(10)))

	err := lib.Build(UnitPlane, "UnitTeapot")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownDescriptor))

	plane, err := lib.Mesh(UnitPlane)
	require.NoError(t, err)
	assert.Equal(t, [2]float32{10, 10}, plane.Vertices[2].TexCoord)

	_, err = lib.Mesh("UnitTeapot")
	assert.ErrorIs(t, err, ErrUnknownDescriptor)
}
