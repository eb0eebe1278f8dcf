// Package mesh provides the unit primitives the world is assembled from: procedural generation,
// glTF overrides and a Library that prepares all of them at startup.
package mesh

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/world-in-motion/common"
)

// Descriptor names of the unit meshes the scene draws with.
const (
	UnitConeTint     = "UnitConeTint"
	UnitCylinderTint = "UnitCylinderTint"
	UnitCubeTint     = "UnitCubeTint"
	UnitCubeColor    = "UnitCubeColor"
	UnitPlane        = "UnitPlane"
	UnitSphere       = "UnitSphere"
)

// Descriptors lists every unit mesh in load order.
var Descriptors = []string{
	UnitConeTint,
	UnitCylinderTint,
	UnitCubeTint,
	UnitCubeColor,
	UnitPlane,
	UnitSphere,
}

// ErrUnknownDescriptor is returned when a mesh name matches no unit primitive.
var ErrUnknownDescriptor = errors.New("mesh: unknown descriptor")

// Mesh is indexed triangle-list geometry with counter-clockwise front faces.
type Mesh struct {
	Name     string
	Vertices []GPUVertex
	Indices  []uint32
}

// NormalizeName strips a trailing ".xml" from a descriptor name.
//
// Parameters:
//   - name: a descriptor name such as "UnitConeTint.xml"
//
// Returns:
//   - string: the bare descriptor name
func NormalizeName(name string) string {
	return strings.TrimSuffix(name, ".xml")
}

// VertexData returns the vertices packed for upload.
func (m *Mesh) VertexData() []byte {
	if len(m.Vertices) == 0 {
		return nil
	}
	stride := m.Vertices[0].Size()
	buf := make([]byte, stride*len(m.Vertices))
	for i := range m.Vertices {
		m.Vertices[i].put(buf[i*stride:])
	}
	return buf
}

// IndexData returns the indices as uint32 bytes for upload.
func (m *Mesh) IndexData() []byte {
	return common.SliceToBytes(m.Indices)
}

// IndexCount returns the number of indices.
func (m *Mesh) IndexCount() int {
	return len(m.Indices)
}

// Validate checks that the mesh is a non-empty triangle list with in-range indices.
//
// Returns:
//   - error: nil if the mesh can be drawn
func (m *Mesh) Validate() error {
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return fmt.Errorf("mesh: %s is empty", m.Name)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh: %s has %d indices, not a triangle list", m.Name, len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("mesh: %s index %d out of range (%d >= %d)", m.Name, i, idx, len(m.Vertices))
		}
	}
	return nil
}
