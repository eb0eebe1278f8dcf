package mesh

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF reads every triangle primitive of every mesh in a .gltf or .glb file and merges them into one Mesh.
// COLOR_0 is used when present. Otherwise the vertex color is the baked grey shading of NORMAL, or white
// without normals. Primitives without an index accessor are indexed sequentially.
//
// Parameters:
//   - path: the file to read
//   - name: the descriptor name given to the result
//
// Returns:
//   - *Mesh: the merged mesh
//   - error: if the file cannot be decoded or holds no triangles
func LoadGLTF(path, name string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: open %s: %w", path, err)
	}

	m := &Mesh{Name: NormalizeName(name)}
	for _, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			if err := m.appendPrimitive(doc, prim); err != nil {
				return nil, fmt.Errorf("mesh: %s primitive %s/%d: %w", path, gm.Name, pi, err)
			}
		}
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("mesh: load %s: %w", path, err)
	}
	return m, nil
}

func (m *Mesh) appendPrimitive(doc *gltf.Document, prim *gltf.Primitive) error {
	posAccessor, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return fmt.Errorf("missing %s attribute", gltf.POSITION)
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posAccessor], [][3]float32{})
	if err != nil {
		return err
	}

	base := uint32(len(m.Vertices))
	verts := make([]GPUVertex, len(positions))
	for i, p := range positions {
		verts[i] = GPUVertex{Position: p, Color: [4]float32{1, 1, 1, 1}}
	}

	if acc, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		uvs, err := modeler.ReadTextureCoord(doc, doc.Accessors[acc], [][2]float32{})
		if err != nil {
			return err
		}
		for i, uv := range uvs {
			verts[i].TexCoord = uv
		}
	}

	if acc, ok := prim.Attributes[gltf.COLOR_0]; ok {
		colors, err := modeler.ReadColor64(doc, doc.Accessors[acc], [][4]uint16{})
		if err != nil {
			return err
		}
		for i, c := range colors {
			verts[i].Color = [4]float32{
				float32(c[0]) / math.MaxUint16,
				float32(c[1]) / math.MaxUint16,
				float32(c[2]) / math.MaxUint16,
				float32(c[3]) / math.MaxUint16,
			}
		}
	} else if acc, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, err := modeler.ReadNormal(doc, doc.Accessors[acc], [][3]float32{})
		if err != nil {
			return err
		}
		for i, n := range normals {
			verts[i].Color = shade(mgl32.Vec3(n).Normalize())
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], []uint32{})
		if err != nil {
			return err
		}
	} else {
		indices = make([]uint32, len(verts))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	m.Vertices = append(m.Vertices, verts...)
	for _, idx := range indices {
		m.Indices = append(m.Indices, base+idx)
	}
	return nil
}
