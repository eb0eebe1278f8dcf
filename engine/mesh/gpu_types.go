package mesh

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/Carmen-Shannon/world-in-motion/common"
	"github.com/go-gl/mathgl/mgl32"
)

// GPUVertexSource is the canonical WGSL definition of the VertexInput struct shared by every program.
// Matches GPUVertex layout exactly (36 bytes, tightly packed vertex attributes).
//
//go:embed assets/vertex.wgsl
var GPUVertexSource string

// GPUVertex is the GPU representation of a single mesh vertex.
// Matches the WGSL VertexInput struct layout exactly (see GPUVertexSource).
type GPUVertex struct {
	Position [3]float32 // offset  0: model-space position (12 bytes)
	Color    [4]float32 // offset 12: per-vertex RGBA color (16 bytes)
	TexCoord [2]float32 // offset 28: UV texture coordinate (8 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes (36)
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 36-byte buffer ready for GPU upload
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, g.Size())
	g.put(buf)
	return buf
}

func (g *GPUVertex) put(buf []byte) {
	off := 0
	for _, f := range g.Position {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(f))
		off += 4
	}
	for _, f := range g.Color {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(f))
		off += 4
	}
	for _, f := range g.TexCoord {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(f))
		off += 4
	}
}

// GPUObjectDataSource is the canonical WGSL definition of the ObjectData struct.
// Matches GPUObjectData layout exactly (80 bytes, std430 aligned).
//
//go:embed assets/object_data.wgsl
var GPUObjectDataSource string

// GPUObjectData is the per-draw record read by the vertex stage from the object storage buffer.
// Each draw selects its record through the first instance index.
type GPUObjectData struct {
	Model mgl32.Mat4 // offset  0: world from model (mat4x4<f32>)
	Color mgl32.Vec4 // offset 64: base color multiplied into the fragment (vec4<f32>)
}

// Size returns the size of the GPUObjectData struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (g *GPUObjectData) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUObjectData struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUObjectData) Marshal() []byte {
	buf := make([]byte, g.Size())
	g.put(buf)
	return buf
}

func (g *GPUObjectData) put(buf []byte) {
	common.PutMat4(buf[0:], g.Model)
	common.PutVec4(buf[64:], g.Color)
}

// MarshalObjects packs records back to back, 80 bytes each.
//
// Parameters:
//   - objects: the records to pack
//
// Returns:
//   - []byte: the packed buffer, nil for no records
func MarshalObjects(objects []GPUObjectData) []byte {
	if len(objects) == 0 {
		return nil
	}
	stride := objects[0].Size()
	buf := make([]byte, stride*len(objects))
	for i := range objects {
		objects[i].put(buf[i*stride:])
	}
	return buf
}
