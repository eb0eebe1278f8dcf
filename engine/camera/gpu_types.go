package camera

import (
	_ "embed"
	"unsafe"

	"github.com/Carmen-Shannon/world-in-motion/common"
	"github.com/go-gl/mathgl/mgl32"
)

// GPUGlobalMatricesSource is the canonical WGSL definition of the GlobalMatrices struct.
// Matches GPUGlobalMatrices layout exactly (128 bytes).
//
//go:embed assets/global_matrices.wgsl
var GPUGlobalMatricesSource string

// GPUGlobalMatrices is the GPU-aligned representation of the shared projection/view uniform block.
// Every program reads it at group 0 binding 0.
type GPUGlobalMatrices struct {
	Projection mgl32.Mat4 // offset  0: clip from view (mat4x4<f32>)
	View       mgl32.Mat4 // offset 64: view from world (mat4x4<f32>)
}

// Size returns the size of the GPUGlobalMatrices struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (128)
func (g *GPUGlobalMatrices) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUGlobalMatrices struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUGlobalMatrices) Marshal() []byte {
	buf := make([]byte, g.Size())
	common.PutMat4(buf[0:], g.Projection)
	common.PutMat4(buf[64:], g.View)
	return buf
}

// MarshalView serializes only the view matrix, for the per-frame write at offset ViewOffset.
//
// Returns:
//   - []byte: the 64 byte view matrix
func (g *GPUGlobalMatrices) MarshalView() []byte {
	buf := make([]byte, 64)
	common.PutMat4(buf, g.View)
	return buf
}

// ViewOffset is the byte offset of the view matrix inside GlobalMatrices.
const ViewOffset = 64
