package bind_group_provider

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// BindGroupProviderOption is a functional option for configuring a BindGroupProvider.
type BindGroupProviderOption func(*bindGroupProvider)

// WithBuffer pre-sets a buffer at a binding. InitBindGroup reuses pre-set buffers instead of creating new ones,
// which lets two providers share one GPU buffer.
//
// Parameters:
//   - binding: the binding index
//   - buf: the existing buffer
//
// Returns:
//   - BindGroupProviderOption: option setting the buffer
func WithBuffer(binding int, buf *wgpu.Buffer) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.buffers[binding] = buf
	}
}
