package renderer

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents immediately. May tear.
	PresentModeUncapped
)

func (m PresentMode) wgpuPresentMode() wgpu.PresentMode {
	if m == PresentModeUncapped {
		return wgpu.PresentModeImmediate
	}
	return wgpu.PresentModeFifo
}

// MSAASampleCount is the number of samples per pixel of the colour and depth targets.
// WebGPU guarantees 1 and 4.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing.
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4x multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4
)

// ParseMSAA maps a sample count to an MSAASampleCount. Anything other than 1 or 4 reports false.
//
// Parameters:
//   - samples: the requested sample count
//
// Returns:
//   - MSAASampleCount: the matching count, MSAA4x when unsupported
//   - bool: true if samples is supported
func ParseMSAA(samples int) (MSAASampleCount, bool) {
	switch samples {
	case 1:
		return MSAAOff, true
	case 4:
		return MSAA4x, true
	}
	return MSAA4x, false
}

// RendererBackend is the top-level backend interface for the Renderer.
type RendererBackend interface {
	wgpuRendererBackend
}
