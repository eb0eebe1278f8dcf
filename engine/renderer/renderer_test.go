package renderer

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestParseMSAA(t *testing.T) {
	tests := []struct {
		samples int
		want    MSAASampleCount
		ok      bool
	}{
		{1, MSAAOff, true},
		{4, MSAA4x, true},
		{8, MSAA4x, false},
		{0, MSAA4x, false},
	}
	for _, tt := range tests {
		got, ok := ParseMSAA(tt.samples)
		assert.Equal(t, tt.want, got, tt.samples)
		assert.Equal(t, tt.ok, ok, tt.samples)
	}
}

func TestPresentMode_wgpuPresentMode(t *testing.T) {
	assert.Equal(t, wgpu.PresentModeFifo, PresentModeVSync.wgpuPresentMode())
	assert.Equal(t, wgpu.PresentModeImmediate, PresentModeUncapped.wgpuPresentMode())
}

func TestRendererOptions(t *testing.T) {
	r := &renderer{msaa: MSAA4x}
	for _, opt := range []RendererBuilderOption{
		WithMSAA(MSAAOff),
		WithPresentMode(PresentModeUncapped),
		WithForceSoftwareRenderer(true),
		WithClearColor([4]float64{0.1, 0.2, 0.3, 1}),
	} {
		opt(r)
	}
	assert.Equal(t, MSAAOff, r.msaa)
	assert.Equal(t, PresentModeUncapped, r.presentMode)
	assert.True(t, r.forceFallbackAdapter)
	assert.Equal(t, [4]float64{0.1, 0.2, 0.3, 1}, r.clearColor)
}
