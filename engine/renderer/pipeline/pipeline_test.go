package pipeline

import (
	"testing"

	"github.com/Carmen-Shannon/world-in-motion/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vertexSource = `//@wim:include globals
//@wim:include vertex
//@wim:include varyings
//@wim:group 0 0 storage_uniform globals globals

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.clip_position = globals.projection * globals.view * vec4<f32>(in.position, 1.0);
    return out;
}
`

const fragmentSource = `//@wim:include varyings
//@wim:include globals
//@wim:group 0 0 storage_uniform globals globals
//@wim:provider 0 1 material diffuse_sampler
@group(0) @binding(1) var diffuse_sampler: sampler;

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return in.color;
}
`

func TestNewPipeline_Defaults(t *testing.T) {
	p := NewPipeline("plain")
	assert.Equal(t, "plain", p.PipelineKey())
	assert.True(t, p.DepthTestEnabled())
	assert.True(t, p.DepthWriteEnabled())
	assert.Equal(t, wgpu.CompareFunctionLess, p.DepthCompare())
	assert.False(t, p.BlendEnabled())
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, p.Topology())
	assert.Equal(t, wgpu.FrontFaceCCW, p.FrontFace())
	assert.Equal(t, wgpu.ColorWriteMaskAll, p.WriteMask())
	assert.NotNil(t, p.BlendState())
	assert.Nil(t, p.RenderPipeline())
	assert.Nil(t, p.Shader(shader.ShaderTypeVertex))
	assert.Empty(t, p.BindGroupLayoutDescriptors())
}

func TestNewPipeline_Options(t *testing.T) {
	p := NewPipeline("marker",
		WithCullMode(wgpu.CullModeBack),
		WithDepthCompare(wgpu.CompareFunctionLessEqual),
		WithFrontFace(wgpu.FrontFaceCW),
		WithBlendEnabled(true),
		WithWriteMask(wgpu.ColorWriteMaskRed),
		WithTopology(wgpu.PrimitiveTopologyLineList),
	)
	assert.Equal(t, wgpu.CullModeBack, p.CullMode())
	assert.Equal(t, wgpu.CompareFunctionLessEqual, p.DepthCompare())
	assert.Equal(t, wgpu.FrontFaceCW, p.FrontFace())
	assert.True(t, p.BlendEnabled())
	assert.Equal(t, wgpu.ColorWriteMaskRed, p.WriteMask())
	assert.Equal(t, wgpu.PrimitiveTopologyLineList, p.Topology())

	overlay := NewPipeline("overlay",
		WithDepthCompare(wgpu.CompareFunctionLessEqual),
		WithDepthTestEnabled(false),
		WithDepthWriteEnabled(false),
	)
	assert.Equal(t, wgpu.CompareFunctionAlways, overlay.DepthCompare())
	assert.False(t, overlay.DepthWriteEnabled())
}

func TestPipeline_MergedLayouts(t *testing.T) {
	vs := shader.MustShader("vs", shader.ShaderTypeVertex, vertexSource)
	fs := shader.MustShader("fs", shader.ShaderTypeFragment, fragmentSource)
	p := NewPipeline("merged", WithVertexShader(vs), WithFragmentShader(fs))

	assert.Equal(t, vs, p.Shader(shader.ShaderTypeVertex))
	assert.Equal(t, fs, p.Shader(shader.ShaderTypeFragment))

	desc := p.BindGroupLayoutDescriptor(0)
	require.Len(t, desc.Entries, 2)
	assert.Equal(t, uint32(0), desc.Entries[0].Binding)
	assert.Equal(t, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment, desc.Entries[0].Visibility)
	assert.Equal(t, uint32(1), desc.Entries[1].Binding)
	assert.Equal(t, wgpu.ShaderStageFragment, desc.Entries[1].Visibility)

	// merging never mutates the per-stage descriptors
	assert.Equal(t, wgpu.ShaderStageVertex, vs.BindGroupLayoutDescriptor(0).Entries[0].Visibility)

	decls := p.Declarations()
	require.Len(t, decls, 3)
	assert.Equal(t, shader.AnnotationArgGlobals, decls[0].Identity())
	assert.Equal(t, shader.AnnotationArgMaterial, decls[2].Identity())
}
