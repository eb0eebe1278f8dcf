package shader

import (
	"strings"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVertexSource = `//@wim:include globals
//@wim:include object
//@wim:include vertex
//@wim:include varyings

//@wim:group 0 0 storage_uniform globals globals
//@wim:group 1 0 storage_read objects array<object>

@vertex
fn vs_main(in: VertexInput, @builtin(instance_index) instance: u32) -> VertexOutput {
    let record = objects[instance];
    var out: VertexOutput;
    out.clip_position = globals.projection * globals.view * record.model * vec4<f32>(in.position, 1.0);
    out.color = in.color;
    out.base_color = record.color;
    out.tex_coord = in.tex_coord;
    return out;
}
`

const testFragmentSource = `//@wim:include varyings

//@wim:provider 2 0 material diffuse_texture
@group(2) @binding(0) var diffuse_texture: texture_2d<f32>;
//@wim:provider 2 1 material diffuse_sampler
@group(2) @binding(1) var diffuse_sampler: sampler;

/* block comments are ignored: @group(3) @binding(0) var nope: sampler; */
@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return textureSample(diffuse_texture, diffuse_sampler, in.tex_coord) * in.base_color;
}
`

func TestParseAnnotation(t *testing.T) {
	a, err := parseAnnotation("    //@wim:group 1 0 storage_read objects array<object>", 7)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, AnnotationTypeBindingGroup, a.Type)
	assert.Equal(t, 1, *a.Group)
	assert.Equal(t, 0, *a.Binding)
	assert.Equal(t, 7, a.Line)
	assert.Equal(t, AnnotationArgObject, a.Identity())

	a, err = parseAnnotation("//@wim:provider 2 1 material diffuse_sampler", 1)
	require.NoError(t, err)
	assert.Equal(t, AnnotationArgMaterial, a.Identity())
	assert.Equal(t, AnnotationArgDiffuseSampler, a.Role())

	a, err = parseAnnotation("// an ordinary comment", 1)
	assert.NoError(t, err)
	assert.Nil(t, a)
}

func TestParseAnnotation_Errors(t *testing.T) {
	lines := []string{
		"//@wim:",
		"//@wim:bogus 1",
		"//@wim:include",
		"//@wim:include teapot",
		"//@wim:group 0 0 storage_uniform globals",
		"//@wim:group x 0 storage_uniform globals globals",
		"//@wim:group 0 y storage_uniform globals globals",
		"//@wim:group 0 0 push_constant globals globals",
		"//@wim:group 0 0 storage_read objects array<teapot>",
		"//@wim:provider 2 0",
		"//@wim:provider 2 0 lights",
		"//@wim:provider 2 0 material normal_texture",
	}
	for _, line := range lines {
		_, err := parseAnnotation(line, 3)
		assert.Error(t, err, line)
	}
}

func TestPreProcessor_Process(t *testing.T) {
	pp := NewPreProcessor()
	out, err := pp.Process(testVertexSource)
	require.NoError(t, err)

	assert.Contains(t, out, "struct GlobalMatrices")
	assert.Contains(t, out, "struct ObjectData")
	assert.Contains(t, out, "struct VertexInput")
	assert.Contains(t, out, "struct VertexOutput")
	assert.Contains(t, out, "@group(0) @binding(0) var<uniform> globals: GlobalMatrices;")
	assert.Contains(t, out, "@group(1) @binding(0) var<storage, read> objects: array<ObjectData>;")
	assert.NotContains(t, out, annotationPrefix)

	decls := pp.Declarations()
	require.Len(t, decls, 2)
	assert.Equal(t, AnnotationArgGlobals, decls[0].Identity())
	assert.Equal(t, AnnotationArgObject, decls[1].Identity())

	// declarations are reset by each call
	_, err = pp.Process("@vertex fn main() {}")
	require.NoError(t, err)
	assert.Empty(t, pp.Declarations())
}

func TestNewShader_Vertex(t *testing.T) {
	s, err := NewShader("world_transform", ShaderTypeVertex, testVertexSource)
	require.NoError(t, err)

	assert.Equal(t, "world_transform", s.Key())
	assert.Equal(t, "vs_main", s.EntryPoint())
	assert.Equal(t, ShaderTypeVertex, s.ShaderType())
	assert.Equal(t, s.Source(), s.Module().WGSLDescriptor.Code)

	// only VertexInput qualifies, VertexOutput carries a builtin
	require.Len(t, s.VertexLayouts(), 1)
	layout := s.VertexLayout(0)
	require.Len(t, layout, 1)
	assert.Equal(t, uint64(36), layout[0].ArrayStride)
	require.Len(t, layout[0].Attributes, 3)
	assert.Equal(t, wgpu.VertexFormatFloat32x3, layout[0].Attributes[0].Format)
	assert.Equal(t, uint64(12), layout[0].Attributes[1].Offset)
	assert.Equal(t, uint64(28), layout[0].Attributes[2].Offset)
	assert.Equal(t, uint32(2), layout[0].Attributes[2].ShaderLocation)

	globals := s.BindGroupLayoutDescriptor(0)
	require.Len(t, globals.Entries, 1)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, globals.Entries[0].Buffer.Type)
	assert.Equal(t, uint64(128), globals.Entries[0].Buffer.MinBindingSize)
	assert.Equal(t, wgpu.ShaderStageVertex, globals.Entries[0].Visibility)

	objects := s.BindGroupLayoutDescriptor(1)
	require.Len(t, objects.Entries, 1)
	assert.Equal(t, wgpu.BufferBindingTypeReadOnlyStorage, objects.Entries[0].Buffer.Type)
	assert.Equal(t, uint64(80), objects.Entries[0].Buffer.MinBindingSize)

	assert.Equal(t, "objects", s.BindGroupVarName(1, 0))
	binding, ok := s.BindGroupFromVarName(0, "globals")
	assert.True(t, ok)
	assert.Equal(t, 0, binding)
	_, ok = s.BindGroupFromVarName(5, "globals")
	assert.False(t, ok)
	assert.Len(t, s.Declarations(), 2)
}

func TestNewShader_Fragment(t *testing.T) {
	s, err := NewShader("texture", ShaderTypeFragment, testFragmentSource)
	require.NoError(t, err)

	assert.Equal(t, "fs_main", s.EntryPoint())
	assert.Empty(t, s.VertexLayouts())
	assert.Len(t, s.BindGroupLayoutDescriptors(), 1)

	material := s.BindGroupLayoutDescriptor(2)
	require.Len(t, material.Entries, 2)
	assert.Equal(t, wgpu.TextureViewDimension2D, material.Entries[0].Texture.ViewDimension)
	assert.Equal(t, wgpu.TextureSampleTypeFloat, material.Entries[0].Texture.SampleType)
	assert.Equal(t, wgpu.SamplerBindingTypeFiltering, material.Entries[1].Sampler.Type)
	assert.Equal(t, wgpu.ShaderStageFragment, material.Entries[1].Visibility)

	decls := s.Declarations()
	require.Len(t, decls, 2)
	assert.Equal(t, AnnotationArgDiffuseTexture, decls[0].Role())
	assert.Equal(t, 1, *decls[1].Binding)
}

func TestNewShader_Errors(t *testing.T) {
	_, err := NewShader("broken", ShaderTypeVertex, "//@wim:include teapot\n@vertex fn main() {}")
	assert.Error(t, err)

	_, err = NewShader("stageless", ShaderTypeFragment, "@vertex fn vs_main() {}")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "stageless"))

	assert.Panics(t, func() { MustShader("stageless", ShaderTypeFragment, "") })
}

func TestResolveTypeLayout(t *testing.T) {
	known := map[string]wgslTypeLayout{"ObjectData": {80, 16}}
	tests := []struct {
		typeName    string
		size, align uint64
	}{
		{"f32", 4, 4},
		{"vec3f", 12, 16},
		{"vec3<f32>", 12, 16},
		{"vec2<u32>", 8, 8},
		{"mat4x4<f32>", 64, 16},
		{"mat3x3<f32>", 48, 16},
		{"mat2x2<f32>", 16, 8},
		{"atomic<u32>", 4, 4},
		{"array<vec3<f32>, 4>", 64, 16},
		{"array<ObjectData>", 80, 16},
	}
	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			l, ok := resolveTypeLayout(tt.typeName, known)
			require.True(t, ok)
			assert.Equal(t, tt.size, l.size)
			assert.Equal(t, tt.align, l.align)
		})
	}

	_, ok := resolveTypeLayout("Teapot", known)
	assert.False(t, ok)
}

func TestComputeStructSizes_OutOfOrder(t *testing.T) {
	src := `struct Outer { inner: Inner, scale: f32, };
struct Inner { a: vec3<f32>, b: f32, };`
	sizes := computeStructSizes(parseStructBlocks(src))
	assert.Equal(t, wgslTypeLayout{16, 16}, sizes["Inner"])
	assert.Equal(t, wgslTypeLayout{32, 16}, sizes["Outer"])
}

func TestStripComments(t *testing.T) {
	src := "a // line\n/* outer /* nested */ still */b"
	assert.Equal(t, "a \nb", stripComments(src))
}
