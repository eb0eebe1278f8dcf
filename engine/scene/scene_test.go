package scene

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/world-in-motion/common"
	"github.com/Carmen-Shannon/world-in-motion/engine/camera"
	"github.com/Carmen-Shannon/world-in-motion/engine/mesh"
	"github.com/Carmen-Shannon/world-in-motion/engine/renderer"
	"github.com/Carmen-Shannon/world-in-motion/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/world-in-motion/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/world-in-motion/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDraw struct {
	pipelineKey   string
	mesh          string
	firstInstance uint32
	groups        []string
}

// fakeRenderer records what the scene asks of the GPU without creating anything.
type fakeRenderer struct {
	pipelines    map[string]pipeline.Pipeline
	meshes       []string
	bindGroups   map[string]wgpu.BindGroupLayoutDescriptor
	sizes        map[string]map[int]uint64
	textures     map[string]int
	samplers     map[string]int
	writes       []bind_group_provider.BufferWrite
	draws        []fakeDraw
	failBindings bool
}

var _ renderer.Renderer = &fakeRenderer{}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{
		pipelines:  make(map[string]pipeline.Pipeline),
		bindGroups: make(map[string]wgpu.BindGroupLayoutDescriptor),
		sizes:      make(map[string]map[int]uint64),
		textures:   make(map[string]int),
		samplers:   make(map[string]int),
	}
}

func (f *fakeRenderer) Pipeline(key string) pipeline.Pipeline { return f.pipelines[key] }

func (f *fakeRenderer) Pipelines() map[string]pipeline.Pipeline { return f.pipelines }

func (f *fakeRenderer) RegisterPipelines(pipelines ...pipeline.Pipeline) error {
	for _, p := range pipelines {
		f.pipelines[p.PipelineKey()] = p
	}
	return nil
}

func (f *fakeRenderer) Resize(width, height int) {}

func (f *fakeRenderer) SetPresentMode(mode renderer.PresentMode) {}

func (f *fakeRenderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	f.meshes = append(f.meshes, provider.Label())
	return nil
}

func (f *fakeRenderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferUsageOverrides map[int]wgpu.BufferUsage, bufferSizeOverrides map[int]uint64) error {
	if f.failBindings {
		return errors.New("no device")
	}
	f.bindGroups[provider.Label()] = descriptor
	f.sizes[provider.Label()] = bufferSizeOverrides
	return nil
}

func (f *fakeRenderer) InitTextureView(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error {
	f.textures[provider.Label()] = bindingKey
	return nil
}

func (f *fakeRenderer) InitSampler(provider bind_group_provider.BindGroupProvider, bindingKey int, samplerStagingData common.SamplerStagingData) error {
	f.samplers[provider.Label()] = bindingKey
	return nil
}

func (f *fakeRenderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	f.writes = append(f.writes, writes...)
}

func (f *fakeRenderer) BeginFrame() error { return nil }

func (f *fakeRenderer) DrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, instanceCount, firstInstance uint32, bindGroups []bind_group_provider.BindGroupProvider) error {
	labels := make([]string, len(bindGroups))
	for i, bg := range bindGroups {
		labels[i] = bg.Label()
	}
	f.draws = append(f.draws, fakeDraw{pipelineKey, meshProvider.Label(), firstInstance, labels})
	return nil
}

func (f *fakeRenderer) EndFrame() {}

func (f *fakeRenderer) Present() {}

func (f *fakeRenderer) Release() {}

func newTestScene(t *testing.T, r *fakeRenderer, options ...SceneBuilderOption) (Scene, camera.Camera) {
	t.Helper()
	lib := mesh.NewLibrary()
	require.NoError(t, lib.Build(mesh.Descriptors...))
	cam := camera.NewCamera()
	ground := common.TextureStagingData{Levels: [][]byte{{255, 255, 255, 255}}, Width: 1, Height: 1}
	s, err := NewScene("world", cam, r, lib, ground, options...)
	require.NoError(t, err)
	return s, cam
}

func TestPrograms(t *testing.T) {
	programs, err := Programs()
	require.NoError(t, err)
	require.Len(t, programs, 4)

	keys := make([]string, len(programs))
	for i, p := range programs {
		keys[i] = p.PipelineKey()
		assert.Equal(t, wgpu.CullModeBack, p.CullMode())
		assert.Equal(t, "vs_main", p.Shader(shader.ShaderTypeVertex).EntryPoint())
		assert.Equal(t, "fs_main", p.Shader(shader.ShaderTypeFragment).EntryPoint())
	}
	assert.Equal(t, []string{PipelineTexture, PipelineObjectColor, PipelineUniformColorTint, PipelineLookAtMarker}, keys)

	texture := programs[0]
	assert.Len(t, texture.BindGroupLayoutDescriptors(), 3)
	assert.Equal(t, wgpu.CompareFunctionLessEqual, texture.DepthCompare())

	marker := programs[3]
	assert.Equal(t, wgpu.CompareFunctionAlways, marker.DepthCompare())
	assert.False(t, marker.DepthWriteEnabled())
	assert.Len(t, marker.BindGroupLayoutDescriptors(), 2)

	assert.NotPanics(t, func() { MustPrograms() })
}

func TestNewScene_Wiring(t *testing.T) {
	r := newFakeRenderer()
	s, cam := newTestScene(t, r, WithDrawListCapacity(512))
	assert.Equal(t, "world_ground", s.Ground().Name())
	assert.Equal(t, PipelineTexture, s.Ground().PipelineKey())

	assert.Len(t, r.pipelines, 4)
	assert.Len(t, r.meshes, len(mesh.Descriptors))

	camLabel := cam.BindGroupProvider().Label()
	require.Contains(t, r.bindGroups, camLabel)
	require.Contains(t, r.bindGroups, "world_objects")
	require.Contains(t, r.bindGroups, "world_ground_material")
	assert.Len(t, r.bindGroups, 3)

	assert.Equal(t, uint64(512*80), r.sizes["world_objects"][0])
	assert.Equal(t, 0, r.textures["world_ground_material"])
	assert.Equal(t, 1, r.samplers["world_ground_material"])
}

func TestScene_PrepareAndDraw(t *testing.T) {
	r := newFakeRenderer()
	s, cam := newTestScene(t, r)

	state := camera.DefaultCameraState()
	require.NoError(t, s.Prepare(state, true))
	n := s.DrawList().Len()
	assert.Equal(t, 1+2*len(Forest)+94+6+1, n)

	require.Len(t, r.writes, 1)
	assert.Len(t, r.writes[0].Data, n*80)
	assert.Equal(t, "world_objects", r.writes[0].Provider.Label())

	require.NoError(t, s.DrawCalls())
	require.Len(t, r.draws, n)
	for i, d := range r.draws {
		assert.Equal(t, uint32(i), d.firstInstance)
	}

	camLabel := cam.BindGroupProvider().Label()
	ground := r.draws[0]
	assert.Equal(t, PipelineTexture, ground.pipelineKey)
	assert.Equal(t, "mesh_"+mesh.UnitPlane, ground.mesh)
	assert.Equal(t, []string{camLabel, "world_objects", "world_ground_material"}, ground.groups)

	marker := r.draws[n-1]
	assert.Equal(t, PipelineLookAtMarker, marker.pipelineKey)
	assert.Equal(t, []string{camLabel, "world_objects"}, marker.groups)

	// a second frame replaces the first
	require.NoError(t, s.Prepare(state, false))
	assert.Equal(t, n-1, s.DrawList().Len())
}

func TestScene_CapacityTooSmall(t *testing.T) {
	r := newFakeRenderer()
	s, _ := newTestScene(t, r, WithDrawListCapacity(10))
	assert.ErrorIs(t, s.Prepare(camera.DefaultCameraState(), false), ErrDrawListFull)
	assert.Empty(t, r.writes)
}

func TestScene_Placements(t *testing.T) {
	r := newFakeRenderer()
	s, _ := newTestScene(t, r, WithPlacements(Forest[:3]))
	require.NoError(t, s.Prepare(camera.DefaultCameraState(), false))
	assert.Equal(t, 1+6+94+6, s.DrawList().Len())
}

func TestScene_Release(t *testing.T) {
	r := newFakeRenderer()
	s, _ := newTestScene(t, r)
	s.ReleaseMeshes()
	s.ReleaseMeshes()
	assert.ErrorIs(t, s.Prepare(camera.DefaultCameraState(), false), ErrReleased)
	assert.ErrorIs(t, s.DrawCalls(), ErrReleased)
	assert.NotPanics(t, s.Release)
}

func TestNewScene_Errors(t *testing.T) {
	r := newFakeRenderer()
	r.failBindings = true
	lib := mesh.NewLibrary()
	require.NoError(t, lib.Build(mesh.Descriptors...))
	_, err := NewScene("broken", camera.NewCamera(), r, lib, common.TextureStagingData{})
	assert.Error(t, err)

	_, err = NewScene("empty", camera.NewCamera(), newFakeRenderer(), lib, common.TextureStagingData{}, WithDrawListCapacity(0))
	assert.Error(t, err)
}
