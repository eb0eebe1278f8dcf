package engine

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/world-in-motion/common"
	"github.com/Carmen-Shannon/world-in-motion/engine/camera"
	"github.com/Carmen-Shannon/world-in-motion/engine/renderer"
	"github.com/Carmen-Shannon/world-in-motion/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/world-in-motion/engine/renderer/material"
	"github.com/Carmen-Shannon/world-in-motion/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/world-in-motion/engine/scene"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	onUpdate      func()
	onResize      func(width, height int)
	onKey         func(keyCode uint32, mods common.KeyModifier)
	frames        int
	running       bool
	closeRequests int
}

func (w *fakeWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *fakeWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *fakeWindow) SetKeyDownCallback(callback func(keyCode uint32, mods common.KeyModifier)) {
	w.onKey = callback
}

func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return nil
}

func (w *fakeWindow) IsRunning() bool {
	return w.running
}

func (w *fakeWindow) RequestClose() {
	w.closeRequests++
	w.running = false
}

func (w *fakeWindow) Close() error {
	return nil
}

func (w *fakeWindow) ProcessMessages() {
	for i := 0; i < w.frames && w.running; i++ {
		w.onUpdate()
	}
}

func (w *fakeWindow) Title() string {
	return "test"
}

func (w *fakeWindow) Width() int {
	return 800
}

func (w *fakeWindow) Height() int {
	return 600
}

type fakeRenderer struct {
	writes   []bind_group_provider.BufferWrite
	resizes  [][2]int
	begins   int
	ends     int
	presents int
	released bool
	beginErr error
}

func (f *fakeRenderer) Pipeline(key string) pipeline.Pipeline {
	return nil
}

func (f *fakeRenderer) Pipelines() map[string]pipeline.Pipeline {
	return nil
}

func (f *fakeRenderer) RegisterPipelines(pipelines ...pipeline.Pipeline) error {
	return nil
}

func (f *fakeRenderer) Resize(width, height int) {
	f.resizes = append(f.resizes, [2]int{width, height})
}

func (f *fakeRenderer) SetPresentMode(mode renderer.PresentMode) {}

func (f *fakeRenderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	return nil
}

func (f *fakeRenderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferUsageOverrides map[int]wgpu.BufferUsage, bufferSizeOverrides map[int]uint64) error {
	return nil
}

func (f *fakeRenderer) InitTextureView(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error {
	return nil
}

func (f *fakeRenderer) InitSampler(provider bind_group_provider.BindGroupProvider, bindingKey int, samplerStagingData common.SamplerStagingData) error {
	return nil
}

func (f *fakeRenderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	f.writes = append(f.writes, writes...)
}

func (f *fakeRenderer) BeginFrame() error {
	f.begins++
	return f.beginErr
}

func (f *fakeRenderer) DrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, instanceCount, firstInstance uint32, bindGroups []bind_group_provider.BindGroupProvider) error {
	return nil
}

func (f *fakeRenderer) EndFrame() {
	f.ends++
}

func (f *fakeRenderer) Present() {
	f.presents++
}

func (f *fakeRenderer) Release() {
	f.released = true
}

type fakeScene struct {
	cam          camera.Camera
	r            *fakeRenderer
	dl           scene.DrawList
	prepared     []bool
	draws        int
	meshReleases int
	released     bool
	prepareErr   error
}

func (s *fakeScene) Name() string {
	return "fake"
}

func (s *fakeScene) Camera() camera.Camera {
	return s.cam
}

func (s *fakeScene) Renderer() renderer.Renderer {
	return s.r
}

func (s *fakeScene) DrawList() scene.DrawList {
	return s.dl
}

func (s *fakeScene) Ground() material.Material {
	return nil
}

func (s *fakeScene) DrawCalls() error {
	s.draws++
	return nil
}

func (s *fakeScene) ReleaseMeshes() {
	s.meshReleases++
}

func (s *fakeScene) Release() {
	s.released = true
}

func (s *fakeScene) Prepare(state camera.CameraState, drawLookAt bool) error {
	s.prepared = append(s.prepared, drawLookAt)
	return s.prepareErr
}

type harness struct {
	win   *fakeWindow
	r     *fakeRenderer
	scn   *fakeScene
	eng   Engine
	debug []bool
}

func newHarness(frames int) *harness {
	h := &harness{
		win: &fakeWindow{frames: frames, running: true},
		r:   &fakeRenderer{},
	}
	ctrl := camera.NewCameraController(
		camera.WithToggleDebugCallback(func(enabled bool) {
			h.debug = append(h.debug, enabled)
			h.eng.SetDebug(enabled)
		}),
		camera.WithTerminateCallback(func() { h.eng.Terminate() }),
	)
	h.scn = &fakeScene{
		cam: camera.NewCamera(camera.WithController(ctrl)),
		r:   h.r,
		dl:  scene.NewDrawList(4),
	}
	h.eng = NewEngine(WithWindow(h.win), WithScene(h.scn))
	return h
}

func TestEngine_Run(t *testing.T) {
	h := newHarness(3)
	require.NoError(t, h.eng.Run())

	assert.Len(t, h.scn.prepared, 3)
	assert.Equal(t, 3, h.scn.draws)
	assert.Equal(t, 3, h.r.begins)
	assert.Equal(t, 3, h.r.ends)
	assert.Equal(t, 3, h.r.presents)

	// one full globals upload at start, then one view upload per frame
	require.Len(t, h.r.writes, 4)
	assert.Len(t, h.r.writes[0].Data, 128)
	assert.Zero(t, h.r.writes[0].Offset)
	for _, w := range h.r.writes[1:] {
		assert.Equal(t, uint64(camera.ViewOffset), w.Offset)
		assert.Len(t, w.Data, 64)
	}

	assert.True(t, h.scn.released)
	assert.True(t, h.r.released)
	assert.Equal(t, 1, h.scn.meshReleases)
}

func TestEngine_Resize(t *testing.T) {
	h := newHarness(0)
	h.win.onResize(0, 300)
	assert.Empty(t, h.r.resizes)

	h.win.onResize(1024, 512)
	require.Len(t, h.r.resizes, 1)
	assert.Equal(t, [2]int{1024, 512}, h.r.resizes[0])
	assert.InDelta(t, 2.0, h.scn.cam.Aspect(), 1e-6)
	require.Len(t, h.r.writes, 1)
	assert.Len(t, h.r.writes[0].Data, 128)
}

func TestEngine_DebugToggleFollowsProfiler(t *testing.T) {
	h := newHarness(0)
	assert.False(t, h.eng.ProfilerEnabled())

	h.win.onKey(common.KeySpace, 0)
	assert.True(t, h.eng.ProfilerEnabled())
	require.NoError(t, h.eng.Frame())
	assert.Equal(t, []bool{true}, h.scn.prepared)

	h.win.onKey(common.KeySpace, 0)
	assert.False(t, h.eng.ProfilerEnabled())
	assert.Equal(t, []bool{true, false}, h.debug)
}

func TestEngine_EscTerminates(t *testing.T) {
	h := newHarness(0)
	h.win.onKey(common.KeyEsc, 0)
	h.win.onKey(common.KeyEsc, 0)

	assert.Equal(t, 1, h.scn.meshReleases)
	assert.Equal(t, 1, h.win.closeRequests)
	assert.False(t, h.win.running)

	// frames after terminate are skipped
	require.NoError(t, h.eng.Frame())
	assert.Empty(t, h.scn.prepared)
}

func TestEngine_FrameFailureStopsLoop(t *testing.T) {
	h := newHarness(5)
	boom := errors.New("surface lost")
	h.r.beginErr = boom

	err := h.eng.Run()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, h.r.begins)
	assert.Zero(t, h.r.presents)
	assert.Equal(t, 1, h.scn.meshReleases)
}

func TestEngine_PrepareFailure(t *testing.T) {
	h := newHarness(0)
	h.scn.prepareErr = scene.ErrDrawListFull
	assert.ErrorIs(t, h.eng.Frame(), scene.ErrDrawListFull)
	assert.Zero(t, h.r.begins)
}

func TestEngine_NoScene(t *testing.T) {
	e := NewEngine(WithWindow(&fakeWindow{}))
	assert.ErrorIs(t, e.Run(), ErrNoScene)
	assert.ErrorIs(t, e.Frame(), ErrNoScene)
	assert.NotPanics(t, func() {
		e.Resize(10, 10)
		e.HandleKey(common.KeyW, 0)
		e.Terminate()
	})

	assert.Error(t, NewEngine().Run())
}
