package scene

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/world-in-motion/common"
	"github.com/Carmen-Shannon/world-in-motion/engine/camera"
	"github.com/Carmen-Shannon/world-in-motion/engine/mesh"
	"github.com/Carmen-Shannon/world-in-motion/engine/renderer"
	"github.com/Carmen-Shannon/world-in-motion/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/world-in-motion/engine/renderer/material"
	"github.com/Carmen-Shannon/world-in-motion/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/world-in-motion/engine/renderer/shader"
	"github.com/Carmen-Shannon/world-in-motion/engine/transform"
)

// objectSize is the stride of one record in the object buffer.
var objectSize = (&mesh.GPUObjectData{}).Size()

// ErrReleased is returned by Prepare and DrawCalls after ReleaseMeshes or Release.
var ErrReleased = errors.New("scene: released")

// Scene owns the GPU side of the world: the shading programs, one mesh provider per unit mesh,
// the per-frame object buffer and the ground material. Each frame it composes the world into a
// DrawList and replays it as one draw per object.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// Renderer returns the scene's renderer.
	Renderer() renderer.Renderer

	// DrawList returns the list filled by the last Prepare.
	DrawList() DrawList

	// Ground returns the material of the ground plane.
	Ground() material.Material

	// Prepare composes the world for the given camera state and uploads one object record per draw.
	//
	// Parameters:
	//   - state: the camera state the character follows
	//   - drawLookAt: whether the look-at marker is drawn
	//
	// Returns:
	//   - error: ErrDrawListFull if the world outgrew the object buffer, ErrReleased after release
	Prepare(state camera.CameraState, drawLookAt bool) error

	// DrawCalls issues one draw call per prepared object, in composition order.
	// Must be called within a BeginFrame/EndFrame block on the renderer.
	//
	// Returns:
	//   - error: if a mesh or pipeline is missing
	DrawCalls() error

	// ReleaseMeshes frees the vertex and index buffers of every unit mesh. Safe to call more than once.
	ReleaseMeshes()

	// Release frees every GPU resource the scene created, meshes included.
	Release()
}

type scene struct {
	mu sync.RWMutex

	name   string
	cam    camera.Camera
	r      renderer.Renderer
	meshes mesh.Library

	capacity      int
	forest        []PlacementEntry
	groundTexture common.TextureStagingData
	sampler       common.SamplerStagingData

	composer Composer
	drawList DrawList
	ms       *transform.MatrixStack

	objectsBGP    bind_group_provider.BindGroupProvider
	ground        material.Material
	meshProviders map[string]bind_group_provider.BindGroupProvider
	bindGroups    map[string][]bind_group_provider.BindGroupProvider
	initialized   map[bind_group_provider.BindGroupProvider]bool

	released bool
}

var _ Scene = &scene{}

// NewScene registers the shading programs with the renderer, uploads every mesh the library has
// built and creates the bind groups each program declares.
//
// Parameters:
//   - name: the scene's identifier
//   - cam: the camera whose provider backs the globals block
//   - r: the renderer
//   - meshes: a library holding every unit mesh
//   - groundTexture: the staged ground texture
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the ready scene
//   - error: if a program, buffer or bind group could not be created
func NewScene(name string, cam camera.Camera, r renderer.Renderer, meshes mesh.Library, groundTexture common.TextureStagingData, options ...SceneBuilderOption) (Scene, error) {
	s := &scene{
		name:          name,
		cam:           cam,
		r:             r,
		meshes:        meshes,
		capacity:      1024,
		forest:        Forest,
		groundTexture: groundTexture,
		ms:            transform.NewMatrixStack(),
		meshProviders: make(map[string]bind_group_provider.BindGroupProvider),
		bindGroups:    make(map[string][]bind_group_provider.BindGroupProvider),
		initialized:   make(map[bind_group_provider.BindGroupProvider]bool),
	}
	for _, opt := range options {
		opt(s)
	}
	if s.capacity < 1 {
		return nil, fmt.Errorf("scene %q: draw list capacity %d", name, s.capacity)
	}

	s.drawList = NewDrawList(s.capacity)
	s.composer = NewComposer(s.drawList, WithForest(s.forest))
	s.objectsBGP = bind_group_provider.NewBindGroupProvider(name + "_objects")
	s.ground = material.NewMaterial(
		material.WithName(name+"_ground"),
		material.WithPipelineKey(PipelineTexture),
		material.WithDiffuseTexture(s.groundTexture),
		material.WithSampler(s.sampler),
		material.WithBindGroupProvider(bind_group_provider.NewBindGroupProvider(name+"_ground_material")),
	)

	programs, err := Programs()
	if err != nil {
		return nil, err
	}
	if err := r.RegisterPipelines(programs...); err != nil {
		return nil, err
	}
	if err := s.initMeshes(); err != nil {
		s.Release()
		return nil, err
	}
	for _, p := range programs {
		if err := s.initBindGroups(p); err != nil {
			s.Release()
			return nil, fmt.Errorf("scene %q: pipeline %s: %w", name, p.PipelineKey(), err)
		}
	}
	return s, nil
}

// initMeshes uploads each built mesh into its own provider.
func (s *scene) initMeshes() error {
	for name, m := range s.meshes.Meshes() {
		provider := bind_group_provider.NewBindGroupProvider("mesh_" + name)
		if err := s.r.InitMeshBuffers(provider, m.VertexData(), m.IndexData(), m.IndexCount()); err != nil {
			provider.Release()
			return fmt.Errorf("scene %q: mesh %s: %w", s.name, name, err)
		}
		s.meshProviders[name] = provider
	}
	return nil
}

// initBindGroups resolves a provider for every group the pipeline declares, creates any bind
// group not yet created and records the providers in group order.
func (s *scene) initBindGroups(p pipeline.Pipeline) error {
	decls := p.Declarations()

	maxGroup := -1
	groupProviders := make(map[int]bind_group_provider.BindGroupProvider)
	for _, decl := range decls {
		if decl.Group == nil {
			continue
		}
		g := *decl.Group
		if _, exists := groupProviders[g]; exists {
			continue
		}
		provider, err := s.providerFor(decl.Identity())
		if err != nil {
			return err
		}
		if !s.initialized[provider] && provider.BindGroup() == nil {
			if err := s.initProvider(provider, decl.Identity(), p, g, decls); err != nil {
				return err
			}
			s.initialized[provider] = true
		}
		groupProviders[g] = provider
		maxGroup = max(maxGroup, g)
	}

	groups := make([]bind_group_provider.BindGroupProvider, maxGroup+1)
	for g := range groups {
		provider, ok := groupProviders[g]
		if !ok {
			return fmt.Errorf("group %d has no declaration", g)
		}
		groups[g] = provider
	}
	s.bindGroups[p.PipelineKey()] = groups
	return nil
}

func (s *scene) providerFor(identity shader.AnnotationArg) (bind_group_provider.BindGroupProvider, error) {
	switch identity {
	case shader.AnnotationArgGlobals:
		return s.cam.BindGroupProvider(), nil
	case shader.AnnotationArgObject:
		return s.objectsBGP, nil
	case shader.AnnotationArgMaterial:
		return s.ground.BindGroupProvider(), nil
	}
	return nil, fmt.Errorf("no provider for %q", identity)
}

func (s *scene) initProvider(provider bind_group_provider.BindGroupProvider, identity shader.AnnotationArg, p pipeline.Pipeline, group int, decls []shader.Annotation) error {
	var sizeOverrides map[int]uint64
	switch identity {
	case shader.AnnotationArgObject:
		sizeOverrides = make(map[int]uint64)
		for _, decl := range decls {
			if decl.Group != nil && *decl.Group == group && decl.Binding != nil {
				sizeOverrides[*decl.Binding] = uint64(s.capacity * objectSize)
			}
		}
	case shader.AnnotationArgMaterial:
		for _, decl := range decls {
			if decl.Group == nil || *decl.Group != group || decl.Binding == nil {
				continue
			}
			staging, ok := s.ground.Staging(decl.Role())
			if !ok {
				return fmt.Errorf("material %s has no %s", s.ground.Name(), decl.Role())
			}
			var err error
			switch v := staging.(type) {
			case common.TextureStagingData:
				err = s.r.InitTextureView(provider, *decl.Binding, v)
			case common.SamplerStagingData:
				err = s.r.InitSampler(provider, *decl.Binding, v)
			}
			if err != nil {
				return err
			}
		}
	}
	return s.r.InitBindGroup(provider, p.BindGroupLayoutDescriptor(group), nil, sizeOverrides)
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Camera() camera.Camera {
	return s.cam
}

func (s *scene) Renderer() renderer.Renderer {
	return s.r
}

func (s *scene) DrawList() DrawList {
	return s.drawList
}

func (s *scene) Ground() material.Material {
	return s.ground
}

func (s *scene) Prepare(state camera.CameraState, drawLookAt bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return ErrReleased
	}
	s.drawList.Reset()
	if err := s.composer.Compose(s.ms, state, drawLookAt); err != nil {
		return fmt.Errorf("scene %q: %w", s.name, err)
	}
	s.r.WriteBuffers([]bind_group_provider.BufferWrite{{
		Provider: s.objectsBGP,
		Binding:  0,
		Data:     s.drawList.ObjectData(),
	}})
	return nil
}

func (s *scene) DrawCalls() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.released {
		return ErrReleased
	}
	for i, cmd := range s.drawList.Commands() {
		meshProvider, ok := s.meshProviders[cmd.Mesh]
		if !ok {
			return fmt.Errorf("scene %q: %w: %q", s.name, mesh.ErrUnknownDescriptor, cmd.Mesh)
		}
		groups, ok := s.bindGroups[cmd.PipelineKey]
		if !ok {
			return fmt.Errorf("scene %q: pipeline %q has no bind groups", s.name, cmd.PipelineKey)
		}
		if err := s.r.DrawCall(cmd.PipelineKey, meshProvider, 1, uint32(i), groups); err != nil {
			return err
		}
	}
	return nil
}

func (s *scene) ReleaseMeshes() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releaseMeshes()
}

func (s *scene) releaseMeshes() {
	for name, provider := range s.meshProviders {
		provider.Release()
		delete(s.meshProviders, name)
	}
	s.released = true
}

func (s *scene) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.releaseMeshes()
	s.objectsBGP.Release()
	s.ground.BindGroupProvider().Release()
	clear(s.bindGroups)
}
