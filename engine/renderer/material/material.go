package material

import (
	"github.com/Carmen-Shannon/world-in-motion/common"
	"github.com/Carmen-Shannon/world-in-motion/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/world-in-motion/engine/renderer/shader"
)

// material is the implementation of the Material interface.
type material struct {
	name              string
	pipelineKey       string
	diffuseTexture    common.TextureStagingData
	sampler           common.SamplerStagingData
	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Material is the surface a textured program draws with: the staged diffuse texture, its
// sampler and the bind group provider they are uploaded into.
//
// The staging data is read once when the provider is initialized; the pipeline key and provider
// are mutable so the scene can attach them after construction.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// DiffuseTexture returns the staged mip chain of the diffuse texture.
	DiffuseTexture() common.TextureStagingData

	// Sampler returns the configuration of the diffuse sampler.
	Sampler() common.SamplerStagingData

	// HasDiffuseTexture reports whether a texture with at least one pixel was staged.
	HasDiffuseTexture() bool

	// Staging returns what a provider binding with the given role needs, keyed by role.
	//
	// Parameters:
	//   - role: a provider binding role such as shader.AnnotationArgDiffuseTexture
	//
	// Returns:
	//   - any: common.TextureStagingData or common.SamplerStagingData
	//   - bool: false if the material has nothing for the role
	Staging(role shader.AnnotationArg) (any, bool)

	// PipelineKey retrieves the key identifying the render pipeline this material uses.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// BindGroupProvider retrieves the bind group provider holding GPU-side resources for this material.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the bind group provider, or nil if not yet attached
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// SetPipelineKey sets the render pipeline key for this material.
	//
	// Parameters:
	//   - key: the pipeline key to associate with this material
	SetPipelineKey(key string)

	// SetBindGroupProvider sets the bind group provider for this material.
	//
	// Parameters:
	//   - provider: the bind group provider containing GPU resources for this material
	SetBindGroupProvider(provider bind_group_provider.BindGroupProvider)
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) DiffuseTexture() common.TextureStagingData {
	return m.diffuseTexture
}

func (m *material) Sampler() common.SamplerStagingData {
	return m.sampler
}

func (m *material) HasDiffuseTexture() bool {
	return len(m.diffuseTexture.Levels) > 0 && m.diffuseTexture.Width > 0 && m.diffuseTexture.Height > 0
}

func (m *material) Staging(role shader.AnnotationArg) (any, bool) {
	switch role {
	case shader.AnnotationArgDiffuseTexture:
		if !m.HasDiffuseTexture() {
			return nil, false
		}
		return m.diffuseTexture, true
	case shader.AnnotationArgDiffuseSampler:
		return m.sampler, true
	}
	return nil, false
}

func (m *material) PipelineKey() string {
	return m.pipelineKey
}

func (m *material) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return m.bindGroupProvider
}

func (m *material) SetPipelineKey(key string) {
	m.pipelineKey = key
}

func (m *material) SetBindGroupProvider(provider bind_group_provider.BindGroupProvider) {
	m.bindGroupProvider = provider
}
