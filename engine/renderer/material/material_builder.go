package material

import (
	"github.com/Carmen-Shannon/world-in-motion/common"
	"github.com/Carmen-Shannon/world-in-motion/engine/renderer/bind_group_provider"
)

// MaterialBuilderOption is a functional option for configuring a Material.
type MaterialBuilderOption func(*material)

// WithName sets the name of the material.
//
// Parameters:
//   - name: the material identifier
//
// Returns:
//   - MaterialBuilderOption: a function that sets the material's name
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithDiffuseTexture sets the staged diffuse texture.
//
// Parameters:
//   - texture: the staged mip chain
//
// Returns:
//   - MaterialBuilderOption: a function that sets the diffuse texture
func WithDiffuseTexture(texture common.TextureStagingData) MaterialBuilderOption {
	return func(m *material) {
		m.diffuseTexture = texture
	}
}

// WithSampler sets the diffuse sampler configuration.
func WithSampler(sampler common.SamplerStagingData) MaterialBuilderOption {
	return func(m *material) {
		m.sampler = sampler
	}
}

// WithPipelineKey sets the render pipeline key for the material.
//
// Parameters:
//   - key: the pipeline key
//
// Returns:
//   - MaterialBuilderOption: a function that sets the pipeline key
func WithPipelineKey(key string) MaterialBuilderOption {
	return func(m *material) {
		m.pipelineKey = key
	}
}

// WithBindGroupProvider sets the bind group provider for the material.
//
// Parameters:
//   - provider: the bind group provider the material is uploaded into
//
// Returns:
//   - MaterialBuilderOption: a function that sets the bind group provider
func WithBindGroupProvider(provider bind_group_provider.BindGroupProvider) MaterialBuilderOption {
	return func(m *material) {
		m.bindGroupProvider = provider
	}
}
