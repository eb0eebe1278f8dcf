package scene

import (
	"github.com/Carmen-Shannon/world-in-motion/common"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithDrawListCapacity sets how many objects one frame may draw. The object buffer is sized to match.
// Defaults to 1024.
//
// Parameters:
//   - capacity: the maximum number of draws per frame
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithDrawListCapacity(capacity int) SceneBuilderOption {
	return func(s *scene) {
		s.capacity = capacity
	}
}

// WithPlacements replaces the forest placement table.
//
// Parameters:
//   - forest: the placement entries, drawn in order
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithPlacements(forest []PlacementEntry) SceneBuilderOption {
	return func(s *scene) {
		s.forest = forest
	}
}

// WithSampler sets the sampler the ground texture is read with. Zero fields keep linear
// filtering with repeat addressing.
func WithSampler(sampler common.SamplerStagingData) SceneBuilderOption {
	return func(s *scene) {
		s.sampler = sampler
	}
}
