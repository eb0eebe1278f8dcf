package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ComposerOption is a functional option for configuring a Composer.
type ComposerOption func(*composer)

// WithForest replaces the placement table Compose draws.
//
// Parameters:
//   - forest: the placement entries, drawn in order
//
// Returns:
//   - ComposerOption: option function to apply
func WithForest(forest []PlacementEntry) ComposerOption {
	return func(c *composer) {
		c.forest = forest
	}
}

// WithGroundScale sets the side length of the square ground plane.
//
// Parameters:
//   - scale: side length in world units
//
// Returns:
//   - ComposerOption: option function to apply
func WithGroundScale(scale float32) ComposerOption {
	return func(c *composer) {
		c.groundScale = scale
	}
}

// WithBuildingOrigin moves the building.
func WithBuildingOrigin(origin mgl32.Vec3) ComposerOption {
	return func(c *composer) {
		c.buildingOrigin = origin
	}
}
