// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// TextureStagingData holds RGBA pixel data for a texture binding pending GPU upload.
// Level 0 is the full-size image; each following level halves both dimensions (minimum 1).
type TextureStagingData struct {
	// Levels holds the tightly packed RGBA8 pixels of every mip level, 4 bytes per pixel.
	Levels [][]byte
	// Width is the width of level 0 in pixels.
	Width uint32
	// Height is the height of level 0 in pixels.
	Height uint32
}

// LevelSize returns the dimensions of the given mip level.
//
// Parameters:
//   - level: the mip level index
//
// Returns:
//   - uint32: width of the level in pixels
//   - uint32: height of the level in pixels
func (t TextureStagingData) LevelSize(level int) (uint32, uint32) {
	return max(t.Width>>uint(level), 1), max(t.Height>>uint(level), 1)
}

// SamplerStagingData holds the configuration for a sampler binding pending GPU creation.
// Zero fields fall back to linear filtering with repeat addressing.
type SamplerStagingData struct {
	// AddressModeU, AddressModeV, AddressModeW specify the addressing mode for texture coordinates outside the [0, 1] range.
	AddressModeU, AddressModeV, AddressModeW wgpu.AddressMode
	// MagFilter and MinFilter specify the filtering mode for magnification and minification.
	MagFilter, MinFilter wgpu.FilterMode
	// MipmapFilter specifies the filtering mode for mipmap level selection.
	MipmapFilter wgpu.MipmapFilterMode
	// LodMinClamp and LodMaxClamp specify the minimum and maximum level of detail (LOD) for mipmapping.
	LodMinClamp, LodMaxClamp float32
	// MaxAnisotropy specifies the maximum anisotropy level for anisotropic filtering.
	MaxAnisotropy uint16
}
