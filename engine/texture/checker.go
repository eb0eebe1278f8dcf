package texture

import (
	"image"
	"image/color"
)

const (
	// DefaultCheckerSize is the edge length in pixels of the generated ground texture.
	DefaultCheckerSize = 128
	// DefaultCheckerCells is the number of squares along each edge of the generated ground texture.
	DefaultCheckerCells = 2
)

var (
	// CheckerLight is the color of the even squares.
	CheckerLight = color.RGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}
	// CheckerDark is the color of the odd squares.
	CheckerDark = color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff}
)

// Checker draws a square checkerboard.
//
// Parameters:
//   - size: edge length in pixels
//   - cells: squares per edge, clamped to [1, size]
//   - light: color of the square at the origin
//   - dark: color of the alternate squares
//
// Returns:
//   - *image.RGBA: the checkerboard
func Checker(size, cells int, light, dark color.RGBA) *image.RGBA {
	size = max(size, 1)
	cells = min(max(cells, 1), size)
	cell := size / cells

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			c := light
			if (x/cell+y/cell)%2 == 1 {
				c = dark
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
