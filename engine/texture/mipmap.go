package texture

import (
	"image"

	"golang.org/x/image/draw"
)

// MipLevels returns the number of levels in a full chain for the given size, down to 1x1.
func MipLevels(width, height int) int {
	n := 1
	for w, h := width, height; w > 1 || h > 1; n++ {
		w, h = max(w/2, 1), max(h/2, 1)
	}
	return n
}

// MipChain builds the full mip chain of img. Level 0 is a copy of img and each following
// level halves both dimensions (never below 1) using bilinear filtering of the previous level.
//
// Parameters:
//   - img: the source image
//
// Returns:
//   - []*image.RGBA: the levels, largest first
func MipChain(img image.Image) []*image.RGBA {
	b := img.Bounds()
	base := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(base, base.Bounds(), img, b.Min, draw.Src)

	chain := make([]*image.RGBA, 0, MipLevels(b.Dx(), b.Dy()))
	chain = append(chain, base)
	for prev := base; prev.Bounds().Dx() > 1 || prev.Bounds().Dy() > 1; {
		w, h := max(prev.Bounds().Dx()/2, 1), max(prev.Bounds().Dy()/2, 1)
		next := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.BiLinear.Scale(next, next.Bounds(), prev, prev.Bounds(), draw.Src, nil)
		chain = append(chain, next)
		prev = next
	}
	return chain
}
