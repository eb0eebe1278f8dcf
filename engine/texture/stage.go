package texture

import (
	"image"

	"github.com/Carmen-Shannon/world-in-motion/common"
)

// Stage packs a mip chain into staging data ready for upload. Row padding in the source
// images is removed so every level is exactly width*height*4 bytes.
//
// Parameters:
//   - chain: the mip chain as returned by MipChain
//
// Returns:
//   - common.TextureStagingData: the packed levels and the level 0 dimensions
func Stage(chain []*image.RGBA) common.TextureStagingData {
	if len(chain) == 0 {
		return common.TextureStagingData{}
	}

	b := chain[0].Bounds()
	data := common.TextureStagingData{
		Width:  uint32(b.Dx()),
		Height: uint32(b.Dy()),
		Levels: make([][]byte, len(chain)),
	}
	for i, level := range chain {
		lb := level.Bounds()
		row := lb.Dx() * 4
		packed := make([]byte, row*lb.Dy())
		for y := range lb.Dy() {
			off := level.PixOffset(lb.Min.X, lb.Min.Y+y)
			copy(packed[y*row:(y+1)*row], level.Pix[off:off+row])
		}
		data.Levels[i] = packed
	}
	return data
}

// Prepare loads path (or the checker for "") and returns its staged mip chain.
//
// Parameters:
//   - path: the image file, or "" for the checker
//
// Returns:
//   - common.TextureStagingData: the staged chain
//   - error: if the image cannot be loaded
func Prepare(path string) (common.TextureStagingData, error) {
	img, err := Load(path)
	if err != nil {
		return common.TextureStagingData{}, err
	}
	return Stage(MipChain(img)), nil
}
