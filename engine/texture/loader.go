// Package texture prepares images for upload: decoding, the procedural ground checker, mip chains,
// staging into tightly packed levels and WebP export for inspection.
package texture

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// decoders maps a lower-case file extension to its decoder.
// TGA has no signature, so formats are chosen by extension rather than sniffed.
var decoders = map[string]func(io.Reader) (image.Image, error){
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".gif":  gif.Decode,
	".tga":  tga.Decode,
	".bmp":  bmp.Decode,
	".tif":  tiff.Decode,
	".tiff": tiff.Decode,
	".webp": webp.Decode,
}

// Load decodes an image file. The format is chosen from the extension: PNG, JPEG, GIF, TGA,
// BMP, TIFF and WebP are supported. An empty path returns the default ground checker.
//
// Parameters:
//   - path: the image file, or "" for the checker
//
// Returns:
//   - image.Image: the decoded image
//   - error: if the file cannot be opened, has an unknown extension or cannot be decoded
func Load(path string) (image.Image, error) {
	if path == "" {
		return Checker(DefaultCheckerSize, DefaultCheckerCells, CheckerLight, CheckerDark), nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("texture: unknown extension %q: %s", ext, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("texture: %s has no pixels", path)
	}
	return img, nil
}
