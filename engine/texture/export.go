package texture

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/HugoSmits86/nativewebp"
)

// Export encodes img as lossless WebP.
func Export(w io.Writer, img image.Image) error {
	if err := nativewebp.Encode(w, img, nil); err != nil {
		return fmt.Errorf("texture: encode webp: %w", err)
	}
	return nil
}

// ExportFile writes img to path as WebP, replacing any existing file.
//
// Parameters:
//   - path: destination file
//   - img: the image to write
//
// Returns:
//   - error: if the file cannot be created or encoded
func ExportFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("texture: create %s: %w", path, err)
	}
	if err := Export(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("texture: close %s: %w", path, err)
	}
	return nil
}
