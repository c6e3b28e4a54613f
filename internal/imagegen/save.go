package imagegen

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// SavePNG encodes img as PNG at path, creating or truncating the file.
// Unlike generation failures, a write failure here is an environment fault
// and callers abort on it.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image file: %w", err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}

	return f.Close()
}
