package render

import (
	"fmt"
	"image"
	"os"

	// Registered decoders for background images.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	pathtext "github.com/JumpeiSaito99/svg-pathtext-trial"
)

// LoadBackground decodes a background image file. PNG, JPEG, GIF and
// WebP are supported.
func LoadBackground(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("render: failed to open background image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("render: failed to decode background image: %w", err)
	}
	pathtext.Logger().Debug("render: loaded background",
		"path", path,
		"format", format,
		"bounds", img.Bounds())
	return img, nil
}
