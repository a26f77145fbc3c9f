// Package render draws curve-text layouts onto raster images: an
// optional background photo, the curve stroke, and each character
// rotated to its placement angle.
package render

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	gtfont "github.com/go-text/typesetting/font"
)

// Font is a loaded TTF or OTF font file. One Font can create faces at
// multiple sizes and is safe for concurrent use once created.
type Font struct {
	data []byte
	sfnt *opentype.Font

	// go-text/typesetting view of the same data, parsed lazily; only
	// needed for shaping-based advance measurement.
	gtOnce sync.Once
	gtFont *gtfont.Font
	gtErr  error
}

// NewFont parses font data (TTF or OTF). The data slice is retained;
// callers must not modify it afterwards.
func NewFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("render: empty font data")
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("render: failed to parse font: %w", err)
	}
	return &Font{data: data, sfnt: parsed}, nil
}

// LoadFont reads and parses a font file.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: failed to read font file: %w", err)
	}
	return NewFont(data)
}

// Face creates a rasterization face at the given size in points
// (72 DPI, so points equal pixels).
func (f *Font) Face(size float64) (font.Face, error) {
	face, err := opentype.NewFace(f.sfnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("render: failed to create face: %w", err)
	}
	return face, nil
}

func (f *Font) typesettingFont() (*gtfont.Font, error) {
	f.gtOnce.Do(func() {
		face, err := gtfont.ParseTTF(bytes.NewReader(f.data))
		if err != nil {
			f.gtErr = err
			return
		}
		f.gtFont = face.Font
	})
	return f.gtFont, f.gtErr
}
