package render

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	pathtext "github.com/JumpeiSaito99/svg-pathtext-trial"
)

// shaperPool pools HarfbuzzShaper instances. The shaper has internal
// mutable buffers and is not safe for concurrent use, but reusing one
// across sequential calls avoids reallocation.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// Advances returns the horizontal advance width, in pixels, of each
// rune of text at the given size, measured by HarfBuzz shaping via
// go-text/typesetting. The result feeds pathtext.PlaceProportional so
// wide glyphs claim proportionally more of the curve.
//
// Each rune is shaped as its own run: per-character placement has no
// use for cross-character ligatures, and an isolated run keeps the
// rune-to-advance mapping exact. Returns nil when the font cannot be
// parsed by the shaping backend; callers fall back to equal slots.
func (f *Font) Advances(text string, size float64) []float64 {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	gt, err := f.typesettingFont()
	if err != nil {
		pathtext.Logger().Warn("render: shaping backend rejected font", "err", err)
		return nil
	}

	// font.Face is not safe for concurrent use; make one per call
	// around the shared thread-safe Font.
	face := gtfont.NewFace(gt)

	shaper := shaperPool.Get().(*shaping.HarfbuzzShaper)
	defer shaperPool.Put(shaper)

	out := make([]float64, len(runes))
	for i, r := range runes {
		input := shaping.Input{
			Text:      []rune{r},
			RunStart:  0,
			RunEnd:    1,
			Direction: di.DirectionLTR,
			Face:      face,
			Size:      fixed.Int26_6(size * 64),
			Script:    language.LookupScript(r),
			Language:  language.NewLanguage("en"),
		}
		output := shaper.Shape(input)
		var adv float64
		for _, g := range output.Glyphs {
			adv += fixedToFloat(g.Advance)
		}
		out[i] = adv
	}
	return out
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
