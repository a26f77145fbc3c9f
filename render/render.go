package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	pathtext "github.com/JumpeiSaito99/svg-pathtext-trial"
)

// Options configures a Renderer. Zero values fall back to defaults.
type Options struct {
	Width, Height int

	// BackgroundColor fills the canvas before anything else is drawn.
	// Default white. A background image, when given to Render, is
	// scaled over it.
	BackgroundColor color.Color

	// ShowCurve draws the curve itself under the characters.
	ShowCurve  bool
	CurveColor color.Color
	CurveWidth float64

	TextColor color.Color
	FontSize  float64
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 600
	}
	if o.BackgroundColor == nil {
		o.BackgroundColor = color.White
	}
	if o.CurveColor == nil {
		o.CurveColor = color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}
	}
	if o.CurveWidth <= 0 {
		o.CurveWidth = 2
	}
	if o.TextColor == nil {
		o.TextColor = color.Black
	}
	if o.FontSize <= 0 {
		o.FontSize = 24
	}
	return o
}

// Renderer rasterizes curve-text layouts. It is cheap to create and
// holds no mutable state between Render calls.
type Renderer struct {
	font *Font
	opts Options
}

// New creates a Renderer drawing with the given font.
func New(font *Font, opts Options) *Renderer {
	return &Renderer{font: font, opts: opts.withDefaults()}
}

// Render draws the layout onto a fresh image: background fill, the
// optional background image scaled to cover the canvas, the curve
// stroke, then one rotated character per placement. A nil background
// and an empty placement list are both fine.
func (r *Renderer) Render(background image.Image, rc *pathtext.Realized, chars []pathtext.CharPlacement) (*image.RGBA, error) {
	dst := image.NewRGBA(image.Rect(0, 0, r.opts.Width, r.opts.Height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(r.opts.BackgroundColor), image.Point{}, draw.Src)

	if background != nil {
		xdraw.BiLinear.Scale(dst, dst.Bounds(), background, background.Bounds(), xdraw.Over, nil)
	}

	if r.opts.ShowCurve && rc != nil {
		r.strokeCurve(dst, rc.Points())
	}

	if len(chars) > 0 {
		face, err := r.font.Face(r.opts.FontSize)
		if err != nil {
			return nil, err
		}
		defer face.Close()
		for _, c := range chars {
			r.drawChar(dst, face, c)
		}
	}

	pathtext.Logger().Debug("render: rasterized layout",
		"chars", len(chars),
		"size", dst.Bounds().Size())
	return dst, nil
}

// strokeCurve fills one thin quad per polyline chord. The flattened
// chords are at most about a unit long, so bevel gaps between
// consecutive quads stay below a pixel.
func (r *Renderer) strokeCurve(dst *image.RGBA, pts []pathtext.Point) {
	if len(pts) < 2 {
		return
	}
	ras := vector.NewRasterizer(r.opts.Width, r.opts.Height)
	half := r.opts.CurveWidth / 2
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := b.Sub(a)
		if d.Length() == 0 {
			continue
		}
		n := pathtext.Pt(-d.Y, d.X).Normalize().Mul(half)
		ras.MoveTo(float32(a.X+n.X), float32(a.Y+n.Y))
		ras.LineTo(float32(b.X+n.X), float32(b.Y+n.Y))
		ras.LineTo(float32(b.X-n.X), float32(b.Y-n.Y))
		ras.LineTo(float32(a.X-n.X), float32(a.Y-n.Y))
		ras.ClosePath()
	}
	ras.Draw(dst, dst.Bounds(), image.NewUniform(r.opts.CurveColor), image.Point{})
}

// drawChar rasterizes one character into a tight buffer and composites
// it onto dst, rotated around its anchor. The anchor is the midpoint
// of the advance on the baseline, matching SVG's text-anchor="middle"
// with the baseline sitting on the curve.
func (r *Renderer) drawChar(dst *image.RGBA, face font.Face, c pathtext.CharPlacement) {
	s := string(c.Char)
	bounds, adv := font.BoundString(face, s)
	minX := bounds.Min.X.Floor()
	minY := bounds.Min.Y.Floor()
	maxX := bounds.Max.X.Ceil()
	maxY := bounds.Max.Y.Ceil()
	if maxX <= minX || maxY <= minY {
		return // whitespace, nothing to draw
	}

	glyph := image.NewRGBA(image.Rect(0, 0, maxX-minX, maxY-minY))
	d := &font.Drawer{
		Dst:  glyph,
		Src:  image.NewUniform(r.opts.TextColor),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(-minX), Y: fixed.I(-minY)},
	}
	d.DrawString(s)

	// Map glyph buffer pixels into the destination: shift the anchor
	// (half the advance on the baseline) to the origin, rotate, then
	// translate to the placement position.
	theta := c.Angle * math.Pi / 180
	sin, cos := math.Sincos(theta)
	ox := float64(minX) - fixedToFloat(adv)/2
	oy := float64(minY)
	m := f64.Aff3{
		cos, -sin, c.X + cos*ox - sin*oy,
		sin, cos, c.Y + sin*ox + cos*oy,
	}
	xdraw.BiLinear.Transform(dst, m, glyph, glyph.Bounds(), xdraw.Over, nil)
}
