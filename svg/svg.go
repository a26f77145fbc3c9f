// Package svg renders curve-text layouts as standalone SVG documents:
// an optional background image, the curve itself, and one positioned
// and rotated <text> element per character.
package svg

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	pathtext "github.com/JumpeiSaito99/svg-pathtext-trial"
)

// Defaults used for zero-valued Document fields.
const (
	defaultFontSize    = 24.0
	defaultFontFamily  = "sans-serif"
	defaultFill        = "#333333"
	defaultCurveStroke = "#999999"
	defaultCurveWidth  = 2.0
)

// Document describes one SVG rendering of a curve-text layout.
// Zero-valued style fields fall back to package defaults.
type Document struct {
	Width, Height float64

	// Background is an href for the backdrop image: a URL, a relative
	// path, or a data URI from EmbedImage. Empty means no backdrop.
	Background string

	// ShowCurve draws the curve itself as a stroked path under the
	// characters.
	ShowCurve   bool
	CurveStroke string
	CurveWidth  float64

	FontFamily string
	FontSize   float64
	Fill       string
}

// Render produces the SVG document for a curve and its character
// placements. The output is deterministic for identical inputs.
func (d Document) Render(curve *pathtext.Path, chars []pathtext.CharPlacement) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		ftoa(d.Width), ftoa(d.Height), ftoa(d.Width), ftoa(d.Height))
	b.WriteByte('\n')

	if d.Background != "" {
		fmt.Fprintf(&b, `  <image href="%s" x="0" y="0" width="%s" height="%s" preserveAspectRatio="xMidYMid slice"/>`,
			escape(d.Background), ftoa(d.Width), ftoa(d.Height))
		b.WriteByte('\n')
	}

	if d.ShowCurve && curve != nil && !curve.IsEmpty() {
		stroke := d.CurveStroke
		if stroke == "" {
			stroke = defaultCurveStroke
		}
		width := d.CurveWidth
		if width == 0 {
			width = defaultCurveWidth
		}
		fmt.Fprintf(&b, `  <path d="%s" fill="none" stroke="%s" stroke-width="%s"/>`,
			curve.Data(), escape(stroke), ftoa(width))
		b.WriteByte('\n')
	}

	family := d.FontFamily
	if family == "" {
		family = defaultFontFamily
	}
	size := d.FontSize
	if size == 0 {
		size = defaultFontSize
	}
	fill := d.Fill
	if fill == "" {
		fill = defaultFill
	}

	for _, c := range chars {
		fmt.Fprintf(&b, `  <text transform="translate(%s %s) rotate(%s)" text-anchor="middle" font-family="%s" font-size="%s" fill="%s">%s</text>`,
			ftoa(c.X), ftoa(c.Y), ftoa(c.Angle),
			escape(family), ftoa(size), escape(fill), escape(string(c.Char)))
		b.WriteByte('\n')
	}

	b.WriteString("</svg>\n")
	return b.String()
}

// EmbedImage reads an image file and returns it as a base64 data URI
// suitable for the Background field, so the SVG is self-contained.
// The media type is guessed from the file extension, defaulting to
// image/png.
func EmbedImage(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("svg: failed to read background image: %w", err)
	}
	mediaType := mime.TypeByExtension(filepath.Ext(path))
	if mediaType == "" {
		mediaType = "image/png"
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// ftoa formats a coordinate with the shortest decimal representation
// that round-trips, never using exponents.
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string {
	return escaper.Replace(s)
}
