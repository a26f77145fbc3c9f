package pathtext

import "math"

// tangentStep is the arc-length offset used to estimate the tangent
// angle at a sample by finite differences.
const tangentStep = 0.1

// CharPlacement is the render instruction for one character: where to
// put it and how much to rotate it, in degrees.
type CharPlacement struct {
	Char  rune
	X, Y  float64
	Angle float64
}

// PlaceCharacters distributes the characters of text evenly along a
// realized curve.
//
// The total arc length T is divided into one equal slot per character
// and character i is sampled at the midpoint of its slot,
// L_i = (i+0.5)*T/n. The rotation angle is the direction of the chord
// from L_i to a point slightly further along the curve, in degrees.
// With followCurve false every angle is forced to 0; positions are
// unaffected.
//
// Splitting is per rune, not per grapheme cluster, so combining marks
// are placed as separate characters.
//
// An empty text, a nil or degenerate curve, or a zero total length all
// yield an empty result. Otherwise the output has exactly one entry
// per rune, in input order. Nothing is cached: every call recomputes
// placements from the current inputs.
func PlaceCharacters(rc *Realized, text string, followCurve bool) []CharPlacement {
	runes := []rune(text)
	total := rc.Length()
	if len(runes) == 0 || total == 0 {
		return nil
	}

	slot := total / float64(len(runes))
	out := make([]CharPlacement, 0, len(runes))
	for i, r := range runes {
		l := (float64(i) + 0.5) * slot
		out = append(out, placeAt(rc, r, l, total, followCurve))
	}
	return out
}

// PlaceProportional distributes characters along the curve using
// per-character advance widths instead of equal slots, so that wide
// glyphs claim more of the curve than narrow ones. The advances are
// scaled so the whole text spans the whole curve; character i is
// centered within its scaled advance.
//
// advances must hold one width per rune of text. On a length mismatch,
// or when every advance is zero, placement falls back to the equal
// slots of PlaceCharacters.
func PlaceProportional(rc *Realized, text string, advances []float64, followCurve bool) []CharPlacement {
	runes := []rune(text)
	total := rc.Length()
	if len(runes) == 0 || total == 0 {
		return nil
	}

	var sum float64
	for _, a := range advances {
		sum += a
	}
	if len(advances) != len(runes) || sum <= 0 {
		Logger().Warn("pathtext: unusable advances, falling back to equal slots",
			"runes", len(runes),
			"advances", len(advances))
		return PlaceCharacters(rc, text, followCurve)
	}

	scale := total / sum
	out := make([]CharPlacement, 0, len(runes))
	var cum float64
	for i, r := range runes {
		l := (cum + advances[i]/2) * scale
		out = append(out, placeAt(rc, r, l, total, followCurve))
		cum += advances[i]
	}
	return out
}

// placeAt samples one character at arc length l.
func placeAt(rc *Realized, r rune, l, total float64, followCurve bool) CharPlacement {
	pt, _ := rc.PointAtLength(l)
	var angle float64
	if followCurve {
		ahead, _ := rc.PointAtLength(math.Min(l+tangentStep, total))
		angle = math.Atan2(ahead.Y-pt.Y, ahead.X-pt.X) * 180 / math.Pi
	}
	return CharPlacement{Char: r, X: pt.X, Y: pt.Y, Angle: angle}
}
