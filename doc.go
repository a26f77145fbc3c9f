// Package pathtext lays out text along a smooth curve defined by a
// small set of anchor points.
//
// The package has three moving parts:
//
//   - BuildCurve converts an ordered anchor sequence into a piecewise
//     cubic Bézier path that interpolates every anchor.
//   - Realize flattens that path and measures it, yielding arc-length
//     sampling (total length, point and tangent at any length).
//   - PlaceCharacters distributes the characters of a string evenly
//     along the measured curve and computes a position and rotation
//     angle for each one.
//
// All three are pure functions of their inputs: the same anchors and
// text always produce the same geometry and placements, and nothing is
// cached between calls. Callers are expected to re-run the pipeline
// whenever an anchor, the text, or the orientation flag changes.
//
// Rendering is out of scope for this package; the svg and render
// subpackages consume its output to produce SVG documents and raster
// images respectively.
package pathtext
