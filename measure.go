package pathtext

import (
	"math"
	"sort"
)

// DefaultTolerance is the default maximum chord length, in coordinate
// units, used when flattening curve segments for measurement.
const DefaultTolerance = 1.0

// flattening step bounds per cubic segment
const (
	minFlattenSteps = 8
	maxFlattenSteps = 512
)

// Realized is a curve that has been flattened and measured, exposing
// arc-length sampling. It plays the role a rendering system's
// getTotalLength/getPointAtLength pair would: total length plus point
// and tangent lookup at any length along the curve.
//
// A Realized value is immutable after construction and safe for
// concurrent reads.
type Realized struct {
	pts []Point   // flattened polyline
	acc []float64 // acc[i] = arc length from start to pts[i]
}

// Realize flattens and measures a path with DefaultTolerance.
func Realize(p *Path) *Realized {
	return RealizeTolerance(p, DefaultTolerance)
}

// RealizeTolerance flattens a path into a polyline whose chords are at
// most roughly tol units long, and accumulates arc length over the
// result. Degenerate paths (empty, or a single MoveTo) realize to a
// zero-length curve.
func RealizeTolerance(p *Path, tol float64) *Realized {
	r := &Realized{}
	if p == nil || p.IsEmpty() {
		return r
	}
	if tol <= 0 {
		tol = DefaultTolerance
	}

	for _, el := range p.Elements() {
		switch e := el.(type) {
		case MoveTo:
			r.appendPoint(e.Point, true)
		case LineTo:
			r.appendPoint(e.Point, false)
		case CubicTo:
			if len(r.pts) == 0 {
				// A path starting with a cubic has no current point;
				// treat the segment start as implicit.
				break
			}
			c := CubicBez{
				P0: r.pts[len(r.pts)-1],
				P1: e.Control1,
				P2: e.Control2,
				P3: e.Point,
			}
			steps := flattenSteps(c, tol)
			for s := 1; s <= steps; s++ {
				t := float64(s) / float64(steps)
				r.appendPoint(c.Eval(t), false)
			}
		}
	}

	Logger().Debug("pathtext: realized curve",
		"points", len(r.pts),
		"length", r.Length())
	return r
}

// flattenSteps picks a subdivision count for one cubic so that chords
// stay near tol units long.
func flattenSteps(c CubicBez, tol float64) int {
	est := c.controlPolygonLength()
	steps := int(math.Ceil(est / tol))
	if steps < minFlattenSteps {
		steps = minFlattenSteps
	}
	if steps > maxFlattenSteps {
		steps = maxFlattenSteps
	}
	return steps
}

func (r *Realized) appendPoint(pt Point, isMove bool) {
	if len(r.pts) == 0 {
		r.pts = append(r.pts, pt)
		r.acc = append(r.acc, 0)
		return
	}
	prev := r.pts[len(r.pts)-1]
	d := prev.Distance(pt)
	if isMove {
		// Subsequent MoveTo elements break the pen but the measured
		// curve stays continuous; count the jump as zero length.
		d = 0
	}
	r.pts = append(r.pts, pt)
	r.acc = append(r.acc, r.acc[len(r.acc)-1]+d)
}

// Points returns the flattened polyline of the realized curve. The
// slice is shared with the receiver and must not be modified.
func (r *Realized) Points() []Point {
	if r == nil {
		return nil
	}
	return r.pts
}

// Length returns the total arc length of the realized curve.
func (r *Realized) Length() float64 {
	if r == nil || len(r.acc) == 0 {
		return 0
	}
	return r.acc[len(r.acc)-1]
}

// PointAtLength returns the point at arc length l from the start of
// the curve, together with the unit tangent direction there. The
// length is clamped to [0, Length()]. For a zero-length curve the
// start point (if any) and a zero tangent are returned.
func (r *Realized) PointAtLength(l float64) (Point, Point) {
	if r == nil || len(r.pts) == 0 {
		return Point{}, Point{}
	}
	total := r.Length()
	if total == 0 {
		return r.pts[0], Point{}
	}
	if l <= 0 {
		return r.pts[0], r.segmentDir(0)
	}
	if l >= total {
		return r.pts[len(r.pts)-1], r.segmentDir(len(r.pts) - 2)
	}

	// First index with acc[i] >= l; the containing chord is [i-1, i].
	i := sort.SearchFloat64s(r.acc, l)
	if i == 0 {
		i = 1
	}
	seg := Line{P0: r.pts[i-1], P1: r.pts[i]}
	segLen := r.acc[i] - r.acc[i-1]
	if segLen == 0 {
		return seg.P0, r.segmentDir(i - 1)
	}
	t := (l - r.acc[i-1]) / segLen
	return seg.Eval(t), seg.P1.Sub(seg.P0).Normalize()
}

// segmentDir returns the unit direction of the chord starting at
// index i, skipping forward past zero-length chords.
func (r *Realized) segmentDir(i int) Point {
	if i < 0 {
		i = 0
	}
	for ; i < len(r.pts)-1; i++ {
		d := r.pts[i+1].Sub(r.pts[i])
		if d.Length() > 0 {
			return d.Normalize()
		}
	}
	// Walk backward for the tail of the curve.
	for i = len(r.pts) - 1; i > 0; i-- {
		d := r.pts[i].Sub(r.pts[i-1])
		if d.Length() > 0 {
			return d.Normalize()
		}
	}
	return Point{}
}
