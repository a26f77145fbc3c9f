package pathtext

// BuildCurve converts an ordered anchor sequence into a path that
// interpolates every anchor in order.
//
// The shape of the result depends on the anchor count:
//
//   - 0 anchors: an empty path.
//   - 1 anchor: a single MoveTo with no extent.
//   - 2 anchors: a straight line segment.
//   - 3 or more: a smooth Catmull-Rom style spline, one cubic Bezier
//     segment per consecutive anchor pair.
//
// For interior segments the Bezier control points are derived from the
// neighboring anchors:
//
//	CP1 = P1 + (P2-P0)/6
//	CP2 = P2 - (P3-P1)/6
//
// At the ends, where a neighbor is missing, a phantom point is made by
// reflecting the segment: P0' = P1 - (P2-P1) before the first segment
// and P3' = P2 + (P2-P1) after the last. The reflection makes the end
// segments start and finish with the local chord direction instead of
// curling toward an arbitrary default.
//
// BuildCurve is a pure function: identical anchors always produce an
// identical path. Duplicate or coincident anchors are fine and simply
// contribute zero-length segments.
func BuildCurve(anchors []Point) *Path {
	p := NewPath()
	switch len(anchors) {
	case 0:
		return p
	case 1:
		p.MoveTo(anchors[0].X, anchors[0].Y)
		return p
	case 2:
		p.MoveTo(anchors[0].X, anchors[0].Y)
		p.LineTo(anchors[1].X, anchors[1].Y)
		return p
	}

	p.MoveTo(anchors[0].X, anchors[0].Y)
	for i := 0; i < len(anchors)-1; i++ {
		p1 := anchors[i]
		p2 := anchors[i+1]

		var p0 Point
		if i == 0 {
			p0 = p1.Sub(p2.Sub(p1))
		} else {
			p0 = anchors[i-1]
		}

		var p3 Point
		if i+2 < len(anchors) {
			p3 = anchors[i+2]
		} else {
			p3 = p2.Add(p2.Sub(p1))
		}

		cp1 := p1.Add(p2.Sub(p0).Div(6))
		cp2 := p2.Sub(p3.Sub(p1).Div(6))
		p.CubicTo(cp1.X, cp1.Y, cp2.X, cp2.Y, p2.X, p2.Y)
	}
	return p
}
