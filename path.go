package pathtext

import (
	"strconv"
	"strings"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Path represents a vector path.
type Path struct {
	elements []PathElement
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 8),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty returns true if the path contains no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Start returns the first point of the path and true, or a zero point
// and false for an empty path.
func (p *Path) Start() (Point, bool) {
	if len(p.elements) == 0 {
		return Point{}, false
	}
	switch e := p.elements[0].(type) {
	case MoveTo:
		return e.Point, true
	case LineTo:
		return e.Point, true
	case CubicTo:
		return e.Point, true
	}
	return Point{}, false
}

// Data returns the path as SVG path data ("d" attribute syntax).
// The output is deterministic: identical paths produce identical
// strings, byte for byte.
func (p *Path) Data() string {
	var b strings.Builder
	for i, el := range p.elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch e := el.(type) {
		case MoveTo:
			b.WriteString("M ")
			writeCoord(&b, e.Point)
		case LineTo:
			b.WriteString("L ")
			writeCoord(&b, e.Point)
		case CubicTo:
			b.WriteString("C ")
			writeCoord(&b, e.Control1)
			b.WriteByte(' ')
			writeCoord(&b, e.Control2)
			b.WriteByte(' ')
			writeCoord(&b, e.Point)
		}
	}
	return b.String()
}

// writeCoord writes "x y" using the shortest decimal representation
// that round-trips. The 'f' format never emits exponents, which SVG
// path data does not accept.
func writeCoord(b *strings.Builder, pt Point) {
	b.WriteString(strconv.FormatFloat(pt.X, 'f', -1, 64))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(pt.Y, 'f', -1, 64))
}
