package pathtext

import (
	"math"
	"testing"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

func TestBuildCurve_Degenerate(t *testing.T) {
	tests := []struct {
		name    string
		anchors []Point
		want    []PathElement
	}{
		{
			name:    "empty",
			anchors: nil,
			want:    []PathElement{},
		},
		{
			name:    "single point",
			anchors: []Point{Pt(10, 20)},
			want:    []PathElement{MoveTo{Point: Pt(10, 20)}},
		},
		{
			name:    "two points",
			anchors: []Point{Pt(0, 0), Pt(100, 50)},
			want: []PathElement{
				MoveTo{Point: Pt(0, 0)},
				LineTo{Point: Pt(100, 50)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildCurve(tt.anchors).Elements()
			if len(got) != len(tt.want) {
				t.Fatalf("got %d elements, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("element %d = %#v, want %#v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBuildCurve_ControlPoints(t *testing.T) {
	anchors := []Point{
		Pt(100, 400),
		Pt(300, 300),
		Pt(500, 270),
		Pt(700, 300),
	}
	p := BuildCurve(anchors)
	els := p.Elements()
	if len(els) != 4 {
		t.Fatalf("got %d elements, want MoveTo + 3 cubics", len(els))
	}
	if mv, ok := els[0].(MoveTo); !ok || mv.Point != anchors[0] {
		t.Fatalf("first element = %#v, want MoveTo to first anchor", els[0])
	}

	// Interior segment 1 uses its real neighbors on both sides.
	// End segments use phantom points reflected across the boundary:
	// before segment 0 the phantom is (-100,500), after segment 2 it
	// is (900,330).
	want := []CubicTo{
		{
			Control1: Pt(100+400.0/6, 400-200.0/6),
			Control2: Pt(300-400.0/6, 300+130.0/6),
			Point:    Pt(300, 300),
		},
		{
			Control1: Pt(300+400.0/6, 300-130.0/6),
			Control2: Pt(500-400.0/6, 270),
			Point:    Pt(500, 270),
		},
		{
			Control1: Pt(500+400.0/6, 270),
			Control2: Pt(700-400.0/6, 300-60.0/6),
			Point:    Pt(700, 300),
		},
	}
	for i, w := range want {
		c, ok := els[i+1].(CubicTo)
		if !ok {
			t.Fatalf("element %d = %#v, want CubicTo", i+1, els[i+1])
		}
		if !c.Control1.Approx(w.Control1, 1e-9) ||
			!c.Control2.Approx(w.Control2, 1e-9) ||
			!c.Point.Approx(w.Point, 1e-9) {
			t.Errorf("segment %d = %+v, want %+v", i, c, w)
		}
	}
}

func TestBuildCurve_StartsAtFirstAnchor(t *testing.T) {
	tests := []struct {
		name    string
		anchors []Point
	}{
		{"one", []Point{Pt(5, 5)}},
		{"two", []Point{Pt(5, 5), Pt(9, 1)}},
		{"three", []Point{Pt(5, 5), Pt(9, 1), Pt(20, 8)}},
		{"duplicates", []Point{Pt(5, 5), Pt(5, 5), Pt(5, 5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, ok := BuildCurve(tt.anchors).Start()
			if !ok {
				t.Fatal("expected a start point")
			}
			if start != tt.anchors[0] {
				t.Errorf("start = %v, want %v", start, tt.anchors[0])
			}
		})
	}
}

func TestBuildCurve_InterpolatesEveryAnchor(t *testing.T) {
	anchors := []Point{Pt(0, 0), Pt(50, 80), Pt(120, 40), Pt(200, 90), Pt(260, 30)}
	els := BuildCurve(anchors).Elements()
	if len(els) != len(anchors) {
		t.Fatalf("got %d elements, want %d", len(els), len(anchors))
	}
	for i := 1; i < len(els); i++ {
		c := els[i].(CubicTo)
		if c.Point != anchors[i] {
			t.Errorf("segment %d ends at %v, want anchor %v", i-1, c.Point, anchors[i])
		}
	}
}

func TestBuildCurve_Pure(t *testing.T) {
	anchors := []Point{Pt(100, 400), Pt(300, 300), Pt(500, 270)}
	a := BuildCurve(anchors).Data()
	b := BuildCurve(anchors).Data()
	if a != b {
		t.Errorf("two builds differ:\n%s\n%s", a, b)
	}
}
