package pathtext

import (
	"math"
	"reflect"
	"testing"
)

func lineCurve(a, b Point) *Realized {
	p := NewPath()
	p.MoveTo(a.X, a.Y)
	p.LineTo(b.X, b.Y)
	return Realize(p)
}

func TestPlaceCharacters_EqualSlots(t *testing.T) {
	rc := lineCurve(Pt(0, 0), Pt(100, 0))
	got := PlaceCharacters(rc, "abc", true)
	if len(got) != 3 {
		t.Fatalf("got %d placements, want 3", len(got))
	}

	wantX := []float64{100.0 / 6, 50, 500.0 / 6}
	for i, pl := range got {
		if !almostEqual(pl.X, wantX[i], 1e-9) || !almostEqual(pl.Y, 0, 1e-9) {
			t.Errorf("char %d at (%v, %v), want (%v, 0)", i, pl.X, pl.Y, wantX[i])
		}
		if !almostEqual(pl.Angle, 0, 1e-9) {
			t.Errorf("char %d angle = %v, want 0 on a horizontal line", i, pl.Angle)
		}
		if pl.Char != rune("abc"[i]) {
			t.Errorf("char %d rune = %q, want %q", i, pl.Char, "abc"[i])
		}
	}
}

func TestPlaceCharacters_DiagonalAngle(t *testing.T) {
	rc := lineCurve(Pt(0, 0), Pt(100, 100))
	got := PlaceCharacters(rc, "xy", true)
	if len(got) != 2 {
		t.Fatalf("got %d placements, want 2", len(got))
	}
	for i, pl := range got {
		if !almostEqual(pl.Angle, 45, 1e-6) {
			t.Errorf("char %d angle = %v, want 45", i, pl.Angle)
		}
	}
}

func TestPlaceCharacters_FollowCurveOff(t *testing.T) {
	rc := Realize(BuildCurve([]Point{Pt(0, 0), Pt(50, 80), Pt(120, 40)}))
	got := PlaceCharacters(rc, "curve", false)
	if len(got) != 5 {
		t.Fatalf("got %d placements, want 5", len(got))
	}
	withRotation := PlaceCharacters(rc, "curve", true)
	for i, pl := range got {
		if pl.Angle != 0 {
			t.Errorf("char %d angle = %v, want 0 with rotation off", i, pl.Angle)
		}
		if pl.X != withRotation[i].X || pl.Y != withRotation[i].Y {
			t.Errorf("char %d position changed by rotation flag", i)
		}
	}
}

func TestPlaceCharacters_Empty(t *testing.T) {
	tests := []struct {
		name string
		rc   *Realized
		text string
	}{
		{"empty text", lineCurve(Pt(0, 0), Pt(10, 0)), ""},
		{"nil curve", nil, "hi"},
		{"empty curve", Realize(NewPath()), "hi"},
		{"zero length", lineCurve(Pt(5, 5), Pt(5, 5)), "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlaceCharacters(tt.rc, tt.text, true); len(got) != 0 {
				t.Errorf("got %d placements, want none", len(got))
			}
		})
	}
}

func TestPlaceCharacters_RuneCount(t *testing.T) {
	rc := lineCurve(Pt(0, 0), Pt(200, 0))
	text := "飛騨山脈"
	got := PlaceCharacters(rc, text, true)
	if len(got) != len([]rune(text)) {
		t.Fatalf("got %d placements, want %d (one per rune, not per byte)",
			len(got), len([]rune(text)))
	}
}

func TestPlaceCharacters_MountainScenario(t *testing.T) {
	anchors := []Point{Pt(100, 400), Pt(300, 300), Pt(500, 270), Pt(700, 300)}
	rc := Realize(BuildCurve(anchors))
	total := rc.Length()

	got := PlaceCharacters(rc, "飛騨山脈", true)
	if len(got) != 4 {
		t.Fatalf("got %d placements, want 4", len(got))
	}

	// Sample arc lengths are the slot midpoints (i+0.5)*T/4, strictly
	// increasing and inside [0, T).
	prevL := -1.0
	for i, pl := range got {
		l := (float64(i) + 0.5) * total / 4
		if l <= prevL || l < 0 || l >= total {
			t.Fatalf("slot midpoint %d = %v out of order or range", i, l)
		}
		prevL = l

		want, _ := rc.PointAtLength(l)
		if !want.Approx(Pt(pl.X, pl.Y), 1e-9) {
			t.Errorf("char %d at (%v, %v), want %v", i, pl.X, pl.Y, want)
		}
	}

	// The curve descends then flattens out; the first and last
	// characters sit on bent parts, so their angles are nonzero.
	if got[0].Angle == 0 {
		t.Error("first character angle = 0 on a bent curve")
	}
	if got[3].Angle == 0 {
		t.Error("last character angle = 0 on a bent curve")
	}
	// Going right and downhill in image coordinates means a negative
	// y delta, so the first angle is negative and well under 90 deg.
	if got[0].Angle > 0 || got[0].Angle < -90 {
		t.Errorf("first character angle = %v, want a shallow negative slope", got[0].Angle)
	}
}

func TestPlaceCharacters_Idempotent(t *testing.T) {
	rc := Realize(BuildCurve([]Point{Pt(100, 400), Pt(300, 300), Pt(500, 270)}))
	a := PlaceCharacters(rc, "text on a curve", true)
	b := PlaceCharacters(rc, "text on a curve", true)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different placements")
	}
}

func TestPlaceProportional(t *testing.T) {
	rc := lineCurve(Pt(0, 0), Pt(100, 0))

	t.Run("weighted slots", func(t *testing.T) {
		got := PlaceProportional(rc, "ab", []float64{10, 30}, false)
		if len(got) != 2 {
			t.Fatalf("got %d placements, want 2", len(got))
		}
		// Total advance 40 is scaled onto 100 units of curve: 'a' is
		// centered at 5*2.5, 'b' at 25*2.5.
		if !almostEqual(got[0].X, 12.5, 1e-9) {
			t.Errorf("a at x=%v, want 12.5", got[0].X)
		}
		if !almostEqual(got[1].X, 62.5, 1e-9) {
			t.Errorf("b at x=%v, want 62.5", got[1].X)
		}
	})

	t.Run("mismatch falls back to equal slots", func(t *testing.T) {
		got := PlaceProportional(rc, "abc", []float64{10}, false)
		want := PlaceCharacters(rc, "abc", false)
		if !reflect.DeepEqual(got, want) {
			t.Error("mismatched advances should fall back to equal slots")
		}
	})

	t.Run("zero advances fall back", func(t *testing.T) {
		got := PlaceProportional(rc, "ab", []float64{0, 0}, false)
		want := PlaceCharacters(rc, "ab", false)
		if !reflect.DeepEqual(got, want) {
			t.Error("zero advances should fall back to equal slots")
		}
	})
}

func TestTangentMatchesFiniteDifference(t *testing.T) {
	// The reported angle is the finite-difference chord direction;
	// for a gentle spline it should agree with the polyline tangent
	// at the same arc length to well under a degree.
	rc := Realize(BuildCurve([]Point{Pt(100, 400), Pt(300, 300), Pt(500, 270), Pt(700, 300)}))
	total := rc.Length()
	got := PlaceCharacters(rc, "abcd", true)
	for i, pl := range got {
		l := (float64(i) + 0.5) * total / 4
		_, tan := rc.PointAtLength(l)
		want := math.Atan2(tan.Y, tan.X) * 180 / math.Pi
		if math.Abs(pl.Angle-want) > 0.5 {
			t.Errorf("char %d angle = %v, tangent says %v", i, pl.Angle, want)
		}
	}
}
