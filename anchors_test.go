package pathtext

import "testing"

func TestAnchors_Move(t *testing.T) {
	a := Anchors{Pt(0, 0), Pt(10, 10), Pt(20, 0)}

	got := a.Move(1, Pt(-50, 300))
	if got[1] != Pt(-50, 300) {
		t.Errorf("moved anchor = %v, want (-50, 300)", got[1])
	}
	if a[1] != Pt(10, 10) {
		t.Error("Move mutated the original sequence")
	}

	t.Run("out of range", func(t *testing.T) {
		got := a.Move(5, Pt(1, 1))
		if len(got) != len(a) || got[0] != a[0] || got[1] != a[1] || got[2] != a[2] {
			t.Error("out-of-range move should leave anchors unchanged")
		}
	})
}

func TestAnchors_Append(t *testing.T) {
	a := Anchors{Pt(0, 0), Pt(10, 10)}
	got := a.Append(Pt(20, 20))
	if len(got) != 3 || got[2] != Pt(20, 20) {
		t.Fatalf("append result = %v", got)
	}
	if len(a) != 2 {
		t.Error("Append mutated the original sequence")
	}
}

func TestAnchors_Remove(t *testing.T) {
	tests := []struct {
		name    string
		anchors Anchors
		index   int
		wantLen int
	}{
		{"normal removal", Anchors{Pt(0, 0), Pt(1, 1), Pt(2, 2)}, 1, 2},
		{"guard at two anchors", Anchors{Pt(0, 0), Pt(1, 1)}, 0, 2},
		{"guard at one anchor", Anchors{Pt(0, 0)}, 0, 1},
		{"index out of range", Anchors{Pt(0, 0), Pt(1, 1), Pt(2, 2)}, 7, 3},
		{"negative index", Anchors{Pt(0, 0), Pt(1, 1), Pt(2, 2)}, -1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.anchors.Remove(tt.index)
			if len(got) != tt.wantLen {
				t.Errorf("got %d anchors, want %d", len(got), tt.wantLen)
			}
		})
	}

	t.Run("removes the right anchor", func(t *testing.T) {
		a := Anchors{Pt(0, 0), Pt(1, 1), Pt(2, 2)}
		got := a.Remove(1)
		if got[0] != Pt(0, 0) || got[1] != Pt(2, 2) {
			t.Errorf("result = %v, want middle anchor gone", got)
		}
		if len(a) != 3 {
			t.Error("Remove mutated the original sequence")
		}
	})
}
