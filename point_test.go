package catenary

import (
	"math"
	"testing"
)

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointFinite(t *testing.T) {
	tests := []struct {
		pt       Point
		inf, nan bool
	}{
		{Pt(1, 2), false, false},
		{Pt(math.Inf(1), 2), true, false},
		{Pt(1, math.Inf(-1)), true, false},
		{Pt(math.NaN(), 2), false, true},
		{Pt(math.Inf(1), math.NaN()), true, true},
	}
	for _, tt := range tests {
		if got := tt.pt.IsInf(); got != tt.inf {
			t.Errorf("%v.IsInf() = %t, want %t", tt.pt, got, tt.inf)
		}
		if got := tt.pt.IsNaN(); got != tt.nan {
			t.Errorf("%v.IsNaN() = %t, want %t", tt.pt, got, tt.nan)
		}
	}
}

func TestRequestChord(t *testing.T) {
	req := Request{L: 10, D: 4, YL: 3, YR: 0}
	if c := req.Chord(); c != 5 {
		t.Errorf("got chord %v, want 5", c)
	}
}
