package geometry

import (
	"math"
	"testing"

	"github.com/Xephorium/Halo3LoadingScreen/vmath"
)

func TestOffsetFirstHalf(t *testing.T) {
	tests := []struct {
		p    int
		want Offset
	}{
		{0, Offset{3, 0.5}},
		{9, Offset{3, 9.5}},
		{14, Offset{0, 11.5}},
		{19, Offset{-3, 13.5}},
		{30, Offset{-3, 2.5}},
	}
	for _, tt := range tests {
		got, ok := DefaultOutline.Offset(tt.p, 62)
		if !ok {
			t.Errorf("p=%d: unexpected gap", tt.p)
		}
		if got != tt.want {
			t.Errorf("p=%d: got %+v, want %+v", tt.p, got, tt.want)
		}
	}
}

func TestOffsetSecondHalfFlipsRow(t *testing.T) {
	const n = 62
	for p := 0; p < n/2; p++ {
		top, _ := DefaultOutline.Offset(p, n)
		bottom, ok := DefaultOutline.Offset(p+n/2, n)
		if !ok {
			t.Fatalf("p=%d: unexpected gap", p+n/2)
		}
		if bottom.X != top.X || bottom.Y != -top.Y {
			t.Errorf("p=%d: got %+v, want mirror of %+v", p+n/2, bottom, top)
		}
	}
}

func TestOffsetGapIsNeutral(t *testing.T) {
	short := Outline{{-3, 1}, {-3, 2}}

	// Half slice of 3 with a 2-entry table leaves index 2 undefined
	got, ok := short.Offset(2, 6)
	if ok {
		t.Error("expected gap for index beyond table")
	}
	if got != (Offset{}) {
		t.Errorf("gap offset: got %+v, want zero", got)
	}

	if _, ok := short.Offset(-1, 4); ok {
		t.Error("negative index should be a gap")
	}
	if _, ok := short.Offset(4, 4); ok {
		t.Error("index past slice should be a gap")
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{62, true},
		{66, true},
		{68, false},
		{4, true},
		{5, false},
		{0, false},
	}
	for _, tt := range tests {
		if got := DefaultOutline.Supports(tt.n); got != tt.want {
			t.Errorf("Supports(%d): got %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestBound(t *testing.T) {
	b := DefaultOutline.Bound()
	if b.X != 3 || b.Y != 13.5 {
		t.Errorf("Bound: got %+v, want {3 13.5}", b)
	}
}

func TestSliceCenterStartsOnNegativeX(t *testing.T) {
	c := SliceCenter(0, 4, 1)
	if c.X != -1 || c.Y != 0 || c.Z != 0 {
		t.Errorf("slice 0 center: got %+v, want {-1 0 0}", c)
	}

	// Quarter turn later the ring has moved onto +Z
	c = SliceCenter(1, 4, 2)
	if math.Abs(c.X) > 1e-12 || math.Abs(c.Z-2) > 1e-12 {
		t.Errorf("slice 1 center: got %+v, want {0 0 2}", c)
	}
}

func TestParticleFinal(t *testing.T) {
	fx, fz := AngularFactors(0, 4)
	center := SliceCenter(0, 4, 1)
	got := ParticleFinal(center, Offset{X: 3, Y: 0.5}, 0.01, fx, fz)
	want := vmath.Vec3F{X: -1.03, Y: 0.005, Z: 0}
	if math.Abs(got.X-want.X) > 1e-12 || got.Y != want.Y || got.Z != want.Z {
		t.Errorf("ParticleFinal: got %+v, want %+v", got, want)
	}
}

func TestSliceAngle(t *testing.T) {
	tests := []struct {
		slice, slices int
		want          float64
	}{
		{0, 4, 180},
		{1, 4, 90},
		{2, 4, 0},
		{3, 4, -90},
	}
	for _, tt := range tests {
		if got := SliceAngle(tt.slice, tt.slices); got != tt.want {
			t.Errorf("SliceAngle(%d, %d): got %v, want %v", tt.slice, tt.slices, got, tt.want)
		}
	}
}
