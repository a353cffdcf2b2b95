package geom

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b Point) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestNewRectRejectsNonPositiveSides(t *testing.T) {
	for _, tc := range []struct{ w, h float64 }{{0, 10}, {10, 0}, {-1, 5}, {5, -1}, {math.NaN(), 5}} {
		if _, err := NewRect(0, 0, tc.w, tc.h); !errors.Is(err, ErrInvalidRect) {
			t.Errorf("NewRect(0, 0, %v, %v) err = %v, want ErrInvalidRect", tc.w, tc.h, err)
		}
	}
	if _, err := NewRect(-5, -5, 1, 1); err != nil {
		t.Errorf("NewRect with negative origin: unexpected error %v", err)
	}
}

func TestContainsIsHalfOpen(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}

	inside := []Point{{10, 20}, {10, 40}, {50, 20}, {109.999, 69.999}}
	for _, p := range inside {
		if !r.Contains(p) {
			t.Errorf("Contains(%v) = false, want true", p)
		}
	}
	outside := []Point{{110, 40}, {50, 70}, {110, 70}, {9.999, 40}, {50, 19.999}}
	for _, p := range outside {
		if r.Contains(p) {
			t.Errorf("Contains(%v) = true, want false", p)
		}
	}
	if !r.Covers(Point{110, 70}) {
		t.Errorf("Covers should include the bottom-right corner")
	}
}

func TestClampWithin(t *testing.T) {
	bounds := Rect{W: 900, H: 600}
	r := Rect{X: 850, Y: -20, W: 120, H: 70}
	got := r.ClampWithin(bounds)
	if got.X != 780 || got.Y != 0 {
		t.Fatalf("ClampWithin = (%v, %v), want (780, 0)", got.X, got.Y)
	}
	if got.W != 120 || got.H != 70 {
		t.Fatalf("ClampWithin changed size to %vx%v", got.W, got.H)
	}
}

func TestWrapDegreesStaysInRange(t *testing.T) {
	cases := map[float64]float64{
		0:    0,
		359:  359,
		360:  0,
		361:  1,
		-1:   359,
		-360: 0,
		725:  5,
	}
	for in, want := range cases {
		if got := WrapDegrees(in); math.Abs(got-want) > eps {
			t.Errorf("WrapDegrees(%v) = %v, want %v", in, got, want)
		}
	}
	if got := WrapDegrees(-1e-15); got < 0 || got >= 360 {
		t.Errorf("WrapDegrees(-1e-15) = %v, out of [0,360)", got)
	}
}

func TestMirrorAngle(t *testing.T) {
	if got := MirrorAngle(90, 0); got != 180 {
		t.Fatalf("MirrorAngle(90, 0) = %v, want 180", got)
	}
	if got := MirrorAngle(10, 45); got != 335 {
		t.Errorf("MirrorAngle(10, 45) = %v, want 335", got)
	}
	if got := MirrorAngle(200, -30); got != 70 {
		t.Errorf("MirrorAngle(200, -30) = %v, want 70", got)
	}
}

func TestRayEndpoint(t *testing.T) {
	o := Pt(100, 100)
	if got := RayEndpoint(o, 0, 50); got != Pt(150, 100) {
		t.Errorf("RayEndpoint east = %v", got)
	}
	if got := RayEndpoint(o, 90, 50); !near(got, Pt(100, 150)) {
		t.Errorf("RayEndpoint 90° = %v, want (100,150)", got)
	}
	if got := RayEndpoint(o, 180, 50); !near(got, Pt(50, 100)) {
		t.Errorf("RayEndpoint 180° = %v, want (50,100)", got)
	}
}

func TestBoundedRayToward(t *testing.T) {
	o := Pt(0, 0)
	if got := BoundedRayToward(o, Pt(30, 40), 100); got != Pt(30, 40) {
		t.Errorf("target within range should be returned unchanged, got %v", got)
	}
	if got := BoundedRayToward(o, Pt(30, 40), 10); !near(got, Pt(6, 8)) {
		t.Errorf("BoundedRayToward rescale = %v, want (6,8)", got)
	}
	if got := BoundedRayToward(Pt(5, 5), Pt(5, 5), 10); got != Pt(5, 5) {
		t.Errorf("degenerate ray = %v, want origin", got)
	}
	if got := BoundedRayToward(o, Pt(-300, 0), 100); !near(got, Pt(-100, 0)) {
		t.Errorf("BoundedRayToward west = %v", got)
	}
}

func TestSegmentRectIntersection(t *testing.T) {
	r := Rect{X: 100, Y: 0, W: 50, H: 100}

	tests := []struct {
		name   string
		p0, p1 Point
		want   Point
		ok     bool
	}{
		{"crosses left edge", Pt(0, 50), Pt(200, 50), Pt(100, 50), true},
		{"crosses right edge travelling west", Pt(200, 50), Pt(0, 50), Pt(150, 50), true},
		{"stops short", Pt(0, 50), Pt(90, 50), Point{}, false},
		{"passes above", Pt(0, -10), Pt(200, -10), Point{}, false},
		{"starts inside", Pt(120, 30), Pt(500, 500), Pt(120, 30), true},
		{"ends exactly on edge", Pt(0, 50), Pt(100, 50), Pt(100, 50), true},
		{"runs along top edge", Pt(0, 0), Pt(300, 0), Pt(100, 0), true},
		{"diagonal entry through top", Pt(75, -25), Pt(175, 75), Pt(100, 0), true},
		{"zero length inside", Pt(110, 10), Pt(110, 10), Pt(110, 10), true},
		{"zero length outside", Pt(10, 10), Pt(10, 10), Point{}, false},
	}
	for _, tc := range tests {
		got, ok := SegmentRectIntersection(tc.p0, tc.p1, r)
		if ok != tc.ok {
			t.Errorf("%s: ok = %v, want %v", tc.name, ok, tc.ok)
			continue
		}
		if ok && !near(got, tc.want) {
			t.Errorf("%s: hit = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSegmentRectIntersectionIsRepeatable(t *testing.T) {
	r := Rect{X: 500, Y: 80, W: 120, H: 70}
	p0, p1 := Pt(300, 100), RayEndpoint(Pt(300, 100), 10, 1000)
	first, ok1 := SegmentRectIntersection(p0, p1, r)
	for i := 0; i < 10; i++ {
		got, ok := SegmentRectIntersection(p0, p1, r)
		if ok != ok1 || got != first {
			t.Fatalf("call %d returned (%v, %v), first call (%v, %v)", i, got, ok, first, ok1)
		}
	}
}

func TestAngleTo(t *testing.T) {
	if got := AngleTo(Pt(100, 100), Pt(300, 100)); got != 0 {
		t.Errorf("AngleTo east = %v, want 0", got)
	}
	if got := AngleTo(Pt(0, 0), Pt(0, -10)); math.Abs(got+90) > eps {
		t.Errorf("AngleTo up = %v, want -90", got)
	}
	if got := AngleTo(Pt(3, 3), Pt(3, 3)); got != 0 {
		t.Errorf("AngleTo coincident = %v, want 0", got)
	}
}
