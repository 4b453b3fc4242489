package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	cases := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(2, 2, 3, 3), true},
		{"touching edges", NewRect(10, 0, 5, 5), false},
		{"separate", NewRect(20, 20, 5, 5), false},
		{"above", NewRect(0, -10, 10, 10), false},
	}

	for _, tc := range cases {
		if got := a.Intersects(tc.b); got != tc.want {
			t.Errorf("%s: Intersects() = %v, want %v", tc.name, got, tc.want)
		}
		// Intersection is symmetric
		if got := tc.b.Intersects(a); got != tc.want {
			t.Errorf("%s: reverse Intersects() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRectExpand(t *testing.T) {
	r := NewRect(10, 10, 4, 4).Expand(2)
	if r.X != 8 || r.Y != 8 || r.W != 8 || r.H != 8 {
		t.Errorf("Expand(2) = %+v, want {8 8 8 8}", r)
	}

	shrunk := NewRect(10, 10, 4, 4).Expand(-1)
	if shrunk.X != 11 || shrunk.W != 2 {
		t.Errorf("Expand(-1) = %+v, want x=11 w=2", shrunk)
	}
}

func TestRectContainsRect(t *testing.T) {
	outer := NewRect(0, 0, 20, 20)
	if !outer.ContainsRect(NewRect(5, 5, 5, 5)) {
		t.Error("inner rect should be contained")
	}
	if outer.ContainsRect(NewRect(18, 18, 5, 5)) {
		t.Error("rect crossing the edge should not be contained")
	}
	if !outer.ContainsRect(outer) {
		t.Error("rect should contain itself")
	}
}

func TestCirclesOverlap(t *testing.T) {
	if !CirclesOverlap(Vec2{0, 0}, 3, Vec2{4, 0}, 2) {
		t.Error("circles at distance 4 with radii 3+2 should overlap")
	}
	// Tangent circles do not count as overlapping
	if CirclesOverlap(Vec2{0, 0}, 2, Vec2{4, 0}, 2) {
		t.Error("tangent circles should not overlap")
	}
	if CirclesOverlap(Vec2{0, 0}, 1, Vec2{10, 0}, 1) {
		t.Error("distant circles should not overlap")
	}
}

func TestCircleRectOverlap(t *testing.T) {
	box := NewRect(10, 10, 10, 10)

	if !CircleRectOverlap(Vec2{15, 15}, 1, box) {
		t.Error("circle inside box should overlap")
	}
	if !CircleRectOverlap(Vec2{8, 15}, 3, box) {
		t.Error("circle reaching the left edge should overlap")
	}
	if CircleRectOverlap(Vec2{8, 15}, 2, box) {
		t.Error("circle exactly tangent to edge should not overlap")
	}
	// Corner case: diagonal distance matters, not per-axis distance
	if CircleRectOverlap(Vec2{8, 8}, 2.5, box) {
		t.Error("circle near corner at diagonal distance ~2.83 should not overlap")
	}
	if !CircleRectOverlap(Vec2{8, 8}, 3, box) {
		t.Error("circle near corner at diagonal distance ~2.83 should overlap with radius 3")
	}
}

func TestSegmentCircleOverlap(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{10, 0}

	if !SegmentCircleOverlap(a, b, Vec2{5, 1}, 2) {
		t.Error("circle 1 unit off mid-segment should overlap with radius 2")
	}
	if SegmentCircleOverlap(a, b, Vec2{5, 3}, 2) {
		t.Error("circle 3 units off segment should not overlap with radius 2")
	}
	// Beyond the endpoint the projection clamps: distance is measured to b
	if SegmentCircleOverlap(a, b, Vec2{13, 0}, 2) {
		t.Error("circle 3 units past the endpoint should not overlap")
	}
	if !SegmentCircleOverlap(a, b, Vec2{11, 0}, 2) {
		t.Error("circle 1 unit past the endpoint should overlap with radius 2")
	}
	// Degenerate zero-length segment behaves like a point
	if !SegmentCircleOverlap(a, a, Vec2{1, 0}, 2) {
		t.Error("zero-length segment should behave like a point test")
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{42, 0, 10, 10},
		{0, 0, 0, 0},
	}
	for _, c := range cases {
		if got := Clamp(c.val, c.min, c.max); got != c.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", c.val, c.min, c.max, got, c.want)
		}
	}
}

func TestVec2Perp(t *testing.T) {
	v := Vec2{1, 0}
	p := v.Perp()
	if p.X != 0 || p.Y != 1 {
		t.Errorf("Perp of (1,0) = %+v, want (0,1)", p)
	}
	if dot := v.Dot(p); dot != 0 {
		t.Errorf("Perp should be orthogonal, dot = %f", dot)
	}
}

func TestVec2Normalized(t *testing.T) {
	n := Vec2{3, 4}.Normalized()
	if math.Abs(n.Len()-1) > 1e-9 {
		t.Errorf("Normalized length = %f, want 1", n.Len())
	}

	zero := Vec2{}.Normalized()
	if zero.X != 0 || zero.Y != 0 {
		t.Errorf("zero vector should normalize to zero, got %+v", zero)
	}
}
