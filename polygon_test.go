package curvemesh

import "testing"

func square() []Vec2 {
	return []Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

func TestPolygonWinding(t *testing.T) {
	if got := PolygonWinding(square()); got <= 0 {
		t.Errorf("PolygonWinding(CCW square) = %v, want positive", got)
	}

	cw := square()
	reverseVec2(cw)
	if got := PolygonWinding(cw); got >= 0 {
		t.Errorf("PolygonWinding(CW square) = %v, want negative", got)
	}
}

func TestConvexHull(t *testing.T) {
	pts := []Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0.5, Y: 0.5}}
	hull := ConvexHull(pts)
	if len(hull) != 4 {
		t.Fatalf("ConvexHull returned %d points, want 4 (interior point dropped)", len(hull))
	}
	for _, p := range hull {
		if p.RoughlyEquals(Vec2{X: 0.5, Y: 0.5}) {
			t.Errorf("interior point %v should not be on the hull", p)
		}
	}
}

func TestPolygonsOverlap(t *testing.T) {
	a := square()
	b := []Vec2{{X: 0.5, Y: 0.5}, {X: 1.5, Y: 0.5}, {X: 1.5, Y: 1.5}, {X: 0.5, Y: 1.5}}
	if !PolygonsOverlap(a, b, true) {
		t.Errorf("expected overlapping squares to report as overlapping")
	}

	c := []Vec2{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}}
	if PolygonsOverlap(a, c, true) {
		t.Errorf("expected disjoint squares to not overlap")
	}
}

func TestPolygonContainsPoint(t *testing.T) {
	if !polygonContainsPoint(square(), Vec2{X: 0.5, Y: 0.5}, false) {
		t.Errorf("expected (0.5,0.5) to be inside the unit square")
	}
	if polygonContainsPoint(square(), Vec2{X: 2, Y: 2}, false) {
		t.Errorf("expected (2,2) to be outside the unit square")
	}
}

func TestSimplifyPolygonDropsCollinearPoints(t *testing.T) {
	poly := []Vec2{{X: 0, Y: 0}, {X: 0.5, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	simplified := SimplifyPolygon(poly)
	for _, p := range simplified {
		if p.RoughlyEquals(Vec2{X: 0.5, Y: 0}) {
			t.Errorf("expected collinear midpoint to be dropped, got %v", simplified)
		}
	}
}
