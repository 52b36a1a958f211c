package curvemesh

import "testing"

func TestIntersectCrossingLines(t *testing.T) {
	l1 := NewLine(Vec2{X: 0, Y: 0}, Vec2{X: 2, Y: 2})
	l2 := NewLine(Vec2{X: 0, Y: 2}, Vec2{X: 2, Y: 0})

	pairs := Intersect(l1, l2, l1.CriticalPoints(), l2.CriticalPoints())
	if len(pairs) != 1 {
		t.Fatalf("got %d intersections, want 1", len(pairs))
	}
	if !RoughlyEquals(pairs[0].T1, 0.5) || !RoughlyEquals(pairs[0].T2, 0.5) {
		t.Errorf("intersection at %v, want (0.5,0.5)", pairs[0])
	}
}

func TestIntersectParallelLinesDontMeet(t *testing.T) {
	l1 := NewLine(Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 0})
	l2 := NewLine(Vec2{X: 0, Y: 1}, Vec2{X: 1, Y: 1})

	pairs := Intersect(l1, l2, l1.CriticalPoints(), l2.CriticalPoints())
	if len(pairs) != 0 {
		t.Errorf("got %d intersections for parallel lines, want 0", len(pairs))
	}
}

func TestIntersectLineAndQuadratic(t *testing.T) {
	line := NewLine(Vec2{X: -2, Y: 0}, Vec2{X: 2, Y: 0})
	q := NewQuadraticBezier(Vec2{X: -2, Y: -2}, Vec2{X: 0, Y: 4}, Vec2{X: 2, Y: -2})

	pairs := Intersect(line, q, line.CriticalPoints(), q.CriticalPoints())
	if len(pairs) != 2 {
		t.Fatalf("got %d intersections, want 2", len(pairs))
	}
	for _, p := range pairs {
		pos := q.At(p.T2)
		if !RoughlyZero(pos.Y) {
			t.Errorf("intersection point %v should lie on y=0", pos)
		}
	}
}
