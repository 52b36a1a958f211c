package curvemesh

import "testing"

func TestLineAt(t *testing.T) {
	l := NewLine(Vec2{X: 0, Y: 0}, Vec2{X: 10, Y: 0})
	if got := l.At(0.5); !got.RoughlyEquals(Vec2{X: 5, Y: 0}) {
		t.Errorf("At(0.5) = %v, want (5,0)", got)
	}
	if !l.IsLine() {
		t.Errorf("Line.IsLine() should be true")
	}
}

func TestLineSubcurve(t *testing.T) {
	l := NewLine(Vec2{X: 0, Y: 0}, Vec2{X: 10, Y: 0})
	sub := l.Subcurve(0.25, 0.75)
	if got := sub.At(0.0); !got.RoughlyEquals(Vec2{X: 2.5, Y: 0}) {
		t.Errorf("Subcurve start = %v, want (2.5,0)", got)
	}
	if got := sub.At(1.0); !got.RoughlyEquals(Vec2{X: 7.5, Y: 0}) {
		t.Errorf("Subcurve end = %v, want (7.5,0)", got)
	}
}

func TestQuadraticBezierEndpoints(t *testing.T) {
	q := NewQuadraticBezier(Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 2}, Vec2{X: 2, Y: 0})
	if got := q.At(0.0); !got.RoughlyEquals(Vec2{X: 0, Y: 0}) {
		t.Errorf("At(0) = %v, want A", got)
	}
	if got := q.At(1.0); !got.RoughlyEquals(Vec2{X: 2, Y: 0}) {
		t.Errorf("At(1) = %v, want C", got)
	}
}

func TestCubicBezierEndpoints(t *testing.T) {
	c := NewCubicBezier(Vec2{X: 0, Y: 0}, Vec2{X: 0, Y: 1}, Vec2{X: 1, Y: 1}, Vec2{X: 1, Y: 0})
	if got := c.At(0.0); !got.RoughlyEquals(Vec2{X: 0, Y: 0}) {
		t.Errorf("At(0) = %v, want A", got)
	}
	if got := c.At(1.0); !got.RoughlyEquals(Vec2{X: 1, Y: 0}) {
		t.Errorf("At(1) = %v, want D", got)
	}
}

func TestIsConvex(t *testing.T) {
	// IsConvex is a winding-sign test, not a geometric one: it reports
	// whether the curve bulges to the right of the A->C chord direction
	// (the negative side of Vec2.Cross).
	controlAtPositiveY := NewQuadraticBezier(Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 1}, Vec2{X: 2, Y: 0})
	if IsConvex(controlAtPositiveY) {
		t.Errorf("expected this control-point arrangement to not be convex")
	}

	controlAtNegativeY := NewQuadraticBezier(Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: -1}, Vec2{X: 2, Y: 0})
	if !IsConvex(controlAtNegativeY) {
		t.Errorf("expected this control-point arrangement to be convex")
	}
}

func TestBBox(t *testing.T) {
	q := NewQuadraticBezier(Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 2}, Vec2{X: 2, Y: 0})
	r := BBox(q)
	if r.X > 0 || r.X+r.Width < 2 {
		t.Errorf("BBox %v doesn't contain endpoints", r)
	}
}

func TestNoneCurveIsDegenerateLine(t *testing.T) {
	c := NoneCurve()
	if !c.IsLine() {
		t.Errorf("NoneCurve should be a Line")
	}
	if !c.At(0.0).RoughlyEquals(c.At(1.0)) {
		t.Errorf("NoneCurve should be zero-length")
	}
}
