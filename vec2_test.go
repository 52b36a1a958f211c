package curvemesh

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: 3, Y: -1}

	if got := a.Add(b); got != (Vec2{X: 4, Y: 1}) {
		t.Errorf("Add = %v, want (4,1)", got)
	}
	if got := a.Sub(b); got != (Vec2{X: -2, Y: 3}) {
		t.Errorf("Sub = %v, want (-2,3)", got)
	}
	if got := a.Scale(2); got != (Vec2{X: 2, Y: 4}) {
		t.Errorf("Scale = %v, want (2,4)", got)
	}
	if got := a.Dot(b); got != 1 {
		t.Errorf("Dot = %v, want 1", got)
	}
	if got := a.Cross(b); got != -7 {
		t.Errorf("Cross = %v, want -7", got)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	if got := v.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	n := v.Normalized()
	if !n.RoughlyEquals(Vec2{X: 0.6, Y: 0.8}) {
		t.Errorf("Normalized = %v, want (0.6,0.8)", n)
	}
}

func TestVec2AngleBetween(t *testing.T) {
	a := Vec2{X: 1, Y: 0}
	b := Vec2{X: 0, Y: 1}
	if got := a.AngleBetween(b); math.Abs(got-math.Pi/2) > 1e-9 {
		t.Errorf("AngleBetween = %v, want pi/2", got)
	}
}

func TestCanonicalOrdersByYThenX(t *testing.T) {
	lower := Vec2{X: 0, Y: 0}
	higher := Vec2{X: 0, Y: 1}
	if canonical(lower, higher) >= 0 {
		t.Errorf("canonical(lower, higher) should be negative")
	}
	if canonical(higher, lower) <= 0 {
		t.Errorf("canonical(higher, lower) should be positive")
	}
	if canonical(lower, lower) != 0 {
		t.Errorf("canonical(v, v) should be 0")
	}

	sameYBigX := Vec2{X: 1, Y: 0}
	sameYSmallX := Vec2{X: 0, Y: 0}
	if canonical(sameYBigX, sameYSmallX) >= 0 {
		t.Errorf("canonical should break ties on equal y by decreasing x")
	}
}

func TestRoughlyEquals(t *testing.T) {
	a := Vec2{X: 1, Y: 1}
	b := Vec2{X: 1 + 1e-10, Y: 1 - 1e-10}
	if !a.RoughlyEquals(b) {
		t.Errorf("expected %v and %v to be roughly equal", a, b)
	}
	if a.Equals(b) {
		t.Errorf("expected %v and %v to not be exactly equal", a, b)
	}
}
