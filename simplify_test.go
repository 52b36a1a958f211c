package curvemesh

import "testing"

func TestIsCurveDegenerate(t *testing.T) {
	degenerate := NewLine(Vec2{X: 1, Y: 1}, Vec2{X: 1, Y: 1})
	if !IsCurveDegenerate(degenerate) {
		t.Errorf("expected zero-length line to be degenerate")
	}

	live := NewLine(Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 0})
	if IsCurveDegenerate(live) {
		t.Errorf("expected non-zero-length line to not be degenerate")
	}
}

func TestSimplifyCurvesDropsDegenerate(t *testing.T) {
	curves := []Curve{
		NewLine(Vec2{X: 0, Y: 0}, Vec2{X: 0, Y: 0}),
		NewLine(Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 0}),
	}
	out := SimplifyCurves(curves)
	if len(out) != 1 {
		t.Fatalf("SimplifyCurves returned %d curves, want 1", len(out))
	}
	if !out[0].IsLine() {
		t.Errorf("expected remaining curve to be a Line")
	}
}

func TestSimplifyCollinearQuadraticBecomesLine(t *testing.T) {
	q := NewQuadraticBezier(Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 0}, Vec2{X: 2, Y: 0})
	out := SimplifyCurves([]Curve{q})
	if len(out) != 1 || !out[0].IsLine() {
		t.Fatalf("expected a collinear quadratic to simplify to a single line, got %#v", out)
	}
}

func TestSimplifyCubicPreservesEndpoints(t *testing.T) {
	c := NewCubicBezier(
		Vec2{X: 0, Y: 0},
		Vec2{X: 10, Y: 10},
		Vec2{X: -10, Y: 10},
		Vec2{X: 0, Y: 1},
	)
	out := SimplifyCurves([]Curve{c})
	if len(out) == 0 {
		t.Fatalf("expected at least one curve out of simplification")
	}
	if got := out[0].At(0.0); !got.RoughlyEquals(Vec2{X: 0, Y: 0}) {
		t.Errorf("first simplified curve starts at %v, want (0,0)", got)
	}
	if got := out[len(out)-1].At(1.0); !got.RoughlyEquals(Vec2{X: 0, Y: 1}) {
		t.Errorf("last simplified curve ends at %v, want (0,1)", got)
	}
	for _, c := range out {
		if IsCurveDegenerate(c) {
			t.Errorf("simplification left a degenerate curve %v", c)
		}
	}
}
