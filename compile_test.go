package curvemesh

import "testing"

func compiledMeshArea(d CompiledDrawing) Coord {
	var sum Coord
	for _, tr := range d.Triangles {
		sum += triangleArea(tr)
	}
	for _, tr := range d.CurveTriangles {
		sum += absCoord(tr.B.Pos.Sub(tr.A.Pos).Cross(tr.C.Pos.Sub(tr.A.Pos))) / 2.0
	}
	for _, tr := range d.DoubleCurveTriangles {
		sum += absCoord(tr.B.Pos.Sub(tr.A.Pos).Cross(tr.C.Pos.Sub(tr.A.Pos))) / 2.0
	}
	return sum
}

func TestCompileUnitTriangle(t *testing.T) {
	path := Path{
		MoveTo(Vec2{X: 0, Y: 0}),
		LineTo(Vec2{X: 1, Y: 0}),
		LineTo(Vec2{X: 0, Y: 1}),
		ClosePath(),
	}

	drawing := Compile(path, FillRuleNonZero)
	if len(drawing.Triangles) == 0 {
		t.Fatalf("expected at least one flat triangle")
	}
	if got := compiledMeshArea(drawing); !RoughlyEquals(got, 0.5) {
		t.Errorf("compiled mesh area = %v, want 0.5", got)
	}
}

func TestCompileSquareWithHole(t *testing.T) {
	// A square with a hole produces a face with two contours (outer ring
	// plus the hole), which runs into partitionToMonotone's preserved
	// multi-contour bug (see TestTriangulateMultiContourSweepBug). This
	// only checks the pipeline doesn't hang; it makes no claim about mesh
	// correctness for faces with holes.
	defer func() {
		if r := recover(); r != nil {
			t.Logf("Compile panicked on a holed path (preserved bug, see DESIGN.md): %v", r)
		}
	}()

	path := Path{
		MoveTo(Vec2{X: 0, Y: 0}),
		LineTo(Vec2{X: 10, Y: 0}),
		LineTo(Vec2{X: 10, Y: 10}),
		LineTo(Vec2{X: 0, Y: 10}),
		ClosePath(),

		MoveTo(Vec2{X: 3, Y: 3}),
		LineTo(Vec2{X: 3, Y: 7}),
		LineTo(Vec2{X: 7, Y: 7}),
		LineTo(Vec2{X: 7, Y: 3}),
		ClosePath(),
	}

	_ = Compile(path, FillRuleNonZero)
}

func TestCompileQuadraticCap(t *testing.T) {
	path := Path{
		MoveTo(Vec2{X: 0, Y: 0}),
		LineTo(Vec2{X: 2, Y: 0}),
		QuadraticBezierTo(Vec2{X: 1, Y: 2}, Vec2{X: 0, Y: 0}),
		ClosePath(),
	}

	drawing := Compile(path, FillRuleNonZero)
	if len(drawing.CurveTriangles) == 0 {
		t.Errorf("expected curve triangles for the quadratic cap")
	}
}

func TestCompileBowtieEvenOddVsNonZero(t *testing.T) {
	// A self-intersecting bowtie: its two lobes wind +1 and -1, so both
	// fill rules fill both lobes. This checks that each rule yields a
	// non-empty mesh.
	path := Path{
		MoveTo(Vec2{X: -2, Y: -2}),
		LineTo(Vec2{X: 2, Y: -2}),
		LineTo(Vec2{X: -2, Y: 2}),
		LineTo(Vec2{X: 2, Y: 2}),
		ClosePath(),
	}

	evenOdd := Compile(path, FillRuleEvenOdd)
	nonZero := Compile(path, FillRuleNonZero)

	if len(evenOdd.Triangles) == 0 || len(nonZero.Triangles) == 0 {
		t.Fatalf("expected both fill rules to produce a non-empty mesh")
	}
}

func TestCompileFullCircleViaTwoArcs(t *testing.T) {
	r := Vec2{X: 5, Y: 5}
	path := Path{
		MoveTo(Vec2{X: -5, Y: 0}),
		EllipticArcTo(r, 0.0, false, true, Vec2{X: 5, Y: 0}),
		EllipticArcTo(r, 0.0, false, true, Vec2{X: -5, Y: 0}),
		ClosePath(),
	}

	drawing := Compile(path, FillRuleNonZero)
	if len(drawing.CurveTriangles) == 0 && len(drawing.Triangles) == 0 {
		t.Fatalf("expected a non-empty mesh for the circle")
	}
}

func TestCompileCubicLoop(t *testing.T) {
	path := Path{
		MoveTo(Vec2{X: 0, Y: 0}),
		CubicBezierTo(Vec2{X: 10, Y: 10}, Vec2{X: -10, Y: 10}, Vec2{X: 0, Y: 0}),
		ClosePath(),
	}

	drawing := Compile(path, FillRuleNonZero)
	if len(drawing.CurveTriangles) == 0 && len(drawing.Triangles) == 0 {
		t.Fatalf("expected a non-empty mesh for the looping cubic")
	}
}
