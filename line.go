package curvemesh

import "fmt"

// Line is a straight segment from A to B.
type Line struct{ A, B Vec2 }

func NewLine(a, b Vec2) Curve { return Line{A: a, B: b} }

func (l Line) At(t Coord) Vec2 { return l.A.Scale(1 - t).Add(l.B.Scale(t)) }

func (l Line) Derivative() Curve {
	d := l.B.Sub(l.A)
	return Line{A: d, B: d}
}

func (l Line) Subcurve(lo, hi Coord) Curve {
	return Line{A: l.At(lo), B: l.At(hi)}
}

func (l Line) Reverse() Curve { return Line{A: l.B, B: l.A} }

func (l Line) Winding() Coord { return l.A.Cross(l.B) }

func (l Line) AngleKey() AngleKey {
	return AngleKey{T: l.A.AngleFacing(l.B)}
}

func (l Line) IntersectionX(x Coord) Roots {
	return FindRootsLinear(l.B.X-l.A.X, l.A.X-x)
}

func (l Line) IntersectionY(y Coord) Roots {
	return FindRootsLinear(l.B.Y-l.A.Y, l.A.Y-y)
}

func (l Line) IntersectionSeg(v1, v2 Vec2) Roots {
	dv := v2.Sub(v1)
	return FindRootsLinear(dv.Cross(l.B.Sub(l.A)), dv.Cross(l.A.Sub(v1)))
}

func (l Line) EntryTangent() Vec2 { return l.B.Sub(l.A).Normalized() }
func (l Line) ExitTangent() Vec2  { return l.B.Sub(l.A).Normalized() }

func (l Line) EnclosingPolygon() []Vec2 { return []Vec2{l.A, l.B} }

func (l Line) CriticalPoints() []Coord { return []Coord{0.0, 1.0} }

func (l Line) IsLine() bool { return true }

func (l Line) String() string { return fmt.Sprintf("Line(%v,%v)", l.A, l.B) }
