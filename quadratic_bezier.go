package curvemesh

import (
	"fmt"
	"sort"
)

// QuadraticBezier is a quadratic Bézier curve with control points A, B, C.
type QuadraticBezier struct{ A, B, C Vec2 }

func NewQuadraticBezier(a, b, c Vec2) Curve { return QuadraticBezier{A: a, B: b, C: c} }

func (q QuadraticBezier) At(t Coord) Vec2 {
	ct := 1 - t
	return q.A.Scale(ct * ct).Add(q.B.Scale(2 * ct * t)).Add(q.C.Scale(t * t))
}

func (q QuadraticBezier) Derivative() Curve {
	return Line{A: q.B.Sub(q.A).Scale(2), B: q.C.Sub(q.B).Scale(2)}
}

func (q QuadraticBezier) derivativeLine() Line {
	return Line{A: q.B.Sub(q.A).Scale(2), B: q.C.Sub(q.B).Scale(2)}
}

func (q QuadraticBezier) Subcurve(l, r Coord) Curve {
	a := q.At(l)
	c := q.At(r)
	cl, cr := 1-l, 1-r
	b := q.A.Scale(cl * cr).Add(q.B.Scale(l*cr + r*cl)).Add(q.C.Scale(l * r))
	return QuadraticBezier{A: a, B: b, C: c}
}

func (q QuadraticBezier) Reverse() Curve { return QuadraticBezier{A: q.C, B: q.B, C: q.A} }

func (q QuadraticBezier) Winding() Coord {
	return (2*q.A.Cross(q.B) + 2*q.B.Cross(q.C) + q.A.Cross(q.C)) / 3
}

func (q QuadraticBezier) AngleKey() AngleKey {
	dv1 := q.B.Sub(q.A)
	dv2 := q.C.Sub(q.B)

	if dv1.RoughlyZero() {
		return q.derivativeLine().AngleKey()
	}
	dt := dv1.Cross(dv2.Sub(dv1)) / dv1.LengthSq()
	ddt := -2 * dv1.Dot(dv2.Sub(dv1)) * dt / dv1.LengthSq()
	return AngleKey{T: dv1.Angle(), DT: dt, DDT: ddt}
}

func (q QuadraticBezier) IntersectionX(x Coord) Roots {
	return FindRootsQuadratic(q.A.X-2*q.B.X+q.C.X, 2*(q.B.X-q.A.X), q.A.X-x)
}

func (q QuadraticBezier) IntersectionY(y Coord) Roots {
	return FindRootsQuadratic(q.A.Y-2*q.B.Y+q.C.Y, 2*(q.B.Y-q.A.Y), q.A.Y-y)
}

func (q QuadraticBezier) IntersectionSeg(v1, v2 Vec2) Roots {
	dv := v1.Sub(v2)
	return FindRootsQuadratic(
		dv.Cross(q.A.Sub(q.B.Scale(2)).Add(q.C)),
		2*dv.Cross(q.B.Sub(q.A)),
		dv.Cross(q.A.Sub(v1)))
}

func (q QuadraticBezier) EntryTangent() Vec2 { return q.B.Sub(q.A).Normalized() }
func (q QuadraticBezier) ExitTangent() Vec2  { return q.C.Sub(q.B).Normalized() }

func (q QuadraticBezier) EnclosingPolygon() []Vec2 { return []Vec2{q.A, q.B, q.C} }

func (q QuadraticBezier) CriticalPoints() []Coord {
	dd := q.derivativeLine()
	tx := dd.A.X / (dd.A.X - dd.B.X)
	ty := dd.A.Y / (dd.A.Y - dd.B.Y)

	v := []Coord{0.0, tx, ty, 1.0}
	out := v[:0]
	for _, t := range v {
		if Inside01(t) {
			out = append(out, t)
		}
	}
	sort.Float64s(out)
	return dedupCoords(out)
}

func (q QuadraticBezier) IsLine() bool { return false }

func (q QuadraticBezier) String() string {
	return fmt.Sprintf("QuadraticBezier(%v,%v,%v)", q.A, q.B, q.C)
}

func dedupCoords(v []Coord) []Coord {
	if len(v) < 2 {
		return v
	}
	j := 0
	for i := 1; i < len(v); i++ {
		if v[j] != v[i] {
			j++
			v[j] = v[i]
		}
	}
	return v[:j+1]
}
