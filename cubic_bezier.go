package curvemesh

import (
	"fmt"
	"sort"
)

// CubicBezier is a cubic Bézier curve with control points A, B, C, D.
type CubicBezier struct{ A, B, C, D Vec2 }

func NewCubicBezier(a, b, c, d Vec2) Curve { return CubicBezier{A: a, B: b, C: c, D: d} }

func (c CubicBezier) At(t Coord) Vec2 {
	ct := 1 - t
	return c.A.Scale(ct * ct * ct).
		Add(c.B.Scale(3 * ct * ct * t)).
		Add(c.C.Scale(3 * ct * t * t)).
		Add(c.D.Scale(t * t * t))
}

func (c CubicBezier) derivativeQuad() QuadraticBezier {
	return QuadraticBezier{
		A: c.B.Sub(c.A).Scale(3),
		B: c.C.Sub(c.B).Scale(3),
		C: c.D.Sub(c.C).Scale(3),
	}
}

func (c CubicBezier) Derivative() Curve { return c.derivativeQuad() }

func (c CubicBezier) Subcurve(l, r Coord) Curve {
	a := c.At(l)
	d := c.At(r)

	dd := c.derivativeQuad()
	d1 := dd.At(l).Scale(r - l)
	d2 := dd.At(r).Scale(r - l)

	b := d1.Div(3).Add(a)
	cc := d.Sub(d2.Div(3))

	return CubicBezier{A: a, B: b, C: cc, D: d}
}

func (c CubicBezier) Reverse() Curve {
	return CubicBezier{A: c.D, B: c.C, C: c.B, D: c.A}
}

func (c CubicBezier) Winding() Coord {
	return (6*c.A.Cross(c.B) + 3*c.A.Cross(c.C) + c.A.Cross(c.D) +
		3*c.B.Cross(c.C) + 3*c.B.Cross(c.D) + 6*c.C.Cross(c.D)) / 10
}

func (c CubicBezier) AngleKey() AngleKey {
	dv1 := c.B.Sub(c.A)
	dv2 := c.C.Sub(c.B)
	dv3 := c.D.Sub(c.C)

	if dv1.RoughlyZero() {
		return c.derivativeQuad().AngleKey()
	}

	dt := 2 * dv1.Cross(dv2.Sub(dv1)) / dv1.LengthSq()
	ddt := (2*dv1.Cross(dv3.Sub(dv2.Scale(2)).Add(dv1)) - 8*dv1.Dot(dv2.Sub(dv1))*dt) / dv1.LengthSq()
	return AngleKey{T: dv1.Angle(), DT: dt, DDT: ddt}
}

func (c CubicBezier) IntersectionX(x Coord) Roots {
	return FindRootsCubic(
		-c.A.X+3*c.B.X-3*c.C.X+c.D.X,
		3*(c.A.X-2*c.B.X+c.C.X),
		3*(c.B.X-c.A.X),
		c.A.X-x)
}

func (c CubicBezier) IntersectionY(y Coord) Roots {
	return FindRootsCubic(
		-c.A.Y+3*c.B.Y-3*c.C.Y+c.D.Y,
		3*(c.A.Y-2*c.B.Y+c.C.Y),
		3*(c.B.Y-c.A.Y),
		c.A.Y-y)
}

func (c CubicBezier) IntersectionSeg(v1, v2 Vec2) Roots {
	dv := v1.Sub(v2)
	return FindRootsCubic(
		dv.Cross(c.A.Neg().Add(c.B.Scale(3)).Sub(c.C.Scale(3)).Add(c.D)),
		3*dv.Cross(c.A.Sub(c.B.Scale(2)).Add(c.C)),
		3*dv.Cross(c.B.Sub(c.A)),
		dv.Cross(c.A.Sub(v1)))
}

func (c CubicBezier) EntryTangent() Vec2 {
	if c.B.RoughlyEquals(c.A) {
		return c.derivativeQuad().EntryTangent()
	}
	return c.B.Sub(c.A).Normalized()
}

func (c CubicBezier) ExitTangent() Vec2 {
	if c.D.RoughlyEquals(c.C) {
		return c.derivativeQuad().ExitTangent()
	}
	return c.D.Sub(c.C).Normalized()
}

func (c CubicBezier) EnclosingPolygon() []Vec2 { return []Vec2{c.A, c.B, c.C, c.D} }

func (c CubicBezier) CriticalPoints() []Coord {
	dd := c.derivativeQuad()
	tx := FindRootsQuadratic(dd.A.X-2*dd.B.X+dd.C.X, 2*(dd.B.X-dd.A.X), dd.A.X)
	ty := FindRootsQuadratic(dd.A.Y-2*dd.B.Y+dd.C.Y, 2*(dd.B.Y-dd.A.Y), dd.A.Y)

	v := make([]Coord, 0, 4)
	v = append(v, 0.0)
	v = append(v, tx.AsSlice()...)
	v = append(v, ty.AsSlice()...)
	v = append(v, 1.0)

	out := v[:0]
	for _, t := range v {
		if Inside01(t) {
			out = append(out, t)
		}
	}
	sort.Float64s(out)
	return dedupCoords(out)
}

func (c CubicBezier) IsLine() bool { return false }

func (c CubicBezier) String() string {
	return fmt.Sprintf("CubicBezier(%v,%v,%v,%v)", c.A, c.B, c.C, c.D)
}
