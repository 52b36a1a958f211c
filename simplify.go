package curvemesh

import (
	"math"
	"sort"
)

// SimplifyCurves drops degenerate curves and reduces each remaining curve to
// a simpler form where possible: near-collinear quadratics and cubics become
// one or two lines, cubics reducible to quadratics are demoted, cubics with
// loops, cusps or inflection points are split at them, and elliptic arcs
// whose radii have collapsed become line segments.
func SimplifyCurves(curves []Curve) []Curve {
	out := make([]Curve, 0, len(curves))
	for _, c := range curves {
		if !IsCurveDegenerate(c) {
			out = simplifyCurve(out, c)
		}
	}
	kept := out[:0]
	for _, c := range out {
		if !IsCurveDegenerate(c) {
			kept = append(kept, c)
		}
	}
	return kept
}

// IsCurveDegenerate reports whether a curve's control points have all
// collapsed together, making it a single point.
func IsCurveDegenerate(c Curve) bool {
	switch v := c.(type) {
	case Line:
		return v.A.RoughlyEquals(v.B)
	case QuadraticBezier:
		return v.A.RoughlyEquals(v.B) && v.B.RoughlyEquals(v.C)
	case CubicBezier:
		return v.A.RoughlyEquals(v.B) && v.B.RoughlyEquals(v.C) && v.C.RoughlyEquals(v.D)
	case EllipticArc:
		return v.Radii.RoughlyZero()
	default:
		return false
	}
}

func simplifyCurve(out []Curve, c Curve) []Curve {
	switch v := c.(type) {
	case Line:
		return append(out, Line{A: v.A, B: v.B})
	case QuadraticBezier:
		return simplifyQuadraticBezier(out, v)
	case CubicBezier:
		return simplifyCubicBezier(out, v)
	case EllipticArc:
		return simplifyEllipticArc(out, v)
	default:
		return append(out, c)
	}
}

func simplifyQuadraticBezier(out []Curve, q QuadraticBezier) []Curve {
	switch {
	case q.A.RoughlyEquals(q.B):
		return append(out, Line{A: q.A.Add(q.B).Div(2.0), B: q.C})
	case q.B.RoughlyEquals(q.C):
		return append(out, Line{A: q.A, B: q.B.Add(q.C).Div(2.0)})
	case RoughlyZero(q.C.Sub(q.B).Normalized().Cross(q.B.Sub(q.A).Normalized())):
		d := q.derivativeLine()
		tm := d.A.X / (d.A.X - d.B.X)
		if tm < 0.0 || tm > 1.0 {
			return append(out, Line{A: q.A, B: q.C})
		}
		mi := q.At(tm)
		out = append(out, Line{A: q.A, B: mi})
		return append(out, Line{A: mi, B: q.C})
	default:
		return append(out, q)
	}
}

func simplifyCubicBezier(out []Curve, c CubicBezier) []Curve {
	switch {
	case c.A.RoughlyEquals(c.B) && c.C.RoughlyEquals(c.D):
		return append(out, Line{A: c.A.Add(c.B).Div(2.0), B: c.C.Add(c.D).Div(2.0)})

	case (c.A.RoughlyEquals(c.B) || RoughlyZero(c.B.Sub(c.A).Normalized().Cross(c.C.Sub(c.B).Normalized()))) &&
		(c.A.RoughlyEquals(c.B) || RoughlyZero(c.D.Sub(c.C).Normalized().Cross(c.C.Sub(c.B).Normalized()))):
		roots := c.Derivative().IntersectionX(0.0).AsSlice()
		vec := make([]Coord, 0, len(roots)+2)
		vec = append(vec, roots...)
		vec = append(vec, 0.0, 1.0)
		filtered := vec[:0]
		for _, t := range vec {
			if Inside01(t) {
				filtered = append(filtered, t)
			}
		}
		sort.Float64s(filtered)
		for i := 1; i < len(filtered); i++ {
			out = append(out, Line{A: c.At(filtered[i-1]), B: c.At(filtered[i])})
		}
		return out

	case c.A.Sub(c.B.Scale(3)).Add(c.C.Scale(3)).Sub(c.D).RoughlyZero():
		b1 := c.B.Scale(3).Sub(c.A)
		b2 := c.C.Scale(3).Sub(c.D)
		return append(out, QuadraticBezier{A: c.A, B: b1.Add(b2).Div(4.0), C: c.C})

	default:
		return simplifyCubicBezierGeneral(out, c)
	}
}

func simplifyCubicBezierGeneral(out []Curve, c CubicBezier) []Curve {
	roots := []Coord{0.0, 1.0}

	da := c.B.Sub(c.A)
	db := c.C.Sub(c.B)
	dc := c.D.Sub(c.C)

	ab := da.Cross(db)
	ac := da.Cross(dc)
	bc := db.Cross(dc)

	if ac*ac <= 4.0*ab*bc {
		c3 := da.Add(dc).Sub(db.Scale(2.0))

		if !RoughlyZero(c3.Y) {
			c3 = Vec2{c3.X, -c3.Y}
			da = da.RotScale(c3)
			db = db.RotScale(c3)
			dc = dc.RotScale(c3)
			c3 = da.Add(dc).Sub(db.Scale(2.0))
		}

		c2 := db.Sub(da).Scale(3.0)
		c1 := da.Scale(3.0)

		bb := -c1.Y / c2.Y
		s1 := c1.X / c3.X
		s2 := c2.X / c3.X

		roots = append(roots, FindRootsQuadratic(1.0, -bb, bb*(bb+s2)+s1).AsSlice()...)
	}

	axby := c.A.X * c.B.Y
	axcy := c.A.X * c.C.Y
	axdy := c.A.X * c.D.Y
	bxay := c.B.X * c.A.Y
	bxcy := c.B.X * c.C.Y
	bxdy := c.B.X * c.D.Y
	cxay := c.C.X * c.A.Y
	cxby := c.C.X * c.B.Y
	cxdy := c.C.X * c.D.Y
	dxay := c.D.X * c.A.Y
	dxby := c.D.X * c.B.Y
	dxcy := c.D.X * c.C.Y

	k2 := axby - 2.0*axcy + axdy - bxay + 3.0*bxcy - 2.0*bxdy + 2.0*cxay - 3.0*cxby + cxdy - dxay + 2.0*dxby - dxcy
	k1 := -2.0*axby + 3.0*axcy - axdy + 2.0*bxay - 3.0*bxcy + bxdy - 3.0*cxay + 3.0*cxby + dxay - dxby
	k0 := axby - axcy - bxay + bxcy + cxay - cxby

	roots = append(roots, FindRootsQuadratic(k2, k1, k0).AsSlice()...)

	filtered := roots[:0]
	for _, t := range roots {
		if Inside01(t) {
			filtered = append(filtered, t)
		}
	}
	sort.Float64s(filtered)

	for i := 1; i < len(filtered); i++ {
		out = append(out, c.Subcurve(filtered[i-1], filtered[i]))
	}
	return out
}

func simplifyEllipticArc(out []Curve, a EllipticArc) []Curve {
	if RoughlyZero(a.Radii.X) || RoughlyZero(a.Radii.Y) {
		tests := []Coord{0.0, 1.0}

		k := math.Ceil(a.lesserAngle() / (math.Pi / 2))
		kn := math.Floor(a.greaterAngle() / (math.Pi / 2))
		for k <= kn {
			t := a.angleToParam(k * (math.Pi / 2))
			if Inside01(t) {
				tests = append(tests, t)
			}
			k++
		}

		sort.Float64s(tests)
		for i := 1; i < len(tests); i++ {
			out = append(out, Line{A: a.At(tests[i-1]), B: a.At(tests[i])})
		}
		return out
	}
	return append(out, a)
}
