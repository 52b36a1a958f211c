package curvemesh

import "math"

// CurveVertices applies the Loop-Blinn method to compute the implicit-curve
// texture coordinates for curve's control polygon. It panics for Line,
// since a line carries no implicit curve to clip against.
func CurveVertices(curve Curve) []CurveVertex {
	sign := -1.0
	if IsConvex(curve) {
		sign = 1.0
	}

	switch c := curve.(type) {
	case Line:
		panic("CurveVertices called on a Line")

	case QuadraticBezier:
		return []CurveVertex{
			{Pos: c.A, Tex: Vec4{X: 0.0, Y: 0.0, Z: 1.0, W: sign}},
			{Pos: c.B, Tex: Vec4{X: 0.0, Y: 0.5, Z: 1.0, W: sign}},
			{Pos: c.C, Tex: Vec4{X: 1.0, Y: 1.0, Z: 1.0, W: sign}},
		}

	case CubicBezier:
		return cubicCurveVertices(c)

	case EllipticArc:
		local := c.enclosingPolygonLocalSpace()
		vertices := make([]CurveVertex, len(local))
		for i, p := range local {
			kx := p.X / c.Radii.X
			ky := p.Y / c.Radii.Y
			vertices[i] = CurveVertex{
				Pos: c.localToGlobal(p),
				Tex: Vec4{X: kx, Y: 1.0 - ky, Z: 1.0 + ky, W: sign},
			}
		}
		return vertices
	}

	panic("unknown curve type")
}

// cubicCurveVertices implements chapter 4 of the Loop-Blinn paper: classify
// the cubic's canonical form (serpentine, cusp, loop or degenerate to a
// quadratic) and compute the per-vertex texture coordinates from its
// inflection-point polynomial roots.
func cubicCurveVertices(c CubicBezier) []CurveVertex {
	c3 := c.A.Neg().Add(c.B.Scale(3.0)).Sub(c.C.Scale(3.0)).Add(c.D)
	c2 := c.A.Scale(3.0).Sub(c.B.Scale(6.0)).Add(c.C.Scale(3.0))
	c1 := c.A.Scale(-3.0).Add(c.B.Scale(3.0))

	d3 := c1.Cross(c2)
	d2 := c3.Cross(c1)
	d1 := c2.Cross(c3)

	var f0, f1, f2, f3 Vec4

	switch {
	case d1 != 0.0:
		disc := 3.0*d2*d2 - 4.0*d3*d1

		if disc >= 0.0 {
			dv := math.Sqrt(disc / 3.0)
			if d2 < 0.0 {
				dv = -dv
			}
			q := 0.5 * (d2 + dv)

			var x1, x2 Coord
			if q != 0.0 {
				x1 = q / d1
				x2 = (d3 / 3.0) / q
			}

			l := min(x1, x2)
			m := max(x1, x2)

			f0 = Vec4{X: l * m, Y: l * l * l, Z: m * m * m, W: 0.0}
			f1 = Vec4{X: -l - m, Y: -3.0 * l * l, Z: -3.0 * m * m, W: 0.0}
			f2 = Vec4{X: 1.0, Y: 3.0 * l, Z: 3.0 * m, W: 0.0}
			f3 = Vec4{X: 0.0, Y: -1.0, Z: -1.0, W: 0.0}

			if d1 < 0.0 {
				f0, f1, f2, f3 = f0.Neg(), f1.Neg(), f2.Neg(), f3.Neg()
			}
		} else {
			dv := math.Sqrt(-disc)
			if d2 < 0.0 {
				dv = -dv
			}
			q := 0.5 * (d2 + dv)

			x1 := q / d1
			x2 := (d2*d2/d1 - d3) / q

			dd := min(x1, x2)
			ee := max(x1, x2)

			f0 = Vec4{X: dd * ee, Y: dd * dd * ee, Z: dd * ee * ee, W: 0.0}
			f1 = Vec4{X: -dd - ee, Y: -dd*dd - 2.0*ee*dd, Z: -ee*ee - 2.0*dd*ee, W: 0.0}
			f2 = Vec4{X: 1.0, Y: ee + 2.0*dd, Z: dd + 2.0*ee, W: 0.0}
			f3 = Vec4{X: 0.0, Y: -1.0, Z: -1.0, W: 0.0}

			h1 := d3*d1 - d2*d2
			h2 := d3*d1 - d2*d2 + d1*d2 - d1*d1
			h := h1
			if math.Abs(h2) > math.Abs(h) {
				h = h2
			}
			h12 := d3*d1 - d2*d2 + d1*d2/2.0 - d1*d1/4.0
			if math.Abs(h12) > math.Abs(h) {
				h = h12
			}

			if d1*h > 0.0 {
				f0, f1, f2, f3 = f0.Neg(), f1.Neg(), f2.Neg(), f3.Neg()
			}
		}

	case d2 != 0.0:
		l := d3 / (3.0 * d2)

		f0 = Vec4{X: l, Y: l * l * l, Z: 1.0, W: 0.0}
		f1 = Vec4{X: -1.0, Y: -3.0 * l * l, Z: 0.0, W: 0.0}
		f2 = Vec4{X: 0.0, Y: -3.0 * l, Z: 0.0, W: 0.0}
		f3 = Vec4{X: 0.0, Y: -1.0, Z: 0.0, W: 0.0}

	case d3 != 0.0:
		f0 = Vec4{X: 0.0, Y: 0.0, Z: 1.0, W: 0.0}
		f1 = Vec4{X: 1.0, Y: 0.0, Z: 1.0, W: 0.0}
		f2 = Vec4{X: 0.0, Y: 1.0, Z: 0.0, W: 0.0}
		f3 = Vec4{X: 0.0, Y: 0.0, Z: 0.0, W: 0.0}

	default:
		return nil
	}

	return []CurveVertex{
		{Pos: c.A, Tex: f0},
		{Pos: c.B, Tex: f0.Add(f1.Scale(1.0 / 3.0))},
		{Pos: c.C, Tex: f0.Add(f1.Scale(2.0).Add(f2).Scale(1.0 / 3.0))},
		{Pos: c.D, Tex: f0.Add(f1).Add(f2).Add(f3)},
	}
}

// CombinedWindings measures the net winding of two curves' shared convex
// hull, used to tell whether fusing them makes a disjoint union (negative)
// or an overlapping intersection (non-negative).
func CombinedWindings(c1, c2 Curve) Coord {
	return c1.Winding() + c1.At(1.0).Cross(c2.At(0.0)) + c2.Winding() + c2.At(1.0).Cross(c1.At(0.0))
}

// FuseCurveVertices merges two curves' Loop-Blinn vertices into one convex
// fan, extrapolating each curve's own texture coordinates onto the fused
// hull so a single fan can be clipped against both curves at once.
func FuseCurveVertices(c1, c2 Curve) []DoubleCurveVertex {
	disjointUnion := CombinedWindings(c1, c2) < 0.0

	t1 := CurveVertices(c1)
	t2 := CurveVertices(c2)

	points := make([]Vec2, 0, len(t1)+len(t2))
	for _, v := range t1 {
		points = append(points, v.Pos)
	}
	for _, v := range t2 {
		points = append(points, v.Pos)
	}
	hull := ConvexHull(points)

	vertices := make([]DoubleCurveVertex, len(hull))
	for i, p := range hull {
		vertices[i] = DoubleCurveVertex{
			Pos:           p,
			Tex0:          coordExtrapolator(t1, p),
			Tex1:          coordExtrapolator(t2, p),
			DisjointUnion: disjointUnion,
		}
	}
	return vertices
}

// coordExtrapolator extrapolates a texture coordinate at x from a curve's
// vertex set: direct lookup for 0 or 1 vertices, linear extrapolation along
// a segment for 2, and barycentric extrapolation from the first non-
// degenerate triangle found in the vertex fan for 3 or more.
func coordExtrapolator(vertices []CurveVertex, x Vec2) Vec4 {
	switch len(vertices) {
	case 0:
		return Vec4{}
	case 1:
		return vertices[0].Tex
	case 2:
		va, vb := vertices[0], vertices[1]
		dx := vb.Pos.Sub(va.Pos)
		t := x.Sub(va.Pos).Dot(dx) / dx.LengthSq()
		return va.Tex.Add(vb.Tex.Sub(va.Tex).Scale(t))
	}

	i, ik, ik2 := 0, 1, 2
	for i < len(vertices) {
		ik = (i + 1) % len(vertices)
		ik2 = (i + 2) % len(vertices)

		winding := vertices[i].Pos.Cross(vertices[ik].Pos) +
			vertices[ik].Pos.Cross(vertices[ik2].Pos) +
			vertices[ik2].Pos.Cross(vertices[i].Pos)

		if !RoughlyZeroSquared(winding) {
			break
		}
		i++
	}

	if i == len(vertices) {
		imin, imax := 0, 0
		for j := 1; j < len(vertices); j++ {
			if vertices[imin].Pos.X > vertices[j].Pos.X {
				imin = j
			}
			if vertices[imax].Pos.X < vertices[j].Pos.X {
				imax = j
			}
		}
		return coordExtrapolator([]CurveVertex{vertices[imin], vertices[imax]}, x)
	}

	a := vertices[i].Pos
	dv1 := vertices[ik].Pos.Sub(a)
	dv2 := vertices[ik2].Pos.Sub(a)
	k := dv1.Cross(dv2)

	ta := vertices[i].Tex
	tb := vertices[ik].Tex
	tc := vertices[ik2].Tex

	u := x.Sub(a).Cross(dv2) / k
	v := -x.Sub(a).Cross(dv1) / k
	return ta.Add(tb.Sub(ta).Scale(u)).Add(tc.Sub(ta).Scale(v))
}
