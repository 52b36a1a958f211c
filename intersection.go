package curvemesh

// IntersectionPair holds a matched pair of curve parameters: T1 is the
// parameter on the first curve, T2 on the second.
type IntersectionPair struct{ T1, T2 Coord }

// Intersect finds all parameter pairs at which curve1 and curve2 cross,
// given each curve's own critical points (its monotone-piece boundaries).
// Line/line pairs are solved in closed form, line/curve pairs via root
// finding along the line, and curve/curve pairs via recursive bounding-box
// bisection over the curves' monotone pieces.
func Intersect(curve1, curve2 Curve, cp1, cp2 []Coord) []IntersectionPair {
	var out []IntersectionPair

	l1, isLine1 := curve1.(Line)
	l2, isLine2 := curve2.(Line)

	switch {
	case isLine1 && isLine2:
		out = intersectionLineLine(out, l1, l2)
	case isLine1:
		ints := curve2.IntersectionSeg(l1.A, l1.B)
		df := l1.B.Sub(l1.A)
		for _, root := range ints.AsSlice() {
			if !Inside01(root) {
				continue
			}
			pos := df.Dot(curve2.At(root).Sub(l1.A)) / df.LengthSq()
			out = append(out, IntersectionPair{T1: pos, T2: root})
		}
	case isLine2:
		ints := curve1.IntersectionSeg(l2.A, l2.B)
		df := l2.B.Sub(l2.A)
		for _, root := range ints.AsSlice() {
			if !Inside01(root) {
				continue
			}
			pos := df.Dot(curve1.At(root).Sub(l2.A)) / df.LengthSq()
			out = append(out, IntersectionPair{T1: root, T2: pos})
		}
	default:
		out = intersectionGeneric(out, curve1, curve2, cp1, cp2)
	}

	return out
}

func intersectionLineLine(out []IntersectionPair, l1, l2 Line) []IntersectionPair {
	p := l1.A
	q := l2.A
	r := l1.B.Sub(l1.A)
	s := l2.B.Sub(l2.A)

	rr := r.Normalized()
	ss := s.Normalized()

	k := r.Cross(s)
	kk := rr.Cross(ss)

	if RoughlyZeroSquared(kk) {
		var rs Vec2
		if rr.Dot(ss) > 0.0 {
			rs = rr.Add(ss).Normalized()
		} else {
			rs = rr.Sub(ss).Normalized()
		}

		if !RoughlyZeroSquared(q.Sub(p).Cross(rs)) {
			return out
		}

		tab0 := q.Sub(p).Dot(r) / r.LengthSq()
		tab1 := tab0 + s.Dot(r)/r.LengthSq()

		tba0 := p.Sub(q).Dot(s) / s.LengthSq()
		tba1 := tba0 + r.Dot(s)/s.LengthSq()

		if !(1.0 > min(tab0, tab1) && 0.0 < max(tab0, tab1)) {
			return out
		}

		switch {
		case tab0 >= 0.0 && tab0 <= 1.0: // l1.a -- l2.a -- l1.b, with l2.b elsewhere
			switch {
			case tab1 > 1.0: // l2.b to the right of l1
				out = append(out, IntersectionPair{tab0, 0.0}, IntersectionPair{1.0, tba1})
			case tab1 < 0.0: // l2.b to the left of l1
				out = append(out, IntersectionPair{tab0, 0.0}, IntersectionPair{0.0, tba0})
			default: // l2 inside l1
				out = append(out, IntersectionPair{tab0, 0.0}, IntersectionPair{tab1, 1.0})
			}
		case tab1 > 0.0 && tab1 <= 1.0: // l1.a -- l2.b -- l1.b with l2.a elsewhere
			if tab0 < 0.0 { // l2.a to the left of l1
				out = append(out, IntersectionPair{0.0, tba0}, IntersectionPair{tab1, 1.0})
			} else { // l2.a to the right of l1
				out = append(out, IntersectionPair{1.0, tba1}, IntersectionPair{tab1, 1.0})
			}
		default: // l1 inside l2
			out = append(out, IntersectionPair{0.0, tba0}, IntersectionPair{1.0, tba1})
		}
		return out
	}

	t := q.Sub(p).Cross(s) / k
	u := q.Sub(p).Cross(r) / k
	return append(out, IntersectionPair{t, u})
}

func intersectionGeneric(out []IntersectionPair, c1, c2 Curve, cp1, cp2 []Coord) []IntersectionPair {
	for i := 0; i+1 < len(cp1); i++ {
		for j := 0; j+1 < len(cp2); j++ {
			out = intersectionGenericMonotonous(out, c1, c2, cp1[i], cp1[i+1], cp2[j], cp2[j+1])
		}
	}
	return out
}

func isRectangleNegligible(r Rect) bool {
	return RoughlyZero(r.Width*2.0) && RoughlyZero(r.Height*2.0)
}

func intersectionGenericMonotonous(out []IntersectionPair, c1, c2 Curve, t1l, t1r, t2l, t2r Coord) []IntersectionPair {
	if c1.At(t1l).Equals(c2.At(t2l)) {
		out = append(out, IntersectionPair{t1l, t2l})
	}
	if c1.At(t1l).Equals(c2.At(t2r)) {
		out = append(out, IntersectionPair{t1l, t2r})
	}
	if c1.At(t1r).Equals(c2.At(t2l)) {
		out = append(out, IntersectionPair{t1r, t2l})
	}
	if c1.At(t1r).Equals(c2.At(t2r)) {
		out = append(out, IntersectionPair{t1r, t2r})
	}

	bb1s := EnclosingRectOfTwoPoints(c1.At(t1l), c1.At(t1r))
	bb2s := EnclosingRectOfTwoPoints(c2.At(t2l), c2.At(t2r))

	bb, ok := bb1s.StrictIntersection(bb2s)
	if !ok {
		return out
	}

	t1m := (t1l + t1r) / 2.0
	t2m := (t2l + t2r) / 2.0

	r1 := isRectangleNegligible(bb1s)
	r2 := isRectangleNegligible(bb2s)

	switch {
	case !r1 && !r2:
		out = intersectionGenericMonotonous(out, c1, c2, t1l, t1m, t2l, t2m)
		out = intersectionGenericMonotonous(out, c1, c2, t1l, t1m, t2m, t2r)
		out = intersectionGenericMonotonous(out, c1, c2, t1m, t1r, t2l, t2m)
		out = intersectionGenericMonotonous(out, c1, c2, t1m, t1r, t2m, t2r)
	case r1 && !r2:
		out = intersectionGenericMonotonous(out, c1, c2, t1l, t1r, t2l, t2m)
		out = intersectionGenericMonotonous(out, c1, c2, t1l, t1r, t2m, t2r)
	case !r1 && r2:
		out = intersectionGenericMonotonous(out, c1, c2, t1l, t1m, t2l, t2r)
		out = intersectionGenericMonotonous(out, c1, c2, t1m, t1r, t2l, t2r)
	default:
		if bb.ContainsPoint(c1.At(t1l)) && bb.ContainsPoint(c2.At(t2l)) {
			out = append(out, IntersectionPair{t1l, t2l})
		}
		if bb.ContainsPoint(c1.At(t1l)) && bb.ContainsPoint(c2.At(t2r)) {
			out = append(out, IntersectionPair{t1l, t2r})
		}
		if bb.ContainsPoint(c1.At(t1r)) && bb.ContainsPoint(c2.At(t2l)) {
			out = append(out, IntersectionPair{t1r, t2l})
		}
		if bb.ContainsPoint(c1.At(t1r)) && bb.ContainsPoint(c2.At(t2r)) {
			out = append(out, IntersectionPair{t1r, t2r})
		}

		curveRoots := func(curve Curve, tl, tr Coord) (Coord, bool) {
			var vals []Coord
			for _, roots := range []Roots{
				curve.IntersectionX(bb.X),
				curve.IntersectionX(bb.X + bb.Width),
				curve.IntersectionY(bb.Y),
				curve.IntersectionY(bb.Y + bb.Height),
			} {
				for _, t := range roots.AsSlice() {
					if t >= tl && t <= tr {
						vals = append(vals, t)
					}
				}
			}
			if len(vals) == 0 {
				return 0, false
			}
			var sum Coord
			for _, v := range vals {
				sum += v
			}
			return sum / Coord(len(vals)), true
		}

		if r1v, ok1 := curveRoots(c1, t1l, t1r); ok1 {
			if r2v, ok2 := curveRoots(c2, t2l, t2r); ok2 {
				out = append(out, IntersectionPair{r1v, r2v})
			}
		}
	}

	return out
}
