package curvemesh

import "sort"

func insideSegmentCollinear(x0, x1, y Vec2, strict bool) bool {
	d := x1.Sub(x0).Dot(y.Sub(x0))
	if strict {
		return d > 0.0 && d < x1.Sub(x0).LengthSq()
	}
	return d >= 0.0 && d <= x1.Sub(x0).LengthSq()
}

func segmentsIntersect(p0, p1, q0, q1 Vec2, strict bool) bool {
	crossq0 := p1.Sub(p0).Cross(q0.Sub(p0))
	crossq1 := p1.Sub(p0).Cross(q1.Sub(p0))
	crossp0 := q1.Sub(q0).Cross(p0.Sub(q0))
	crossp1 := q1.Sub(q0).Cross(p1.Sub(q0))

	if p0.RoughlyEquals(p1) {
		return !strict && RoughlyZeroSquared(crossp0) && insideSegmentCollinear(q0, q1, p0, strict)
	}
	if q0.RoughlyEquals(q1) {
		return !strict && RoughlyZeroSquared(crossq0) && insideSegmentCollinear(p0, p1, q0, strict)
	}

	if strict {
		if p0.RoughlyEquals(q0) || p0.RoughlyEquals(q1) || p1.RoughlyEquals(q0) || p1.RoughlyEquals(q1) {
			return false
		}
	}

	if RoughlyZeroSquared(crossq0) {
		return !strict && insideSegmentCollinear(p0, p1, q0, strict)
	}
	if RoughlyZeroSquared(crossq1) {
		return !strict && insideSegmentCollinear(p0, p1, q1, strict)
	}
	if RoughlyZeroSquared(crossp0) {
		return !strict && insideSegmentCollinear(q0, q1, p0, strict)
	}
	if RoughlyZeroSquared(crossp1) {
		return !strict && insideSegmentCollinear(q0, q1, p1, strict)
	}

	if crossq0 < 0.0 && crossq1 < 0.0 {
		return false
	}
	if crossq0 > 0.0 && crossq1 > 0.0 {
		return false
	}
	if crossp0 < 0.0 && crossp1 < 0.0 {
		return false
	}
	if crossp0 > 0.0 && crossp1 > 0.0 {
		return false
	}

	return true
}

// PolygonWinding returns twice the signed area of a closed polygon given as
// a sequence of vertices.
func PolygonWinding(poly []Vec2) Coord {
	var winding Coord
	for i := range poly {
		ik := (i + 1) % len(poly)
		winding += poly[i].Cross(poly[ik])
	}
	return winding
}

// segmentEquivalent reports whether poly has collapsed to a segment (either
// literally two points, or a zero-area polygon whose extremes form one),
// returning its two endpoints.
func segmentEquivalent(poly []Vec2) (Vec2, Vec2, bool) {
	if len(poly) == 2 {
		return poly[0], poly[1], true
	}
	if !RoughlyZeroSquared(PolygonWinding(poly)) {
		return Vec2{}, Vec2{}, false
	}

	imin, imax := 0, 0
	for i := 1; i < len(poly); i++ {
		if poly[imin].X > poly[i].X {
			imin = i
		}
		if poly[imax].X < poly[i].X {
			imax = i
		}
	}
	return poly[imin], poly[imax], true
}

func polygonContainsPoint(poly []Vec2, p Vec2, strict bool) bool {
	contains := false

	for i := range poly {
		p0 := poly[i]
		var p1 Vec2
		if i == 0 {
			p1 = poly[len(poly)-1]
		} else {
			p1 = poly[i-1]
		}

		if p0.RoughlyEquals(p1) {
			continue
		}

		if strict && RoughlyZeroSquared(p1.Sub(p0).Cross(p.Sub(p0))) &&
			insideSegmentCollinear(p0, p1, p, false) {
			return false
		}

		if p0.X < p.X && p1.X < p.X {
			continue
		}
		if p0.X < p.X {
			p0 = p1.Add(p0.Sub(p1).Scale((p.X - p1.X) / (p0.X - p1.X)))
		}
		if p1.X < p.X {
			p1 = p0.Add(p1.Sub(p0).Scale((p.X - p0.X) / (p1.X - p0.X)))
		}
		if (p0.Y >= p.Y) != (p1.Y >= p.Y) {
			contains = !contains
		}
	}

	return contains
}

func polygonSegmentIntersect(poly []Vec2, a, b Vec2, strict bool) bool {
	for i := range poly {
		p0 := poly[i]
		var p1 Vec2
		if i == 0 {
			p1 = poly[len(poly)-1]
		} else {
			p1 = poly[i-1]
		}
		if segmentsIntersect(p0, p1, a, b, strict) {
			return true
		}
	}

	return polygonContainsPoint(poly, a, strict) || polygonContainsPoint(poly, b, strict)
}

// PolygonsOverlap reports whether two convex polygons overlap. strict
// excludes mere boundary touching from counting as overlap.
func PolygonsOverlap(poly0, poly1 []Vec2, strict bool) bool {
	p0, p1, ok0 := segmentEquivalent(poly0)
	q0, q1, ok1 := segmentEquivalent(poly1)

	switch {
	case ok0 && ok1:
		return segmentsIntersect(p0, p1, q0, q1, strict)
	case ok0:
		return polygonSegmentIntersect(poly1, p0, p1, strict)
	case ok1:
		return polygonSegmentIntersect(poly0, q0, q1, strict)
	}

	for j := range poly0 {
		p0 := poly0[j]
		var p1 Vec2
		if j == 0 {
			p1 = poly0[len(poly0)-1]
		} else {
			p1 = poly0[j-1]
		}
		for i := range poly1 {
			q0 := poly1[i]
			var q1 Vec2
			if i == 0 {
				q1 = poly1[len(poly1)-1]
			} else {
				q1 = poly1[i-1]
			}
			if segmentsIntersect(p0, p1, q0, q1, strict) {
				return true
			}
		}
	}

	for _, p := range poly0 {
		if polygonContainsPoint(poly1, p, strict) {
			return true
		}
	}
	for _, p := range poly1 {
		if polygonContainsPoint(poly0, p, strict) {
			return true
		}
	}

	return false
}

// ConvexHull computes the convex hull of points via the monotone-chain
// algorithm, run forwards then backwards over the canonically-sorted
// points. The non-strict (>= 0.0) turn test intentionally keeps collinear
// points off the hull rather than leaving them on it.
func ConvexHull(points []Vec2) []Vec2 {
	pts := make([]Vec2, len(points))
	copy(pts, points)

	sort.Slice(pts, func(i, j int) bool { return canonical(pts[i], pts[j]) < 0 })
	pts = dedupVec2(pts)

	hull := make([]Vec2, 0, len(pts)+1)
	for pass := 0; pass < 2; pass++ {
		oldLen := len(hull)
		hull = append(hull, pts[0], pts[1])

		for i := 2; i < len(pts); i++ {
			for len(hull) > oldLen+1 &&
				hull[len(hull)-1].Sub(hull[len(hull)-2]).Cross(pts[i].Sub(hull[len(hull)-1])) >= 0.0 {
				hull = hull[:len(hull)-1]
			}
			hull = append(hull, pts[i])
		}

		hull = hull[:len(hull)-1]
		reverseVec2(pts)
	}

	reverseVec2(hull)
	return hull
}

func dedupVec2(v []Vec2) []Vec2 {
	if len(v) < 2 {
		return v
	}
	j := 0
	for i := 1; i < len(v); i++ {
		if !v[j].Equals(v[i]) {
			j++
			v[j] = v[i]
		}
	}
	return v[:j+1]
}

func reverseVec2(v []Vec2) {
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}

func sameDirection(u, v Vec2) bool {
	return RoughlyZeroSquared(u.Cross(v)) && u.Dot(v) <= 0.0
}

// SimplifyPolygon removes collinear vertices from a closed polygon, or
// collapses it to its two extreme points if every vertex is collinear.
func SimplifyPolygon(poly []Vec2) []Vec2 {
	if len(poly) < 3 {
		out := make([]Vec2, len(poly))
		copy(out, poly)
		return out
	}

	n := len(poly)
	istart := 0
	for istart < n {
		ik := (istart + 1) % n
		ip := (istart + n - 1) % n

		if !sameDirection(poly[ik].Sub(poly[istart]), poly[ip].Sub(poly[istart])) {
			break
		}
		istart++
	}

	if istart == n {
		imin, imax := 0, 0
		for i := 1; i < n; i++ {
			if poly[imin].X > poly[i].X {
				imin = i
			}
			if poly[imax].X < poly[i].X {
				imax = i
			}
		}
		return []Vec2{poly[imin], poly[imax]}
	}

	pts := []Vec2{poly[istart]}
	for k := 0; k < n-1; k++ {
		i := (istart + 1 + k) % n
		if !sameDirection(poly[(i+1)%n].Sub(poly[i]), pts[len(pts)-1].Sub(poly[i])) {
			pts = append(pts, poly[i])
		}
	}
	return pts
}
