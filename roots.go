package curvemesh

import "math"

// Roots holds up to three real roots of a polynomial, sorted ascending.
// It plays the role of the Rust `roots` crate's `Roots<f64>` enum at the
// call sites in this module (Line/QuadraticBezier/CubicBezier intersection
// and the cubic canonical-form loop/cusp detection in simplify.go).
type Roots struct {
	vals [3]Coord
	n    int
}

// AsSlice returns the roots in ascending order.
func (r Roots) AsSlice() []Coord { return r.vals[:r.n] }

func rootsOf(vs ...Coord) Roots {
	var r Roots
	for _, v := range vs {
		if !math.IsNaN(v) {
			r.vals[r.n] = v
			r.n++
		}
	}
	// insertion sort, n <= 3
	for i := 1; i < r.n; i++ {
		for j := i; j > 0 && r.vals[j-1] > r.vals[j]; j-- {
			r.vals[j-1], r.vals[j] = r.vals[j], r.vals[j-1]
		}
	}
	return r
}

// FindRootsLinear solves a*t + b = 0.
func FindRootsLinear(a, b Coord) Roots {
	if a == 0 {
		return Roots{}
	}
	return rootsOf(-b / a)
}

// FindRootsQuadratic solves a*t^2 + b*t + c = 0.
func FindRootsQuadratic(a, b, c Coord) Roots {
	if a == 0 {
		return FindRootsLinear(b, c)
	}
	disc := b*b - 4*a*c
	switch {
	case disc < 0:
		return Roots{}
	case disc == 0:
		return rootsOf(-b / (2 * a))
	default:
		sq := math.Sqrt(disc)
		// Numerically stable form, avoiding cancellation.
		q := -0.5 * (b + math.Copysign(sq, b))
		r1 := q / a
		var r2 Coord
		if q != 0 {
			r2 = c / q
		} else {
			r2 = -b / a
		}
		return rootsOf(r1, r2)
	}
}

// FindRootsCubic solves a*t^3 + b*t^2 + c*t + d = 0 via Cardano's method.
func FindRootsCubic(a, b, c, d Coord) Roots {
	if a == 0 {
		return FindRootsQuadratic(b, c, d)
	}

	// Normalize to t^3 + pt^2 + qt + r = 0
	p := b / a
	q := c / a
	r := d / a

	// Depress: t = x - p/3
	shift := p / 3
	pp := q - p*p/3
	qq := 2*p*p*p/27 - p*q/3 + r

	if RoughlyZero(pp) && RoughlyZero(qq) {
		return rootsOf(-shift)
	}

	disc := qq*qq/4 + pp*pp*pp/27

	switch {
	case disc > 0:
		sq := math.Sqrt(disc)
		u := cbrt(-qq/2 + sq)
		v := cbrt(-qq/2 - sq)
		return rootsOf(u + v - shift)
	case RoughlyZero(disc):
		u := cbrt(-qq / 2)
		return rootsOf(2*u-shift, -u-shift)
	default:
		theta := math.Acos(3 * qq / (pp * 2) * math.Sqrt(-3/pp))
		m := 2 * math.Sqrt(-pp/3)
		r1 := m*math.Cos(theta/3) - shift
		r2 := m*math.Cos((theta-2*math.Pi)/3) - shift
		r3 := m*math.Cos((theta-4*math.Pi)/3) - shift
		return rootsOf(r1, r2, r3)
	}
}

func cbrt(x Coord) Coord {
	if x < 0 {
		return -math.Cbrt(-x)
	}
	return math.Cbrt(x)
}
