package curvemesh

// MaxPolygonVertices and MaxCriticalPoints bound the enclosing-polygon and
// critical-point slices returned by curve implementations. The Rust
// original stack-allocates these as ArrayVec<[_; 6]>; Go has no inline
// stack array equivalent, so curve implementations return ordinary
// slices. Nothing in the package references these constants; they record
// the bounds only.
const (
	MaxPolygonVertices = 6
	MaxCriticalPoints  = 6
)

// Curve is the common interface implemented by Line, QuadraticBezier,
// CubicBezier and EllipticArc. It plays the role of the Rust original's
// `Curve` enum: a tagged union dispatched here through a Go interface and,
// where the concrete type matters (Loop-Blinn classification, line
// special-casing), a type switch.
type Curve interface {
	At(t Coord) Vec2
	Derivative() Curve
	Subcurve(l, r Coord) Curve
	Reverse() Curve
	Winding() Coord
	AngleKey() AngleKey

	IntersectionX(x Coord) Roots
	IntersectionY(y Coord) Roots
	IntersectionSeg(v1, v2 Vec2) Roots

	EntryTangent() Vec2
	ExitTangent() Vec2

	EnclosingPolygon() []Vec2
	CriticalPoints() []Coord

	IsLine() bool
	String() string
}

// BBox returns the axis-aligned bounding box of c, computed from its
// critical points.
func BBox(c Curve) Rect {
	pts := make([]Vec2, 0, len(c.CriticalPoints()))
	for _, t := range c.CriticalPoints() {
		pts = append(pts, c.At(t))
	}
	r, ok := EnclosingRect(pts)
	if !ok {
		// A curve always has at least its two endpoints as critical points.
		panic("curve has no critical points")
	}
	return r
}

// WindingRelativeTo computes c's winding contribution relative to a
// reference point v, used to pick a convex orientation consistently.
func WindingRelativeTo(c Curve, v Vec2) Coord {
	return c.Winding() - v.Cross(c.At(1.0).Sub(c.At(0.0)))
}

// WindingAtMidpoint computes the winding relative to the midpoint of the
// curve's chord, a sign-stable test for convexity.
func WindingAtMidpoint(c Curve) Coord {
	mid := c.At(0.0).Add(c.At(1.0)).Div(2.0)
	return WindingRelativeTo(c, mid)
}

// IsConvex reports whether the curve's winding relative to its chord
// midpoint is positive: the curve lies on the right of its start-to-end
// chord direction (the negative side of Vec2.Cross).
func IsConvex(c Curve) bool { return WindingAtMidpoint(c) > 0.0 }

// NoneCurve returns a degenerate zero-length line, used as a placeholder
// value when a curve is being moved out of a slot (mirrors the Rust
// original's Curve::none()).
func NoneCurve() Curve { return Line{A: Vec2{}, B: Vec2{}} }
