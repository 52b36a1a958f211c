package curvemesh

import "math"

// EllipticArcFromPathParams builds an EllipticArc from the SVG arc
// parameterization: the current point cur, the ellipse radii, its rotation
// xrot (radians), the large-arc and sweep flags, and the target endpoint.
// Follows the conversion described at
// https://svgwg.org/svg2-draft/implnote.html#ArcConversionEndpointToCenter.
func EllipticArcFromPathParams(cur, radii Vec2, xrot Coord, largeArc, sweep bool, target Vec2) Curve {
	xpun := cur.Sub(target).Div(2.0)
	xpr := xpun.RotateByAngle(-xrot)

	radii.X = math.Abs(radii.X)
	radii.Y = math.Abs(radii.Y)

	rr := radii.X*radii.X*xpr.Y*xpr.Y + radii.Y*radii.Y*xpr.X*xpr.X
	r2 := radii.X * radii.X * radii.Y * radii.Y

	var skr Coord
	if rr > r2 {
		radii = radii.Scale(math.Sqrt(rr / r2))
		skr = 0.0
	} else {
		skr = math.Sqrt((r2 - rr) / rr)
	}

	cpr := Vec2{skr * radii.X * xpr.Y / radii.Y, -skr * radii.Y * xpr.X / radii.X}
	if largeArc == sweep {
		cpr = cpr.Neg()
	}
	cpun := cpr.RotateByAngle(xrot).Add(target.Add(cur).Div(2.0))

	t1 := math.Atan2(radii.X*(xpr.Y-cpr.Y), radii.Y*(xpr.X-cpr.X))
	t2 := math.Atan2(radii.X*(-xpr.Y-cpr.Y), radii.Y*(-xpr.X-cpr.X))
	dt := t2 - t1

	if !sweep && dt > 0.0 {
		dt -= TwoPi
	} else if sweep && dt < 0.0 {
		dt += TwoPi
	}

	return EllipticArc{Center: cpun, Radii: radii, Crot: VecFromAngle(xrot), T1: t1, Dt: dt}
}

// CircleArc builds an EllipticArc tracing a circle of the given center and
// radius from v1 to v2, going counterclockwise if ccw is set.
func CircleArc(center Vec2, radius Coord, v1, v2 Vec2, ccw bool) Curve {
	return EllipticArc{
		Center: center,
		Radii:  Vec2{radius, radius},
		Crot:   v1.Normalized(),
		T1:     0.0,
		Dt:     WrapAngle360(v1.AngleBetween(v2), ccw),
	}
}
