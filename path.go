package curvemesh

import "fmt"

// PathCommand is a single drawing instruction in a Path. Use the
// constructor functions (MoveTo, LineTo, QuadraticBezierTo, CubicBezierTo,
// EllipticArcTo, ClosePath) to build one.
type PathCommand struct {
	kind pathCommandKind

	target Vec2
	ctl1   Vec2
	ctl2   Vec2

	radii    Vec2
	angle    Coord
	largeArc bool
	sweep    bool
}

type pathCommandKind int

const (
	cmdMoveTo pathCommandKind = iota
	cmdLineTo
	cmdQuadraticBezierTo
	cmdCubicBezierTo
	cmdEllipticArcTo
	cmdClosePath
)

func MoveTo(target Vec2) PathCommand { return PathCommand{kind: cmdMoveTo, target: target} }
func LineTo(target Vec2) PathCommand { return PathCommand{kind: cmdLineTo, target: target} }

func QuadraticBezierTo(ctl, target Vec2) PathCommand {
	return PathCommand{kind: cmdQuadraticBezierTo, ctl1: ctl, target: target}
}

func CubicBezierTo(ctl1, ctl2, target Vec2) PathCommand {
	return PathCommand{kind: cmdCubicBezierTo, ctl1: ctl1, ctl2: ctl2, target: target}
}

func EllipticArcTo(radii Vec2, angle Coord, largeArc, sweep bool, target Vec2) PathCommand {
	return PathCommand{kind: cmdEllipticArcTo, radii: radii, angle: angle, largeArc: largeArc, sweep: sweep, target: target}
}

func ClosePath() PathCommand { return PathCommand{kind: cmdClosePath} }

func (c PathCommand) String() string {
	switch c.kind {
	case cmdMoveTo:
		return fmt.Sprintf("MoveTo(%v)", c.target)
	case cmdLineTo:
		return fmt.Sprintf("LineTo(%v)", c.target)
	case cmdQuadraticBezierTo:
		return fmt.Sprintf("QuadraticBezierTo(%v, %v)", c.ctl1, c.target)
	case cmdCubicBezierTo:
		return fmt.Sprintf("CubicBezierTo(%v, %v, %v)", c.ctl1, c.ctl2, c.target)
	case cmdEllipticArcTo:
		largeStr, sweepStr := "small", "negative"
		if c.largeArc {
			largeStr = "large"
		}
		if c.sweep {
			sweepStr = "positive"
		}
		return fmt.Sprintf("EllipticArcTo(%v, %v, %v, %v, %v)", c.radii, c.angle, largeStr, sweepStr, c.target)
	case cmdClosePath:
		return "ClosePath()"
	default:
		return "?"
	}
}

// Path is a sequence of drawing commands.
type Path []PathCommand

// FillRule selects which faces of a self-intersecting path are filled.
type FillRule int

const (
	FillRuleEvenOdd FillRule = iota
	FillRuleNonZero
)

func (f FillRule) String() string {
	if f == FillRuleNonZero {
		return "NonZero"
	}
	return "EvenOdd"
}

// CurveComp is one MoveTo-delimited subpath, turned into curves. Closed
// reports whether the subpath ended in an explicit or implicit ClosePath.
type CurveComp struct {
	Curves []Curve
	Closed bool
}

// PathToCurves splits a path at its MoveTo/ClosePath boundaries and turns
// each subpath's commands into curves, adding the closing line segment
// implied by ClosePath when the subpath didn't already return to its start.
func PathToCurves(path Path) []CurveComp {
	var comps []CurveComp
	var curves []Curve

	firstVec, prevVec := Vec2{}, Vec2{}

	for _, cmd := range path {
		switch cmd.kind {
		case cmdMoveTo:
			firstVec = cmd.target
			prevVec = cmd.target

			if len(curves) > 0 {
				comps = append(comps, CurveComp{Curves: curves, Closed: false})
				curves = nil
			}

		case cmdLineTo:
			curves = append(curves, NewLine(prevVec, cmd.target))
			prevVec = cmd.target

		case cmdQuadraticBezierTo:
			curves = append(curves, NewQuadraticBezier(prevVec, cmd.ctl1, cmd.target))
			prevVec = cmd.target

		case cmdCubicBezierTo:
			curves = append(curves, NewCubicBezier(prevVec, cmd.ctl1, cmd.ctl2, cmd.target))
			prevVec = cmd.target

		case cmdEllipticArcTo:
			curves = append(curves, EllipticArcFromPathParams(prevVec, cmd.radii, cmd.angle, cmd.largeArc, cmd.sweep, cmd.target))
			prevVec = cmd.target

		case cmdClosePath:
			if !prevVec.Equals(firstVec) {
				curves = append(curves, NewLine(prevVec, firstVec))
			}
			prevVec = firstVec

			if len(curves) > 0 {
				comps = append(comps, CurveComp{Curves: curves, Closed: true})
				curves = nil
			}
		}
	}

	if len(curves) > 0 {
		comps = append(comps, CurveComp{Curves: curves, Closed: false})
	}

	return comps
}
