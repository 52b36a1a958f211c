package curvemesh

import (
	"fmt"
	"math"
)

// Vec2 is a two-element vector.
type Vec2 struct{ X, Y Coord }

func (v Vec2) Add(o Vec2) Vec2   { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2   { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Neg() Vec2         { return Vec2{-v.X, -v.Y} }
func (v Vec2) Scale(s Coord) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Div(s Coord) Vec2   { return Vec2{v.X / s, v.Y / s} }

func (v Vec2) Equals(o Vec2) bool { return v.X == o.X && v.Y == o.Y }

// VecFromAngle builds the unit vector at the given angle.
func VecFromAngle(angle Coord) Vec2 { return Vec2{math.Cos(angle), math.Sin(angle)} }

func (v Vec2) Dot(o Vec2) Coord   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Cross(o Vec2) Coord { return v.X*o.Y - v.Y*o.X }

func (v Vec2) LengthSq() Coord { return v.Dot(v) }
func (v Vec2) Length() Coord   { return math.Sqrt(v.LengthSq()) }
func (v Vec2) Normalized() Vec2 {
	return v.Div(v.Length())
}

// RotScale applies the rotation+scale represented by o to v (complex
// multiplication of v by o).
func (v Vec2) RotScale(o Vec2) Vec2 {
	return Vec2{v.X*o.X - v.Y*o.Y, v.X*o.Y + v.Y*o.X}
}

func (v Vec2) Rotate(o Vec2) Vec2            { return v.RotScale(o.Normalized()) }
func (v Vec2) RotateByAngle(angle Coord) Vec2 { return v.RotScale(VecFromAngle(angle)) }

func (v Vec2) CCWPerpendicular() Vec2 { return Vec2{-v.Y, v.X} }
func (v Vec2) CWPerpendicular() Vec2  { return v.CCWPerpendicular().Neg() }

func (v Vec2) Angle() Coord                  { return math.Atan2(v.Y, v.X) }
func (v Vec2) AngleFacing(o Vec2) Coord      { return o.Sub(v).Angle() }
func (v Vec2) AngleBetween(o Vec2) Coord     { return math.Atan2(v.Cross(o), v.Dot(o)) }

func (v Vec2) RoughlyZero() bool            { return RoughlyZeroSquared(v.LengthSq()) }
func (v Vec2) RoughlyEquals(o Vec2) bool    { return v.Sub(o).RoughlyZero() }

func (v Vec2) String() string { return fmt.Sprintf("(%v,%v)", v.X, v.Y) }

// canonical orders two points by increasing y, then decreasing x: the
// sweep order used throughout the DCEL and triangulator.
func canonical(a, b Vec2) int {
	if a.Y == b.Y {
		switch {
		case b.X < a.X:
			return -1
		case b.X > a.X:
			return 1
		default:
			return 0
		}
	}
	switch {
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	default:
		return 0
	}
}
