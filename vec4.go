package curvemesh

import (
	"fmt"
	"math"
)

// Vec4 is a four-element vector, used to carry Loop-Blinn implicit-curve
// texture coordinates.
type Vec4 struct{ X, Y, Z, W Coord }

func (v Vec4) Add(o Vec4) Vec4    { return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W} }
func (v Vec4) Sub(o Vec4) Vec4    { return Vec4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W} }
func (v Vec4) Neg() Vec4          { return Vec4{-v.X, -v.Y, -v.Z, -v.W} }
func (v Vec4) Scale(s Coord) Vec4 { return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s} }

func (v Vec4) Dot(o Vec4) Coord {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

func (v Vec4) LengthSq() Coord { return v.Dot(v) }
func (v Vec4) Length() Coord   { return math.Sqrt(v.LengthSq()) }

func (v Vec4) String() string {
	return fmt.Sprintf("(%v,%v,%v,%v)", v.X, v.Y, v.Z, v.W)
}
