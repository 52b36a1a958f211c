package curvemesh

import (
	"fmt"
	"math"
	"sort"
)

// EllipticArc is an arc of an ellipse, given in a local frame: Center is the
// ellipse center, Radii its (rx, ry) semi-axes, Crot a unit-length-scaled
// vector encoding the ellipse's rotation, and the parameter t in [0,1] maps
// to the angle T1 + t*Dt around the local frame.
type EllipticArc struct {
	Center, Radii, Crot Vec2
	T1, Dt              Coord
}

func (e EllipticArc) localToGlobal(p Vec2) Vec2 { return e.Center.Add(e.Crot.RotScale(p)) }

func (e EllipticArc) deltaAt(t Coord) Vec2 {
	th := e.T1 + t*e.Dt
	return Vec2{e.Radii.X * math.Cos(th), e.Radii.Y * math.Sin(th)}
}

func (e EllipticArc) lesserAngle() Coord  { return math.Min(e.T1, e.T1+e.Dt) }
func (e EllipticArc) greaterAngle() Coord { return math.Max(e.T1, e.T1+e.Dt) }

// angleToParam inverts the local angle theta to the arc's t parameter,
// trying theta and up to two full turns on either side since the arc's
// angular span can exceed a single revolution.
func (e EllipticArc) angleToParam(theta Coord) Coord {
	theta = WrapAngle(theta)

	for i := -2.0; i <= 2.0; i++ {
		cand := theta + i*TwoPi
		if e.lesserAngle() <= cand && cand <= e.greaterAngle() {
			return (cand - e.T1) / e.Dt
		}
	}
	return math.Inf(1)
}

func (e EllipticArc) At(t Coord) Vec2 { return e.localToGlobal(e.deltaAt(t)) }

func (e EllipticArc) derivativeArc() EllipticArc {
	return EllipticArc{
		Center: Vec2{},
		Radii:  e.Radii.Scale(math.Abs(e.Dt)),
		Crot:   e.Crot,
		T1:     e.T1 + math.Copysign(math.Pi/2, e.Dt),
		Dt:     e.Dt,
	}
}

func (e EllipticArc) Derivative() Curve { return e.derivativeArc() }

func (e EllipticArc) Subcurve(l, r Coord) Curve {
	out := e
	out.T1 = e.T1 + l*e.Dt
	out.Dt = (r - l) * e.Dt
	return out
}

func (e EllipticArc) Reverse() Curve {
	out := e
	out.T1 = e.T1 + e.Dt
	out.Dt = -e.Dt
	return out
}

func (e EllipticArc) CriticalPoints() []Coord {
	ax := math.Atan2(-e.Radii.Y*e.Crot.Y, e.Radii.X*e.Crot.X)
	ay := math.Atan2(e.Radii.Y*e.Crot.X, e.Radii.X*e.Crot.Y)

	v := []Coord{
		0.0,
		e.angleToParam(ax),
		e.angleToParam(ax + math.Pi),
		e.angleToParam(ay),
		e.angleToParam(ay + math.Pi),
		1.0,
	}
	out := v[:0]
	for _, t := range v {
		if Inside01(t) {
			out = append(out, t)
		}
	}
	sort.Float64s(out)
	return dedupCoords(out)
}

func (e EllipticArc) Winding() Coord {
	p0 := e.deltaAt(0.0)
	p1 := e.deltaAt(1.0)
	return e.Dt*e.Radii.X*e.Radii.Y + e.Center.Cross(e.Crot.RotScale(p1.Sub(p0)))
}

func (e EllipticArc) AngleKey() AngleKey {
	pr := e.deltaAt(0.0)
	r := e.Radii

	dts := math.Copysign(1.0, e.Dt)
	t := WrapAngle(e.Crot.Angle() + math.Atan2(dts*pr.Y, -dts*pr.X))
	dt := -e.Dt * r.X * r.Y / pr.LengthSq()
	ddt := 2.0 * dt * math.Sin(2.0*e.T1) * (r.X*r.X - r.Y*r.Y)
	return AngleKey{T: t, DT: dt, DDT: ddt}
}

func (e EllipticArc) IntersectionX(x Coord) Roots {
	cp := Vec2{e.Radii.X * e.Crot.X, e.Radii.Y * e.Crot.Y}
	diff := x - e.Center.X
	if math.Abs(diff) > cp.Length() {
		return Roots{}
	}
	acos := math.Acos(diff / cp.Length())
	return rootsOf(e.angleToParam(acos+cp.Angle()), e.angleToParam(-acos+cp.Angle()))
}

func (e EllipticArc) IntersectionY(y Coord) Roots {
	cp := Vec2{e.Radii.X * e.Crot.Y, e.Radii.Y * e.Crot.X}
	diff := y - e.Center.Y
	if math.Abs(diff) > cp.Length() {
		return Roots{}
	}
	acos := math.Acos(diff / cp.Length())
	return rootsOf(e.angleToParam(acos+cp.Angle()), e.angleToParam(-acos+cp.Angle()))
}

func (e EllipticArc) IntersectionSeg(v1, v2 Vec2) Roots {
	dv := v2.Sub(v1)
	cp := Vec2{e.Radii.X * e.Crot.Cross(dv), e.Radii.Y * e.Crot.Dot(dv)}
	diff := e.Center.Sub(v1).Cross(dv)
	if math.Abs(diff) > cp.Length() {
		return Roots{}
	}
	acos := math.Acos(diff / cp.Length())
	return rootsOf(e.angleToParam(acos+cp.Angle()), e.angleToParam(-acos+cp.Angle()))
}

func (e EllipticArc) EntryTangent() Vec2 { return e.derivativeArc().At(0.0).Normalized() }
func (e EllipticArc) ExitTangent() Vec2  { return e.derivativeArc().At(1.0).Normalized() }

// enclosingPolygonLocalSpace builds a convex polygon around the arc in its
// local (unrotated, uncentered) frame, inserting extra vertices at every
// quadrant boundary the arc crosses so the hull stays convex.
func (e EllipticArc) enclosingPolygonLocalSpace() []Vec2 {
	var plist [6]Coord
	plist[0], plist[1] = 0.0, 1.0
	i := 2

	first := math.Ceil(e.lesserAngle() / (math.Pi / 2))
	second := math.Floor(e.greaterAngle() / (math.Pi / 2))
	for first <= second {
		plist[i] = e.angleToParam(first * (math.Pi / 2))
		first++
		i++
	}

	sort.Float64s(plist[:i])
	k := 0
	for j := 0; j < i; j++ {
		if j < i-1 && RoughlyEquals(plist[j], plist[j+1]) {
			k++
		} else if k > 0 {
			plist[j-k] = plist[j]
		}
	}
	i -= k

	points := make([]Vec2, 0, i)
	points = append(points, e.deltaAt(plist[0]))
	d := e.derivativeArc()

	for j := 1; j < i; j++ {
		c0 := e.deltaAt(plist[j-1])
		d0 := d.deltaAt(plist[j-1])
		c1 := e.deltaAt(plist[j])
		d1 := d.deltaAt(plist[j])

		k := d0.Cross(d1)
		p0 := c0.Add(d0.Scale(c1.Sub(c0).Cross(d1) / k))
		p1 := c1.Add(d1.Scale(c1.Sub(c0).Cross(d0) / k))

		points = append(points, p0.Add(p1).Div(2.0))
	}

	points = append(points, e.deltaAt(plist[i-1]))
	return points
}

func (e EllipticArc) EnclosingPolygon() []Vec2 {
	local := e.enclosingPolygonLocalSpace()
	out := make([]Vec2, len(local))
	for i, p := range local {
		out[i] = e.localToGlobal(p)
	}
	return out
}

func (e EllipticArc) IsLine() bool { return false }

func (e EllipticArc) String() string {
	return fmt.Sprintf("EllipticArc(center=%v, radii=%v, rotation=%v, t1=%v, dt=%v)",
		e.Center, e.Radii, e.Crot.Angle()*180/math.Pi, e.T1*180/math.Pi, e.Dt*180/math.Pi)
}
