package curvemesh

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle in (x, y, width, height) form.
type Rect struct{ X, Y, Width, Height Coord }

func (r Rect) Intersects(o Rect) bool {
	return !(r.X > o.X+o.Width || o.X > r.X+r.Width ||
		r.Y > o.Y+o.Height || o.Y > r.Y+r.Height)
}

func (r Rect) StrictlyIntersects(o Rect) bool {
	return !(r.X >= o.X+o.Width || o.X >= r.X+r.Width ||
		r.Y >= o.Y+o.Height || o.Y >= r.Y+r.Height)
}

func (r Rect) Intersection(o Rect) (Rect, bool) {
	if !r.Intersects(o) {
		return Rect{}, false
	}
	x1 := math.Max(r.X, o.X)
	x2 := math.Min(r.X+r.Width, o.X+o.Width)
	y1 := math.Max(r.Y, o.Y)
	y2 := math.Min(r.Y+r.Height, o.Y+o.Height)
	return Rect{x1, y1, x2 - x1, y2 - y1}, true
}

func (r Rect) StrictIntersection(o Rect) (Rect, bool) {
	if !r.StrictlyIntersects(o) {
		return Rect{}, false
	}
	x1 := math.Max(r.X, o.X)
	x2 := math.Min(r.X+r.Width, o.X+o.Width)
	y1 := math.Max(r.Y, o.Y)
	y2 := math.Min(r.Y+r.Height, o.Y+o.Height)
	return Rect{x1, y1, x2 - x1, y2 - y1}, true
}

func (r Rect) ContainsPoint(pt Vec2) bool {
	return r.X <= pt.X && r.Y <= pt.Y && r.X+r.Width >= pt.X && r.Y+r.Height >= pt.Y
}

// EnclosingRect returns the smallest rectangle containing all of pts, or
// false if pts is empty.
func EnclosingRect(pts []Vec2) (Rect, bool) {
	if len(pts) == 0 {
		return Rect{}, false
	}
	x1, x2 := math.Inf(1), math.Inf(-1)
	y1, y2 := math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		x1 = math.Min(x1, p.X)
		x2 = math.Max(x2, p.X)
		y1 = math.Min(y1, p.Y)
		y2 = math.Max(y2, p.Y)
	}
	return Rect{x1, y1, x2 - x1, y2 - y1}, true
}

// EnclosingRectOfTwoPoints builds the rect spanning pt1 and pt2.
func EnclosingRectOfTwoPoints(pt1, pt2 Vec2) Rect {
	x1, x2 := math.Min(pt1.X, pt2.X), math.Max(pt1.X, pt2.X)
	y1, y2 := math.Min(pt1.Y, pt2.Y), math.Max(pt1.Y, pt2.Y)
	return Rect{x1, y1, x2 - x1, y2 - y1}
}

func (r Rect) String() string {
	return fmt.Sprintf("(x=%v, y=%v, width=%v, height=%v)", r.X, r.Y, r.Width, r.Height)
}
