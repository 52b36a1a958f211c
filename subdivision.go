package curvemesh

import (
	"math/bits"
	"sort"
)

// AreCurvesFusable reports whether c1 and c2 can be fused into a single
// DoubleCurveTriangle fan: they must share an endpoint, leave/enter it on
// nearly opposite tangents, and bulge in opposite directions, checked in
// either curve order since the caller doesn't know which one comes first.
func AreCurvesFusable(c1, c2 Curve) bool {
	if c1.IsLine() || c2.IsLine() {
		return false
	}

	eligible := func(c1, c2 Curve) bool {
		if !c1.At(1.0).RoughlyEquals(c2.At(0.0)) {
			return false
		}
		if c1.ExitTangent().Dot(c2.EntryTangent()) >= -0.99 {
			return false
		}
		return IsConvex(c1) != IsConvex(c2)
	}

	return eligible(c1, c2) || eligible(c2, c1)
}

// avg computes (a+b)/2 for non-negative integers without the addition
// overflowing when a and b are both close to the integer range's limit.
func avg(a, b uint64) uint64 { return a/2 + b/2 + (a & b & 1) }

type subdivCurve struct {
	contour    int
	begin, end uint64
	curve      Curve
}

// subdivideCurveIn replaces curves[node] with its first half and appends
// its second half, at a fixed-point position splitting [begin,end)
// exactly in two so repeated subdivisions never lose precision.
func subdivideCurveIn(t Coord, curves *[]subdivCurve, node int) {
	c := *curves
	entry := c[node]
	mid := avg(entry.begin, entry.end)
	curve := entry.curve

	c[node] = subdivCurve{contour: entry.contour, begin: entry.begin, end: mid, curve: curve.Subcurve(0.0, t)}
	*curves = append(c, subdivCurve{contour: entry.contour, begin: mid, end: entry.end, curve: curve.Subcurve(t, 1.0)})
}

// SubdivideOverlapping splits a face's curves wherever their enclosing
// polygons overlap in a way plain triangulation can't resolve, then
// breaks up any fusable triple so the middle curve doesn't need fusing on
// both sides at once, and finally rebalances fusable pairs whose winding
// magnitudes differ too wildly to clip safely in the fragment shader.
func SubdivideOverlapping(face FillFace) FillFace {
	if len(face.Contours) == 0 {
		return face
	}

	numContours := len(face.Contours)
	var curves []subdivCurve
	for j, contour := range face.Contours {
		radix := bits.LeadingZeros64(uint64(len(contour)))
		for i, c := range contour {
			curves = append(curves, subdivCurve{
				contour: j,
				begin:   uint64(i) << radix,
				end:     uint64(i+1) << radix,
				curve:   c,
			})
		}
	}

	oldLen := 0
	for oldLen != len(curves) {
		oldLen = len(curves)

		for n1 := 0; n1 < oldLen; n1++ {
			if IsCurveDegenerate(curves[n1].curve) {
				continue
			}
			for n2 := n1 + 1; n2 < oldLen; n2++ {
				if IsCurveDegenerate(curves[n2].curve) {
					continue
				}

				l1, l2, k1, k2, ok := intersectionInfoFromCurves(curves[n1].curve, curves[n2].curve)
				if !ok {
					continue
				}

				switch {
				case (!l1 && !l2 && !k1 && !k2) || (l1 && l2) || (k1 && k2):
					subdivideCurveIn(0.5, &curves, n1)
					subdivideCurveIn(0.5, &curves, n2)
				case l1 && !k1:
					subdivideCurveIn(0.5, &curves, n1)
				case l2 && !k2:
					subdivideCurveIn(0.5, &curves, n2)
				case k1:
					subdivideCurveIn(0.5, &curves, n2)
				case k2:
					subdivideCurveIn(0.5, &curves, n1)
				default:
					panic("unreachable intersection case")
				}
			}
		}
	}

	sortSubdivCurves(curves)

	i := 0
	for j := 0; j < numContours; j++ {
		if i+1 < len(curves) && curves[i].contour != curves[i+1].contour {
			i++
			continue
		}
		if i+2 < len(curves) && curves[i+1].contour != curves[i+2].contour {
			i += 2
			continue
		}

		oldI := i
		for i < len(curves) && curves[i].contour == j {
			ik := oldI
			if i+1 < len(curves) && curves[i+1].contour == j {
				ik = i + 1
			}
			ikk := oldI + 1
			if i+2 < len(curves) && curves[i+2].contour == j {
				ikk = i + 2
			}

			if AreCurvesFusable(curves[i].curve, curves[ik].curve) && AreCurvesFusable(curves[ik].curve, curves[ikk].curve) {
				subdivideCurveIn(0.5, &curves, ik)
				len1 := len(curves) - 1
				curves[ik], curves[len1] = curves[len1], curves[ik]
			}

			i++
		}
	}

	sortSubdivCurves(curves)

	i = 0
	for j := 0; j < numContours; j++ {
		if i+1 < len(curves) && curves[i].contour != curves[i+1].contour {
			i++
			continue
		}

		oldI := i
		for i < len(curves) && curves[i].contour == j {
			ik := oldI
			if i+1 < len(curves) && curves[i+1].contour == j {
				ik = i + 1
			}

			if AreCurvesFusable(curves[i].curve, curves[ik].curve) {
				winding2 := absCoord(WindingAtMidpoint(curves[ik].curve))

				t := 2.0
				var winding1 Coord
				for {
					t /= 2.0
					winding1 = absCoord(WindingAtMidpoint(curves[i].curve.Subcurve(1.0-t, 1.0)))
					if winding1 <= 32.0*winding2 {
						break
					}
				}

				if t < 1.0 {
					subdivideCurveIn(1.0-t, &curves, i)
				} else {
					t = 2.0
					for {
						t /= 2.0
						winding2 = absCoord(WindingAtMidpoint(curves[ik].curve.Subcurve(0.0, t)))
						if winding2 <= 32.0*winding1 {
							break
						}
					}

					if t < 1.0 {
						subdivideCurveIn(t, &curves, ik)
					}
				}
			}

			i++
		}
	}

	sortSubdivCurves(curves)

	contours := make([][]Curve, numContours)
	for _, c := range curves {
		contours[c.contour] = append(contours[c.contour], c.curve)
	}
	return FillFace{Contours: contours}
}

func sortSubdivCurves(curves []subdivCurve) {
	sort.SliceStable(curves, func(i, j int) bool {
		if curves[i].contour != curves[j].contour {
			return curves[i].contour < curves[j].contour
		}
		return curves[i].begin < curves[j].begin
	})
}

func absCoord(v Coord) Coord {
	if v < 0.0 {
		return -v
	}
	return v
}

func strictlyInsideConvexPolygon(poly []Vec2, pt Vec2) bool {
	for i := range poly {
		ik := (i + 1) % len(poly)
		if poly[i].RoughlyEquals(poly[ik]) {
			continue
		}
		if poly[ik].Sub(poly[i]).Cross(pt.Sub(poly[i])) <= 0.0 {
			return false
		}
	}
	return true
}

func curveIntersectsPolygon(poly []Vec2, curve Curve) bool {
	for i := range poly {
		ik := (i + 1) % len(poly)
		if poly[i].RoughlyEquals(poly[ik]) {
			continue
		}
		for _, t := range curve.IntersectionSeg(poly[i], poly[ik]).AsSlice() {
			if Inside01(t) {
				return true
			}
		}
	}
	return false
}

// intersectionInfoFromCurves reports, for two curves whose enclosing
// polygons overlap: l1/l2 whether the other curve's polygon has a vertex
// strictly inside this curve's polygon, and k1/k2 whether this curve
// itself crosses the other curve's polygon boundary. ok is false when the
// polygons don't overlap at all.
func intersectionInfoFromCurves(c1, c2 Curve) (l1, l2, k1, k2, ok bool) {
	p1 := c1.EnclosingPolygon()
	p2 := c2.EnclosingPolygon()

	if PolygonWinding(p1) < 0.0 {
		reverseVec2(p1)
	}
	if PolygonWinding(p2) < 0.0 {
		reverseVec2(p2)
	}

	if !PolygonsOverlap(p1, p2, true) {
		return false, false, false, false, false
	}

	for _, p := range p2 {
		if strictlyInsideConvexPolygon(p1, p) {
			l1 = true
			break
		}
	}
	for _, p := range p1 {
		if strictlyInsideConvexPolygon(p2, p) {
			l2 = true
			break
		}
	}
	k1 = curveIntersectsPolygon(p2, c1)
	k2 = curveIntersectsPolygon(p1, c2)

	return l1, l2, k1, k2, true
}
