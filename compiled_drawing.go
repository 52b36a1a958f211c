package curvemesh

// CompiledDrawing is the final mesh output of the pipeline: flat
// triangles for straight-edged regions, single-curve triangles clipped
// against one implicit curve, and double-curve triangles clipped against
// two fused curves at once.
type CompiledDrawing struct {
	Triangles            []Triangle
	CurveTriangles       []CurveTriangle
	DoubleCurveTriangles []DoubleCurveTriangle
}

// ConcatManyDrawings flattens a sequence of drawings into one.
func ConcatManyDrawings(drawings []CompiledDrawing) CompiledDrawing {
	var out CompiledDrawing
	for _, d := range drawings {
		out.Triangles = append(out.Triangles, d.Triangles...)
		out.CurveTriangles = append(out.CurveTriangles, d.CurveTriangles...)
		out.DoubleCurveTriangles = append(out.DoubleCurveTriangles, d.DoubleCurveTriangles...)
	}
	return out
}

// FromFace triangulates a single fill face: it first subdivides away any
// curve overlap plain triangulation can't handle, fans each contour's
// curved edges into curve/double-curve triangles, and triangulates what
// remains of each contour's straight-line polygon.
func FromFace(face FillFace) CompiledDrawing {
	face = SubdivideOverlapping(face)

	var curveTriangles []CurveTriangle
	var doubleCurveTriangles []DoubleCurveTriangle

	polygons := make([][]Vec2, len(face.Contours))
	for i, c := range face.Contours {
		polygons[i] = buildPolygonAndCurves(c, &curveTriangles, &doubleCurveTriangles)
	}

	triangles := Triangulate(polygons)

	return CompiledDrawing{
		Triangles:            triangles,
		CurveTriangles:       curveTriangles,
		DoubleCurveTriangles: doubleCurveTriangles,
	}
}

// buildPolygonAndCurves turns one contour's curves into the straight-edge
// polygon that triangulation works on, peeling off fannable curve
// triangles (single or fused pairs) as it goes and leaving only their
// flat chords (or enclosing-polygon stand-ins for unfused non-convex curves)
// in the returned point list.
func buildPolygonAndCurves(contour []Curve, curveTriangles *[]CurveTriangle, doubleCurveTriangles *[]DoubleCurveTriangle) []Vec2 {
	if len(contour) == 0 {
		return nil
	}

	list := make([]Vec2, 0, int(1.4*float64(len(contour))))

	lastFirstJoin := AreCurvesFusable(contour[len(contour)-1], contour[0])
	if lastFirstJoin {
		list = append(list, contour[0].At(1.0))
		*doubleCurveTriangles = append(*doubleCurveTriangles,
			MakeDoubleCurveTriangleFan(FuseCurveVertices(contour[len(contour)-1], contour[0]))...)
	} else if !contour[0].IsLine() {
		*curveTriangles = append(*curveTriangles, MakeCurveTriangleFan(CurveVertices(contour[0]))...)
	}

	k := 0
	if lastFirstJoin {
		k = 1
	}

	i := k
	for i < len(contour)-k {
		if i < len(contour)-1 && AreCurvesFusable(contour[i], contour[i+1]) {
			*doubleCurveTriangles = append(*doubleCurveTriangles,
				MakeDoubleCurveTriangleFan(FuseCurveVertices(contour[i], contour[i+1]))...)

			endp0 := contour[i].At(0.0)
			endp1 := contour[i+1].At(1.0)

			if CombinedWindings(contour[i], contour[i+1]) > 0.0 {
				list = append(list, endp1)
			} else {
				hull := ConvexHull(append(append([]Vec2{}, contour[i].EnclosingPolygon()...), contour[i+1].EnclosingPolygon()...))

				iv := -1
				for idx, p := range hull {
					if p.Equals(endp0) {
						iv = idx
						break
					}
				}

				for idx := len(hull) - 1; idx >= 0; idx-- {
					pos := (iv + 1 + idx) % len(hull)
					list = append(list, hull[pos])
				}
			}

			i += 2
		} else {
			if !contour[i].IsLine() {
				*curveTriangles = append(*curveTriangles, MakeCurveTriangleFan(CurveVertices(contour[i]))...)
			}
			if contour[i].IsLine() || IsConvex(contour[i]) {
				list = append(list, contour[i].At(1.0))
			} else {
				list = append(list, contour[i].EnclosingPolygon()[1:]...)
			}
			i++
		}
	}

	return list
}
