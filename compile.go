package curvemesh

// Compile turns a Path into a CompiledDrawing: it splits the path into
// per-subpath curve lists, simplifies each into curves the rest of the
// pipeline can handle (no degenerate segments, no self-intersecting
// cubics), merges every subpath's curves into shared planar faces under
// fillRule, and triangulates each face.
func Compile(path Path, fillRule FillRule) CompiledDrawing {
	Logger().Debug("compiling path", "commands", len(path), "fillRule", fillRule)

	comps := PathToCurves(path)

	var curves []Curve
	for _, comp := range comps {
		curves = append(curves, SimplifyCurves(comp.Curves)...)
	}

	faces := SplitComps(curves, fillRule)

	drawings := make([]CompiledDrawing, len(faces))
	for i, face := range faces {
		drawings[i] = FromFace(face)
	}

	return ConcatManyDrawings(drawings)
}
