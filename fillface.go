package curvemesh

// FillFace is a single filled region, described by its boundary contours:
// an outer contour plus zero or more hole contours, each a closed loop of
// curves.
type FillFace struct {
	Contours [][]Curve
}
