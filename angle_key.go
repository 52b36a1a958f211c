package curvemesh

import "fmt"

// AngleKey orders the curves leaving a DCEL vertex by their exit direction,
// breaking ties with successive derivatives so that curves leaving in the
// same direction are still totally ordered by how sharply they curve away
// from it.
type AngleKey struct {
	T, DT, DDT Coord
}

// Compare returns -1, 0 or 1 as k sorts before, equal to, or after o,
// comparing (t, dt, ddt) lexicographically.
func (k AngleKey) Compare(o AngleKey) int {
	if c := compareCoord(k.T, o.T); c != 0 {
		return c
	}
	if c := compareCoord(k.DT, o.DT); c != 0 {
		return c
	}
	return compareCoord(k.DDT, o.DDT)
}

func (k AngleKey) Less(o AngleKey) bool { return k.Compare(o) < 0 }
func (k AngleKey) Equal(o AngleKey) bool {
	return k.T == o.T && k.DT == o.DT && k.DDT == o.DDT
}

func compareCoord(a, b Coord) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (k AngleKey) String() string {
	return fmt.Sprintf("(%v,%v,%v)", k.T, k.DT, k.DDT)
}
