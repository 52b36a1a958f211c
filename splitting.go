package curvemesh

import (
	"sort"

	"github.com/gogpu/curvemesh/internal/unionfind"
)

// tPoint is one intersection parameter on a curve, paired with its
// position, kept in a slice sorted by T in place of a BTreeMap<T, Vec2>.
type tPoint struct {
	t   Coord
	pos Vec2
}

func insertTPoint(list []tPoint, t Coord, pos Vec2) []tPoint {
	idx := sort.Search(len(list), func(i int) bool { return list[i].t >= t })
	if idx < len(list) && list[idx].t == t {
		list[idx].pos = pos
		return list
	}
	list = append(list, tPoint{})
	copy(list[idx+1:], list[idx:])
	list[idx] = tPoint{t: t, pos: pos}
	return list
}

// SplitComps splits curves into their simple, non-self-overlapping planar
// faces: it finds every pairwise intersection, clusters near-identical
// intersection points into shared DCEL vertices, threads the curves (cut at
// their intersections) into a DCEL, and returns its visible faces under
// fillRule.
func SplitComps(curves []Curve, fillRule FillRule) []FillFace {
	criticalPoints := make([][]Coord, len(curves))
	for i, c := range curves {
		criticalPoints[i] = c.CriticalPoints()
	}

	intersections := make([][]tPoint, len(curves))
	for i := 0; i+1 < len(curves); i++ {
		for j := i + 1; j < len(curves); j++ {
			for _, in := range Intersect(curves[i], curves[j], criticalPoints[i], criticalPoints[j]) {
				if Inside01(in.T1) && Inside01(in.T2) {
					intersections[i] = insertTPoint(intersections[i], in.T1, curves[i].At(in.T1))
					intersections[j] = insertTPoint(intersections[j], in.T2, curves[j].At(in.T2))
				}
			}
		}
	}

	for i := range intersections {
		intersections[i] = insertTPoint(intersections[i], 0.0, curves[i].At(0.0))
		intersections[i] = insertTPoint(intersections[i], 1.0, curves[i].At(1.0))
	}

	clusters, numPts := deriveClusters(intersections)

	d := newDcel(numPts)
	for i, curve := range curves {
		cluster := clusters[i]
		if len(cluster) == 2 {
			if !IsCurveDegenerate(curve) {
				d.addCurve(cluster[0].cluster, cluster[1].cluster, curve)
			}
			continue
		}
		for k := 1; k < len(cluster); k++ {
			sub := curve.Subcurve(cluster[k-1].t, cluster[k].t)
			if !IsCurveDegenerate(sub) {
				d.addCurve(cluster[k-1].cluster, cluster[k].cluster, sub)
			}
		}
	}

	d.removeWedges()
	d.assignFaceFillNumbers()
	d.simplifyFaces(fillRule)

	return d.getFaceContours(fillRule)
}

type clusteredPoint struct {
	t       Coord
	cluster int
}

// deriveClusters groups intersection points that are numerically
// roughly-equal into shared vertex indices, via union-find over every pair
// of points across every curve.
func deriveClusters(intersections [][]tPoint) ([][]clusteredPoint, int) {
	var allPoints []Vec2
	for _, pts := range intersections {
		for _, p := range pts {
			allPoints = append(allPoints, p.pos)
		}
	}

	uf := unionfind.New(len(allPoints))
	for i := 0; i+1 < len(allPoints); i++ {
		for j := i + 1; j < len(allPoints); j++ {
			if allPoints[i].RoughlyEquals(allPoints[j]) {
				uf.Union(i, j)
			}
		}
	}

	flat := make(map[int]int)
	max := 0
	for i := range allPoints {
		root := uf.Find(i)
		if _, ok := flat[root]; !ok {
			flat[root] = max
			max++
		}
	}

	clusters := make([][]clusteredPoint, len(intersections))
	k := 0
	for i, pts := range intersections {
		clusters[i] = make([]clusteredPoint, len(pts))
		for j, p := range pts {
			clusters[i][j] = clusteredPoint{t: p.t, cluster: flat[uf.Find(k)]}
			k++
		}
	}

	return clusters, max
}
