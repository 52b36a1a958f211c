package curvemesh

import "sort"

// angleEdge pairs an outgoing edge's angular sort key with its edge index.
type angleEdge struct {
	key  AngleKey
	edge int
}

// dcelVertex tracks a vertex's outgoing edges in angular order, playing the
// role of a BTreeMap<AngleKey, usize> keyed ordered map via a sorted slice
// (Go's standard library has no ordered-map type).
type dcelVertex struct {
	outEdges []angleEdge
}

func (v *dcelVertex) isEmpty() bool { return len(v.outEdges) == 0 }

func (v *dcelVertex) lowerBound(key AngleKey) int {
	return sort.Search(len(v.outEdges), func(i int) bool { return v.outEdges[i].key.Compare(key) >= 0 })
}

func (v *dcelVertex) insert(key AngleKey, edge int) {
	idx := v.lowerBound(key)
	v.outEdges = append(v.outEdges, angleEdge{})
	copy(v.outEdges[idx+1:], v.outEdges[idx:])
	v.outEdges[idx] = angleEdge{key: key, edge: edge}
}

func (v *dcelVertex) search(key AngleKey) (int, bool) {
	idx := v.lowerBound(key)
	if idx < len(v.outEdges) && v.outEdges[idx].key.Equal(key) {
		return v.outEdges[idx].edge, true
	}
	return 0, false
}

// searchOutgoing finds the edges angularly just before and after key,
// wrapping around the vertex's cyclical edge fan. ok is false if key
// already has an edge (the caller must not insert a duplicate direction)
// or the vertex has no edges yet.
func (v *dcelVertex) searchOutgoing(key AngleKey) (before, after int, ok bool) {
	if len(v.outEdges) == 0 {
		return 0, 0, false
	}
	idx := v.lowerBound(key)
	if idx < len(v.outEdges) && v.outEdges[idx].key.Equal(key) {
		return 0, 0, false
	}

	beforeIdx := idx - 1
	if beforeIdx < 0 {
		beforeIdx = len(v.outEdges) - 1
	}
	afterIdx := idx
	if afterIdx >= len(v.outEdges) {
		afterIdx = 0
	}
	return v.outEdges[beforeIdx].edge, v.outEdges[afterIdx].edge, true
}

// dcelEdge is a half-edge: curve runs from its origin vertex to twin's
// origin. canonicity counts how many times the source path traced this
// exact directed edge, used to propagate fill numbers across it.
type dcelEdge struct {
	curve Curve

	twin, next, prev int
	canonicity       int
	face             int
}

// dcelFace is a maximal planar region bounded by one or more contours
// (an outer boundary plus any holes). fillNumber accumulates canonicity
// along the BFS from the outer face and decides visibility under a
// FillRule.
type dcelFace struct {
	contours   []int
	fillNumber int
	isOuter    bool
}

// dcel is the half-edge planar subdivision built by splitting a path's
// curves at their mutual intersections. It starts with a single outer
// face and grows faces as curves are added with addCurve.
type dcel struct {
	vertices []dcelVertex
	edges    []dcelEdge
	faces    []dcelFace
}

func newDcel(numPts int) *dcel {
	return &dcel{
		vertices: make([]dcelVertex, numPts),
		faces:    []dcelFace{{isOuter: true}},
	}
}

func (d *dcel) pairOfEdges(curve Curve) (int, int) {
	ln := len(d.edges)
	rev := curve.Reverse()
	d.edges = append(d.edges, dcelEdge{curve: curve, twin: ln + 1})
	d.edges = append(d.edges, dcelEdge{curve: rev, twin: ln})
	return ln, ln + 1
}

func (d *dcel) addCurve(v1, v2 int, curve Curve) {
	d.addCurveCanonicity(v1, v2, curve, 1)
}

// splitContoursByFace partitions a face's contour list into the subset
// whose representative curve still sits inside face, and the subset that
// now belongs to a newly carved-out face.
func (d *dcel) splitContoursByFace(face int, contours []int) (kept, moved []int) {
	for _, e := range contours {
		if d.faceContainsVertex(face, d.edges[e].curve.At(0.5)) {
			kept = append(kept, e)
		} else {
			moved = append(moved, e)
		}
	}
	return kept, moved
}

func (d *dcel) edgeSetFromLoops(starts ...int) []bool {
	set := make([]bool, len(d.edges))
	for _, s := range starts {
		for _, e := range d.edgeLoop(s) {
			set[e] = true
		}
	}
	return set
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// addCurveCanonicity adds one directed curve between v1 and v2 with the
// given canonicity delta (addCurve always passes +1). There are four
// structural cases: both vertices new, both existing and already on the
// same contour (closes off a face), both existing on different contours
// (joins two contours), or exactly one new.
func (d *dcel) addCurveCanonicity(v1, v2 int, curve Curve, canonicityChange int) {
	found1 := !d.vertices[v1].isEmpty()
	found2 := !d.vertices[v2].isEmpty()

	ak1 := curve.AngleKey()
	ak2 := curve.Reverse().AngleKey()
	p0 := curve.At(0.5)

	switch {
	case !found1 && !found2:
		face := d.getFaceFromPoint(p0)
		e1, e2 := d.pairOfEdges(curve)
		d.edges[e1].canonicity += canonicityChange

		if v1 != v2 {
			d.edges[e1].next, d.edges[e1].prev = e2, e2
			d.edges[e2].next, d.edges[e2].prev = e1, e1
			d.edges[e1].face = face
			d.edges[e2].face = face
			d.faces[face].contours = append(d.faces[face].contours, e1)
		} else {
			d.edges[e1].next, d.edges[e1].prev = e1, e1
			d.edges[e2].next, d.edges[e2].prev = e2, e2

			newFace := len(d.faces)
			d.faces = append(d.faces, dcelFace{})

			edge, twin := e1, e2
			if d.edges[e1].curve.Winding() <= 0.0 {
				edge, twin = e2, e1
			}
			d.faces[newFace].contours = append(d.faces[newFace].contours, edge)
			d.edges[edge].face = newFace

			kept, moved := d.splitContoursByFace(face, d.faces[face].contours)
			d.faces[face].contours = kept
			for _, c := range moved {
				d.assignFace(newFace, c)
			}
			d.faces[newFace].contours = append(d.faces[newFace].contours, moved...)

			d.faces[face].contours = append(d.faces[face].contours, twin)
			d.edges[twin].face = face
		}

		d.vertices[v1].insert(ak1, e1)
		d.vertices[v2].insert(ak2, e2)

		d.checkProblematicCycles(e1)
		d.checkProblematicCycles(e2)

	case found1 && found2:
		e1lo, e1ro, ok := d.vertices[v1].searchOutgoing(ak1)
		if !ok {
			e1, _ := d.vertices[v1].search(ak1)
			d.edges[e1].canonicity += canonicityChange
			return
		}

		e1, e2 := d.pairOfEdges(curve)
		d.edges[e1].canonicity += canonicityChange

		e2lo, e2ro, _ := d.vertices[v2].searchOutgoing(ak2)
		t1ro := d.edges[e1ro].twin
		t2ro := d.edges[e2ro].twin

		diffContours := !containsInt(d.edgeLoop(e1lo), e2lo)

		if v1 == v2 && e1lo == e2lo && e1ro == e2ro {
			edge, twin := e1, e2
			if d.edges[e1].curve.Winding() <= 0.0 {
				edge, twin = e2, e1
			}
			d.edges[edge].next, d.edges[edge].prev = edge, edge
			d.edges[t1ro].next = twin
			d.edges[e1lo].prev = twin
			d.edges[twin].next = e1lo
			d.edges[twin].prev = t1ro
		} else {
			d.edges[t1ro].next = e1
			d.edges[e2lo].prev = e1
			d.edges[t2ro].next = e2
			d.edges[e1lo].prev = e2
			d.edges[e1].next = e2lo
			d.edges[e1].prev = t1ro
			d.edges[e2].next = e1lo
			d.edges[e2].prev = t2ro
		}

		d.checkProblematicCycles(e1)
		d.checkProblematicCycles(e2)

		d.vertices[v1].insert(ak1, e1)
		d.vertices[v2].insert(ak2, e2)

		if diffContours {
			face := d.edges[e1lo].face
			d.edges[e1].face = face
			d.edges[e2].face = face

			edgeSet := d.edgeSetFromLoops(e1)
			remaining := d.faces[face].contours[:0]
			for _, e := range d.faces[face].contours {
				if !edgeSet[e] {
					remaining = append(remaining, e)
				}
			}
			d.faces[face].contours = append(remaining, e1)
		} else {
			newFace := len(d.faces)
			d.faces = append(d.faces, dcelFace{})
			oldFace := d.edges[e1lo].face

			edgeSet := d.edgeSetFromLoops(e1, e2)
			remaining := d.faces[oldFace].contours[:0]
			for _, e := range d.faces[oldFace].contours {
				if !edgeSet[e] {
					remaining = append(remaining, e)
				}
			}
			d.faces[oldFace].contours = remaining

			var winding Coord
			for _, e := range d.edgeLoop(e1) {
				winding += d.edges[e].curve.Winding()
			}
			edge, twin := e1, e2
			if winding <= 0.0 {
				edge, twin = e2, e1
			}

			d.assignFace(newFace, edge)
			d.faces[newFace].contours = append(d.faces[newFace].contours, edge)

			kept, moved := d.splitContoursByFace(oldFace, d.faces[oldFace].contours)
			d.faces[oldFace].contours = kept
			for _, c := range moved {
				d.assignFace(newFace, c)
			}
			d.faces[newFace].contours = append(d.faces[newFace].contours, moved...)

			d.assignFace(oldFace, twin)
			d.faces[oldFace].contours = append(d.faces[oldFace].contours, twin)
		}

	default:
		e1, e2 := d.pairOfEdges(curve)
		d.edges[e1].canonicity += canonicityChange

		if !found1 {
			e1, e2 = e2, e1
			v1, v2 = v2, v1
			ak1, ak2 = ak2, ak1
		}

		e1lo, e1ro, _ := d.vertices[v1].searchOutgoing(d.edges[e1].curve.AngleKey())
		t1ro := d.edges[e1ro].twin

		d.edges[e1].prev = t1ro
		d.edges[e1].next = e2
		d.edges[e2].prev = e1
		d.edges[e2].next = e1lo
		d.edges[t1ro].next = e1
		d.edges[e1lo].prev = e2

		d.edges[e1].face = d.edges[e1lo].face
		d.edges[e2].face = d.edges[e1lo].face

		d.vertices[v1].insert(ak1, e1)
		d.vertices[v2].insert(ak2, e2)

		d.checkProblematicCycles(e1)
		d.checkProblematicCycles(e2)
	}
}

// isWedge reports whether edge starts a "needle": a run of edges each
// sharing a face with its own twin, all the way around to itself.
func (d *dcel) isWedge(edge int) bool {
	for _, e := range d.edgeLoop(edge) {
		if e == d.edges[e].twin {
			break
		}
		if d.edges[e].face != d.edges[d.edges[e].twin].face {
			return false
		}
	}
	return true
}

// removeWedges collapses needle-like sub-loops out of every face's
// contours: a wedge contributes no area, so its edges are spliced out of
// the contour they interrupt, or the whole contour is dropped if it turns
// out to be nothing but a wedge.
func (d *dcel) removeWedges() {
	for j := range d.faces {
		var purge []int

	outer:
		for i := 0; i < len(d.faces[j].contours); i++ {
			visited := make([]bool, len(d.edges))
			e := d.faces[j].contours[i]

			for !visited[e] {
				visited[e] = true
				if d.isWedge(e) {
					for d.edges[e].face == d.edges[d.edges[e].twin].face {
						if d.edges[e].prev == d.edges[e].twin {
							purge = append(purge, i)
							break outer
						}
						e = d.edges[e].prev
					}

					en := d.edges[e].next
					en = d.edges[en].twin
					en = d.edges[en].next

					d.edges[e].next = en
					d.edges[en].prev = e

					d.faces[j].contours[i] = e
				}
			}
		}

		d.faces[j].contours = removeIndices(d.faces[j].contours, purge)
	}
}

func (d *dcel) assignFaceFillNumbers() {
	alreadyAssigned := make([]bool, len(d.faces))
	queue := []int{0}
	alreadyAssigned[0] = true

	for len(queue) > 0 {
		face := queue[0]
		queue = queue[1:]

		for _, c := range d.faces[face].contours {
			for _, e := range d.edgeLoop(c) {
				t := d.edges[e].twin
				twinFace := d.edges[t].face

				if alreadyAssigned[twinFace] {
					continue
				}

				d.faces[twinFace].fillNumber = d.faces[face].fillNumber - d.edges[e].canonicity + d.edges[t].canonicity
				queue = append(queue, twinFace)
				alreadyAssigned[twinFace] = true
			}
		}
	}
}

// simplifyFaces walks every edge whose two incident faces have the same
// FillRule visibility, but its first loop never marks such an edge for
// removal, so the merge loop below does nothing: no edge is removed and
// adjacent faces that render identically stay separate faces.
func (d *dcel) simplifyFaces(fillRule FillRule) {
	edgesToRemove := make([]bool, len(d.edges))

	for e := 0; e < len(d.edges); e++ {
		t := d.edges[e].twin
		if edgesToRemove[t] {
			continue
		}
		if d.faceVisible(d.edges[e].face, fillRule) == d.faceVisible(d.edges[t].face, fillRule) {
			edgesToRemove[e] = false
		}
	}

	for e := 0; e < len(d.edges); e++ {
		if !edgesToRemove[e] {
			continue
		}

		t := d.edges[e].twin
		ep := d.edges[e].prev
		en := d.edges[e].next
		tp := d.edges[t].prev
		tn := d.edges[t].next

		if ep != t {
			d.edges[ep].next = tn
			d.edges[tn].prev = ep
		}
		if en != t {
			d.edges[en].prev = tp
			d.edges[tp].next = en
		}

		if d.edges[e].face == d.edges[t].face {
			edgeSet := make([]bool, len(d.edges))
			if en != t {
				for _, x := range d.edgeLoop(en) {
					edgeSet[x] = true
				}
			}
			if ep != t {
				for _, x := range d.edgeLoop(ep) {
					edgeSet[x] = true
				}
			}

			face := d.edges[e].face
			remaining := d.faces[face].contours[:0]
			for _, c := range d.faces[face].contours {
				if !edgeSet[c] {
					remaining = append(remaining, c)
				}
			}
			d.faces[face].contours = remaining

			if ep != t {
				d.faces[face].contours = append(d.faces[face].contours, ep)
			}
			if en != t {
				d.faces[face].contours = append(d.faces[face].contours, en)
			}
		} else {
			et := en
			if ep != t {
				et = ep
			}

			edgeSet := d.edgeSetFromLoops(et)
			edgeSet[e] = true
			edgeSet[t] = true

			keepFace := d.edges[e].face
			removeFace := d.edges[t].face
			if d.faces[removeFace].isOuter {
				keepFace, removeFace = removeFace, keepFace
			}

			filterOut := func(contours []int) []int {
				out := contours[:0]
				for _, c := range contours {
					if !edgeSet[c] {
						out = append(out, c)
					}
				}
				return out
			}
			d.faces[keepFace].contours = filterOut(d.faces[keepFace].contours)
			d.faces[removeFace].contours = filterOut(d.faces[removeFace].contours)

			for _, c := range d.faces[removeFace].contours {
				d.assignFace(keepFace, c)
			}

			oldContours := d.faces[removeFace].contours
			d.faces[removeFace].contours = nil
			d.faces[keepFace].contours = append(d.faces[keepFace].contours, oldContours...)
			d.faces[keepFace].contours = append(d.faces[keepFace].contours, et)
			d.assignFace(keepFace, et)
		}
	}
}

// getFaceContours returns every visible face's boundary as a FillFace.
func (d *dcel) getFaceContours(fillRule FillRule) []FillFace {
	var out []FillFace
	for fr := range d.faces {
		if !d.faceVisible(fr, fillRule) {
			continue
		}
		var contours [][]Curve
		for _, c := range d.faces[fr].contours {
			var curves []Curve
			for _, e := range d.edgeLoop(c) {
				curves = append(curves, d.edges[e].curve)
			}
			contours = append(contours, curves)
		}
		out = append(out, FillFace{Contours: contours})
	}
	return out
}

func (d *dcel) faceVisible(face int, fillRule FillRule) bool {
	switch fillRule {
	case FillRuleEvenOdd:
		return d.faces[face].fillNumber%2 != 0
	default:
		return d.faces[face].fillNumber != 0
	}
}

func (d *dcel) getFaceFromPoint(v Vec2) int {
	for i := range d.faces {
		if d.faceContainsVertex(i, v) {
			return i
		}
	}
	panic("no face contains point")
}

func (d *dcel) edgeLoop(start int) []int {
	out := []int{start}
	cur := d.edges[start].next
	for cur != start {
		out = append(out, cur)
		cur = d.edges[cur].next
	}
	return out
}

func (d *dcel) faceContainsVertex(face int, v Vec2) bool {
	f := &d.faces[face]
	contains := f.isOuter

	for _, contour := range f.contours {
		for _, e := range d.edgeLoop(contour) {
			if d.edges[e].face == d.edges[d.edges[e].twin].face {
				continue
			}

			roots := d.edges[e].curve.IntersectionY(v.Y)
			for _, t := range roots.AsSlice() {
				if t >= 0.0 && t < 1.0 && d.edges[e].curve.At(t).X >= v.X {
					contains = !contains
				}
			}
		}
	}

	return contains
}

func (d *dcel) assignFace(face, edge int) {
	for _, e := range d.edgeLoop(edge) {
		d.edges[e].face = face
	}
}

// checkProblematicCycles panics if edge's next-chain doesn't return to
// itself without repeating an edge first. Only runs under DebugChecks,
// mirroring the original's debug_assertions-gated check.
func (d *dcel) checkProblematicCycles(edge int) {
	if !DebugChecks {
		return
	}
	seen := make([]bool, len(d.edges))
	for _, e := range d.edgeLoop(edge) {
		if seen[e] {
			panic("problematic edge cycle detected")
		}
		seen[e] = true
	}
}

// removeIndices deletes the elements of v at the given positions, which
// must be positions within v itself (not arbitrary values). Used as-is at
// its one call site in removeWedges.
func removeIndices(v []int, indices []int) []int {
	if len(indices) == 0 {
		return v
	}

	idx := append([]int(nil), indices...)
	sort.Ints(idx)
	idx = dedupInts(idx)

	length := len(v)
	ik := idx[0]
	k := 1

	for i := ik + 1; i < length; i++ {
		if k < len(idx) && i == idx[k] {
			k++
		} else {
			v[ik] = v[i]
			ik++
		}
	}

	return v[:length-k]
}

func dedupInts(v []int) []int {
	if len(v) < 2 {
		return v
	}
	j := 0
	for i := 1; i < len(v); i++ {
		if v[j] != v[i] {
			j++
			v[j] = v[i]
		}
	}
	return v[:j+1]
}
