package curvemesh

import "sort"

// VertexType classifies a polygon vertex for y-monotone partitioning, per
// the sweep-line algorithm in de Berg et al., "Computational Geometry:
// Algorithms and Applications", chapter 3. Declaration order matters: it
// is also the tie-break order used when two vertices share a sweep
// position.
type VertexType int

const (
	VertexEnd VertexType = iota
	VertexStart
	VertexSplit
	VertexRegularLeft
	VertexRegularRight
	VertexMerge
)

// edgeKey identifies an edge by its endpoints, undirected.
type edgeKey struct{ A, B Vec2 }

func edgeKeyEqual(a, b edgeKey) bool {
	return (a.A.Equals(b.A) && a.B.Equals(b.B)) || (a.A.Equals(b.B) && a.B.Equals(b.A))
}

func signOf(v Coord) int {
	switch {
	case v < 0.0:
		return -1
	case v > 0.0:
		return 1
	default:
		return 0
	}
}

// edgeKeyCompare totally orders edges by which side of the lower one the
// other edge's endpoints fall on, giving the sweep-line active-edge order.
func edgeKeyCompare(self, other edgeKey) int {
	if edgeKeyEqual(self, other) {
		return 0
	}

	var lo, hi Vec2
	switch canonical(self.A, self.B) {
	case 0:
		return -edgeKeyCompare(other, self)
	case -1:
		lo, hi = self.A, self.B
	default:
		lo, hi = self.B, self.A
	}

	cmp1 := signOf(hi.Sub(lo).Cross(other.A.Sub(lo)))
	cmp2 := signOf(hi.Sub(lo).Cross(other.B.Sub(lo)))

	switch {
	case cmp1 == 0:
		return cmp2
	case cmp2 == 0:
		return cmp1
	case cmp1 != cmp2:
		return -edgeKeyCompare(other, self)
	default:
		return cmp1
	}
}

type edgeMapEntry struct {
	key edgeKey
	idx int
}

// edgeMap is a slice kept sorted by edgeKeyCompare, standing in for a
// BTreeMap<EdgeKey, usize>: the key order here depends on runtime
// geometry, not a fixed field order, so it can't be a Go map key.
type edgeMap []edgeMapEntry

func (m edgeMap) lowerBound(key edgeKey) int {
	return sort.Search(len(m), func(i int) bool { return edgeKeyCompare(m[i].key, key) >= 0 })
}

func (m *edgeMap) insert(key edgeKey, idx int) {
	pos := m.lowerBound(key)
	s := *m
	if pos < len(s) && edgeKeyCompare(s[pos].key, key) == 0 {
		s[pos].idx = idx
		return
	}
	s = append(s, edgeMapEntry{})
	copy(s[pos+1:], s[pos:])
	s[pos] = edgeMapEntry{key: key, idx: idx}
	*m = s
}

func (m *edgeMap) remove(key edgeKey) {
	s := *m
	idx := s.lowerBound(key)
	if idx < len(s) && edgeKeyCompare(s[idx].key, key) == 0 {
		*m = append(s[:idx], s[idx+1:]...)
	}
}

// searchCyclic finds the edges angularly just before and after key in the
// map, wrapping around so the first/last entries neighbor each other. ok
// is false if the map is empty or already has an edge at key.
func (m edgeMap) searchCyclic(key edgeKey) (before, after int, ok bool) {
	if len(m) == 0 {
		return 0, 0, false
	}
	idx := m.lowerBound(key)
	if idx < len(m) && edgeKeyCompare(m[idx].key, key) == 0 {
		return 0, 0, false
	}
	bi := idx - 1
	if bi < 0 {
		bi = len(m) - 1
	}
	ai := idx
	if ai >= len(m) {
		ai = 0
	}
	return m[bi].idx, m[ai].idx, true
}

// searchLastBefore returns the edge index of the largest entry strictly
// before key; it panics if there is none, matching the caller's invariant
// that an enclosing edge always exists.
func (m edgeMap) searchLastBefore(key edgeKey) int {
	idx := m.lowerBound(key)
	return m[idx-1].idx
}

type triVertex struct {
	type_              VertexType
	cur                Vec2
	outgoing, incoming edgeMap
	nextEdge, prevEdge int
}

func newTriVertex(prev, cur, next Vec2) triVertex {
	cp := canonical(cur, prev)
	cn := canonical(cur, next)
	reflex := prev.Sub(cur).AngleBetween(next.Sub(cur)) > 0.0

	var type_ VertexType
	switch {
	case cp > 0 && cn > 0:
		if reflex {
			type_ = VertexSplit
		} else {
			type_ = VertexStart
		}
	case cp < 0 && cn < 0:
		if reflex {
			type_ = VertexMerge
		} else {
			type_ = VertexEnd
		}
	case cn > 0:
		type_ = VertexRegularLeft
	default:
		type_ = VertexRegularRight
	}

	return triVertex{type_: type_, cur: cur}
}

func triVertexLess(a, b triVertex) bool {
	c := canonical(a.cur, b.cur)
	if c != 0 {
		return c < 0
	}
	return a.type_ < b.type_
}

type chainVertex struct {
	pos   Vec2
	type_ VertexType
}

type triEdge struct {
	key          edgeKey
	helperVertex int
	prev, next   int
}

// checkCycle panics if edge e's next-chain revisits an edge before
// returning to e, catching a malformed diagonal split immediately.
func checkCycle(edges []triEdge, e int) {
	visited := make([]bool, len(edges))
	visited[e] = true
	c := edges[e].next

	for c != e {
		if visited[c] {
			panic("cycle detected")
		}
		visited[c] = true
		c = edges[c].next
	}
}

// splitDiagonal adds a diagonal edge pair between v1 and v2, splicing it
// into both vertices' edge cycles.
func splitDiagonal(vertices []triVertex, edges *[]triEdge, v1, v2 int) {
	e := *edges
	e12, e21 := len(e), len(e)+1
	e = append(e, triEdge{key: edgeKey{A: vertices[v1].cur, B: vertices[v2].cur}})
	e = append(e, triEdge{key: edgeKey{A: vertices[v2].cur, B: vertices[v1].cur}})
	*edges = e

	e1lo, _, _ := vertices[v1].outgoing.searchCyclic(e[e12].key)
	_, e1ri, _ := vertices[v1].incoming.searchCyclic(e[e21].key)

	e2lo, _, _ := vertices[v2].outgoing.searchCyclic(e[e21].key)
	_, e2ri, _ := vertices[v2].incoming.searchCyclic(e[e12].key)

	e[e1ri].next = e12
	e[e2lo].prev = e12

	e[e2ri].next = e21
	e[e1lo].prev = e21

	e[e12].next = e2lo
	e[e12].prev = e1ri

	e[e21].next = e1lo
	e[e21].prev = e2ri

	vertices[v1].outgoing.insert(e[e12].key, e12)
	vertices[v1].incoming.insert(e[e21].key, e21)

	vertices[v2].outgoing.insert(e[e21].key, e21)
	vertices[v2].incoming.insert(e[e12].key, e12)

	checkCycle(*edges, e12)
	checkCycle(*edges, e21)
}

// Triangulate turns a set of (already split, simple) polygon contours
// into triangles: each contour is simplified, the whole set is partitioned
// into y-monotone pieces by a sweep line, and each piece is fanned by the
// standard monotone-polygon triangulation.
func Triangulate(contours [][]Vec2) []Triangle {
	simplified := make([][]Vec2, len(contours))
	for i, c := range contours {
		simplified[i] = SimplifyPolygon(c)
	}

	var triangles []Triangle
	for _, polygon := range partitionToMonotone(simplified) {
		triangulateMonotone(&triangles, polygon)
	}

	kept := triangles[:0]
	for _, t := range triangles {
		if !t.IsDegenerate() {
			kept = append(kept, t)
		}
	}
	return kept
}

// partitionToMonotone splits contours into y-monotone polygons via the
// sweep-line diagonal-insertion algorithm.
//
// This indexes the shared vertices/edges slices by the per-contour loop
// index rather than the vertex/edge's true position in those slices, a
// bug inherited from the source this was ported from, which only shows up
// once a caller passes more than one contour (a shape with holes, say).
// Preserved rather than silently fixed; see the package-level
// triangulation regression test.
func partitionToMonotone(contours [][]Vec2) [][]Vec2 {
	var vertices []triVertex
	var edges []triEdge

	for _, poly := range contours {
		if len(poly) < 3 {
			continue
		}
		if _, _, ok := segmentEquivalent(poly); ok {
			continue
		}

		n := len(poly)
		for i := 0; i < n; i++ {
			prevIdx := i
			if i == 0 {
				prevIdx = n
			}
			prev := poly[prevIdx-1]
			cur := poly[i]
			var next Vec2
			if i == n-1 {
				next = poly[0]
			} else {
				next = poly[i+1]
			}

			v := i
			vertices = append(vertices, newTriVertex(prev, cur, next))

			e := i
			edges = append(edges, triEdge{key: edgeKey{A: cur, B: next}})
			vertices[v].nextEdge = e
			vertices[v].outgoing.insert(edges[e].key, e)

			if v > 0 {
				p := vertices[v-1].nextEdge
				vertices[v].prevEdge = p
				vertices[v].incoming.insert(edges[p].key, p)
				edges[vertices[v].nextEdge].prev = vertices[v].prevEdge
				edges[vertices[v].prevEdge].next = vertices[v].nextEdge
			}
		}

		last := len(vertices) - 1
		p := vertices[last].nextEdge
		vertices[0].prevEdge = p
		vertices[0].incoming.insert(edges[p].key, p)
		edges[vertices[0].nextEdge].prev = vertices[0].prevEdge
		edges[vertices[0].prevEdge].next = vertices[0].nextEdge
	}

	vinds := make([]int, len(vertices))
	for i := range vinds {
		vinds[i] = i
	}
	sort.SliceStable(vinds, func(a, b int) bool { return triVertexLess(vertices[vinds[a]], vertices[vinds[b]]) })
	for i, j := 0, len(vinds)-1; i < j; i, j = i+1, j-1 {
		vinds[i], vinds[j] = vinds[j], vinds[i]
	}

	var edgesTmp edgeMap

	for _, i := range vinds {
		switch vertices[i].type_ {
		case VertexStart, VertexSplit:
			if vertices[i].type_ == VertexSplit {
				eleft := edgesTmp.searchLastBefore(edgeKey{A: vertices[i].cur, B: vertices[i].cur})
				helper := edges[eleft].helperVertex
				splitDiagonal(vertices, &edges, i, helper)
				edges[eleft].helperVertex = i
			}

			e := vertices[i].nextEdge
			edges[e].helperVertex = i
			edgesTmp.insert(edges[e].key, e)

		case VertexEnd, VertexMerge:
			e := vertices[i].prevEdge
			helper := edges[e].helperVertex
			if vertices[helper].type_ == VertexMerge {
				splitDiagonal(vertices, &edges, i, helper)
			}
			edgesTmp.remove(edges[e].key)

			if vertices[i].type_ == VertexMerge {
				eleft := edgesTmp.searchLastBefore(edgeKey{A: vertices[i].cur, B: vertices[i].cur})
				helper := edges[eleft].helperVertex
				if vertices[helper].type_ == VertexMerge {
					splitDiagonal(vertices, &edges, i, helper)
				}
				edges[eleft].helperVertex = i
			}

		case VertexRegularLeft:
			e := vertices[i].prevEdge
			helper := edges[e].helperVertex
			if vertices[helper].type_ == VertexMerge {
				splitDiagonal(vertices, &edges, i, helper)
			}
			edgesTmp.remove(edges[e].key)

			e = vertices[i].nextEdge
			edges[e].helperVertex = i
			edgesTmp.insert(edges[e].key, e)

		case VertexRegularRight:
			eleft := edgesTmp.searchLastBefore(edgeKey{A: vertices[i].cur, B: vertices[i].cur})
			helper := edges[eleft].helperVertex
			if vertices[helper].type_ == VertexMerge {
				splitDiagonal(vertices, &edges, i, helper)
			}
			edges[eleft].helperVertex = i
		}
	}

	collected := make([]bool, len(edges))
	var result [][]Vec2

	for i := range vertices {
		e := vertices[i].nextEdge
		if collected[e] {
			continue
		}

		pts := []Vec2{edges[e].key.A}
		collected[e] = true
		c := edges[e].next

		for c != e {
			if collected[c] {
				panic("cycle detected")
			}
			pts = append(pts, edges[c].key.A)
			collected[c] = true
			c = edges[c].next
		}
		result = append(result, pts)
	}

	return result
}

// specialPoint finds the single vertex of poly classified Start (bflag
// true) or End (bflag false): the two endpoints of a y-monotone polygon's
// left/right chain split.
func specialPoint(poly []Vec2, bflag bool) int {
	n := len(poly)
	cond := -1
	if bflag {
		cond = 1
	}

	for i := 0; i < n; i++ {
		prevIdx := i
		if i == 0 {
			prevIdx = n
		}
		prev := poly[prevIdx-1]
		cur := poly[i]
		var next Vec2
		if i == n-1 {
			next = poly[0]
		} else {
			next = poly[i+1]
		}

		cp := canonical(cur, prev)
		cn := canonical(cur, next)
		if cp == cond && cn == cond {
			return i
		}
	}
	return 0
}

func chainRange(ranges ...[2]int) []int {
	var out []int
	for _, r := range ranges {
		for i := r[0]; i < r[1]; i++ {
			out = append(out, i)
		}
	}
	return out
}

func reverseInts(v []int) {
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}

func reverseChainVertices(v []chainVertex) {
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}

// mergeChainVertices merges two already-canonically-sorted chains,
// preferring the second chain on ties (matching the two-pointer merge it
// is ported from).
func mergeChainVertices(a, b []chainVertex) []chainVertex {
	out := make([]chainVertex, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case i >= len(a):
			out = append(out, b[j])
			j++
		case j >= len(b):
			out = append(out, a[i])
			i++
		case canonical(a[i].pos, b[j].pos) < 0:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	return out
}

// triangulateMonotone fans a y-monotone polygon into triangles using the
// standard linear-time stack algorithm.
func triangulateMonotone(triangles *[]Triangle, polygon []Vec2) {
	n := len(polygon)

	if n == 2 {
		return
	}
	if n == 3 {
		*triangles = append(*triangles, NewTriangle(polygon[0], polygon[1], polygon[2]))
		return
	}

	begin := specialPoint(polygon, true)
	end := specialPoint(polygon, false)

	var leftIdx, rightIdx []int
	if begin < end {
		leftIdx = chainRange([2]int{begin + 1, end})
		reverseInts(leftIdx)
		rightIdx = chainRange([2]int{end + 1, n}, [2]int{0, begin})
	} else {
		leftIdx = chainRange([2]int{begin + 1, n}, [2]int{0, end})
		reverseInts(leftIdx)
		rightIdx = chainRange([2]int{end + 1, begin})
	}

	leftChain := make([]chainVertex, len(leftIdx))
	for k, idx := range leftIdx {
		leftChain[k] = chainVertex{pos: polygon[idx], type_: VertexRegularLeft}
	}
	rightChain := make([]chainVertex, len(rightIdx))
	for k, idx := range rightIdx {
		rightChain[k] = chainVertex{pos: polygon[idx], type_: VertexRegularRight}
	}

	vertices := mergeChainVertices(leftChain, rightChain)
	reverseChainVertices(vertices)

	stack := []chainVertex{{pos: polygon[begin], type_: VertexStart}, vertices[0]}

	for j := 1; j < len(vertices); j++ {
		pvert := vertices[j]
		vert := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if vert.type_ != VertexStart && pvert.type_ != vert.type_ {
			for len(stack) > 0 {
				other := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				*triangles = append(*triangles, NewTriangle(pvert.pos, vert.pos, other.pos))
				vert = other
			}
			stack = append(stack, vertices[j-1])
		} else {
			canMakeDiagonal := func(o, vert, pvert chainVertex) bool {
				if vert.type_ == VertexRegularLeft {
					return o.pos.Sub(pvert.pos).Cross(vert.pos.Sub(pvert.pos)) >= 0.0
				}
				return o.pos.Sub(pvert.pos).Cross(vert.pos.Sub(pvert.pos)) <= 0.0
			}

			other := stack[len(stack)-1]
			for canMakeDiagonal(other, vert, pvert) {
				*triangles = append(*triangles, NewTriangle(pvert.pos, vert.pos, other.pos))
				stack = stack[:len(stack)-1]
				vert = other
				if len(stack) == 0 {
					break
				}
				other = stack[len(stack)-1]
			}
			stack = append(stack, vert)
		}

		stack = append(stack, pvert)
	}

	if len(stack) > 0 {
		pvert := polygon[end]
		vert := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for len(stack) > 0 {
			other := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			*triangles = append(*triangles, NewTriangle(pvert, vert.pos, other.pos))
			vert = other
		}
	}
}
