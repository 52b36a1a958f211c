package curvemesh

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func checkEdgeLoop(t *testing.T, d *dcel, edge int, want []int) {
	t.Helper()
	require.Equal(t, want, d.edgeLoop(edge))
}

func checkFaceCount(t *testing.T, d *dcel, want int) {
	t.Helper()
	require.Len(t, d.faces, want)
}

func checkOutDegrees(t *testing.T, d *dcel, want []int) {
	t.Helper()
	require.Len(t, d.vertices, len(want))
	for i, w := range want {
		require.Equalf(t, w, len(d.vertices[i].outEdges), "vertex %d out-degree", i)
	}
}

func TestDcelSimpleFace(t *testing.T) {
	d := newDcel(3)

	d.addCurve(0, 1, NewLine(Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 0}))
	checkEdgeLoop(t, d, 0, []int{0, 1})
	checkFaceCount(t, d, 1)
	checkOutDegrees(t, d, []int{1, 1, 0})

	d.addCurve(1, 2, NewLine(Vec2{X: 1, Y: 0}, Vec2{X: 0, Y: 1}))
	checkEdgeLoop(t, d, 0, []int{0, 2, 3, 1})
	checkFaceCount(t, d, 1)
	checkOutDegrees(t, d, []int{1, 2, 1})

	d.addCurve(2, 0, NewLine(Vec2{X: 0, Y: 1}, Vec2{X: 0, Y: 0}))
	checkEdgeLoop(t, d, 0, []int{0, 2, 4})
	checkEdgeLoop(t, d, 1, []int{1, 5, 3})
	checkFaceCount(t, d, 2)
	checkOutDegrees(t, d, []int{2, 2, 2})
}

func TestDcelDoubleFace(t *testing.T) {
	d := newDcel(4)

	d.addCurve(0, 1, NewLine(Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 0}))
	checkEdgeLoop(t, d, 0, []int{0, 1})
	checkFaceCount(t, d, 1)
	checkOutDegrees(t, d, []int{1, 1, 0, 0})

	d.addCurve(1, 2, NewLine(Vec2{X: 1, Y: 0}, Vec2{X: 0, Y: 1}))
	checkEdgeLoop(t, d, 0, []int{0, 2, 3, 1})
	checkFaceCount(t, d, 1)
	checkOutDegrees(t, d, []int{1, 2, 1, 0})

	d.addCurve(2, 0, NewLine(Vec2{X: 0, Y: 1}, Vec2{X: 0, Y: 0}))
	checkEdgeLoop(t, d, 0, []int{0, 2, 4})
	checkEdgeLoop(t, d, 1, []int{1, 5, 3})
	checkFaceCount(t, d, 2)
	checkOutDegrees(t, d, []int{2, 2, 2, 0})

	d.addCurve(1, 3, NewLine(Vec2{X: 1, Y: 0}, Vec2{X: 1, Y: 1}))
	checkEdgeLoop(t, d, 1, []int{1, 5, 3, 6, 7})
	checkFaceCount(t, d, 2)
	checkOutDegrees(t, d, []int{2, 3, 2, 1})

	d.addCurve(3, 2, NewLine(Vec2{X: 1, Y: 1}, Vec2{X: 0, Y: 1}))
	checkEdgeLoop(t, d, 1, []int{1, 5, 9, 7})
	checkEdgeLoop(t, d, 3, []int{3, 6, 8})
	checkFaceCount(t, d, 3)
	checkOutDegrees(t, d, []int{2, 3, 3, 2})
}
