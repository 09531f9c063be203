package connect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pidforge/pidgraph/connect"
	"github.com/pidforge/pidgraph/geometry"
)

func box(t *testing.T, x1, y1, x2, y2 float64) geometry.Shape {
	t.Helper()
	s, ok := geometry.NewBoxShape(x1, y1, x2, y2)
	require.True(t, ok)
	return s
}

func poly(t *testing.T, verts ...geometry.Point) geometry.Shape {
	t.Helper()
	s, ok := geometry.NewPolygonShape(verts)
	require.True(t, ok)
	return s
}

// Scenario 1: two boxes separated purely along the vertical axis connect
// at the nearest crossing of the vertical line through A's centroid.
func TestConnect_BoxBox_PureVertical(t *testing.T) {
	a := box(t, 0, 0, 10, 10)
	b := box(t, 3, 40, 8, 50)

	onA, onB, info := connect.ConnectBoxBox(a, b, nil)

	assert.Equal(t, geometry.Point{X: 5, Y: 10}, onA)
	assert.Equal(t, geometry.Point{X: 5, Y: 40}, onB)
	assert.Equal(t, geometry.AxisVertical, info.Axis)
	assert.InDelta(t, 1.0, info.Score, 1e-9)
	assert.False(t, info.Fallback)
}

// Scenario 2: two boxes separated diagonally fall through to the level-4
// wall-to-wall rule and score below the "good" threshold.
func TestConnect_BoxBox_DiagonalFallsToWallToWall(t *testing.T) {
	a := box(t, 0, 0, 10, 10)
	b := box(t, 40, 40, 50, 50)

	_, _, info := connect.ConnectBoxBox(a, b, nil)

	assert.Equal(t, "wall-to-wall", info.Kind)
	assert.Less(t, info.Score, 1.0)
	assert.False(t, info.Fallback)
}

// Scenario 3: a point connects to a polygon via the vertical line through
// the point when that line crosses the polygon's boundary.
func TestConnect_PointPolygon_Vertical(t *testing.T) {
	p := geometry.NewPointShape(geometry.Point{X: 5, Y: -5})
	pg := poly(t,
		geometry.Point{X: 0, Y: 0},
		geometry.Point{X: 10, Y: 0},
		geometry.Point{X: 10, Y: 10},
		geometry.Point{X: 0, Y: 10},
	)

	onP, onPoly, info := connect.Connect(p, pg, nil)

	assert.Equal(t, geometry.Point{X: 5, Y: -5}, onP)
	assert.Equal(t, geometry.Point{X: 5, Y: 0}, onPoly)
	assert.Equal(t, geometry.AxisVertical, info.Axis)
	assert.InDelta(t, 1.0, info.Score, 1e-9)
}

func TestConnect_BoxBox_OverlappingOneAxis(t *testing.T) {
	// Overlap along x, separated along y, with neither box's centroid
	// column/row crossing the other (so levels 1-2 both fail and level 3
	// fires on the shared x-overlap's midpoint).
	a := box(t, 0, 0, 10, 10)
	b := box(t, 6, 20, 20, 30)

	onA, onB, info := connect.ConnectBoxBox(a, b, nil)

	assert.Equal(t, "overlap-perp", info.Kind)
	assert.Equal(t, onA.X, onB.X)
	assert.InDelta(t, 1.0, info.Score, 1e-9)
}

func TestConnect_BoxBox_FullyOverlapping(t *testing.T) {
	a := box(t, 0, 0, 10, 10)
	b := box(t, 2, 2, 8, 8)

	_, _, info := connect.ConnectBoxBox(a, b, nil)

	assert.Equal(t, "overlapping", info.Kind)
}

func TestConnect_PointPoint(t *testing.T) {
	pa := geometry.NewPointShape(geometry.Point{X: 0, Y: 0})
	pb := geometry.NewPointShape(geometry.Point{X: 0, Y: 5})

	onA, onB, info := connect.Connect(pa, pb, nil)

	assert.Equal(t, geometry.Point{X: 0, Y: 0}, onA)
	assert.Equal(t, geometry.Point{X: 0, Y: 5}, onB)
	assert.Equal(t, "point-direct", info.Kind)
	assert.Equal(t, geometry.AxisVertical, info.Axis)
}

func TestConnect_AxisLock_RestrictsCandidate(t *testing.T) {
	a := box(t, 0, 0, 10, 10)
	b := box(t, 40, 40, 50, 50)
	horiz := geometry.AxisHorizontal

	onA, onB, _ := connect.ConnectBoxBox(a, b, &horiz)

	// The locked winner is a low-scoring wall-to-wall pair, so Info.Axis is
	// relabelled AxisDiagonal; the contact pair itself leans horizontal.
	d := onB.Sub(onA)
	_, axis := geometry.AxisScore(d.X, d.Y)
	assert.Equal(t, geometry.AxisHorizontal, axis)
}

func TestConnect_ArgumentOrderNormalized(t *testing.T) {
	b := box(t, 0, 0, 10, 10)
	pg := poly(t,
		geometry.Point{X: 20, Y: 0},
		geometry.Point{X: 30, Y: 0},
		geometry.Point{X: 30, Y: 10},
		geometry.Point{X: 20, Y: 10},
	)

	onB1, onPg1, info1 := connect.Connect(b, pg, nil)
	onPg2, onB2, info2 := connect.Connect(pg, b, nil)

	assert.Equal(t, onB1, onB2)
	assert.Equal(t, onPg1, onPg2)
	assert.Equal(t, info1.Axis, info2.Axis)
	assert.InDelta(t, info1.Score, info2.Score, 1e-9)
}
