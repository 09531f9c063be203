package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pidforge/pidgraph/geometry"
)

func TestAxisScore(t *testing.T) {
	s, axis := geometry.AxisScore(0, 30)
	assert.Equal(t, geometry.AxisVertical, axis)
	assert.InDelta(t, 1.0, s, 1e-9)

	s, axis = geometry.AxisScore(30, 0)
	assert.Equal(t, geometry.AxisHorizontal, axis)
	assert.InDelta(t, 1.0, s, 1e-9)

	s, axis = geometry.AxisScore(0, 0)
	assert.Equal(t, geometry.AxisPoint, axis)
	assert.InDelta(t, 1.0, s, 1e-9)

	s, axis = geometry.AxisScore(10, 10)
	assert.Equal(t, geometry.AxisVertical, axis) // tie leans vertical (adx<=ady)
	assert.True(t, s > 0 && s < 1, "diagonal vector must score strictly between 0 and 1")
}

func TestPointToSegment(t *testing.T) {
	closest, dist := geometry.PointToSegment(geometry.Point{X: 5, Y: 5}, geometry.Point{X: 0, Y: 0}, geometry.Point{X: 10, Y: 0})
	assert.Equal(t, geometry.Point{X: 5, Y: 0}, closest)
	assert.InDelta(t, 5, dist, 1e-9)

	// Degenerate segment collapses to its single endpoint.
	closest, _ = geometry.PointToSegment(geometry.Point{X: 1, Y: 1}, geometry.Point{X: 2, Y: 2}, geometry.Point{X: 2, Y: 2})
	assert.Equal(t, geometry.Point{X: 2, Y: 2}, closest)
}

func TestClosestBetweenSegments(t *testing.T) {
	onA, onB, dist := geometry.ClosestBetweenSegments(
		geometry.Point{X: 0, Y: 0}, geometry.Point{X: 10, Y: 0},
		geometry.Point{X: 0, Y: 5}, geometry.Point{X: 10, Y: 5},
	)
	assert.InDelta(t, 5, dist, 1e-9)
	assert.InDelta(t, onA.Y, 0, 1e-9)
	assert.InDelta(t, onB.Y, 5, 1e-9)
}

func TestSegmentsOverlap1D(t *testing.T) {
	overlaps, start, end := geometry.SegmentsOverlap1D(0, 10, 5, 15)
	require.True(t, overlaps)
	assert.InDelta(t, 5, start, 1e-9)
	assert.InDelta(t, 10, end, 1e-9)

	overlaps, _, _ = geometry.SegmentsOverlap1D(0, 10, 20, 30)
	assert.False(t, overlaps)
}

func TestBoxShape(t *testing.T) {
	_, ok := geometry.NewBoxShape(10, 0, 5, 10)
	assert.False(t, ok, "x1>=x2 must be rejected as GeometryDegenerate")

	box, ok := geometry.NewBoxShape(0, 0, 10, 10)
	require.True(t, ok)
	assert.Equal(t, geometry.Point{X: 5, Y: 5}, box.Centroid())
	assert.Len(t, box.Boundary(), 4)
	assert.True(t, box.ContainsBoundaryPoint(geometry.Point{X: 5, Y: 0}))
	assert.False(t, box.ContainsBoundaryPoint(geometry.Point{X: 5, Y: 5}))

	moved := box.Translate(geometry.Point{X: 3, Y: 40})
	assert.Equal(t, geometry.Point{X: 8, Y: 45}, moved.Centroid())
}

func TestPolygonShape(t *testing.T) {
	_, ok := geometry.NewPolygonShape([]geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.False(t, ok, "fewer than 3 unique vertices must be rejected")

	poly, ok := geometry.NewPolygonShape([]geometry.Point{
		{X: 20, Y: 30}, {X: 30, Y: 30}, {X: 30, Y: 40}, {X: 20, Y: 40},
	})
	require.True(t, ok)
	assert.Equal(t, geometry.Point{X: 25, Y: 35}, poly.Centroid())
	assert.Len(t, poly.Boundary(), 4)
	assert.True(t, poly.ContainsBoundaryPoint(geometry.Point{X: 25, Y: 30}))
}

func TestPointShapeContactIsCentroid(t *testing.T) {
	p := geometry.NewPointShape(geometry.Point{X: 1, Y: 2})
	assert.Equal(t, p.Centroid(), p.Point)
	assert.True(t, p.ContainsBoundaryPoint(p.Point))
}
