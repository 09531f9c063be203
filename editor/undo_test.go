package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pidforge/pidgraph/core"
	"github.com/pidforge/pidgraph/editor"
	"github.com/pidforge/pidgraph/geometry"
)

// Undo round-trip (spec.md §8): applying then undoing any sequence of
// valid commands returns the graph to its structurally-equal starting
// state (same node set, same edge set, contacts equal within tolerance).
func TestUndo_RoundTrip(t *testing.T) {
	g := core.NewGraph()
	a := boxNode(t, "a", 0, 0, 10, 10)
	b := boxNode(t, "b", 3, 40, 8, 50)
	c := boxNode(t, "c", 100, 100, 110, 110)
	require.NoError(t, g.AddNode(a))
	require.NoError(t, g.AddNode(b))
	require.NoError(t, g.AddNode(c))
	ed := editor.NewEditor(g)

	originalNodes := ed.Graph().Nodes()
	require.NoError(t, ed.AddEdge("a", "b"))
	m, err := ed.SplitEdgeWithConnector("a", "b", geometry.Point{X: 5, Y: 25})
	require.NoError(t, err)
	require.NoError(t, ed.AddEdge(m, "c"))
	require.NoError(t, ed.DragNode("c", geometry.Point{X: 200, Y: 200}))

	applied := 4
	for i := 0; i < applied; i++ {
		require.NoError(t, ed.Undo())
	}
	assert.ErrorIs(t, ed.Undo(), editor.ErrNothingToUndo)

	assert.Equal(t, originalNodes, ed.Graph().Nodes())
	assert.Equal(t, 0, ed.Graph().EdgeCount())
	nodeC, err := ed.Graph().Node("c")
	require.NoError(t, err)
	assert.Equal(t, geometry.Point{X: 105, Y: 105}, nodeC.Centroid())
}

// OptimizeAllBadEdges records a single compound undo record; undoing once
// reverses every edge it touched.
func TestUndo_OptimizeAllIsOneCompoundRecord(t *testing.T) {
	g := core.NewGraph()
	bad1 := boxNode(t, "bad1", 100, 100, 110, 110)
	bad2 := boxNode(t, "bad2", 140, 140, 150, 150)
	require.NoError(t, g.AddNode(bad1))
	require.NoError(t, g.AddNode(bad2))
	ed := editor.NewEditor(g)
	require.NoError(t, ed.AddEdge("bad1", "bad2"))

	before, err := ed.Graph().EdgeBetween("bad1", "bad2")
	require.NoError(t, err)
	contactABefore, _ := before.ContactFor("bad1")
	contactBBefore, _ := before.ContactFor("bad2")

	depthBefore := ed.UndoDepth()
	count, err := ed.OptimizeAllBadEdges()
	require.NoError(t, err)
	require.Equal(t, 1, count)
	assert.Equal(t, depthBefore+1, ed.UndoDepth(), "OptimizeAllBadEdges must push exactly one compound record")

	require.NoError(t, ed.Undo())
	after, err := ed.Graph().EdgeBetween("bad1", "bad2")
	require.NoError(t, err)
	contactAAfter, _ := after.ContactFor("bad1")
	contactBAfter, _ := after.ContactFor("bad2")
	assert.Equal(t, contactABefore, contactAAfter)
	assert.Equal(t, contactBBefore, contactBAfter)
}

func TestUndo_DeleteEdge_ReinsertsIdenticalContacts(t *testing.T) {
	ed, a, b := newEditorWithBoxes(t)
	require.NoError(t, ed.AddEdge(a, b))

	before, err := ed.Graph().EdgeBetween(a, b)
	require.NoError(t, err)
	contactABefore, _ := before.ContactFor(a)
	contactBBefore, _ := before.ContactFor(b)

	require.NoError(t, ed.DeleteEdge(a, b))
	require.NoError(t, ed.Undo())

	after, err := ed.Graph().EdgeBetween(a, b)
	require.NoError(t, err)
	contactAAfter, _ := after.ContactFor(a)
	contactBAfter, _ := after.ContactFor(b)
	assert.Equal(t, contactABefore, contactAAfter)
	assert.Equal(t, contactBBefore, contactBAfter)
}

func TestUndo_CapacityBounded(t *testing.T) {
	g := core.NewGraph()
	ed := editor.NewEditor(g, editor.WithUndoCapacity(2))

	for i := 0; i < 3; i++ {
		_, err := ed.AddIsolatedConnector(geometry.Point{X: float64(i), Y: 0})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, ed.UndoDepth())
}
