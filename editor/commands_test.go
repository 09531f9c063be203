package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pidforge/pidgraph/core"
	"github.com/pidforge/pidgraph/editor"
	"github.com/pidforge/pidgraph/geometry"
)

func boxNode(t *testing.T, id string, x1, y1, x2, y2 float64) *core.Node {
	t.Helper()
	s, ok := geometry.NewBoxShape(x1, y1, x2, y2)
	require.True(t, ok)
	return &core.Node{ID: id, Kind: core.KindEquipment, Shape: s}
}

func newEditorWithBoxes(t *testing.T) (*editor.Editor, string, string) {
	t.Helper()
	g := core.NewGraph()
	a := boxNode(t, "a", 0, 0, 10, 10)
	b := boxNode(t, "b", 3, 40, 8, 50)
	require.NoError(t, g.AddNode(a))
	require.NoError(t, g.AddNode(b))
	return editor.NewEditor(g), "a", "b"
}

// Scenario 1 (spec.md §8): Box-Box purely vertical, via the editor's
// AddEdge command (no axis lock).
func TestAddEdge_BoxBox_PureVertical(t *testing.T) {
	ed, a, b := newEditorWithBoxes(t)

	require.NoError(t, ed.AddEdge(a, b))

	edge, err := ed.Graph().EdgeBetween(a, b)
	require.NoError(t, err)
	contactA, _ := edge.ContactFor(a)
	contactB, _ := edge.ContactFor(b)
	assert.Equal(t, geometry.Point{X: 5, Y: 10}, contactA)
	assert.Equal(t, geometry.Point{X: 5, Y: 40}, contactB)
}

func TestAddEdge_RejectsSelfLoopAndDuplicate(t *testing.T) {
	ed, a, _ := newEditorWithBoxes(t)
	assert.ErrorIs(t, ed.AddEdge(a, a), editor.ErrSelfLoop)

	require.NoError(t, ed.AddEdge(a, "b"))
	assert.ErrorIs(t, ed.AddEdge(a, "b"), editor.ErrDuplicate)
}

// Scenario 4 (spec.md §8): split preservation.
func TestSplitEdgeWithConnector_PreservesContacts(t *testing.T) {
	ed, a, b := newEditorWithBoxes(t)
	require.NoError(t, ed.AddEdge(a, b))

	before, err := ed.Graph().EdgeBetween(a, b)
	require.NoError(t, err)
	origContactA, _ := before.ContactFor(a)
	origContactB, _ := before.ContactFor(b)

	m, err := ed.SplitEdgeWithConnector(a, b, geometry.Point{X: 5, Y: 25})
	require.NoError(t, err)

	assert.False(t, ed.Graph().HasEdge(a, b))
	require.True(t, ed.Graph().HasEdge(a, m))
	require.True(t, ed.Graph().HasEdge(m, b))

	edgeAM, err := ed.Graph().EdgeBetween(a, m)
	require.NoError(t, err)
	contactA, _ := edgeAM.ContactFor(a)
	assert.Equal(t, origContactA, contactA, "contact on a must survive the split exactly")

	edgeMB, err := ed.Graph().EdgeBetween(m, b)
	require.NoError(t, err)
	contactB, _ := edgeMB.ContactFor(b)
	assert.Equal(t, origContactB, contactB, "contact on b must survive the split exactly")

	mNode, err := ed.Graph().Node(m)
	require.NoError(t, err)
	assert.Equal(t, geometry.Point{X: 5, Y: 25}, mNode.Centroid())
	assert.Equal(t, core.KindConnector, mNode.Kind)
	assert.True(t, mNode.Manual)
}

// Scenario 5 (spec.md §8): delete-with-merge.
func TestDeleteNode_MergesDegreeTwo(t *testing.T) {
	ed, a, b := newEditorWithBoxes(t)
	require.NoError(t, ed.AddEdge(a, b))
	m, err := ed.SplitEdgeWithConnector(a, b, geometry.Point{X: 5, Y: 25})
	require.NoError(t, err)

	require.NoError(t, ed.DeleteNode(m))

	assert.True(t, ed.Graph().HasEdge(a, b))
	assert.False(t, ed.Graph().HasNode(m))
}

func TestDeleteNode_NonDegreeTwo_RemovesAllIncident(t *testing.T) {
	g := core.NewGraph()
	a := boxNode(t, "a", 0, 0, 10, 10)
	b := boxNode(t, "b", 20, 0, 30, 10)
	c := boxNode(t, "c", 40, 0, 50, 10)
	require.NoError(t, g.AddNode(a))
	require.NoError(t, g.AddNode(b))
	require.NoError(t, g.AddNode(c))
	ed := editor.NewEditor(g)
	require.NoError(t, ed.AddEdge("a", "b"))
	require.NoError(t, ed.AddEdge("a", "c"))

	require.NoError(t, ed.DeleteNode("a"))

	assert.False(t, ed.Graph().HasNode("a"))
	assert.False(t, ed.Graph().HasEdge("a", "b"))
	assert.False(t, ed.Graph().HasEdge("a", "c"))
	assert.False(t, ed.Graph().HasEdge("b", "c"), "degree-2 merge only applies to Connector nodes")
}

// Scenario 6 (spec.md §8) and the Optimize monotonicity property: optimize
// never decreases score and never switches the locked axis.
func TestOptimizeEdge_MonotonicAndAxisLocked(t *testing.T) {
	g := core.NewGraph()
	a := boxNode(t, "a", 0, 0, 10, 10)
	b := boxNode(t, "b", 40, 40, 50, 50)
	require.NoError(t, g.AddNode(a))
	require.NoError(t, g.AddNode(b))
	ed := editor.NewEditor(g)
	require.NoError(t, ed.AddEdge("a", "b"))

	before, err := ed.Graph().EdgeBetween("a", "b")
	require.NoError(t, err)
	scoreBefore := before.Info.Score
	axisBefore := before.Info.Axis

	require.NoError(t, ed.OptimizeEdge("a", "b"))

	after, err := ed.Graph().EdgeBetween("a", "b")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, after.Info.Score, scoreBefore)
	assert.Equal(t, axisBefore, after.Info.Axis)
}

func TestOptimizeAllBadEdges_OptimizesOnlyBadOnes(t *testing.T) {
	g := core.NewGraph()
	good1 := boxNode(t, "good1", 0, 0, 10, 10)
	good2 := boxNode(t, "good2", 3, 40, 8, 50)
	bad1 := boxNode(t, "bad1", 100, 100, 110, 110)
	bad2 := boxNode(t, "bad2", 140, 140, 150, 150)
	for _, n := range []*core.Node{good1, good2, bad1, bad2} {
		require.NoError(t, g.AddNode(n))
	}
	ed := editor.NewEditor(g)
	require.NoError(t, ed.AddEdge("good1", "good2"))
	require.NoError(t, ed.AddEdge("bad1", "bad2"))

	count, err := ed.OptimizeAllBadEdges()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// Drag commutativity: Drag ; Undo is observationally equivalent to the
// identity on the model.
func TestDragNode_UndoIsIdentity(t *testing.T) {
	ed, a, b := newEditorWithBoxes(t)
	require.NoError(t, ed.AddEdge(a, b))

	nodeBefore, err := ed.Graph().Node(a)
	require.NoError(t, err)
	centroidBefore := nodeBefore.Centroid()
	edgeBefore, err := ed.Graph().EdgeBetween(a, b)
	require.NoError(t, err)
	contactABefore, _ := edgeBefore.ContactFor(a)
	contactBBefore, _ := edgeBefore.ContactFor(b)

	require.NoError(t, ed.DragNode(a, geometry.Point{X: 100, Y: 100}))
	require.NoError(t, ed.Undo())

	nodeAfter, err := ed.Graph().Node(a)
	require.NoError(t, err)
	assert.Equal(t, centroidBefore, nodeAfter.Centroid())

	edgeAfter, err := ed.Graph().EdgeBetween(a, b)
	require.NoError(t, err)
	contactAAfter, _ := edgeAfter.ContactFor(a)
	contactBAfter, _ := edgeAfter.ContactFor(b)
	assert.Equal(t, contactABefore, contactAAfter)
	assert.Equal(t, contactBBefore, contactBAfter)
}

func TestAddIsolatedConnector(t *testing.T) {
	ed := editor.NewEditor(nil)
	id, err := ed.AddIsolatedConnector(geometry.Point{X: 1, Y: 2})
	require.NoError(t, err)

	n, err := ed.Graph().Node(id)
	require.NoError(t, err)
	assert.Equal(t, core.KindConnector, n.Kind)
	assert.True(t, n.Manual)
	deg, err := ed.Graph().Degree(id)
	require.NoError(t, err)
	assert.Equal(t, 0, deg)
}

func TestDeleteEdge_ReportsMissing(t *testing.T) {
	ed, a, b := newEditorWithBoxes(t)
	assert.ErrorIs(t, ed.DeleteEdge(a, b), editor.ErrEdgeMissing)
}
