// File: undo.go
// Role: Bounded undo journal of tagged, exactly-reversible record variants.
package editor

import (
	"github.com/pidforge/pidgraph/connect"
	"github.com/pidforge/pidgraph/core"
	"github.com/pidforge/pidgraph/geometry"
)

// undoRecord is the closed set of reversible command records. apply
// restores the graph to its state immediately before the command ran.
type undoRecord interface {
	apply(g *core.Graph) error
}

type recAddEdge struct {
	a, b     string
	contactA geometry.Point
	contactB geometry.Point
}

func (r recAddEdge) apply(g *core.Graph) error {
	return g.RemoveEdge(r.a, r.b)
}

type recDeleteEdge struct {
	a, b     string
	contactA geometry.Point
	contactB geometry.Point
	info     connect.Info
	metadata map[string]interface{}
}

func (r recDeleteEdge) apply(g *core.Graph) error {
	return g.AddEdge(r.a, r.b, r.contactA, r.contactB, r.info, r.metadata)
}

type recSplitEdgeWithConnector struct {
	newID        string
	a, b         string
	originalEdge core.Edge
}

func (r recSplitEdgeWithConnector) apply(g *core.Graph) error {
	_ = g.RemoveEdge(r.a, r.newID)
	_ = g.RemoveEdge(r.newID, r.b)
	if err := g.RemoveNode(r.newID); err != nil {
		return err
	}
	e := r.originalEdge
	return g.AddEdge(e.Source, e.Target, e.SourceContact, e.TargetContact, e.Info, e.Metadata)
}

type recAddIsolatedConnector struct {
	newID string
}

func (r recAddIsolatedConnector) apply(g *core.Graph) error {
	return g.RemoveNode(r.newID)
}

type recDeleteNode struct {
	node           core.Node
	incidentEdges  []core.Edge
	mergeNeighbors *[2]string
	mergeEdge      *core.Edge
}

func (r recDeleteNode) apply(g *core.Graph) error {
	if r.mergeEdge != nil {
		if err := g.RemoveEdge(r.mergeEdge.Source, r.mergeEdge.Target); err != nil {
			return err
		}
	}
	n := r.node
	if err := g.AddNode(&n); err != nil {
		return err
	}
	for _, e := range r.incidentEdges {
		if err := g.AddEdge(e.Source, e.Target, e.SourceContact, e.TargetContact, e.Info, e.Metadata); err != nil {
			return err
		}
	}
	return nil
}

type recDragNode struct {
	id              string
	oldCentroid     geometry.Point
	perEdgeContacts map[[2]string]contactPair
}

type contactPair struct {
	source, target geometry.Point
}

func (r recDragNode) apply(g *core.Graph) error {
	n, err := g.Node(r.id)
	if err != nil {
		return err
	}
	delta := r.oldCentroid.Sub(n.Centroid())
	if err := g.TranslateNode(r.id, delta); err != nil {
		return err
	}
	for key, cp := range r.perEdgeContacts {
		e, err := g.EdgeBetween(key[0], key[1])
		if err != nil {
			return err
		}
		ne := *e
		ne.SourceContact, ne.TargetContact = cp.source, cp.target
		if err := g.ReplaceEdge(&ne); err != nil {
			return err
		}
	}
	return nil
}

type recOptimizeEdge struct {
	a, b        string
	oldContactA geometry.Point
	oldContactB geometry.Point
	oldInfo     connect.Info
}

func (r recOptimizeEdge) apply(g *core.Graph) error {
	e, err := g.EdgeBetween(r.a, r.b)
	if err != nil {
		return err
	}
	ne := *e
	ne.SourceContact, ne.TargetContact = r.oldContactA, r.oldContactB
	ne.Info = r.oldInfo
	return g.ReplaceEdge(&ne)
}

// recOptimizeAll reverses each per-edge record in reverse application order.
type recOptimizeAll struct {
	records []recOptimizeEdge
}

func (r recOptimizeAll) apply(g *core.Graph) error {
	for i := len(r.records) - 1; i >= 0; i-- {
		if err := r.records[i].apply(g); err != nil {
			return err
		}
	}
	return nil
}

// undoJournal is a bounded deque of undoRecord values; Push drops the
// oldest record once capacity is exceeded.
type undoJournal struct {
	records  []undoRecord
	capacity int
}

func newUndoJournal(capacity int) *undoJournal {
	return &undoJournal{capacity: capacity}
}

func (j *undoJournal) push(r undoRecord) {
	j.records = append(j.records, r)
	if len(j.records) > j.capacity {
		j.records = j.records[len(j.records)-j.capacity:]
	}
}

func (j *undoJournal) pop() (undoRecord, bool) {
	if len(j.records) == 0 {
		return nil, false
	}
	r := j.records[len(j.records)-1]
	j.records = j.records[:len(j.records)-1]
	return r, true
}

func (j *undoJournal) len() int {
	return len(j.records)
}
