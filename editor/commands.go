// File: commands.go
// Role: Atomic edit commands: each either fully applies and pushes one
// undo record, or leaves the graph unchanged and returns an error.
package editor

import (
	"time"

	"github.com/pidforge/pidgraph/connect"
	"github.com/pidforge/pidgraph/core"
	"github.com/pidforge/pidgraph/geometry"
	"github.com/pidforge/pidgraph/perpendicularity"
)

// AddEdge connects a and b using the connection engine with no axis lock.
// Rejects a==b, a missing endpoint, or an existing edge between them.
func (e *Editor) AddEdge(a, b string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	contactA, contactB, info, err := e.computeContacts(a, b, nil)
	if err != nil {
		return err
	}
	if err := e.graph.AddEdge(a, b, contactA, contactB, info, nil); err != nil {
		return err
	}
	e.journal.push(recAddEdge{a: a, b: b, contactA: contactA, contactB: contactB})
	e.emit(Event{Kind: EventCommandApplied, Command: "AddEdge", NodeIDs: []string{a, b}})
	e.observeCommand("AddEdge", nil)
	return nil
}

// DeleteEdge removes the edge between a and b. Returns ErrEdgeMissing if
// absent.
func (e *Editor) DeleteEdge(a, b string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	edge, err := e.graph.EdgeBetween(a, b)
	if err != nil {
		return err
	}
	rec := recDeleteEdge{
		a: edge.Source, b: edge.Target,
		contactA: edge.SourceContact, contactB: edge.TargetContact,
		info: edge.Info, metadata: edge.Metadata,
	}
	if err := e.graph.RemoveEdge(a, b); err != nil {
		return err
	}
	e.journal.push(rec)
	e.emit(Event{Kind: EventCommandApplied, Command: "DeleteEdge", NodeIDs: []string{a, b}})
	e.observeCommand("DeleteEdge", nil)
	return nil
}

// SplitEdgeWithConnector replaces the edge (a,b) with a new Connector node
// m at point, connected to a and b with the original edge's contacts
// preserved exactly on the a and b sides.
func (e *Editor) SplitEdgeWithConnector(a, b string, point geometry.Point) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	edge, err := e.graph.EdgeBetween(a, b)
	if err != nil {
		return "", err
	}
	contactA, _ := edge.ContactFor(a)
	contactB, _ := edge.ContactFor(b)
	original := *edge

	m := e.ids.next()
	mNode := &core.Node{ID: m, Kind: core.KindConnector, Shape: geometry.NewPointShape(point), DetectionIndex: -1, Manual: true}

	if err := e.graph.RemoveEdge(a, b); err != nil {
		return "", err
	}
	if err := e.graph.AddNode(mNode); err != nil {
		return "", err
	}
	if err := e.graph.AddEdge(a, m, contactA, point, original.Info, nil); err != nil {
		return "", err
	}
	if err := e.graph.AddEdge(m, b, point, contactB, original.Info, nil); err != nil {
		return "", err
	}

	e.journal.push(recSplitEdgeWithConnector{newID: m, a: a, b: b, originalEdge: original})
	e.emit(Event{Kind: EventCommandApplied, Command: "SplitEdgeWithConnector", NodeIDs: []string{a, b, m}})
	e.observeCommand("SplitEdgeWithConnector", nil)
	return m, nil
}

// AddIsolatedConnector adds a new footprint-less Connector node at point,
// with no edges.
func (e *Editor) AddIsolatedConnector(point geometry.Point) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.ids.next()
	n := &core.Node{ID: id, Kind: core.KindConnector, Shape: geometry.NewPointShape(point), DetectionIndex: -1, Manual: true}
	if err := e.graph.AddNode(n); err != nil {
		return "", err
	}
	e.journal.push(recAddIsolatedConnector{newID: id})
	e.emit(Event{Kind: EventCommandApplied, Command: "AddIsolatedConnector", NodeIDs: []string{id}})
	e.observeCommand("AddIsolatedConnector", nil)
	return id, nil
}

// DeleteNode removes id. If id is a Connector of degree exactly 2, the two
// incident edges are merged into a single fresh edge between its
// neighbors (if the neighbors are already joined, that edge is kept as is);
// otherwise id and all incident edges are simply removed.
func (e *Editor) DeleteNode(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	node, err := e.graph.Node(id)
	if err != nil {
		return err
	}
	neighbors, err := e.graph.Neighbors(id)
	if err != nil {
		return err
	}

	incident := make([]core.Edge, 0, len(neighbors))
	for _, nbr := range neighbors {
		edge, err := e.graph.EdgeBetween(id, nbr)
		if err != nil {
			return err
		}
		incident = append(incident, *edge)
	}

	rec := recDeleteNode{node: *node, incidentEdges: incident}

	if node.Kind == core.KindConnector && len(neighbors) == 2 && !e.graph.HasEdge(neighbors[0], neighbors[1]) {
		n1, n2 := neighbors[0], neighbors[1]
		if err := e.removeNodeAndEdges(id, incident); err != nil {
			return err
		}
		contactA, contactB, info, err := e.computeContacts(n1, n2, nil)
		if err != nil {
			return err
		}
		if err := e.graph.AddEdge(n1, n2, contactA, contactB, info, nil); err != nil {
			return err
		}
		mergeEdge, _ := e.graph.EdgeBetween(n1, n2)
		rec.mergeNeighbors = &[2]string{n1, n2}
		rec.mergeEdge = mergeEdge
	} else {
		if err := e.removeNodeAndEdges(id, incident); err != nil {
			return err
		}
	}

	e.journal.push(rec)
	e.emit(Event{Kind: EventCommandApplied, Command: "DeleteNode", NodeIDs: []string{id}})
	e.observeCommand("DeleteNode", nil)
	return nil
}

func (e *Editor) removeNodeAndEdges(id string, incident []core.Edge) error {
	for _, edge := range incident {
		if err := e.graph.RemoveEdge(edge.Source, edge.Target); err != nil {
			return err
		}
	}
	return e.graph.RemoveNode(id)
}

// DragNode translates a node's shape to newCentroid and recomputes both
// contact points of every incident edge, with no axis lock: dragging is
// the only operation that changes neighbor-edge contacts without direct
// user intent on those edges.
func (e *Editor) DragNode(id string, newCentroid geometry.Point) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	node, err := e.graph.Node(id)
	if err != nil {
		return err
	}
	oldCentroid := node.Centroid()
	delta := newCentroid.Sub(oldCentroid)

	neighbors, err := e.graph.Neighbors(id)
	if err != nil {
		return err
	}
	perEdge := make(map[[2]string]contactPair, len(neighbors))
	for _, nbr := range neighbors {
		edge, err := e.graph.EdgeBetween(id, nbr)
		if err != nil {
			return err
		}
		perEdge[[2]string{edge.Source, edge.Target}] = contactPair{source: edge.SourceContact, target: edge.TargetContact}
	}

	if err := e.graph.TranslateNode(id, delta); err != nil {
		return err
	}
	for _, nbr := range neighbors {
		other, err := e.graph.Node(nbr)
		if err != nil {
			return err
		}
		moved, _ := e.graph.Node(id)
		contactSelf, contactOther, info, err := e.computeContactsForShapes(moved.Shape, other.Shape, nil)
		if err != nil {
			return err
		}
		edge, err := e.graph.EdgeBetween(id, nbr)
		if err != nil {
			return err
		}
		ne := *edge
		if ne.Source == id {
			ne.SourceContact, ne.TargetContact = contactSelf, contactOther
		} else {
			ne.SourceContact, ne.TargetContact = contactOther, contactSelf
		}
		ne.Info = info
		if err := e.graph.ReplaceEdge(&ne); err != nil {
			return err
		}
	}

	e.journal.push(recDragNode{id: id, oldCentroid: oldCentroid, perEdgeContacts: perEdge})
	e.emit(Event{Kind: EventCommandApplied, Command: "DragNode", NodeIDs: append([]string{id}, neighbors...)})
	e.observeCommand("DragNode", nil)
	return nil
}

// OptimizeEdge recomputes the contacts of the edge (a,b) under an axis
// lock derived from the edge's current classification, per the Open
// Question resolution: lock to whichever axis currently scores higher,
// falling back to vertical on ties.
func (e *Editor) OptimizeEdge(a, b string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.optimizeEdgeLocked(a, b)
}

func (e *Editor) optimizeEdgeLocked(a, b string) error {
	edge, err := e.graph.EdgeBetween(a, b)
	if err != nil {
		return err
	}
	lock := axisLockFor(edge.SourceContact, edge.TargetContact)

	contactA, contactB, info, err := e.computeContacts(edge.Source, edge.Target, &lock)
	if err != nil {
		return err
	}

	rec := recOptimizeEdge{
		a: edge.Source, b: edge.Target,
		oldContactA: edge.SourceContact, oldContactB: edge.TargetContact,
		oldInfo: edge.Info,
	}

	ne := *edge
	ne.SourceContact, ne.TargetContact, ne.Info = contactA, contactB, info
	if err := e.graph.ReplaceEdge(&ne); err != nil {
		return err
	}

	e.journal.push(rec)
	e.emit(Event{Kind: EventCommandApplied, Command: "OptimizeEdge", NodeIDs: []string{a, b}})
	e.observeCommand("OptimizeEdge", nil)
	return nil
}

// axisLockFor resolves the §9 Open Question: derive the axis lock from the
// edge's current contact vector by re-scoring both candidate axes and
// picking the higher-scoring one, favoring vertical on an exact tie.
func axisLockFor(contactA, contactB geometry.Point) geometry.Axis {
	d := contactB.Sub(contactA)
	_, scoredAxis := geometry.AxisScore(d.X, d.Y)
	if scoredAxis == geometry.AxisVertical || scoredAxis == geometry.AxisPoint {
		return geometry.AxisVertical
	}
	return scoredAxis
}

// OptimizeAllBadEdges invokes OptimizeEdge for every edge currently
// classified bad, recording a single compound undo record that reverses
// all of them in reverse application order.
func (e *Editor) OptimizeAllBadEdges() (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	var compound []recOptimizeEdge
	count := 0
	for _, edge := range e.graph.Edges() {
		if perpendicularity.IsGood(edge.Info.Score) {
			continue
		}
		a, b := edge.Source, edge.Target
		before, err := e.graph.EdgeBetween(a, b)
		if err != nil {
			continue
		}
		rec := recOptimizeEdge{
			a: before.Source, b: before.Target,
			oldContactA: before.SourceContact, oldContactB: before.TargetContact,
			oldInfo: before.Info,
		}
		if err := e.optimizeEdgeLocked(a, b); err != nil {
			return count, err
		}
		compound = append(compound, rec)
		count++
	}
	if count > 0 {
		// optimizeEdgeLocked already pushed one record per edge; replace
		// those with a single compound record so undo reverses them together.
		for range compound {
			e.journal.pop()
		}
		e.journal.push(recOptimizeAll{records: compound})
	}
	e.emit(Event{Kind: EventCommandApplied, Command: "OptimizeAllBadEdges"})
	e.observeCommand("OptimizeAllBadEdges", nil)
	if e.cfg.metrics != nil {
		e.cfg.metrics.ObserveOptimizeAllDuration(time.Since(start))
		e.cfg.metrics.SetBadEdges(e.countBadEdgesLocked())
	}
	return count, nil
}

// countBadEdgesLocked must be called with e.mu held.
func (e *Editor) countBadEdgesLocked() int {
	n := 0
	for _, edge := range e.graph.Edges() {
		if !perpendicularity.IsGood(edge.Info.Score) {
			n++
		}
	}
	return n
}

// observeCommand forwards a command outcome to the configured metrics
// recorder, if any. A nil recorder is a no-op.
func (e *Editor) observeCommand(command string, err error) {
	if e.cfg.metrics != nil {
		e.cfg.metrics.ObserveCommand(command, err)
	}
}

// computeContacts looks up both endpoints and delegates to the connection
// engine.
func (e *Editor) computeContacts(a, b string, axisLock *geometry.Axis) (geometry.Point, geometry.Point, connect.Info, error) {
	na, err := e.graph.Node(a)
	if err != nil {
		return geometry.Point{}, geometry.Point{}, connect.Info{}, err
	}
	nb, err := e.graph.Node(b)
	if err != nil {
		return geometry.Point{}, geometry.Point{}, connect.Info{}, err
	}
	return e.computeContactsForShapes(na.Shape, nb.Shape, axisLock)
}

func (e *Editor) computeContactsForShapes(a, b geometry.Shape, axisLock *geometry.Axis) (geometry.Point, geometry.Point, connect.Info, error) {
	contactA, contactB, info := connect.Connect(a, b, axisLock)
	return contactA, contactB, info, nil
}
