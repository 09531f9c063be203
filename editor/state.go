// File: state.go
// Role: C7 interaction state machine: modes, selection/hover, hit-testing,
// preview geometry, and drag coalescing. The state machine only dispatches
// semantic intents to the C5 command methods; it never mutates the graph
// directly.
package editor

import (
	"github.com/pidforge/pidgraph/geometry"
)

// Mode selects which semantic command a click/drag in the renderer
// produces, per spec.md §4.7.
type Mode int

const (
	ModeAddEdge Mode = iota
	ModeDeleteEdge
	ModeAddConnector
	ModeDeleteNode
	ModeOptimizeEdge
	ModeDragNode
)

// String implements fmt.Stringer for readable logs and test failures.
func (m Mode) String() string {
	switch m {
	case ModeAddEdge:
		return "add-edge"
	case ModeDeleteEdge:
		return "delete-edge"
	case ModeAddConnector:
		return "add-connector"
	case ModeDeleteNode:
		return "delete-node"
	case ModeOptimizeEdge:
		return "optimize-edge"
	case ModeDragNode:
		return "drag-node"
	default:
		return "unknown"
	}
}

// PreviewKind tags what kind of command AddConnector's pointer-move
// preview would commit if clicked now.
type PreviewKind int

const (
	PreviewNone PreviewKind = iota
	PreviewSplit
	PreviewIsolatedConnector
)

// Preview is the AddConnector mode's pointer-move overlay: the point the
// renderer should draw, and which command a click would issue.
type Preview struct {
	Kind  PreviewKind
	Point geometry.Point
	// EdgeA, EdgeB identify the edge that would be split; empty for
	// PreviewIsolatedConnector.
	EdgeA, EdgeB string
}

// ViewState is the read-only snapshot the renderer observes between
// commands: mode, selection, hover, and preview geometry, per spec.md §6
// "Observable view state". No method on ViewState may mutate the Editor.
type ViewState struct {
	Mode Mode

	Selected string // selected node ID, empty if none
	HoverNode string // hovered node ID, empty if none
	HoverEdgeA, HoverEdgeB string // hovered edge endpoints, empty if none

	Preview Preview

	dragging bool
}

// interactionState holds the mutable pieces of the C7 state machine: the
// current mode, selection/hover, in-progress drag, and the pre-drag undo
// baseline used to coalesce a pointer-down session into one undo record.
type interactionState struct {
	editor *Editor

	mode Mode

	selected  string
	hoverNode string
	hoverA    string
	hoverB    string
	preview   Preview

	dragID      string
	dragging    bool
	dragOrigRec *recDragNode
}

func newInteractionState(e *Editor) *interactionState {
	return &interactionState{editor: e, mode: ModeAddEdge}
}

// SetMode switches the active interaction mode, clearing any selection,
// hover, or preview left over from the previous mode. An in-progress drag
// is not interrupted by a mode switch; call EndDrag first.
func (e *Editor) SetMode(m Mode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.mode = m
	e.state.selected = ""
	e.state.hoverNode = ""
	e.state.hoverA, e.state.hoverB = "", ""
	e.state.preview = Preview{}
	e.emit(Event{Kind: EventViewStateChanged})
}

// ViewState returns a read-only snapshot of the current interaction state.
func (e *Editor) ViewState() ViewState {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := e.state
	return ViewState{
		Mode:       s.mode,
		Selected:   s.selected,
		HoverNode:  s.hoverNode,
		HoverEdgeA: s.hoverA,
		HoverEdgeB: s.hoverB,
		Preview:    s.preview,
		dragging:   s.dragging,
	}
}

// Hover updates hover state from a pointer-move at p, hit-testing nodes
// (ModeAddEdge/DeleteEdge/DeleteNode/DragNode) or edges
// (ModeOptimizeEdge/AddConnector) depending on the active mode. It never
// mutates the graph.
func (e *Editor) Hover(p geometry.Point) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.state
	s.hoverNode, s.hoverA, s.hoverB, s.preview = "", "", "", Preview{}

	switch s.mode {
	case ModeAddEdge, ModeDeleteEdge, ModeDeleteNode, ModeDragNode:
		if n, err := e.graph.NearestNode(p, e.cfg.hitRadiusNode); err == nil {
			s.hoverNode = n.ID
		}
	case ModeOptimizeEdge:
		if edge, d, err := e.graph.NearestEdge(p); err == nil && d <= e.cfg.hitRadiusEdge {
			s.hoverA, s.hoverB = edge.Source, edge.Target
		}
	case ModeAddConnector:
		if edge, d, err := e.graph.NearestEdge(p); err == nil && d <= e.cfg.hitRadiusEdge {
			projPoint, _ := geometry.PointToSegment(p, edge.SourceContact, edge.TargetContact)
			s.preview = Preview{Kind: PreviewSplit, Point: projPoint, EdgeA: edge.Source, EdgeB: edge.Target}
		} else {
			s.preview = Preview{Kind: PreviewIsolatedConnector, Point: p}
		}
	}
	e.emit(Event{Kind: EventViewStateChanged})
}

// Click dispatches a pointer-click at p per the active mode's transition
// table (spec.md §4.7). It returns the error (if any) from the underlying
// command; a miss (no node/edge within hit radius) is not an error, it
// silently clears the selection.
func (e *Editor) Click(p geometry.Point) error {
	e.mu.Lock()
	mode := e.state.mode
	e.mu.Unlock()

	switch mode {
	case ModeAddEdge:
		return e.clickAddOrDelete(p, true)
	case ModeDeleteEdge:
		return e.clickAddOrDelete(p, false)
	case ModeAddConnector:
		return e.clickAddConnector(p)
	case ModeDeleteNode:
		return e.clickDeleteNode(p)
	case ModeOptimizeEdge:
		return e.clickOptimizeEdge(p)
	default:
		return nil
	}
}

func (e *Editor) clickAddOrDelete(p geometry.Point, wantAdd bool) error {
	e.mu.Lock()
	n, err := e.graph.NearestNode(p, e.cfg.hitRadiusNode)
	if err != nil {
		// Empty space: clear selection.
		e.state.selected = ""
		e.mu.Unlock()
		e.emit(Event{Kind: EventViewStateChanged})
		return nil
	}

	if e.state.selected == "" {
		e.state.selected = n.ID
		e.mu.Unlock()
		e.emit(Event{Kind: EventViewStateChanged})
		return nil
	}

	first := e.state.selected
	e.state.selected = ""
	e.mu.Unlock()
	e.emit(Event{Kind: EventViewStateChanged})

	if first == n.ID {
		return nil
	}
	if wantAdd {
		return e.AddEdge(first, n.ID)
	}
	return e.DeleteEdge(first, n.ID)
}

func (e *Editor) clickAddConnector(p geometry.Point) error {
	e.mu.Lock()
	preview := e.state.preview
	e.mu.Unlock()

	switch preview.Kind {
	case PreviewSplit:
		_, err := e.SplitEdgeWithConnector(preview.EdgeA, preview.EdgeB, preview.Point)
		return err
	case PreviewIsolatedConnector:
		_, err := e.AddIsolatedConnector(p)
		return err
	default:
		return nil
	}
}

func (e *Editor) clickDeleteNode(p geometry.Point) error {
	n, err := e.graph.NearestNode(p, e.cfg.hitRadiusNode)
	if err != nil {
		return nil
	}
	return e.DeleteNode(n.ID)
}

func (e *Editor) clickOptimizeEdge(p geometry.Point) error {
	edge, d, err := e.graph.NearestEdge(p)
	if err != nil || d > e.cfg.hitRadiusEdge {
		return nil
	}
	return e.OptimizeEdge(edge.Source, edge.Target)
}

// BeginDrag starts a drag session on the node within hit radius of p, if
// any, snapshotting its pre-drag centroid and every incident edge's
// pre-drag contacts — the session-start baseline that EndDrag will push as
// the single coalesced undo record. Returns "" if no node qualifies.
func (e *Editor) BeginDrag(p geometry.Point) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	n, err := e.graph.NearestNode(p, e.cfg.hitRadiusNode)
	if err != nil {
		return ""
	}

	neighbors, _ := e.graph.Neighbors(n.ID)
	perEdge := make(map[[2]string]contactPair, len(neighbors))
	for _, nbr := range neighbors {
		edge, err := e.graph.EdgeBetween(n.ID, nbr)
		if err != nil {
			continue
		}
		perEdge[[2]string{edge.Source, edge.Target}] = contactPair{source: edge.SourceContact, target: edge.TargetContact}
	}

	e.state.dragID = n.ID
	e.state.dragging = true
	e.state.dragOrigRec = &recDragNode{id: n.ID, oldCentroid: n.Centroid(), perEdgeContacts: perEdge}
	return n.ID
}

// DragTo applies a live motion update during a drag session: the model
// moves immediately (so the renderer and hit-testing stay live), but the
// per-call undo record DragNode pushes is discarded — only the
// session-start baseline captured by BeginDrag is pushed, once, by
// EndDrag, per spec.md §5's drag-coalescing rule.
func (e *Editor) DragTo(newCentroid geometry.Point) error {
	e.mu.Lock()
	id := e.state.dragID
	dragging := e.state.dragging
	e.mu.Unlock()

	if !dragging || id == "" {
		return nil
	}

	if err := e.DragNode(id, newCentroid); err != nil {
		return err
	}

	e.mu.Lock()
	e.journal.pop()
	e.mu.Unlock()
	return nil
}

// EndDrag finishes the current drag session, pushing the single coalesced
// undo record capturing the whole motion from BeginDrag's baseline to the
// model's current state (spec.md §5 "Undo restores the pre-drag state in
// one step"). A no-op if no drag is in progress or DragTo was never
// called (nothing moved, nothing to undo).
func (e *Editor) EndDrag() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.dragging && e.state.dragOrigRec != nil {
		if n, err := e.graph.Node(e.state.dragID); err == nil && n.Centroid() != e.state.dragOrigRec.oldCentroid {
			e.journal.push(*e.state.dragOrigRec)
		}
	}
	e.state.dragging = false
	e.state.dragID = ""
	e.state.dragOrigRec = nil
}
