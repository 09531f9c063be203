// File: nodes.go
// Role: Node lifecycle and queries.
package core

import (
	"sort"

	"github.com/pidforge/pidgraph/geometry"
)

// AddNode inserts n into the graph, indexing its shape for spatial queries.
// Returns ErrEmptyNodeID if n.ID is empty, ErrDuplicate if the ID is
// already in use.
func (g *Graph) AddNode(n *Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()

	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicate
	}
	g.nodes[n.ID] = n
	if g.indexed {
		g.index.insert(n)
	}

	g.muEdgeAdj.Lock()
	g.adjacency[n.ID] = make(map[string]struct{})
	g.muEdgeAdj.Unlock()

	return nil
}

// RemoveNode deletes a node and all of its incident edges. It is a raw
// topology primitive: callers needing undo support go through
// editor.DeleteNode, which records the undo information (incident edges,
// merge decision) before calling this.
func (g *Graph) RemoveNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.nodes[id]; !exists {
		return ErrNodeMissing
	}

	for neighbor := range g.adjacency[id] {
		lo, hi := canonicalKey(id, neighbor)
		delete(g.edges[lo], hi)
		if len(g.edges[lo]) == 0 {
			delete(g.edges, lo)
		}
		delete(g.adjacency[neighbor], id)
	}
	delete(g.adjacency, id)

	if g.indexed {
		g.index.remove(g.nodes[id])
	}
	delete(g.nodes, id)

	return nil
}

// HasNode reports whether id names a node in the graph.
func (g *Graph) HasNode(id string) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[id]
	return ok
}

// Node returns the node with the given ID. Returns ErrNodeMissing if absent.
func (g *Graph) Node(id string) (*Node, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeMissing
	}
	return n, nil
}

// Nodes returns all node IDs in lexicographic ascending order.
func (g *Graph) Nodes() []string {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// NodeCount returns the number of nodes currently in the graph.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	return len(g.nodes)
}

// TranslateNode moves a node's shape by delta, updating the spatial index
// in place. It does not touch incident edges; callers (editor.DragNode)
// are responsible for recomputing contact points afterward.
func (g *Graph) TranslateNode(id string, delta geometry.Point) error {
	g.muNode.Lock()
	defer g.muNode.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeMissing
	}
	if g.indexed {
		g.index.remove(n)
	}
	n.Shape = n.Shape.Translate(delta)
	if g.indexed {
		g.index.insert(n)
	}
	return nil
}

// NodeAt returns the node whose shape boundary (or centroid, for a
// footprint-less Point) contains p within tolerance, or ErrNodeMissing if
// none qualifies. When the spatial index is disabled this falls back to a
// linear scan.
func (g *Graph) NodeAt(p geometry.Point) (*Node, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	if g.indexed {
		candidates := g.index.near(p, nodeAtQueryPad)
		if len(candidates) == 0 {
			// The query window missed every bounding box outright (e.g. p is
			// near the boundary of a shape much larger than the window);
			// fall back to checking every indexed node.
			candidates = g.index.all()
		}
		for _, n := range candidates {
			if n.Shape.ContainsBoundaryPoint(p) {
				return n, nil
			}
		}
		return nil, ErrNodeMissing
	}

	for _, n := range g.nodes {
		if n.Shape.ContainsBoundaryPoint(p) {
			return n, nil
		}
	}
	return nil, ErrNodeMissing
}
