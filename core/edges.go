// File: edges.go
// Role: Edge lifecycle and queries: AddEdge/RemoveEdge/HasEdge/EdgeBetween/Edges.
package core

import (
	"sort"

	"github.com/pidforge/pidgraph/connect"
	"github.com/pidforge/pidgraph/geometry"
)

// AddEdge inserts an oriented edge record between two existing nodes.
// Rejects a==b (ErrSelfLoop), a missing endpoint (ErrNodeMissing), and a
// second edge between the same pair (ErrDuplicate, since the graph is
// simple: at most one edge per unordered pair).
func (g *Graph) AddEdge(source, target string, sourceContact, targetContact geometry.Point, info connect.Info, metadata map[string]interface{}) error {
	if source == target {
		return ErrSelfLoop
	}

	g.muNode.RLock()
	_, sOk := g.nodes[source]
	_, tOk := g.nodes[target]
	g.muNode.RUnlock()
	if !sOk || !tOk {
		return ErrNodeMissing
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	lo, hi := canonicalKey(source, target)
	if g.edges[lo] != nil {
		if _, exists := g.edges[lo][hi]; exists {
			return ErrDuplicate
		}
	}

	e := &Edge{
		Source: source, Target: target,
		SourceContact: sourceContact, TargetContact: targetContact,
		Info: info, Metadata: metadata,
	}
	if g.edges[lo] == nil {
		g.edges[lo] = make(map[string]*Edge)
	}
	g.edges[lo][hi] = e

	if g.adjacency[source] == nil {
		g.adjacency[source] = make(map[string]struct{})
	}
	if g.adjacency[target] == nil {
		g.adjacency[target] = make(map[string]struct{})
	}
	g.adjacency[source][target] = struct{}{}
	g.adjacency[target][source] = struct{}{}

	return nil
}

// RemoveEdge deletes the edge between a and b. Returns ErrEdgeMissing if
// absent.
func (g *Graph) RemoveEdge(a, b string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	lo, hi := canonicalKey(a, b)
	if g.edges[lo] == nil {
		return ErrEdgeMissing
	}
	if _, exists := g.edges[lo][hi]; !exists {
		return ErrEdgeMissing
	}
	delete(g.edges[lo], hi)
	if len(g.edges[lo]) == 0 {
		delete(g.edges, lo)
	}
	delete(g.adjacency[a], b)
	delete(g.adjacency[b], a)

	return nil
}

// HasEdge reports whether an edge exists between a and b (order-independent).
func (g *Graph) HasEdge(a, b string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	lo, hi := canonicalKey(a, b)
	if g.edges[lo] == nil {
		return false
	}
	_, ok := g.edges[lo][hi]
	return ok
}

// EdgeBetween returns the edge between a and b, oriented as stored
// (Source/Target may be in either order relative to the caller's a, b).
// Returns ErrEdgeMissing if absent.
func (g *Graph) EdgeBetween(a, b string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	lo, hi := canonicalKey(a, b)
	if g.edges[lo] == nil {
		return nil, ErrEdgeMissing
	}
	e, ok := g.edges[lo][hi]
	if !ok {
		return nil, ErrEdgeMissing
	}
	return e, nil
}

// ReplaceEdge overwrites the stored edge for the same canonical key with a
// new contact pair / info, used by editor.DragNode and editor.OptimizeEdge
// to recompute contacts without changing the edge's identity.
func (g *Graph) ReplaceEdge(e *Edge) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	lo, hi := canonicalKey(e.Source, e.Target)
	if g.edges[lo] == nil {
		return ErrEdgeMissing
	}
	if _, ok := g.edges[lo][hi]; !ok {
		return ErrEdgeMissing
	}
	g.edges[lo][hi] = e
	return nil
}

// Edges returns all edges, sorted by canonical key for deterministic
// iteration.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	los := make([]string, 0, len(g.edges))
	for lo := range g.edges {
		los = append(los, lo)
	}
	sort.Strings(los)
	for _, lo := range los {
		his := make([]string, 0, len(g.edges[lo]))
		for hi := range g.edges[lo] {
			his = append(his, hi)
		}
		sort.Strings(his)
		for _, hi := range his {
			out = append(out, g.edges[lo][hi])
		}
	}
	return out
}

// EdgeCount returns the total number of edges in the graph.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	n := 0
	for _, inner := range g.edges {
		n += len(inner)
	}
	return n
}
