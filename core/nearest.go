// File: nearest.go
// Role: NearestEdge hit-testing for the interaction state machine.
package core

import (
	"github.com/pidforge/pidgraph/geometry"
)

// NearestNode returns the node closest to p whose distance is within
// radius: 0 when p lies on the node's boundary, otherwise the smaller of
// the distance to its centroid and the distance to its boundary segments,
// per spec.md §4.4's "node_at(x, y, radius)". Returns ErrNodeMissing if no
// node qualifies.
func (g *Graph) NearestNode(p geometry.Point, radius float64) (*Node, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	var candidates []*Node
	if g.indexed {
		candidates = g.index.near(p, radius)
		if len(candidates) == 0 {
			// near's window is sized from radius itself, so an empty result
			// already means nothing qualifies; all() only guards against a
			// degenerate rtreego query (e.g. radius <= 0 clamped to a tiny
			// window) rather than masking an undersized window.
			candidates = g.index.all()
		}
	} else {
		candidates = make([]*Node, 0, len(g.nodes))
		for _, n := range g.nodes {
			candidates = append(candidates, n)
		}
	}

	var best *Node
	bestDist := 0.0
	for _, n := range candidates {
		d := distanceToShape(p, n.Shape)
		if d > radius {
			continue
		}
		if best == nil || d < bestDist {
			best, bestDist = n, d
		}
	}
	if best == nil {
		return nil, ErrNodeMissing
	}
	return best, nil
}

func distanceToShape(p geometry.Point, s geometry.Shape) float64 {
	if s.ContainsBoundaryPoint(p) {
		return 0
	}
	boundary := s.Boundary()
	if len(boundary) == 0 {
		return p.Sub(s.Centroid()).Norm()
	}
	best := p.Sub(s.Centroid()).Norm()
	for _, seg := range boundary {
		if _, d := geometry.PointToSegment(p, seg.A, seg.B); d < best {
			best = d
		}
	}
	return best
}

// NearestEdge returns the edge whose segment (SourceContact, TargetContact)
// is closest to p, along with that distance. Returns ErrEdgeMissing if the
// graph has no edges.
func (g *Graph) NearestEdge(p geometry.Point) (*Edge, float64, error) {
	edges := g.Edges()
	if len(edges) == 0 {
		return nil, 0, ErrEdgeMissing
	}

	var best *Edge
	bestDist := 0.0
	for _, e := range edges {
		_, d := geometry.PointToSegment(p, e.SourceContact, e.TargetContact)
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, bestDist, nil
}
