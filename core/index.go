// File: index.go
// Role: Spatial index over node shapes, backed by rtreego.Rtree, mirroring
// the ChartIndex wrapper pattern (Bounds()/insert/remove/query) used for
// geographic chart lookup in the wider example corpus.
package core

import (
	"math"

	"github.com/dhconnelly/rtreego"

	"github.com/pidforge/pidgraph/geometry"
)

// minRectExtent is the minimum side length given to a degenerate (point)
// shape's bounding rectangle; rtreego requires strictly positive lengths.
const minRectExtent = 1e-3

// nodeSpatial adapts *Node to rtreego.Spatial.
type nodeSpatial struct {
	node *Node
}

func (ns nodeSpatial) Bounds() rtreego.Rect {
	return boundsFor(ns.node.Shape)
}

func boundsFor(s geometry.Shape) rtreego.Rect {
	var minX, minY, maxX, maxY float64
	switch s.Kind {
	case geometry.ShapePointKind:
		minX, minY = s.Point.X, s.Point.Y
		maxX, maxY = s.Point.X, s.Point.Y
	case geometry.ShapeBoxKind:
		minX, minY, maxX, maxY = s.X1, s.Y1, s.X2, s.Y2
	case geometry.ShapePolygonKind:
		minX, minY = math.Inf(1), math.Inf(1)
		maxX, maxY = math.Inf(-1), math.Inf(-1)
		for _, v := range s.Vertices {
			minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
			minY, maxY = math.Min(minY, v.Y), math.Max(maxY, v.Y)
		}
	}

	w, h := maxX-minX, maxY-minY
	if w < minRectExtent {
		minX -= minRectExtent / 2
		w = minRectExtent
	}
	if h < minRectExtent {
		minY -= minRectExtent / 2
		h = minRectExtent
	}

	rect, _ := rtreego.NewRect(rtreego.Point{minX, minY}, []float64{w, h})
	return rect
}

// spatialIndex wraps an rtreego.Rtree of node shapes for NodeAt/NearestNode
// hit-testing without a linear scan.
type spatialIndex struct {
	tree *rtreego.Rtree
	byID map[string]nodeSpatial
}

func newSpatialIndex() *spatialIndex {
	return &spatialIndex{
		tree: rtreego.NewTree(2, 4, 16),
		byID: make(map[string]nodeSpatial),
	}
}

func (idx *spatialIndex) insert(n *Node) {
	ns := nodeSpatial{node: n}
	idx.byID[n.ID] = ns
	idx.tree.Insert(ns)
}

func (idx *spatialIndex) remove(n *Node) {
	if ns, ok := idx.byID[n.ID]; ok {
		idx.tree.Delete(ns)
		delete(idx.byID, n.ID)
	}
}

// nodeAtQueryPad sizes NodeAt's query window: a boundary-containment hit
// always has zero bbox distance from the query point, so a small constant
// window is enough regardless of shape size.
const nodeAtQueryPad = 1.0

// near returns every node whose bounding rectangle intersects a query
// window of half-width radius centered on p. radius must be at least as
// large as the caller's actual search radius: any node whose shape lies
// within radius of p is guaranteed to have a bounding rectangle
// intersecting this window (Euclidean distance bounds Chebyshev
// distance), so a window sized from a smaller, arbitrary pad can miss
// the true nearest node while returning an unrelated closer-bbox one.
// ContainsBoundaryPoint (or an explicit distance check) on the result
// performs the exact test.
func (idx *spatialIndex) near(p geometry.Point, radius float64) []*Node {
	pad := radius
	if pad < minRectExtent {
		pad = minRectExtent
	}
	rect, _ := rtreego.NewRect(rtreego.Point{p.X - pad, p.Y - pad}, []float64{2 * pad, 2 * pad})

	results := idx.tree.SearchIntersect(rect)
	out := make([]*Node, 0, len(results))
	for _, r := range results {
		out = append(out, r.(nodeSpatial).node)
	}
	return out
}

// all returns every indexed node, used as a fallback when a hit-test query
// window finds nothing but the index is non-empty (a node larger than the
// query window still needs to be found).
func (idx *spatialIndex) all() []*Node {
	out := make([]*Node, 0, len(idx.byID))
	for _, ns := range idx.byID {
		out = append(out, ns.node)
	}
	return out
}
