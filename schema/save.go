// File: save.go
// Role: Encode a *core.Graph back to a Document, per spec.md §6: recomputed
// graph.num_edges/num_isolated_nodes, preserved unknown per-node/per-link
// fields from the LoadResult that produced the graph.
package schema

import (
	"encoding/json"
	"io"

	"github.com/pidforge/pidgraph/core"
	"github.com/pidforge/pidgraph/geometry"
)

// Save encodes g as a Document and writes it to w. extra (typically the
// NodeExtra/LinkExtra maps from the LoadResult that produced g) supplies
// unknown fields to round-trip onto matching IDs; pass nil maps for a
// graph with no such history (e.g. one built entirely by commands).
func Save(w io.Writer, g *core.Graph, nodeExtra, linkExtra map[string]map[string]json.RawMessage) error {
	doc := Document{
		Nodes: make([]NodeRecord, 0, g.NodeCount()),
		Links: make([]LinkRecord, 0, g.EdgeCount()),
	}

	isolated := 0
	for _, id := range g.Nodes() {
		node, err := g.Node(id)
		if err != nil {
			continue
		}
		rec := nodeToRecord(node)
		if nodeExtra != nil {
			rec.Extra = nodeExtra[id]
		}
		doc.Nodes = append(doc.Nodes, rec)

		if iso, _ := g.IsIsolated(id); iso {
			isolated++
		}
	}

	for _, edge := range g.Edges() {
		rec := linkToRecord(edge)
		if linkExtra != nil {
			rec.Extra = linkExtra[linkExtraKey(edge.Source, edge.Target)]
		}
		doc.Links = append(doc.Links, rec)
	}

	doc.Graph = GraphSummary{
		NumEdges:         g.EdgeCount(),
		NumIsolatedNodes: isolated,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func nodeToRecord(n *core.Node) NodeRecord {
	c := n.Centroid()
	rec := NodeRecord{
		ID:       n.ID,
		Type:     "equipment",
		Centroid: [2]float64{c.Y, c.X},
		Area:     n.Area,
		Manual:   n.Manual,
	}
	if n.Kind == core.KindConnector {
		rec.Type = "connector"
	}
	if n.ClassID != 0 {
		id := n.ClassID
		rec.ClassID = &id
	}
	if n.DetectionIndex >= 0 {
		idx := n.DetectionIndex
		rec.YoloIdx = &idx
	}

	switch n.Shape.Kind {
	case geometry.ShapeBoxKind:
		bbox := [4]float64{n.Shape.X1, n.Shape.Y1, n.Shape.X2, n.Shape.Y2}
		rec.BBox = &bbox
	case geometry.ShapePolygonKind:
		seg := make([]float64, 0, len(n.Shape.Vertices)*2)
		for _, v := range n.Shape.Vertices {
			seg = append(seg, v.X, v.Y)
		}
		rec.Segmentation = seg
	}
	return rec
}

func linkToRecord(e *core.Edge) LinkRecord {
	length := e.TargetContact.Sub(e.SourceContact).Norm()
	return LinkRecord{
		Source:      e.Source,
		Target:      e.Target,
		SourcePoint: &[2]float64{e.SourceContact.Y, e.SourceContact.X},
		TargetPoint: &[2]float64{e.TargetContact.Y, e.TargetContact.X},
		Length:      &length,
	}
}
