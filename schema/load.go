// File: load.go
// Role: Decode a Document into a *core.Graph, per spec.md §6-7: malformed
// nodes/links are dropped with a structured log line, the rest loads.
package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/pidforge/pidgraph/connect"
	"github.com/pidforge/pidgraph/core"
	"github.com/pidforge/pidgraph/geometry"
)

var validate = validator.New()

// LoadResult bundles the graph Load built with the unknown fields Load
// found on its records, so Save can write them back. A record Load dropped
// (e.g. a link with a missing endpoint) is not kept and is not saved.
type LoadResult struct {
	Graph *core.Graph
	// NodeExtra maps a node ID, and LinkExtra a link's endpoint pair (as
	// built by linkExtraKey), to the unknown fields Load found on that
	// record, for Save's round-trip-preservation pass.
	NodeExtra map[string]map[string]json.RawMessage
	LinkExtra map[string]map[string]json.RawMessage
}

// Load decodes a Document from r and builds a *core.Graph from its nodes
// and links. Malformed entities are dropped with a slog warning; the rest
// of the document still loads (spec.md §7's fault-tolerance contract).
func Load(r io.Reader, logger *slog.Logger) (*LoadResult, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("schema: decode document: %w", err)
	}

	g := core.NewGraph()
	result := &LoadResult{
		Graph:     g,
		NodeExtra: make(map[string]map[string]json.RawMessage),
		LinkExtra: make(map[string]map[string]json.RawMessage),
	}

	for _, rec := range doc.Nodes {
		if err := validate.Struct(rec); err != nil {
			logger.Warn("schema: dropping node, failed validation", "id", rec.ID, "error", err)
			continue
		}
		node, err := nodeFromRecord(rec)
		if err != nil {
			logger.Warn("schema: dropping node, degenerate geometry", "id", rec.ID, "error", err)
			continue
		}
		if err := g.AddNode(node); err != nil {
			logger.Warn("schema: dropping node", "id", rec.ID, "error", err)
			continue
		}
		if rec.Extra != nil {
			result.NodeExtra[rec.ID] = rec.Extra
		}
	}

	for _, rec := range doc.Links {
		if rec.Source == "" || rec.Target == "" {
			logger.Warn("schema: dropping link with missing endpoint", "id", rec.ID)
			continue
		}
		if !g.HasNode(rec.Source) || !g.HasNode(rec.Target) {
			logger.Warn("schema: dropping link, endpoint not loaded", "id", rec.ID, "source", rec.Source, "target", rec.Target)
			continue
		}

		contactA, contactB, info, err := contactsForLink(g, rec)
		if err != nil {
			logger.Warn("schema: dropping link, could not compute contacts", "id", rec.ID, "error", err)
			continue
		}
		if info.Fallback {
			logger.Warn("schema: link connection engine fell back to centroids", "id", rec.ID)
		}

		if err := g.AddEdge(rec.Source, rec.Target, contactA, contactB, info, nil); err != nil {
			logger.Warn("schema: dropping link", "id", rec.ID, "error", err)
			continue
		}
		if rec.Extra != nil {
			key := linkExtraKey(rec.Source, rec.Target)
			result.LinkExtra[key] = rec.Extra
		}
	}

	return result, nil
}

// nodeFromRecord converts one validated NodeRecord to a *core.Node,
// swapping the record's [row, column] centroid to (x, y) and choosing the
// node's Shape by the §3 precedence: Polygon, then Box, then a bare Point
// at the centroid.
func nodeFromRecord(rec NodeRecord) (*core.Node, error) {
	centroid := geometry.Point{X: rec.Centroid[1], Y: rec.Centroid[0]}

	var shape geometry.Shape
	switch {
	case len(rec.Segmentation) >= 6:
		verts := make([]geometry.Point, 0, len(rec.Segmentation)/2)
		for i := 0; i+1 < len(rec.Segmentation); i += 2 {
			verts = append(verts, geometry.Point{X: rec.Segmentation[i], Y: rec.Segmentation[i+1]})
		}
		ps, ok := geometry.NewPolygonShape(verts)
		if !ok {
			return nil, core.ErrGeometryDegenerate
		}
		shape = ps
	case rec.BBox != nil:
		bs, ok := geometry.NewBoxShape(rec.BBox[0], rec.BBox[1], rec.BBox[2], rec.BBox[3])
		if !ok {
			return nil, core.ErrGeometryDegenerate
		}
		shape = bs
	default:
		shape = geometry.NewPointShape(centroid)
	}

	kind := core.KindEquipment
	if rec.Type == "connector" {
		kind = core.KindConnector
	}

	classID := 0
	if rec.ClassID != nil {
		classID = *rec.ClassID
	}
	detIdx := -1
	if rec.YoloIdx != nil {
		detIdx = *rec.YoloIdx
	}

	return &core.Node{
		ID:             rec.ID,
		Kind:           kind,
		ClassID:        classID,
		Shape:          shape,
		Area:           rec.Area,
		DetectionIndex: detIdx,
		Manual:         rec.Manual,
	}, nil
}

// contactsForLink returns the absolute contact points for rec: the
// record's own source_point/target_point when present (row/column
// swapped to x/y), otherwise computed fresh by the connection engine.
func contactsForLink(g *core.Graph, rec LinkRecord) (geometry.Point, geometry.Point, connect.Info, error) {
	if rec.SourcePoint != nil && rec.TargetPoint != nil {
		contactA := geometry.Point{X: rec.SourcePoint[1], Y: rec.SourcePoint[0]}
		contactB := geometry.Point{X: rec.TargetPoint[1], Y: rec.TargetPoint[0]}
		d := contactB.Sub(contactA)
		score, axis := geometry.AxisScore(d.X, d.Y)
		return contactA, contactB, connect.Info{Axis: axis, Score: score, Kind: "loaded"}, nil
	}

	na, err := g.Node(rec.Source)
	if err != nil {
		return geometry.Point{}, geometry.Point{}, connect.Info{}, err
	}
	nb, err := g.Node(rec.Target)
	if err != nil {
		return geometry.Point{}, geometry.Point{}, connect.Info{}, err
	}
	contactA, contactB, info := connect.Connect(na.Shape, nb.Shape, nil)
	return contactA, contactB, info, nil
}

func linkExtraKey(a, b string) string {
	if a <= b {
		return a + "\x00" + b
	}
	return b + "\x00" + a
}
