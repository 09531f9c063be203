package schema

import "encoding/json"

// NodeRecord is the on-disk shape of one `nodes[]` entry, per spec.md §6.
// Centroid is stored in [row, column] order, as emitted by the detection
// pipeline; Load swaps it to (x, y) when building a core.Node.
type NodeRecord struct {
	ID           string      `json:"id" validate:"required"`
	Type         string      `json:"type" validate:"required,oneof=equipment connector"`
	Centroid     [2]float64  `json:"centroid" validate:"required"`
	Area         float64     `json:"area,omitempty"`
	BBox         *[4]float64 `json:"bbox,omitempty"`
	Segmentation []float64   `json:"segmentation,omitempty"`
	ClassID      *int        `json:"class_id,omitempty"`
	ClassName    string      `json:"class_name,omitempty"`
	YoloIdx      *int        `json:"yolo_idx,omitempty"`
	Manual       bool        `json:"manual,omitempty"`

	// Extra preserves any fields this schema does not model, so Save can
	// round-trip them unchanged per spec.md §6's "Writers preserve unknown
	// fields on nodes and edges".
	Extra map[string]json.RawMessage `json:"-"`
}

var nodeRecordKnownKeys = []string{
	"id", "type", "centroid", "area", "bbox", "segmentation",
	"class_id", "class_name", "yolo_idx", "manual",
}

// nodeRecordAlias breaks the recursion a NodeRecord.UnmarshalJSON/MarshalJSON
// pair would otherwise hit by calling itself.
type nodeRecordAlias NodeRecord

func (n *NodeRecord) UnmarshalJSON(data []byte) error {
	var alias nodeRecordAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*n = NodeRecord(alias)

	extra, err := extractExtra(data, nodeRecordKnownKeys)
	if err != nil {
		return err
	}
	n.Extra = extra
	return nil
}

func (n NodeRecord) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(nodeRecordAlias(n))
	if err != nil {
		return nil, err
	}
	return mergeExtra(known, n.Extra)
}

// LinkRecord is the on-disk shape of one `links[]` entry, per spec.md §6.
// SourcePoint/TargetPoint are stored [row, column]; when absent, Load
// computes them with the connection engine.
type LinkRecord struct {
	ID                   string     `json:"id,omitempty"`
	Source               string     `json:"source"`
	Target               string     `json:"target"`
	SourcePoint          *[2]float64 `json:"source_point,omitempty"`
	TargetPoint          *[2]float64 `json:"target_point,omitempty"`
	Length               *float64   `json:"length,omitempty"`
	IsTerminal           *bool      `json:"is_terminal,omitempty"`
	Color                interface{} `json:"color,omitempty"`
	StraightLineDistance *float64   `json:"straight_line_distance,omitempty"`
	Manual               bool       `json:"manual,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

var linkRecordKnownKeys = []string{
	"id", "source", "target", "source_point", "target_point", "length",
	"is_terminal", "color", "straight_line_distance", "manual",
}

type linkRecordAlias LinkRecord

func (l *LinkRecord) UnmarshalJSON(data []byte) error {
	var alias linkRecordAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*l = LinkRecord(alias)

	extra, err := extractExtra(data, linkRecordKnownKeys)
	if err != nil {
		return err
	}
	l.Extra = extra
	return nil
}

func (l LinkRecord) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(linkRecordAlias(l))
	if err != nil {
		return nil, err
	}
	return mergeExtra(known, l.Extra)
}

// GraphSummary is the `graph` object: derived counters Save recomputes
// from the current core.Graph, per spec.md §6.
type GraphSummary struct {
	NumEdges         int `json:"num_edges"`
	NumIsolatedNodes int `json:"num_isolated_nodes"`

	Extra map[string]json.RawMessage `json:"-"`
}

var graphSummaryKnownKeys = []string{"num_edges", "num_isolated_nodes"}

type graphSummaryAlias GraphSummary

func (s *GraphSummary) UnmarshalJSON(data []byte) error {
	var alias graphSummaryAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*s = GraphSummary(alias)

	extra, err := extractExtra(data, graphSummaryKnownKeys)
	if err != nil {
		return err
	}
	s.Extra = extra
	return nil
}

func (s GraphSummary) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(graphSummaryAlias(s))
	if err != nil {
		return nil, err
	}
	return mergeExtra(known, s.Extra)
}

// Document is the full load/save record: nodes, links, and the graph
// summary, per spec.md §6.
type Document struct {
	Nodes []NodeRecord `json:"nodes"`
	Links []LinkRecord `json:"links"`
	Graph GraphSummary `json:"graph"`
}

// extractExtra decodes data's top-level object into a raw-message map and
// strips every key named in known, leaving only the fields this schema
// does not model.
func extractExtra(data []byte, known []string) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(raw, k)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return raw, nil
}

// mergeExtra re-decodes knownJSON into a raw-message map, adds every key
// from extra that knownJSON did not already set, and re-encodes the
// union — the inverse of extractExtra, used by every MarshalJSON above.
func mergeExtra(knownJSON []byte, extra map[string]json.RawMessage) ([]byte, error) {
	if len(extra) == 0 {
		return knownJSON, nil
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(knownJSON, &merged); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, exists := merged[k]; !exists {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}
