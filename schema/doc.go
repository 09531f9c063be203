// Package schema implements the load/save JSON records described by
// spec.md §6: the detector-emitted nodes/links/graph-summary document the
// editor round-trips, plus the optional COCO-like detection-annotations
// document external overlay consumers decode (never entering the graph
// model). Loading is fault-tolerant per spec.md §7: malformed entities are
// dropped with a structured log line rather than aborting the whole file.
package schema
