// Package geometry provides the primitive math shared by the connection
// engine and the perpendicularity analyzer: segment/point distance, 1-D
// interval overlap, axis-alignment scoring, and the closed Shape variant
// (Point / Box / Polygon) that every node in the graph model carries.
//
// All primitives work in Cartesian (x, y) with the image row axis pointing
// down; callers are responsible for any row/column swap at the schema
// boundary (see package schema). Degeneracy tests use EpsSquared for
// squared-length comparisons and EpsLength for length comparisons.
package geometry
