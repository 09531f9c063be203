// Package connect implements the connection engine: for each ordered pair
// of node shapes it computes the "best" contact pair under the strict
// priority hierarchy from spec.md §4.2.
//
//  1. perpendicular from A's centroid
//  2. perpendicular from B's centroid
//  3. perpendicular through the 1-D overlap (Box-Box only)
//  4. minimum-diagonality wall-to-wall / edge-to-edge, with a deterministic
//     (sideA_index, sideB_index) tie-break
//
// Level 1 is tried first; the first non-empty level wins outright,
// regardless of what a later level might have scored. An optional
// required_axis restricts level 4 (and the intersection tests in levels
// 1-2) to a single axis; this is how editor.OptimizeEdge's axis lock is
// implemented. If no level yields a candidate, Connect falls back to
// centroid-centroid and sets Info.Fallback.
package connect
